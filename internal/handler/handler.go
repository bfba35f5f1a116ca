// Package handler implements the translate proxy invocation handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/davetropeano/f2f/internal/config"
	"github.com/davetropeano/f2f/internal/translator"
)

const (
	// DefaultText is substituted when an invocation carries no input field.
	DefaultText = "there was no input passed in"

	// ModelID is the fixed language pair requested from the translator. The
	// pair is part of the function's contract and is not configurable.
	ModelID = "en-es"
)

// Request is the JSON payload of one invocation. Input is a pointer so a
// present-but-empty string is distinguishable from an absent field.
type Request struct {
	Input *string `json:"input"`
}

// Handler is the translate proxy: it forwards one invocation's text to the
// translation service and maps the outcome to an HTTP response. All fields
// are read-only after construction, so a single Handler serves concurrent
// invocations.
type Handler struct {
	translator translator.Translator
	logger     log.Logger
	errorMode  config.ErrorMode
}

// New creates a Handler using the given outbound translator.
func New(t translator.Translator, logger log.Logger, mode config.ErrorMode) *Handler {
	return &Handler{
		translator: t,
		logger:     logger,
		errorMode:  mode,
	}
}

// Handle processes one proxy invocation. It never returns an error to the
// runtime: every outcome, including outbound failure, maps to a response.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	q := translator.Query{
		Text:    textFromEvent(event),
		ModelID: ModelID,
	}

	result, err := h.translator.Translate(ctx, q)
	if err != nil {
		level.Error(h.logger).Log("msg", "translation failed", "err", err)

		if h.errorMode == config.ErrorModeStatus {
			body, _ := json.Marshal(errorBody{Error: "translation failed"})
			return response(http.StatusBadGateway, string(body)), nil
		}

		// Legacy contract of the migrated function: failures still answer
		// 200 with an empty body.
		return response(http.StatusOK, ""), nil
	}

	return response(http.StatusOK, string(result)), nil
}

// errorBody is the response payload for failures in status mode. The logged
// error carries the detail; the caller only learns that translation failed.
type errorBody struct {
	Error string `json:"error"`
}

// textFromEvent extracts the input text from the event body. Anything that
// prevents reading the field (empty body, malformed JSON, undecodable base64)
// substitutes the default text. A present-but-empty input is forwarded as-is.
func textFromEvent(event events.APIGatewayProxyRequest) string {
	raw := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return DefaultText
		}
		raw = decoded
	}

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil || req.Input == nil {
		return DefaultText
	}

	return *req.Input
}

// response builds an invocation response with the fixed JSON content type.
func response(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
