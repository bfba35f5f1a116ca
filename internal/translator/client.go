package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"
)

const (
	// apiVersion is the service API version date sent on every call.
	apiVersion = "2018-05-01"

	// requestTimeout bounds a single outbound call. The hosting platform may
	// impose a shorter deadline through the request context.
	requestTimeout = 30 * time.Second
)

// translateRequest is the request body for the v3 translate endpoint.
type translateRequest struct {
	Text    []string `json:"text"`
	ModelID string   `json:"model_id"`
}

// Client calls a hosted Language Translator service over HTTP. It holds only
// the fixed credential and endpoint, so a single Client is safe to share
// across concurrent invocations.
type Client struct {
	client *req.Client
}

// NewClient creates a Client for the service at baseURL, authenticating every
// request with the given API key. The credential is not checked here; a bad
// key or URL surfaces as an error from the first Translate call.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		client: req.NewClient().
			SetTimeout(requestTimeout).
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetCommonBasicAuth("apikey", apiKey).
			SetCommonQueryParam("version", apiVersion),
	}
}

// Translate performs one translation call and returns the raw response
// payload. The payload is relayed without inspection; callers treat it as
// opaque.
func (c *Client) Translate(ctx context.Context, q Query) (json.RawMessage, error) {
	body := translateRequest{
		Text:    []string{q.Text},
		ModelID: q.ModelID,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&body).
		Post("/v3/translate")
	if err != nil {
		return nil, fmt.Errorf("failed to call translator: %w", err)
	}

	if !resp.IsSuccessState() {
		return nil, fmt.Errorf("translator returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(resp.String()))
	}

	return json.RawMessage(resp.Bytes()), nil
}
