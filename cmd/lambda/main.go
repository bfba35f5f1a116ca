// Package main is the entry point for the translate proxy Lambda function.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/davetropeano/f2f/internal/config"
	"github.com/davetropeano/f2f/internal/handler"
	"github.com/davetropeano/f2f/internal/translator"
)

func main() {
	logger := kitlog.NewJSONLogger(os.Stderr)
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	cfg := config.FromEnv()
	h := handler.New(translator.NewClient(cfg.APIKey, cfg.URL), logger, cfg.ErrorMode)

	level.Info(logger).Log("msg", "translate proxy starting", "error_mode", cfg.ErrorMode)

	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		return handleRequest(ctx, h, logger, event)
	})
}

func handleRequest(ctx context.Context, h *handler.Handler, logger kitlog.Logger, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, logger, warmup)
	}

	// Parse the platform event and delegate to the handler
	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return h.Handle(ctx, req)
}
