// Package main runs the translate proxy as a local HTTP server. It wires the
// same handler the Lambda entry point uses behind a plain listener, so the
// function can be exercised before deploying.
package main

import (
	"net/http"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/davetropeano/f2f/internal/config"
	"github.com/davetropeano/f2f/internal/gateway"
	"github.com/davetropeano/f2f/internal/handler"
	"github.com/davetropeano/f2f/internal/translator"
)

func main() {
	logger := kitlog.NewJSONLogger(os.Stderr)
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.FromEnv()
	h := handler.New(translator.NewClient(cfg.APIKey, cfg.URL), logger, cfg.ErrorMode)

	level.Info(logger).Log("msg", "translate proxy listening", "port", port, "error_mode", cfg.ErrorMode)

	if err := http.ListenAndServe(":"+port, gateway.MakeHandler(h, logger)); err != nil {
		level.Error(logger).Log("msg", "server failed", "err", err)
		os.Exit(1)
	}
}
