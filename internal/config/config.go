// Package config reads the process-wide settings for the translate proxy.
package config

import "os"

// Environment variables read at process start.
const (
	EnvAPIKey    = "TRANSLATOR_APIKEY"
	EnvURL       = "TRANSLATOR_URL"
	EnvErrorMode = "ERROR_MODE"
)

// ErrorMode selects how outbound translation failures map to HTTP responses.
type ErrorMode string

const (
	// ErrorModeLegacy reproduces the behavior of the function this service was
	// migrated from: failures are logged and the caller still receives 200
	// with an empty body.
	ErrorModeLegacy ErrorMode = "legacy"

	// ErrorModeStatus maps outbound failures to 502 with an error body.
	ErrorModeStatus ErrorMode = "status"
)

// Config holds the process-wide settings. Values are read once at startup and
// never change for the process lifetime.
type Config struct {
	APIKey    string
	URL       string
	ErrorMode ErrorMode
}

// FromEnv reads the configuration from the process environment.
// The credential and URL are not validated here: a missing or wrong value
// surfaces as a failure on the first outbound call.
func FromEnv() Config {
	mode := ErrorMode(os.Getenv(EnvErrorMode))
	if mode != ErrorModeStatus {
		mode = ErrorModeLegacy
	}

	return Config{
		APIKey:    os.Getenv(EnvAPIKey),
		URL:       os.Getenv(EnvURL),
		ErrorMode: mode,
	}
}
