// Package translator provides the client for the hosted translation service.
package translator

import (
	"context"
	"encoding/json"
)

// Query is a single translation request: the text to translate plus the model
// identifier naming the source to target language pair.
type Query struct {
	Text    string
	ModelID string
}

// Translator is the outbound translation capability. Implementations issue
// exactly one remote call per Translate; they do not retry and do not cache.
type Translator interface {
	Translate(ctx context.Context, q Query) (json.RawMessage, error)
}
