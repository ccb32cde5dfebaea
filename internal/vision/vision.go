// Package vision asks an image model to describe an uploaded picture.
package vision

import (
	"context"
	"errors"
)

var (
	ErrDisabled         = errors.New("vision classifier is disabled")
	ErrBlocked          = errors.New("vision model blocked the request")
	ErrEmptyResponse    = errors.New("vision model returned no text")
	ErrUnsupportedModel = errors.New("vision model does not support generateContent")
)

// Classifier returns the raw text the model produced for an image.
// Callers treat every error as "no suggestion".
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) (string, error)
	// Ping checks that the configured model is reachable and usable.
	Ping(ctx context.Context) error
	Model() string
}

// Disabled is the Classifier used when no API key is configured.
type Disabled struct{}

func (Disabled) Classify(context.Context, []byte, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Ping(context.Context) error { return ErrDisabled }

func (Disabled) Model() string { return "" }
