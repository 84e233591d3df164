// Package llm is the boundary to the external text-generation API. The
// call is synchronous; the UI shows a busy indicator while it runs and
// retries are left to the user.
package llm

import (
	"context"
)

// Provider is the interface every generation backend implements.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends the prompt and returns the generated text
	Generate(ctx context.Context, prompt string) (string, error)

	// Ping checks if the provider is reachable with the configured key
	Ping(ctx context.Context) error
}
