package generate

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// IGenerateService turns a free-text description into a new problem.
// One instance backs one authoring session; after a successful
// generation the caller navigates to the problem and discards it.
type IGenerateService interface {
	SetDescription(text string)
	Description() string

	// Generating reports whether a request is in flight.
	Generating() bool

	// LastError returns the message to surface for the most recent
	// failure, or "".
	LastError() string

	// Generate validates the description locally, then requests
	// generation. On failure the entered text is preserved for retry.
	Generate(ctx context.Context) (*domain.Problem, error)
}
