package secondary

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// LocalStateStore is the process-local persistence boundary: the two
// session entries (credential token, identity snapshot) and the
// last-known submission history.
type LocalStateStore interface {
	// SaveSession writes both session entries in one transaction.
	SaveSession(ctx context.Context, token string, identity []byte) error

	// LoadSession returns the stored entries. Absent entries come back
	// zero-valued with a nil error; the caller decides what a partial
	// pair means.
	LoadSession(ctx context.Context) (token string, identity []byte, err error)

	// ClearSession removes both entries atomically.
	ClearSession(ctx context.Context) error

	// SaveSubmissions replaces the cached submission history.
	SaveSubmissions(ctx context.Context, subs []domain.Submission) error

	// CachedSubmissions returns the last successfully fetched history,
	// newest first.
	CachedSubmissions(ctx context.Context) ([]domain.Submission, error)

	Close() error
}
