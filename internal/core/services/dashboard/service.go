package dashboard

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// Overview is the dashboard read model. SignedIn false means "prompt
// to log in" and is distinct from a signed-in identity with zero
// submissions. Stale marks a listing served from the local cache
// after a fetch failure.
type Overview struct {
	SignedIn    bool
	Identity    domain.Identity
	Submissions []domain.Submission
	Stale       bool
}

type IDashboardService interface {
	Overview(ctx context.Context) (Overview, error)
}
