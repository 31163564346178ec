package session

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// ISessionService is the narrow session surface every workflow reads
// through instead of sharing ambient mutable state.
type ISessionService interface {
	// Current returns the authenticated identity, if any.
	Current() (domain.Identity, bool)

	// Token returns the stored credential token, or "".
	Token() string

	// Establish installs a fresh identity/token pair and persists
	// both entries.
	Establish(ctx context.Context, identity domain.Identity, token string) error

	// Logout clears the credential token and identity snapshot. No
	// reader ever observes one cleared without the other.
	Logout(ctx context.Context) error
}
