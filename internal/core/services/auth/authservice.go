package auth

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// IAuthService drives login and registration against the identity
// collaborator and installs the resulting session.
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (domain.Identity, error)
	Login(ctx context.Context, email, password string) (domain.Identity, error)

	// Profile re-fetches the identity behind the stored credential.
	// An unauthorized response here force-clears the session at the
	// gateway.
	Profile(ctx context.Context) (domain.Identity, error)
}
