package crypto

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
)

var _ primary.TokenInspector = (*TokenService)(nil)

var (
	ErrInvalidToken = fmt.Errorf("invalid token")
)

// TokenService inspects credential tokens issued by the identity
// service. It never verifies signatures; the token is opaque material
// presented back to the server, the client only reads the expiry so a
// dead token is discarded instead of restored.
type TokenService struct{}

func NewTokenService() *TokenService {
	return &TokenService{}
}

func (TokenService) Expiry(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidToken
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to decode token payload: %w", err)
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
