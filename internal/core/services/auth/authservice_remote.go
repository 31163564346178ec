package auth

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/core/services/session"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

var _ IAuthService = &remoteAuthService{}

type remoteAuthService struct {
	api      secondary.IdentityAPI
	sessions session.ISessionService
	logger   primary.Logger
}

func NewRemoteAuthService(
	api secondary.IdentityAPI,
	sessions session.ISessionService,
	logger primary.Logger,
) IAuthService {
	return &remoteAuthService{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *remoteAuthService) Register(ctx context.Context, username, email, password string) (domain.Identity, error) {
	identity, token, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := s.sessions.Establish(ctx, *identity, token); err != nil {
		s.logger.Error("Failed to persist session after registration", "error", err)
		return domain.Identity{}, err
	}
	s.logger.Info("Registered", "username", identity.Username)
	return *identity, nil
}

func (s *remoteAuthService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	identity, token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := s.sessions.Establish(ctx, *identity, token); err != nil {
		s.logger.Error("Failed to persist session after login", "error", err)
		return domain.Identity{}, err
	}
	s.logger.Info("Logged in", "username", identity.Username)
	return *identity, nil
}

func (s *remoteAuthService) Profile(ctx context.Context) (domain.Identity, error) {
	identity, err := s.api.Profile(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	return *identity, nil
}
