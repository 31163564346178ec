package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

var _ ISessionService = (*SessionService)(nil)

type SessionService struct {
	store  secondary.LocalStateStore
	tokens primary.TokenInspector
	logger primary.Logger

	mu       sync.RWMutex
	identity *domain.Identity
	token    string
}

// NewSessionService restores the persisted session, purely locally.
// A corrupt snapshot, a half-present pair or an expired token wipes
// the stored state and the process starts unauthenticated.
func NewSessionService(store secondary.LocalStateStore, tokens primary.TokenInspector, logger primary.Logger) *SessionService {
	s := &SessionService{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
	s.restore(context.Background())
	return s
}

func (s *SessionService) restore(ctx context.Context) {
	token, snapshot, err := s.store.LoadSession(ctx)
	if err != nil {
		s.logger.Warn("Failed to read stored session, starting unauthenticated", "error", err)
		return
	}
	if token == "" && len(snapshot) == 0 {
		return
	}

	// The two entries are valid only as a pair.
	if token == "" || len(snapshot) == 0 {
		s.wipe(ctx, "stored session is incomplete")
		return
	}

	var identity domain.Identity
	if err := json.Unmarshal(snapshot, &identity); err != nil {
		s.wipe(ctx, "stored identity snapshot is corrupt")
		return
	}

	if expiry, err := s.tokens.Expiry(token); err != nil {
		s.wipe(ctx, "stored credential token is unreadable")
		return
	} else if !expiry.IsZero() && expiry.Before(time.Now()) {
		s.wipe(ctx, "stored credential token has expired")
		return
	}

	s.identity = &identity
	s.token = token
	s.logger.Info("Session restored", "username", identity.Username)
}

func (s *SessionService) wipe(ctx context.Context, reason string) {
	s.logger.Warn("Discarding stored session", "reason", reason)
	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Error("Failed to clear stored session", "error", err)
	}
}

func (s *SessionService) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionService) Establish(ctx context.Context, identity domain.Identity, token string) error {
	snapshot, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveSession(ctx, token, snapshot); err != nil {
		return err
	}
	s.identity = &identity
	s.token = token
	return nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// In-memory state is cleared unconditionally; a forced logout must
	// never leave a readable identity behind because the disk write
	// failed.
	s.identity = nil
	s.token = ""
	return s.store.ClearSession(ctx)
}
