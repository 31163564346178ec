package catalog

import (
	"context"
	"sync"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/core/services/session"
	"gitlab.com/algoarena-2025.net/internal/domain"
	"gitlab.com/algoarena-2025.net/internal/static/errs"
)

var _ ICatalogService = (*CatalogService)(nil)

type CatalogService struct {
	api      secondary.CatalogAPI
	sessions session.ISessionService
	logger   primary.Logger

	mu       sync.Mutex
	problems []domain.Problem
	pending  *domain.DeleteIntent
}

func NewCatalogService(api secondary.CatalogAPI, sessions session.ISessionService, logger primary.Logger) *CatalogService {
	return &CatalogService{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *CatalogService) Load(ctx context.Context, filters domain.ProblemFilters) ListSnapshot {
	problems, err := s.api.List(ctx, filters)
	if err != nil {
		s.logger.Error("Failed to load problem list", "error", err)
		s.mu.Lock()
		s.problems = nil
		s.mu.Unlock()
		return ListSnapshot{Degraded: true}
	}

	s.mu.Lock()
	s.problems = problems
	s.mu.Unlock()
	return ListSnapshot{Problems: problems}
}

func (s *CatalogService) Problems() []domain.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Problem, len(s.problems))
	copy(out, s.problems)
	return out
}

func (s *CatalogService) CanDelete(p domain.Problem) bool {
	identity, ok := s.sessions.Current()
	return ok && p.CreatedBy.ID == identity.ID
}

func (s *CatalogService) RequestDelete(problemID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &domain.DeleteIntent{ProblemID: problemID, Title: title}
}

func (s *CatalogService) PendingDelete() (domain.DeleteIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return domain.DeleteIntent{}, false
	}
	return *s.pending, true
}

func (s *CatalogService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return errs.NoPendingDelete
	}
	// The intent is consumed up front: success and failure both leave
	// no stale confirmation hanging, and a second confirm cannot
	// re-fire the same deletion.
	intent := *s.pending
	s.pending = nil
	s.mu.Unlock()

	if err := s.api.Delete(ctx, intent.ProblemID); err != nil {
		s.logger.Error("Failed to delete problem", "problemId", intent.ProblemID, "error", err)
		return err
	}

	// Filtered into a fresh slice: snapshots handed out by Load share
	// the old backing array and must not see entries shift.
	s.mu.Lock()
	kept := make([]domain.Problem, 0, len(s.problems))
	for _, p := range s.problems {
		if p.ID != intent.ProblemID {
			kept = append(kept, p)
		}
	}
	s.problems = kept
	s.mu.Unlock()

	s.logger.Info("Problem deleted", "problemId", intent.ProblemID, "title", intent.Title)
	return nil
}

func (s *CatalogService) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}
