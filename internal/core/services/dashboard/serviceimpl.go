package dashboard

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/core/services/session"
)

var _ IDashboardService = (*DashboardService)(nil)

type DashboardService struct {
	submissions secondary.SubmissionAPI
	store       secondary.LocalStateStore
	sessions    session.ISessionService
	logger      primary.Logger
}

func NewDashboardService(
	submissions secondary.SubmissionAPI,
	store secondary.LocalStateStore,
	sessions session.ISessionService,
	logger primary.Logger,
) *DashboardService {
	return &DashboardService{
		submissions: submissions,
		store:       store,
		sessions:    sessions,
		logger:      logger,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	identity, ok := s.sessions.Current()
	if !ok {
		return Overview{}, nil
	}

	subs, err := s.submissions.Mine(ctx, "")
	if err != nil {
		s.logger.Warn("Failed to fetch submissions, trying local cache", "error", err)
		cached, cacheErr := s.store.CachedSubmissions(ctx)
		if cacheErr == nil && len(cached) > 0 {
			return Overview{SignedIn: true, Identity: identity, Submissions: cached, Stale: true}, nil
		}
		return Overview{SignedIn: true, Identity: identity}, err
	}

	if err := s.store.SaveSubmissions(ctx, subs); err != nil {
		s.logger.Warn("Failed to cache submissions", "error", err)
	}
	return Overview{SignedIn: true, Identity: identity, Submissions: subs}, nil
}
