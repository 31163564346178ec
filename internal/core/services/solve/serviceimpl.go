package solve

import (
	"context"
	"sync"

	"gitlab.com/algoarena-2025.net/internal/core/ports/primary"
	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/core/services/session"
	"gitlab.com/algoarena-2025.net/internal/domain"
	"gitlab.com/algoarena-2025.net/internal/static/errs"
)

var _ ISolveService = (*SolveService)(nil)

const starterCode = "// Write your code here\n\n"

type SolveService struct {
	catalog     secondary.CatalogAPI
	submissions secondary.SubmissionAPI
	sessions    session.ISessionService
	logger      primary.Logger

	mu       sync.Mutex
	problem  *domain.Problem
	cases    []domain.TestCase
	code     string
	language domain.Language
	state    State
	result   *domain.EvaluationResult
	receipt  *domain.SubmissionReceipt
}

func NewSolveService(
	catalog secondary.CatalogAPI,
	submissions secondary.SubmissionAPI,
	sessions session.ISessionService,
	logger primary.Logger,
) *SolveService {
	return &SolveService{
		catalog:     catalog,
		submissions: submissions,
		sessions:    sessions,
		logger:      logger,
		code:        starterCode,
		language:    domain.LanguageCPP,
		state:       StateEditing,
	}
}

func (s *SolveService) LoadProblem(ctx context.Context, id string) error {
	problem, cases, err := s.catalog.Get(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load problem", "problemId", id, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.problem = problem
	s.cases = cases
	return nil
}

func (s *SolveService) Problem() (domain.Problem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.problem == nil {
		return domain.Problem{}, false
	}
	return *s.problem, true
}

func (s *SolveService) SampleCases() []domain.TestCase {
	s.mu.Lock()
	defer s.mu.Unlock()
	samples := make([]domain.TestCase, 0, len(s.cases))
	for _, tc := range s.cases {
		if tc.IsSample {
			samples = append(samples, tc)
		}
	}
	return samples
}

func (s *SolveService) SetCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
}

func (s *SolveService) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

func (s *SolveService) SetLanguage(lang domain.Language) error {
	if !lang.Valid() {
		return errs.UnknownLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return nil
}

func (s *SolveService) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *SolveService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// beginCycle moves the session into Evaluating and clears the prior
// result. Results are never merged across cycles; a stale per-case
// entry must not be attributed to new code.
func (s *SolveService) beginCycle(clearReceipt bool) (domain.EvaluationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.problem == nil {
		return domain.EvaluationRequest{}, errs.NoProblemLoaded
	}
	if s.state == StateEvaluating {
		return domain.EvaluationRequest{}, errs.EvaluationInFlight
	}
	s.state = StateEvaluating
	s.result = nil
	if clearReceipt {
		s.receipt = nil
	}
	return domain.EvaluationRequest{
		Code:      s.code,
		Language:  s.language,
		ProblemID: s.problem.ID,
	}, nil
}

func (s *SolveService) Run(ctx context.Context) (*domain.EvaluationResult, error) {
	req, err := s.beginCycle(false)
	if err != nil {
		return nil, err
	}

	result, err := s.submissions.Run(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing
	if err != nil {
		// No result is installed: "the request failed" must stay
		// distinguishable from "0 tests passed".
		s.logger.Error("Run failed", "problemId", req.ProblemID, "error", err)
		return nil, err
	}
	s.result = result
	return result, nil
}

func (s *SolveService) Submit(ctx context.Context, confirmed bool) (*domain.SubmissionReceipt, error) {
	if !confirmed {
		return nil, errs.SubmissionNotConfirmed
	}
	if _, ok := s.sessions.Current(); !ok {
		// Decided locally; the absence of a credential needs no
		// network round-trip to discover.
		return nil, errs.AuthenticationRequired
	}

	req, err := s.beginCycle(true)
	if err != nil {
		return nil, err
	}

	outcome, err := s.submissions.Submit(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing
	if err != nil {
		s.logger.Error("Submit failed", "problemId", req.ProblemID, "error", err)
		return nil, err
	}

	receipt := &domain.SubmissionReceipt{
		SubmissionID:    outcome.Submission.ID,
		Status:          outcome.Submission.Status,
		TestCasesPassed: outcome.Submission.TestCasesPassed,
		TotalTestCases:  outcome.Submission.TotalTestCases,
		CreatedAt:       outcome.Submission.CreatedAt,
	}
	s.result = &outcome.EvaluationResult
	s.receipt = receipt
	s.logger.Info("Submission recorded",
		"problemId", req.ProblemID,
		"submissionId", receipt.SubmissionID,
		"status", receipt.Status)
	return receipt, nil
}

func (s *SolveService) Result() (*domain.EvaluationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}

func (s *SolveService) LastReceipt() (*domain.SubmissionReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.receipt == nil {
		return nil, false
	}
	return s.receipt, true
}
