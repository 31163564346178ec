package solve

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
	"gitlab.com/algoarena-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeSessions struct {
	identity *domain.Identity
}

func (f fakeSessions) Current() (domain.Identity, bool) {
	if f.identity == nil {
		return domain.Identity{}, false
	}
	return *f.identity, true
}

func (f fakeSessions) Token() string { return "" }

func (f fakeSessions) Establish(context.Context, domain.Identity, string) error { return nil }

func (f fakeSessions) Logout(context.Context) error { return nil }

type fakeCatalogAPI struct {
	problem *domain.Problem
	cases   []domain.TestCase
	err     error
}

func (f *fakeCatalogAPI) List(context.Context, domain.ProblemFilters) ([]domain.Problem, error) {
	return nil, errors.New("not used")
}

func (f *fakeCatalogAPI) Get(context.Context, string) (*domain.Problem, []domain.TestCase, error) {
	return f.problem, f.cases, f.err
}

func (f *fakeCatalogAPI) Create(context.Context, domain.ProblemDraft) (*domain.Problem, error) {
	return nil, errors.New("not used")
}

func (f *fakeCatalogAPI) Update(context.Context, string, domain.ProblemPatch) (*domain.Problem, error) {
	return nil, errors.New("not used")
}

func (f *fakeCatalogAPI) Delete(context.Context, string) error { return errors.New("not used") }

func (f *fakeCatalogAPI) TestCases(context.Context, string) ([]domain.TestCase, error) {
	return f.cases, nil
}

type fakeSubmissionAPI struct {
	runResult *domain.EvaluationResult
	runErr    error
	runCalls  int
	lastRun   domain.EvaluationRequest

	outcome     *domain.SubmitOutcome
	submitErr   error
	submitCalls int
}

func (f *fakeSubmissionAPI) Run(_ context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	f.runCalls++
	f.lastRun = req
	if f.runErr != nil {
		return nil, f.runErr
	}
	return f.runResult, nil
}

func (f *fakeSubmissionAPI) Submit(_ context.Context, req domain.EvaluationRequest) (*domain.SubmitOutcome, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.outcome, nil
}

func (f *fakeSubmissionAPI) Mine(context.Context, string) ([]domain.Submission, error) {
	return nil, errors.New("not used")
}

func (f *fakeSubmissionAPI) GetSubmission(context.Context, string) (*domain.Submission, error) {
	return nil, errors.New("not used")
}

func newLoadedService(t *testing.T, subs secondary.SubmissionAPI, sessions fakeSessions) *SolveService {
	t.Helper()
	catalogAPI := &fakeCatalogAPI{
		problem: &domain.Problem{ID: "p1", Title: "Two Sum"},
		cases: []domain.TestCase{
			{Input: "1 2", ExpectedOutput: "3", IsSample: true},
			{Input: "5 5", ExpectedOutput: "10", IsSample: false},
		},
	}
	svc := NewSolveService(catalogAPI, subs, sessions, nopLogger{})
	require.NoError(t, svc.LoadProblem(context.Background(), "p1"))
	return svc
}

func TestNewSessionDefaults(t *testing.T) {
	svc := NewSolveService(&fakeCatalogAPI{}, &fakeSubmissionAPI{}, fakeSessions{}, nopLogger{})

	assert.Equal(t, "// Write your code here\n\n", svc.Code())
	assert.Equal(t, domain.LanguageCPP, svc.Language())
	assert.Equal(t, StateEditing, svc.State())
}

func TestSampleCasesFiltersHiddenCases(t *testing.T) {
	svc := newLoadedService(t, &fakeSubmissionAPI{}, fakeSessions{})

	samples := svc.SampleCases()
	require.Len(t, samples, 1)
	assert.Equal(t, "1 2", samples[0].Input)
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	svc := NewSolveService(&fakeCatalogAPI{}, &fakeSubmissionAPI{}, fakeSessions{}, nopLogger{})

	err := svc.SetLanguage("rust")
	assert.ErrorIs(t, err, errs.UnknownLanguage)
	assert.Equal(t, domain.LanguageCPP, svc.Language())

	require.NoError(t, svc.SetLanguage(domain.LanguagePython))
	assert.Equal(t, domain.LanguagePython, svc.Language())
}

func TestRunWithoutProblem(t *testing.T) {
	svc := NewSolveService(&fakeCatalogAPI{}, &fakeSubmissionAPI{}, fakeSessions{}, nopLogger{})

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, errs.NoProblemLoaded)
}

func TestRunInstallsResult(t *testing.T) {
	subs := &fakeSubmissionAPI{
		runResult: &domain.EvaluationResult{
			Results: []domain.CaseResult{
				{Passed: true}, {Passed: true}, {Passed: false},
			},
			TotalPassed:    2,
			TotalTestCases: 3,
		},
	}
	svc := newLoadedService(t, subs, fakeSessions{})
	svc.SetCode("print(sum(map(int, input().split())))")
	require.NoError(t, svc.SetLanguage(domain.LanguagePython))

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalPassed)
	assert.Equal(t, 3, result.TotalTestCases)

	assert.Equal(t, "p1", subs.lastRun.ProblemID)
	assert.Equal(t, domain.LanguagePython, subs.lastRun.Language)

	installed, ok := svc.Result()
	require.True(t, ok)
	assert.Equal(t, result, installed)
	assert.Equal(t, StateEditing, svc.State())
}

func TestRunNeedsNoIdentity(t *testing.T) {
	subs := &fakeSubmissionAPI{runResult: &domain.EvaluationResult{TotalTestCases: 1}}
	svc := newLoadedService(t, subs, fakeSessions{})

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, subs.runCalls)
}

func TestRunReplacesResultNotMerges(t *testing.T) {
	subs := &fakeSubmissionAPI{
		runResult: &domain.EvaluationResult{
			Results:        []domain.CaseResult{{Passed: false}, {Passed: false}, {Passed: false}},
			TotalPassed:    0,
			TotalTestCases: 3,
		},
	}
	svc := newLoadedService(t, subs, fakeSessions{})
	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	subs.runResult = &domain.EvaluationResult{
		Results:        []domain.CaseResult{{Passed: true}, {Passed: true}},
		TotalPassed:    2,
		TotalTestCases: 2,
	}
	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	assert.Equal(t, 2, result.TotalPassed)
	installed, _ := svc.Result()
	assert.Len(t, installed.Results, 2)
}

func TestRunFailureInstallsNothing(t *testing.T) {
	subs := &fakeSubmissionAPI{
		runResult: &domain.EvaluationResult{TotalPassed: 1, TotalTestCases: 1},
	}
	svc := newLoadedService(t, subs, fakeSessions{})
	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	subs.runErr = &domain.APIError{StatusCode: 500, Message: "judge crashed"}
	_, err = svc.Run(context.Background())
	require.Error(t, err)

	// The stale result from the earlier run is gone, not resurrected.
	_, ok := svc.Result()
	assert.False(t, ok)
	assert.Equal(t, StateEditing, svc.State())
}

// reentrantSubmissionAPI triggers a second evaluation from inside the
// first one's gateway call, while the session is still Evaluating.
type reentrantSubmissionAPI struct {
	fakeSubmissionAPI
	svc        *SolveService
	reenter    func(ctx context.Context, svc *SolveService) error
	reenterErr error
}

func (f *reentrantSubmissionAPI) Run(ctx context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	f.reenterErr = f.reenter(ctx, f.svc)
	return f.fakeSubmissionAPI.Run(ctx, req)
}

func (f *reentrantSubmissionAPI) Submit(ctx context.Context, req domain.EvaluationRequest) (*domain.SubmitOutcome, error) {
	f.reenterErr = f.reenter(ctx, f.svc)
	return f.fakeSubmissionAPI.Submit(ctx, req)
}

func TestRunWhileEvaluatingIsRejected(t *testing.T) {
	subs := &reentrantSubmissionAPI{
		fakeSubmissionAPI: fakeSubmissionAPI{runResult: &domain.EvaluationResult{TotalTestCases: 1}},
		reenter: func(ctx context.Context, svc *SolveService) error {
			_, err := svc.Run(ctx)
			return err
		},
	}
	svc := newLoadedService(t, subs, fakeSessions{})
	subs.svc = svc

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, subs.reenterErr, errs.EvaluationInFlight)
	assert.Equal(t, 1, subs.runCalls)
}

func TestSubmitWhileEvaluatingIsRejected(t *testing.T) {
	identity := domain.Identity{ID: "u1"}
	subs := &reentrantSubmissionAPI{
		fakeSubmissionAPI: fakeSubmissionAPI{
			outcome: &domain.SubmitOutcome{
				Submission: domain.Submission{ID: "s1", Status: domain.StatusAccepted},
			},
		},
		reenter: func(ctx context.Context, svc *SolveService) error {
			_, err := svc.Submit(ctx, true)
			return err
		},
	}
	svc := newLoadedService(t, subs, fakeSessions{identity: &identity})
	subs.svc = svc

	_, err := svc.Submit(context.Background(), true)
	require.NoError(t, err)
	assert.ErrorIs(t, subs.reenterErr, errs.EvaluationInFlight)
	assert.Equal(t, 1, subs.submitCalls)
}

func TestSubmitUnconfirmedShortCircuits(t *testing.T) {
	subs := &fakeSubmissionAPI{}
	identity := domain.Identity{ID: "u1"}
	svc := newLoadedService(t, subs, fakeSessions{identity: &identity})

	_, err := svc.Submit(context.Background(), false)
	assert.ErrorIs(t, err, errs.SubmissionNotConfirmed)
	assert.Zero(t, subs.submitCalls)
}

func TestSubmitWithoutIdentityShortCircuits(t *testing.T) {
	subs := &fakeSubmissionAPI{}
	svc := newLoadedService(t, subs, fakeSessions{})

	_, err := svc.Submit(context.Background(), true)
	assert.ErrorIs(t, err, errs.AuthenticationRequired)
	assert.Zero(t, subs.submitCalls)
}

func TestSubmitInstallsReceiptAndResult(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	subs := &fakeSubmissionAPI{
		outcome: &domain.SubmitOutcome{
			Submission: domain.Submission{
				ID:              "s1",
				Status:          domain.StatusAccepted,
				TestCasesPassed: 3,
				TotalTestCases:  3,
				CreatedAt:       created,
			},
			EvaluationResult: domain.EvaluationResult{
				Results:        []domain.CaseResult{{Passed: true}, {Passed: true}, {Passed: true}},
				TotalPassed:    3,
				TotalTestCases: 3,
			},
		},
	}
	identity := domain.Identity{ID: "u1"}
	svc := newLoadedService(t, subs, fakeSessions{identity: &identity})

	receipt, err := svc.Submit(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "s1", receipt.SubmissionID)
	assert.Equal(t, domain.StatusAccepted, receipt.Status)
	assert.Equal(t, 3, receipt.TestCasesPassed)
	assert.Equal(t, created, receipt.CreatedAt)

	result, ok := svc.Result()
	require.True(t, ok)
	assert.Equal(t, 3, result.TotalPassed)

	stored, ok := svc.LastReceipt()
	require.True(t, ok)
	assert.Equal(t, receipt, stored)
	assert.Equal(t, StateEditing, svc.State())
}

func TestSubmitFailureClearsPriorReceipt(t *testing.T) {
	identity := domain.Identity{ID: "u1"}
	subs := &fakeSubmissionAPI{
		outcome: &domain.SubmitOutcome{
			Submission: domain.Submission{ID: "s1", Status: domain.StatusAccepted},
		},
	}
	svc := newLoadedService(t, subs, fakeSessions{identity: &identity})

	_, err := svc.Submit(context.Background(), true)
	require.NoError(t, err)

	subs.submitErr = errors.New("judge down")
	_, err = svc.Submit(context.Background(), true)
	require.Error(t, err)

	_, ok := svc.LastReceipt()
	assert.False(t, ok)
	_, ok = svc.Result()
	assert.False(t, ok)
}
