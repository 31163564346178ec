package solve

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// State is the evaluation state machine position of a solving session.
type State string

const (
	StateEditing    State = "editing"
	StateEvaluating State = "evaluating"
)

// ISolveService manages one problem-solving session: the source text,
// the selected language, the in-flight evaluation and the installed
// result set.
//
// Run is non-committal and needs no authentication. Submit requires an
// explicit confirmation and a present identity, both checked locally
// before anything reaches the network, and creates a persisted
// Submission on the server.
type ISolveService interface {
	// LoadProblem fetches the problem and its visible test cases.
	LoadProblem(ctx context.Context, id string) error

	Problem() (domain.Problem, bool)

	// SampleCases returns the sample test cases shown to the solver,
	// in catalog order.
	SampleCases() []domain.TestCase

	SetCode(code string)
	Code() string

	// SetLanguage rejects values outside the closed language set.
	SetLanguage(lang domain.Language) error
	Language() domain.Language

	State() State

	// Run evaluates the current code without creating a record. The
	// prior result is cleared first; a failed request installs
	// nothing.
	Run(ctx context.Context) (*domain.EvaluationResult, error)

	// Submit commits the current code. confirmed is the explicit user
	// confirmation; without it, or without an identity, the call
	// short-circuits locally.
	Submit(ctx context.Context, confirmed bool) (*domain.SubmissionReceipt, error)

	// Result returns the evaluation detail installed by the last
	// completed cycle, if any.
	Result() (*domain.EvaluationResult, bool)

	// LastReceipt returns the acknowledgment of the last successful
	// submit, if any.
	LastReceipt() (*domain.SubmissionReceipt, bool)
}
