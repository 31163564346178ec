package secondary

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// IdentityAPI is the remote identity collaborator.
type IdentityAPI interface {
	// Register creates an account and returns the identity with its
	// credential token.
	Register(ctx context.Context, username, email, password string) (*domain.Identity, string, error)

	// Login exchanges credentials for an identity and token.
	Login(ctx context.Context, email, password string) (*domain.Identity, string, error)

	// Profile fetches the identity behind the attached token.
	Profile(ctx context.Context) (*domain.Identity, error)
}

// CatalogAPI is the remote problem catalog collaborator.
type CatalogAPI interface {
	List(ctx context.Context, filters domain.ProblemFilters) ([]domain.Problem, error)

	// Get returns a problem together with its visible test cases.
	Get(ctx context.Context, id string) (*domain.Problem, []domain.TestCase, error)

	Create(ctx context.Context, draft domain.ProblemDraft) (*domain.Problem, error)

	Update(ctx context.Context, id string, patch domain.ProblemPatch) (*domain.Problem, error)

	Delete(ctx context.Context, id string) error

	TestCases(ctx context.Context, id string) ([]domain.TestCase, error)
}

// GenerationAPI is the natural-language problem generator.
type GenerationAPI interface {
	Generate(ctx context.Context, description string) (*domain.Problem, error)
}

// SubmissionAPI is the remote evaluation collaborator.
type SubmissionAPI interface {
	// Run evaluates code without creating a persisted record.
	Run(ctx context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error)

	// Submit evaluates code and creates a persisted Submission.
	Submit(ctx context.Context, req domain.EvaluationRequest) (*domain.SubmitOutcome, error)

	// Mine lists the current identity's submissions, optionally
	// narrowed to one problem.
	Mine(ctx context.Context, problemID string) ([]domain.Submission, error)

	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
}
