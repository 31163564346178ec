package catalog

import (
	"context"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

// ListSnapshot is the outcome of a catalog load. Degraded means the
// fetch failed and the (empty) listing should be presented as such,
// not treated as an error.
type ListSnapshot struct {
	Problems []domain.Problem
	Degraded bool
}

// ICatalogService lists problems and drives the two-step
// confirm-then-commit deletion of a problem the current identity owns.
type ICatalogService interface {
	// Load fetches the problem list. Failures degrade to an empty
	// listing instead of propagating.
	Load(ctx context.Context, filters domain.ProblemFilters) ListSnapshot

	// Problems returns the in-memory listing from the last Load,
	// minus any problems deleted since.
	Problems() []domain.Problem

	// CanDelete reports whether the current identity owns the
	// problem. Deletion is only ever offered when it does.
	CanDelete(p domain.Problem) bool

	// RequestDelete records the pending delete intent. Pure: no
	// network call, no list mutation.
	RequestDelete(problemID, title string)

	// PendingDelete returns the intent awaiting confirmation, if any.
	PendingDelete() (domain.DeleteIntent, bool)

	// ConfirmDelete commits the pending intent. The intent is cleared
	// whether the deletion succeeds or fails; the problem leaves the
	// in-memory list only on success.
	ConfirmDelete(ctx context.Context) error

	// CancelDelete clears the intent. A no-op when none is pending.
	CancelDelete()
}
