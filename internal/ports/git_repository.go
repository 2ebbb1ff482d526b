package ports

import (
	"context"

	"github.com/renato0307/gitprompt/internal/domain"
)

// RepositoryLocator finds the repository enclosing a directory
type RepositoryLocator interface {
	// Locate returns domain.ErrNotARepository when no repository encloses start,
	// and domain.ErrBareRepository when the nearest one has no working tree.
	Locate(start string) (domain.RepositoryHandle, error)
}

// RefReader reads branch, commit and upstream information
type RefReader interface {
	ReadRefState(ctx context.Context, repo domain.RepositoryHandle) (domain.RawRefState, error)
}

// DiffCounter counts changed paths across HEAD, index and worktree
type DiffCounter interface {
	ReadDiffCounts(ctx context.Context, repo domain.RepositoryHandle) (domain.RawDiffCounts, error)
}

// StashReader counts stash entries
type StashReader interface {
	ReadStashState(ctx context.Context, repo domain.RepositoryHandle) (domain.RawStashState, error)
}

// OperationDetector detects in-progress merge, rebase, cherry-pick and bisect
type OperationDetector interface {
	ReadOperationMarker(ctx context.Context, repo domain.RepositoryHandle) (domain.Operation, error)
}

// StateReader is the composite interface.
// Each read is independent, read-only and performs no retries.
type StateReader interface {
	DiffCounter
	OperationDetector
	RefReader
	StashReader
}
