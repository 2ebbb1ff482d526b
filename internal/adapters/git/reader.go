package git

import (
	"context"

	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/logging"
	"github.com/renato0307/gitprompt/internal/ports"
)

// ReaderOptions configure the State Reader
type ReaderOptions struct {
	GitBinary           string             // Defaults to "git" on PATH
	OperationPrecedence []domain.Operation // Nil means domain.DefaultOperationPrecedence
	Untracked           string             // One of UntrackedAll, UntrackedNormal, UntrackedNo
}

// Reader implements ports.StateReader using go-git, local git commands and
// direct reads of repository metadata. It never fetches and never retries.
type Reader struct {
	precedence []domain.Operation
	runner     commandRunner
	untracked  string
}

// Verify interface compliance at compile time
var _ ports.StateReader = (*Reader)(nil)

// NewReader creates a new Reader
func NewReader(opts ReaderOptions) *Reader {
	return newReaderWithRunner(opts, newExecRunner(opts.GitBinary))
}

func newReaderWithRunner(opts ReaderOptions, runner commandRunner) *Reader {
	untracked := opts.Untracked
	if untracked == "" {
		untracked = UntrackedAll
	}
	return &Reader{
		precedence: opts.OperationPrecedence,
		runner:     runner,
		untracked:  untracked,
	}
}

// ReadRefState implements RefReader.ReadRefState
func (r *Reader) ReadRefState(ctx context.Context, repo domain.RepositoryHandle) (domain.RawRefState, error) {
	state, err := readRefState(ctx, r.runner, repo)
	if err != nil {
		return domain.RawRefState{}, domain.NewReadError(domain.ErrRefRead, repo.Root, err)
	}

	logging.Logger.Debug("Read ref state",
		"branch", derefString(state.Branch),
		"commit", derefString(state.Commit),
		"upstream", derefString(state.Upstream))
	return state, nil
}

// ReadDiffCounts implements DiffCounter.ReadDiffCounts
func (r *Reader) ReadDiffCounts(ctx context.Context, repo domain.RepositoryHandle) (domain.RawDiffCounts, error) {
	counts, err := readDiffCounts(ctx, r.runner, repo, r.untracked)
	if err != nil {
		return domain.RawDiffCounts{}, domain.NewReadError(domain.ErrDiffComputation, repo.Root, err)
	}

	logging.Logger.Debug("Read diff counts",
		"staged", counts.Staged,
		"unstaged", counts.Unstaged,
		"untracked", counts.Untracked,
		"conflicted", counts.Conflicted)
	return counts, nil
}

// ReadStashState implements StashReader.ReadStashState
func (r *Reader) ReadStashState(ctx context.Context, repo domain.RepositoryHandle) (domain.RawStashState, error) {
	stash, err := readStashState(repo)
	if err != nil {
		return domain.RawStashState{}, domain.NewReadError(domain.ErrStashRead, repo.CommonDir, err)
	}

	logging.Logger.Debug("Read stash state", "count", stash.Count)
	return stash, nil
}

// ReadOperationMarker implements OperationDetector.ReadOperationMarker
func (r *Reader) ReadOperationMarker(ctx context.Context, repo domain.RepositoryHandle) (domain.Operation, error) {
	present, err := detectOperations(repo.GitDir)
	if err != nil {
		return domain.OperationNone, domain.NewReadError(domain.ErrMarkerRead, repo.GitDir, err)
	}

	op := domain.ResolveOperation(present, r.precedence)
	logging.Logger.Debug("Read operation markers", "present", present, "operation", op.String())
	return op, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
