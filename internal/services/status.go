package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/gitprompt/internal/config"
	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/logging"
	"github.com/renato0307/gitprompt/internal/ports"
	"github.com/renato0307/gitprompt/internal/render"
)

// StatusService runs the prompt pipeline: locate, read, aggregate, render.
// It keeps no state between calls.
type StatusService struct {
	locator ports.RepositoryLocator
	reader  ports.StateReader
}

// NewStatusService creates a new StatusService
func NewStatusService(locator ports.RepositoryLocator, reader ports.StateReader) *StatusService {
	return &StatusService{
		locator: locator,
		reader:  reader,
	}
}

// Locate finds the repository enclosing start
func (s *StatusService) Locate(start string) (domain.RepositoryHandle, error) {
	return s.locator.Locate(start)
}

// Snapshot runs the four independent reads concurrently.
// The first failure cancels the remaining reads; a partial snapshot is never returned.
func (s *StatusService) Snapshot(ctx context.Context, repo domain.RepositoryHandle) (domain.Snapshot, error) {
	start := time.Now()

	var snap domain.Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ref, err := s.reader.ReadRefState(ctx, repo)
		snap.Ref = ref
		return err
	})

	g.Go(func() error {
		diff, err := s.reader.ReadDiffCounts(ctx, repo)
		snap.Diff = diff
		return err
	})

	g.Go(func() error {
		stash, err := s.reader.ReadStashState(ctx, repo)
		snap.Stash = stash
		return err
	})

	g.Go(func() error {
		op, err := s.reader.ReadOperationMarker(ctx, repo)
		snap.Operation = op
		return err
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Debug("Repository read failed", "root", repo.Root, "error", err)
		return domain.Snapshot{}, err
	}

	logging.Logger.Debug("Repository read", "root", repo.Root, "duration", time.Since(start))
	return snap, nil
}

// Status locates the repository enclosing start and aggregates its state
func (s *StatusService) Status(ctx context.Context, start string) (domain.RepositoryHandle, domain.Status, error) {
	repo, err := s.locator.Locate(start)
	if err != nil {
		return domain.RepositoryHandle{}, domain.Status{}, err
	}

	snap, err := s.Snapshot(ctx, repo)
	if err != nil {
		return repo, domain.Status{}, err
	}

	return repo, snap.Aggregate(), nil
}

// Prompt returns the rendered prompt line for start.
// Outside a working tree the line is empty and the error is nil.
func (s *StatusService) Prompt(ctx context.Context, start string, cfg config.RenderConfig) (string, error) {
	_, status, err := s.Status(ctx, start)
	if err != nil {
		if domain.IsOutsideWorkTree(err) {
			logging.Logger.Debug("No working tree, rendering nothing", "start", start, "reason", err)
			return "", nil
		}
		return "", err
	}

	line := render.Render(status, cfg)
	logging.Logger.Debug("Rendered prompt", "line", line)
	return line, nil
}

// Explain returns a human-readable breakdown of the status for start
func (s *StatusService) Explain(ctx context.Context, start string, cfg config.RenderConfig) (string, error) {
	repo, status, err := s.Status(ctx, start)
	if err != nil {
		return "", err
	}

	return render.Explain(repo, status, render.Render(status, cfg)), nil
}
