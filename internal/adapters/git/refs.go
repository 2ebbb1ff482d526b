package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/logging"
)

// headInfo is what HEAD resolves to, before ahead/behind are counted
type headInfo struct {
	branch   string // Short branch name, empty when detached
	commit   string // Full commit id, empty when the branch is unborn
	upstream string // Full upstream ref name, empty when none exists locally
}

// readRefState reads HEAD and upstream through go-git and counts ahead/behind with rev-list
func readRefState(ctx context.Context, runner commandRunner, repo domain.RepositoryHandle) (domain.RawRefState, error) {
	info, err := readHeadGoGit(repo)
	if err != nil {
		// go-git refuses some repository extensions git itself understands
		logging.Logger.Debug("go-git could not read HEAD, falling back to git", "error", err)
		info, err = readHeadCLI(ctx, runner, repo)
		if err != nil {
			return domain.RawRefState{}, err
		}
	}

	var state domain.RawRefState
	if info.branch != "" {
		state.Branch = &info.branch
	}
	if info.commit != "" {
		state.Commit = &info.commit
	}
	if info.branch == "" && info.commit != "" {
		state.ShortCommit = abbreviateCommit(ctx, runner, repo, info.commit)
	}
	if info.upstream == "" {
		return state, nil
	}

	ahead, behind, err := countAheadBehind(ctx, runner, repo, info)
	if err != nil {
		return domain.RawRefState{}, err
	}

	upstream := plumbing.ReferenceName(info.upstream).Short()
	state.Upstream = &upstream
	state.Ahead = &ahead
	state.Behind = &behind
	return state, nil
}

// readHeadGoGit reads HEAD without resolving it, so unborn branches keep their name
func readHeadGoGit(repo domain.RepositoryHandle) (headInfo, error) {
	r, err := gogit.PlainOpenWithOptions(repo.Root, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return headInfo{}, fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return headInfo{}, fmt.Errorf("failed to read HEAD: %w", err)
	}

	var info headInfo
	if head.Type() == plumbing.HashReference {
		info.commit = head.Hash().String()
		return info, nil
	}

	info.branch = head.Target().Short()

	target, err := r.Reference(head.Target(), true)
	switch {
	case err == nil:
		info.commit = target.Hash().String()
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		logging.Logger.Debug("Branch has no commits yet", "branch", info.branch)
	default:
		return headInfo{}, fmt.Errorf("failed to resolve %s: %w", head.Target(), err)
	}

	info.upstream, err = upstreamGoGit(r, info.branch)
	if err != nil {
		return headInfo{}, err
	}
	return info, nil
}

// upstreamGoGit maps branch.<name>.merge through the remote's fetch refspecs.
// An upstream whose ref does not exist locally (deleted on the remote and pruned) counts as none.
func upstreamGoGit(r *gogit.Repository, branch string) (string, error) {
	cfg, err := r.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return "", nil
	}

	var candidate plumbing.ReferenceName
	if b.Remote == "." {
		candidate = b.Merge
	} else {
		remote, ok := cfg.Remotes[b.Remote]
		if !ok {
			logging.Logger.Debug("Upstream remote not configured", "branch", branch, "remote", b.Remote)
			return "", nil
		}
		for _, spec := range remote.Fetch {
			if spec.Match(b.Merge) {
				candidate = spec.Dst(b.Merge)
				break
			}
		}
	}
	if candidate == "" {
		return "", nil
	}

	if _, err := r.Storer.Reference(candidate); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logging.Logger.Debug("Upstream is gone", "branch", branch, "upstream", candidate)
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", candidate, err)
	}
	return candidate.String(), nil
}

// readHeadCLI reads the same information with git plumbing commands
func readHeadCLI(ctx context.Context, runner commandRunner, repo domain.RepositoryHandle) (headInfo, error) {
	var info headInfo

	out, err := runner.Output(ctx, repo.Root, "symbolic-ref", "--quiet", "HEAD")
	switch {
	case err == nil:
		info.branch = plumbing.ReferenceName(strings.TrimSpace(string(out))).Short()
	case exitCode(err) == 1:
		// detached
	default:
		return headInfo{}, err
	}

	out, err = runner.Output(ctx, repo.Root, "rev-parse", "--quiet", "--verify", "HEAD^{commit}")
	switch {
	case err == nil:
		info.commit = strings.TrimSpace(string(out))
	case exitCode(err) == 1:
		// unborn
	default:
		return headInfo{}, err
	}

	if info.branch == "" {
		return info, nil
	}

	out, err = runner.Output(ctx, repo.Root, "for-each-ref",
		"--format=%(upstream)%00%(upstream:track)", "refs/heads/"+info.branch)
	if err != nil {
		return headInfo{}, err
	}

	upstream, track, _ := strings.Cut(strings.TrimRight(string(out), "\n"), "\x00")
	if upstream != "" && !strings.Contains(track, "gone") {
		info.upstream = upstream
	}
	return info, nil
}

// abbreviateCommit asks git for the shortest unambiguous id of commit, honoring core.abbrev.
// Returns nil when git cannot answer; the caller falls back to a fixed-length prefix.
func abbreviateCommit(ctx context.Context, runner commandRunner, repo domain.RepositoryHandle, commit string) *string {
	out, err := runner.Output(ctx, repo.Root, "rev-parse", "--short", commit)
	if err != nil {
		logging.Logger.Debug("Could not abbreviate commit", "commit", commit, "error", err)
		return nil
	}
	short := strings.TrimSpace(string(out))
	if short == "" || !strings.HasPrefix(commit, short) {
		return nil
	}
	return &short
}

// countAheadBehind counts commits on each side of HEAD...upstream.
// An unborn branch is 0 ahead and behind by everything on the upstream.
func countAheadBehind(ctx context.Context, runner commandRunner, repo domain.RepositoryHandle, info headInfo) (ahead int, behind int, err error) {
	if info.commit == "" {
		out, err := runner.Output(ctx, repo.Root, "rev-list", "--count", info.upstream, "--")
		if err != nil {
			return 0, 0, err
		}
		behind, err = parseCount(strings.TrimSpace(string(out)))
		return 0, behind, err
	}

	out, err := runner.Output(ctx, repo.Root, "rev-list", "--left-right", "--count", "HEAD..."+info.upstream, "--")
	if err != nil {
		return 0, 0, err
	}
	return parseAheadBehind(string(out))
}

// parseAheadBehind parses "AHEAD\tBEHIND" as printed by rev-list --left-right --count
func parseAheadBehind(output string) (ahead int, behind int, err error) {
	parts := strings.Fields(strings.TrimSpace(output))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", output)
	}

	ahead, err = parseCount(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count: %w", err)
	}

	behind, err = parseCount(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count: %w", err)
	}

	return ahead, behind, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// exitCode returns the exit status of a failed git command, or -1
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
