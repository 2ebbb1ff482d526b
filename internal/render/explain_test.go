package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/gitprompt/internal/domain"
)

func TestExplain(t *testing.T) {
	repo := domain.RepositoryHandle{
		CommonDir: "/src/app/.git",
		GitDir:    "/src/app/.git/worktrees/feature",
		Root:      "/src/feature",
	}
	status := domain.Status{
		Head:       domain.OnBranch("feature"),
		Tracking:   domain.TrackingUpstream("origin/feature", 2, 1),
		Changes:    domain.Changes{Staged: 3},
		Operation:  domain.OperationRebase,
		StashCount: 1,
	}

	out := Explain(repo, status, "[feature ↑2↓1 ●3 REBASING ⚑1]")

	assert.Contains(t, out, "Repository")
	assert.Contains(t, out, "/src/feature")
	assert.Contains(t, out, "/src/app/.git/worktrees/feature")
	assert.Contains(t, out, "/src/app/.git")
	assert.Contains(t, out, "on branch")
	assert.Contains(t, out, "origin/feature")
	assert.Contains(t, out, "ahead 2")
	assert.Contains(t, out, "behind 1")
	assert.Contains(t, out, "rebase")
	assert.Contains(t, out, `"[feature ↑2↓1 ●3 REBASING ⚑1]"`)
}

func TestExplain_AbsentValues(t *testing.T) {
	repo := domain.RepositoryHandle{CommonDir: "/r/.git", GitDir: "/r/.git", Root: "/r"}
	status := domain.Status{Head: domain.Unborn("main")}

	out := Explain(repo, status, "[main]")

	assert.Contains(t, out, "unborn branch")
	assert.Contains(t, out, "no commits yet")
	assert.NotContains(t, out, "common dir")
	assert.Contains(t, out, "none")
}

func TestExplain_Detached(t *testing.T) {
	out := Explain(domain.RepositoryHandle{Root: "/r"}, domain.Status{Head: domain.Detached("abc1234")}, "[:abc1234]")

	assert.Contains(t, out, "detached at")
	assert.Contains(t, out, "abc1234")
}

func TestExplain_ChangeKinds(t *testing.T) {
	status := domain.Status{
		Head: domain.OnBranch("main"),
		Changes: domain.Changes{
			Staged: 3,
			Index:  domain.ChangeKinds{Added: 2, Modified: 1},
		},
	}

	out := Explain(domain.RepositoryHandle{Root: "/r"}, status, "[main ●3]")

	assert.Contains(t, out, "index")
	assert.Contains(t, out, "added 2 modified 1 deleted 0")
	assert.Contains(t, out, "worktree")
	assert.Contains(t, out, "clean")
}
