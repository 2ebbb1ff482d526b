package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitprompt/internal/domain"
)

func porcelain(records ...string) []byte {
	return []byte(strings.Join(records, "\x00") + "\x00")
}

func TestParsePorcelainV2(t *testing.T) {
	tests := []struct {
		name string
		out  []byte
		want domain.RawDiffCounts
	}{
		{
			name: "empty output",
			out:  nil,
			want: domain.RawDiffCounts{},
		},
		{
			name: "headers only",
			out:  porcelain("# branch.oid abc", "# branch.head main"),
			want: domain.RawDiffCounts{},
		},
		{
			name: "staged modification",
			out:  porcelain("1 M. N... 100644 100644 100644 aaa bbb file.go"),
			want: domain.RawDiffCounts{Staged: 1, Index: domain.ChangeKinds{Modified: 1}},
		},
		{
			name: "unstaged modification",
			out:  porcelain("1 .M N... 100644 100644 100644 aaa aaa file.go"),
			want: domain.RawDiffCounts{Unstaged: 1, Worktree: domain.ChangeKinds{Modified: 1}},
		},
		{
			name: "staged and modified again counts in both",
			out:  porcelain("1 MM N... 100644 100644 100644 aaa bbb file.go"),
			want: domain.RawDiffCounts{
				Staged:   1,
				Unstaged: 1,
				Index:    domain.ChangeKinds{Modified: 1},
				Worktree: domain.ChangeKinds{Modified: 1},
			},
		},
		{
			name: "rename skips original path field",
			out: porcelain(
				"2 R. N... 100644 100644 100644 aaa aaa R100 new.go",
				"old.go",
				"? notes.txt",
			),
			want: domain.RawDiffCounts{
				Staged:    1,
				Untracked: 1,
				Index:     domain.ChangeKinds{Modified: 1},
				Worktree:  domain.ChangeKinds{Added: 1},
			},
		},
		{
			name: "original path that looks like a record is skipped",
			out: porcelain(
				"2 R. N... 100644 100644 100644 aaa aaa R100 new",
				"? weird",
			),
			want: domain.RawDiffCounts{Staged: 1, Index: domain.ChangeKinds{Modified: 1}},
		},
		{
			name: "unmerged counts only as conflicted",
			out:  porcelain("u UU N... 100644 100644 100644 100644 aaa bbb ccc file.go"),
			want: domain.RawDiffCounts{Conflicted: 1},
		},
		{
			name: "ignored entries are not counted",
			out:  porcelain("! build/", "? a", "? b"),
			want: domain.RawDiffCounts{Untracked: 2, Worktree: domain.ChangeKinds{Added: 2}},
		},
		{
			name: "mixed",
			out: porcelain(
				"# branch.head main",
				"1 A. N... 000000 100644 100644 000 bbb added.go",
				"1 .D N... 100644 100644 000000 aaa aaa deleted.go",
				"1 D. N... 100644 000000 000000 aaa 000 removed.go",
				"u AA N... 000000 100644 100644 100644 000 bbb ccc both.go",
				"? untracked.go",
			),
			want: domain.RawDiffCounts{
				Conflicted: 1,
				Staged:     2,
				Unstaged:   1,
				Untracked:  1,
				Index:      domain.ChangeKinds{Added: 1, Deleted: 1},
				Worktree:   domain.ChangeKinds{Added: 1, Deleted: 1},
			},
		},
		{
			name: "copy and type change",
			out: porcelain(
				"2 C. N... 100644 100644 100644 aaa aaa C100 copy.go",
				"orig.go",
				"1 .T N... 100644 100644 120000 aaa aaa link",
				"1 AM N... 000000 100644 100644 000 bbb fresh.go",
			),
			want: domain.RawDiffCounts{
				Staged:   2,
				Unstaged: 2,
				Index:    domain.ChangeKinds{Added: 2},
				Worktree: domain.ChangeKinds{Modified: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePorcelainV2(tt.out)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePorcelainV2_Malformed(t *testing.T) {
	tests := []struct {
		name string
		out  []byte
	}{
		{name: "unknown record type", out: porcelain("X something")},
		{name: "truncated ordinary record", out: porcelain("1 M")},
		{name: "missing separator", out: porcelain("1MM N...")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePorcelainV2(tt.out)

			assert.Error(t, err)
		})
	}
}

func TestReadDiffCounts_Arguments(t *testing.T) {
	runner := &fakeRunner{}
	repo := domain.RepositoryHandle{Root: "/repo"}

	_, err := readDiffCounts(context.Background(), runner, repo, UntrackedNo)

	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "status --porcelain=v2 -z --untracked-files=no --ignore-submodules=all", runner.calls[0])
}

func TestReadDiffCounts_CommandFails(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"status --porcelain=v2 -z --untracked-files=all --ignore-submodules=all": errors.New("index corrupt"),
	}}

	_, err := readDiffCounts(context.Background(), runner, domain.RepositoryHandle{Root: "/repo"}, "")

	assert.ErrorContains(t, err, "index corrupt")
}

func TestReadDiffCounts_Repository(t *testing.T) {
	repo := newTestRepo(t)
	repo.commit("tracked.go", "package a\n", "Add tracked")

	repo.write("README.md", "# Changed\n")
	repo.git("add", "README.md")
	repo.write("README.md", "# Changed twice\n")
	repo.write("tracked.go", "package b\n")
	repo.write("new/one.go", "package one\n")
	repo.write("new/two.go", "package two\n")

	runner := newExecRunner("")

	t.Run("all untracked files", func(t *testing.T) {
		counts, err := readDiffCounts(context.Background(), runner, repo.handle(), UntrackedAll)

		require.NoError(t, err)
		assert.Equal(t, domain.RawDiffCounts{
			Staged:    1,
			Unstaged:  2,
			Untracked: 2,
			Index:     domain.ChangeKinds{Modified: 1},
			Worktree:  domain.ChangeKinds{Added: 2, Modified: 2},
		}, counts)
	})

	t.Run("untracked directories collapsed", func(t *testing.T) {
		counts, err := readDiffCounts(context.Background(), runner, repo.handle(), UntrackedNormal)

		require.NoError(t, err)
		assert.Equal(t, 1, counts.Untracked)
	})

	t.Run("untracked files hidden", func(t *testing.T) {
		counts, err := readDiffCounts(context.Background(), runner, repo.handle(), UntrackedNo)

		require.NoError(t, err)
		assert.Equal(t, 0, counts.Untracked)
		assert.Equal(t, domain.ChangeKinds{Modified: 2}, counts.Worktree)
	})
}

func TestReadDiffCounts_KindsByStatusLetter(t *testing.T) {
	repo := newTestRepo(t)
	repo.commit("keep.go", "package keep\n", "Add keep")
	repo.commit("gone.go", "package gone\n", "Add gone")

	repo.write("added.go", "package added\n")
	repo.git("add", "added.go")
	repo.git("rm", "-q", "gone.go")
	require.NoError(t, os.Remove(filepath.Join(repo.dir, "keep.go")))
	repo.write("README.md", "# Edited\n")

	counts, err := readDiffCounts(context.Background(), newExecRunner(""), repo.handle(), UntrackedAll)

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeKinds{Added: 1, Deleted: 1}, counts.Index)
	assert.Equal(t, domain.ChangeKinds{Deleted: 1, Modified: 1}, counts.Worktree)
}

func TestReadDiffCounts_Conflict(t *testing.T) {
	repo := newTestRepo(t)
	repo.git("checkout", "-b", "other")
	repo.commit("README.md", "# Other\n", "Other change")
	repo.git("checkout", "main")
	repo.commit("README.md", "# Main\n", "Main change")

	mergeErr := runMergeExpectingConflict(t, repo)
	require.Error(t, mergeErr)

	counts, err := readDiffCounts(context.Background(), newExecRunner(""), repo.handle(), UntrackedAll)

	require.NoError(t, err)
	assert.Equal(t, domain.RawDiffCounts{Conflicted: 1}, counts)
	_, statErr := os.Stat(filepath.Join(repo.dir, ".git", "MERGE_HEAD"))
	assert.NoError(t, statErr)
}

// runMergeExpectingConflict merges "other" into the current branch and returns the merge error
func runMergeExpectingConflict(t *testing.T, repo *testRepo) error {
	t.Helper()
	_, err := newExecRunner("").Output(context.Background(), repo.dir,
		"-c", "user.name=Test", "-c", "user.email=test@test.com", "merge", "other")
	return err
}
