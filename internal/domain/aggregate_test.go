package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestAggregate_HeadResolution(t *testing.T) {
	tests := []struct {
		name     string
		ref      RawRefState
		expected Head
	}{
		{
			name:     "unborn branch",
			ref:      RawRefState{Branch: strPtr("main")},
			expected: Unborn("main"),
		},
		{
			name:     "detached head",
			ref:      RawRefState{Commit: strPtr("abc1234def5678901234567890abcdef12345678")},
			expected: Detached("abc1234"),
		},
		{
			name: "detached head with git abbreviation",
			ref: RawRefState{
				Commit:      strPtr("abc1234def5678901234567890abcdef12345678"),
				ShortCommit: strPtr("abc1234def56"),
			},
			expected: Detached("abc1234def56"),
		},
		{
			name:     "detached head with empty abbreviation",
			ref:      RawRefState{Commit: strPtr("abc1234def5678"), ShortCommit: strPtr("")},
			expected: Detached("abc1234"),
		},
		{
			name:     "abbreviation ignored on branch",
			ref:      RawRefState{Branch: strPtr("main"), Commit: strPtr("abc1234def"), ShortCommit: strPtr("abc1234def")},
			expected: OnBranch("main"),
		},
		{
			name:     "on branch",
			ref:      RawRefState{Branch: strPtr("feature"), Commit: strPtr("abc1234def")},
			expected: OnBranch("feature"),
		},
		{
			name:     "branch with slashes",
			ref:      RawRefState{Branch: strPtr("feature/login"), Commit: strPtr("0123456789")},
			expected: OnBranch("feature/login"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Aggregate(tt.ref, RawDiffCounts{}, RawStashState{}, OperationNone)
			assert.Equal(t, tt.expected, status.Head)
		})
	}
}

func TestAggregate_ExactlyOneHeadKind(t *testing.T) {
	refs := []RawRefState{
		{Branch: strPtr("main")},
		{Commit: strPtr("abcdef0123")},
		{Branch: strPtr("main"), Commit: strPtr("abcdef0123")},
		{},
	}

	for _, ref := range refs {
		head := Aggregate(ref, RawDiffCounts{}, RawStashState{}, OperationNone).Head
		assert.Contains(t, []HeadKind{HeadOnBranch, HeadDetached, HeadUnborn}, head.Kind)
	}
}

func TestAggregate_NoUpstream(t *testing.T) {
	ref := RawRefState{Branch: strPtr("main"), Commit: strPtr("abcdef0")}

	status := Aggregate(ref, RawDiffCounts{}, RawStashState{}, OperationNone)

	assert.False(t, status.Tracking.HasUpstream)
	assert.Equal(t, NoUpstream(), status.Tracking)
}

func TestAggregate_TrackingCountsTakenVerbatim(t *testing.T) {
	ref := RawRefState{
		Ahead:    intPtr(2),
		Behind:   intPtr(1),
		Branch:   strPtr("feature"),
		Commit:   strPtr("abcdef0"),
		Upstream: strPtr("origin/feature"),
	}

	status := Aggregate(ref, RawDiffCounts{}, RawStashState{}, OperationNone)

	assert.Equal(t, TrackingUpstream("origin/feature", 2, 1), status.Tracking)
}

func TestAggregate_ZeroAheadBehindIsStillTracking(t *testing.T) {
	ref := RawRefState{
		Ahead:    intPtr(0),
		Behind:   intPtr(0),
		Branch:   strPtr("main"),
		Commit:   strPtr("abcdef0"),
		Upstream: strPtr("origin/main"),
	}

	status := Aggregate(ref, RawDiffCounts{}, RawStashState{}, OperationNone)

	assert.True(t, status.Tracking.HasUpstream)
	assert.Equal(t, 0, status.Tracking.Ahead)
	assert.Equal(t, 0, status.Tracking.Behind)
}

func TestAggregate_CopiesCountsAndOperation(t *testing.T) {
	ref := RawRefState{Branch: strPtr("main"), Commit: strPtr("abcdef0")}
	diff := RawDiffCounts{Conflicted: 1, Staged: 3, Unstaged: 2, Untracked: 4}

	status := Aggregate(ref, diff, RawStashState{Count: 5}, OperationRebase)

	assert.Equal(t, Changes{Conflicted: 1, Staged: 3, Unstaged: 2, Untracked: 4}, status.Changes)
	assert.Equal(t, 5, status.StashCount)
	assert.Equal(t, OperationRebase, status.Operation)
}

func TestAggregate_CopiesChangeKinds(t *testing.T) {
	diff := RawDiffCounts{
		Staged:    3,
		Unstaged:  1,
		Untracked: 2,
		Index:     ChangeKinds{Added: 1, Deleted: 1, Modified: 1},
		Worktree:  ChangeKinds{Added: 2, Modified: 1},
	}

	changes := Aggregate(RawRefState{Branch: strPtr("main")}, diff, RawStashState{}, OperationNone).Changes

	assert.Equal(t, ChangeKinds{Added: 1, Deleted: 1, Modified: 1}, changes.Index)
	assert.Equal(t, ChangeKinds{Added: 2, Modified: 1}, changes.Worktree)
	assert.True(t, ChangeKinds{}.IsZero())
	assert.False(t, changes.Worktree.IsZero())
}

func TestAggregate_NegativeCountsPanic(t *testing.T) {
	ref := RawRefState{
		Ahead:    intPtr(-1),
		Behind:   intPtr(0),
		Branch:   strPtr("main"),
		Commit:   strPtr("abcdef0"),
		Upstream: strPtr("origin/main"),
	}

	assert.Panics(t, func() {
		Aggregate(ref, RawDiffCounts{}, RawStashState{}, OperationNone)
	})
	assert.Panics(t, func() {
		Aggregate(RawRefState{Branch: strPtr("main")}, RawDiffCounts{Staged: -2}, RawStashState{}, OperationNone)
	})
	assert.Panics(t, func() {
		diff := RawDiffCounts{Worktree: ChangeKinds{Deleted: -1}}
		Aggregate(RawRefState{Branch: strPtr("main")}, diff, RawStashState{}, OperationNone)
	})
}

func TestAggregate_UpstreamWithoutCountsPanics(t *testing.T) {
	ref := RawRefState{Branch: strPtr("main"), Commit: strPtr("abcdef0"), Upstream: strPtr("origin/main")}

	assert.Panics(t, func() {
		Aggregate(ref, RawDiffCounts{}, RawStashState{}, OperationNone)
	})
}

func TestSnapshot_Aggregate(t *testing.T) {
	snap := Snapshot{
		Diff:      RawDiffCounts{Staged: 1},
		Operation: OperationMerge,
		Ref:       RawRefState{Branch: strPtr("main")},
		Stash:     RawStashState{Count: 2},
	}

	status := snap.Aggregate()

	assert.Equal(t, Unborn("main"), status.Head)
	assert.Equal(t, 1, status.Changes.Staged)
	assert.Equal(t, 2, status.StashCount)
	assert.Equal(t, OperationMerge, status.Operation)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc1234", ShortID("abc1234def"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "", ShortID(""))
}

func TestChanges_IsClean(t *testing.T) {
	assert.True(t, Changes{}.IsClean())
	assert.False(t, Changes{Untracked: 1}.IsClean())
	assert.False(t, Changes{Conflicted: 1}.IsClean())
}
