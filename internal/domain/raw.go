package domain

// RawRefState is the unnormalized ref information read from a repository.
// Nil means absent, which is different from zero: Ahead and Behind are nil
// whenever Upstream is nil.
type RawRefState struct {
	Ahead    *int
	Behind   *int
	Branch   *string // nil when HEAD is detached
	Commit   *string // nil when the branch has no commits yet
	Upstream *string // nil when no upstream is configured or it is gone

	// ShortCommit is the abbreviation git itself prints for Commit, honoring
	// core.abbrev. Only read for a detached HEAD; nil falls back to ShortID.
	ShortCommit *string
}

// RawDiffCounts holds the counts produced by the index and worktree comparisons.
// A path modified after staging is counted in both Staged and Unstaged.
// Index and Worktree break Staged and Unstaged down by kind; Worktree.Added
// also counts untracked paths. Conflicted paths appear in neither.
type RawDiffCounts struct {
	Conflicted int
	Staged     int
	Unstaged   int
	Untracked  int

	Index    ChangeKinds
	Worktree ChangeKinds
}

// RawStashState holds the number of stash entries
type RawStashState struct {
	Count int
}

// Snapshot groups the four independent reads taken for one invocation
type Snapshot struct {
	Diff      RawDiffCounts
	Operation Operation
	Ref       RawRefState
	Stash     RawStashState
}

// Aggregate builds the Status for this snapshot
func (s Snapshot) Aggregate() Status {
	return Aggregate(s.Ref, s.Diff, s.Stash, s.Operation)
}
