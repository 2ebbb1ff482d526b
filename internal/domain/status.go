package domain

// HeadKind identifies which variant of Head holds
type HeadKind int

const (
	HeadOnBranch HeadKind = iota
	HeadDetached
	HeadUnborn
)

// String returns the lowercase name of the head kind
func (k HeadKind) String() string {
	switch k {
	case HeadOnBranch:
		return "branch"
	case HeadDetached:
		return "detached"
	case HeadUnborn:
		return "unborn"
	default:
		return "unknown"
	}
}

// Head is the identity of the current checkout.
// Name is the branch name for OnBranch and Unborn, and the short commit id for Detached.
type Head struct {
	Kind HeadKind
	Name string
}

// OnBranch returns a Head checked out on the named branch
func OnBranch(name string) Head {
	return Head{Kind: HeadOnBranch, Name: name}
}

// Detached returns a Head pointing directly at a commit
func Detached(shortID string) Head {
	return Head{Kind: HeadDetached, Name: shortID}
}

// Unborn returns a Head on a branch that has no commits yet
func Unborn(branch string) Head {
	return Head{Kind: HeadUnborn, Name: branch}
}

// Tracking describes the relation between the current branch and its upstream.
// Ahead and Behind are only meaningful when HasUpstream is true.
type Tracking struct {
	Ahead       int    // Commits on HEAD not on upstream
	Behind      int    // Commits on upstream not on HEAD
	HasUpstream bool   // False means NoUpstream
	Upstream    string // Short upstream name, e.g. origin/main
}

// NoUpstream returns the tracking variant for branches without an upstream
func NoUpstream() Tracking {
	return Tracking{}
}

// TrackingUpstream returns the tracking variant for a branch with an upstream
func TrackingUpstream(upstream string, ahead, behind int) Tracking {
	return Tracking{
		Ahead:       ahead,
		Behind:      behind,
		HasUpstream: true,
		Upstream:    upstream,
	}
}

// ChangeKinds counts changed paths on one side of the index by kind.
// Renames and type changes count as Modified.
type ChangeKinds struct {
	Added    int
	Deleted  int
	Modified int
}

// IsZero reports whether no path changed on this side
func (k ChangeKinds) IsZero() bool {
	return k.Added == 0 && k.Deleted == 0 && k.Modified == 0
}

// Changes holds the per-category file counts of the working tree
type Changes struct {
	Conflicted int // Unmerged paths
	Staged     int // Index differs from HEAD
	Unstaged   int // Worktree differs from index
	Untracked  int // Paths not in the index

	Index    ChangeKinds // Staged, by kind
	Worktree ChangeKinds // Unstaged plus untracked, by kind
}

// IsClean reports whether every category is zero
func (c Changes) IsClean() bool {
	return c.Conflicted == 0 && c.Staged == 0 && c.Unstaged == 0 && c.Untracked == 0
}

// Status is the aggregated, point-in-time view of a working tree.
// It is built once by Aggregate and never modified afterwards.
type Status struct {
	Changes    Changes
	Head       Head
	Operation  Operation
	StashCount int
	Tracking   Tracking
}

// RepositoryHandle references a located repository for one invocation
type RepositoryHandle struct {
	CommonDir string // Shared git dir (differs from GitDir for linked worktrees)
	GitDir    string // Per-worktree git dir holding HEAD and operation markers
	Root      string // Top of the working tree
}
