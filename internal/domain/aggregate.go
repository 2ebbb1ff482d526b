package domain

import "fmt"

// ShortIDLength is the number of hex digits shown for a detached commit
const ShortIDLength = 7

// Aggregate normalizes raw reads into a Status. It performs no I/O and never fails.
// Negative counts, or an upstream without ahead/behind counts, panic.
func Aggregate(ref RawRefState, diff RawDiffCounts, stash RawStashState, op Operation) Status {
	return Status{
		Changes:    aggregateChanges(diff),
		Head:       aggregateHead(ref),
		Operation:  op,
		StashCount: nonNegative("stash count", stash.Count),
		Tracking:   aggregateTracking(ref),
	}
}

func aggregateHead(ref RawRefState) Head {
	switch {
	case ref.Commit == nil && ref.Branch != nil:
		return Unborn(*ref.Branch)
	case ref.Branch == nil && ref.Commit != nil:
		if ref.ShortCommit != nil && *ref.ShortCommit != "" {
			return Detached(*ref.ShortCommit)
		}
		return Detached(ShortID(*ref.Commit))
	default:
		return OnBranch(deref(ref.Branch))
	}
}

func aggregateTracking(ref RawRefState) Tracking {
	if ref.Upstream == nil {
		return NoUpstream()
	}
	if ref.Ahead == nil || ref.Behind == nil {
		panic(fmt.Sprintf("domain: upstream %q without ahead/behind counts", *ref.Upstream))
	}
	return TrackingUpstream(
		*ref.Upstream,
		nonNegative("ahead count", *ref.Ahead),
		nonNegative("behind count", *ref.Behind),
	)
}

func aggregateChanges(diff RawDiffCounts) Changes {
	return Changes{
		Conflicted: nonNegative("conflicted count", diff.Conflicted),
		Staged:     nonNegative("staged count", diff.Staged),
		Unstaged:   nonNegative("unstaged count", diff.Unstaged),
		Untracked:  nonNegative("untracked count", diff.Untracked),
		Index:      aggregateKinds("index", diff.Index),
		Worktree:   aggregateKinds("worktree", diff.Worktree),
	}
}

func aggregateKinds(side string, k ChangeKinds) ChangeKinds {
	return ChangeKinds{
		Added:    nonNegative(side+" added count", k.Added),
		Deleted:  nonNegative(side+" deleted count", k.Deleted),
		Modified: nonNegative(side+" modified count", k.Modified),
	}
}

// ShortID abbreviates a commit id to ShortIDLength characters
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

func nonNegative(what string, n int) int {
	if n < 0 {
		panic(fmt.Sprintf("domain: negative %s %d", what, n))
	}
	return n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
