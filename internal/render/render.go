// Package render turns an aggregated Status into prompt text.
// Nothing in this package performs I/O.
package render

import (
	"strconv"
	"strings"

	"github.com/renato0307/gitprompt/internal/config"
	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/theme"
)

// Render builds the prompt line for status.
//
// Segment order is fixed: head, tracking, changes (staged, unstaged, untracked,
// conflicted), in-progress operation, stash. Segments are joined with cfg.Separator
// and the whole line is wrapped in cfg.Prefix and cfg.Suffix.
//
// With cfg.DetailedChanges the changes segment becomes the index side, then the
// worktree side behind cfg.WorktreeMarker, each as added, modified and deleted
// counts, followed by the conflicted count.
func Render(status domain.Status, cfg config.RenderConfig) string {
	p := painter{cfg: cfg}

	segments := make([]string, 0, 7)
	segments = append(segments, p.head(status.Head))
	if s := p.tracking(status.Tracking); s != "" {
		segments = append(segments, s)
	}
	if cfg.DetailedChanges {
		segments = append(segments, p.detailedChanges(status.Changes)...)
	} else if s := p.changes(status.Changes); s != "" {
		segments = append(segments, s)
	}
	if status.Operation != domain.OperationNone {
		segments = append(segments, p.paint(cfg.Palette.Operation, cfg.OperationLabel(status.Operation)))
	}
	if status.StashCount > 0 {
		segments = append(segments, p.paint(cfg.Palette.Stash, cfg.StashSymbol+strconv.Itoa(status.StashCount)))
	}

	line := strings.Join(segments, cfg.Shell.Escape(cfg.Separator))
	return p.paint(cfg.Palette.Brackets, cfg.Prefix) + line + p.paint(cfg.Palette.Brackets, cfg.Suffix)
}

type painter struct {
	cfg config.RenderConfig
}

// paint escapes text for the target shell and colors it when color is enabled
func (p painter) paint(color theme.Color, text string) string {
	escaped := p.cfg.Shell.Escape(text)
	if !p.cfg.Color {
		return escaped
	}
	return p.cfg.Shell.Paint(color, escaped)
}

func (p painter) head(head domain.Head) string {
	switch head.Kind {
	case domain.HeadDetached:
		return p.paint(p.cfg.Palette.Detached, p.cfg.DetachedSymbol+head.Name)
	default:
		// Unborn branches render like any other branch
		return p.paint(p.cfg.Palette.Branch, p.cfg.BranchSymbol+head.Name)
	}
}

func (p painter) tracking(tracking domain.Tracking) string {
	if !tracking.HasUpstream {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.count(p.cfg.Palette.Ahead, p.cfg.AheadSymbol, tracking.Ahead))
	b.WriteString(p.count(p.cfg.Palette.Behind, p.cfg.BehindSymbol, tracking.Behind))
	return b.String()
}

func (p painter) changes(changes domain.Changes) string {
	if changes.IsClean() && p.cfg.HideCleanCounts {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.count(p.cfg.Palette.Staged, p.cfg.StagedSymbol, changes.Staged))
	b.WriteString(p.count(p.cfg.Palette.Unstaged, p.cfg.UnstagedSymbol, changes.Unstaged))
	b.WriteString(p.count(p.cfg.Palette.Untracked, p.cfg.UntrackedSymbol, changes.Untracked))
	b.WriteString(p.count(p.cfg.Palette.Conflicted, p.cfg.ConflictSymbol, changes.Conflicted))
	return b.String()
}

// detailedChanges renders each side whose counts are not all zero, or both sides
// when clean counts are shown
func (p painter) detailedChanges(changes domain.Changes) []string {
	var segments []string
	if !changes.Index.IsZero() || !p.cfg.HideCleanCounts {
		segments = append(segments, p.kinds(p.cfg.Palette.Staged, changes.Index))
	}
	if !changes.Worktree.IsZero() || !p.cfg.HideCleanCounts {
		marker := p.paint(p.cfg.Palette.Brackets, p.cfg.WorktreeMarker)
		segments = append(segments, marker+p.cfg.Shell.Escape(p.cfg.Separator)+p.kinds(p.cfg.Palette.Unstaged, changes.Worktree))
	}
	if s := p.count(p.cfg.Palette.Conflicted, p.cfg.ConflictSymbol, changes.Conflicted); s != "" {
		segments = append(segments, s)
	}
	return segments
}

// kinds renders all three counts of one side, zeros included
func (p painter) kinds(color theme.Color, k domain.ChangeKinds) string {
	return p.paint(color, strings.Join([]string{
		p.cfg.AddedSymbol + strconv.Itoa(k.Added),
		p.cfg.ModifiedSymbol + strconv.Itoa(k.Modified),
		p.cfg.DeletedSymbol + strconv.Itoa(k.Deleted),
	}, p.cfg.Separator))
}

// count renders symbol+n, or nothing for a zero count when clean counts are hidden
func (p painter) count(color theme.Color, symbol string, n int) string {
	if n == 0 && p.cfg.HideCleanCounts {
		return ""
	}
	return p.paint(color, symbol+strconv.Itoa(n))
}
