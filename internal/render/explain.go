package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/theme"
)

// Explain renders a human-readable breakdown of every status field and the
// prompt line it produced. Used by the explain command to debug a configuration.
func Explain(repo domain.RepositoryHandle, status domain.Status, line string) string {
	var b strings.Builder

	section(&b, "Repository")
	field(&b, "root", theme.ValueStyle.Render(repo.Root))
	field(&b, "git dir", theme.ValueStyle.Render(repo.GitDir))
	if repo.CommonDir != repo.GitDir {
		field(&b, "common dir", theme.ValueStyle.Render(repo.CommonDir))
	}

	section(&b, "Status")
	field(&b, "head", explainHead(status.Head))
	field(&b, "upstream", explainTracking(status.Tracking))
	field(&b, "staged", explainCount(status.Changes.Staged))
	field(&b, "unstaged", explainCount(status.Changes.Unstaged))
	field(&b, "untracked", explainCount(status.Changes.Untracked))
	field(&b, "conflicted", explainCount(status.Changes.Conflicted))
	field(&b, "index", explainKinds(status.Changes.Index))
	field(&b, "worktree", explainKinds(status.Changes.Worktree))
	field(&b, "stash", explainCount(status.StashCount))
	field(&b, "operation", explainOperation(status.Operation))

	section(&b, "Prompt")
	field(&b, "line", fmt.Sprintf("%q", line))

	return b.String()
}

func section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(theme.HeadingStyle.Render(title))
	b.WriteString("\n")
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", theme.LabelStyle.Render(label), value))
	b.WriteString("\n")
}

func explainHead(head domain.Head) string {
	switch head.Kind {
	case domain.HeadDetached:
		return "detached at " + theme.BranchStyle.Render(head.Name)
	case domain.HeadUnborn:
		return "unborn branch " + theme.BranchStyle.Render(head.Name) + theme.MutedStyle.Render(" (no commits yet)")
	default:
		return "on branch " + theme.BranchStyle.Render(head.Name)
	}
}

func explainTracking(tracking domain.Tracking) string {
	if !tracking.HasUpstream {
		return theme.MutedStyle.Render("none")
	}
	return fmt.Sprintf("%s %s %s",
		theme.ValueStyle.Render(tracking.Upstream),
		theme.AheadStyle.Render("ahead "+strconv.Itoa(tracking.Ahead)),
		theme.BehindStyle.Render("behind "+strconv.Itoa(tracking.Behind)))
}

func explainCount(n int) string {
	if n == 0 {
		return theme.MutedStyle.Render("0")
	}
	return theme.ValueStyle.Render(strconv.Itoa(n))
}

func explainKinds(k domain.ChangeKinds) string {
	if k.IsZero() {
		return theme.MutedStyle.Render("clean")
	}
	return fmt.Sprintf("added %s modified %s deleted %s",
		explainCount(k.Added), explainCount(k.Modified), explainCount(k.Deleted))
}

func explainOperation(op domain.Operation) string {
	if op == domain.OperationNone {
		return theme.MutedStyle.Render("none")
	}
	return theme.OperationStyle.Render(op.String())
}
