package config

import (
	"fmt"
	"strings"

	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/theme"
)

// Default symbols
const (
	DefaultAheadSymbol     = "↑"
	DefaultBehindSymbol    = "↓"
	DefaultBranchSymbol    = ""
	DefaultConflictSymbol  = "✖"
	DefaultDetachedSymbol  = ":"
	DefaultPrefix          = "["
	DefaultSeparator       = " "
	DefaultStagedSymbol    = "●"
	DefaultStashSymbol     = "⚑"
	DefaultSuffix          = "]"
	DefaultUnstagedSymbol  = "✚"
	DefaultUntrackedSymbol = "…"
)

// Default symbols of the detailed changes layout
const (
	DefaultAddedSymbol    = "+"
	DefaultDeletedSymbol  = "-"
	DefaultModifiedSymbol = "~"
	DefaultWorktreeMarker = "|"
)

// DefaultOperationLabels returns the text shown for each in-progress operation
func DefaultOperationLabels() map[domain.Operation]string {
	return map[domain.Operation]string{
		domain.OperationBisect:     "BISECTING",
		domain.OperationCherryPick: "CHERRY-PICKING",
		domain.OperationMerge:      "MERGING",
		domain.OperationRebase:     "REBASING",
	}
}

// RenderConfig holds the symbols and layout used to render a status line.
// Built once per invocation and never mutated afterwards.
type RenderConfig struct {
	AddedSymbol     string
	AheadSymbol     string
	BehindSymbol    string
	BranchSymbol    string
	Color           bool
	ConflictSymbol  string
	DeletedSymbol   string
	DetachedSymbol  string
	DetailedChanges bool // Index and worktree sides by kind instead of per-category counts
	HideCleanCounts bool
	ModifiedSymbol  string
	OperationLabels map[domain.Operation]string
	Palette         theme.Palette
	Prefix          string
	Separator       string
	Shell           theme.Shell
	StagedSymbol    string
	StashSymbol     string
	Suffix          string
	UnstagedSymbol  string
	UntrackedSymbol string
	WorktreeMarker  string
}

// DefaultRenderConfig returns the built-in configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		AddedSymbol:     DefaultAddedSymbol,
		AheadSymbol:     DefaultAheadSymbol,
		BehindSymbol:    DefaultBehindSymbol,
		BranchSymbol:    DefaultBranchSymbol,
		ConflictSymbol:  DefaultConflictSymbol,
		DeletedSymbol:   DefaultDeletedSymbol,
		DetachedSymbol:  DefaultDetachedSymbol,
		HideCleanCounts: true,
		ModifiedSymbol:  DefaultModifiedSymbol,
		OperationLabels: DefaultOperationLabels(),
		Palette:         theme.DefaultPalette(),
		Prefix:          DefaultPrefix,
		Separator:       DefaultSeparator,
		Shell:           theme.ShellNone,
		StagedSymbol:    DefaultStagedSymbol,
		StashSymbol:     DefaultStashSymbol,
		Suffix:          DefaultSuffix,
		UnstagedSymbol:  DefaultUnstagedSymbol,
		UntrackedSymbol: DefaultUntrackedSymbol,
		WorktreeMarker:  DefaultWorktreeMarker,
	}
}

// OperationLabel returns the configured label for op, falling back to its name in upper case
func (c RenderConfig) OperationLabel(op domain.Operation) string {
	if label, ok := c.OperationLabels[op]; ok {
		return label
	}
	return strings.ToUpper(op.String())
}

// Validate checks for configuration errors
func (c RenderConfig) Validate() error {
	if _, err := theme.ParseShell(string(c.Shell)); err != nil {
		return err
	}

	for op := range c.OperationLabels {
		if op == domain.OperationNone {
			return fmt.Errorf("operation 'none' cannot have a label")
		}
	}

	symbols := map[string]string{
		"added":     c.AddedSymbol,
		"ahead":     c.AheadSymbol,
		"behind":    c.BehindSymbol,
		"branch":    c.BranchSymbol,
		"conflict":  c.ConflictSymbol,
		"deleted":   c.DeletedSymbol,
		"detached":  c.DetachedSymbol,
		"modified":  c.ModifiedSymbol,
		"prefix":    c.Prefix,
		"separator": c.Separator,
		"staged":    c.StagedSymbol,
		"stash":     c.StashSymbol,
		"suffix":    c.Suffix,
		"unstaged":  c.UnstagedSymbol,
		"untracked": c.UntrackedSymbol,
		"worktree":  c.WorktreeMarker,
	}
	for name, value := range symbols {
		if strings.ContainsAny(value, "\r\n") {
			return fmt.Errorf("%s symbol must not contain a line break", name)
		}
	}

	return nil
}

// ApplySettings overlays settings-file values onto c.
// Flags and environment variables are applied by the caller afterwards.
func (c *RenderConfig) ApplySettings(s *Settings) error {
	if s == nil {
		return nil
	}

	overlay := []struct {
		dst *string
		src *string
	}{
		{&c.AddedSymbol, s.AddedSymbol},
		{&c.AheadSymbol, s.AheadSymbol},
		{&c.BehindSymbol, s.BehindSymbol},
		{&c.BranchSymbol, s.BranchSymbol},
		{&c.ConflictSymbol, s.ConflictSymbol},
		{&c.DeletedSymbol, s.DeletedSymbol},
		{&c.DetachedSymbol, s.DetachedSymbol},
		{&c.ModifiedSymbol, s.ModifiedSymbol},
		{&c.Prefix, s.Prefix},
		{&c.Separator, s.Separator},
		{&c.StagedSymbol, s.StagedSymbol},
		{&c.StashSymbol, s.StashSymbol},
		{&c.Suffix, s.Suffix},
		{&c.UnstagedSymbol, s.UnstagedSymbol},
		{&c.UntrackedSymbol, s.UntrackedSymbol},
		{&c.WorktreeMarker, s.WorktreeMarker},
	}
	for _, o := range overlay {
		if o.src != nil {
			*o.dst = *o.src
		}
	}

	if s.DetailedChanges != nil {
		c.DetailedChanges = *s.DetailedChanges
	}
	if s.HideCleanCounts != nil {
		c.HideCleanCounts = *s.HideCleanCounts
	}
	if s.Color != nil {
		c.Color = *s.Color
	}
	if s.Shell != "" {
		shell, err := theme.ParseShell(s.Shell)
		if err != nil {
			return err
		}
		c.Shell = shell
	}

	for segment, color := range s.Colors {
		if err := c.Palette.Set(segment, color); err != nil {
			return err
		}
	}

	if len(s.OperationLabels) > 0 {
		labels := make(map[domain.Operation]string, len(c.OperationLabels))
		for op, label := range c.OperationLabels {
			labels[op] = label
		}
		for name, label := range s.OperationLabels {
			op, err := domain.ParseOperation(name)
			if err != nil {
				return fmt.Errorf("operation_labels: %w", err)
			}
			labels[op] = label
		}
		c.OperationLabels = labels
	}

	return nil
}
