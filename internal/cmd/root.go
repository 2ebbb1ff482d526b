package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	adaptergit "github.com/renato0307/gitprompt/internal/adapters/git"
	"github.com/renato0307/gitprompt/internal/config"
	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/logging"
	"github.com/renato0307/gitprompt/internal/theme"
	"github.com/renato0307/gitprompt/internal/version"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of daily log files to keep (0 = unlimited)" default:"1000"`
	Quiet       bool             `help:"Do not print errors to stderr (exit status still reports them)" short:"q"`

	GitBinary           string        `help:"Git executable used for status and rev-list" default:"git" env:"GITPROMPT_GIT"`
	GitDir              string        `help:"Directory to start the repository search from" short:"C" default:"." env:"GITPROMPT_DIR"`
	MaxDepth            int           `help:"Maximum parent directories to search for a repository" default:"${max_depth}" env:"GITPROMPT_MAX_DEPTH"`
	OperationPrecedence []string      `help:"Order used when several operations are in progress" default:"${operation_precedence}" env:"GITPROMPT_OPERATION_PRECEDENCE"`
	Timeout             time.Duration `help:"Abort repository reads after this long (0 = no limit)" default:"0s" env:"GITPROMPT_TIMEOUT"`
	Untracked           string        `help:"Untracked files to count (all, normal, no)" default:"all" enum:"all,normal,no" env:"GITPROMPT_UNTRACKED"`

	Render RenderFlags `embed:""`

	Prompt      PromptCmd      `cmd:"" help:"Print the status line for the prompt (default)" default:"withargs"`
	Explain     ExplainCmd     `cmd:"" help:"Show every status field and the line rendered from it"`
	Settings    SettingsCmd    `cmd:"" help:"Show settings file location and available options"`
	VersionInfo VersionInfoCmd `cmd:"version" help:"Print version information"`

	// Internal fields (not flags)
	Container    *Container          `kong:"-"`
	renderConfig config.RenderConfig `kong:"-"`
	settings     *config.Settings    `kong:"-"`
	settingsErr  error               `kong:"-"`
}

// RenderFlags are the symbol and layout options of the status line
type RenderFlags struct {
	AddedSymbol     string            `help:"Symbol before the added count of --detailed-changes" default:"${added_symbol}" env:"GITPROMPT_ADDED_SYMBOL"`
	AheadSymbol     string            `help:"Symbol before the ahead count" default:"${ahead_symbol}" env:"GITPROMPT_AHEAD_SYMBOL"`
	BehindSymbol    string            `help:"Symbol before the behind count" default:"${behind_symbol}" env:"GITPROMPT_BEHIND_SYMBOL"`
	BranchSymbol    string            `help:"Symbol before the branch name" default:"${branch_symbol}" env:"GITPROMPT_BRANCH_SYMBOL"`
	Color           bool              `help:"Color the segments" negatable:"" env:"GITPROMPT_COLOR"`
	Colors          map[string]string `help:"Segment colors as comma-separated segment=color pairs (ANSI 0-255 or #rrggbb)" mapsep:"," env:"GITPROMPT_COLORS"`
	ConflictSymbol  string            `help:"Symbol before the conflicted count" default:"${conflict_symbol}" env:"GITPROMPT_CONFLICT_SYMBOL"`
	DeletedSymbol   string            `help:"Symbol before the deleted count of --detailed-changes" default:"${deleted_symbol}" env:"GITPROMPT_DELETED_SYMBOL"`
	DetachedSymbol  string            `help:"Symbol before the commit id of a detached HEAD" default:"${detached_symbol}" env:"GITPROMPT_DETACHED_SYMBOL"`
	DetailedChanges bool              `help:"Show index and worktree changes as added, modified and deleted counts" negatable:"" env:"GITPROMPT_DETAILED_CHANGES"`
	HideCleanCounts bool              `help:"Omit zero counts" default:"true" negatable:"" env:"GITPROMPT_HIDE_CLEAN_COUNTS"`
	ModifiedSymbol  string            `help:"Symbol before the modified count of --detailed-changes" default:"${modified_symbol}" env:"GITPROMPT_MODIFIED_SYMBOL"`
	OperationLabels map[string]string `help:"Operation labels as comma-separated operation=label pairs" mapsep:"," env:"GITPROMPT_OPERATION_LABELS"`
	Prefix          string            `help:"Text printed before the status line" default:"${prefix}" env:"GITPROMPT_PREFIX"`
	Separator       string            `help:"Text between segments" default:"${separator}" env:"GITPROMPT_SEPARATOR"`
	Shell           string            `help:"Encode colors for this shell's prompt (none, zsh, bash)" default:"none" enum:"none,zsh,bash" env:"GITPROMPT_SHELL"`
	StagedSymbol    string            `help:"Symbol before the staged count" default:"${staged_symbol}" env:"GITPROMPT_STAGED_SYMBOL"`
	StashSymbol     string            `help:"Symbol before the stash count" default:"${stash_symbol}" env:"GITPROMPT_STASH_SYMBOL"`
	Suffix          string            `help:"Text printed after the status line" default:"${suffix}" env:"GITPROMPT_SUFFIX"`
	UnstagedSymbol  string            `help:"Symbol before the unstaged count" default:"${unstaged_symbol}" env:"GITPROMPT_UNSTAGED_SYMBOL"`
	UntrackedSymbol string            `help:"Symbol before the untracked count" default:"${untracked_symbol}" env:"GITPROMPT_UNTRACKED_SYMBOL"`
	WorktreeMarker  string            `help:"Text before the worktree side of --detailed-changes" default:"${worktree_marker}" env:"GITPROMPT_WORKTREE_MARKER"`
}

// Vars returns the kong variables interpolated into flag defaults
func Vars() kong.Vars {
	return kong.Vars{
		"added_symbol":         config.DefaultAddedSymbol,
		"ahead_symbol":         config.DefaultAheadSymbol,
		"behind_symbol":        config.DefaultBehindSymbol,
		"branch_symbol":        config.DefaultBranchSymbol,
		"conflict_symbol":      config.DefaultConflictSymbol,
		"deleted_symbol":       config.DefaultDeletedSymbol,
		"detached_symbol":      config.DefaultDetachedSymbol,
		"max_depth":            strconv.Itoa(adaptergit.DefaultMaxDepth),
		"modified_symbol":      config.DefaultModifiedSymbol,
		"operation_precedence": defaultPrecedence(),
		"prefix":               config.DefaultPrefix,
		"separator":            config.DefaultSeparator,
		"staged_symbol":        config.DefaultStagedSymbol,
		"stash_symbol":         config.DefaultStashSymbol,
		"suffix":               config.DefaultSuffix,
		"unstaged_symbol":      config.DefaultUnstagedSymbol,
		"untracked_symbol":     config.DefaultUntrackedSymbol,
		"version":              version.Info(),
		"worktree_marker":      config.DefaultWorktreeMarker,
	}
}

// NewParser builds the kong parser for cli.
// Settings must be set on cli before parsing; hooks run during Parse.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("gitprompt"),
		kong.Description(version.Tagline),
		Vars(),
		kong.Bind(cli),
	}
	return kong.New(cli, append(opts, options...)...)
}

func defaultPrecedence() string {
	names := make([]string, 0, len(domain.DefaultOperationPrecedence))
	for _, op := range domain.DefaultOperationPrecedence {
		names = append(names, op.String())
	}
	return strings.Join(names, ",")
}

// SetSettings sets the settings on the CLI struct.
// A load error is reported from AfterApply so --quiet applies to it.
func (c *CLI) SetSettings(settings *config.Settings, err error) {
	c.settings = settings
	c.settingsErr = err
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settingsErr != nil {
		return c.settingsErr
	}

	// Precedence: CLI flags > env vars > settings.yaml > defaults
	// A setting only applies if the flag is at its default value and its env var is not set
	if c.settings != nil {
		c.applySettings(c.settings)
	}

	if err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		File:        c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	}); err != nil {
		return err
	}

	renderConfig, err := c.buildRenderConfig()
	if err != nil {
		return err
	}
	c.renderConfig = renderConfig

	switch c.Untracked {
	case adaptergit.UntrackedAll, adaptergit.UntrackedNo, adaptergit.UntrackedNormal:
	default:
		return fmt.Errorf("invalid untracked mode '%s' (valid: all, normal, no)", c.Untracked)
	}

	precedence, err := domain.ParsePrecedence(c.OperationPrecedence)
	if err != nil {
		return fmt.Errorf("invalid operation precedence: %w", err)
	}

	logging.Logger.Debug("Configuration resolved",
		"git_dir", c.GitDir,
		"max_depth", c.MaxDepth,
		"precedence", c.OperationPrecedence,
		"shell", c.Render.Shell,
		"timeout", c.Timeout,
		"untracked", c.Untracked)

	// Create container AFTER logging is initialized
	c.Container = NewContainer(ContainerOptions{
		GitBinary:           c.GitBinary,
		Locator:             adaptergit.LocatorOptionsFromEnv(c.MaxDepth),
		OperationPrecedence: precedence,
		Untracked:           c.Untracked,
	})

	return nil
}

// applySettings copies settings-file values onto flags still at their defaults
func (c *CLI) applySettings(s *config.Settings) {
	if s.MaxLogFiles != nil && c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("GITPROMPT_MAX_LOG_FILES") {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if s.Debug != nil && *s.Debug && !c.Debug && !hasEnv("GITPROMPT_DEBUG") {
		c.Debug = true
	}
	if s.GitBinary != "" && c.GitBinary == "git" && !hasEnv("GITPROMPT_GIT") {
		c.GitBinary = s.GitBinary
	}
	if s.MaxDepth != nil && c.MaxDepth == adaptergit.DefaultMaxDepth && !hasEnv("GITPROMPT_MAX_DEPTH") {
		c.MaxDepth = *s.MaxDepth
	}
	if s.Timeout != nil && c.Timeout == 0 && !hasEnv("GITPROMPT_TIMEOUT") {
		c.Timeout = *s.Timeout
	}
	if s.Untracked != "" && c.Untracked == adaptergit.UntrackedAll && !hasEnv("GITPROMPT_UNTRACKED") {
		c.Untracked = s.Untracked
	}
	if len(s.OperationPrecedence) > 0 && strings.Join(c.OperationPrecedence, ",") == defaultPrecedence() &&
		!hasEnv("GITPROMPT_OPERATION_PRECEDENCE") {
		c.OperationPrecedence = s.OperationPrecedence
	}
}

// buildRenderConfig layers defaults, settings.yaml and then flags or env vars that were set
func (c *CLI) buildRenderConfig() (config.RenderConfig, error) {
	cfg := config.DefaultRenderConfig()
	if err := cfg.ApplySettings(c.settings); err != nil {
		return config.RenderConfig{}, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	f := c.Render
	symbols := []struct {
		dst   *string
		value string
		def   string
		env   string
	}{
		{&cfg.AddedSymbol, f.AddedSymbol, config.DefaultAddedSymbol, "GITPROMPT_ADDED_SYMBOL"},
		{&cfg.AheadSymbol, f.AheadSymbol, config.DefaultAheadSymbol, "GITPROMPT_AHEAD_SYMBOL"},
		{&cfg.BehindSymbol, f.BehindSymbol, config.DefaultBehindSymbol, "GITPROMPT_BEHIND_SYMBOL"},
		{&cfg.BranchSymbol, f.BranchSymbol, config.DefaultBranchSymbol, "GITPROMPT_BRANCH_SYMBOL"},
		{&cfg.ConflictSymbol, f.ConflictSymbol, config.DefaultConflictSymbol, "GITPROMPT_CONFLICT_SYMBOL"},
		{&cfg.DeletedSymbol, f.DeletedSymbol, config.DefaultDeletedSymbol, "GITPROMPT_DELETED_SYMBOL"},
		{&cfg.DetachedSymbol, f.DetachedSymbol, config.DefaultDetachedSymbol, "GITPROMPT_DETACHED_SYMBOL"},
		{&cfg.ModifiedSymbol, f.ModifiedSymbol, config.DefaultModifiedSymbol, "GITPROMPT_MODIFIED_SYMBOL"},
		{&cfg.Prefix, f.Prefix, config.DefaultPrefix, "GITPROMPT_PREFIX"},
		{&cfg.Separator, f.Separator, config.DefaultSeparator, "GITPROMPT_SEPARATOR"},
		{&cfg.StagedSymbol, f.StagedSymbol, config.DefaultStagedSymbol, "GITPROMPT_STAGED_SYMBOL"},
		{&cfg.StashSymbol, f.StashSymbol, config.DefaultStashSymbol, "GITPROMPT_STASH_SYMBOL"},
		{&cfg.Suffix, f.Suffix, config.DefaultSuffix, "GITPROMPT_SUFFIX"},
		{&cfg.UnstagedSymbol, f.UnstagedSymbol, config.DefaultUnstagedSymbol, "GITPROMPT_UNSTAGED_SYMBOL"},
		{&cfg.UntrackedSymbol, f.UntrackedSymbol, config.DefaultUntrackedSymbol, "GITPROMPT_UNTRACKED_SYMBOL"},
		{&cfg.WorktreeMarker, f.WorktreeMarker, config.DefaultWorktreeMarker, "GITPROMPT_WORKTREE_MARKER"},
	}
	for _, s := range symbols {
		if s.value != s.def || hasEnv(s.env) {
			*s.dst = s.value
		}
	}

	if !f.HideCleanCounts || hasEnv("GITPROMPT_HIDE_CLEAN_COUNTS") {
		cfg.HideCleanCounts = f.HideCleanCounts
	}
	if f.Color || hasEnv("GITPROMPT_COLOR") {
		cfg.Color = f.Color
	}
	if f.DetailedChanges || hasEnv("GITPROMPT_DETAILED_CHANGES") {
		cfg.DetailedChanges = f.DetailedChanges
	}
	if f.Shell != string(theme.ShellNone) || hasEnv("GITPROMPT_SHELL") {
		shell, err := theme.ParseShell(f.Shell)
		if err != nil {
			return config.RenderConfig{}, err
		}
		cfg.Shell = shell
	}

	for segment, color := range f.Colors {
		if err := cfg.Palette.Set(segment, color); err != nil {
			return config.RenderConfig{}, err
		}
	}
	if len(f.OperationLabels) > 0 {
		labels := make(map[domain.Operation]string, len(cfg.OperationLabels))
		for op, label := range cfg.OperationLabels {
			labels[op] = label
		}
		for name, label := range f.OperationLabels {
			op, err := domain.ParseOperation(name)
			if err != nil {
				return config.RenderConfig{}, fmt.Errorf("invalid operation label: %w", err)
			}
			labels[op] = label
		}
		cfg.OperationLabels = labels
	}

	if err := cfg.Validate(); err != nil {
		return config.RenderConfig{}, err
	}
	return cfg, nil
}

// readContext returns the context for repository reads, bounded by --timeout when set
func (c *CLI) readContext() (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(context.Background(), c.Timeout)
	}
	return context.WithCancel(context.Background())
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
