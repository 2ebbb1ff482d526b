package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings represents the structure of $GITPROMPT_HOME/settings.yaml.
// Pointer fields distinguish "not set" from zero values.
type Settings struct {
	AddedSymbol         *string           `yaml:"added_symbol,omitempty"`
	AheadSymbol         *string           `yaml:"ahead_symbol,omitempty"`
	BehindSymbol        *string           `yaml:"behind_symbol,omitempty"`
	BranchSymbol        *string           `yaml:"branch_symbol,omitempty"`
	Color               *bool             `yaml:"color,omitempty"`
	Colors              map[string]string `yaml:"colors,omitempty"`
	ConflictSymbol      *string           `yaml:"conflict_symbol,omitempty"`
	Debug               *bool             `yaml:"debug,omitempty"`
	DeletedSymbol       *string           `yaml:"deleted_symbol,omitempty"`
	DetachedSymbol      *string           `yaml:"detached_symbol,omitempty"`
	DetailedChanges     *bool             `yaml:"detailed_changes,omitempty"`
	GitBinary           string            `yaml:"git_binary,omitempty"`
	HideCleanCounts     *bool             `yaml:"hide_clean_counts,omitempty"`
	MaxDepth            *int              `yaml:"max_depth,omitempty"`
	MaxLogFiles         *int              `yaml:"max_log_files,omitempty"`
	ModifiedSymbol      *string           `yaml:"modified_symbol,omitempty"`
	OperationLabels     map[string]string `yaml:"operation_labels,omitempty"`
	OperationPrecedence StringArray       `yaml:"operation_precedence,omitempty"`
	Prefix              *string           `yaml:"prefix,omitempty"`
	Separator           *string           `yaml:"separator,omitempty"`
	Shell               string            `yaml:"shell,omitempty"`
	StagedSymbol        *string           `yaml:"staged_symbol,omitempty"`
	StashSymbol         *string           `yaml:"stash_symbol,omitempty"`
	Suffix              *string           `yaml:"suffix,omitempty"`
	Timeout             *time.Duration    `yaml:"timeout,omitempty"`
	UnstagedSymbol      *string           `yaml:"unstaged_symbol,omitempty"`
	Untracked           string            `yaml:"untracked,omitempty"`
	UntrackedSymbol     *string           `yaml:"untracked_symbol,omitempty"`
	WorktreeMarker      *string           `yaml:"worktree_marker,omitempty"`
}

// StringArray supports both YAML sequences and comma-separated strings
type StringArray []string

// UnmarshalYAML implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalYAML(value *yaml.Node) error {
	// Try sequence format first
	var arr []string
	if err := value.Decode(&arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $GITPROMPT_HOME/settings.yaml (or ~/.gitprompt/settings.yaml if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return &Settings{}, nil // Empty file
		}
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	if settings.GitBinary != "" {
		settings.GitBinary = ExpandPath(settings.GitBinary)
	}

	return &settings, nil
}
