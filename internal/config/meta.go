package config

import (
	"reflect"
	"strings"
	"time"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}

		name := strings.Split(tag, ",")[0]
		example[name] = exampleValue(field.Type, name)
	}

	return example
}

// exampleValue returns the default for a key, or a representative value when it has none
func exampleValue(t reflect.Type, name string) any {
	switch name {
	case "added_symbol":
		return DefaultAddedSymbol
	case "ahead_symbol":
		return DefaultAheadSymbol
	case "behind_symbol":
		return DefaultBehindSymbol
	case "branch_symbol":
		return "⎇ "
	case "colors":
		return map[string]string{"branch": "4", "stash": "#00afaf"}
	case "conflict_symbol":
		return DefaultConflictSymbol
	case "deleted_symbol":
		return DefaultDeletedSymbol
	case "detached_symbol":
		return DefaultDetachedSymbol
	case "detailed_changes":
		return false
	case "git_binary":
		return "/usr/bin/git"
	case "hide_clean_counts":
		return true
	case "max_depth":
		return 64
	case "max_log_files":
		return 1000
	case "modified_symbol":
		return DefaultModifiedSymbol
	case "operation_labels":
		return map[string]string{"rebase": "REBASING", "merge": "MERGING"}
	case "operation_precedence":
		return []string{"rebase", "cherry-pick", "bisect", "merge"}
	case "prefix":
		return DefaultPrefix
	case "separator":
		return DefaultSeparator
	case "shell":
		return "zsh"
	case "staged_symbol":
		return DefaultStagedSymbol
	case "stash_symbol":
		return DefaultStashSymbol
	case "suffix":
		return DefaultSuffix
	case "timeout":
		return (500 * time.Millisecond).String()
	case "unstaged_symbol":
		return DefaultUnstagedSymbol
	case "untracked":
		return "all"
	case "untracked_symbol":
		return DefaultUntrackedSymbol
	case "worktree_marker":
		return DefaultWorktreeMarker
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return false
	case reflect.Int:
		return 0
	default:
		return ""
	}
}
