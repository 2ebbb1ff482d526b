package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/gitprompt/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: yaml or json" enum:"yaml,json" default:"yaml"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(k *kong.Context) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(k.Stdout, string(data))
		return nil
	}

	// yaml.v3 sorts map keys, so the example is stable
	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	fmt.Fprintf(k.Stdout, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(k.Stdout, "Example settings.yaml:")
	fmt.Fprintln(k.Stdout)
	fmt.Fprint(k.Stdout, string(data))
	fmt.Fprintln(k.Stdout)
	fmt.Fprintln(k.Stdout, "Create or edit this file to configure gitprompt.")
	fmt.Fprintln(k.Stdout, "All settings are optional; flags and GITPROMPT_* variables override them.")

	return nil
}
