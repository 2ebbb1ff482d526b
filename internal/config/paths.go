package config

import (
	"os"
	"path/filepath"
)

// GetHome returns GITPROMPT_HOME or ~/.gitprompt default
func GetHome() string {
	home := os.Getenv("GITPROMPT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gitprompt"
		}
		return filepath.Join(homeDir, ".gitprompt")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $GITPROMPT_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
