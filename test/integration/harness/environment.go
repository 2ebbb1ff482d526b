package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// repositoryEnv are git variables that would override repository discovery
var repositoryEnv = map[string]bool{
	"GIT_COMMON_DIR":                   true,
	"GIT_DIR":                          true,
	"GIT_DISCOVERY_ACROSS_FILESYSTEM":  true,
	"GIT_INDEX_FILE":                   true,
	"GIT_OBJECT_DIRECTORY":             true,
	"GIT_ALTERNATE_OBJECT_DIRECTORIES": true,
	"GIT_WORK_TREE":                    true,
}

// TestEnvironment provides an isolated test environment with its own GITPROMPT_HOME.
type TestEnvironment struct {
	GitpromptHome string
	WorkDir       string
	extraEnv      map[string]string
	tb            testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp GITPROMPT_HOME.
// Commands run in a temp directory outside any repository until WorkDir is changed.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GitpromptHome: tb.TempDir(),
		WorkDir:       tb.TempDir(),
		extraEnv:      make(map[string]string),
		tb:            tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out GITPROMPT_* and repository-override git variables and sets:
//   - GITPROMPT_HOME to the temp directory
//   - GIT_CEILING_DIRECTORIES to the test's temp root
//   - GIT_CONFIG_NOSYSTEM so the host's system config is ignored
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GITPROMPT_") || repositoryEnv[key] || key == "GIT_CEILING_DIRECTORIES" {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GITPROMPT_HOME="+e.GitpromptHome,
		"GIT_CEILING_DIRECTORIES="+e.TempDir(),
		"GIT_CONFIG_NOSYSTEM=1",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GitpromptHome, "settings.yaml")
}

// WriteSettings writes content to the test settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// TempDir returns the root temp directory used for this test environment.
func (e *TestEnvironment) TempDir() string {
	return filepath.Dir(e.GitpromptHome)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
