package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/gitprompt/internal/logging"
)

// commandRunner abstracts git invocation so parsers can be tested without a repository
type commandRunner interface {
	Output(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// execRunner runs the git binary with an environment suited to prompt rendering:
// no optional index locks, no credential prompts, stable C locale output.
type execRunner struct {
	binary string
}

func newExecRunner(binary string) *execRunner {
	if binary == "" {
		binary = "git"
	}
	return &execRunner{binary: binary}
}

// Variables that would point git at a different repository than the one located
var repositoryEnvVars = []string{
	"GIT_COMMON_DIR",
	"GIT_DIR",
	"GIT_INDEX_FILE",
	"GIT_OBJECT_DIRECTORY",
	"GIT_WORK_TREE",
}

func (r *execRunner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Env = gitEnviron(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Debug("git command failed",
			"args", args,
			"dir", dir,
			"error", err,
			"stderr", strings.TrimSpace(stderr.String()))
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// gitEnviron filters repository overrides out of environ and pins the prompt-safe settings
func gitEnviron(environ []string) []string {
	env := make([]string, 0, len(environ)+3)
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		if isRepositoryEnvVar(key) || key == "LC_ALL" {
			continue
		}
		env = append(env, kv)
	}

	return append(env,
		"GIT_OPTIONAL_LOCKS=0",
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)
}

func isRepositoryEnvVar(key string) bool {
	for _, name := range repositoryEnvVars {
		if key == name {
			return true
		}
	}
	return false
}
