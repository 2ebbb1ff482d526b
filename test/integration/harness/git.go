package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates remote/origin)
//  2. Clones it to create a working repo with origin remote
//  3. Creates initial commit on main and pushes it with upstream tracking
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	└── clone/          <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()
	requireGit(tb)

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	// Create bare repository (acts as origin)
	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)

	// Clone bare repo to create working repo with origin
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	// Configure git user for commits
	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")
	runGitCommand(tb, clonePath, "config", "commit.gpgsign", "false")

	g := &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}

	// Create initial commit so branches can be created
	g.Commit("Initial commit", "README.md", "# Test Repo\n")

	// Ensure branch is named "main" (git might default to "master")
	g.Git("branch", "-M", "main")

	// Push initial commit to origin
	g.Git("push", "-u", "origin", "main")

	return g
}

// Git runs a git command in the working repo.
func (g *TestGitSetup) Git(args ...string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, args...)
}

// GitOutput runs a git command in the working repo and returns its trimmed stdout.
func (g *TestGitSetup) GitOutput(args ...string) string {
	g.tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = g.ClonePath
	cmd.Env = gitEnv()

	out, err := cmd.Output()
	if err != nil {
		g.tb.Fatalf("git %v failed in %s: %v", args, g.ClonePath, err)
	}
	return strings.TrimSpace(string(out))
}

// WriteFile writes content to a path relative to the working repo.
func (g *TestGitSetup) WriteFile(rel, content string) {
	g.tb.Helper()

	path := filepath.Join(g.ClonePath, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		g.tb.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", rel, err)
	}
}

// Commit writes a file and commits it.
func (g *TestGitSetup) Commit(message, rel, content string) {
	g.tb.Helper()
	g.WriteFile(rel, content)
	g.Git("add", rel)
	g.Git("commit", "-m", message)
}

// CreateBranch creates a branch in the working repo.
func (g *TestGitSetup) CreateBranch(name string) {
	g.tb.Helper()
	g.Git("branch", name)
}

// CreateWorktree creates a git worktree at the given path for a new branch.
// Returns the full path to the created worktree.
func (g *TestGitSetup) CreateWorktree(path, branch string) string {
	g.tb.Helper()

	// Ensure branch exists
	g.CreateBranch(branch)

	// Create worktree
	g.Git("worktree", "add", path, branch)

	return path
}

// GitAllowFailure runs a git command whose non-zero exit is expected, such as a conflicting merge.
func (g *TestGitSetup) GitAllowFailure(args ...string) {
	g.tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = g.ClonePath
	cmd.Env = gitEnv()
	if out, err := cmd.CombinedOutput(); err == nil {
		g.tb.Logf("git %v succeeded unexpectedly: %s", args, out)
	}
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = gitEnv()

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}

func gitEnv() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)
}

func requireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git not found on PATH")
	}
}
