package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitprompt/internal/domain"
)

// testRepo is a throwaway repository driven through the git binary
type testRepo struct {
	t   *testing.T
	dir string
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// newEmptyRepo creates a repository with no commits on branch main
func newEmptyRepo(t *testing.T) *testRepo {
	t.Helper()
	requireGit(t)

	repo := &testRepo{t: t, dir: t.TempDir()}
	repo.git("init", "--initial-branch=main")
	repo.git("config", "user.email", "test@test.com")
	repo.git("config", "user.name", "Test")
	repo.git("config", "commit.gpgsign", "false")
	return repo
}

// newTestRepo creates a repository with an initial commit on main
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	repo := newEmptyRepo(t)
	repo.write("README.md", "# Test\n")
	repo.git("add", "README.md")
	repo.git("commit", "-m", "Initial commit")
	return repo
}

func (r *testRepo) git(args ...string) string {
	r.t.Helper()
	return runGitIn(r.t, r.dir, args...)
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0644))
}

func (r *testRepo) commit(name, content, message string) {
	r.t.Helper()
	r.write(name, content)
	r.git("add", name)
	r.git("commit", "-m", message)
}

func (r *testRepo) handle() domain.RepositoryHandle {
	r.t.Helper()
	repo, err := NewLocator(LocatorOptions{}).Locate(r.dir)
	require.NoError(r.t, err)
	return repo
}

func runGitIn(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(gitEnviron(os.Environ()),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
		"GIT_CONFIG_NOSYSTEM=1",
		"HOME="+dir,
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

// fakeRunner returns canned output per joined argument list
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return []byte(f.outputs[key]), nil
}
