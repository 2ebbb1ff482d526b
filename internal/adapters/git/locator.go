package git

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/gitprompt/internal/domain"
	"github.com/renato0307/gitprompt/internal/logging"
	"github.com/renato0307/gitprompt/internal/ports"
)

// DefaultMaxDepth bounds how many parent directories the locator visits
const DefaultMaxDepth = 64

// LocatorOptions bound the parent-directory walk
type LocatorOptions struct {
	AcrossFilesystems bool     // Keep walking when the parent is on another device
	CeilingDirs       []string // Directories the walk never enters
	MaxDepth          int      // Parent steps after the start directory (0 means DefaultMaxDepth)
}

// LocatorOptionsFromEnv reads GIT_CEILING_DIRECTORIES and GIT_DISCOVERY_ACROSS_FILESYSTEM
func LocatorOptionsFromEnv(maxDepth int) LocatorOptions {
	opts := LocatorOptions{MaxDepth: maxDepth}

	if ceilings := os.Getenv("GIT_CEILING_DIRECTORIES"); ceilings != "" {
		for _, dir := range filepath.SplitList(ceilings) {
			if dir != "" {
				opts.CeilingDirs = append(opts.CeilingDirs, filepath.Clean(dir))
			}
		}
	}

	switch strings.ToLower(os.Getenv("GIT_DISCOVERY_ACROSS_FILESYSTEM")) {
	case "1", "true", "yes", "on":
		opts.AcrossFilesystems = true
	}

	return opts
}

// Locator finds the nearest enclosing repository by walking parent directories.
// It only stats and reads small metadata files.
type Locator struct {
	opts LocatorOptions
}

// Verify interface compliance at compile time
var _ ports.RepositoryLocator = (*Locator)(nil)

// NewLocator creates a new Locator
func NewLocator(opts LocatorOptions) *Locator {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Locator{opts: opts}
}

// Locate implements RepositoryLocator.Locate
func (l *Locator) Locate(start string) (domain.RepositoryHandle, error) {
	logging.Logger.Debug("Locating repository", "start", start)

	dir, err := startDir(start)
	if err != nil {
		return domain.RepositoryHandle{}, err
	}

	startDev, err := deviceOf(dir)
	if err != nil {
		return domain.RepositoryHandle{}, fmt.Errorf("failed to stat start directory: %w", err)
	}

	for step := 0; step <= l.opts.MaxDepth; step++ {
		if step > 0 && l.isCeiling(dir) {
			logging.Logger.Debug("Stopped at ceiling directory", "dir", dir)
			break
		}

		repo, found, err := probe(dir)
		if err != nil {
			return domain.RepositoryHandle{}, err
		}
		if found {
			logging.Logger.Debug("Found repository",
				"root", repo.Root,
				"git_dir", repo.GitDir,
				"common_dir", repo.CommonDir,
				"steps", step)
			return repo, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if !l.opts.AcrossFilesystems {
			dev, err := deviceOf(parent)
			if err != nil || dev != startDev {
				logging.Logger.Debug("Stopped at filesystem boundary", "dir", dir)
				break
			}
		}
		dir = parent
	}

	return domain.RepositoryHandle{}, domain.ErrNotARepository
}

func (l *Locator) isCeiling(dir string) bool {
	for _, ceiling := range l.opts.CeilingDirs {
		if dir == ceiling {
			return true
		}
	}
	return false
}

// startDir resolves start to an absolute directory
func startDir(start string) (string, error) {
	if start == "" {
		start = "."
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return abs, nil
}

// probe checks a single directory for a .git marker or a bare repository layout
func probe(dir string) (domain.RepositoryHandle, bool, error) {
	marker := filepath.Join(dir, ".git")

	info, err := os.Stat(marker)
	switch {
	case err == nil:
		// handled below
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		if isGitDir(dir) {
			return domain.RepositoryHandle{}, false, domain.ErrBareRepository
		}
		return domain.RepositoryHandle{}, false, nil
	default:
		return domain.RepositoryHandle{}, false, fmt.Errorf("failed to stat %s: %w", marker, err)
	}

	gitDir := marker
	if !info.IsDir() {
		gitDir, err = readGitFile(marker)
		if err != nil {
			logging.Logger.Debug("Ignoring unreadable .git file", "path", marker, "error", err)
			return domain.RepositoryHandle{}, false, nil
		}
	}

	if !isFile(filepath.Join(gitDir, "HEAD")) {
		logging.Logger.Debug("Ignoring .git without HEAD", "path", gitDir)
		return domain.RepositoryHandle{}, false, nil
	}

	commonDir, err := readCommonDir(gitDir)
	if err != nil {
		return domain.RepositoryHandle{}, false, err
	}

	return domain.RepositoryHandle{
		CommonDir: commonDir,
		GitDir:    gitDir,
		Root:      dir,
	}, true, nil
}

// readGitFile parses a "gitdir: <path>" file used by linked worktrees and submodules
func readGitFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("empty gitdir file")
	}

	line := strings.TrimSpace(scanner.Text())
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("invalid gitdir file: %q", line)
	}

	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// readCommonDir follows the commondir file of a linked worktree's git dir
func readCommonDir(gitDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gitDir, nil
		}
		return "", fmt.Errorf("failed to read commondir: %w", err)
	}

	commonDir := strings.TrimSpace(string(data))
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(gitDir, commonDir)
	}
	return filepath.Clean(commonDir), nil
}

// isGitDir reports whether dir itself looks like a git directory (bare repo or inside .git)
func isGitDir(dir string) bool {
	return isFile(filepath.Join(dir, "HEAD")) &&
		isDir(filepath.Join(dir, "objects")) &&
		isDir(filepath.Join(dir, "refs"))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
