// Package logging holds the process-wide debug logger.
//
// A prompt runs on every redraw, so records from all invocations of one day
// share a single file and each record carries the id of the run it came from.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the number of daily log files kept when nothing else is configured
const DefaultMaxLogFiles = 1000

const (
	logFilePrefix = "gitprompt-"
	logFileLayout = "2006-01-02"
)

// Logger discards everything until Initialize enables debug logging
var Logger = discard()

var now = time.Now

// Options selects where debug records are written
type Options struct {
	Debug       bool
	File        string // Explicit log file, never pruned
	MaxLogFiles int    // Daily files kept in the log directory (0 = unlimited)
}

// Initialize replaces Logger according to opts and the GITPROMPT_DEBUG,
// GITPROMPT_DEBUG_FILE and GITPROMPT_MAX_LOG_FILES environment variables.
// Nothing is ever written to stdout.
func Initialize(opts Options) error {
	opts = opts.withEnv()
	if !opts.Debug && opts.File == "" {
		Logger = discard()
		return nil
	}

	path := opts.File
	if path == "" {
		dir, err := getLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		path = filepath.Join(dir, dailyLogName(now()))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.File == "" && opts.MaxLogFiles > 0 {
		if err := pruneLogs(filepath.Dir(path), opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log cleanup failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("run", uuid.NewString(), "pid", os.Getpid())

	// Inherited debug would print on every redraw
	if os.Getenv("GITPROMPT_DEBUG") == "" {
		Logger.Info("Debug logging initialized", "log_file", path)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}
	return nil
}

// withEnv applies variables exported by a parent shell. The file and limit
// from the environment only fill in values left at their defaults.
func (o Options) withEnv() Options {
	if os.Getenv("GITPROMPT_DEBUG") == "1" {
		o.Debug = true
	}
	if file := os.Getenv("GITPROMPT_DEBUG_FILE"); file != "" && o.File == "" {
		o.File = file
	}
	if v := os.Getenv("GITPROMPT_MAX_LOG_FILES"); v != "" && o.MaxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(v); err == nil {
			o.MaxLogFiles = n
		}
	}
	return o
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func dailyLogName(t time.Time) string {
	return logFilePrefix + t.Format(logFileLayout) + ".log"
}

// pruneLogs keeps the newest keep-1 daily files so today's file fits under the limit.
// Today's file is never removed. Dated names sort chronologically.
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	today := dailyLogName(now())
	var old []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == today || !isDailyLog(name) {
			continue
		}
		old = append(old, name)
	}
	if len(old) < keep {
		return nil
	}

	sort.Strings(old)
	for _, name := range old[:len(old)-keep+1] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", name, err)
		}
	}
	return nil
}

func isDailyLog(name string) bool {
	date, ok := strings.CutPrefix(name, logFilePrefix)
	if !ok {
		return false
	}
	date, ok = strings.CutSuffix(date, ".log")
	if !ok {
		return false
	}
	_, err := time.Parse(logFileLayout, date)
	return err == nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "gitprompt"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "gitprompt"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "gitprompt", "logs"), nil
	default:
		return filepath.Join(homeDir, ".gitprompt", "logs"), nil
	}
}
