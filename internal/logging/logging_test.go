package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins the clock used for daily file names
func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITPROMPT_DEBUG", "")
	t.Setenv("GITPROMPT_DEBUG_FILE", "")
	t.Setenv("GITPROMPT_MAX_LOG_FILES", "")
}

func TestInitialize_DisabledDiscards(t *testing.T) {
	clearEnv(t)

	require.NoError(t, Initialize(Options{MaxLogFiles: DefaultMaxLogFiles}))

	require.NotNil(t, Logger)
	Logger.Info("dropped")
}

func TestInitialize_DebugFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	require.NoError(t, Initialize(Options{File: path, MaxLogFiles: DefaultMaxLogFiles}))
	Logger.Debug("hello", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitialize_DebugFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("GITPROMPT_DEBUG", "1")
	t.Setenv("GITPROMPT_DEBUG_FILE", path)

	require.NoError(t, Initialize(Options{MaxLogFiles: DefaultMaxLogFiles}))
	Logger.Debug("from env")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from env")
	assert.NotContains(t, string(data), "Debug logging initialized")
}

func TestInitialize_RecordsCarryRunID(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "runs.log")

	require.NoError(t, Initialize(Options{File: path}))
	Logger.Debug("first run")
	require.NoError(t, Initialize(Options{File: path}))
	Logger.Debug("second run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	runs := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		require.Contains(t, record, "run")
		assert.EqualValues(t, os.Getpid(), record["pid"])
		runs[record["msg"].(string)] = record["run"].(string)
	}
	require.Contains(t, runs, "first run")
	require.Contains(t, runs, "second run")
	assert.NotEqual(t, runs["first run"], runs["second run"])
}

func TestInitialize_DailyFileShared(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("log directory layout checked on linux only")
	}
	clearEnv(t)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	fixedNow(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	require.NoError(t, Initialize(Options{Debug: true, MaxLogFiles: DefaultMaxLogFiles}))
	Logger.Debug("morning")
	require.NoError(t, Initialize(Options{Debug: true, MaxLogFiles: DefaultMaxLogFiles}))
	Logger.Debug("evening")

	dir := filepath.Join(stateHome, "gitprompt")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gitprompt-2026-03-14.log", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "morning")
	assert.Contains(t, string(data), "evening")
}

func TestInitialize_MaxLogFilesFromEnv(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("log directory layout checked on linux only")
	}
	clearEnv(t)
	t.Setenv("GITPROMPT_MAX_LOG_FILES", "1")
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	dir := filepath.Join(stateHome, "gitprompt")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gitprompt-2026-03-13.log"), []byte("x"), 0644))
	fixedNow(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	require.NoError(t, Initialize(Options{Debug: true, MaxLogFiles: DefaultMaxLogFiles}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gitprompt-2026-03-14.log", entries[0].Name())
}

func TestPruneLogs(t *testing.T) {
	dir := t.TempDir()
	fixedNow(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	for _, name := range []string{
		"gitprompt-2026-03-10.log",
		"gitprompt-2026-03-11.log",
		"gitprompt-2026-03-12.log",
		"gitprompt-2026-03-13.log",
		"gitprompt-2026-03-14.log",
		"gitprompt-notadate.log",
		"keep.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	require.NoError(t, pruneLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"gitprompt-2026-03-12.log",
		"gitprompt-2026-03-13.log",
		"gitprompt-2026-03-14.log",
		"gitprompt-notadate.log",
		"keep.txt",
	}, names)
}

func TestPruneLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gitprompt-2020-01-01.log")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 10))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestIsDailyLog(t *testing.T) {
	assert.True(t, isDailyLog("gitprompt-2026-10-19.log"))
	assert.False(t, isDailyLog("gitprompt-2026-10-19.txt"))
	assert.False(t, isDailyLog("other-2026-10-19.log"))
	assert.False(t, isDailyLog("gitprompt-2026-13-40.log"))
}

func TestGetLogDir_XDGStateHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_STATE_HOME only applies on linux")
	}
	t.Setenv("XDG_STATE_HOME", "/state")

	dir, err := getLogDir()

	require.NoError(t, err)
	assert.Equal(t, "/state/gitprompt", dir)
}
