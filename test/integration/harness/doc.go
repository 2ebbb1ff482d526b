// Package harness provides utilities for integration testing the gitprompt CLI.
// It handles binary compilation, environment isolation, git fixtures and command execution.
//
// Environment variables managed:
//   - GITPROMPT_HOME: Isolated per test (temp directory)
//   - GITPROMPT_*: All other variables are removed so host settings never leak in
//   - GIT_CEILING_DIRECTORIES: Set to the test's temp root so no enclosing repository is found
//   - GIT_DIR, GIT_WORK_TREE and friends: Removed so git discovers repositories itself
package harness
