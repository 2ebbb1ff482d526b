package version

import (
	"fmt"
	"runtime"
)

// Tagline is the application's tagline used in help text
const Tagline = "Compact git status for shell prompts"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/gitprompt/internal/version.Version=v1.0.0"
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = runtime.Version()
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("gitprompt %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
