package theme

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Shell selects how color sequences are embedded in the prompt line
type Shell string

const (
	ShellBash Shell = "bash" // ANSI wrapped in readline ignore markers
	ShellNone Shell = "none" // Raw ANSI
	ShellZsh  Shell = "zsh"  // %F{n}...%f prompt escapes
)

// Readline's RL_PROMPT_START_IGNORE / RL_PROMPT_END_IGNORE. PS1's \[ \] are
// decoded to these before command substitution, so command output must emit them directly.
const (
	readlineIgnoreStart = "\x01"
	readlineIgnoreEnd   = "\x02"
)

// Shells lists the accepted shell names
func Shells() []Shell {
	return []Shell{ShellBash, ShellNone, ShellZsh}
}

// ParseShell parses a shell name; empty means ShellNone
func ParseShell(name string) (Shell, error) {
	switch Shell(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return ShellNone, nil
	case ShellBash:
		return ShellBash, nil
	case ShellNone:
		return ShellNone, nil
	case ShellZsh:
		return ShellZsh, nil
	}
	valid := make([]string, 0, len(Shells()))
	for _, shell := range Shells() {
		valid = append(valid, string(shell))
	}
	return "", fmt.Errorf("unknown shell '%s' (valid: %s)", name, strings.Join(valid, ", "))
}

// Escape makes literal text safe for the shell's prompt expansion
func (s Shell) Escape(text string) string {
	if s == ShellZsh {
		return strings.ReplaceAll(text, "%", "%%")
	}
	return text
}

// Paint colors already-escaped text. An empty or invalid color returns text unchanged.
func (s Shell) Paint(color Color, text string) string {
	if color == "" || text == "" {
		return text
	}

	if s == ShellZsh {
		return "%F{" + string(color) + "}" + text + "%f"
	}

	c := termenv.ANSI256.Color(string(color))
	if c == nil {
		return text
	}
	start := termenv.CSI + c.Sequence(false) + "m"
	reset := termenv.CSI + termenv.ResetSeq + "m"

	if s == ShellBash {
		return readlineIgnoreStart + start + readlineIgnoreEnd + text + readlineIgnoreStart + reset + readlineIgnoreEnd
	}
	return start + text + reset
}
