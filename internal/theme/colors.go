package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Prompt segment colors
const (
	ColorAhead      Color = "2" // Green
	ColorBehind     Color = "1" // Red
	ColorBranch     Color = "4" // Blue
	ColorBrackets   Color = "3" // Yellow
	ColorConflicted Color = "1" // Red
	ColorDetached   Color = "5" // Magenta
	ColorOperation  Color = "3" // Yellow
	ColorStaged     Color = "2" // Green
	ColorStash      Color = "6" // Cyan
	ColorUnstaged   Color = "1" // Red
	ColorUntracked  Color = "8" // Gray
)

// Explain output colors
const (
	ColorHeading Color = "99"  // Purple
	ColorLabel   Color = "245" // Light gray
	ColorMuted   Color = "241" // Gray - absent values
	ColorValue   Color = "255" // White
)

// Palette assigns a color to every prompt segment. An empty color leaves the segment unstyled.
type Palette struct {
	Ahead      Color
	Behind     Color
	Branch     Color
	Brackets   Color
	Conflicted Color
	Detached   Color
	Operation  Color
	Staged     Color
	Stash      Color
	Unstaged   Color
	Untracked  Color
}

// DefaultPalette returns the built-in segment colors
func DefaultPalette() Palette {
	return Palette{
		Ahead:      ColorAhead,
		Behind:     ColorBehind,
		Branch:     ColorBranch,
		Brackets:   ColorBrackets,
		Conflicted: ColorConflicted,
		Detached:   ColorDetached,
		Operation:  ColorOperation,
		Staged:     ColorStaged,
		Stash:      ColorStash,
		Unstaged:   ColorUnstaged,
		Untracked:  ColorUntracked,
	}
}

func (p *Palette) fields() map[string]*Color {
	return map[string]*Color{
		"ahead":      &p.Ahead,
		"behind":     &p.Behind,
		"branch":     &p.Branch,
		"brackets":   &p.Brackets,
		"conflicted": &p.Conflicted,
		"detached":   &p.Detached,
		"operation":  &p.Operation,
		"staged":     &p.Staged,
		"stash":      &p.Stash,
		"unstaged":   &p.Unstaged,
		"untracked":  &p.Untracked,
	}
}

// Set overrides the color of a segment by name, e.g. Set("branch", "33")
func (p *Palette) Set(segment string, color string) error {
	field, ok := p.fields()[strings.ToLower(strings.TrimSpace(segment))]
	if !ok {
		return fmt.Errorf("unknown color segment '%s' (valid: %s)", segment, strings.Join(SegmentNames(), ", "))
	}
	if err := ValidateColor(color); err != nil {
		return fmt.Errorf("color for '%s': %w", segment, err)
	}
	*field = Color(color)
	return nil
}

// SegmentNames returns the names accepted by Palette.Set, sorted
func SegmentNames() []string {
	var p Palette
	names := make([]string, 0, len(p.fields()))
	for name := range p.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateColor accepts empty, an ANSI index 0-255, or #rrggbb
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if strings.HasPrefix(color, "#") {
		if len(color) != 7 || strings.Trim(color[1:], "0123456789abcdefABCDEF") != "" {
			return fmt.Errorf("invalid hex color '%s'", color)
		}
		return nil
	}
	n, err := strconv.Atoi(color)
	if err != nil || strconv.Itoa(n) != color || n < 0 || n > 255 {
		return fmt.Errorf("invalid color '%s': expected 0-255 or #rrggbb", color)
	}
	return nil
}
