package detail

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// clampLinesToWidth hard-cuts any rendered line wider than the terminal. The
// cards wrap their own bodies, but styled borders plus the reply gutter can
// still overshoot on narrow terminals; cutting must be ANSI-aware or escape
// sequences get split.
func clampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}
