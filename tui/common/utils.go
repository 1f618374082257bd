package common

import (
	"fmt"
	"regexp"
	"time"
)

// Post bodies may carry embedded markup; strip it for terminal display.
// Good enough for rendering; not a security boundary.
var (
	markupTagRe = regexp.MustCompile(`<[^>]*>`)
	lineBreakRe = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)
)

// StripMarkup removes markup tags, turning paragraph ends and breaks into
// newlines.
func StripMarkup(s string) string {
	s = lineBreakRe.ReplaceAllString(s, "\n")
	return markupTagRe.ReplaceAllString(s, "")
}

// RelTime renders a timestamp as a short relative age ("3m", "2h", "5d").
func RelTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
