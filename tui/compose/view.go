package compose

import (
	"fmt"
	"strings"

	"huddle/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("Huddle"))
		b.WriteString("  " + m.heading() + "\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: submit • esc: cancel • %d/2000 chars",
				len(m.textarea.Value())),
		))
		return b.String()
	}

	return ""
}

func (m Model) heading() string {
	switch m.target.Kind {
	case EditComment:
		return "Edit Comment"
	case EditPost:
		return "Edit Post"
	default:
		if m.target.ParentID != "" {
			return "Reply"
		}
		return "New Comment"
	}
}
