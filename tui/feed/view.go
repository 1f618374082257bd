package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"huddle/tui/common"
)

// View renders the feed as a list of post cards.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("Huddle")
	tagline := common.TaglineStyle.Render("<your feed, in the terminal>")
	b.WriteString(title + tagline + "\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading feed...\n", m.spinner.View()))

	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")

	case len(m.items) == 0:
		b.WriteString("  Nothing here yet.\n")

	default:
		b.WriteString(m.renderCards())
	}

	if m.confirmDeleteID != "" {
		b.WriteString("\n")
		b.WriteString(common.ConfirmStyle.Render("Delete this post? (y/n)"))
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render(
		"  ↑/↓: navigate • enter: open • l: like • e: edit • d: delete • r: refresh • q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderCards() string {
	// Reserved lines: header (3), status bar (2), padding (2).
	reserved := 7
	available := m.height - reserved
	if available < 0 {
		available = 0
	}
	// Each card is ~6 lines (4 content + 2 border).
	visible := available / 6
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	now := time.Now()
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(i, now))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCard(i int, now time.Time) string {
	post := m.items[i]

	author := common.AuthorStyle.Render("@" + post.Author.Name())
	if m.user != nil && post.OwnedBy(m.user.ID) {
		author += common.OwnBadgeStyle.Render("(you)")
	}
	age := common.TimestampStyle.Render(common.RelTime(post.CreatedAt, now))

	body := common.StripMarkup(post.Body)
	body = truncateLines(body, cardBodyWidth(m.width), 2)

	likeIcon := "♡"
	likeStyle := common.CounterStyle
	if post.Liked {
		likeIcon = "♥"
		likeStyle = common.SuccessStyle
	}
	busy := ""
	if m.likes.Toggling(post.ID) {
		busy = common.PendingStyle.Render(" …")
	}
	meta := fmt.Sprintf("%s %d%s  ✉ %d",
		likeStyle.Render(likeIcon), post.LikeCount, busy, post.CommentCount)
	if post.ImageURL != "" {
		meta += common.TimestampStyle.Render("  🖼")
	}

	card := fmt.Sprintf("%s  %s\n%s\n%s",
		author, age, common.ContentStyle.Render(body), meta)

	style := common.UnselectedStyle
	if i == m.cursor {
		style = common.SelectedStyle
	}
	width := cardWidth(m.width)
	return style.Width(width).Render(card)
}

func cardWidth(termWidth int) int {
	w := termWidth - 4
	if w < 40 {
		w = 40
	}
	if w > 90 {
		w = 90
	}
	return w
}

func cardBodyWidth(termWidth int) int {
	return cardWidth(termWidth) - 4
}

// truncateLines wraps the text to width and keeps at most maxLines lines,
// marking the cut with an ellipsis.
func truncateLines(s string, width, maxLines int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(s))
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxLines {
		return wrapped
	}
	kept := lines[:maxLines]
	kept[maxLines-1] = strings.TrimRight(kept[maxLines-1], " ") + "…"
	return strings.Join(kept, "\n")
}
