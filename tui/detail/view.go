package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"huddle/domain"
	"huddle/tui/common"
)

// View renders the thread: the post on top, then the projected comment tree.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("Huddle"))
	b.WriteString(common.TaglineStyle.Render("<thread>"))
	b.WriteString("\n\n")

	now := time.Now()
	rows := m.rows()
	for i, r := range rows {
		b.WriteString(clampLinesToWidth(m.renderRow(r, i == m.cursor, now), m.width))
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("\n  %s Loading comments...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString("\n" + common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n  Press r to retry.\n")
	case len(rows) == 1:
		b.WriteString("\n  No comments yet.\n")
	}

	if m.confirmDelete != nil {
		prompt := "Delete this comment? (y/n)"
		if m.confirmDelete.kind == deletePost {
			prompt = "Delete this post? (y/n)"
		}
		b.WriteString("\n" + common.ConfirmStyle.Render(prompt) + "\n")
	}

	b.WriteString(common.StatusBarStyle.Render(
		"  ↑/↓: navigate • l: like • c: comment • e: edit • d: delete • x: more replies • esc: back"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(r row, selected bool, now time.Time) string {
	switch r.kind {
	case rowPost:
		return m.renderPost(selected, now)
	case rowComment:
		return m.renderComment(r.comment, selected, false, now)
	case rowReply:
		return m.renderComment(r.comment, selected, true, now)
	case rowMore:
		return m.renderMore(r, selected)
	}
	return ""
}

func (m Model) renderPost(selected bool, now time.Time) string {
	post := m.engine.Store.Post()

	author := common.AuthorStyle.Render("@" + post.Author.Name())
	if m.user != nil && post.OwnedBy(m.user.ID) {
		author += common.OwnBadgeStyle.Render("(you)")
	}
	age := common.TimestampStyle.Render(common.RelTime(post.CreatedAt, now))

	body := wrap(common.StripMarkup(post.Body), m.bodyWidth())

	likeIcon := "♡"
	likeStyle := common.CounterStyle
	if post.Liked {
		likeIcon = "♥"
		likeStyle = common.SuccessStyle
	}
	busy := ""
	if m.engine.Likes.Toggling(post.ID) {
		busy = common.PendingStyle.Render(" …")
	}
	meta := fmt.Sprintf("%s %d%s  ✉ %d",
		likeStyle.Render(likeIcon), post.LikeCount, busy, post.CommentCount)
	if post.ImageURL != "" {
		meta += common.TimestampStyle.Render("  🖼 " + post.ImageURL)
	}

	card := fmt.Sprintf("%s  %s\n%s\n%s",
		author, age, common.ContentStyle.Render(body), meta)

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(m.cardWidth()).Render(card)
}

func (m Model) renderComment(c domain.Comment, selected, isReply bool, now time.Time) string {
	indent := ""
	width := m.cardWidth()
	if isReply {
		indent = common.ReplyIndentStyle.Render("  └ ")
		width -= 4
	}

	author := common.AuthorStyle.Render("@" + c.Author.Name())
	if m.user != nil && c.OwnedBy(m.user.ID) {
		author += common.OwnBadgeStyle.Render("(you)")
	}

	var trailer string
	switch {
	case c.IsLocal():
		trailer = common.PendingStyle.Render(" (posting...)")
	default:
		trailer = "  " + common.TimestampStyle.Render(common.RelTime(c.CreatedAt, now))
	}

	likeIcon := "♡"
	likeStyle := common.CounterStyle
	if m.user != nil && c.LikedBy(m.user.ID) {
		likeIcon = "♥"
		likeStyle = common.SuccessStyle
	}
	busy := ""
	if m.engine.Likes.Toggling(c.ID) {
		busy = common.PendingStyle.Render(" …")
	}
	meta := fmt.Sprintf("%s %d%s", likeStyle.Render(likeIcon), c.LikeCount(), busy)

	body := wrap(common.StripMarkup(c.Body), width-4)

	card := fmt.Sprintf("%s%s\n%s\n%s",
		author, trailer, common.ContentStyle.Render(body), meta)

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	rendered := style.Width(width).Render(card)
	if indent == "" {
		return rendered
	}
	return indentBlock(rendered, indent)
}

func (m Model) renderMore(r row, selected bool) string {
	label := fmt.Sprintf("  └ show %d more replies", r.hidden)
	if r.hidden == 1 {
		label = "  └ show 1 more reply"
	}
	style := common.ReplyIndentStyle
	if selected {
		style = common.CounterStyle
	}
	return style.Render(label)
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 90 {
		w = 90
	}
	return w
}

func (m Model) bodyWidth() int {
	return m.cardWidth() - 4
}

func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(s))
}

// indentBlock prefixes the first line with the gutter and pads continuation
// lines so the block stays aligned.
func indentBlock(block, gutter string) string {
	pad := strings.Repeat(" ", lipgloss.Width(gutter))
	lines := strings.Split(block, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = gutter + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
