package detail

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"huddle/domain"
	"huddle/tui/compose"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// A pending delete confirmation captures the next key press. Deletion is
	// the one mutation that is not optimistic: nothing changes until the
	// server has confirmed.
	if m.confirmDelete != nil {
		target := *m.confirmDelete
		m.confirmDelete = nil
		if msg.String() != "y" {
			return m, notice("Delete cancelled", false)
		}
		switch target.kind {
		case deletePost:
			return m, m.deletePost()
		case deleteComment:
			return m, m.deleteComment(target.id)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		post := m.engine.Store.Post()
		return m, func() tea.Msg { return CloseThreadMsg{Post: post} }

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.loadComments(m.engine.Store.NextLoadSeq()), m.spinner.Tick)

	case key.Matches(msg, m.keys.Like):
		return m.toggleLike()

	case key.Matches(msg, m.keys.Comment):
		return m.requestComment(true)

	case key.Matches(msg, m.keys.CommentEditor):
		return m.requestComment(false)

	case key.Matches(msg, m.keys.Edit):
		return m.requestEdit()

	case key.Matches(msg, m.keys.Delete):
		return m.requestDelete()

	case key.Matches(msg, m.keys.Expand):
		return m.toggleExpansion()
	}

	return m, nil
}

// --- Like ---

func (m Model) toggleLike() (Model, tea.Cmd) {
	if m.user == nil {
		return m, signInRequired()
	}

	r := m.selectedRow()
	switch r.kind {
	case rowPost:
		post := m.engine.Store.Post()
		current := domain.LikeState{Liked: post.Liked, Likes: post.LikeCount}
		optimistic, ok := m.engine.Likes.Begin(post.ID, current)
		if !ok {
			return m, nil
		}
		m.engine.Store.SetPostLike(optimistic)
		return m, m.togglePostLike()

	case rowComment, rowReply:
		c := r.comment
		if c.IsLocal() {
			return m, notice("Still posting; try again in a moment", true)
		}
		optimistic, ok := m.engine.Likes.Begin(c.ID, c.LikeState(m.user.ID))
		if !ok {
			return m, nil
		}
		m.engine.Store.SetCommentLike(c.ID, m.user.ID, optimistic.Liked)
		return m, m.toggleCommentLike(c.ID)
	}

	return m, nil
}

// --- Compose requests ---

// requestComment opens the compose view for a new comment or reply. A reply
// targets the selected comment; the stage step re-parents it onto the
// top-level ancestor, but the parent recorded here is already the row's root
// for reply rows so the compose heading reads right.
func (m Model) requestComment(inline bool) (Model, tea.Cmd) {
	if m.user == nil {
		return m, signInRequired()
	}

	target := compose.Target{Kind: compose.NewComment, PostID: m.PostID()}
	r := m.selectedRow()
	switch r.kind {
	case rowComment:
		if r.comment.IsLocal() {
			return m, notice("Still posting; try again in a moment", true)
		}
		target.ParentID = r.comment.ID
	case rowReply:
		target.ParentID = r.rootID
	case rowMore:
		target.ParentID = r.rootID
	}

	return m, func() tea.Msg {
		return compose.RequestMsg{Target: target, Inline: inline}
	}
}

func (m Model) requestEdit() (Model, tea.Cmd) {
	if m.user == nil {
		return m, signInRequired()
	}

	r := m.selectedRow()
	switch r.kind {
	case rowPost:
		post := m.engine.Store.Post()
		if !post.OwnedBy(m.user.ID) {
			return m, notice("You can only edit your own posts", true)
		}
		initial := post.Body
		if draft, ok := m.drafts[post.ID]; ok {
			initial = draft
		}
		target := compose.Target{Kind: compose.EditPost, PostID: post.ID}
		return m, func() tea.Msg {
			return compose.RequestMsg{Target: target, Initial: initial, Inline: true}
		}

	case rowComment, rowReply:
		c := r.comment
		if c.IsLocal() {
			return m, notice("Still posting; try again in a moment", true)
		}
		if !c.OwnedBy(m.user.ID) {
			return m, notice("You can only edit your own comments", true)
		}
		initial := c.Body
		if draft, ok := m.drafts[c.ID]; ok {
			initial = draft
		}
		target := compose.Target{Kind: compose.EditComment, PostID: m.PostID(), CommentID: c.ID}
		return m, func() tea.Msg {
			return compose.RequestMsg{Target: target, Initial: initial, Inline: true}
		}
	}

	return m, nil
}

func (m Model) requestDelete() (Model, tea.Cmd) {
	if m.user == nil {
		return m, signInRequired()
	}

	r := m.selectedRow()
	switch r.kind {
	case rowPost:
		if !m.engine.Store.Post().OwnedBy(m.user.ID) {
			return m, notice("You can only delete your own posts", true)
		}
		m.confirmDelete = &deleteTarget{kind: deletePost}
		return m, nil

	case rowComment, rowReply:
		c := r.comment
		if c.IsLocal() {
			return m, notice("Still posting; try again in a moment", true)
		}
		if !c.OwnedBy(m.user.ID) {
			return m, notice("You can only delete your own comments", true)
		}
		m.confirmDelete = &deleteTarget{kind: deleteComment, id: c.ID}
		return m, nil
	}

	return m, nil
}

// --- Expansion ---

func (m Model) toggleExpansion() (Model, tea.Cmd) {
	r := m.selectedRow()
	switch r.kind {
	case rowComment:
		m.engine.Expanded.Toggle(r.comment.ID)
	case rowReply, rowMore:
		m.engine.Expanded.Toggle(r.rootID)
	}
	m.clampCursor()
	return m, nil
}

// --- Compose completion ---

func (m Model) handleComposeDone(msg compose.DoneMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		return m, notice(msg.Err.Error(), true)
	}
	if msg.Body == "" {
		return m, nil // Cancelled.
	}

	switch msg.Target.Kind {
	case compose.NewComment:
		if m.user == nil {
			return m, signInRequired()
		}
		var target *domain.Comment
		if msg.Target.ParentID != "" {
			if c, ok := m.engine.Store.Find(msg.Target.ParentID); ok {
				target = &c
			} else {
				target = &domain.Comment{ID: msg.Target.ParentID}
			}
		}
		staged, err := m.engine.StageComment(msg.Body, target, *m.user)
		if err != nil {
			return m, notice(err.Error(), true)
		}
		return m, m.createComment(staged.ID, staged.Body, staged.ParentID)

	case compose.EditComment:
		return m, m.editComment(msg.Target.CommentID, msg.Body)

	case compose.EditPost:
		return m, m.editPost(msg.Body)
	}

	return m, nil
}
