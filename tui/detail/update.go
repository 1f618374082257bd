package detail

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"huddle/tui/common"
	"huddle/tui/compose"
)

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CommentsLoadedMsg:
		return m.handleLoaded(msg)

	case CommentsErrorMsg:
		return m.handleLoadError(msg)

	case CreateResultMsg:
		return m.handleCreateResult(msg)

	case CommentEditResultMsg:
		return m.handleCommentEditResult(msg)

	case CommentDeleteResultMsg:
		return m.handleCommentDeleteResult(msg)

	case CommentLikeResultMsg:
		return m.handleCommentLikeResult(msg)

	case PostLikeResultMsg:
		return m.handlePostLikeResult(msg)

	case PostEditResultMsg:
		return m.handlePostEditResult(msg)

	case PostDeleteResultMsg:
		return m.handlePostDeleteResult(msg)

	case compose.DoneMsg:
		return m.handleComposeDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// --- Load results ---

func (m Model) handleLoaded(msg CommentsLoadedMsg) (Model, tea.Cmd) {
	// ApplyLoad discards responses from superseded loads; a stale response
	// must also keep the spinner if a newer load is still in flight.
	if !m.engine.ApplyLoad(msg.Seq, msg.Comments) {
		return m, nil
	}
	m.loading = false
	m.err = nil
	m.clampCursor()
	return m, nil
}

func (m Model) handleLoadError(msg CommentsErrorMsg) (Model, tea.Cmd) {
	if m.engine.Store.Stale(msg.Seq) {
		return m, nil
	}
	m.loading = false
	if m.engine.Store.Loaded() {
		// Keep showing the last good list; surface the failure transiently.
		return m, notice("Refresh failed: "+msg.Err.Error(), true)
	}
	m.err = msg.Err
	return m, nil
}

// reload issues a fresh authoritative load.
func (m Model) reload() (Model, tea.Cmd) {
	return m, m.loadComments(m.engine.Store.NextLoadSeq())
}

// --- Mutation results ---

func (m Model) handleCreateResult(msg CreateResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		// Rollback removes the optimistic entry; the next projection no
		// longer shows it.
		m.engine.Pending.Rollback(msg.LocalID)
		m.clampCursor()
		return m, notice("Comment failed: "+msg.Err.Error(), true)
	}
	m.engine.Pending.Commit(msg.LocalID)
	return m.reload()
}

func (m Model) handleCommentEditResult(msg CommentEditResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.drafts[msg.CommentID] = msg.Body
		return m, notice("Edit failed: "+msg.Err.Error(), true)
	}
	delete(m.drafts, msg.CommentID)
	m2, cmd := m.reload()
	return m2, tea.Batch(cmd, notice("Comment updated", false))
}

func (m Model) handleCommentDeleteResult(msg CommentDeleteResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		return m, notice("Delete failed: "+msg.Err.Error(), true)
	}
	m2, cmd := m.reload()
	return m2, tea.Batch(cmd, notice("Comment deleted", false))
}

func (m Model) handleCommentLikeResult(msg CommentLikeResultMsg) (Model, tea.Cmd) {
	if m.user == nil {
		return m, nil
	}
	if msg.Err != nil {
		if snap, ok := m.engine.Likes.Revert(msg.CommentID); ok {
			m.engine.Store.SetCommentLike(msg.CommentID, m.user.ID, snap.Liked)
		}
		return m, notice("Like failed: "+msg.Err.Error(), true)
	}
	server := m.engine.Likes.Confirm(msg.CommentID, msg.State)
	m.engine.Store.SetCommentLike(msg.CommentID, m.user.ID, server.Liked)
	// The reload is authoritative for the full likes set, not just ours.
	return m.reload()
}

func (m Model) handlePostLikeResult(msg PostLikeResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		if snap, ok := m.engine.Likes.Revert(msg.PostID); ok {
			m.engine.Store.SetPostLike(snap)
		}
		return m, notice("Like failed: "+msg.Err.Error(), true)
	}
	m.engine.Store.SetPostLike(m.engine.Likes.Confirm(msg.PostID, msg.State))
	return m, nil
}

func (m Model) handlePostEditResult(msg PostEditResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.drafts[msg.PostID] = msg.Body
		return m, notice("Edit failed: "+msg.Err.Error(), true)
	}
	delete(m.drafts, msg.PostID)
	m.engine.Store.SetPostBody(msg.Body)
	return m, notice("Post updated", false)
}

func (m Model) handlePostDeleteResult(msg PostDeleteResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		return m, notice("Delete failed: "+msg.Err.Error(), true)
	}
	post := m.engine.Store.Post()
	return m, func() tea.Msg {
		return CloseThreadMsg{Post: post, Deleted: true}
	}
}

func notice(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return common.NoticeMsg{Text: text, IsErr: isErr} }
}

func signInRequired() tea.Cmd {
	return func() tea.Msg { return common.SignInRequiredMsg{} }
}
