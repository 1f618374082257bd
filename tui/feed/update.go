package feed

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"huddle/domain"
	"huddle/tui/common"
	"huddle/tui/compose"
)

// Update handles messages for the feed view.
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

	case PostsLoadedMsg:
		// A response for an older fetch must not overwrite newer state.
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		// Keep the selection on the same post across reloads when it still
		// exists; otherwise clamp.
		var selectedID string
		if p, ok := m.SelectedPost(); ok {
			selectedID = p.ID
		}
		m.items = msg.Posts
		m.cursor = 0
		for i := range m.items {
			if m.items[i].ID == selectedID {
				m.cursor = i
				break
			}
		}
		return m, nil

	case PostsErrorMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case PostLikeResultMsg:
		return m.handleLikeResult(msg)

	case PostEditResultMsg:
		return m.handleEditResult(msg)

	case PostDeleteResultMsg:
		return m.handleDeleteResult(msg)

	case compose.DoneMsg:
		return m.handleComposeDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// A pending delete confirmation captures the next key press.
	if m.confirmDeleteID != "" {
		id := m.confirmDeleteID
		m.confirmDeleteID = ""
		if msg.String() == "y" {
			return m, m.deletePost(id)
		}
		return m, notice("Delete cancelled", false)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.Refresh()

	case key.Matches(msg, m.keys.Open):
		post, ok := m.SelectedPost()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return OpenThreadMsg{Post: post} }

	case key.Matches(msg, m.keys.Like):
		return m.toggleLike()

	case key.Matches(msg, m.keys.Edit):
		return m.requestEdit()

	case key.Matches(msg, m.keys.Delete):
		post, ok := m.SelectedPost()
		if !ok {
			return m, nil
		}
		if m.user == nil {
			return m, signInRequired()
		}
		if !post.OwnedBy(m.user.ID) {
			return m, notice("You can only delete your own posts", true)
		}
		m.confirmDeleteID = post.ID
		return m, nil
	}

	return m, nil
}

// toggleLike applies the optimistic like flip and issues the request. The
// pre-toggle state is captured so a failure can restore it exactly.
func (m Model) toggleLike() (Model, tea.Cmd) {
	post, ok := m.SelectedPost()
	if !ok {
		return m, nil
	}
	if m.user == nil {
		return m, signInRequired()
	}

	current := domain.LikeState{Liked: post.Liked, Likes: post.LikeCount}
	optimistic, ok := m.likes.Begin(post.ID, current)
	if !ok {
		return m, nil // A toggle for this post is already in flight.
	}

	m.setLike(post.ID, optimistic)
	return m, m.togglePostLike(post.ID)
}

func (m Model) handleLikeResult(msg PostLikeResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		if snap, ok := m.likes.Revert(msg.PostID); ok {
			m.setLike(msg.PostID, snap)
		}
		return m, notice("Like failed: "+msg.Err.Error(), true)
	}
	m.setLike(msg.PostID, m.likes.Confirm(msg.PostID, msg.State))
	return m, nil
}

func (m Model) requestEdit() (Model, tea.Cmd) {
	post, ok := m.SelectedPost()
	if !ok {
		return m, nil
	}
	if m.user == nil {
		return m, signInRequired()
	}
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
}

func (m Model) handleComposeDone(msg compose.DoneMsg) (Model, tea.Cmd) {
	if msg.Target.Kind != compose.EditPost {
		return m, nil
	}
	if msg.Err != nil {
		return m, notice(msg.Err.Error(), true)
	}
	if msg.Body == "" {
		return m, nil // Cancelled.
	}
	return m, m.editPost(msg.Target.PostID, msg.Body)
}

func (m Model) handleEditResult(msg PostEditResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		// Keep the rejected body so the retry starts from the draft, not the
		// stale server copy.
		m.drafts[msg.PostID] = msg.Body
		return m, notice("Edit failed: "+msg.Err.Error(), true)
	}
	delete(m.drafts, msg.PostID)
	for i := range m.items {
		if m.items[i].ID == msg.PostID {
			m.items[i].Body = msg.Body
			break
		}
	}
	return m, notice("Post updated", false)
}

func (m Model) handleDeleteResult(msg PostDeleteResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		return m, notice("Delete failed: "+msg.Err.Error(), true)
	}
	for i := range m.items {
		if m.items[i].ID == msg.PostID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	if m.cursor >= len(m.items) && m.cursor > 0 {
		m.cursor--
	}
	return m, notice("Post deleted", false)
}

// Refresh re-fetches the feed under a fresh sequence.
func (m Model) Refresh() (Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.fetchPosts(m.nextSeq()), m.spinner.Tick)
}

// ConfirmingDelete reports whether a delete confirmation is capturing keys;
// the root model must not treat those keys as global bindings.
func (m Model) ConfirmingDelete() bool {
	return m.confirmDeleteID != ""
}

func (m *Model) setLike(postID string, state domain.LikeState) {
	for i := range m.items {
		if m.items[i].ID == postID {
			m.items[i].Liked = state.Liked
			m.items[i].LikeCount = state.Likes
			return
		}
	}
}

func notice(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return common.NoticeMsg{Text: text, IsErr: isErr} }
}

func signInRequired() tea.Cmd {
	return func() tea.Msg { return common.SignInRequiredMsg{} }
}
