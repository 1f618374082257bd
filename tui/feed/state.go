package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"huddle/app"
	"huddle/domain"
	"huddle/thread"
	"huddle/tui/common"
)

// --- Messages ---

// PostsLoadedMsg is sent when the feed fetch completes successfully.
type PostsLoadedMsg struct {
	Posts []domain.Post
	Seq   int
}

// PostsErrorMsg is sent when the feed fetch fails.
type PostsErrorMsg struct {
	Err error
	Seq int
}

// PostLikeResultMsg is sent after a post like toggle attempt.
type PostLikeResultMsg struct {
	PostID string
	State  domain.LikeState
	Err    error
}

// PostEditResultMsg is sent after a post edit attempt.
type PostEditResultMsg struct {
	PostID string
	Body   string
	Err    error
}

// PostDeleteResultMsg is sent after a post deletion attempt.
type PostDeleteResultMsg struct {
	PostID string
	Err    error
}

// OpenThreadMsg asks the root model to open a post's comment thread.
type OpenThreadMsg struct {
	Post domain.Post
}

// --- Model ---

// Model holds the state for the feed (post list) view. Each post card's
// thread state is owned by the detail view opened for it; the feed only
// holds the posts' scalar fields.
type Model struct {
	feed  app.FeedService
	posts app.PostService

	items  []domain.Post
	likes  *thread.LikeToggle
	drafts map[string]string // postID → draft body of a failed edit

	user    *domain.User
	limit   int
	seq     int // Latest issued fetch sequence.
	cursor  int
	loading bool
	err     error

	confirmDeleteID string // Post awaiting delete confirmation; empty if none.

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a feed model with injected dependencies.
func New(feedSvc app.FeedService, postSvc app.PostService, limit int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))

	return Model{
		feed:    feedSvc,
		posts:   postSvc,
		likes:   thread.NewLikeToggle(),
		drafts:  make(map[string]string),
		limit:   limit,
		seq:     1, // The initial fetch in Init carries this sequence.
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPosts(m.seq),
		m.spinner.Tick,
	)
}

// nextSeq issues a fetch sequence; stale responses are discarded on arrival.
func (m *Model) nextSeq() int {
	m.seq++
	return m.seq
}

// SetUser records the session user for ownership checks and like state.
func (m *Model) SetUser(user *domain.User) {
	m.user = user
}

// SelectedPost returns the currently highlighted post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return domain.Post{}, false
	}
	return m.items[m.cursor], true
}

// ReplacePost merges updated scalar state for a post back into the list,
// e.g. when a thread view is closed after mutating the post.
func (m *Model) ReplacePost(p domain.Post) {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = p
			return
		}
	}
}
