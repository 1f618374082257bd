// Package detail implements the thread view: one post with its two-level
// comment section, driven by the engine in package thread.
package detail

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
//
// Every message carries the PostID it belongs to. The root model drops
// messages whose post no longer owns the open thread view, so a slow response
// can never touch a disposed thread's state.

// CommentsLoadedMsg delivers a comment list load.
type CommentsLoadedMsg struct {
	PostID   string
	Seq      int
	Comments []domain.Comment
}

// CommentsErrorMsg delivers a failed comment list load.
type CommentsErrorMsg struct {
	PostID string
	Seq    int
	Err    error
}

// CreateResultMsg delivers the outcome of publishing a staged comment.
type CreateResultMsg struct {
	PostID  string
	LocalID string
	Err     error
}

// CommentEditResultMsg delivers the outcome of a comment edit.
type CommentEditResultMsg struct {
	PostID    string
	CommentID string
	Body      string
	Err       error
}

// CommentDeleteResultMsg delivers the outcome of a comment deletion.
type CommentDeleteResultMsg struct {
	PostID    string
	CommentID string
	Err       error
}

// CommentLikeResultMsg delivers the outcome of a comment like toggle.
type CommentLikeResultMsg struct {
	PostID    string
	CommentID string
	State     domain.LikeState
	Err       error
}

// PostLikeResultMsg delivers the outcome of a post like toggle.
type PostLikeResultMsg struct {
	PostID string
	State  domain.LikeState
	Err    error
}

// PostEditResultMsg delivers the outcome of a post edit.
type PostEditResultMsg struct {
	PostID string
	Body   string
	Err    error
}

// PostDeleteResultMsg delivers the outcome of a post deletion.
type PostDeleteResultMsg struct {
	PostID string
	Err    error
}

// CloseThreadMsg asks the root model to return to the feed. Post carries the
// thread's final scalar state so the feed card can be brought up to date;
// Deleted is set when the post itself was removed.
type CloseThreadMsg struct {
	Post    domain.Post
	Deleted bool
}

// --- Rows ---

// The view is a flat list of selectable rows derived from the projected tree.

type rowKind int

const (
	rowPost rowKind = iota
	rowComment
	rowReply
	rowMore // The "show N more replies" affordance.
)

type row struct {
	kind    rowKind
	comment domain.Comment // Set for rowComment and rowReply.
	rootID  string         // Top-level ancestor; set for rowReply and rowMore.
	hidden  int            // Hidden reply count; set for rowMore.
}

// --- Delete confirmation ---

type deleteKind int

const (
	deletePost deleteKind = iota
	deleteComment
)

type deleteTarget struct {
	kind deleteKind
	id   string
}

// --- Model ---

// Model holds the state for the thread view. All comment-section state lives
// in the engine; the model adds navigation, drafts, and request plumbing.
type Model struct {
	comments app.CommentService
	posts    app.PostService

	engine *thread.Thread
	user   *domain.User
	drafts map[string]string // Entity ID → draft body of a failed edit.

	cursor  int
	loading bool
	err     error

	confirmDelete *deleteTarget

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a thread view for a post.
func New(commentSvc app.CommentService, postSvc app.PostService, post domain.Post, user *domain.User) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))

	return Model{
		comments: commentSvc,
		posts:    postSvc,
		engine:   thread.New(post),
		user:     user,
		drafts:   make(map[string]string),
		loading:  true,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
	}
}

// Init starts the initial comment load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadComments(m.engine.Store.NextLoadSeq()),
		m.spinner.Tick,
	)
}

// PostID returns the post this view belongs to; the root model uses it to
// route and to drop messages for disposed threads.
func (m Model) PostID() string {
	return m.engine.Store.Post().ID
}

// SetUser records the session user.
func (m *Model) SetUser(user *domain.User) {
	m.user = user
}

// rows flattens the projected tree into the selectable row list: the post,
// then each top-level comment with its visible replies and, when collapsed
// with more than one reply, the expansion affordance.
func (m Model) rows() []row {
	out := []row{{kind: rowPost}}
	for _, n := range m.engine.Project() {
		out = append(out, row{kind: rowComment, comment: n.Comment})
		for _, r := range m.engine.Expanded.VisibleReplies(n) {
			out = append(out, row{kind: rowReply, comment: r, rootID: n.Comment.ID})
		}
		if m.engine.Expanded.HasMore(n) {
			out = append(out, row{
				kind:   rowMore,
				rootID: n.Comment.ID,
				hidden: len(n.Replies) - 1,
			})
		}
	}
	return out
}

// selectedRow returns the row under the cursor, clamped into range.
func (m Model) selectedRow() row {
	rows := m.rows()
	i := m.cursor
	if i >= len(rows) {
		i = len(rows) - 1
	}
	if i < 0 {
		i = 0
	}
	return rows[i]
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
