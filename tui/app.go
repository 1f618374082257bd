// Package tui wires the Bubble Tea views together: the feed, the thread view
// for one post, and the compose view for new and edited content.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"huddle/app"
	"huddle/domain"
	"huddle/infra/editor"
	"huddle/tui/common"
	"huddle/tui/compose"
	"huddle/tui/detail"
	"huddle/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed      app.FeedService
	Posts     app.PostService
	Comments  app.CommentService
	Session   app.SessionService
	Editor    *editor.EnvEditor
	FeedLimit int
}

type activeView int

const (
	feedView activeView = iota
	threadView
	composeView
)

// App is the root Bubble Tea model. It routes between sub-views and owns the
// transient status line.
type App struct {
	deps   Deps
	active activeView

	feed    feed.Model
	thread  *detail.Model // nil while no thread is open
	compose compose.Model

	// composeFrom is the view that requested the compose view; DoneMsg is
	// routed back there.
	composeFrom activeView

	user   *domain.User
	online bool

	keys      common.KeyMap
	status    string
	statusErr bool

	width  int
	height int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: feedView,
		feed:   feed.New(deps.Feed, deps.Posts, deps.FeedLimit),
		keys:   common.DefaultKeyMap(),
	}
}

// Init starts the feed fetch and the session probe.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.feed.Init(),
		a.probeSession(),
	)
}

func (a App) probeSession() tea.Cmd {
	session := a.deps.Session
	return func() tea.Msg {
		status, err := session.Status(context.Background())
		return common.SessionMsg{User: status.User, Online: status.Online, Err: err}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.feed, _ = a.feed.Update(msg)
		if a.thread != nil {
			t, _ := a.thread.Update(msg)
			a.thread = &t
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.active == feedView && !a.feed.ConfirmingDelete() &&
			key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		a.status = ""
		return a.routeToActive(msg)

	case common.SessionMsg:
		return a.handleSession(msg)

	case common.NoticeMsg:
		a.status = msg.Text
		a.statusErr = msg.IsErr
		return a, nil

	case common.SignInRequiredMsg:
		a.status = "Sign in required: run huddle after saving your session cookie"
		a.statusErr = true
		return a, nil

	case compose.RequestMsg:
		return a.openCompose(msg)

	case compose.DoneMsg:
		return a.handleComposeDone(msg)

	case feed.OpenThreadMsg:
		t := detail.New(a.deps.Comments, a.deps.Posts, msg.Post, a.user)
		a.thread = &t
		a.active = threadView
		return a, a.thread.Init()

	case detail.CloseThreadMsg:
		return a.closeThread(msg)
	}

	// Responses for a thread that is no longer open are dropped here; the
	// thread's own state was disposed with it.
	if postID, ok := detailPostID(msg); ok {
		if a.thread == nil || a.thread.PostID() != postID {
			return a, nil
		}
		t, cmd := a.thread.Update(msg)
		a.thread = &t
		return a, cmd
	}

	// Feed responses always reach the feed model, whichever view is on
	// screen; the feed's own sequence guard handles staleness.
	switch msg.(type) {
	case feed.PostsLoadedMsg, feed.PostsErrorMsg, feed.PostLikeResultMsg,
		feed.PostEditResultMsg, feed.PostDeleteResultMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	}

	return a.routeToActive(msg)
}

func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		a.feed, cmd = a.feed.Update(msg)
	case threadView:
		if a.thread != nil {
			t, c := a.thread.Update(msg)
			a.thread = &t
			cmd = c
		}
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	}
	return a, cmd
}

func (a App) handleSession(msg common.SessionMsg) (tea.Model, tea.Cmd) {
	a.user = msg.User
	a.online = msg.Online
	a.feed.SetUser(msg.User)
	if a.thread != nil {
		a.thread.SetUser(msg.User)
	}

	switch {
	case msg.Err != nil:
		a.status = "Session check failed: " + msg.Err.Error()
		a.statusErr = true
	case !msg.Online:
		a.status = "Offline: browsing is read-only"
		a.statusErr = true
	case msg.User == nil:
		a.status = "Browsing signed out: interactions need a session cookie"
		a.statusErr = false
	}
	return a, nil
}

func (a App) openCompose(msg compose.RequestMsg) (tea.Model, tea.Cmd) {
	a.composeFrom = a.active
	if msg.Inline {
		a.compose = compose.NewInline(msg.Target, msg.Initial)
	} else {
		a.compose = compose.NewEditor(a.deps.Editor, msg.Target, msg.Initial)
	}
	a.active = composeView
	a.status = ""
	return a, a.compose.Init()
}

func (a App) handleComposeDone(msg compose.DoneMsg) (tea.Model, tea.Cmd) {
	a.active = a.composeFrom

	var cmd tea.Cmd
	switch a.composeFrom {
	case threadView:
		if a.thread != nil {
			t, c := a.thread.Update(msg)
			a.thread = &t
			cmd = c
		}
	default:
		a.feed, cmd = a.feed.Update(msg)
	}
	return a, cmd
}

func (a App) closeThread(msg detail.CloseThreadMsg) (tea.Model, tea.Cmd) {
	a.thread = nil
	a.active = feedView

	if msg.Deleted {
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Refresh()
		a.status = "Post deleted"
		a.statusErr = false
		return a, cmd
	}
	a.feed.ReplacePost(msg.Post)
	return a, nil
}

// detailPostID extracts the owning post ID from thread-view response messages.
func detailPostID(msg tea.Msg) (string, bool) {
	switch m := msg.(type) {
	case detail.CommentsLoadedMsg:
		return m.PostID, true
	case detail.CommentsErrorMsg:
		return m.PostID, true
	case detail.CreateResultMsg:
		return m.PostID, true
	case detail.CommentEditResultMsg:
		return m.PostID, true
	case detail.CommentDeleteResultMsg:
		return m.PostID, true
	case detail.CommentLikeResultMsg:
		return m.PostID, true
	case detail.PostLikeResultMsg:
		return m.PostID, true
	case detail.PostEditResultMsg:
		return m.PostID, true
	case detail.PostDeleteResultMsg:
		return m.PostID, true
	}
	return "", false
}

// View renders the active sub-view plus the status line.
func (a App) View() string {
	var body string
	switch a.active {
	case feedView:
		body = a.feed.View()
	case threadView:
		if a.thread != nil {
			body = a.thread.View()
		}
	case composeView:
		body = a.compose.View()
	}

	if a.status == "" {
		return body
	}
	style := common.SuccessStyle
	if a.statusErr {
		style = common.ErrorStyle
	}
	return body + style.Render("  "+a.status) + "\n"
}
