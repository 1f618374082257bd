package compose

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"huddle/infra/editor"
)

// --- Target ---

// Kind says what the composed text is for.
type Kind int

const (
	NewComment Kind = iota // PostID (+ optional ParentID) set
	EditComment            // CommentID set
	EditPost               // PostID set
)

// Target carries the mutation the composed text belongs to. It travels
// unchanged through DoneMsg so the root model can route the result.
type Target struct {
	Kind      Kind
	PostID    string
	ParentID  string // Non-empty for replies; already normalized to top level.
	CommentID string
}

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// RequestMsg asks the root model to open the compose view for a target.
// Initial is non-empty when editing, or when retrying a failed edit whose
// draft must not be lost.
type RequestMsg struct {
	Target  Target
	Initial string
	Inline  bool
}

// DoneMsg is sent when composing is complete (success or cancel).
type DoneMsg struct {
	Body   string // Empty if cancelled
	Target Target
	Err    error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the compose view.
type Model struct {
	mode     mode
	editor   *editor.EnvEditor
	target   Target
	textarea textarea.Model // Only used in inline mode
	tmpPath  string         // Temp file path for editor mode
	initial  string         // Initial content when editing
	status   string
}

// NewEditor creates a compose model that opens $EDITOR via tea.Exec.
// initial is non-empty when editing existing content.
func NewEditor(ed *editor.EnvEditor, target Target, initial string) Model {
	return Model{
		mode:    editorMode,
		editor:  ed,
		target:  target,
		initial: initial,
		status:  "Opening editor...",
	}
}

// NewInline creates a compose model with an inline Bubble Tea textarea.
func NewInline(target Target, initial string) Model {
	ta := textarea.New()
	ta.Placeholder = placeholderFor(target)
	ta.CharLimit = 2000
	ta.SetWidth(72)
	ta.SetHeight(5)
	ta.SetValue(initial)
	ta.Focus()

	return Model{
		mode:     inlineMode,
		target:   target,
		textarea: ta,
		initial:  initial,
	}
}

func placeholderFor(target Target) string {
	switch {
	case target.Kind == NewComment && target.ParentID != "":
		return "Write a reply..."
	case target.Kind == NewComment:
		return "Write a comment..."
	default:
		return ""
	}
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// launchEditor prepares the editor command and uses tea.Exec to properly
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.initial)
	if err != nil {
		return func() tea.Msg {
			return DoneMsg{Err: fmt.Errorf("preparing editor: %w", err), Target: m.target}
		}
	}
	m.tmpPath = tmpPath

	// tea.ExecProcess suspends Bubble Tea, runs the command with full terminal
	// control, then resumes Bubble Tea and delivers the callback message.
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{Err: fmt.Errorf("editor: %w", msg.err), Target: m.target})
		}

		body, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{Err: err, Target: m.target})
		}

		if body == "" || body == m.initial {
			return m, done(DoneMsg{Target: m.target}) // Cancel
		}

		return m, done(DoneMsg{Body: body, Target: m.target})

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}

		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{Target: m.target}) // Cancel.

		case "ctrl+d":
			body := m.textarea.Value()
			if body == "" || body == m.initial {
				return m, done(DoneMsg{Target: m.target})
			}
			return m, done(DoneMsg{Body: body, Target: m.target})
		}

		// Delegate to textarea for normal typing.
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	// Pass through any remaining messages to textarea in inline mode.
	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, nil
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
