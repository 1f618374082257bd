package detail

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) loadComments(seq int) tea.Cmd {
	comments := m.comments
	postID := m.PostID()
	return func() tea.Msg {
		list, err := comments.List(context.Background(), postID)
		if err != nil {
			return CommentsErrorMsg{PostID: postID, Seq: seq, Err: err}
		}
		return CommentsLoadedMsg{PostID: postID, Seq: seq, Comments: list}
	}
}

func (m Model) createComment(localID, body, parentID string) tea.Cmd {
	comments := m.comments
	postID := m.PostID()
	return func() tea.Msg {
		err := comments.Create(context.Background(), postID, body, parentID)
		return CreateResultMsg{PostID: postID, LocalID: localID, Err: err}
	}
}

func (m Model) editComment(commentID, body string) tea.Cmd {
	comments := m.comments
	postID := m.PostID()
	return func() tea.Msg {
		err := comments.Edit(context.Background(), commentID, body)
		return CommentEditResultMsg{PostID: postID, CommentID: commentID, Body: body, Err: err}
	}
}

func (m Model) deleteComment(commentID string) tea.Cmd {
	comments := m.comments
	postID := m.PostID()
	return func() tea.Msg {
		err := comments.Delete(context.Background(), commentID)
		return CommentDeleteResultMsg{PostID: postID, CommentID: commentID, Err: err}
	}
}

func (m Model) toggleCommentLike(commentID string) tea.Cmd {
	comments := m.comments
	postID := m.PostID()
	return func() tea.Msg {
		state, err := comments.ToggleLike(context.Background(), commentID)
		return CommentLikeResultMsg{PostID: postID, CommentID: commentID, State: state, Err: err}
	}
}

func (m Model) togglePostLike() tea.Cmd {
	posts := m.posts
	postID := m.PostID()
	return func() tea.Msg {
		state, err := posts.ToggleLike(context.Background(), postID)
		return PostLikeResultMsg{PostID: postID, State: state, Err: err}
	}
}

func (m Model) editPost(body string) tea.Cmd {
	posts := m.posts
	postID := m.PostID()
	return func() tea.Msg {
		err := posts.Edit(context.Background(), postID, body)
		return PostEditResultMsg{PostID: postID, Body: body, Err: err}
	}
}

func (m Model) deletePost() tea.Cmd {
	posts := m.posts
	postID := m.PostID()
	return func() tea.Msg {
		err := posts.Delete(context.Background(), postID)
		return PostDeleteResultMsg{PostID: postID, Err: err}
	}
}
