package feed

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchPosts(seq int) tea.Cmd {
	feed := m.feed
	limit := m.limit
	return func() tea.Msg {
		posts, err := feed.Fetch(context.Background(), limit)
		if err != nil {
			return PostsErrorMsg{Err: err, Seq: seq}
		}
		return PostsLoadedMsg{Posts: posts, Seq: seq}
	}
}

func (m Model) togglePostLike(postID string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		state, err := posts.ToggleLike(context.Background(), postID)
		return PostLikeResultMsg{PostID: postID, State: state, Err: err}
	}
}

func (m Model) editPost(postID, body string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		err := posts.Edit(context.Background(), postID, body)
		return PostEditResultMsg{PostID: postID, Body: body, Err: err}
	}
}

func (m Model) deletePost(postID string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		err := posts.Delete(context.Background(), postID)
		return PostDeleteResultMsg{PostID: postID, Err: err}
	}
}
