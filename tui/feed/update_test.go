package feed

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"huddle/domain"
	"huddle/tui/common"
	"huddle/tui/compose"
)

type stubFeed struct {
	fetch func(ctx context.Context, limit int) ([]domain.Post, error)
}

func (s stubFeed) Fetch(ctx context.Context, limit int) ([]domain.Post, error) {
	return s.fetch(ctx, limit)
}

type stubPosts struct {
	edit   func(ctx context.Context, postID, body string) error
	del    func(ctx context.Context, postID string) error
	toggle func(ctx context.Context, postID string) (domain.LikeState, error)
}

func (s stubPosts) Edit(ctx context.Context, postID, body string) error {
	if s.edit == nil {
		return nil
	}
	return s.edit(ctx, postID, body)
}

func (s stubPosts) Delete(ctx context.Context, postID string) error {
	if s.del == nil {
		return nil
	}
	return s.del(ctx, postID)
}

func (s stubPosts) ToggleLike(ctx context.Context, postID string) (domain.LikeState, error) {
	if s.toggle == nil {
		return domain.LikeState{}, nil
	}
	return s.toggle(ctx, postID)
}

func testModel(posts ...domain.Post) Model {
	m := New(stubFeed{fetch: func(context.Context, int) ([]domain.Post, error) {
		return nil, nil
	}}, stubPosts{}, 20)
	m.items = posts
	m.loading = false
	m.seq = 1
	m.SetUser(&domain.User{ID: "u1", Username: "me"})
	return m
}

// collect runs a command tree and returns every message it produces.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func TestStaleFeedLoadDiscarded(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", Body: "current"})
	m.seq = 3

	m, _ = m.Update(PostsLoadedMsg{
		Posts: []domain.Post{{ID: "old", Body: "stale"}},
		Seq:   2,
	})

	if len(m.items) != 1 || m.items[0].ID != "p1" {
		t.Fatalf("stale load overwrote state: %+v", m.items)
	}

	m, _ = m.Update(PostsLoadedMsg{
		Posts: []domain.Post{{ID: "new"}},
		Seq:   3,
	})
	if len(m.items) != 1 || m.items[0].ID != "new" {
		t.Fatalf("current load not applied: %+v", m.items)
	}
}

func TestReloadKeepsSelectionByID(t *testing.T) {
	m := testModel(domain.Post{ID: "p1"}, domain.Post{ID: "p2"}, domain.Post{ID: "p3"})
	m.cursor = 2

	// p3 moved; the selection should follow it, not the index.
	m, _ = m.Update(PostsLoadedMsg{Seq: 1, Posts: []domain.Post{
		{ID: "p3"}, {ID: "p1"}, {ID: "p2"},
	}})
	if m.cursor != 0 {
		t.Fatalf("expected cursor to follow p3 to index 0, got %d", m.cursor)
	}

	// p3 gone entirely; selection falls back to the top.
	m, _ = m.Update(PostsLoadedMsg{Seq: 1, Posts: []domain.Post{
		{ID: "p1"}, {ID: "p2"},
	}})
	if m.cursor != 0 {
		t.Fatalf("expected cursor reset when selection vanished, got %d", m.cursor)
	}
}

func TestLikeToggleOptimisticThenConfirm(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", LikeCount: 4, Liked: false})

	m, cmd := m.Update(keyMsg("l"))

	if !m.items[0].Liked || m.items[0].LikeCount != 5 {
		t.Fatalf("expected optimistic (5, liked), got (%d, %v)",
			m.items[0].LikeCount, m.items[0].Liked)
	}
	if cmd == nil {
		t.Fatal("expected a request command")
	}

	// Server responds with a different count; server wins.
	m, _ = m.Update(PostLikeResultMsg{
		PostID: "p1",
		State:  domain.LikeState{Liked: true, Likes: 7},
	})
	if m.items[0].LikeCount != 7 {
		t.Fatalf("server state should win, got %d", m.items[0].LikeCount)
	}
	if m.likes.Toggling("p1") {
		t.Fatal("toggle should be settled after confirm")
	}
}

func TestLikeToggleFailureRevertsSnapshot(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", LikeCount: 4, Liked: false})

	m, _ = m.Update(keyMsg("l"))
	m, cmd := m.Update(PostLikeResultMsg{PostID: "p1", Err: errors.New("boom")})

	if m.items[0].Liked || m.items[0].LikeCount != 4 {
		t.Fatalf("expected revert to (4, unliked), got (%d, %v)",
			m.items[0].LikeCount, m.items[0].Liked)
	}

	msgs := collect(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected a notice, got %v", msgs)
	}
	if n, ok := msgs[0].(common.NoticeMsg); !ok || !n.IsErr {
		t.Fatalf("expected error notice, got %+v", msgs[0])
	}
}

func TestLikeToggleRefusedWhileInFlight(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", LikeCount: 4})

	m, _ = m.Update(keyMsg("l"))
	m, cmd := m.Update(keyMsg("l"))

	if cmd != nil {
		t.Fatal("second toggle while in flight must not issue a request")
	}
	if m.items[0].LikeCount != 5 {
		t.Fatalf("second toggle must not touch state, got %d", m.items[0].LikeCount)
	}
}

func TestLikeRequiresSignIn(t *testing.T) {
	m := testModel(domain.Post{ID: "p1"})
	m.SetUser(nil)

	m, cmd := m.Update(keyMsg("l"))

	msgs := collect(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %v", msgs)
	}
	if _, ok := msgs[0].(common.SignInRequiredMsg); !ok {
		t.Fatalf("expected SignInRequiredMsg, got %+v", msgs[0])
	}
	if m.items[0].Liked {
		t.Fatal("no optimistic change without a session")
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	deleted := ""
	m := testModel(domain.Post{ID: "p1", Author: domain.User{ID: "u1"}})
	m.posts = stubPosts{del: func(_ context.Context, id string) error {
		deleted = id
		return nil
	}}

	m, cmd := m.Update(keyMsg("d"))
	if cmd != nil {
		t.Fatal("delete must not fire before confirmation")
	}
	if m.confirmDeleteID != "p1" {
		t.Fatalf("expected confirmation pending for p1, got %q", m.confirmDeleteID)
	}

	// Any key other than y cancels.
	m, _ = m.Update(keyMsg("n"))
	if m.confirmDeleteID != "" || deleted != "" {
		t.Fatal("n should cancel the delete")
	}

	m, cmd = m.Update(keyMsg("d"))
	m, cmd = m.Update(keyMsg("y"))
	for _, msg := range collect(t, cmd) {
		m, _ = m.Update(msg)
	}
	if deleted != "p1" {
		t.Fatalf("expected delete request for p1, got %q", deleted)
	}
	if len(m.items) != 0 {
		t.Fatalf("post should be removed after delete, got %d items", len(m.items))
	}
}

func TestDeleteOtherUsersPostRefused(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", Author: domain.User{ID: "someone-else"}})

	m, cmd := m.Update(keyMsg("d"))

	if m.confirmDeleteID != "" {
		t.Fatal("must not enter confirmation for another user's post")
	}
	msgs := collect(t, cmd)
	if n, ok := msgs[0].(common.NoticeMsg); !ok || !n.IsErr {
		t.Fatalf("expected error notice, got %+v", msgs[0])
	}
}

func TestEditFailureKeepsDraft(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", Author: domain.User{ID: "u1"}, Body: "server copy"})

	m, _ = m.Update(PostEditResultMsg{
		PostID: "p1",
		Body:   "my new draft",
		Err:    errors.New("rejected"),
	})

	if m.items[0].Body != "server copy" {
		t.Fatal("failed edit must not change the displayed body")
	}

	// Retrying the edit must start from the draft, not the server copy.
	m, cmd := m.Update(keyMsg("e"))
	msgs := collect(t, cmd)
	req, ok := msgs[0].(compose.RequestMsg)
	if !ok {
		t.Fatalf("expected compose request, got %+v", msgs[0])
	}
	if req.Initial != "my new draft" {
		t.Fatalf("expected draft preserved, got %q", req.Initial)
	}
}

func TestEditSuccessUpdatesBodyAndDropsDraft(t *testing.T) {
	m := testModel(domain.Post{ID: "p1", Author: domain.User{ID: "u1"}, Body: "old"})
	m.drafts["p1"] = "old draft"

	m, _ = m.Update(PostEditResultMsg{PostID: "p1", Body: "new body"})

	if m.items[0].Body != "new body" {
		t.Fatalf("expected updated body, got %q", m.items[0].Body)
	}
	if _, ok := m.drafts["p1"]; ok {
		t.Fatal("draft should be dropped after a successful edit")
	}
}

func TestEnterOpensThread(t *testing.T) {
	m := testModel(domain.Post{ID: "p1"}, domain.Post{ID: "p2"})
	m.cursor = 1

	_, cmd := m.Update(keyMsg("enter"))

	msgs := collect(t, cmd)
	open, ok := msgs[0].(OpenThreadMsg)
	if !ok {
		t.Fatalf("expected OpenThreadMsg, got %+v", msgs[0])
	}
	if open.Post.ID != "p2" {
		t.Fatalf("expected selected post p2, got %q", open.Post.ID)
	}
}
