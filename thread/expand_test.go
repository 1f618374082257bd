package thread

import (
	"testing"

	"huddle/domain"
)

func TestExpansion_FirstReplyAlwaysVisible(t *testing.T) {
	e := NewExpansion()
	n := Node{
		Comment: comment("a", ""),
		Replies: []domain.Comment{comment("a1", "a"), comment("a2", "a"), comment("a3", "a")},
	}

	vis := e.VisibleReplies(n)
	if len(vis) != 1 || vis[0].ID != "a1" {
		t.Fatalf("collapsed node must show exactly the first reply, got %#v", vis)
	}
	if !e.HasMore(n) {
		t.Fatalf("expected show-more affordance for a")
	}

	e.Toggle("a")
	if vis := e.VisibleReplies(n); len(vis) != 3 {
		t.Fatalf("expanded node must show all replies, got %d", len(vis))
	}
	if e.HasMore(n) {
		t.Fatalf("expanded node must not offer show-more")
	}
}

func TestExpansion_ToggleIsolatedPerComment(t *testing.T) {
	e := NewExpansion()
	a := Node{Comment: comment("a", ""), Replies: []domain.Comment{comment("a1", "a"), comment("a2", "a")}}
	b := Node{Comment: comment("b", "")}

	if e.HasMore(b) {
		t.Fatalf("node without hidden replies must not offer show-more")
	}

	e.Toggle("a")
	if !e.Expanded("a") || e.Expanded("b") {
		t.Fatalf("toggling a must not affect b")
	}
	if len(e.VisibleReplies(a)) != 2 {
		t.Fatalf("a should be fully visible after toggle")
	}

	e.Toggle("a")
	if e.Expanded("a") {
		t.Fatalf("second toggle must collapse a")
	}
}

func TestExpansion_SingleReplyNeedsNoAffordance(t *testing.T) {
	e := NewExpansion()
	n := Node{Comment: comment("a", ""), Replies: []domain.Comment{comment("a1", "a")}}

	if e.HasMore(n) {
		t.Fatalf("a single reply is always visible; no affordance expected")
	}
	if len(e.VisibleReplies(n)) != 1 {
		t.Fatalf("single reply must be visible")
	}
}
