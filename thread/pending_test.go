package thread

import (
	"testing"

	"huddle/domain"
)

func TestStageCreate_UniqueIDsUnderRapidCreation(t *testing.T) {
	q := NewPendingQueue()
	seen := map[string]bool{}
	for range 50 {
		c := q.StageCreate("p1", "hi", "", domain.User{ID: "u1"})
		if !c.IsLocal() {
			t.Fatalf("staged comment must carry a local ID, got %q", c.ID)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate temporary ID %q", c.ID)
		}
		seen[c.ID] = true
	}
	if q.Len() != 50 {
		t.Fatalf("expected 50 pending entries, got %d", q.Len())
	}
}

func TestStageCreate_FullCommentWithEmptyLikes(t *testing.T) {
	q := NewPendingQueue()
	c := q.StageCreate("p1", "hello", "parent-1", domain.User{ID: "u1", Username: "me"})

	if c.PostID != "p1" || c.Body != "hello" || c.ParentID != "parent-1" {
		t.Fatalf("staged fields wrong: %#v", c)
	}
	if c.Likes == nil || len(c.Likes) != 0 {
		t.Fatalf("staged comment must start with an empty likes set, got %#v", c.Likes)
	}
	if c.CreatedAt.IsZero() {
		t.Fatalf("staged comment must carry a creation time")
	}
}

func TestCommitAndRollback_Idempotent(t *testing.T) {
	q := NewPendingQueue()
	c := q.StageCreate("p1", "hi", "", domain.User{ID: "u1"})

	if !q.Rollback(c.ID) {
		t.Fatalf("first rollback should remove the entry")
	}
	if q.Rollback(c.ID) {
		t.Fatalf("second rollback must be a no-op")
	}
	if q.Commit(c.ID) {
		t.Fatalf("commit after rollback must be a no-op")
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty, got %d", q.Len())
	}
}

func TestRollback_OnlyTouchesItsOwnEntry(t *testing.T) {
	q := NewPendingQueue()
	a := q.StageCreate("p1", "a", "", domain.User{ID: "u1"})
	b := q.StageCreate("p1", "b", "", domain.User{ID: "u1"})

	q.Rollback(a.ID)
	left := q.Entries()
	if len(left) != 1 || left[0].ID != b.ID {
		t.Fatalf("expected only %q to remain, got %#v", b.ID, left)
	}
}
