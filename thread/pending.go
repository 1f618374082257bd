package thread

import (
	"time"

	"github.com/google/uuid"

	"huddle/domain"
)

// PendingQueue stages comments created locally before server confirmation.
// Entries live until the next successful load (which cannot contain them) or
// until explicitly committed or rolled back.
type PendingQueue struct {
	entries []domain.Comment
}

// NewPendingQueue creates an empty queue.
func NewPendingQueue() *PendingQueue {
	return &PendingQueue{}
}

// StageCreate constructs a full comment with a locally unique temporary ID
// and appends it to the pending set. The returned comment is immediately
// visible to the projector. Wall-clock IDs collide under rapid successive
// creations, so the ID carries a random token instead.
func (q *PendingQueue) StageCreate(postID, body, parentID string, author domain.User) domain.Comment {
	c := domain.Comment{
		ID:        domain.LocalIDPrefix + uuid.NewString(),
		PostID:    postID,
		Author:    author,
		Body:      body,
		Likes:     []string{},
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	q.entries = append(q.entries, c)
	return c
}

// Commit removes the entry with the given temporary ID after the server
// accepted it. Committing an already-removed ID is a no-op.
func (q *PendingQueue) Commit(id string) bool {
	return q.remove(id)
}

// Rollback removes the entry with the given temporary ID after the server
// rejected it, making the speculative comment disappear. Rolling back an
// already-removed ID is a no-op.
func (q *PendingQueue) Rollback(id string) bool {
	return q.remove(id)
}

func (q *PendingQueue) remove(id string) bool {
	for i, c := range q.entries {
		if c.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns the pending comments, oldest staged first.
func (q *PendingQueue) Entries() []domain.Comment {
	return q.entries
}

// Len returns the number of pending comments.
func (q *PendingQueue) Len() int {
	return len(q.entries)
}

// Clear drops all pending entries. Called after a successful load, which is
// authoritative and necessarily does not contain them.
func (q *PendingQueue) Clear() {
	q.entries = nil
}
