package domain

import (
	"strings"
	"time"
)

// LocalIDPrefix marks comment IDs generated on this client before the server
// has acknowledged the comment. Local IDs must never be sent to the server as
// if they were authoritative.
const LocalIDPrefix = "local-"

// Comment is a single entry in a post's flat comment list. ParentID is empty
// for top-level comments and references a top-level comment for replies;
// the thread is exactly two levels deep.
type Comment struct {
	ID        string // Server ID, or a LocalIDPrefix ID while pending.
	PostID    string
	Author    User
	Body      string
	Likes     []string // User IDs that liked this comment.
	ParentID  string   // Empty means top-level.
	CreatedAt time.Time
}

// LikeCount returns the number of likes on the comment.
func (c Comment) LikeCount() int {
	return len(c.Likes)
}

// LikedBy reports whether the given user has liked the comment.
func (c Comment) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeState returns the boolean/counter pair as seen by the given user.
func (c Comment) LikeState(userID string) LikeState {
	return LikeState{Liked: c.LikedBy(userID), Likes: c.LikeCount()}
}

// IsReply reports whether the comment is a reply to another comment.
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}

// IsLocal reports whether the comment only exists on this client.
func (c Comment) IsLocal() bool {
	return strings.HasPrefix(c.ID, LocalIDPrefix)
}

// OwnedBy reports whether the comment belongs to the given user.
func (c Comment) OwnedBy(userID string) bool {
	return userID != "" && c.Author.ID == userID
}

// NormalizeParent returns the parent ID to use when replying to target.
// Replying to a top-level comment yields that comment's ID; replying to a
// reply re-parents onto the reply's top-level ancestor, so a third tier is
// never created.
func NormalizeParent(target Comment) string {
	if target.ParentID != "" {
		return target.ParentID
	}
	return target.ID
}
