// Package thread holds the optimistic interaction engine behind a single
// post's comment section: the authoritative entity store, the pending
// (optimistic) queue, the tree projector, the like toggle controller, and the
// reply expansion set. It is pure state — all network traffic lives in the
// callers, which feed results back in through the methods here.
package thread

import "huddle/domain"

// Store holds the last-known-authoritative flat comment list for one post,
// plus the post's own scalar fields. Each post's feed card owns exactly one
// Store; there is no cross-post sharing.
type Store struct {
	post     domain.Post
	comments []domain.Comment
	loaded   bool
	loadSeq  int // Latest issued load sequence; older responses are stale.
}

// NewStore creates a store seeded with the post's scalar state.
func NewStore(post domain.Post) *Store {
	return &Store{post: post}
}

// Post returns the post's current scalar state.
func (s *Store) Post() domain.Post {
	return s.post
}

// Comments returns the authoritative flat list in server order.
func (s *Store) Comments() []domain.Comment {
	return s.comments
}

// Loaded reports whether at least one load has been applied.
func (s *Store) Loaded() bool {
	return s.loaded
}

// NextLoadSeq issues a sequence number for a new load. A response is only
// applied if it still carries the latest issued sequence, so a slow reload
// can never overwrite the result of a newer one.
func (s *Store) NextLoadSeq() int {
	s.loadSeq++
	return s.loadSeq
}

// Stale reports whether a load response with the given sequence has been
// superseded by a newer load.
func (s *Store) Stale(seq int) bool {
	return seq != s.loadSeq
}

// Apply replaces the comment list wholesale with a load response. It returns
// false without touching anything if the response is stale. Applying the same
// list twice in a row is idempotent.
func (s *Store) Apply(seq int, comments []domain.Comment) bool {
	if s.Stale(seq) {
		return false
	}
	s.comments = comments
	s.loaded = true
	return true
}

// Find returns the comment with the given ID, if present.
func (s *Store) Find(id string) (domain.Comment, bool) {
	for _, c := range s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}

// IsTopLevel reports whether the given ID names a top-level comment in the
// authoritative list.
func (s *Store) IsTopLevel(id string) bool {
	c, ok := s.Find(id)
	return ok && !c.IsReply()
}

// SetPostBody merges an edited body into the post's scalar state.
func (s *Store) SetPostBody(body string) {
	s.post.Body = body
}

// SetPostLike merges a like boolean/counter pair into the post's scalar
// state. Used both for the optimistic flip and for the server's confirmation
// or the pre-toggle revert.
func (s *Store) SetPostLike(state domain.LikeState) {
	s.post.Liked = state.Liked
	if state.Likes < 0 {
		state.Likes = 0
	}
	s.post.LikeCount = state.Likes
}

// SetCommentLike sets the given user's membership in a comment's likes set.
// It is idempotent: liking an already-liked comment changes nothing.
func (s *Store) SetCommentLike(commentID, userID string, liked bool) {
	if userID == "" {
		return
	}
	for i := range s.comments {
		if s.comments[i].ID != commentID {
			continue
		}
		c := &s.comments[i]
		has := c.LikedBy(userID)
		switch {
		case liked && !has:
			c.Likes = append(c.Likes, userID)
		case !liked && has:
			out := c.Likes[:0:0]
			for _, id := range c.Likes {
				if id != userID {
					out = append(out, id)
				}
			}
			c.Likes = out
		}
		return
	}
}
