package app

import (
	"context"

	"huddle/domain"
)

// CommentService performs comment operations against the backend.
type CommentService interface {
	// List returns the full flat comment list for a post, in server order.
	List(ctx context.Context, postID string) ([]domain.Comment, error)

	// Create publishes a new comment. parentID is empty for a top-level
	// comment and a top-level comment ID for a reply.
	Create(ctx context.Context, postID, body, parentID string) error

	// Edit replaces an existing comment's body.
	Edit(ctx context.Context, commentID, body string) error

	// Delete removes a comment by ID.
	Delete(ctx context.Context, commentID string) error

	// ToggleLike flips the current user's like on a comment and returns the
	// server's authoritative state.
	ToggleLike(ctx context.Context, commentID string) (domain.LikeState, error)
}
