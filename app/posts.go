package app

import (
	"context"

	"huddle/domain"
)

// FeedService fetches posts for the feed view.
type FeedService interface {
	// Fetch returns the latest feed page, newest first.
	Fetch(ctx context.Context, limit int) ([]domain.Post, error)
}

// PostService mutates posts on the backend.
type PostService interface {
	// Edit replaces an existing post's body.
	Edit(ctx context.Context, postID, body string) error

	// Delete removes a post by ID.
	Delete(ctx context.Context, postID string) error

	// ToggleLike flips the current user's like on a post and returns the
	// server's authoritative state.
	ToggleLike(ctx context.Context, postID string) (domain.LikeState, error)
}
