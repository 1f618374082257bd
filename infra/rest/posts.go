package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"huddle/domain"
)

// postService implements app.PostService and app.FeedService against the
// Huddle API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService/FeedService backed by the Huddle API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func (s *postService) Fetch(_ context.Context, limit int) ([]domain.Post, error) {
	path := fmt.Sprintf("/feed?limit=%d", limit)
	data, err := s.client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	var payload struct {
		Posts []wirePost `json:"posts"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	posts := make([]domain.Post, 0, len(payload.Posts))
	for _, wp := range payload.Posts {
		if err := wp.validate(); err != nil {
			return nil, fmt.Errorf("feed: %w", err)
		}
		posts = append(posts, wp.toDomain())
	}
	return posts, nil
}

func (s *postService) Edit(_ context.Context, postID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.ErrEmptyComment
	}

	req := struct {
		Content string `json:"content"`
	}{Content: body}
	encoded, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding post: %w", err)
	}

	path := fmt.Sprintf("/post/%s", url.PathEscape(postID))
	if _, err := s.client.Put(path, bytes.NewReader(encoded)); err != nil {
		return fmt.Errorf("editing post: %w", err)
	}
	return nil
}

func (s *postService) Delete(_ context.Context, postID string) error {
	path := fmt.Sprintf("/post/%s", url.PathEscape(postID))
	if _, err := s.client.Delete(path); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	return nil
}

func (s *postService) ToggleLike(_ context.Context, postID string) (domain.LikeState, error) {
	path := fmt.Sprintf("/post/%s/like", url.PathEscape(postID))
	data, err := s.client.Post(path, nil)
	if err != nil {
		return domain.LikeState{}, fmt.Errorf("toggling post like: %w", err)
	}

	var state wireLikeState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.LikeState{}, fmt.Errorf("parsing like response: %w", err)
	}
	if err := state.validate(); err != nil {
		return domain.LikeState{}, fmt.Errorf("like response: %w", err)
	}
	return state.toDomain(), nil
}
