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

// commentService implements app.CommentService against the Huddle API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the Huddle API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

func (s *commentService) List(_ context.Context, postID string) ([]domain.Comment, error) {
	path := fmt.Sprintf("/post/%s/comments", url.PathEscape(postID))
	data, err := s.client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var payload struct {
		Comments []wireComment `json:"comments"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing comment list: %w", err)
	}

	comments := make([]domain.Comment, 0, len(payload.Comments))
	for _, wc := range payload.Comments {
		if err := wc.validate(); err != nil {
			return nil, fmt.Errorf("comment list: %w", err)
		}
		comments = append(comments, wc.toDomain())
	}
	return comments, nil
}

func (s *commentService) Create(_ context.Context, postID, body, parentID string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.ErrEmptyComment
	}

	req := struct {
		Content  string `json:"content"`
		ParentID string `json:"parentId,omitempty"`
	}{Content: body, ParentID: parentID}
	encoded, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding comment: %w", err)
	}

	path := fmt.Sprintf("/post/%s/comment", url.PathEscape(postID))
	if _, err := s.client.Post(path, bytes.NewReader(encoded)); err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (s *commentService) Edit(_ context.Context, commentID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.ErrEmptyComment
	}

	req := struct {
		Content string `json:"content"`
	}{Content: body}
	encoded, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding comment: %w", err)
	}

	path := fmt.Sprintf("/comment/%s", url.PathEscape(commentID))
	if _, err := s.client.Put(path, bytes.NewReader(encoded)); err != nil {
		return fmt.Errorf("editing comment: %w", err)
	}
	return nil
}

func (s *commentService) Delete(_ context.Context, commentID string) error {
	path := fmt.Sprintf("/comment/%s", url.PathEscape(commentID))
	if _, err := s.client.Delete(path); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

func (s *commentService) ToggleLike(_ context.Context, commentID string) (domain.LikeState, error) {
	path := fmt.Sprintf("/comment/%s/like", url.PathEscape(commentID))
	data, err := s.client.Post(path, nil)
	if err != nil {
		return domain.LikeState{}, fmt.Errorf("toggling comment like: %w", err)
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
