package rest

import (
	"fmt"
	"time"

	"huddle/domain"
)

// The backend's payloads are decoded into explicit wire shapes and validated
// here, at the boundary, so a malformed response fails fast instead of
// leaking half-formed entities into the stores.

type wireUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatar"`
}

func (w wireUser) toDomain() domain.User {
	return domain.User{
		ID:          w.ID,
		Username:    w.Username,
		DisplayName: w.DisplayName,
		AvatarURL:   w.AvatarURL,
	}
}

type wireComment struct {
	ID        string   `json:"id"`
	PostID    string   `json:"postId"`
	Author    wireUser `json:"author"`
	Content   string   `json:"content"`
	Likes     []string `json:"likes"`
	ParentID  *string  `json:"parentId"`
	CreatedAt string   `json:"createdAt"`
}

func (w wireComment) validate() error {
	if w.ID == "" {
		return fmt.Errorf("comment missing id")
	}
	if w.Author.ID == "" {
		return fmt.Errorf("comment %s missing author id", w.ID)
	}
	return nil
}

func (w wireComment) toDomain() domain.Comment {
	createdAt, _ := time.Parse(time.RFC3339, w.CreatedAt)
	likes := w.Likes
	if likes == nil {
		likes = []string{}
	}
	parentID := ""
	if w.ParentID != nil {
		parentID = *w.ParentID
	}
	return domain.Comment{
		ID:        w.ID,
		PostID:    w.PostID,
		Author:    w.Author.toDomain(),
		Body:      w.Content,
		Likes:     likes,
		ParentID:  parentID,
		CreatedAt: createdAt,
	}
}

type wirePost struct {
	ID           string   `json:"id"`
	Author       wireUser `json:"author"`
	Content      string   `json:"content"`
	Image        string   `json:"image"`
	LikeCount    int      `json:"likeCount"`
	Liked        bool     `json:"liked"`
	CommentCount int      `json:"commentCount"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func (w wirePost) validate() error {
	if w.ID == "" {
		return fmt.Errorf("post missing id")
	}
	if w.LikeCount < 0 || w.CommentCount < 0 {
		return fmt.Errorf("post %s has negative counters", w.ID)
	}
	return nil
}

func (w wirePost) toDomain() domain.Post {
	createdAt, _ := time.Parse(time.RFC3339, w.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, w.UpdatedAt)
	return domain.Post{
		ID:           w.ID,
		Author:       w.Author.toDomain(),
		Body:         w.Content,
		ImageURL:     w.Image,
		LikeCount:    w.LikeCount,
		Liked:        w.Liked,
		CommentCount: w.CommentCount,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

type wireLikeState struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

func (w wireLikeState) validate() error {
	if w.Likes < 0 {
		return fmt.Errorf("like count is negative")
	}
	return nil
}

func (w wireLikeState) toDomain() domain.LikeState {
	return domain.LikeState{Liked: w.Liked, Likes: w.Likes}
}
