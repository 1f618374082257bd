package domain

import "time"

// User is the summary of an account as it appears on posts and comments.
type User struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
}

// Name returns the display name, falling back to the username.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Post is a single feed entry. LikeCount and Liked are server-confirmed
// scalars; Liked is not derivable locally in all cases (the server may hold
// state the client never saw).
type Post struct {
	ID           string
	Author       User
	Body         string // May contain markup; stripped for terminal display.
	ImageURL     string // Optional single image reference.
	LikeCount    int
	Liked        bool
	CommentCount int // Server-maintained; not required to match the local list.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether the post belongs to the given user.
func (p Post) OwnedBy(userID string) bool {
	return userID != "" && p.Author.ID == userID
}

// LikeState is the boolean/counter pair for a likeable entity. The post like
// endpoint returns it directly; for comments it is derived from the likes set.
type LikeState struct {
	Liked bool
	Likes int
}
