package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_DecodesFeedPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/feed", r.URL.Path)
		require.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"posts":[
			{"id":"p1","author":{"id":"u1","username":"ann","displayName":"Ann"},
			 "content":"<p>hello</p>","image":"https://cdn.example.com/a.jpg",
			 "likeCount":4,"liked":false,"commentCount":2,
			 "createdAt":"2026-08-01T09:00:00Z","updatedAt":"2026-08-01T09:30:00Z"}
		]}`))
	})

	posts, err := NewPostService(client).Fetch(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	p := posts[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Ann", p.Author.Name())
	assert.Equal(t, 4, p.LikeCount)
	assert.False(t, p.Liked)
	assert.Equal(t, 2, p.CommentCount)
	assert.Equal(t, "https://cdn.example.com/a.jpg", p.ImageURL)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestFetch_RejectsNegativeCounters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"posts":[{"id":"p1","author":{"id":"u1"},"likeCount":-2}]}`))
	})

	_, err := NewPostService(client).Fetch(context.Background(), 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestPostToggleLike_ReturnsAuthoritativePair(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/post/p1/like", r.URL.Path)
		w.Write([]byte(`{"liked":true,"likes":5}`))
	})

	state, err := NewPostService(client).ToggleLike(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, true, state.Liked)
	assert.Equal(t, 5, state.Likes)
}

func TestSessionStatus_SignedOutUserIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/status", r.URL.Path)
		w.Write([]byte(`{"user":null,"online":true}`))
	})

	status, err := NewSessionService(client).Status(context.Background())
	require.NoError(t, err)
	assert.Nil(t, status.User)
	assert.True(t, status.Online)
}

func TestSessionStatus_SignedInUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"user":{"id":"u1","username":"ann"},"online":true}`))
	})

	status, err := NewSessionService(client).Status(context.Background())
	require.NoError(t, err)
	require.NotNil(t, status.User)
	assert.Equal(t, "u1", status.User.ID)
}
