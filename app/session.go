package app

import (
	"context"

	"huddle/domain"
)

// AuthStatus is the result of the session probe: the authenticated user, or
// nil when signed out, plus whether the backend considers the session online.
type AuthStatus struct {
	User   *domain.User
	Online bool
}

// SessionService reports who is signed in. The client never mutates the
// session itself; sign-in happens outside this program.
type SessionService interface {
	Status(ctx context.Context) (AuthStatus, error)
}
