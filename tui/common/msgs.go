package common

import "huddle/domain"

// NoticeMsg is a transient status-bar message. Every success and failure that
// the user should hear about ends up here; failures never propagate as
// panics into the render path.
type NoticeMsg struct {
	Text  string
	IsErr bool
}

// SignInRequiredMsg is emitted when a mutation was refused locally because no
// user is signed in. No network call has been made.
type SignInRequiredMsg struct{}

// SessionMsg delivers the session probe result to the views.
type SessionMsg struct {
	User   *domain.User // nil when signed out
	Online bool
	Err    error
}
