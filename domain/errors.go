package domain

import "errors"

var (
	// ErrNotSignedIn indicates a mutation was attempted without a session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrEmptyComment indicates the user submitted an empty comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrCommentTooLong indicates the comment exceeds the character limit.
	ErrCommentTooLong = errors.New("comment exceeds character limit")
)
