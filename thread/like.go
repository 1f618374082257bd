package thread

import "huddle/domain"

// LikeToggle runs the snapshot/toggle/confirm-or-revert sequence for likeable
// entities (the post, top-level comments, replies). The sequence is identical
// for each; only the entity and endpoint differ.
//
// Per entity the state machine is Idle → Toggling → Idle. While an entity is
// Toggling, a second toggle on it is refused, so two in-flight requests can
// never race each other's optimistic state. Toggles on different entities are
// independent.
type LikeToggle struct {
	inflight map[string]domain.LikeState // Entity ID → pre-toggle snapshot.
}

// NewLikeToggle creates an idle controller.
func NewLikeToggle() *LikeToggle {
	return &LikeToggle{inflight: make(map[string]domain.LikeState)}
}

// Begin captures the pre-toggle snapshot and returns the optimistic state to
// display while the request is in flight. It returns ok=false if a toggle for
// this entity is already in flight; the caller must not issue a request then.
func (t *LikeToggle) Begin(id string, current domain.LikeState) (domain.LikeState, bool) {
	if _, busy := t.inflight[id]; busy {
		return domain.LikeState{}, false
	}
	t.inflight[id] = current
	next := domain.LikeState{Liked: !current.Liked}
	if next.Liked {
		next.Likes = current.Likes + 1
	} else {
		next.Likes = current.Likes - 1
		if next.Likes < 0 {
			next.Likes = 0
		}
	}
	return next, true
}

// Confirm ends the toggle with the server's authoritative state, which wins
// over the optimistic guess (the server may reflect state the client could
// not have predicted).
func (t *LikeToggle) Confirm(id string, server domain.LikeState) domain.LikeState {
	delete(t.inflight, id)
	if server.Likes < 0 {
		server.Likes = 0
	}
	return server
}

// Revert ends the toggle by restoring the captured pre-toggle state. Calling
// it again for the same entity is a no-op.
func (t *LikeToggle) Revert(id string) (domain.LikeState, bool) {
	snap, ok := t.inflight[id]
	if !ok {
		return domain.LikeState{}, false
	}
	delete(t.inflight, id)
	return snap, true
}

// Toggling reports whether a toggle for the entity is in flight.
func (t *LikeToggle) Toggling(id string) bool {
	_, busy := t.inflight[id]
	return busy
}
