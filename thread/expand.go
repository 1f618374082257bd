package thread

import "huddle/domain"

// Expansion tracks which top-level comments show all of their replies.
// Pure client state: not persisted, not synced.
type Expansion struct {
	expanded map[string]struct{}
}

// NewExpansion creates an empty expansion set.
func NewExpansion() *Expansion {
	return &Expansion{expanded: make(map[string]struct{})}
}

// Toggle flips the expansion of a single top-level comment, leaving every
// other comment's expansion untouched.
func (e *Expansion) Toggle(id string) {
	if _, ok := e.expanded[id]; ok {
		delete(e.expanded, id)
	} else {
		e.expanded[id] = struct{}{}
	}
}

// Expanded reports whether the given top-level comment is expanded.
func (e *Expansion) Expanded(id string) bool {
	_, ok := e.expanded[id]
	return ok
}

// Reset collapses everything.
func (e *Expansion) Reset() {
	e.expanded = make(map[string]struct{})
}

// VisibleReplies returns the replies of a node that should be rendered: the
// first reply is always visible, the rest only while the node is expanded.
func (e *Expansion) VisibleReplies(n Node) []domain.Comment {
	if len(n.Replies) <= 1 || e.Expanded(n.Comment.ID) {
		return n.Replies
	}
	return n.Replies[:1]
}

// HasMore reports whether the node has replies hidden behind the expansion
// affordance.
func (e *Expansion) HasMore(n Node) bool {
	return len(n.Replies) > 1 && !e.Expanded(n.Comment.ID)
}
