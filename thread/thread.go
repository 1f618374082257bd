package thread

import (
	"strings"

	"huddle/domain"
)

// BodyLimit is the maximum comment length accepted before a request is made.
const BodyLimit = 2000

// Thread ties the engine's parts together for one post. The owning view
// drives it from the event loop; Thread itself never touches the network.
type Thread struct {
	Store    *Store
	Pending  *PendingQueue
	Likes    *LikeToggle
	Expanded *Expansion
}

// New creates the engine for a post.
func New(post domain.Post) *Thread {
	return &Thread{
		Store:    NewStore(post),
		Pending:  NewPendingQueue(),
		Likes:    NewLikeToggle(),
		Expanded: NewExpansion(),
	}
}

// Project derives the visible tree from the store and the pending queue.
func (t *Thread) Project() []Node {
	return Project(t.Store.Comments(), t.Pending.Entries())
}

// ApplyLoad applies a load response. On success the pending queue is cleared:
// the authoritative list supersedes all speculation. A stale response is
// discarded and leaves both the store and the queue untouched — so does a
// failed load, which never reaches this method.
func (t *Thread) ApplyLoad(seq int, comments []domain.Comment) bool {
	if !t.Store.Apply(seq, comments) {
		return false
	}
	t.Pending.Clear()
	return true
}

// StageComment validates and stages a new top-level comment or reply. The
// reply target may itself be a reply; the staged entry is re-parented onto
// the target's top-level ancestor so the tree never grows a third tier.
// target is nil for a top-level comment.
func (t *Thread) StageComment(body string, target *domain.Comment, author domain.User) (domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	if len(body) > BodyLimit {
		return domain.Comment{}, domain.ErrCommentTooLong
	}
	parentID := ""
	if target != nil {
		parentID = domain.NormalizeParent(*target)
	}
	return t.Pending.StageCreate(t.Store.Post().ID, body, parentID, author), nil
}
