package thread

import "huddle/domain"

// Node is a top-level comment with its direct replies in list order.
type Node struct {
	Comment domain.Comment
	Replies []domain.Comment
}

// maxParentHops bounds the ancestor walk in Project. The thread is two levels
// deep, but malformed data must not spin the walk.
const maxParentHops = 8

// Project derives the two-level tree from the flat authoritative list and the
// pending optimistic entries. Pending entries come first, so fresh content
// surfaces at the top of its group; within each source, list order is kept
// as-is (server order for the flat list, staging order for pending).
//
// Every comment appears at most once: top-level comments become nodes, and
// each remaining comment attaches to its top-level ancestor. Comments whose
// ancestor chain does not resolve to a present top-level comment (orphans)
// are excluded rather than crashing the projection.
func Project(flat, pending []domain.Comment) []Node {
	combined := make([]domain.Comment, 0, len(pending)+len(flat))
	combined = append(combined, pending...)
	combined = append(combined, flat...)

	byID := make(map[string]domain.Comment, len(combined))
	for _, c := range combined {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}

	roots := make([]domain.Comment, 0, len(combined))
	rootIdx := make(map[string]int, len(combined))
	for _, c := range combined {
		if c.IsReply() {
			continue
		}
		if _, dup := rootIdx[c.ID]; dup {
			continue
		}
		rootIdx[c.ID] = len(roots)
		roots = append(roots, c)
	}

	replies := make(map[string][]domain.Comment, len(roots))
	for _, c := range combined {
		if !c.IsReply() {
			continue
		}
		root, ok := topLevelAncestor(c, byID)
		if !ok {
			continue // Orphan: parent not present in either list.
		}
		if _, present := rootIdx[root]; !present {
			continue
		}
		replies[root] = append(replies[root], c)
	}

	nodes := make([]Node, len(roots))
	for i, r := range roots {
		nodes[i] = Node{Comment: r, Replies: replies[r.ID]}
	}
	return nodes
}

// topLevelAncestor walks ParentID references until it reaches a top-level
// comment. Data deeper than two levels still resolves to the chain's root.
func topLevelAncestor(c domain.Comment, byID map[string]domain.Comment) (string, bool) {
	cur := c
	for range maxParentHops {
		parent, ok := byID[cur.ParentID]
		if !ok {
			return "", false
		}
		if !parent.IsReply() {
			return parent.ID, true
		}
		cur = parent
	}
	return "", false
}
