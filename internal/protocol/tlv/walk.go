package tlv

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/stack"
)

// Traverse visits every node reachable from the root in pre-order, left to
// right. Returning false from visit stops the walk; the stopping node is
// counted. It returns the number of nodes visited. visit must not mutate the
// tree.
func (t *Tree) Traverse(visit func(NodeID) bool) int {
	if t.get(t.root) == nil {
		return 0
	}
	s := stack.New[NodeID](0)
	defer s.Reset()
	s.Push(t.root)
	visited := 0
	for s.Len() > 0 {
		id, _ := s.Pop()
		visited++
		if visit != nil && !visit(id) {
			break
		}
		n := t.get(id)
		if n == nil {
			continue
		}
		for c := n.last; c != NoNode; c = t.nodes[c.slot()].prev {
			s.Push(c)
		}
	}
	return visited
}

// All yields the nodes of the tree in Traverse order.
func (t *Tree) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.Traverse(yield)
	}
}

// NodeCount returns the number of nodes reachable from the root.
func (t *Tree) NodeCount() int {
	if t.get(t.root) == nil {
		return 0
	}
	s := stack.New[NodeID](0)
	defer s.Reset()
	s.Push(t.root)
	count := 0
	for s.Len() > 0 {
		id, _ := s.Pop()
		count++
		for c := t.nodes[id.slot()].first; c != NoNode; c = t.nodes[c.slot()].next {
			s.Push(c)
		}
	}
	return count
}

// Destroy frees id and its whole subtree. An attached node is detached from
// its parent first; destroying the root leaves the tree empty. Every handle
// into the subtree is invalid afterwards.
func (t *Tree) Destroy(id NodeID) error {
	n := t.get(id)
	if n == nil {
		return errors.Wrapf(ErrInvalidArgument, "destroy: unknown node %s", id)
	}
	if n.parent != NoNode {
		if err := t.RemoveChild(id); err != nil {
			return err
		}
	}
	if id == t.root {
		t.root = NoNode
		t.encodedLen = 0
	}

	s := stack.New[NodeID](0)
	defer s.Reset()
	s.Push(id)
	for s.Len() > 0 {
		cur, _ := s.Pop()
		for c := t.nodes[cur.slot()].first; c != NoNode; c = t.nodes[c.slot()].next {
			s.Push(c)
		}
		t.release(cur)
	}
	return nil
}

// Reset frees every node in the arena, attached or detached.
func (t *Tree) Reset() {
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.live {
			t.release(makeNodeID(t.tag, uint32(i), n.gen))
		}
	}
	t.root = NoNode
	t.encodedLen = 0
}
