package tlv

import "github.com/cockroachdb/errors"

// AddChild appends child as the last child of parent. A value held by parent
// is discarded and its length reset to zero.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, c := t.get(parent), t.get(child)
	if p == nil || c == nil {
		return errors.Wrapf(ErrInvalidArgument, "add child: unknown node (parent=%s child=%s)", parent, child)
	}
	if parent == child {
		return errors.Wrapf(ErrInvalidArgument, "add child: node %s cannot contain itself", child)
	}
	if c.parent != NoNode {
		return errors.Wrapf(ErrInvalidArgument, "add child: node %s is already attached to %s", child, c.parent)
	}
	if child == t.root {
		return errors.Wrapf(ErrInvalidArgument, "add child: node %s is the tree root", child)
	}
	for a := p.parent; a != NoNode; a = t.nodes[a.slot()].parent {
		if a == child {
			return errors.Wrapf(ErrInvalidArgument, "add child: node %s is an ancestor of %s", child, parent)
		}
	}
	t.link(parent, child)
	return nil
}

// link attaches child without ownership checks.
func (t *Tree) link(parent, child NodeID) {
	p, c := t.get(parent), t.get(child)

	setBit(p.attr, IsStructural, true)
	if p.value != nil {
		p.value = nil
		p.length = 0
		t.cfg.putLength(p.lfield, 0)
	}

	c.prev = p.last
	c.next = NoNode
	if p.last != NoNode {
		t.nodes[p.last.slot()].next = child
	} else {
		p.first = child
	}
	p.last = child
	c.parent = parent
	p.count++
}

// RemoveChild detaches child from its parent. The child and its subtree are
// not destroyed; the caller owns them until re-attached or destroyed.
func (t *Tree) RemoveChild(child NodeID) error {
	c := t.get(child)
	if c == nil {
		return errors.Wrapf(ErrInvalidArgument, "remove child: unknown node %s", child)
	}
	if c.parent == NoNode {
		return errors.Wrapf(ErrInvalidArgument, "remove child: node %s has no parent", child)
	}
	p := t.get(c.parent)

	if c.prev != NoNode {
		t.nodes[c.prev.slot()].next = c.next
	} else {
		p.first = c.next
	}
	if c.next != NoNode {
		t.nodes[c.next.slot()].prev = c.prev
	} else {
		p.last = c.prev
	}
	p.count--
	c.parent, c.prev, c.next = NoNode, NoNode, NoNode

	if p.count == 0 {
		setBit(p.attr, IsStructural, false)
		p.length = 0
		t.cfg.putLength(p.lfield, 0)
	}
	return nil
}

// WriteTag copies min(len(b), TagLen) bytes into the tag field, left-aligned.
func (t *Tree) WriteTag(id NodeID, b []byte) (int, error) {
	n := t.get(id)
	if n == nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "write tag: unknown node %s", id)
	}
	return copy(n.tag, b), nil
}

// WriteTagUint writes v across the full tag field in the tree's byte order:
// MSBFirst puts the most significant byte at index 0. Values that do not fit
// the tag width are rejected.
func (t *Tree) WriteTagUint(id NodeID, v uint64) error {
	n := t.get(id)
	if n == nil {
		return errors.Wrapf(ErrInvalidArgument, "write tag: unknown node %s", id)
	}
	width := len(n.tag)
	if width < 8 && v>>(8*uint(width)) != 0 {
		return errors.Wrapf(ErrInvalidArgument, "write tag: %d does not fit %d-byte tag", v, width)
	}
	clear(n.tag)
	for i := 0; i < width && i < 8; i++ {
		b := byte(v >> (8 * uint(i)))
		if t.cfg.Order == MSBFirst {
			n.tag[width-1-i] = b
		} else {
			n.tag[i] = b
		}
	}
	return nil
}

// WriteValue replaces the value of a leaf and sets its length. Nodes with
// children are rejected with ErrNotLeaf.
func (t *Tree) WriteValue(id NodeID, b []byte) error {
	n := t.get(id)
	if n == nil {
		return errors.Wrapf(ErrInvalidArgument, "write value: unknown node %s", id)
	}
	if n.count > 0 {
		return errors.Wrapf(ErrNotLeaf, "write value: node %s has %d children", id, n.count)
	}
	n.value = append(make([]byte, 0, len(b)), b...)
	n.length = uint64(len(b))
	return nil
}
