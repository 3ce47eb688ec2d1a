package tlv

import (
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// NodeID addresses a node inside the arena of one Tree. The low 32 bits are
// the slot, the next 16 the tag of the owning tree and the high 16 the slot
// generation at allocation time. A tree rejects handles carrying another
// tree's tag. Tags are drawn from a 16-bit process-wide counter, so two trees
// created 65536 apart share a tag.
type NodeID uint64

// NoNode is the absent handle.
const NoNode NodeID = 0

func makeNodeID(tree uint16, slot uint32, gen uint16) NodeID {
	return NodeID(uint64(gen)<<48 | uint64(tree)<<32 | uint64(slot))
}

func (id NodeID) slot() uint32 { return uint32(id) }
func (id NodeID) tree() uint16 { return uint16(id >> 32) }
func (id NodeID) gen() uint16  { return uint16(id >> 48) }

var treeTags atomic.Uint32

func nextTreeTag() uint16 {
	for {
		if tag := uint16(treeTags.Add(1)); tag != 0 {
			return tag
		}
	}
}

func (id NodeID) String() string {
	if id == NoNode {
		return "none"
	}
	return fmt.Sprintf("%d.%d", id.slot(), id.gen())
}

type node struct {
	gen  uint16
	live bool

	attr   []byte
	tag    []byte
	lfield []byte
	length uint64
	// nil unless the node holds a value
	value []byte

	parent NodeID
	first  NodeID
	last   NodeID
	prev   NodeID
	next   NodeID
	count  int
}

// Tree owns a root node and, transitively, every node reachable from it.
// Nodes detached with RemoveChild stay in the arena and are owned by the
// caller until re-attached or destroyed.
type Tree struct {
	tag   uint16
	cfg   Config
	nodes []node
	free  []uint32
	live  int

	root       NodeID
	encodedLen int
}

// New returns an empty tree using cfg for every node it allocates.
func New(cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tree{tag: nextTreeTag(), cfg: cfg}, nil
}

func (t *Tree) Config() Config { return t.cfg }

// EncodedLen is the total document size computed by the last Layout.
func (t *Tree) EncodedLen() int { return t.encodedLen }

// Len reports the number of live nodes, attached or not.
func (t *Tree) Len() int { return t.live }

func (t *Tree) Root() NodeID { return t.root }

// NewNode allocates a node with zero-filled header fields, no value and no
// links.
func (t *Tree) NewNode() NodeID {
	var slot uint32
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, node{})
		slot = uint32(len(t.nodes) - 1)
	}
	n := &t.nodes[slot]
	gen := n.gen + 1
	if gen == 0 {
		gen = 1
	}
	*n = node{
		gen:    gen,
		live:   true,
		attr:   make([]byte, t.cfg.AttrLen),
		tag:    make([]byte, t.cfg.TagLen),
		lfield: make([]byte, t.cfg.LenLen),
	}
	t.live++
	return makeNodeID(t.tag, slot, gen)
}

// SetRoot makes id the entry point of the tree. A previous root is left in the
// arena as a detached subtree.
func (t *Tree) SetRoot(id NodeID) error {
	n := t.get(id)
	if n == nil {
		return errors.Wrapf(ErrInvalidArgument, "set root: unknown node %s", id)
	}
	if n.parent != NoNode {
		return errors.Wrapf(ErrInvalidArgument, "set root: node %s has a parent", id)
	}
	t.root = id
	return nil
}

func (t *Tree) get(id NodeID) *node {
	if t == nil || id == NoNode || id.tree() != t.tag {
		return nil
	}
	s := id.slot()
	if int(s) >= len(t.nodes) {
		return nil
	}
	n := &t.nodes[s]
	if !n.live || n.gen != id.gen() {
		return nil
	}
	return n
}

func (t *Tree) release(id NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	*n = node{gen: n.gen}
	t.free = append(t.free, id.slot())
	t.live--
}

// Valid reports whether id refers to a live node of this tree.
func (t *Tree) Valid(id NodeID) bool { return t.get(id) != nil }

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

func (t *Tree) FirstChild(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.first
	}
	return NoNode
}

func (t *Tree) LastChild(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.last
	}
	return NoNode
}

func (t *Tree) Next(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.next
	}
	return NoNode
}

func (t *Tree) Prev(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.prev
	}
	return NoNode
}

func (t *Tree) ChildCount(id NodeID) int {
	if n := t.get(id); n != nil {
		return n.count
	}
	return 0
}

// Children returns the direct children of id in order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil || n.count == 0 {
		return nil
	}
	out := make([]NodeID, 0, n.count)
	for c := n.first; c != NoNode; c = t.nodes[c.slot()].next {
		out = append(out, c)
	}
	return out
}

// Depth is the number of ancestors of id; a root or detached node is 0.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		d++
	}
	return d
}

func (t *Tree) IsStructural(id NodeID) bool {
	n := t.get(id)
	return n != nil && hasBit(n.attr, IsStructural)
}

// IsLeaf reports whether id is a live node without children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.count == 0
}

// Length is the decoded length of id; authoritative after Layout or Load.
func (t *Tree) Length(id NodeID) uint64 {
	if n := t.get(id); n != nil {
		return n.length
	}
	return 0
}

func (t *Tree) Attr(id NodeID) []byte {
	if n := t.get(id); n != nil {
		return clone(n.attr)
	}
	return nil
}

func (t *Tree) Tag(id NodeID) []byte {
	if n := t.get(id); n != nil {
		return clone(n.tag)
	}
	return nil
}

// ReadTag copies up to len(buf) tag bytes into buf.
func (t *Tree) ReadTag(id NodeID, buf []byte) int {
	if n := t.get(id); n != nil {
		return copy(buf, n.tag)
	}
	return 0
}

func (t *Tree) LengthField(id NodeID) []byte {
	if n := t.get(id); n != nil {
		return clone(n.lfield)
	}
	return nil
}

// Value returns a copy of the value of id, or nil if it holds none.
func (t *Tree) Value(id NodeID) []byte {
	if n := t.get(id); n != nil && n.value != nil {
		return clone(n.value)
	}
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
