package tlv

import (
	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/stack"
)

// Encode writes the tree into dst in pre-order and returns the number of bytes
// written. Length fields are taken as they are; run Layout first. On
// ErrCapacity the contents of dst are unusable.
func (t *Tree) Encode(dst []byte) (int, error) {
	if t.get(t.root) == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "encode: tree has no root")
	}
	hdr := t.cfg.HeaderLen()

	s := stack.New[NodeID](0)
	defer s.Reset()
	s.Push(t.root)
	off := 0
	for s.Len() > 0 {
		id, _ := s.Pop()
		n := t.get(id)
		for c := n.last; c != NoNode; c = t.nodes[c.slot()].prev {
			s.Push(c)
		}

		need := hdr
		if n.count == 0 {
			need += len(n.value)
		}
		if len(dst)-off < need {
			return 0, errors.Wrapf(ErrCapacity, "encode: node %s needs %d bytes at offset %d, %d left",
				id, need, off, len(dst)-off)
		}
		off += copy(dst[off:], n.attr)
		off += copy(dst[off:], n.tag)
		off += copy(dst[off:], n.lfield)
		if n.count == 0 {
			off += copy(dst[off:], n.value)
		}
	}
	logging.Debugf("tlv.Encode wrote=%d cap=%d", off, len(dst))
	return off, nil
}

// Marshal runs Layout and encodes the tree into an exactly sized buffer.
func (t *Tree) Marshal() ([]byte, error) {
	size, err := t.Layout()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := t.Encode(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
