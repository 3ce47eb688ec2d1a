package tlv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/stack"
)

type layoutFrame struct {
	id       NodeID
	expanded bool
}

// Layout recomputes the length and length field of every node bottom-up and
// returns the total encoded size of the document. It must run after any
// mutation and before Encode.
func (t *Tree) Layout() (int, error) {
	root := t.get(t.root)
	if root == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "layout: tree has no root")
	}
	hdr := uint64(t.cfg.HeaderLen())

	s := stack.New[layoutFrame](0)
	defer s.Reset()
	s.Push(layoutFrame{id: t.root})
	nodes := 0
	for s.Len() > 0 {
		f, _ := s.Pop()
		n := t.get(f.id)
		if n.count > 0 && !f.expanded {
			s.Push(layoutFrame{id: f.id, expanded: true})
			for c := n.last; c != NoNode; c = t.nodes[c.slot()].prev {
				s.Push(layoutFrame{id: c})
			}
			continue
		}

		nodes++
		if n.count == 0 {
			n.length = uint64(len(n.value))
		} else {
			var sum uint64
			for c := n.first; c != NoNode; c = t.nodes[c.slot()].next {
				footprint := hdr + t.nodes[c.slot()].length
				if footprint < hdr || sum > math.MaxUint64-footprint {
					return 0, errors.Wrapf(ErrLengthOverflow, "layout: node %s payload overflows", f.id)
				}
				sum += footprint
			}
			n.length = sum
		}
		if err := t.cfg.EncodeLength(n.lfield, n.length); err != nil {
			return 0, errors.Wrapf(err, "layout: node %s", f.id)
		}
	}

	total := hdr + root.length
	if total < hdr || total > math.MaxInt {
		return 0, errors.Wrapf(ErrLengthOverflow, "layout: document size %d+%d", hdr, root.length)
	}
	t.encodedLen = int(total)
	logging.Debugf("tlv.Layout nodes=%d size=%d", nodes, t.encodedLen)
	return t.encodedLen, nil
}
