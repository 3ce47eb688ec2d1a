package tlv

import (
	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/stack"
)

// Decode parses data into a new tree using cfg. It returns the tree and the
// number of bytes the document occupies.
func Decode(cfg Config, data []byte) (*Tree, int, error) {
	t, err := New(cfg)
	if err != nil {
		return nil, 0, err
	}
	n, err := t.Load(data)
	if err != nil {
		return nil, 0, err
	}
	return t, n, nil
}

// Load replaces the contents of t with the document at the start of data and
// returns the bytes consumed: header plus root length. Bytes past the document
// are ignored. Any handle into t from before the call is invalidated.
//
// Every header read and value copy is bounds-checked against the buffer and
// against the enclosing structural record; violations return ErrMalformed and
// leave the tree empty.
func (t *Tree) Load(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(ErrInvalidArgument, "load: empty input")
	}
	t.Reset()
	n, err := t.load(data)
	if err != nil {
		t.Reset()
		logging.Debugf("tlv.Load rejected size=%d err=%v", len(data), err)
		return 0, err
	}
	logging.Debugf("tlv.Load consumed=%d size=%d nodes=%d", n, len(data), t.live)
	return n, nil
}

func (t *Tree) load(data []byte) (int, error) {
	cfg := t.cfg
	hdr := cfg.HeaderLen()

	// closing offsets of the currently open structural records
	closing := stack.New[int](0)
	defer closing.Reset()

	limit := -1
	parent := NoNode
	off := 0
	for off < len(data) && (limit < 0 || off < limit) {
		bound := len(data)
		if end, ok := closing.Peek(); ok {
			bound = end
		}
		if bound-off < hdr {
			if closing.Len() == 0 {
				return 0, errors.Wrapf(ErrMalformed, "short header at offset %d: need %d bytes, have %d",
					off, hdr, bound-off)
			}
			return 0, errors.Wrapf(ErrMalformed, "record at offset %d overruns enclosing record ending at %d",
				off, bound)
		}

		start := off
		id := t.NewNode()
		if parent == NoNode {
			t.root = id
		} else {
			t.link(parent, id)
		}
		n := t.get(id)
		off += copy(n.attr, data[off:off+cfg.AttrLen])
		off += copy(n.tag, data[off:off+cfg.TagLen])
		off += copy(n.lfield, data[off:off+cfg.LenLen])
		length, err := cfg.DecodeLength(n.lfield)
		if err != nil {
			return 0, err
		}
		n.length = length
		if length > uint64(bound-off) {
			return 0, errors.Wrapf(ErrMalformed, "record at offset %d declares %d bytes, only %d available before offset %d",
				start, length, bound-off, bound)
		}
		if id == t.root {
			limit = off + int(length)
		}

		if hasBit(n.attr, IsStructural) {
			if length == 0 {
				return 0, errors.Wrapf(ErrMalformed, "structural record at offset %d has an empty payload", start)
			}
			closing.Push(off + int(length))
			parent = id
			continue
		}

		n.value = make([]byte, length)
		off += copy(n.value, data[off:off+int(length)])
		for {
			end, ok := closing.Peek()
			if !ok || end != off {
				break
			}
			closing.Pop()
			parent = t.nodes[parent.slot()].parent
		}
	}
	if closing.Len() > 0 {
		end, _ := closing.Peek()
		return 0, errors.Wrapf(ErrMalformed, "input ends at %d inside record ending at %d", off, end)
	}
	return limit, nil
}
