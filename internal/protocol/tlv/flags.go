package tlv

import "github.com/cockroachdb/errors"

// Flag is a bit index into the attribute field, numbered most significant bit
// first: bit i lives in byte i/8 under mask 0x80>>(i%8).
type Flag uint

// IsStructural marks a node whose payload is child records. It is maintained
// by AddChild and RemoveChild and cannot be set directly.
const IsStructural Flag = 2

func (f Flag) locate() (int, byte) {
	return int(f / 8), byte(0x80) >> (f % 8)
}

func hasBit(attr []byte, f Flag) bool {
	i, mask := f.locate()
	return i < len(attr) && attr[i]&mask != 0
}

func setBit(attr []byte, f Flag, on bool) {
	i, mask := f.locate()
	if i >= len(attr) {
		return
	}
	if on {
		attr[i] |= mask
	} else {
		attr[i] &^= mask
	}
}

// SetFlag sets or clears one caller-defined attribute bit.
func (t *Tree) SetFlag(id NodeID, f Flag, on bool) error {
	n := t.get(id)
	if n == nil {
		return errors.Wrapf(ErrInvalidArgument, "set flag: unknown node %s", id)
	}
	if f == IsStructural {
		return errors.Wrap(ErrInvalidArgument, "set flag: structural flag follows the children of a node")
	}
	if i, _ := f.locate(); i >= len(n.attr) {
		return errors.Wrapf(ErrInvalidArgument, "set flag: bit %d outside %d-byte attribute", f, len(n.attr))
	}
	setBit(n.attr, f, on)
	return nil
}

func (t *Tree) HasFlag(id NodeID, f Flag) bool {
	n := t.get(id)
	return n != nil && hasBit(n.attr, f)
}
