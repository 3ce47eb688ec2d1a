package tlv

import "github.com/cockroachdb/errors"

var (
	ErrInvalidArgument = errors.New("tlv: invalid argument")
	ErrCapacity        = errors.New("tlv: destination buffer exhausted")
	ErrMalformed       = errors.New("tlv: malformed input")
	ErrLengthOverflow  = errors.New("tlv: length does not fit length field")

	// ErrNotLeaf is returned when a value is written to a node with children.
	ErrNotLeaf = errors.Mark(errors.New("tlv: node has children"), ErrInvalidArgument)
)
