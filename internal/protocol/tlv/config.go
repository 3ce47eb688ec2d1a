package tlv

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Default field widths in bytes.
const (
	DefaultAttrLen = 1
	DefaultTagLen  = 2
	DefaultLenLen  = 2

	// MaxLenLen is the widest length field whose value fits a uint64.
	MaxLenLen = 8
)

// ByteOrder selects which end of the length field holds the most
// significant digit pair.
type ByteOrder uint8

const (
	MSBFirst ByteOrder = iota
	LSBFirst
)

func (o ByteOrder) String() string {
	switch o {
	case MSBFirst:
		return "msb"
	case LSBFirst:
		return "lsb"
	default:
		return "unknown"
	}
}

// ParseByteOrder accepts msb/big and lsb/little, case-insensitively.
func ParseByteOrder(raw string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "msb", "big", "big-endian":
		return MSBFirst, nil
	case "lsb", "little", "little-endian":
		return LSBFirst, nil
	default:
		return 0, errors.Wrapf(ErrInvalidArgument, "unknown byte order %q", raw)
	}
}

// Config fixes the header layout of every node in a tree.
type Config struct {
	AttrLen int
	TagLen  int
	LenLen  int
	Order   ByteOrder
}

func DefaultConfig() Config {
	return Config{
		AttrLen: DefaultAttrLen,
		TagLen:  DefaultTagLen,
		LenLen:  DefaultLenLen,
		Order:   MSBFirst,
	}
}

func (c Config) Validate() error {
	if c.AttrLen < 1 {
		return errors.Wrapf(ErrInvalidArgument, "attribute width %d: must hold the structural flag", c.AttrLen)
	}
	if c.TagLen < 0 {
		return errors.Wrapf(ErrInvalidArgument, "tag width %d is negative", c.TagLen)
	}
	if c.LenLen < 1 || c.LenLen > MaxLenLen {
		return errors.Wrapf(ErrInvalidArgument, "length width %d: want 1..%d", c.LenLen, MaxLenLen)
	}
	if c.Order != MSBFirst && c.Order != LSBFirst {
		return errors.Wrapf(ErrInvalidArgument, "byte order %d", c.Order)
	}
	return nil
}

// HeaderLen is the on-wire size of one node header.
func (c Config) HeaderLen() int {
	return c.AttrLen + c.TagLen + c.LenLen
}

// MaxLength is the largest length the length field can carry.
func (c Config) MaxLength() uint64 {
	if c.LenLen >= MaxLenLen {
		return math.MaxUint64
	}
	if c.LenLen <= 0 {
		return 0
	}
	return 1<<(8*uint(c.LenLen)) - 1
}
