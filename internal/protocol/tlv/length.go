package tlv

import "github.com/cockroachdb/errors"

// EncodeLength writes n into the length field dst. Each byte holds two 4-bit
// digits (high, low); MSBFirst fills dst right to left so index 0 carries the
// most significant pair, LSBFirst fills it left to right.
func (c Config) EncodeLength(dst []byte, n uint64) error {
	if len(dst) != c.LenLen {
		return errors.Wrapf(ErrInvalidArgument, "length field is %d bytes, want %d", len(dst), c.LenLen)
	}
	if n > c.MaxLength() {
		return errors.Wrapf(ErrLengthOverflow, "length %d exceeds %d-byte field", n, c.LenLen)
	}
	clear(dst)

	a := n
	put := func(i int) {
		lo := a % 16
		a /= 16
		hi := a % 16
		a /= 16
		dst[i] = byte(hi*16 + lo)
	}
	switch c.Order {
	case MSBFirst:
		for i := len(dst) - 1; i >= 0; i-- {
			put(i)
		}
	case LSBFirst:
		for i := 0; i < len(dst); i++ {
			put(i)
		}
	default:
		return errors.Wrapf(ErrInvalidArgument, "byte order %d", c.Order)
	}
	return nil
}

// DecodeLength is the inverse of EncodeLength.
func (c Config) DecodeLength(field []byte) (uint64, error) {
	if len(field) != c.LenLen {
		return 0, errors.Wrapf(ErrInvalidArgument, "length field is %d bytes, want %d", len(field), c.LenLen)
	}

	var n uint64
	acc := func(b byte) {
		n = n*16 + uint64(b/16)
		n = n*16 + uint64(b%16)
	}
	switch c.Order {
	case MSBFirst:
		for i := 0; i < len(field); i++ {
			acc(field[i])
		}
	case LSBFirst:
		for i := len(field) - 1; i >= 0; i-- {
			acc(field[i])
		}
	default:
		return 0, errors.Wrapf(ErrInvalidArgument, "byte order %d", c.Order)
	}
	return n, nil
}

// putLength encodes a length already known to fit.
func (c Config) putLength(dst []byte, n uint64) {
	_ = c.EncodeLength(dst, n)
}
