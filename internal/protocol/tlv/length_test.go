package tlv

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestLengthFieldPinnedBytes(t *testing.T) {
	cases := []struct {
		order ByteOrder
		width int
		n     uint64
		want  []byte
	}{
		{MSBFirst, 2, 0, []byte{0x00, 0x00}},
		{MSBFirst, 2, 1, []byte{0x00, 0x01}},
		{MSBFirst, 2, 15, []byte{0x00, 0x0f}},
		{MSBFirst, 2, 16, []byte{0x00, 0x10}},
		{MSBFirst, 2, 255, []byte{0x00, 0xff}},
		{MSBFirst, 2, 256, []byte{0x01, 0x00}},
		{MSBFirst, 2, 0xffff, []byte{0xff, 0xff}},
		{LSBFirst, 2, 0, []byte{0x00, 0x00}},
		{LSBFirst, 2, 1, []byte{0x01, 0x00}},
		{LSBFirst, 2, 15, []byte{0x0f, 0x00}},
		{LSBFirst, 2, 16, []byte{0x10, 0x00}},
		{LSBFirst, 2, 255, []byte{0xff, 0x00}},
		{LSBFirst, 2, 256, []byte{0x00, 0x01}},
		{LSBFirst, 2, 0xffff, []byte{0xff, 0xff}},
		{MSBFirst, 1, 0xff, []byte{0xff}},
		{MSBFirst, 3, 0x012345, []byte{0x01, 0x23, 0x45}},
		{LSBFirst, 3, 0x012345, []byte{0x45, 0x23, 0x01}},
		{MSBFirst, 8, math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tc := range cases {
		cfg := Config{AttrLen: 1, TagLen: 2, LenLen: tc.width, Order: tc.order}
		field := make([]byte, tc.width)
		require.NoError(t, cfg.EncodeLength(field, tc.n))
		require.Equal(t, tc.want, field, "encode %d order=%s width=%d", tc.n, tc.order, tc.width)

		got, err := cfg.DecodeLength(field)
		require.NoError(t, err)
		require.Equal(t, tc.n, got)
	}
}

func TestLengthFieldInverse(t *testing.T) {
	for _, order := range []ByteOrder{MSBFirst, LSBFirst} {
		cfg := Config{AttrLen: 1, TagLen: 0, LenLen: 2, Order: order}
		field := make([]byte, 2)
		for n := uint64(0); n <= cfg.MaxLength(); n++ {
			require.NoError(t, cfg.EncodeLength(field, n))
			got, err := cfg.DecodeLength(field)
			require.NoError(t, err)
			if got != n {
				t.Fatalf("order=%s: decode(encode(%d)) = %d", order, n, got)
			}
		}
	}
}

func TestEncodeLengthOverflow(t *testing.T) {
	cfg := DefaultConfig()
	field := []byte{0xaa, 0xbb}
	err := cfg.EncodeLength(field, 0x10000)
	require.True(t, errors.Is(err, ErrLengthOverflow), "got %v", err)
}

func TestLengthFieldWidthMismatch(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, errors.Is(cfg.EncodeLength(make([]byte, 3), 1), ErrInvalidArgument))
	_, err := cfg.DecodeLength([]byte{1})
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestEncodeLengthZeroesField(t *testing.T) {
	cfg := Config{AttrLen: 1, TagLen: 2, LenLen: 4, Order: MSBFirst}
	field := []byte{0xde, 0xad, 0xbe, 0xef}
	require.NoError(t, cfg.EncodeLength(field, 0x12))
	require.Equal(t, []byte{0, 0, 0, 0x12}, field)
}
