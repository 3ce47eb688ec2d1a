package tlv

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestStructuralFlagBitPosition(t *testing.T) {
	tr, err := New(DefaultConfig())
	require.NoError(t, err)
	p, c := tr.NewNode(), tr.NewNode()
	require.NoError(t, tr.AddChild(p, c))
	require.Equal(t, []byte{0x20}, tr.Attr(p))
	require.True(t, tr.IsStructural(p))
	require.Equal(t, []byte{0x00}, tr.Attr(c))
}

func TestSetFlagTouchesOneBit(t *testing.T) {
	tr, err := New(Config{AttrLen: 2, TagLen: 1, LenLen: 1})
	require.NoError(t, err)
	id := tr.NewNode()

	require.NoError(t, tr.SetFlag(id, 0, true))
	require.NoError(t, tr.SetFlag(id, 9, true))
	require.Equal(t, []byte{0x80, 0x40}, tr.Attr(id))
	require.True(t, tr.HasFlag(id, 9))
	require.False(t, tr.HasFlag(id, 8))

	require.NoError(t, tr.SetFlag(id, 0, false))
	require.Equal(t, []byte{0x00, 0x40}, tr.Attr(id))
}

func TestSetFlagRejections(t *testing.T) {
	tr, err := New(DefaultConfig())
	require.NoError(t, err)
	id := tr.NewNode()

	require.True(t, errors.Is(tr.SetFlag(id, IsStructural, true), ErrInvalidArgument))
	require.True(t, errors.Is(tr.SetFlag(id, 8, true), ErrInvalidArgument))
	require.True(t, errors.Is(tr.SetFlag(NoNode, 1, true), ErrInvalidArgument))
	require.False(t, tr.HasFlag(id, 8))
}
