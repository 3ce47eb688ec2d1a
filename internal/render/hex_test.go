package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	b := []byte{0x00, 0x6f, 0xff}
	require.Equal(t, "006fff", Hex(b, ""))
	require.Equal(t, "00:6f:ff", Hex(b, ":"))
	require.Equal(t, "00 - 6f - ff", Hex(b, " - "))
	require.Equal(t, "", Hex(nil, ":"))
	require.Equal(t, "6f", Hex([]byte{0x6f}, ":"))
}

func TestParseHex(t *testing.T) {
	cases := map[string][]byte{
		"006fff":           {0x00, 0x6f, 0xff},
		"00:6F:ff":         {0x00, 0x6f, 0xff},
		"00 6f\n\tff":      {0x00, 0x6f, 0xff},
		"0x00, 0x6f, 0xFF": {0x00, 0x6f, 0xff},
		"0x006fff":         {0x00, 0x6f, 0xff},
		"00-6f-ff\n":       {0x00, 0x6f, 0xff},
		"":                 {},
		" : ":              {},
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"0", "zz", "00 6", "0xg0"} {
		_, err := ParseHex(in)
		require.Error(t, err, "input %q", in)
	}
}
