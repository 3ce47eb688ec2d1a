package render

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Hex formats b as lowercase hex with sep between bytes. An empty sep gives
// one unbroken run of digits.
func Hex(b []byte, sep string) string {
	if sep == "" || len(b) == 0 {
		return hex.EncodeToString(b)
	}
	var sb strings.Builder
	sb.Grow(len(b)*(2+len(sep)) - len(sep))
	for i, c := range b {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	return sb.String()
}

func isHexSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ':' || r == '-' || r == ','
}

// ParseHex decodes hex text. Whitespace, ':', '-' and ',' separate groups,
// and each group may carry a 0x prefix.
func ParseHex(s string) ([]byte, error) {
	var sb strings.Builder
	for _, group := range strings.FieldsFunc(s, isHexSeparator) {
		if len(group) > 1 && group[0] == '0' && (group[1] == 'x' || group[1] == 'X') {
			group = group[2:]
		}
		sb.WriteString(group)
	}
	if sb.Len() == 0 {
		return []byte{}, nil
	}
	b, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, errors.Wrap(err, "parse hex")
	}
	return b, nil
}
