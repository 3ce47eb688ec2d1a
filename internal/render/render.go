// Package render prints read-only views of a tlv.Tree.
package render

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/tlvkit/internal/protocol/tlv"
	"github.com/olekukonko/tablewriter"
)

// Printable renders b as text when it is printable ASCII once trailing NULs
// are trimmed, and as 0x-prefixed hex otherwise.
func Printable(b []byte) string {
	if len(b) == 0 {
		return `""`
	}
	trimmed := bytes.TrimRight(b, "\x00")
	if len(trimmed) > 0 && isPrintable(trimmed) {
		return string(trimmed)
	}
	return "0x" + hex.EncodeToString(b)
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// Tree writes one line per reachable node in pre-order, indented two spaces
// per level.
func Tree(w io.Writer, t *tlv.Tree) error {
	var err error
	t.Traverse(func(id tlv.NodeID) bool {
		_, err = io.WriteString(w, line(t, id)+"\n")
		return err == nil
	})
	return err
}

func line(t *tlv.Tree, id tlv.NodeID) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", t.Depth(id)))
	fmt.Fprintf(&b, "t(%d): %s, l: %d", t.ChildCount(id), Printable(t.Tag(id)), t.Length(id))
	if t.IsLeaf(id) {
		fmt.Fprintf(&b, ", v: %s", Printable(t.Value(id)))
	}
	return b.String()
}

// Table renders the tree as depth/tag/length/children/value columns.
func Table(w io.Writer, t *tlv.Tree) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Depth", "Tag", "Length", "Children", "Value"})
	table.SetAutoWrapText(false)
	t.Traverse(func(id tlv.NodeID) bool {
		value := "-"
		if t.IsLeaf(id) {
			value = Printable(t.Value(id))
		}
		table.Append([]string{
			strconv.Itoa(t.Depth(id)),
			Printable(t.Tag(id)),
			strconv.FormatUint(t.Length(id), 10),
			strconv.Itoa(t.ChildCount(id)),
			value,
		})
		return true
	})
	table.Render()
}
