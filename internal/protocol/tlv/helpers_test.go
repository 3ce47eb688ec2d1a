package tlv

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/danmuck/tlvkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, cfg Config) *Tree {
	t.Helper()
	testlog.Start(t)
	tr, err := New(cfg)
	require.NoError(t, err)
	return tr
}

func leaf(t *testing.T, tr *Tree, tag, value string) NodeID {
	t.Helper()
	id := tr.NewNode()
	_, err := tr.WriteTag(id, []byte(tag))
	require.NoError(t, err)
	require.NoError(t, tr.WriteValue(id, []byte(value)))
	return id
}

func branch(t *testing.T, tr *Tree, tag string, children ...NodeID) NodeID {
	t.Helper()
	id := tr.NewNode()
	_, err := tr.WriteTag(id, []byte(tag))
	require.NoError(t, err)
	for _, c := range children {
		require.NoError(t, tr.AddChild(id, c))
	}
	return id
}

// describe renders the reachable tree as one line per node.
func describe(tr *Tree) []string {
	var out []string
	tr.Traverse(func(id NodeID) bool {
		tag := string(bytes.TrimRight(tr.Tag(id), "\x00"))
		line := fmt.Sprintf("%d %s", tr.Depth(id), tag)
		if tr.IsLeaf(id) {
			line += fmt.Sprintf(" = %q", tr.Value(id))
		} else {
			line += fmt.Sprintf(" [%d]", tr.ChildCount(id))
		}
		out = append(out, line)
		return true
	})
	return out
}

// requireLinks checks the sibling-list and flag invariants of every node
// reachable from id.
func requireLinks(t *testing.T, tr *Tree, id NodeID) {
	t.Helper()
	var walk func(NodeID)
	walk = func(p NodeID) {
		count := tr.ChildCount(p)
		require.Equal(t, count > 0, tr.IsStructural(p), "node %s flag vs children", p)
		if count > 0 {
			require.Nil(t, tr.Value(p), "structural node %s holds a value", p)
		}
		first := tr.FirstChild(p)
		if first != NoNode {
			require.Equal(t, NoNode, tr.Prev(first))
		}
		seen := 0
		prev := NoNode
		for c := first; c != NoNode; c = tr.Next(c) {
			require.Equal(t, p, tr.Parent(c))
			require.Equal(t, prev, tr.Prev(c))
			prev = c
			seen++
			walk(c)
		}
		require.Equal(t, count, seen)
		require.Equal(t, prev, tr.LastChild(p))
	}
	walk(id)
}
