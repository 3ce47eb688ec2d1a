package tlv

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestTraverseOrderAndCount(t *testing.T) {
	tr, root := scenarioTree(t)
	var tags []string
	n := tr.Traverse(func(id NodeID) bool {
		tags = append(tags, tagString(tr, id))
		return true
	})
	require.Equal(t, 6, n)
	require.Equal(t, []string{"root node", "node lv1_1", "node lv1_1_1", "node lv1_2", "node lv1_3", "node lv1_4"}, tags)
	require.Equal(t, tr.NodeCount(), n)
	require.Equal(t, n, tr.Traverse(nil))
	require.Equal(t, root, slices.Collect(tr.All())[0])
}

func TestTraverseEarlyStop(t *testing.T) {
	tr, _ := scenarioTree(t)
	for stopAt := 1; stopAt <= 6; stopAt++ {
		var seen []NodeID
		n := tr.Traverse(func(id NodeID) bool {
			seen = append(seen, id)
			return len(seen) < stopAt
		})
		require.Equal(t, stopAt, n)
		require.Len(t, seen, stopAt)
	}

	count := 0
	for range tr.All() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestEmptyTreeWalks(t *testing.T) {
	tr := newTree(t, DefaultConfig())
	require.Equal(t, 0, tr.NodeCount())
	require.Equal(t, 0, tr.Traverse(func(NodeID) bool { return true }))
	tr.NewNode() // detached, unreachable
	require.Equal(t, 0, tr.NodeCount())
	require.Equal(t, 1, tr.Len())
}

func TestDestroySubtree(t *testing.T) {
	tr, root := scenarioTree(t)
	lv11 := tr.FirstChild(root)
	lv111 := tr.FirstChild(lv11)
	require.Equal(t, 6, tr.Len())

	require.NoError(t, tr.Destroy(lv11))
	require.False(t, tr.Valid(lv11))
	require.False(t, tr.Valid(lv111))
	require.Equal(t, 4, tr.Len())
	require.Equal(t, 4, tr.NodeCount())
	require.Equal(t, 3, tr.ChildCount(root))
	requireLinks(t, tr, root)

	// stale handles are rejected, even once the slot is recycled
	fresh := tr.NewNode()
	require.True(t, tr.Valid(fresh))
	require.NotEqual(t, lv111, fresh)
	require.NotEqual(t, lv11, fresh)
	require.True(t, errors.Is(tr.AddChild(root, lv11), ErrInvalidArgument))
	require.True(t, errors.Is(tr.Destroy(lv11), ErrInvalidArgument))
	require.Equal(t, 0, tr.ChildCount(lv11))
	require.Nil(t, tr.Tag(lv111))
}

func TestDestroyDetachedAndRoot(t *testing.T) {
	tr, root := scenarioTree(t)
	lv14 := tr.LastChild(root)
	require.NoError(t, tr.RemoveChild(lv14))
	require.NoError(t, tr.Destroy(lv14))
	require.Equal(t, 5, tr.Len())

	require.NoError(t, tr.Destroy(root))
	require.Equal(t, NoNode, tr.Root())
	require.Equal(t, 0, tr.Len())
	require.Equal(t, 0, tr.EncodedLen())
}

func TestResetFreesDetachedNodes(t *testing.T) {
	tr, root := scenarioTree(t)
	loose := tr.NewNode()
	tr.Reset()
	require.Equal(t, 0, tr.Len())
	require.False(t, tr.Valid(root))
	require.False(t, tr.Valid(loose))
}
