package arbor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexResolvesAfterGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree, idx := scenarioTree()
	for v, i := range idx {
		n, err := tree.TryNode(i)
		require.NoError(t, err)
		assert.Equal(t, v, n.Data())
	}
}

func TestForeignIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	_, idx := scenarioTree()
	other, _ := scenarioTree()
	_, err := other.TryNode(idx[5])
	assert.Equal(t, ErrOutOfBounds, err)
	assert.Panics(t, func() { other.Node(idx[5]) })
	m := other.GetNode(idx[5])
	_, ok := maybeGet(m)
	assert.False(t, ok)
}

func TestRemovedNodeIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := NewTree[int](Options{Policy: Lazy{}})
	tree.PushRoot(1)
	leaf := tree.RootMut().PushChild(2)
	tree.NodeMutOf(leaf).Remove()
	_, err := tree.TryNode(leaf)
	assert.Equal(t, ErrRemovedNode, err)
}

// Index invalidation under the default policy: removing the subtree at 4 leaves
// utilization above the default threshold, so only the removed nodes'
// indices die; removing the subtree at 7 pushes utilization below 75%,
// compaction runs, and every index minted before it is dead.
func TestIndexInvalidationUnderAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree, idx := scenarioTree()
	tree.NodeMutOf(idx[4]).Remove() // closes 4 and 8; utilization 9/11
	for _, v := range []int{1, 2, 3, 5, 6, 7, 9, 10, 11} {
		n, err := tree.TryNode(idx[v])
		require.NoError(t, err, "index of %d must survive a reclaim-free removal", v)
		assert.Equal(t, v, n.Data())
	}
	for _, v := range []int{4, 8} {
		_, err := tree.TryNode(idx[v])
		assert.Equal(t, ErrRemovedNode, err)
	}
	//
	tree.NodeMutOf(idx[7]).Remove() // closes 7, 10, 11; utilization 6/11 < 3/4
	for v := 1; v <= 11; v++ {
		assert.False(t, idx[v].IsValidFor(tree),
			"index of %d must be invalid after compaction", v)
	}
	for _, v := range []int{1, 2, 3, 5, 6, 9} {
		_, err := tree.TryNode(idx[v])
		assert.Equal(t, ErrReorganizedCollection, err, "index of %d", v)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 5, 6, 9}, bfsValues(tree))
	assert.Equal(t, []int{1, 2, 3, 5, 6, 9}, bfsValues(tree))
	assert.Equal(t, 6, tree.Len())
}

func TestLazyKeepsIndicesValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := NewTree[int](Options{Policy: Lazy{}})
	tree.PushRoot(1)
	root := tree.RootMut()
	kept := root.PushChild(100)
	for i := 0; i < 20; i++ {
		doomed := root.PushChild(i)
		tree.NodeMutOf(doomed).Remove()
	}
	n, err := tree.TryNode(kept)
	require.NoError(t, err, "Lazy policy must never invalidate surviving indices")
	assert.Equal(t, 100, n.Data())
}
