package arbor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// word is a payload with an explicit deep-copy operation, for exercising
// the Cloneable graft path.
type word struct {
	runes []rune
}

func w(s string) word { return word{runes: []rune(s)} }

func (x word) Clone() word {
	cp := make([]rune, len(x.runes))
	copy(cp, x.runes)
	return word{runes: cp}
}

func (x word) String() string { return string(x.runes) }

func TestClonedSubtreeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	src := New[word]()
	src.PushRoot(w("root"))
	ids := src.RootMut().PushChildren(w("left"), w("right"))
	src.NodeMutOf(ids[0]).PushChild(w("leaf"))
	//
	sub := ClonedSubtree(src.Root())
	dst := New[word]()
	dst.PushRootTree(sub)
	//
	var got []string
	for v := range dst.Root().Walk(PreOrder) {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"root", "left", "leaf", "right"}, got)
	// deep copy: mutating the clone's payload leaves the source alone
	dst.RootMut().DataMut().runes[0] = 'R'
	assert.Equal(t, "root", src.Root().Data().String())
	assert.Equal(t, 4, src.Len(), "cloning leaves the source tree untouched")
}

func TestCopiedSubtreeAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	src, idx := scenarioTree()
	sub := src.Node(idx[3]).AsCopiedSubtree()
	//
	dst := New[int]()
	dst.PushRoot(0)
	grafted := dst.RootMut().AppendChildTree(sub)
	assert.Equal(t, []int{0, 3, 6, 7, 9, 10, 11}, bfsValues(dst))
	assert.Equal(t, 11, src.Len(), "copying leaves the source tree untouched")
	assert.True(t, Equal(src.Node(idx[3]), dst.Node(grafted)),
		"grafted subtree equals its source")
	checkLinkInvariants(t, dst)
}

func TestAppendCopiedSubtreeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	src, _ := scenarioTree()
	dst := New[int]()
	dst.PushRootTree(src.Root().AsCopiedSubtree())
	assert.True(t, Equal(src.Root(), dst.Root()))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, bfsValues(dst))
}

func TestMovedSubtreeAcrossTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	src, idx := scenarioTree()
	sub := src.NodeMutOf(idx[2]).IntoMovedSubtree()
	assert.Equal(t, 7, src.Len(), "moving out consumes the source subtree")
	assert.Equal(t, []int{1, 3, 6, 7, 9, 10, 11}, bfsValues(src))
	checkLinkInvariants(t, src)
	//
	dst := New[int]()
	dst.PushRoot(0)
	dst.RootMut().AppendChildTree(sub)
	assert.Equal(t, []int{0, 2, 4, 5, 8}, bfsValues(dst))
	checkLinkInvariants(t, dst)
}

// Within-tree move with cycle prevention: in
//
//	    0
//	   ╱ ╲
//	  1   2
//	 ╱|╲
//	3 4 5
//	  |
//	  6
//
// moving 1 under 4 must panic (1 is an ancestor of 4), then moving 3
// under 2 succeeds and only relocates the subtree.
func TestMoveWithinTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree := New[int]()
	tree.PushRoot(0)
	ids := tree.RootMut().PushChildren(1, 2)
	id1, id2 := ids[0], ids[1]
	ids = tree.NodeMutOf(id1).PushChildren(3, 4, 5)
	id3, id4 := ids[0], ids[1]
	tree.NodeMutOf(id4).PushChild(6)
	//
	assert.Panics(t, func() {
		sub := tree.NodeMutOf(id1).IntoSubtreeWithin()
		tree.NodeMutOf(id4).AppendChildTree(sub)
	}, "moving a node under its own descendant must panic")
	//
	sub := tree.NodeMutOf(id3).IntoSubtreeWithin()
	tree.NodeMutOf(id2).AppendChildTree(sub)
	assert.Equal(t, []int{0, 1, 2, 4, 5, 3, 6}, bfsValues(tree))
	assert.Equal(t, 7, tree.Len())
	checkLinkInvariants(t, tree)
	// a pure relink keeps indices valid
	n3, err := tree.TryNode(id3)
	require.NoError(t, err)
	assert.Equal(t, 3, n3.Data())
	p, _ := n3.Parent()
	assert.Equal(t, 2, p.Data())
}

func TestMoveUnderItselfPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree, idx := scenarioTree()
	assert.Panics(t, func() {
		sub := tree.NodeMutOf(idx[5]).IntoSubtreeWithin()
		tree.NodeMutOf(idx[5]).AppendChildTree(sub)
	})
}

func TestWithinTreeSubtreeRejectsForeignTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	tree, idx := scenarioTree()
	other := New[int]()
	other.PushRoot(0)
	assert.Panics(t, func() {
		sub := tree.NodeMutOf(idx[5]).IntoSubtreeWithin()
		other.RootMut().AppendChildTree(sub)
	})
}
