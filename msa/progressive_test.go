package msa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phylo/seq"
	"phylo/tree"
)

func TestFoldGuideTreePostOrder(t *testing.T) {
	// ((A,B),C): the A+B merge must happen before the merge with C.
	guide, err := tree.ParseNewick("((A,B),C);")
	require.NoError(t, err)

	var merges [][2]string
	leaf := leafLookup([]seq.Sequence{
		seq.New("A", "MK"),
		seq.New("B", "MK"),
		seq.New("C", "MK"),
	})
	p, err := foldGuideTree(guide, leaf, func(node int, a, b *Profile) *Profile {
		merges = append(merges, [2]string{a.Row(0).ID, b.Row(0).ID})
		return testAligner().Align(a, b)
	})
	require.NoError(t, err)

	require.Len(t, merges, 2)
	assert.Equal(t, [2]string{"A", "B"}, merges[0])
	assert.Equal(t, [2]string{"A", "C"}, merges[1])
	assert.Equal(t, 3, p.Size())
}

func TestFoldGuideTreeMultiwayNode(t *testing.T) {
	guide, err := tree.ParseNewick("(A,B,C,D);")
	require.NoError(t, err)

	leaf := leafLookup([]seq.Sequence{
		seq.New("A", "MK"),
		seq.New("B", "MK"),
		seq.New("C", "MK"),
		seq.New("D", "MK"),
	})
	count := 0
	p, err := foldGuideTree(guide, leaf, func(node int, a, b *Profile) *Profile {
		count++
		return testAligner().Align(a, b)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count, "n children fold in n-1 merges")
	assert.Equal(t, 4, p.Size())
}

func TestFoldGuideTreeUnknownLeaf(t *testing.T) {
	guide, err := tree.ParseNewick("(A,B);")
	require.NoError(t, err)

	leaf := leafLookup([]seq.Sequence{seq.New("A", "MK")})
	_, err = foldGuideTree(guide, leaf, func(node int, a, b *Profile) *Profile { return a })
	require.Error(t, err)
}

func TestFoldGuideTreeSingleLeaf(t *testing.T) {
	guide, err := tree.ParseNewick("A;")
	require.NoError(t, err)

	leaf := leafLookup([]seq.Sequence{seq.New("A", "MK")})
	p, err := foldGuideTree(guide, leaf, func(node int, a, b *Profile) *Profile { return a })
	require.NoError(t, err)
	assert.Equal(t, 1, p.Size())
}
