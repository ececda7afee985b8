package msa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phylo/seq"
	"phylo/submat"
)

func testAligner() ProfileAligner {
	return ProfileAligner{
		Matrix:    submat.ByID(submat.BLOSUM62).Shifted(),
		GapOpen:   10.0,
		GapExtend: 0.2,
	}
}

func TestAlignSelfIsGapless(t *testing.T) {
	s := seq.New("a", "MKTAYIAKQR")
	a := FromSequence(s)
	b := FromSequence(seq.New("b", s.Residues))

	merged := testAligner().Align(a, b)
	require.Equal(t, 2, merged.Size())
	assert.Equal(t, s.Residues, merged.Row(0).Residues)
	assert.Equal(t, s.Residues, merged.Row(1).Residues)
}

func TestAlignRowsShareLength(t *testing.T) {
	a := FromSequence(seq.New("a", "MKTAYIAKQRQISFVKSHFSRQL"))
	b := FromSequence(seq.New("b", "MKTAYIAKQR"))

	merged := testAligner().Align(a, b)
	require.Equal(t, 2, merged.Size())
	length := merged.Length()
	for i := 0; i < merged.Size(); i++ {
		assert.Equal(t, length, merged.Row(i).Len(), "row %d", i)
	}
	assert.Equal(t, "MKTAYIAKQRQISFVKSHFSRQL", strings.ReplaceAll(merged.Row(0).Residues, "-", ""))
	assert.Equal(t, "MKTAYIAKQR", strings.ReplaceAll(merged.Row(1).Residues, "-", ""))
}

func TestAlignKeepsProfileColumns(t *testing.T) {
	// Rows already aligned to each other must move together.
	a, err := NewProfile(
		seq.New("a1", "MKTA-Y"),
		seq.New("a2", "MKTAAY"),
	)
	require.NoError(t, err)
	b := FromSequence(seq.New("b", "MKTAY"))

	merged := testAligner().Align(a, b)
	require.Equal(t, 3, merged.Size())

	// Wherever row a1 kept a residue of MKTAY, row a2 kept the matching one.
	r1 := strings.ReplaceAll(merged.Row(0).Residues, "-", "")
	r2 := strings.ReplaceAll(merged.Row(1).Residues, "-", "")
	assert.Equal(t, "MKTAY", r1)
	assert.Equal(t, "MKTAAY", r2)
}

func TestAlignEmptyProfile(t *testing.T) {
	a := FromSequence(seq.New("a", ""))
	b := FromSequence(seq.New("b", "ACD"))

	merged := testAligner().Align(a, b)
	require.Equal(t, 2, merged.Size())
	assert.Equal(t, "---", merged.Row(0).Residues)
	assert.Equal(t, "ACD", merged.Row(1).Residues)
}

func TestAlignTrailingGapPlacement(t *testing.T) {
	// When several paths score the same, the extra column goes to the
	// right edge rather than opening an interior gap.
	merged := testAligner().Align(
		FromSequence(seq.New("a", "AA")),
		FromSequence(seq.New("b", "AAA")),
	)
	require.Equal(t, 2, merged.Size())
	assert.Equal(t, "AA-", merged.Row(0).Residues)
	assert.Equal(t, "AAA", merged.Row(1).Residues)
}

func TestPositionGOPNearGap(t *testing.T) {
	pa := testAligner()
	b := FromSequence(seq.New("b", "MKTAYIAKQRQIS"))

	// A gap three columns away scales the penalty, and the residue
	// propensity of the column still applies on top of it.
	a, err := NewProfile(seq.New("a", "AILV-AILVAILA"))
	require.NoError(t, err)
	igop := pa.initialGOP(a, b)
	assert.InDelta(t, igop*(4-3.0/4)*1.21, pa.positionGOP(a, b, 7), 1e-9)

	// Inside a hydrophilic stretch the two-thirds discount replaces the
	// propensity factor.
	a, err = NewProfile(seq.New("a", "DEGKNQ-AILVAIL"))
	require.NoError(t, err)
	igop = pa.initialGOP(a, b)
	assert.InDelta(t, igop*(4-1.0/4)*2/3, pa.positionGOP(a, b, 5), 1e-9)

	// Far from any gap only the column propensity remains.
	a, err = NewProfile(seq.New("a", "AILVAILVAILA"))
	require.NoError(t, err)
	igop = pa.initialGOP(a, b)
	assert.InDelta(t, igop*1.32, pa.positionGOP(a, b, 5), 1e-9)
}

func TestGapOpenMonotonicity(t *testing.T) {
	// Raising the open penalty never decreases the number of gapless columns.
	seqs := []seq.Sequence{
		seq.New("a", "MKTAYIAKQRQISFVKSHFSRQL"),
		seq.New("b", "MKTAIAKQRNISFVKSHFSAQL"),
		seq.New("c", "MKTAYIAKRQISFVKSHFSRL"),
	}
	gapless := func(open float64) int {
		cw := ClustalW{
			Metric:     identityMetricForTest(),
			Clustering: testClustering(),
			Family:     BLOSUMFamily,
			GapOpen:    open,
			GapExtend:  0.2,
		}
		p, err := cw.Align(seqs)
		require.NoError(t, err)
		n := 0
		for pos := 0; pos < p.Length(); pos++ {
			if p.GapCount(pos) == 0 {
				n++
			}
		}
		return n
	}

	low := gapless(2.0)
	high := gapless(20.0)
	assert.GreaterOrEqual(t, high, low)
}
