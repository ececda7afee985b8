package msa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phylo/align"
	"phylo/cluster"
	"phylo/distance"
	"phylo/seq"
	"phylo/submat"
)

func fiveTestSequences() []seq.Sequence {
	return []seq.Sequence{
		seq.New("Seq1", "MAAAAATLRGAMVGPRGAGLP"),
		seq.New("Seq2", "MAAAAASLRGVVLGPRGAGL"),
		seq.New("Seq3", "MTEFKAGSAKKGATLFKTRCL"),
		seq.New("Seq4", "MAAAAASLRRTVLGPRGVGLPGASAPGLL"),
		seq.New("Seq5", "MFSQKLLANGKLLSKLAIVSGVVG"),
	}
}

func identityMetricForTest() distance.Metric {
	return distance.IdentityPercentage{
		Matrix: submat.ByID(submat.BLOSUM62),
		Gap:    align.AffineGap{Open: 10.0, Extend: 0.2},
	}
}

func testClustering() cluster.Algorithm { return cluster.NeighborJoining{} }

func TestClustalWConsensus(t *testing.T) {
	cw := ClustalW{
		Metric:     identityMetricForTest(),
		Clustering: testClustering(),
		Family:     BLOSUMFamily,
		GapOpen:    10.0,
		GapExtend:  0.1,
	}

	p, err := cw.Align(fiveTestSequences())
	require.NoError(t, err)

	// See DESIGN.md on the consensus for this fixture.
	assert.Equal(t, "MAAAAASLRGAVLGPRGAGLPGASAPGCL", p.ConsensusString())

	rows := map[string]string{}
	for i := 0; i < p.Size(); i++ {
		rows[p.Row(i).ID] = p.Row(i).Residues
	}
	assert.Equal(t, "MT---EFKAGSAKKGATL-FKTR----CL", rows["Seq3"])
	assert.Equal(t, "MFSQKLLANGKLLSKLAI-VSGV----VG", rows["Seq5"])
	assert.Equal(t, "MAAAAASLRRTVLGPRGVGLPGASAPGLL", rows["Seq4"])
	assert.Equal(t, "MAAAAASLRGVVLGPRGA-GL--------", rows["Seq2"])
	assert.Equal(t, "MAAAAATLRGAMVGPRGAGLP--------", rows["Seq1"])
}

func TestClustalWSequenceWeights(t *testing.T) {
	d := distance.Build(fiveTestSequences(), identityMetricForTest())
	guide := testClustering().Cluster(d).Rooted()
	w := sequenceWeights(guide)

	// The most divergent sequence anchors the scale; each leaf branch
	// counts twice (once whole, once as its own one-leaf share).
	assert.InDelta(t, 1.0, w["Seq5"], 1e-6)
	assert.InDelta(t, 0.902879, w["Seq3"], 1e-4)
	assert.InDelta(t, 0.653693, w["Seq4"], 1e-4)
	assert.InDelta(t, 0.422420, w["Seq1"], 1e-4)
	assert.InDelta(t, 0.295787, w["Seq2"], 1e-4)
}

func TestClustalWStructure(t *testing.T) {
	cw := ClustalW{
		Metric:     identityMetricForTest(),
		Clustering: testClustering(),
		Family:     BLOSUMFamily,
		GapOpen:    10.0,
		GapExtend:  0.1,
	}

	seqs := fiveTestSequences()
	p, err := cw.Align(seqs)
	require.NoError(t, err)

	require.Equal(t, len(seqs), p.Size())
	length := p.Length()
	byID := map[string]string{}
	for i := 0; i < p.Size(); i++ {
		row := p.Row(i)
		assert.Equal(t, length, row.Len(), "row %s", row.ID)
		byID[row.ID] = strings.ReplaceAll(row.Residues, "-", "")
	}
	// Every input survives with its residues intact.
	for _, s := range seqs {
		assert.Equal(t, s.Residues, byID[s.ID], "sequence %s", s.ID)
	}
}

func TestClustalWSmallInputs(t *testing.T) {
	cw := ClustalW{
		Metric:     identityMetricForTest(),
		Clustering: testClustering(),
		Family:     BLOSUMFamily,
		GapOpen:    10.0,
		GapExtend:  0.1,
	}

	pair := []seq.Sequence{
		seq.New("a", "MKTAYIAKQR"),
		seq.New("b", "MKTAYIAKQR"),
	}
	p, err := cw.Align(pair)
	require.NoError(t, err)
	require.Equal(t, 2, p.Size())
	// Identical sequences align without gaps.
	assert.Equal(t, "MKTAYIAKQR", p.Row(0).Residues)
	assert.Equal(t, "MKTAYIAKQR", p.Row(1).Residues)

	single, err := cw.Align([]seq.Sequence{seq.New("a", "MKTAY")})
	require.NoError(t, err)
	assert.Equal(t, 1, single.Size())
}

func TestClustalWFamilies(t *testing.T) {
	for _, family := range []Family{PAMFamily, BLOSUMFamily} {
		cw := ClustalW{
			Metric:     identityMetricForTest(),
			Clustering: cluster.UPGMA{},
			Family:     family,
			GapOpen:    10.0,
			GapExtend:  0.1,
		}
		p, err := cw.Align(fiveTestSequences())
		require.NoError(t, err)
		assert.Equal(t, 5, p.Size())
	}
}
