// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"phylo/align"
	"phylo/cluster"
	"phylo/distance"
	"phylo/internal/writers"
	"phylo/msa"
	"phylo/pkg/api"
	"phylo/seq"
	"phylo/submat"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(api.ErrorV1{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// scoring resolves the shared scoring options, applying CLI defaults.
func scoring(s api.ScoringV1) (submat.Matrix, align.AffineGap) {
	m := submat.ByID(submat.ParseID(s.Matrix))
	gap := align.AffineGap{Open: s.GapOpen, Extend: s.GapExtend}
	if gap.Open == 0 {
		gap.Open = 10.0
	}
	if gap.Extend == 0 {
		gap.Extend = 0.1
	}
	return m, gap
}

func toSequences(in []api.SequenceV1) []seq.Sequence {
	out := make([]seq.Sequence, len(in))
	for i, s := range in {
		out[i] = seq.New(s.ID, s.Residues)
	}
	return out
}

func metricFor(name string, m submat.Matrix, gap align.AffineGap, seed int64) (distance.Metric, bool) {
	switch strings.ToLower(name) {
	case "", "identity":
		return distance.IdentityPercentage{Matrix: m, Gap: gap}, true
	case "levenshtein":
		return distance.Levenshtein{}, true
	case "fengdoolittle", "feng-doolittle":
		return distance.FengDoolittle{Matrix: m, Gap: gap, Seed: seed}, true
	}
	return nil, false
}

func clusteringFor(name string) (cluster.Algorithm, bool) {
	switch strings.ToLower(name) {
	case "", "nj", "neighbor-joining":
		return cluster.NeighborJoining{}, true
	case "upgma":
		return cluster.UPGMA{}, true
	case "fm", "fitch-margoliash":
		return cluster.FitchMargoliash{}, true
	}
	return nil, false
}

// GlobalAlignHandler aligns two sequences with affine gap penalties.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req api.PairwiseRequestV1
	if !decode(w, r, &req) {
		return
	}
	m, gap := scoring(req.ScoringV1)
	res := align.Global(
		seq.New(req.Sequence1.ID, req.Sequence1.Residues),
		seq.New(req.Sequence2.ID, req.Sequence2.Residues),
		m, gap,
	)
	writeJSON(w, api.PairwiseV1{
		Aligned1: res.A.Residues,
		Aligned2: res.B.Residues,
		Score:    res.Score,
	})
}

// DistanceMatrixHandler computes all pairwise distances.
func DistanceMatrixHandler(w http.ResponseWriter, r *http.Request) {
	var req api.DistanceRequestV1
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) < 2 {
		writeError(w, http.StatusBadRequest, "at least two sequences are required")
		return
	}
	m, gap := scoring(req.ScoringV1)
	metric, ok := metricFor(req.Metric, m, gap, req.Seed)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown metric "+req.Metric)
		return
	}

	d := distance.Build(toSequences(req.Sequences), metric)
	labels := d.OTUs()
	rows := make([][]float64, len(labels))
	for i, a := range labels {
		rows[i] = make([]float64, len(labels))
		for j, b := range labels {
			rows[i][j] = d.Distance(a, b)
		}
	}
	writeJSON(w, api.DistanceMatrixV1{Labels: labels, Distances: rows})
}

// TreeHandler builds a phylogenetic tree and returns its Newick form.
func TreeHandler(w http.ResponseWriter, r *http.Request) {
	var req api.TreeRequestV1
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) < 2 {
		writeError(w, http.StatusBadRequest, "at least two sequences are required")
		return
	}
	m, gap := scoring(req.ScoringV1)
	metric, ok := metricFor(req.Metric, m, gap, req.Seed)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown metric "+req.Metric)
		return
	}
	algo, ok := clusteringFor(req.Clustering)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown clustering "+req.Clustering)
		return
	}

	d := distance.Build(toSequences(req.Sequences), metric)
	t := algo.Cluster(d)
	writeJSON(w, api.TreeV1{Newick: t.Newick() + ";"})
}

// ClustalWHandler runs the progressive ClustalW alignment.
func ClustalWHandler(w http.ResponseWriter, r *http.Request) {
	var req api.MSARequestV1
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) < 2 {
		writeError(w, http.StatusBadRequest, "at least two sequences are required")
		return
	}
	m, gap := scoring(req.ScoringV1)
	metric, ok := metricFor(req.Metric, m, gap, req.Seed)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown metric "+req.Metric)
		return
	}
	algo, ok := clusteringFor(req.Clustering)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown clustering "+req.Clustering)
		return
	}
	family := msa.BLOSUMFamily
	switch strings.ToLower(req.Family) {
	case "", "blosum":
	case "pam":
		family = msa.PAMFamily
	default:
		writeError(w, http.StatusBadRequest, "unknown family "+req.Family)
		return
	}

	open, extend := req.GapOpen, req.GapExtend
	if open == 0 {
		open = 10.0
	}
	if extend == 0 {
		extend = 0.2
	}
	cw := msa.ClustalW{
		Metric:     metric,
		Clustering: algo,
		Family:     family,
		GapOpen:    open,
		GapExtend:  extend,
	}
	profile, err := cw.Align(toSequences(req.Sequences))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, msaResponse(profile))
}

// FengDoolittleHandler runs the Feng-Doolittle progressive alignment.
func FengDoolittleHandler(w http.ResponseWriter, r *http.Request) {
	var req api.MSARequestV1
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) < 2 {
		writeError(w, http.StatusBadRequest, "at least two sequences are required")
		return
	}
	open, extend := req.GapOpen, req.GapExtend
	if open == 0 {
		open = 10.0
	}
	if extend == 0 {
		extend = 0.1
	}
	fd := msa.FengDoolittle{GapOpen: open, GapExtend: extend, Seed: req.Seed}
	profile, err := fd.Align(toSequences(req.Sequences))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, msaResponse(profile))
}

func msaResponse(p *msa.Profile) api.MSAV1 {
	rows := make([]api.SequenceV1, p.Size())
	for i, row := range p.Rows() {
		rows[i] = api.SequenceV1{ID: row.ID, Residues: row.Residues}
	}
	var sb strings.Builder
	_ = writers.WriteClustal(&sb, p)
	return api.MSAV1{
		Rows:            rows,
		Consensus:       p.ConsensusString(),
		PercentIdentity: p.PercentIdentity(),
		Clustal:         sb.String(),
	}
}
