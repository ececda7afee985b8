// Package distance provides pairwise distance metrics for protein sequences
// and a symmetric distance matrix over labelled OTUs.
package distance

import (
	"math"
	"sort"
)

// Infinity is reported for pairs with no recorded distance.
const Infinity = math.MaxFloat64

type pairKey struct{ a, b string }

// Matrix is a distance matrix over named OTUs. Distances are symmetric and
// stored once per pair; self distances are always zero. Minimum and maximum
// scans visit entries in lexicographic key order, and on ties the last entry
// visited wins.
type Matrix struct {
	otus map[string]struct{}
	dist map[pairKey]float64
}

// NewMatrix returns an empty distance matrix.
func NewMatrix() *Matrix {
	return &Matrix{
		otus: make(map[string]struct{}),
		dist: make(map[pairKey]float64),
	}
}

// AddOTU registers an OTU; distances to it stay unset.
func (m *Matrix) AddOTU(name string) { m.otus[name] = struct{}{} }

// RemoveOTU drops an OTU and every stored distance involving it.
func (m *Matrix) RemoveOTU(name string) {
	delete(m.otus, name)
	for k := range m.dist {
		if k.a == name || k.b == name {
			delete(m.dist, k)
		}
	}
}

// HasOTU reports whether name is a registered OTU.
func (m *Matrix) HasOTU(name string) bool {
	_, ok := m.otus[name]
	return ok
}

// Size returns the number of registered OTUs.
func (m *Matrix) Size() int { return len(m.otus) }

// IsEmpty reports whether fewer than two OTUs remain, that is whether there
// is nothing left to cluster.
func (m *Matrix) IsEmpty() bool { return len(m.otus) <= 1 }

// OTUs returns the registered OTU names in sorted order.
func (m *Matrix) OTUs() []string {
	names := make([]string, 0, len(m.otus))
	for name := range m.otus {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Matrix) stored(a, b string) (float64, bool) {
	d, ok := m.dist[pairKey{a, b}]
	return d, ok
}

// Distance returns the distance between a and b: zero when a == b,
// Infinity when the pair was never set.
func (m *Matrix) Distance(a, b string) float64 {
	if a == b {
		return 0
	}
	if d, ok := m.stored(a, b); ok {
		return d
	}
	if d, ok := m.stored(b, a); ok {
		return d
	}
	return Infinity
}

// SetDistance records the distance between a and b, registering both OTUs.
// A fresh pair is stored under the reversed key; an existing entry is
// overwritten in place whichever orientation it has.
func (m *Matrix) SetDistance(a, b string, d float64) {
	m.otus[a] = struct{}{}
	m.otus[b] = struct{}{}
	key := pairKey{b, a}
	if _, ok := m.stored(a, b); ok {
		key = pairKey{a, b}
	}
	m.dist[key] = d
}

// Unset removes the stored distance between a and b, either orientation.
func (m *Matrix) Unset(a, b string) {
	delete(m.dist, pairKey{a, b})
	delete(m.dist, pairKey{b, a})
}

// sortedKeys returns the stored pair keys in lexicographic order.
func (m *Matrix) sortedKeys() []pairKey {
	keys := make([]pairKey, 0, len(m.dist))
	for k := range m.dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
	return keys
}

// Min returns the smallest stored distance, or Infinity when none is set.
func (m *Matrix) Min() float64 {
	min := Infinity
	for _, k := range m.sortedKeys() {
		if d := m.dist[k]; d <= min {
			min = d
		}
	}
	return min
}

// MinPair returns the pair holding the smallest stored distance.
func (m *Matrix) MinPair() (string, string) {
	min := Infinity
	var best pairKey
	for _, k := range m.sortedKeys() {
		if d := m.dist[k]; d <= min {
			min, best = d, k
		}
	}
	return best.a, best.b
}

// Max returns the largest stored distance, or -Infinity when none is set.
func (m *Matrix) Max() float64 {
	max := -Infinity
	for _, k := range m.sortedKeys() {
		if d := m.dist[k]; d >= max {
			max = d
		}
	}
	return max
}

// MaxPair returns the pair holding the largest stored distance.
func (m *Matrix) MaxPair() (string, string) {
	max := -Infinity
	var best pairKey
	for _, k := range m.sortedKeys() {
		if d := m.dist[k]; d >= max {
			max, best = d, k
		}
	}
	return best.a, best.b
}

// Clone returns an independent copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix()
	for name := range m.otus {
		out.otus[name] = struct{}{}
	}
	for k, d := range m.dist {
		out.dist[k] = d
	}
	return out
}
