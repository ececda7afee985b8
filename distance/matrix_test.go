package distance

import (
	"math"
	"testing"
)

func newABC() *Matrix {
	m := NewMatrix()
	m.AddOTU("A")
	m.AddOTU("B")
	m.AddOTU("C")
	m.SetDistance("A", "B", 0.1)
	m.SetDistance("A", "C", 9.5)
	m.SetDistance("B", "C", 0.333)
	return m
}

func TestMatrixLookups(t *testing.T) {
	m := newABC()

	if got := m.Size(); got != 3 {
		t.Errorf("Size = %d, want 3", got)
	}
	if got := m.Max(); got != 9.5 {
		t.Errorf("Max = %v, want 9.5", got)
	}
	if got := m.Min(); got != 0.1 {
		t.Errorf("Min = %v, want 0.1", got)
	}
	if got := m.Distance("B", "A"); got != 0.1 {
		t.Errorf("Distance(B,A) = %v, want 0.1 (symmetry)", got)
	}
	if got := m.Distance("A", "A"); got != 0 {
		t.Errorf("Distance(A,A) = %v, want 0", got)
	}
}

func TestMatrixSymmetryAfterUpdates(t *testing.T) {
	m := newABC()
	m.SetDistance("C", "A", 2.5)
	if m.Distance("A", "C") != 2.5 || m.Distance("C", "A") != 2.5 {
		t.Error("overwrite must stay symmetric")
	}
	m.RemoveOTU("B")
	if m.Size() != 2 {
		t.Errorf("Size after remove = %d, want 2", m.Size())
	}
	if m.HasOTU("B") {
		t.Error("B should be gone")
	}
	if m.Distance("A", "C") != 2.5 {
		t.Error("unrelated pair must survive a remove")
	}
}

func TestMatrixUnknownPairIsInfinity(t *testing.T) {
	m := NewMatrix()
	m.AddOTU("A")
	m.AddOTU("B")
	if got := m.Distance("A", "B"); got != Infinity {
		t.Errorf("unknown pair = %v, want Infinity", got)
	}
}

func TestMatrixMinMaxPairs(t *testing.T) {
	m := newABC()
	a, b := m.MinPair()
	if a != "A" && b != "A" {
		t.Errorf("MinPair = %s,%s, want the A-B pair", a, b)
	}
	if m.Distance(a, b) != 0.1 {
		t.Errorf("MinPair distance = %v", m.Distance(a, b))
	}
	a, b = m.MaxPair()
	if m.Distance(a, b) != 9.5 {
		t.Errorf("MaxPair distance = %v", m.Distance(a, b))
	}
}

func TestMatrixIsEmpty(t *testing.T) {
	m := NewMatrix()
	if !m.IsEmpty() {
		t.Error("fresh matrix should be empty")
	}
	m.AddOTU("A")
	if !m.IsEmpty() {
		t.Error("single-OTU matrix counts as empty")
	}
	m.AddOTU("B")
	if m.IsEmpty() {
		t.Error("two OTUs are not empty")
	}
}

func TestMatrixClone(t *testing.T) {
	m := newABC()
	c := m.Clone()
	c.SetDistance("A", "B", 7)
	if m.Distance("A", "B") != 0.1 {
		t.Error("clone must not share storage")
	}
	if math.Abs(c.Distance("A", "B")-7) > 1e-12 {
		t.Error("clone update lost")
	}
}
