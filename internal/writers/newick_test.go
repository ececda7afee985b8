package writers

import (
	"bytes"
	"testing"

	"phylo/tree"
)

func TestWriteNewick(t *testing.T) {
	r, err := tree.ParseNewick("(A:0.5,B:0.25);")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteNewick(&buf, r); err != nil {
		t.Fatalf("WriteNewick: %v", err)
	}
	if got := buf.String(); got != "(A:0.5,B:0.25);\n" {
		t.Errorf("output = %q", got)
	}
}

func TestWriteNewickEmptyTree(t *testing.T) {
	r, err := tree.ParseNewick(";")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteNewick(&buf, r); err != nil {
		t.Fatalf("WriteNewick: %v", err)
	}
	if got := buf.String(); got != ";\n" {
		t.Errorf("output = %q", got)
	}
}
