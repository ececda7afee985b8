package msa

import (
	"fmt"

	"phylo/seq"
	"phylo/tree"
)

// Scheduler produces a multiple alignment from a set of sequences.
type Scheduler interface {
	Align(sequences []seq.Sequence) (*Profile, error)
}

// foldGuideTree walks the guide tree in post order with an explicit stack
// (deep guide trees must not exhaust the call stack) and merges child
// profiles pairwise, left to right, at every internal node.
func foldGuideTree(guide *tree.Rooted, leaf func(label string) (*Profile, error), combine func(node int, a, b *Profile) *Profile) (*Profile, error) {
	root := guide.Root()
	if root == tree.None {
		return &Profile{}, nil
	}

	order := make([]int, 0, guide.Size())
	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = append(stack, guide.Children(n)...)
	}

	profiles := make(map[int]*Profile, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		children := guide.Children(n)
		if len(children) == 0 {
			p, err := leaf(guide.Label(n))
			if err != nil {
				return nil, err
			}
			profiles[n] = p
			continue
		}
		acc := profiles[children[0]]
		for _, c := range children[1:] {
			acc = combine(n, acc, profiles[c])
		}
		profiles[n] = acc
		for _, c := range children {
			delete(profiles, c)
		}
	}
	return profiles[root], nil
}

// leafLookup resolves guide-tree leaf labels back to input sequences.
func leafLookup(sequences []seq.Sequence) func(label string) (*Profile, error) {
	byID := make(map[string]seq.Sequence, len(sequences))
	for _, s := range sequences {
		byID[s.ID] = s
	}
	return func(label string) (*Profile, error) {
		s, ok := byID[label]
		if !ok {
			return nil, fmt.Errorf("msa: guide tree leaf %q does not name an input sequence", label)
		}
		return FromSequence(s), nil
	}
}
