package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNewick parses a Newick string into a rooted tree. The closing
// semicolon is optional; a bare ";" or an empty string yields the empty
// tree. Labels may be double-quoted to carry special characters.
func ParseNewick(input string) (*Rooted, error) {
	p := &newickParser{src: input, tree: NewRooted()}
	p.ws()
	if !p.eof() && p.peek() != ';' {
		if _, err := p.parseTree(); err != nil {
			return nil, err
		}
	}
	p.ws()
	if !p.eof() && p.peek() == ';' {
		p.pos++
	}
	p.ws()
	if !p.eof() {
		return nil, fmt.Errorf("newick: trailing input at offset %d", p.pos)
	}
	return p.tree, nil
}

// ParseNewickUnrooted parses a Newick string and flattens the root away.
func ParseNewickUnrooted(input string) (*Unrooted, error) {
	rt, err := ParseNewick(input)
	if err != nil {
		return nil, err
	}
	return rt.Unrooted(), nil
}

type newickParser struct {
	src  string
	pos  int
	tree *Rooted
}

func (p *newickParser) eof() bool { return p.pos >= len(p.src) }

func (p *newickParser) peek() byte { return p.src[p.pos] }

func (p *newickParser) ws() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *newickParser) parseTree() (int, error) {
	p.ws()
	if p.eof() {
		return None, fmt.Errorf("newick: unexpected end of input")
	}

	switch p.peek() {
	case '(':
		p.pos++
		first, err := p.parseTree()
		if err != nil {
			return None, err
		}
		node := p.tree.NewNode("")
		p.tree.AddChild(node, first)
		p.ws()
		for !p.eof() && p.peek() == ',' {
			p.pos++
			child, err := p.parseTree()
			if err != nil {
				return None, err
			}
			p.tree.AddChild(node, child)
			p.ws()
		}
		if p.eof() || p.peek() != ')' {
			return None, fmt.Errorf("newick: missing ')' at offset %d", p.pos)
		}
		p.pos++
		label, err := p.parseLabel()
		if err != nil {
			return None, err
		}
		p.tree.SetLabel(node, label)
		if err := p.parseLength(node); err != nil {
			return None, err
		}
		return node, nil

	case ':':
		node := p.tree.NewNode("")
		if err := p.parseLength(node); err != nil {
			return None, err
		}
		return node, nil

	default:
		label, err := p.parseLabel()
		if err != nil {
			return None, err
		}
		node := p.tree.NewNode(label)
		if err := p.parseLength(node); err != nil {
			return None, err
		}
		return node, nil
	}
}

// parseLength consumes an optional ":number" suffix.
func (p *newickParser) parseLength(node int) error {
	p.ws()
	if p.eof() || p.peek() != ':' {
		return nil
	}
	p.pos++
	p.ws()
	start := p.pos
	for !p.eof() && strings.IndexByte("0123456789+-.eE", p.peek()) >= 0 {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return fmt.Errorf("newick: bad branch length at offset %d", start)
	}
	p.tree.SetLength(node, v)
	return nil
}

// parseLabel consumes an optional label: a double-quoted literal or a run
// of characters outside the Newick specials.
func (p *newickParser) parseLabel() (string, error) {
	p.ws()
	if p.eof() {
		return "", nil
	}
	if p.peek() == '"' {
		p.pos++
		start := p.pos
		for !p.eof() && p.peek() != '"' {
			p.pos++
		}
		if p.eof() {
			return "", fmt.Errorf("newick: unterminated quoted label at offset %d", start-1)
		}
		label := p.src[start:p.pos]
		p.pos++
		return label, nil
	}
	start := p.pos
	for !p.eof() && strings.IndexByte("();,: \t\n\r", p.peek()) < 0 {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// quoteLabel wraps labels holding Newick specials in double quotes so they
// survive a round-trip.
func quoteLabel(label string) string {
	if strings.ContainsAny(label, "();,:\" \t\n\r") {
		return `"` + label + `"`
	}
	return label
}
