package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/treegraft/treegraft/pkg/forest"
)

// Parse decodes a single Newick tree. The returned tree is rooted at the
// outermost group. Trailing whitespace after the terminating semicolon is
// ignored; anything else is an error.
func Parse(input string) (*forest.Tree[Label], error) {
	p := &parser{src: input, tree: forest.New[Label]()}
	p.skipSpace()
	if p.eof() {
		return nil, ErrEmptyInput
	}
	root, err := p.subtree(forest.None)
	if err != nil {
		return nil, err
	}
	if !p.consume(';') {
		return nil, p.errf("expected ';'")
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errf("trailing input after tree")
	}
	p.tree.SetRoot(root)
	return p.tree, nil
}

type parser struct {
	src  string
	pos  int
	tree *forest.Tree[Label]
}

// subtree parses one node: either a parenthesized child list or a bare
// leaf, both followed by an optional name and branch length. The fresh
// node is connected to parent unless parent is None.
func (p *parser) subtree(parent forest.NodeID) (forest.NodeID, error) {
	v := p.tree.NewNode()
	if parent != forest.None {
		p.tree.AddEdge(parent, v)
	}
	if p.consume('(') {
		for {
			if _, err := p.subtree(v); err != nil {
				return forest.None, err
			}
			if p.consume(',') {
				continue
			}
			break
		}
		if !p.consume(')') {
			return forest.None, p.errf("expected ')' or ','")
		}
	}
	label, err := p.label()
	if err != nil {
		return forest.None, err
	}
	p.tree.SetValue(v, label)
	return v, nil
}

// label parses an optional name and an optional ":length" suffix.
func (p *parser) label() (Label, error) {
	var l Label
	p.skipSpace()
	if !p.eof() && p.src[p.pos] == '\'' {
		name, err := p.quotedName()
		if err != nil {
			return Label{}, err
		}
		l.Name = name
	} else {
		l.Name = p.bareName()
	}
	if p.consume(':') {
		p.skipSpace()
		start := p.pos
		for !p.eof() && isNumberChar(p.src[p.pos]) {
			p.pos++
		}
		length, err := strconv.ParseFloat(p.src[start:p.pos], 64)
		if err != nil {
			return Label{}, p.errf("invalid branch length %q", p.src[start:p.pos])
		}
		l.Length = length
		l.HasLength = true
	}
	return l, nil
}

// bareName reads an unquoted name: anything up to a structural character.
func (p *parser) bareName() string {
	start := p.pos
	for !p.eof() && !strings.ContainsRune("(),:;' \t\r\n", rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// quotedName reads a single-quoted name with '' as an escaped quote.
func (p *parser) quotedName() (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '\'' {
				b.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", p.errf("unterminated quoted name")
}

func (p *parser) consume(c byte) bool {
	p.skipSpace()
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func isNumberChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}
