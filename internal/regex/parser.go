package regex

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/dfakit/internal/automaton"
)

// Kind classifies a Node.
type Kind int

const (
	KindSymbol Kind = iota
	KindEpsilon
	KindEmpty
	KindAlt
	KindConcat
	KindStar
)

// Node is a parsed expression. Alt and Concat nodes have two or more Subs,
// Star nodes exactly one.
type Node struct {
	Kind   Kind
	Symbol byte
	Subs   []*Node
}

// SyntaxError reports where parsing failed.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex: %s at offset %d", e.Msg, e.Pos)
}

type parser struct {
	src string
	pos int
}

// Parse parses an expression.
func Parse(expr string) (*Node, error) {
	p := &parser{src: expr}
	p.skipBlanks()
	if p.eof() {
		return nil, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}
	n, err := p.alt()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected %q", p.peek())}
	}
	return n, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) skipBlanks() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t' || p.peek() == '\n') {
		p.pos++
	}
}

// accept consumes c if it is the next non-blank byte.
func (p *parser) accept(c byte) bool {
	p.skipBlanks()
	if !p.eof() && p.peek() == c {
		p.pos++
		p.skipBlanks()
		return true
	}
	return false
}

func startsAtom(c byte) bool {
	return c == '(' || c == '$' || c == '#' || automaton.InAlphabet(c)
}

func (p *parser) alt() (*Node, error) {
	first, err := p.concat()
	if err != nil {
		return nil, err
	}
	subs := []*Node{first}
	for p.accept('+') {
		next, err := p.concat()
		if err != nil {
			return nil, err
		}
		subs = append(subs, next)
	}
	if len(subs) == 1 {
		return first, nil
	}
	return &Node{Kind: KindAlt, Subs: subs}, nil
}

func (p *parser) concat() (*Node, error) {
	first, err := p.star()
	if err != nil {
		return nil, err
	}
	subs := []*Node{first}
	for {
		if p.accept('.') {
			next, err := p.star()
			if err != nil {
				return nil, err
			}
			subs = append(subs, next)
			continue
		}
		if !p.eof() && startsAtom(p.peek()) {
			next, err := p.star()
			if err != nil {
				return nil, err
			}
			subs = append(subs, next)
			continue
		}
		break
	}
	if len(subs) == 1 {
		return first, nil
	}
	return &Node{Kind: KindConcat, Subs: subs}, nil
}

func (p *parser) star() (*Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.accept('*') {
		n = &Node{Kind: KindStar, Subs: []*Node{n}}
	}
	return n, nil
}

func (p *parser) atom() (*Node, error) {
	p.skipBlanks()
	if p.eof() {
		return nil, &SyntaxError{Pos: p.pos, Msg: "unexpected end of expression"}
	}
	c := p.peek()
	start := p.pos
	switch {
	case c == '(':
		p.pos++
		n, err := p.alt()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, &SyntaxError{Pos: start, Msg: "unclosed parenthesis"}
		}
		return n, nil
	case c == '$':
		p.pos++
		p.skipBlanks()
		return &Node{Kind: KindEpsilon}, nil
	case c == '#':
		p.pos++
		p.skipBlanks()
		return &Node{Kind: KindEmpty}, nil
	case automaton.InAlphabet(c):
		p.pos++
		p.skipBlanks()
		return &Node{Kind: KindSymbol, Symbol: c}, nil
	default:
		return nil, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected %q", c)}
	}
}

// String renders n with explicit operators and only the parentheses that
// precedence requires.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch n.Kind {
	case KindSymbol:
		sb.WriteByte(n.Symbol)
	case KindEpsilon:
		sb.WriteByte('$')
	case KindEmpty:
		sb.WriteByte('#')
	case KindAlt:
		for i, s := range n.Subs {
			if i > 0 {
				sb.WriteByte('+')
			}
			s.write(sb)
		}
	case KindConcat:
		for i, s := range n.Subs {
			if i > 0 {
				sb.WriteByte('.')
			}
			writeGrouped(sb, s, s.Kind == KindAlt)
		}
	case KindStar:
		s := n.Subs[0]
		writeGrouped(sb, s, s.Kind == KindAlt || s.Kind == KindConcat)
		sb.WriteByte('*')
	}
}

func writeGrouped(sb *strings.Builder, n *Node, group bool) {
	if group {
		sb.WriteByte('(')
	}
	n.write(sb)
	if group {
		sb.WriteByte(')')
	}
}
