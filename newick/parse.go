// SPDX-License-Identifier: MIT
package newick

import (
	"fmt"
	"strconv"
	"strings"
)

// parser is a single-pass recursive-descent reader over the input text.
type parser struct {
	src string
	pos int
}

// Parse reads one Newick tree terminated by ';'.
// Bracketed comments ([...]) and whitespace between tokens are ignored.
//
// Errors: ErrSyntax wrapped with the byte offset of the problem.
// Complexity: O(len(text)).
func Parse(text string) (*Node, error) {
	p := &parser{src: text}
	root, err := p.subtree()
	if err != nil {
		return nil, err
	}
	p.skip()
	if !p.eat(';') {
		return nil, p.errorf("expected ';'")
	}
	p.skip()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing text after ';'")
	}

	return root, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

// skip advances over whitespace and bracketed comments.
func (p *parser) skip() {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '[':
			end := strings.IndexByte(p.src[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.src)
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}

	return false
}

// subtree := '(' subtree {',' subtree} ')' [label] [':' length] | label [':' length]
func (p *parser) subtree() (*Node, error) {
	p.skip()
	n := &Node{}
	if p.eat('(') {
		for {
			child, err := p.subtree()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			p.skip()
			if p.eat(',') {
				continue
			}
			if p.eat(')') {
				break
			}

			return nil, p.errorf("expected ',' or ')'")
		}
	}
	name, quoted, err := p.label()
	if err != nil {
		return nil, err
	}
	n.Name = name
	p.skip()
	if p.eat(':') {
		p.skip()
		length, err := p.length()
		if err != nil {
			return nil, err
		}
		n.WithLength(length)
	}
	if n.IsLeaf() && n.Name == "" && !quoted {
		return nil, p.errorf("empty leaf label")
	}

	return n, nil
}

// label reads a quoted or unquoted label; it may be empty.
// quoted reports whether the label was written in single quotes.
func (p *parser) label() (name string, quoted bool, err error) {
	p.skip()
	if p.eat('\'') {
		var sb strings.Builder
		for p.pos < len(p.src) {
			c := p.src[p.pos]
			p.pos++
			if c != '\'' {
				sb.WriteByte(c)
				continue
			}
			if p.eat('\'') {
				sb.WriteByte('\'')
				continue
			}

			return sb.String(), true, nil
		}

		return "", true, p.errorf("unterminated quoted label")
	}
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(specialChars, rune(p.src[p.pos])) {
		p.pos++
	}

	return p.src[start:p.pos], false, nil
}

// length reads a floating-point branch length.
func (p *parser) length() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(",);[ \t\n\r", rune(p.src[p.pos])) {
		p.pos++
	}
	tok := p.src[start:p.pos]
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		p.pos = start
		return 0, p.errorf("bad branch length %q", tok)
	}

	return v, nil
}
