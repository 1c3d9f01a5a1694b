// Package hdl implements parsing of pin I/O specifications and connection
// description strings.
package hdl

import (
	"github.com/pkg/errors"
)

// Pin is a simple pin name.
type Pin struct {
	Name string
	Pos  Pos
}

// PinIndex is an indexed pin p[index]. In an I/O declaration context the
// index is a bus size.
type PinIndex struct {
	Pin
	Index int
}

// PinRange is a pin range p[start..end].
type PinRange struct {
	Pin
	Start int
	End   int
}

// PinAssignment is a part pin to chip pin assignment: pp=cp.
type PinAssignment struct {
	LHS interface{}
	RHS interface{}
}

// Parser is a simplistic parser for comma separated lists of pins and pin
// assignments.
type Parser struct {
	Input string
	l     *Lexer
	i     Item
	state int
}

// stateInit must be the zero value: a Parser is used directly from its
// zero state.
const (
	stateInit = 0
	stateDone = -1
)

// Next returns the next element in the input stream: one of Pin, PinIndex,
// PinRange or, if allowConns is true, PinAssignment. It returns nil once the
// input is exhausted.
func (p *Parser) Next(allowConns bool) (interface{}, error) {
	if p.state == stateDone {
		return nil, nil
	}
	if p.l == nil {
		p.l = NewLexer(p.Input)
	}

	p.i = p.l.Lex()
	if p.state == stateInit && p.i.Type == EOF {
		p.state = stateDone
		return nil, nil
	}
	p.state = stateInit + 1

	pin, err := p.getPin()
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	switch p.i.Type {
	case EOF:
		p.state = stateDone
		fallthrough
	case Comma:
		return pin, nil
	case Equal:
		if allowConns {
			break
		}
		fallthrough
	default:
		return nil, parseError(p.Input, p.i.Pos, "unexpected "+p.i.String())
	}

	p.i = p.l.Lex()
	pin2, err := p.getPin()
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	switch p.i.Type {
	case EOF:
		p.state = stateDone
		fallthrough
	case Comma:
		return PinAssignment{LHS: pin, RHS: pin2}, nil
	}

	return nil, parseError(p.Input, p.i.Pos, "unexpected "+p.i.String())
}

func (p *Parser) getPin() (interface{}, error) {
	if p.i.Type != Ident {
		return nil, parseError(p.Input, p.i.Pos, "expected pin name")
	}
	pin := Pin{Name: p.i.Str, Pos: p.i.Pos}
	// after ident, expect ',', '[', '=' or EOF
	p.i = p.l.Lex()
	if p.i.Type != BracketOpen {
		return pin, nil
	}
	p.i = p.l.Lex()
	if p.i.Type != Int {
		return nil, parseError(p.Input, p.i.Pos, "integer value expected after '['")
	}
	start := p.i.Int
	end := -1
	p.i = p.l.Lex()
	if p.i.Type == Range {
		p.i = p.l.Lex()
		if p.i.Type != Int {
			return nil, parseError(p.Input, p.i.Pos, "integer value expected after '..'")
		}
		end = p.i.Int
		p.i = p.l.Lex()
	}
	if p.i.Type != BracketClose {
		return nil, parseError(p.Input, p.i.Pos, "closing ']' expected after index or range")
	}
	p.i = p.l.Lex()
	if end >= 0 {
		return PinRange{Pin: pin, Start: start, End: end}, nil
	}
	return PinIndex{Pin: pin, Index: start}, nil
}

func parseError(in string, pos Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, int(pos)+1, msg)
}
