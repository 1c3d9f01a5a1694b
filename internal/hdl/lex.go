package hdl

import "strconv"

// Token types.
const (
	EOF Type = iota
	Ident
	Int
	BracketOpen
	BracketClose
	Comma
	Range
	Equal
	Illegal
)

// Type identifies the type of a lexed item.
type Type int

// Pos is a position in the input string.
type Pos int

// Item is a single lexed item.
type Item struct {
	Type Type
	Pos  Pos
	Str  string
	Int  int
}

func (i Item) String() string {
	switch i.Type {
	case EOF:
		return "end of input"
	case Int:
		return "integer " + strconv.Itoa(i.Int)
	}
	return strconv.Quote(i.Str)
}

// Lexer splits pin I/O specs and connection descriptions into items.
// Pin names are restricted to ASCII identifiers.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }

// Lex returns the next item in the input. Once the input is exhausted, Lex
// keeps returning EOF items.
func (l *Lexer) Lex() Item {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.input) {
		return Item{Type: EOF, Pos: Pos(start)}
	}
	c := l.input[l.pos]
	switch {
	case isLetter(c):
		for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
			l.pos++
		}
		return Item{Type: Ident, Pos: Pos(start), Str: l.input[start:l.pos]}
	case isDigit(c):
		n := 0
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			n = n*10 + int(l.input[l.pos]-'0')
			l.pos++
		}
		return Item{Type: Int, Pos: Pos(start), Str: l.input[start:l.pos], Int: n}
	}
	l.pos++
	switch c {
	case '[':
		return Item{Type: BracketOpen, Pos: Pos(start), Str: "["}
	case ']':
		return Item{Type: BracketClose, Pos: Pos(start), Str: "]"}
	case ',':
		return Item{Type: Comma, Pos: Pos(start), Str: ","}
	case '=':
		return Item{Type: Equal, Pos: Pos(start), Str: "="}
	case '.':
		if l.pos < len(l.input) && l.input[l.pos] == '.' {
			l.pos++
			return Item{Type: Range, Pos: Pos(start), Str: ".."}
		}
	}
	return Item{Type: Illegal, Pos: Pos(start), Str: string(c)}
}
