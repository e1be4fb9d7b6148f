// Package lexer turns a source buffer into an ordered token stream,
// implementing spec.md §4.1. Grounded structurally on
// funvibe-funxy/internal/lexer/lexer.go (the position/readPosition/ch/
// line/column scanner shape), with operator scanning rebuilt around the
// declarative longest-first table in operators.go.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// Lexer holds the scanner's position in a single source file.
type Lexer struct {
	file         *source.File
	input        string
	position     int // current position in input (points to current byte)
	readPosition int // position after the current rune
	ch           rune
	line         int
	column       int

	Errors []*diagnostics.Diagnostic
}

// New creates a Lexer over file, positioned before its first rune.
func New(file *source.File) *Lexer {
	l := &Lexer{file: file, input: file.Text, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.readPosition > 0 {
		l.column++
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) here() source.Location {
	return source.Location{Position: l.position, Line: l.line, Column: l.column, File: l.file}
}

func (l *Lexer) span(start source.Location) source.Span {
	return source.Span{Start: start, End: l.here()}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) error(code diagnostics.Code, start source.Location, args ...interface{}) token.Token {
	d := diagnostics.New(code, l.span(start), args...)
	l.Errors = append(l.Errors, d)
	return token.Token{Kind: token.Illegal, Span: l.span(start)}
}

// AtEnd reports whether the scanner has consumed the whole buffer. The
// buffered TokenStream in stream.go uses it to stop filling its Peek
// buffer at the end of input.
func (l *Lexer) AtEnd() bool {
	return l.ch == 0
}

// NextToken scans and returns the next token. At the end of input it
// returns a zero-width token of kind token.EOF, and the same again on
// every further call; the parser stops when it sees that kind.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	start := l.here()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Span: l.span(start)}
	case l.ch == '\n':
		l.readChar()
		return token.Token{Kind: token.Newline, Span: l.span(start)}
	case l.ch == '"':
		return l.scanString(start)
	case l.ch == '\'':
		return l.scanCharOrString(start)
	case isDigit(l.ch):
		return l.scanNumber(start)
	case isIdentStart(l.ch):
		return l.scanIdentifier(start)
	}

	if l.ch < utf8.RuneSelf {
		if kind, ok := singleCharPunctuation[byte(l.ch)]; ok {
			l.readChar()
			return token.Token{Kind: kind, Span: l.span(start)}
		}
		if family, ok := matchOperator(l.input, l.position); ok {
			for range family.text {
				l.readChar()
			}
			return token.Token{Kind: family.kind, Span: l.span(start)}
		}
	}

	bad := l.ch
	l.readChar()
	return l.error(diagnostics.UnexpectedCharacter, start, string(bad))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *Lexer) scanIdentifier(start source.Location) token.Token {
	for isIdentContinue(l.ch) {
		l.readChar()
	}
	span := l.span(start)
	return token.Token{Kind: token.LookupIdentifier(span.Text()), Span: span}
}
