package lexer

import (
	"strings"

	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// escapes maps a character following a backslash to its decoded rune, per
// spec.md §4.1's escape table.
var escapes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'a':  '\a',
	'e':  0x1b,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'#':  '#',
}

// scanString scans a plain or interpolated double-quoted string literal
// starting at the opening quote. Interpolation (#{expr}) splits the literal
// into segments: the text before each #{ is returned as an
// InterpolatedStringPart token (the #{ itself is consumed with it), the
// embedded expression is lexed as ordinary tokens, and the text after the
// last interpolation is returned as a StringLiteral at the closing quote.
// No InterpolationStart or InterpolationEnd tokens are emitted. NextToken
// returns only the first segment; the parser resumes scanning the rest by
// calling back into the lexer via ResumeInterpolatedString once it has
// consumed an embedded expression and its closing '}'. A literal with no
// #{ at all is returned as a single StringLiteral.
func (l *Lexer) scanString(start source.Location) token.Token {
	l.readChar() // consume opening quote
	return l.scanStringBody(start, true)
}

// scanStringBody scans string content up to a closing quote, an
// interpolation start, or end of input. first indicates whether this is the
// literal's opening segment (true) or a continuation after an
// interpolation's closing '}' (false); both cases produce the same token
// kinds.
func (l *Lexer) scanStringBody(start source.Location, first bool) token.Token {
	var b strings.Builder
	for {
		switch {
		case l.ch == 0 || l.ch == '\n':
			return l.error(diagnostics.UnterminatedString, start)
		case l.ch == '"':
			l.readChar()
			return token.Token{Kind: token.StringLiteral, Span: l.span(start), Literal: b.String()}
		case l.ch == '#' && l.peekChar() == '{':
			l.readChar()
			l.readChar()
			kind := token.InterpolatedStringPart
			if !first && b.Len() == 0 {
				// continuation with nothing before the next #{: still a valid
				// (empty) part, spec.md doesn't require a minimum length.
			}
			return token.Token{Kind: kind, Span: l.span(start), Literal: b.String()}
		case l.ch == '\\':
			l.readChar()
			if decoded, ok := escapes[l.ch]; ok {
				b.WriteRune(decoded)
				l.readChar()
				continue
			}
			return l.error(diagnostics.UnterminatedString, start)
		default:
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// ResumeInterpolatedString is called by the parser immediately after it has
// parsed the embedded expression following an InterpolatedStringPart token
// and consumed the closing '}'. It scans the next segment of the same
// string literal, which is either another InterpolatedStringPart (if
// another #{ follows) or a StringLiteral ending at the closing quote.
func (l *Lexer) ResumeInterpolatedString() token.Token {
	start := l.here()
	return l.scanStringBody(start, false)
}

// scanCharOrString scans a single-quoted literal. Ion uses single quotes
// for single-character literals only (no interpolation); spec.md §4.1.
func (l *Lexer) scanCharOrString(start source.Location) token.Token {
	l.readChar() // consume opening quote
	var value rune
	switch {
	case l.ch == '\\':
		l.readChar()
		decoded, ok := escapes[l.ch]
		if !ok {
			return l.error(diagnostics.UnterminatedString, start)
		}
		value = decoded
		l.readChar()
	case l.ch == 0 || l.ch == '\n' || l.ch == '\'':
		return l.error(diagnostics.UnterminatedString, start)
	default:
		value = l.ch
		l.readChar()
	}
	if l.ch != '\'' {
		return l.error(diagnostics.UnterminatedString, start)
	}
	l.readChar()
	return token.Token{Kind: token.StringLiteral, Span: l.span(start), Literal: string(value)}
}
