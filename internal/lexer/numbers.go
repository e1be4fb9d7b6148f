package lexer

import (
	"math/big"
	"strings"

	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// unitSuffixes lists the recognized number-literal unit suffixes, per
// spec.md §4.1, longest first so "ms" is tried before a bare "m" could ever
// be confused with it.
var unitSuffixes = []string{"ms", "hz", "m", "h", "d", "%"}

// scanNumber scans an integer or float literal, optionally in a 0x/0o/0b
// radix prefix, optionally followed by one of the unit suffixes. The
// decoded numeric Literal is always a float64 for unit-suffixed and
// fractional literals, and a *big.Int for bare integer literals (radix or
// decimal) so arbitrary-precision integer constants survive lexing intact.
// A unit suffix scales the value: ms /1000, m *60, hz /60, h *3600,
// d *86400, % /100.
func (l *Lexer) scanNumber(start source.Location) token.Token {
	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			return l.scanRadixInteger(start, 16, isHexDigit)
		case 'o', 'O':
			return l.scanRadixInteger(start, 8, isOctalDigit)
		case 'b', 'B':
			return l.scanRadixInteger(start, 2, isBinaryDigit)
		}
	}

	var digits strings.Builder
	decimalPoints := 0
	for isDigit(l.ch) || l.ch == '.' || l.ch == '_' {
		if l.ch == '.' {
			// ".." introduces a range literal, not a second decimal point.
			if l.peekChar() == '.' {
				break
			}
			decimalPoints++
		}
		if l.ch != '_' {
			digits.WriteRune(l.ch)
		}
		l.readChar()
	}

	suffix := l.matchUnitSuffix()

	if decimalPoints > 1 {
		for range suffix {
			l.readChar()
		}
		return l.error(diagnostics.MalformedNumber, start, l.span(start).Text())
	}

	if suffix != "" {
		for range suffix {
			l.readChar()
		}
		span := l.span(start)
		f, ok := new(big.Float).SetString(digits.String())
		if !ok {
			return l.error(diagnostics.MalformedNumber, start, span.Text())
		}
		value, _ := f.Float64()
		switch suffix {
		case "ms":
			value /= 1000
		case "m":
			value *= 60
		case "hz":
			value /= 60
		case "h":
			value *= 3600
		case "d":
			value *= 86400
		case "%":
			value /= 100
		}
		return token.Token{Kind: token.NumberLiteral, Span: span, Literal: value}
	}

	span := l.span(start)
	if decimalPoints == 1 {
		f, ok := new(big.Float).SetString(digits.String())
		if !ok {
			return l.error(diagnostics.MalformedNumber, start, span.Text())
		}
		value, _ := f.Float64()
		return token.Token{Kind: token.NumberLiteral, Span: span, Literal: value}
	}

	i, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return l.error(diagnostics.MalformedNumber, start, span.Text())
	}
	return token.Token{Kind: token.NumberLiteral, Span: span, Literal: i}
}

func (l *Lexer) scanRadixInteger(start source.Location, base int, valid func(rune) bool) token.Token {
	l.readChar() // '0'
	l.readChar() // x/o/b
	var digits strings.Builder
	for valid(l.ch) || l.ch == '_' {
		if l.ch != '_' {
			digits.WriteRune(l.ch)
		}
		l.readChar()
	}
	span := l.span(start)
	if digits.Len() == 0 {
		return l.error(diagnostics.MalformedNumber, start, span.Text())
	}
	i, ok := new(big.Int).SetString(digits.String(), base)
	if !ok {
		return l.error(diagnostics.MalformedNumber, start, span.Text())
	}
	return token.Token{Kind: token.NumberLiteral, Span: span, Literal: i}
}

// matchUnitSuffix reports which, if any, unit suffix follows the current
// position without consuming it — the caller advances once it has decided
// the overall literal is well formed.
func (l *Lexer) matchUnitSuffix() string {
	for _, suffix := range unitSuffixes {
		if l.hasPrefixAt(suffix) && !isIdentContinue(l.runeAfter(len(suffix))) {
			return suffix
		}
	}
	return ""
}

func (l *Lexer) hasPrefixAt(s string) bool {
	for i, want := range s {
		if l.runeAfter(i) != want {
			return false
		}
	}
	return true
}

// runeAfter peeks the rune n bytes after the current position; used only
// for the short ASCII unit suffixes so byte-offset peeking is safe.
func (l *Lexer) runeAfter(n int) rune {
	pos := l.position + n
	if pos >= len(l.input) {
		return 0
	}
	return rune(l.input[pos])
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }
