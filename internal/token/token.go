package token

import "github.com/ion-lang/ionc/internal/source"

// Token is { kind, span, optional explicit text }, per spec.md §3. Text is
// populated only when the token's rendering differs from the raw source
// slice — synthesized tokens emitted by arrow-splitting during generic
// argument parsing (spec.md §4.2.3) are the only case that currently needs
// it.
type Token struct {
	Kind SyntaxKind
	Span source.Span
	Text string // explicit override; empty means "use the span's slice"

	// Literal carries the decoded value for literal tokens: string for
	// StringLiteral/InterpolatedStringPart, float64/int64/*big.Int for
	// NumberLiteral. Left nil for everything else.
	Literal interface{}
}

// GetText returns the token's explicit text if set, otherwise the raw
// source slice covered by its span.
func (t Token) GetText() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Span.Text()
}

func (t Token) String() string {
	return t.Kind.String() + " " + t.GetText()
}

// Synthetic builds a token with no backing source span, used when the
// parser splits a compound `>>`/`>>>` token into single `>` tokens (spec.md
// §4.2.3). The synthesized token keeps the original token's start location
// so diagnostics still point somewhere sensible.
func Synthetic(kind SyntaxKind, text string, at source.Location) Token {
	return Token{
		Kind: kind,
		Span: source.Span{Start: at, End: at.AddColumns(len(text))},
		Text: text,
	}
}
