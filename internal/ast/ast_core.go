package ast

import (
	"math/big"

	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// Identifier is a bare name occurring in expression position.
type Identifier struct {
	symboled
	Token token.Token
	Name  string
}

func (i *Identifier) Span() source.Span { return i.Token.Span }
func (i *Identifier) Accept(v Visitor)  { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()   {}

// PrimitiveLiteral is a number, string, bool, or null literal. NumberValue
// holds either a *big.Int (bare integer literals) or a float64 (fractional
// or unit-suffixed literals), mirroring what the lexer's scanNumber
// produces; StringValue and BoolValue are populated for their respective
// kinds.
type PrimitiveLiteral struct {
	Token       token.Token
	Kind        token.SyntaxKind // NumberLiteral, StringLiteral, TrueKeyword, FalseKeyword, NullKeyword
	NumberValue interface{}      // *big.Int | float64, only when Kind == NumberLiteral
	StringValue string
	BoolValue   bool
	Unit        string // unit suffix on a number literal (ms, hz, %, ...), "" if none
}

func (l *PrimitiveLiteral) Span() source.Span { return l.Token.Span }
func (l *PrimitiveLiteral) Accept(v Visitor)  { v.VisitPrimitiveLiteral(l) }
func (l *PrimitiveLiteral) expressionNode()   {}

// bigIntValue extracts the literal's integer value when it is a plain
// integer (no fractional part, no unit suffix).
func (l *PrimitiveLiteral) bigIntValue() (*big.Int, bool) {
	n, ok := l.NumberValue.(*big.Int)
	return n, ok
}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Token    token.Token // '['
	End      token.Token // ']'
	Elements []Expression
}

func (a *ArrayLiteral) Span() source.Span { return source.Merge(a.Token.Span, a.End.Span) }
func (a *ArrayLiteral) Accept(v Visitor)  { v.VisitArrayLiteral(a) }
func (a *ArrayLiteral) expressionNode()   {}

// TupleLiteral is `(e1, e2, ...)` with at least two elements (a single
// parenthesized expression is Parenthesized, not a tuple).
type TupleLiteral struct {
	Token    token.Token // '('
	End      token.Token // ')'
	Elements []Expression
}

func (t *TupleLiteral) Span() source.Span { return source.Merge(t.Token.Span, t.End.Span) }
func (t *TupleLiteral) Accept(v Visitor)  { v.VisitTupleLiteral(t) }
func (t *TupleLiteral) expressionNode()   {}

// RangeLiteral is `start..end` or `start..step..end`.
type RangeLiteral struct {
	Token token.Token // '..'
	Start Expression
	Step  Expression // nil if absent
	End   Expression
}

func (r *RangeLiteral) Span() source.Span {
	return source.Merge(spanOf(r.Start), spanOf(r.End))
}
func (r *RangeLiteral) Accept(v Visitor) { v.VisitRangeLiteral(r) }
func (r *RangeLiteral) expressionNode()  {}

// RgbLiteral is an `rgb(r, g, b)` color literal; each component is a
// number literal converted to uint8.
type RgbLiteral struct {
	Token      token.Token
	R, G, B    uint8
}

func (c *RgbLiteral) Span() source.Span { return c.Token.Span }
func (c *RgbLiteral) Accept(v Visitor)  { v.VisitRgbLiteral(c) }
func (c *RgbLiteral) expressionNode()   {}

// HsvLiteral is an `hsv(h, s, v)` color literal.
type HsvLiteral struct {
	Token   token.Token
	H, S, V Expression
}

func (c *HsvLiteral) Span() source.Span { return source.Merge(c.Token.Span, spanOf(c.V)) }
func (c *HsvLiteral) Accept(v Visitor)  { v.VisitHsvLiteral(c) }
func (c *HsvLiteral) expressionNode()   {}

// VectorLiteral is a `<x, y, z>` geometric vector literal.
type VectorLiteral struct {
	Token      token.Token // '<'
	End        token.Token // '>'
	Components []Expression
}

func (vl *VectorLiteral) Span() source.Span { return source.Merge(vl.Token.Span, vl.End.Span) }
func (vl *VectorLiteral) Accept(v Visitor)  { v.VisitVectorLiteral(vl) }
func (vl *VectorLiteral) expressionNode()   {}

// InterpolatedString is a string literal with one or more `#{expr}`
// embedded expressions; Segments holds the literal text around them, so
// Expressions[i] sits between Segments[i] and Segments[i+1].
type InterpolatedString struct {
	Token    token.Token
	End      token.Token
	Segments []string     // literal text between interpolations, len == len(Expressions)+1
	Expressions []Expression
}

func (s *InterpolatedString) Span() source.Span { return source.Merge(s.Token.Span, s.End.Span) }
func (s *InterpolatedString) Accept(v Visitor)  { v.VisitInterpolatedString(s) }
func (s *InterpolatedString) expressionNode()   {}

// Parenthesized wraps a single expression in `( )`, preserved as its own
// node (rather than discarded) so diagnostics can point at the original
// source grouping.
type Parenthesized struct {
	Token token.Token // '('
	End   token.Token // ')'
	Inner Expression
}

func (p *Parenthesized) Span() source.Span { return source.Merge(p.Token.Span, p.End.Span) }
func (p *Parenthesized) Accept(v Visitor)  { v.VisitParenthesized(p) }
func (p *Parenthesized) expressionNode()   {}
