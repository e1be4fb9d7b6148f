// Package parser implements Ion's recursive-descent + Pratt parser
// (spec.md §4.2): token stream in, SourceFile statement list out.
//
// Grounded structurally on mcgru-funxy/internal/parser/parser.go (the
// Parser struct holding cur/peek token state, prefixParseFns/
// infixParseFns maps keyed by token kind, a precedence table, and
// registerPrefix/registerInfix helpers), adapted to Ion's grammar and to
// this codebase's pipeline.TokenStream contract. Unlike the teacher's
// cur/peek two-field cache, every parse function here leaves `cur`
// pointing at the next *unconsumed* token once it returns, so precedence
// decisions read `p.cur` directly instead of a separate peek slot; the
// one place real lookahead is needed (generic-argument disambiguation,
// return's same-line check) goes through the stream's own Peek, which
// leaves the stream cursor untouched.
package parser

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2.1.
const (
	Lowest = iota
	Assign
	Ternary
	NullCoalesce
	LogicOr
	LogicAnd
	Comparison
	Range
	BitOr
	BitXor
	BitAnd
	Shift
	Additive
	Multiplicative
	Exponent
	Unary
	Postfix
)

var precedences = map[token.SyntaxKind]int{
	token.Equals:             Assign,
	token.PlusEquals:         Assign,
	token.MinusEquals:        Assign,
	token.StarEquals:         Assign,
	token.SlashEquals:        Assign,
	token.PercentEquals:      Assign,
	token.CaretEquals:        Assign,
	token.AmpEquals:          Assign,
	token.PipeEquals:         Assign,
	token.ShlEquals:          Assign,
	token.ShrEquals:          Assign,
	token.UShrEquals:         Assign,
	token.NullCoalesceEquals: Assign,
	token.AndEquals:          Assign,
	token.OrEquals:           Assign,
	token.Question:           Ternary,
	token.NullCoalesce:       NullCoalesce,
	token.OrOr:               LogicOr,
	token.AndAnd:             LogicAnd,
	token.EqualsEquals:       Comparison,
	token.BangEquals:         Comparison,
	token.Less:               Comparison,
	token.Greater:            Comparison,
	token.LessEquals:         Comparison,
	token.GreaterEquals:      Comparison,
	token.DotDot:             Range,
	token.Pipe:               BitOr,
	token.Tilde:              BitXor,
	token.Amp:                BitAnd,
	token.Shl:                Shift,
	token.Shr:                Shift,
	token.UShr:               Shift,
	token.Plus:                Additive,
	token.Minus:               Additive,
	token.Star:                Multiplicative,
	token.Slash:               Multiplicative,
	token.Percent:             Multiplicative,
	token.Caret:               Exponent,
	token.LParen:              Postfix,
	token.LBracket:            Postfix,
	token.Dot:                 Postfix,
	token.OptionalDot:         Postfix,
	token.PlusPlus:            Postfix,
	token.MinusMinus:          Postfix,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the running state of one parse over a single token stream.
type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	cur               token.Token
	newlineBeforeCur  bool // a Newline token was skipped to reach cur

	prefixFns map[token.SyntaxKind]prefixParseFn
	infixFns  map[token.SyntaxKind]infixParseFn
}

// New builds a Parser ready to parse stream's tokens, reporting
// diagnostics through ctx.
func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	p.registerPrefixFns()
	p.registerInfixFns()
	p.advance()
	return p
}

// ParseSourceFile parses the whole token stream as a top-level statement
// list, per spec.md §4.2.
func (p *Parser) ParseSourceFile() []ast.Statement {
	var statements []ast.Statement
	for p.cur.Kind != token.EOF {
		p.skipSemicolons()
		if p.cur.Kind == token.EOF {
			break
		}
		statements = append(statements, p.parseStatement())
		p.skipSemicolons()
		if p.ctx.Fatal {
			break
		}
	}
	checkUnreachableCode(p.ctx, statements)
	return statements
}

// advance pulls the next non-Newline token from the stream into cur,
// recording whether a Newline was skipped to get there (needed by
// return's "expression omitted when the next token is on a new line"
// rule, spec.md §4.2.2).
func (p *Parser) advance() {
	p.cur, p.newlineBeforeCur = p.nextNonNewline()
}

func (p *Parser) nextNonNewline() (token.Token, bool) {
	sawNewline := false
	for {
		t := p.stream.Next()
		if t.Kind == token.Newline {
			sawNewline = true
			continue
		}
		return t, sawNewline
	}
}

func (p *Parser) skipSemicolons() {
	for p.cur.Kind == token.Semicolon {
		p.advance()
	}
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return Lowest
}

func (p *Parser) registerPrefix(kind token.SyntaxKind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.SyntaxKind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// report emits a diagnostic through the context; Error-severity codes
// mark the context fatal (diagnostics.Diagnostic.Fatal), matching
// spec.md §7's "first error wins, no recovery" contract.
func (p *Parser) report(code diagnostics.Code, args ...interface{}) {
	p.ctx.Report(diagnostics.New(code, p.cur.Span, args...))
}

// expect requires cur to have the given kind, reporting
// ExpectedDifferentSyntax and leaving cur untouched otherwise (the caller
// proceeds best-effort; spec.md §7 guarantees no later pass runs once a
// fatal diagnostic has been recorded, so the partial tree that results is
// never observed beyond this parse).
func (p *Parser) expect(kind token.SyntaxKind) token.Token {
	if p.cur.Kind != kind {
		p.report(diagnostics.ExpectedDifferentSyntax, kind.String(), p.cur.Kind.String())
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) expectIdentifier() *ast.Identifier {
	tok := p.expect(token.Identifier)
	return &ast.Identifier{Token: tok, Name: tok.GetText()}
}
