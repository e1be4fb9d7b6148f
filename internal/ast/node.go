// Package ast defines Ion's abstract syntax tree: every expression,
// statement and type-reference node the parser produces, plus the
// double-dispatch Visitor contract later passes (resolver, binder, type
// solver) walk it with.
//
// Grounded structurally on funvibe-funxy/internal/ast (Accept(v Visitor)
// double dispatch, TokenLiteral()) and, for the exact node/field
// inventory, on original_source/include/ion/ast/**.h — the node set and
// shape come from the original implementation's ast.h hierarchy,
// translated into Go's embedding-free, pointer-field idiom instead of
// inheritance.
package ast

import (
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/symbols"
	"github.com/ion-lang/ionc/internal/token"
)

// Node is the base of every AST node: something with a source span that
// accepts a Visitor for double dispatch.
type Node interface {
	Span() source.Span
	Accept(v Visitor)
}

// Expression is any Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any Node that can appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// TypeRef is any Node occurring in type-annotation position.
type TypeRef interface {
	Node
	typeRefNode()
}

// Symboled is implemented by nodes the binder attaches a resolved symbol
// to: declarations and the identifiers/member accesses that name them.
// Kept as a side channel (spec.md §1's "non-mutating of node shape"
// passes) rather than a field every node carries.
type Symboled interface {
	Node
	SetSymbol(symbols.Symbol)
	GetSymbol() symbols.Symbol
}

// symboled is embedded by the declaration/identifier nodes that need it.
type symboled struct {
	symbol symbols.Symbol
}

func (s *symboled) SetSymbol(sym symbols.Symbol) { s.symbol = sym }
func (s *symboled) GetSymbol() symbols.Symbol     { return s.symbol }

// present reports whether an optional token slot was actually consumed by
// the parser. The zero Token has Kind Illegal, which no real optional
// keyword/punctuation token ever is, so the zero value doubles as "absent"
// without a separate bool per optional field.
func present(t token.Token) bool { return t.Kind != token.Illegal }

func spanOf(n Node) source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Span()
}

// SourceFile is the root of a parsed compilation unit, the AST-owning
// record spec.md §3 calls for, kept in its own package to avoid an
// ast<->source import cycle.
type SourceFile struct {
	File       *source.File
	Statements []Statement
}

func (f *SourceFile) Span() source.Span {
	if len(f.Statements) == 0 {
		return source.Span{}
	}
	return source.Merge(f.Statements[0].Span(), f.Statements[len(f.Statements)-1].Span())
}

func (f *SourceFile) Accept(v Visitor) { v.VisitSourceFile(f) }
