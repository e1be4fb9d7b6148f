// Package symbols implements the Symbol/NamedSymbol/DeclarationSymbol/
// TypeSymbol/TypeDeclarationSymbol model spec.md §5 names, plus the
// scope-stack symbol table the resolver and binder share.
//
// Grounded on original_source/include/ion/symbols/*.h for the hierarchy
// (reduced from the original's shared_ptr inheritance chain to a Go
// interface plus embedded structs) and on
// funvibe-funxy/internal/symbols/symbol_table_core.go for the Go table
// shape, trimmed of everything that exists only to support the teacher's
// trait-dictionary evaluator (InstanceDef, Constraint, trait dispatch).
package symbols

import (
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// Symbol is any named or anonymous entity the resolver/binder track: a
// variable, a declared type, a type parameter, or the synthetic symbol
// backing a scope.
type Symbol interface {
	Type() typesystem.Type
	DeclaringSymbol() Symbol
	String() string
}

type base struct {
	typ             typesystem.Type
	declaringSymbol Symbol
}

func (b *base) Type() typesystem.Type     { return b.typ }
func (b *base) DeclaringSymbol() Symbol   { return b.declaringSymbol }
func (b *base) SetDeclaringSymbol(s Symbol) { b.declaringSymbol = s }

func (b *base) declaringSuffix() string {
	if b.declaringSymbol == nil {
		return ""
	}
	return " < " + b.declaringSymbol.String()
}

// NamedSymbol is a Symbol with a source-level name: a variable, function,
// or type name.
type NamedSymbol struct {
	base
	Name string
}

// NewNamedSymbol builds a NamedSymbol, typ may be nil (spec.md's "write
// once" type slot: the type solver fills it in later).
func NewNamedSymbol(name string, typ typesystem.Type) *NamedSymbol {
	return &NamedSymbol{base: base{typ: typ}, Name: name}
}

func (s *NamedSymbol) String() string {
	if s.typ == nil {
		return "NamedSymbol(" + s.Name + ")" + s.declaringSuffix()
	}
	return "NamedSymbol(" + s.Name + ", " + s.typ.String() + ")" + s.declaringSuffix()
}

// SetType fills the symbol's write-once type cell. The type solver calls
// it once for each declaration it solves; SetType itself does not guard
// against a second assignment.
func (s *NamedSymbol) SetType(typ typesystem.Type) { s.typ = typ }

// Declaration is the minimal surface symbols needs from a declaring AST
// node. Defined here (rather than importing internal/ast) to avoid an
// ast<->symbols import cycle: ast.Symboled stores a Symbol, and every
// ast declaration node already satisfies this interface by having a
// Span method.
type Declaration interface {
	Span() source.Span
}

// DeclarationSymbol is a NamedSymbol tied back to the AST node that
// declared it, so later passes (e.g. "go to definition" style tooling,
// or a diagnostic needing the declaration site) can recover it.
type DeclarationSymbol struct {
	NamedSymbol
	Declaration Declaration // the owning *ast.VariableDeclaration / *ast.FunctionDeclaration / etc.
}

func NewDeclarationSymbol(name string, declaration Declaration, typ typesystem.Type) *DeclarationSymbol {
	return &DeclarationSymbol{NamedSymbol: *NewNamedSymbol(name, typ), Declaration: declaration}
}

func (s *DeclarationSymbol) String() string {
	if s.typ == nil {
		return "DeclarationSymbol(" + s.Name + ")" + s.declaringSuffix()
	}
	return "DeclarationSymbol(" + s.Name + ", " + s.typ.String() + ")" + s.declaringSuffix()
}

// TypeSymbol names a type itself (the symbol a type expression like a
// type parameter or builtin resolves to), as opposed to a value of that
// type.
type TypeSymbol struct {
	NamedSymbol
}

func NewTypeSymbol(name string, typ typesystem.Type) *TypeSymbol {
	return &TypeSymbol{NamedSymbol: *NewNamedSymbol(name, typ)}
}

func (s *TypeSymbol) String() string {
	return "TypeSymbol(" + s.Name + ", " + s.typ.String() + ")" + s.declaringSuffix()
}

// TypeDeclarationSymbol is a TypeSymbol tied to the `type`/`interface`/
// `enum` declaration that introduced it.
type TypeDeclarationSymbol struct {
	TypeSymbol
	Declaration Declaration
}

func NewTypeDeclarationSymbol(name string, typ typesystem.Type, declaration Declaration) *TypeDeclarationSymbol {
	return &TypeDeclarationSymbol{TypeSymbol: *NewTypeSymbol(name, typ), Declaration: declaration}
}

func (s *TypeDeclarationSymbol) String() string {
	return "TypeDeclarationSymbol(" + s.Name + ", " + s.typ.String() + ")" + s.declaringSuffix()
}
