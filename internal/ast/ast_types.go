package ast

import (
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// PrimitiveTypeRef is one of the built-in scalar type names: `number`,
// `string`, `bool`, `void`, `null`.
type PrimitiveTypeRef struct {
	Token token.Token
	Kind  token.SyntaxKind
}

func (t *PrimitiveTypeRef) Span() source.Span { return t.Token.Span }
func (t *PrimitiveTypeRef) Accept(v Visitor)  { v.VisitPrimitiveTypeRef(t) }
func (t *PrimitiveTypeRef) typeRefNode()      {}

// LiteralTypeRef is a literal used in type position: `"ok"`, `404`, `true`.
type LiteralTypeRef struct {
	Token token.Token
	Value Expression // a *PrimitiveLiteral
}

func (t *LiteralTypeRef) Span() source.Span { return t.Token.Span }
func (t *LiteralTypeRef) Accept(v Visitor)  { v.VisitLiteralTypeRef(t) }
func (t *LiteralTypeRef) typeRefNode()      {}

// TypeNameRef is a nominal reference to a declared type, optionally with
// generic type arguments: `List<T>`.
type TypeNameRef struct {
	Token         token.Token
	End           token.Token
	Name          string
	TypeArguments []TypeRef
	symboled
}

func (t *TypeNameRef) Span() source.Span { return source.Merge(t.Token.Span, t.End.Span) }
func (t *TypeNameRef) Accept(v Visitor)  { v.VisitTypeNameRef(t) }
func (t *TypeNameRef) typeRefNode()      {}

// NullableTypeRef is `T?`.
type NullableTypeRef struct {
	Token token.Token // '?'
	Inner TypeRef
}

func (t *NullableTypeRef) Span() source.Span { return source.Merge(t.Inner.Span(), t.Token.Span) }
func (t *NullableTypeRef) Accept(v Visitor)  { v.VisitNullableTypeRef(t) }
func (t *NullableTypeRef) typeRefNode()      {}

// ArrayTypeRef is `T[]`.
type ArrayTypeRef struct {
	Token   token.Token // '['
	End     token.Token // ']'
	Element TypeRef
}

func (t *ArrayTypeRef) Span() source.Span { return source.Merge(t.Element.Span(), t.End.Span) }
func (t *ArrayTypeRef) Accept(v Visitor)  { v.VisitArrayTypeRef(t) }
func (t *ArrayTypeRef) typeRefNode()      {}

// TupleTypeRef is `(T1, T2, ...)` in type position.
type TupleTypeRef struct {
	Token    token.Token
	End      token.Token
	Elements []TypeRef
}

func (t *TupleTypeRef) Span() source.Span { return source.Merge(t.Token.Span, t.End.Span) }
func (t *TupleTypeRef) Accept(v Visitor)  { v.VisitTupleTypeRef(t) }
func (t *TupleTypeRef) typeRefNode()      {}

// FunctionTypeRef is `(T1, T2) -> R`, optionally generic.
type FunctionTypeRef struct {
	Token          token.Token
	TypeParameters []*TypeParameterRef
	Parameters     []TypeRef
	Return         TypeRef
}

func (t *FunctionTypeRef) Span() source.Span { return source.Merge(t.Token.Span, t.Return.Span()) }
func (t *FunctionTypeRef) Accept(v Visitor)  { v.VisitFunctionTypeRef(t) }
func (t *FunctionTypeRef) typeRefNode()      {}

// UnionTypeRef is `T1 | T2 | ...`.
type UnionTypeRef struct {
	Token token.Token
	Types []TypeRef
}

func (t *UnionTypeRef) Span() source.Span {
	return source.Merge(t.Types[0].Span(), t.Types[len(t.Types)-1].Span())
}
func (t *UnionTypeRef) Accept(v Visitor) { v.VisitUnionTypeRef(t) }
func (t *UnionTypeRef) typeRefNode()     {}

// IntersectionTypeRef is `T1 & T2 & ...`.
type IntersectionTypeRef struct {
	Token token.Token
	Types []TypeRef
}

func (t *IntersectionTypeRef) Span() source.Span {
	return source.Merge(t.Types[0].Span(), t.Types[len(t.Types)-1].Span())
}
func (t *IntersectionTypeRef) Accept(v Visitor) { v.VisitIntersectionTypeRef(t) }
func (t *IntersectionTypeRef) typeRefNode()     {}

// TypeParameterRef is one `<T[: Base][= Default]>` clause entry in a
// generic declaration.
type TypeParameterRef struct {
	Token   token.Token
	Name    string
	Base    TypeRef // nil if absent
	Default TypeRef // nil if absent
	symboled
}

func (t *TypeParameterRef) Span() source.Span {
	end := t.Token.Span
	if t.Default != nil {
		end = t.Default.Span()
	} else if t.Base != nil {
		end = t.Base.Span()
	}
	return source.Merge(t.Token.Span, end)
}
func (t *TypeParameterRef) Accept(v Visitor) { v.VisitTypeParameterRef(t) }
func (t *TypeParameterRef) typeRefNode()     {}
