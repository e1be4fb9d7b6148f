package binder

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/token"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// LowerTypeRef computes the typesystem.Type a TypeRef denotes. Shared by
// the binder (TypeDeclaration/InterfaceDeclaration, spec.md §4.5 "eagerly
// lowers its RHS TypeRef to a Type") and the type solver (a
// VariableDeclaration's colon_type, spec.md §4.6), which imports this
// package rather than duplicating the switch to avoid an ast<->typesystem
// import cycle (typesystem must stay ast-independent; this package
// already depends on both).
func LowerTypeRef(ref ast.TypeRef) typesystem.Type {
	switch t := ref.(type) {
	case *ast.PrimitiveTypeRef:
		if t.Kind == token.NullKeyword {
			return typesystem.NullType
		}
		switch t.Token.GetText() {
		case "number":
			return typesystem.NumberType
		case "string":
			return typesystem.StringType
		case "bool":
			return typesystem.BoolType
		case "void":
			return typesystem.VoidType
		}
		return typesystem.VoidType
	case *ast.LiteralTypeRef:
		lit, ok := t.Value.(*ast.PrimitiveLiteral)
		if !ok {
			return typesystem.VoidType
		}
		return literalType(lit)
	case *ast.TypeNameRef:
		args := make([]typesystem.Type, len(t.TypeArguments))
		for i, a := range t.TypeArguments {
			args[i] = LowerTypeRef(a)
		}
		return typesystem.TypeName{Name: t.Name, TypeArguments: args}
	case *ast.NullableTypeRef:
		return typesystem.Nullable{Inner: LowerTypeRef(t.Inner)}
	case *ast.ArrayTypeRef:
		return typesystem.Array{Element: LowerTypeRef(t.Element)}
	case *ast.TupleTypeRef:
		elems := make([]typesystem.Type, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = LowerTypeRef(e)
		}
		return typesystem.Tuple{Elements: elems}
	case *ast.FunctionTypeRef:
		params := make([]typesystem.Type, len(t.Parameters))
		for i, p := range t.Parameters {
			params[i] = LowerTypeRef(p)
		}
		return typesystem.Function{
			TypeParameters: lowerTypeParameters(t.TypeParameters),
			Parameters:     params,
			Return:         LowerTypeRef(t.Return),
		}
	case *ast.UnionTypeRef:
		types := make([]typesystem.Type, len(t.Types))
		for i, u := range t.Types {
			types[i] = LowerTypeRef(u)
		}
		return typesystem.Union{Types: types}
	case *ast.IntersectionTypeRef:
		types := make([]typesystem.Type, len(t.Types))
		for i, u := range t.Types {
			types[i] = LowerTypeRef(u)
		}
		return typesystem.Intersection{Types: types}
	case *ast.TypeParameterRef:
		return typesystem.TypeName{Name: t.Name}
	default:
		return typesystem.VoidType
	}
}

// lowerTypeParameters lowers a generic clause to the []Type slice
// Function.TypeParameters expects; each entry is a typesystem.TypeParameter
// value, which itself implements Type.
func lowerTypeParameters(refs []*ast.TypeParameterRef) []typesystem.Type {
	params := make([]typesystem.Type, len(refs))
	for i, r := range refs {
		p := typesystem.TypeParameter{Name: r.Name}
		if r.Base != nil {
			p.Base = LowerTypeRef(r.Base)
		}
		if r.Default != nil {
			p.Default = LowerTypeRef(r.Default)
		}
		params[i] = p
	}
	return params
}

// literalType builds the singleton Literal type a PrimitiveLiteral denotes
// in type position, mirroring the type solver's PrimitiveLiteral rule
// (spec.md §4.6) for the literal-as-type-annotation case.
func literalType(lit *ast.PrimitiveLiteral) typesystem.Type {
	switch lit.Kind {
	case token.NumberLiteral:
		return typesystem.Literal{Kind: typesystem.Number, Value: lit.NumberValue}
	case token.StringLiteral:
		return typesystem.Literal{Kind: typesystem.String, Value: lit.StringValue}
	case token.TrueKeyword, token.FalseKeyword:
		return typesystem.Literal{Kind: typesystem.Bool, Value: lit.BoolValue}
	case token.NullKeyword:
		return typesystem.NullType
	default:
		return typesystem.VoidType
	}
}
