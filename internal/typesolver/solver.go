// Package typesolver implements spec.md §4.6: the bottom-up pass that
// computes a Type for every node form the binder marked. Grounded on
// original_source's type-solving scattered across src/binder.cpp's
// `bind_symbol` overloads and include/ion/types/*.h's is_same rules;
// unlike the original (which folds type solving into the same visitor as
// binding) this keeps it a separate pass, matching spec.md §5's strict
// Parse -> Resolve -> Bind -> TypeSolve ordering.
package typesolver

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/binder"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/token"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// typed is satisfied by every symbols.Symbol concrete type (all of them
// embed *symbols.NamedSymbol, which exports SetType) — declared locally
// to avoid importing symbols just for this one method.
type typed interface {
	SetType(typesystem.Type)
}

// Solver walks a SourceFile computing types bottom-up. It embeds
// ast.Walker for every node shape it doesn't assign a type to; see
// children.go's WalkXChildren helpers for why its own overrides must
// recurse through s, not through the embedded Walker.
type Solver struct {
	ast.Walker
	ctx *pipeline.PipelineContext
}

var _ ast.Visitor = (*Solver)(nil)

// New builds a Solver reporting into ctx.
func New(ctx *pipeline.PipelineContext) *Solver {
	return &Solver{ctx: ctx}
}

// Run type-solves every top-level statement of file.
func (s *Solver) Run(file *ast.SourceFile) {
	file.Accept(s)
}

// typeOf returns the already-solved type of a child expression, recorded
// by the post-order visit that ran before the caller.
func (s *Solver) typeOf(n ast.Expression) typesystem.Type {
	if n == nil {
		return typesystem.VoidType
	}
	return s.ctx.TypeMap[n]
}

// record sets a node's solved type in ctx.TypeMap and, if the node is
// itself a declaration carrying a symbol, fills that symbol's write-once
// type cell too (spec.md §5's "mutation of a symbol's type slot happens
// once, during the type-solver pass").
func (s *Solver) record(n ast.Node, typ typesystem.Type) {
	s.ctx.TypeMap[n] = typ
	if sym, ok := n.(ast.Symboled); ok {
		if t := sym.GetSymbol(); t != nil {
			if ts, ok := t.(typed); ok {
				ts.SetType(typ)
			}
		}
	}
}

func (s *Solver) VisitPrimitiveLiteral(n *ast.PrimitiveLiteral) {
	switch n.Kind {
	case token.NullKeyword:
		s.record(n, typesystem.VoidType)
	case token.NumberLiteral:
		s.record(n, typesystem.Literal{Kind: typesystem.Number, Value: n.NumberValue})
	case token.StringLiteral:
		s.record(n, typesystem.Literal{Kind: typesystem.String, Value: n.StringValue})
	case token.TrueKeyword, token.FalseKeyword:
		s.record(n, typesystem.Literal{Kind: typesystem.Bool, Value: n.BoolValue})
	default:
		s.record(n, typesystem.VoidType)
	}
}

func (s *Solver) VisitArrayLiteral(n *ast.ArrayLiteral) {
	ast.WalkArrayLiteralChildren(s, n)
	elements := make([]typesystem.Type, len(n.Elements))
	for i, e := range n.Elements {
		elements[i] = s.typeOf(e)
	}
	s.record(n, typesystem.Array{Element: unionOf(elements)})
}

func (s *Solver) VisitTupleLiteral(n *ast.TupleLiteral) {
	ast.WalkTupleLiteralChildren(s, n)
	elements := make([]typesystem.Type, len(n.Elements))
	for i, e := range n.Elements {
		elements[i] = s.typeOf(e)
	}
	s.record(n, typesystem.Tuple{Elements: elements})
}

func (s *Solver) VisitIdentifier(n *ast.Identifier) {
	var typ typesystem.Type = typesystem.VoidType
	if sym := n.GetSymbol(); sym != nil && sym.Type() != nil {
		typ = sym.Type()
	}
	s.ctx.TypeMap[n] = typ
}

func (s *Solver) VisitExpressionStatement(n *ast.ExpressionStatement) {
	ast.WalkExpressionStatementChildren(s, n)
	s.ctx.TypeMap[n] = s.typeOf(n.Expression)
}

func (s *Solver) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Initializer != nil {
		n.Initializer.Accept(s)
	}

	var typ typesystem.Type
	switch {
	case n.TypeAnnotation != nil:
		typ = binder.LowerTypeRef(n.TypeAnnotation)
	case n.Initializer != nil && !isNullLiteral(n.Initializer):
		init := s.typeOf(n.Initializer)
		if lit, ok := init.(typesystem.Literal); ok {
			if n.IsConst {
				typ = lit
			} else {
				typ = lit.Widen()
			}
		} else {
			typ = init
		}
	default:
		s.ctx.Report(diagnostics.New(diagnostics.NoVariableTypeOrInitializer, n.Span()))
		typ = typesystem.VoidType
	}

	s.record(n, typ)
}

func isNullLiteral(e ast.Expression) bool {
	lit, ok := e.(*ast.PrimitiveLiteral)
	return ok && lit.Kind == token.NullKeyword
}

// unionOf collapses a list of element types to a singleton when every
// element is is_same, else forms a Union of the distinct types, per
// spec.md §4.6's ArrayLiteral rule. An empty array has no elements to
// infer from; its element type is void, same as the original's handling
// of a missing element-type hint.
func unionOf(types []typesystem.Type) typesystem.Type {
	if len(types) == 0 {
		return typesystem.VoidType
	}
	first := types[0]
	allSame := true
	for _, t := range types[1:] {
		if !first.IsSame(t) {
			allSame = false
			break
		}
	}
	if allSame {
		return first
	}
	var distinct []typesystem.Type
	for _, t := range types {
		found := false
		for _, d := range distinct {
			if d.IsSame(t) {
				found = true
				break
			}
		}
		if !found {
			distinct = append(distinct, t)
		}
	}
	return typesystem.Union{Types: distinct}
}

// The overrides below carry no type-solving logic of their own; they
// exist so that recursion through embedded nodes always dispatches back
// into s, not into the base Walker (see Walker's doc comment).

func (s *Solver) VisitSourceFile(n *ast.SourceFile) { ast.WalkSourceFileChildren(s, n) }

func (s *Solver) VisitRangeLiteral(n *ast.RangeLiteral) { ast.WalkRangeLiteralChildren(s, n) }
func (s *Solver) VisitRgbLiteral(n *ast.RgbLiteral)     {}
func (s *Solver) VisitHsvLiteral(n *ast.HsvLiteral)     { ast.WalkHsvLiteralChildren(s, n) }
func (s *Solver) VisitVectorLiteral(n *ast.VectorLiteral) {
	ast.WalkVectorLiteralChildren(s, n)
}

func (s *Solver) VisitInterpolatedString(n *ast.InterpolatedString) {
	ast.WalkInterpolatedStringChildren(s, n)
}

func (s *Solver) VisitParenthesized(n *ast.Parenthesized) {
	ast.WalkParenthesizedChildren(s, n)
	s.ctx.TypeMap[n] = s.typeOf(n.Inner)
}

// VisitBinaryOp widens both operands and classifies the result by
// operator family: comparisons and logical connectives always yield
// bool, null-coalescing yields the right operand's widened type, and
// everything else (arithmetic, bitwise) yields the left operand's
// widened type. spec.md §4.6 names this rule only
// implicitly (S1 requires `1 + 2` to solve to number); see DESIGN.md for
// why this generalizes the six explicitly-listed forms rather than
// leaving arithmetic untyped.
func (s *Solver) VisitBinaryOp(n *ast.BinaryOp) {
	ast.WalkBinaryOpChildren(s, n)

	left := widen(s.typeOf(n.Left))
	right := widen(s.typeOf(n.Right))

	switch n.Operator {
	case token.EqualsEquals, token.BangEquals, token.Less, token.Greater,
		token.LessEquals, token.GreaterEquals, token.AndAnd, token.OrOr:
		s.ctx.TypeMap[n] = typesystem.BoolType
	case token.NullCoalesce:
		s.ctx.TypeMap[n] = right
	default:
		s.ctx.TypeMap[n] = left
	}
}

// widen returns typ unchanged unless it is a Literal, in which case it
// widens to the enclosing Primitive -- the same rule VariableDeclaration
// applies to a non-const initializer.
func widen(typ typesystem.Type) typesystem.Type {
	if lit, ok := typ.(typesystem.Literal); ok {
		return lit.Widen()
	}
	return typ
}
func (s *Solver) VisitAssignmentOp(n *ast.AssignmentOp)     { ast.WalkAssignmentOpChildren(s, n) }
func (s *Solver) VisitUnaryOp(n *ast.UnaryOp)               { ast.WalkUnaryOpChildren(s, n) }
func (s *Solver) VisitPostfixUnaryOp(n *ast.PostfixUnaryOp) { ast.WalkPostfixUnaryOpChildren(s, n) }
func (s *Solver) VisitTernaryOp(n *ast.TernaryOp)           { ast.WalkTernaryOpChildren(s, n) }
func (s *Solver) VisitInvocation(n *ast.Invocation)         { ast.WalkInvocationChildren(s, n) }
func (s *Solver) VisitTypeOf(n *ast.TypeOf)                 { ast.WalkTypeOfChildren(s, n) }
func (s *Solver) VisitNameOf(n *ast.NameOf)                 { ast.WalkNameOfChildren(s, n) }
func (s *Solver) VisitAwait(n *ast.Await)                   { ast.WalkAwaitChildren(s, n) }
func (s *Solver) VisitMemberAccess(n *ast.MemberAccess)     { ast.WalkMemberAccessChildren(s, n) }

func (s *Solver) VisitOptionalMemberAccess(n *ast.OptionalMemberAccess) {
	ast.WalkOptionalMemberAccessChildren(s, n)
}

func (s *Solver) VisitElementAccess(n *ast.ElementAccess) { ast.WalkElementAccessChildren(s, n) }

func (s *Solver) VisitInstanceConstructor(n *ast.InstanceConstructor) {
	ast.WalkInstanceConstructorChildren(s, n)
}

func (s *Solver) VisitBlock(n *ast.Block) { ast.WalkBlockChildren(s, n) }

func (s *Solver) VisitTypeDeclaration(n *ast.TypeDeclaration) {
	ast.WalkTypeDeclarationChildren(s, n)
}

func (s *Solver) VisitEventDeclaration(n *ast.EventDeclaration) {
	ast.WalkEventDeclarationChildren(s, n)
}

func (s *Solver) VisitInterfaceField(n *ast.InterfaceField)   { ast.WalkInterfaceFieldChildren(s, n) }
func (s *Solver) VisitInterfaceMethod(n *ast.InterfaceMethod) { ast.WalkInterfaceMethodChildren(s, n) }

func (s *Solver) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	ast.WalkInterfaceDeclarationChildren(s, n)
}

func (s *Solver) VisitEnumMember(n *ast.EnumMember)         { ast.WalkEnumMemberChildren(s, n) }
func (s *Solver) VisitEnumDeclaration(n *ast.EnumDeclaration) {
	ast.WalkEnumDeclarationChildren(s, n)
}
func (s *Solver) VisitParameter(n *ast.Parameter) { ast.WalkParameterChildren(s, n) }
func (s *Solver) VisitDecorator(n *ast.Decorator) { ast.WalkDecoratorChildren(s, n) }

func (s *Solver) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	ast.WalkFunctionDeclarationChildren(s, n)
}

func (s *Solver) VisitInstanceNameDeclarator(n *ast.InstanceNameDeclarator) {
	ast.WalkInstanceNameDeclaratorChildren(s, n)
}

func (s *Solver) VisitInstanceTagDeclarator(n *ast.InstanceTagDeclarator) {
	ast.WalkInstanceTagDeclaratorChildren(s, n)
}

func (s *Solver) VisitInstanceAttributeDeclarator(n *ast.InstanceAttributeDeclarator) {
	ast.WalkInstanceAttributeDeclaratorChildren(s, n)
}

func (s *Solver) VisitInstancePropertyDeclarator(n *ast.InstancePropertyDeclarator) {
	ast.WalkInstancePropertyDeclaratorChildren(s, n)
}

func (s *Solver) VisitBreak(n *ast.Break)       {}
func (s *Solver) VisitContinue(n *ast.Continue) {}
func (s *Solver) VisitReturn(n *ast.Return)     { ast.WalkReturnChildren(s, n) }
func (s *Solver) VisitIf(n *ast.If)             { ast.WalkIfChildren(s, n) }
func (s *Solver) VisitWhile(n *ast.While)       { ast.WalkWhileChildren(s, n) }
func (s *Solver) VisitRepeat(n *ast.Repeat)     { ast.WalkRepeatChildren(s, n) }
func (s *Solver) VisitFor(n *ast.For)           { ast.WalkForChildren(s, n) }
func (s *Solver) VisitAfter(n *ast.After)       { ast.WalkAfterChildren(s, n) }
func (s *Solver) VisitEvery(n *ast.Every)       { ast.WalkEveryChildren(s, n) }
func (s *Solver) VisitMatchCase(n *ast.MatchCase) { ast.WalkMatchCaseChildren(s, n) }
func (s *Solver) VisitMatchElseCase(n *ast.MatchElseCase) {
	ast.WalkMatchElseCaseChildren(s, n)
}
func (s *Solver) VisitMatch(n *ast.Match)   { ast.WalkMatchChildren(s, n) }
func (s *Solver) VisitImport(n *ast.Import) { ast.WalkImportChildren(s, n) }
func (s *Solver) VisitExport(n *ast.Export) { ast.WalkExportChildren(s, n) }

func (s *Solver) VisitPrimitiveTypeRef(n *ast.PrimitiveTypeRef) {}
func (s *Solver) VisitLiteralTypeRef(n *ast.LiteralTypeRef)     { ast.WalkLiteralTypeRefChildren(s, n) }
func (s *Solver) VisitTypeNameRef(n *ast.TypeNameRef)           { ast.WalkTypeNameRefChildren(s, n) }
func (s *Solver) VisitNullableTypeRef(n *ast.NullableTypeRef)   { ast.WalkNullableTypeRefChildren(s, n) }
func (s *Solver) VisitArrayTypeRef(n *ast.ArrayTypeRef)         { ast.WalkArrayTypeRefChildren(s, n) }
func (s *Solver) VisitTupleTypeRef(n *ast.TupleTypeRef)         { ast.WalkTupleTypeRefChildren(s, n) }
func (s *Solver) VisitFunctionTypeRef(n *ast.FunctionTypeRef)   { ast.WalkFunctionTypeRefChildren(s, n) }
func (s *Solver) VisitUnionTypeRef(n *ast.UnionTypeRef)         { ast.WalkUnionTypeRefChildren(s, n) }

func (s *Solver) VisitIntersectionTypeRef(n *ast.IntersectionTypeRef) {
	ast.WalkIntersectionTypeRefChildren(s, n)
}

func (s *Solver) VisitTypeParameterRef(n *ast.TypeParameterRef) {
	ast.WalkTypeParameterRefChildren(s, n)
}
