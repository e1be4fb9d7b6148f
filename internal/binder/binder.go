// Package binder implements spec.md §4.5: symbol creation and attachment.
// For every NamedDeclaration it creates the appropriate symbol kind and
// stores it both on the node (where the node is ast.Symboled) and in the
// binder's own scope table; for every name use it looks the name up
// through that same scope stack and records the resolved symbol.
//
// Grounded on original_source/src/binder.cpp (whose one concrete override,
// visit_variable_declaration, binds before recursing into children — the
// order this package follows throughout) and include/ion/binder.h (whose
// DEFINE_DECLARATION_VISITOR/DEFINE_SCOPED_DECLARATION_VISITOR/
// DEFINE_TYPE_DECLARATION_VISITOR macro family documents bind-after; the
// concrete example overrides that, and is the one actually exercised at
// runtime, so this port treats bind-before-children as authoritative).
//
// Go's ast.Symboled set is narrower than the original's "every SyntaxNode
// carries a symbol" design (see ast/node.go): literals and arithmetic
// expressions have no symbol slot to attach to here. Where the original's
// DEFINE_EMPTY_SYMBOL_VISITOR would stamp a placeholder symbol on such a
// node, this binder simply recurses through it untouched.
package binder

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/intrinsics"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/symbols"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// Binder walks a resolved SourceFile attaching symbols node by node. Like
// Resolver, it embeds ast.Walker for the node kinds it has no interest in
// and must still override every composite kind with children so recursion
// dispatches back through b, not through the embedded Walker (children.go).
type Binder struct {
	ast.Walker
	ctx   *pipeline.PipelineContext
	scope *symbols.SymbolTable
}

var _ ast.Visitor = (*Binder)(nil)

func New(ctx *pipeline.PipelineContext) *Binder {
	return &Binder{ctx: ctx, scope: symbols.NewSymbolTable()}
}

func (b *Binder) pushScope() { b.scope = symbols.NewEnclosedSymbolTable(b.scope) }
func (b *Binder) popScope()  { b.scope = b.scope.Outer() }

// bindDeclaration creates a DeclarationSymbol for decl, attaches it to
// node (when node is Symboled) and defines it in the current scope. The
// type slot starts nil; the type solver stage fills it in (spec.md §4.6).
func (b *Binder) bindDeclaration(node ast.Symboled, name string) *symbols.DeclarationSymbol {
	sym := symbols.NewDeclarationSymbol(name, node, nil)
	node.SetSymbol(sym)
	b.scope.Define(name, sym)
	return sym
}

// bindTypeDeclaration creates a TypeDeclarationSymbol carrying an eagerly
// lowered type (TypeDeclaration/InterfaceDeclaration, spec.md §4.5).
func (b *Binder) bindTypeDeclaration(node ast.Symboled, name string, typ typesystem.Type) *symbols.TypeDeclarationSymbol {
	sym := symbols.NewTypeDeclarationSymbol(name, typ, node)
	node.SetSymbol(sym)
	b.scope.Define(name, sym)
	return sym
}

// bindAnonymous attaches a NamedSymbol with no declaring target, for
// expressions whose meaning the type solver, not lexical scope,
// determines (spec.md §4.5's MemberAccess case).
func (b *Binder) bindAnonymous(node ast.Symboled, name string) {
	node.SetSymbol(symbols.NewNamedSymbol(name, nil))
}

func (b *Binder) VisitSourceFile(n *ast.SourceFile) {
	b.pushScope()
	for _, sym := range intrinsics.Symbols() {
		b.scope.Define(sym.Name, sym)
	}
	ast.WalkSourceFileChildren(b, n)
	b.ctx.SymbolTable = b.scope
}

func (b *Binder) VisitIdentifier(n *ast.Identifier) {
	if sym, ok := b.scope.Resolve(n.Name); ok {
		n.SetSymbol(sym)
	}
}

func (b *Binder) VisitTypeNameRef(n *ast.TypeNameRef) {
	if sym, ok := b.scope.Resolve(n.Name); ok {
		n.SetSymbol(sym)
	}
	ast.WalkTypeNameRefChildren(b, n)
}

// VisitMemberAccess deliberately does not recurse into n.Member the way
// WalkMemberAccessChildren does: a member name is resolved against the
// object's type by the type solver, not against lexical scope, so running
// it through VisitIdentifier here would either misattach an unrelated
// same-named scope symbol or silently attach nothing.
func (b *Binder) VisitMemberAccess(n *ast.MemberAccess) {
	if n.Object != nil {
		n.Object.Accept(b)
	}
	b.bindAnonymous(n, n.Member.Name)
}

func (b *Binder) VisitOptionalMemberAccess(n *ast.OptionalMemberAccess) {
	if n.Object != nil {
		n.Object.Accept(b)
	}
	b.bindAnonymous(n, n.Member.Name)
}

func (b *Binder) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	b.bindDeclaration(n, n.Name.Name)
	ast.WalkVariableDeclarationChildren(b, n)
}

func (b *Binder) VisitTypeDeclaration(n *ast.TypeDeclaration) {
	b.bindTypeDeclaration(n, n.Name.Name, LowerTypeRef(n.Value))
	ast.WalkTypeDeclarationChildren(b, n)
}

func (b *Binder) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	b.bindTypeDeclaration(n, n.Name.Name, interfaceType(n))
	b.pushScope()
	ast.WalkInterfaceDeclarationChildren(b, n)
	b.popScope()
}

// interfaceType builds the structural Object behind an interface
// declaration's nominal Interface type, per spec.md §4.5's "InterfaceType
// stored on a TypeDeclarationSymbol".
func interfaceType(n *ast.InterfaceDeclaration) typesystem.Type {
	members := make([]typesystem.Member, 0, len(n.Fields)+len(n.Methods))
	for _, f := range n.Fields {
		members = append(members, typesystem.Member{
			Key:   typesystem.Literal{Kind: typesystem.String, Value: f.Name.Name},
			Value: LowerTypeRef(f.Type),
		})
	}
	for _, m := range n.Methods {
		params := make([]typesystem.Type, len(m.Parameters))
		for i, p := range m.Parameters {
			params[i] = LowerTypeRef(p.Type)
		}
		var ret typesystem.Type = typesystem.VoidType
		if m.ReturnType != nil {
			ret = LowerTypeRef(m.ReturnType)
		}
		members = append(members, typesystem.Member{
			Key:   typesystem.Literal{Kind: typesystem.String, Value: m.Name.Name},
			Value: typesystem.Function{Parameters: params, Return: ret},
		})
	}
	typeParams := make([]typesystem.Type, len(n.TypeParameters))
	for i, tp := range n.TypeParameters {
		p := typesystem.TypeParameter{Name: tp.Name}
		if tp.Base != nil {
			p.Base = LowerTypeRef(tp.Base)
		}
		if tp.Default != nil {
			p.Default = LowerTypeRef(tp.Default)
		}
		typeParams[i] = p
	}
	return typesystem.Interface{
		Name:           n.Name.Name,
		TypeParameters: typeParams,
		Object:         typesystem.Object{Members: members},
	}
}

func (b *Binder) VisitEventDeclaration(n *ast.EventDeclaration) {
	b.bindDeclaration(n, n.Name.Name)
	b.pushScope()
	ast.WalkEventDeclarationChildren(b, n)
	b.popScope()
}

func (b *Binder) VisitEnumDeclaration(n *ast.EnumDeclaration) {
	enumType := typesystem.TypeName{Name: n.Name.Name}
	b.bindTypeDeclaration(n, n.Name.Name, enumType)
	b.pushScope()
	ast.WalkEnumDeclarationChildren(b, n)
	b.popScope()
}

func (b *Binder) VisitEnumMember(n *ast.EnumMember) {
	b.bindDeclaration(n, n.Name.Name)
	ast.WalkEnumMemberChildren(b, n)
}

func (b *Binder) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	b.bindDeclaration(n, n.Name.Name)
	b.pushScope()
	ast.WalkFunctionDeclarationChildren(b, n)
	b.popScope()
}

func (b *Binder) VisitParameter(n *ast.Parameter) {
	b.bindDeclaration(n, n.Name.Name)
	ast.WalkParameterChildren(b, n)
}

func (b *Binder) VisitImport(n *ast.Import) {
	b.bindAnonymous(n, n.ModuleName)
	for _, name := range n.Names {
		sym := symbols.NewNamedSymbol(name.Name, nil)
		name.SetSymbol(sym)
		b.scope.Define(name.Name, sym)
	}
}

// VisitTypeParameterRef carries no binding of its own (binder.h's Binder
// does not override visit_type_parameter either); it exists only for
// correct dispatch into Base/Default.
func (b *Binder) VisitTypeParameterRef(n *ast.TypeParameterRef) {
	ast.WalkTypeParameterRefChildren(b, n)
}

func (b *Binder) VisitBlock(n *ast.Block) {
	b.pushScope()
	ast.WalkBlockChildren(b, n)
	b.popScope()
}

func (b *Binder) VisitFor(n *ast.For) {
	b.pushScope()
	for _, name := range n.Names {
		b.scope.Define(name.Name, symbols.NewNamedSymbol(name.Name, nil))
	}
	if n.Iterable != nil {
		n.Iterable.Accept(b)
	}
	n.Body.Accept(b)
	b.popScope()
}

// The overrides below carry no binding logic; they exist purely so
// recursion into these node kinds dispatches back through b rather than
// through the embedded Walker (see children.go's WalkXChildren doc).
func (b *Binder) VisitArrayLiteral(n *ast.ArrayLiteral) { ast.WalkArrayLiteralChildren(b, n) }
func (b *Binder) VisitTupleLiteral(n *ast.TupleLiteral) { ast.WalkTupleLiteralChildren(b, n) }
func (b *Binder) VisitRangeLiteral(n *ast.RangeLiteral) { ast.WalkRangeLiteralChildren(b, n) }
func (b *Binder) VisitHsvLiteral(n *ast.HsvLiteral)     { ast.WalkHsvLiteralChildren(b, n) }
func (b *Binder) VisitVectorLiteral(n *ast.VectorLiteral) {
	ast.WalkVectorLiteralChildren(b, n)
}
func (b *Binder) VisitInterpolatedString(n *ast.InterpolatedString) {
	ast.WalkInterpolatedStringChildren(b, n)
}
func (b *Binder) VisitParenthesized(n *ast.Parenthesized) { ast.WalkParenthesizedChildren(b, n) }
func (b *Binder) VisitBinaryOp(n *ast.BinaryOp)           { ast.WalkBinaryOpChildren(b, n) }
func (b *Binder) VisitAssignmentOp(n *ast.AssignmentOp)   { ast.WalkAssignmentOpChildren(b, n) }
func (b *Binder) VisitUnaryOp(n *ast.UnaryOp)             { ast.WalkUnaryOpChildren(b, n) }
func (b *Binder) VisitPostfixUnaryOp(n *ast.PostfixUnaryOp) {
	ast.WalkPostfixUnaryOpChildren(b, n)
}
func (b *Binder) VisitTernaryOp(n *ast.TernaryOp)   { ast.WalkTernaryOpChildren(b, n) }
func (b *Binder) VisitInvocation(n *ast.Invocation) { ast.WalkInvocationChildren(b, n) }
func (b *Binder) VisitTypeOf(n *ast.TypeOf)         { ast.WalkTypeOfChildren(b, n) }
func (b *Binder) VisitNameOf(n *ast.NameOf)         { ast.WalkNameOfChildren(b, n) }
func (b *Binder) VisitAwait(n *ast.Await)           { ast.WalkAwaitChildren(b, n) }
func (b *Binder) VisitElementAccess(n *ast.ElementAccess) { ast.WalkElementAccessChildren(b, n) }
func (b *Binder) VisitInstanceConstructor(n *ast.InstanceConstructor) {
	ast.WalkInstanceConstructorChildren(b, n)
}
func (b *Binder) VisitExpressionStatement(n *ast.ExpressionStatement) {
	ast.WalkExpressionStatementChildren(b, n)
}
func (b *Binder) VisitInterfaceField(n *ast.InterfaceField) { ast.WalkInterfaceFieldChildren(b, n) }
func (b *Binder) VisitInterfaceMethod(n *ast.InterfaceMethod) {
	ast.WalkInterfaceMethodChildren(b, n)
}
func (b *Binder) VisitDecorator(n *ast.Decorator) { ast.WalkDecoratorChildren(b, n) }
func (b *Binder) VisitInstanceNameDeclarator(n *ast.InstanceNameDeclarator) {
	ast.WalkInstanceNameDeclaratorChildren(b, n)
}
func (b *Binder) VisitInstanceTagDeclarator(n *ast.InstanceTagDeclarator) {
	ast.WalkInstanceTagDeclaratorChildren(b, n)
}
func (b *Binder) VisitInstanceAttributeDeclarator(n *ast.InstanceAttributeDeclarator) {
	ast.WalkInstanceAttributeDeclaratorChildren(b, n)
}
func (b *Binder) VisitInstancePropertyDeclarator(n *ast.InstancePropertyDeclarator) {
	ast.WalkInstancePropertyDeclaratorChildren(b, n)
}
func (b *Binder) VisitReturn(n *ast.Return) { ast.WalkReturnChildren(b, n) }
func (b *Binder) VisitIf(n *ast.If)         { ast.WalkIfChildren(b, n) }
func (b *Binder) VisitWhile(n *ast.While)   { ast.WalkWhileChildren(b, n) }
func (b *Binder) VisitRepeat(n *ast.Repeat) { ast.WalkRepeatChildren(b, n) }
func (b *Binder) VisitAfter(n *ast.After)   { ast.WalkAfterChildren(b, n) }
func (b *Binder) VisitEvery(n *ast.Every)   { ast.WalkEveryChildren(b, n) }
func (b *Binder) VisitMatchCase(n *ast.MatchCase) { ast.WalkMatchCaseChildren(b, n) }
func (b *Binder) VisitMatchElseCase(n *ast.MatchElseCase) {
	ast.WalkMatchElseCaseChildren(b, n)
}
func (b *Binder) VisitMatch(n *ast.Match)   { ast.WalkMatchChildren(b, n) }
func (b *Binder) VisitExport(n *ast.Export) { ast.WalkExportChildren(b, n) }
func (b *Binder) VisitLiteralTypeRef(n *ast.LiteralTypeRef) {
	ast.WalkLiteralTypeRefChildren(b, n)
}
func (b *Binder) VisitNullableTypeRef(n *ast.NullableTypeRef) {
	ast.WalkNullableTypeRefChildren(b, n)
}
func (b *Binder) VisitArrayTypeRef(n *ast.ArrayTypeRef) { ast.WalkArrayTypeRefChildren(b, n) }
func (b *Binder) VisitTupleTypeRef(n *ast.TupleTypeRef) { ast.WalkTupleTypeRefChildren(b, n) }
func (b *Binder) VisitFunctionTypeRef(n *ast.FunctionTypeRef) {
	ast.WalkFunctionTypeRefChildren(b, n)
}
func (b *Binder) VisitUnionTypeRef(n *ast.UnionTypeRef) { ast.WalkUnionTypeRefChildren(b, n) }
func (b *Binder) VisitIntersectionTypeRef(n *ast.IntersectionTypeRef) {
	ast.WalkIntersectionTypeRefChildren(b, n)
}
