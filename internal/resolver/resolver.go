// Package resolver implements spec.md §4.4: lexical name resolution
// (declare/define/resolve over a scope stack of name -> defined-bool
// frames) and statement-context validity (break/continue/return/await).
// Grounded on original_source/src/resolver.cpp and include/ion/resolver.h,
// translated from the original's RAII ContextGuard and std::set duplicate
// trackers into Go's defer-based guard and map[string]bool sets.
package resolver

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/intrinsics"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/symbols"
)

// Context is the resolver's statement-legality state, spec.md §4.4.
type Context int

const (
	Global Context = iota
	Block
	Loop
	Function
	AsyncFunction
)

// Resolver walks a SourceFile validating scoping and statement context. It
// embeds ast.Walker for every node shape it doesn't care about (most
// expression forms); see children.go's WalkXChildren helpers for why its
// own overrides must recurse through r, not through the embedded Walker.
type Resolver struct {
	ast.Walker
	ctx   *pipeline.PipelineContext
	scope *symbols.SymbolTable

	context Context

	usedInterfaceMembers   map[string]bool
	usedInstanceProperties map[string]bool
	usedInstanceAttributes map[string]bool
	usedInstanceTags       map[string]bool
}

var _ ast.Visitor = (*Resolver)(nil)

// New builds a Resolver reporting into ctx.
func New(ctx *pipeline.PipelineContext) *Resolver {
	return &Resolver{
		ctx:                    ctx,
		scope:                  symbols.NewSymbolTable(),
		context:                Global,
		usedInterfaceMembers:   make(map[string]bool),
		usedInstanceProperties: make(map[string]bool),
		usedInstanceAttributes: make(map[string]bool),
		usedInstanceTags:       make(map[string]bool),
	}
}

// Run resolves every top-level statement of file, pre-declaring intrinsic
// names first (spec.md §4.4's "at pipeline start").
func (r *Resolver) Run(file *ast.SourceFile) {
	file.Accept(r)
}

// pushScope/popScope enter/leave a lexical frame, chained for outward
// lookup.
func (r *Resolver) pushScope() { r.scope = symbols.NewEnclosedSymbolTable(r.scope) }
func (r *Resolver) popScope()  { r.scope = r.scope.Outer() }

// enterContext sets the active Context and returns a func that restores
// the enclosing one, the Go analogue of ContextGuard's RAII pair.
func (r *Resolver) enterContext(c Context) func() {
	enclosing := r.context
	r.context = c
	return func() { r.context = enclosing }
}

func (r *Resolver) declare(name string, span source.Span) {
	if !r.scope.Declare(name, nil) {
		r.ctx.Report(diagnostics.New(diagnostics.DuplicateVariable, span, name))
	}
}

func (r *Resolver) define(name string) {
	r.scope.Define(name, nil)
}

func (r *Resolver) declareDefine(name *ast.Identifier) {
	r.declare(name.Name, name.Span())
	r.define(name.Name)
}

func (r *Resolver) resolveName(name string, span source.Span) {
	_, defined, ok := r.scope.ResolveWithDefined(name)
	if ok && !defined {
		r.ctx.Report(diagnostics.New(diagnostics.VariableReadInOwnInitializer, span))
		return
	}
	if !ok {
		r.ctx.Report(diagnostics.New(diagnostics.VariableNotFound, span, name))
	}
}

func (r *Resolver) duplicateMemberCheck(set map[string]bool, name string, span source.Span, fieldType string) {
	if set[name] {
		r.ctx.Report(diagnostics.New(diagnostics.DuplicateMember, span, fieldType, name))
	}
	set[name] = true
}

func (r *Resolver) VisitSourceFile(n *ast.SourceFile) {
	r.pushScope()
	for _, sym := range intrinsics.Symbols() {
		r.scope.DeclareDefine(sym.Name, nil)
	}
	ast.WalkSourceFileChildren(r, n)
	r.popScope()
}

func (r *Resolver) VisitIdentifier(n *ast.Identifier) {
	r.resolveName(n.Name, n.Span())
}

func (r *Resolver) VisitAwait(n *ast.Await) {
	if r.context != AsyncFunction {
		r.ctx.Report(diagnostics.New(diagnostics.InvalidAwait, n.Span()))
	}
	ast.WalkAwaitChildren(r, n)
}

func (r *Resolver) VisitBlock(n *ast.Block) {
	r.pushScope()
	ast.WalkBlockChildren(r, n)
	r.popScope()
}

func (r *Resolver) VisitTypeDeclaration(n *ast.TypeDeclaration) {
	r.declare(n.Name.Name, n.Name.Span())
	for _, tp := range n.TypeParameters {
		tp.Accept(r)
	}
	n.Value.Accept(r)
	r.define(n.Name.Name)
}

func (r *Resolver) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	r.declare(n.Name.Name, n.Name.Span())
	if n.TypeAnnotation != nil {
		n.TypeAnnotation.Accept(r)
	}
	if n.Initializer != nil {
		n.Initializer.Accept(r)
	}
	r.define(n.Name.Name)
}

func (r *Resolver) VisitEventDeclaration(n *ast.EventDeclaration) {
	r.declareDefine(n.Name)
	r.pushScope()
	ast.WalkEventDeclarationChildren(r, n)
	r.popScope()
}

func (r *Resolver) VisitEnumDeclaration(n *ast.EnumDeclaration) {
	r.declareDefine(n.Name)
	ast.WalkEnumDeclarationChildren(r, n)
}

func (r *Resolver) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	r.declareDefine(n.Name)
	ast.WalkInterfaceDeclarationChildren(r, n)
}

func (r *Resolver) VisitInterfaceField(n *ast.InterfaceField) {
	r.duplicateMemberCheck(r.usedInterfaceMembers, n.Name.Name, n.Span(), "interface member")
	ast.WalkInterfaceFieldChildren(r, n)
}

func (r *Resolver) VisitInterfaceMethod(n *ast.InterfaceMethod) {
	r.duplicateMemberCheck(r.usedInterfaceMembers, n.Name.Name, n.Span(), "interface member")
	ast.WalkInterfaceMethodChildren(r, n)
}

func (r *Resolver) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	r.declareDefine(n.Name)
	fnContext := Function
	if n.IsAsync {
		fnContext = AsyncFunction
	}
	restore := r.enterContext(fnContext)
	r.pushScope()
	ast.WalkFunctionDeclarationChildren(r, n)
	r.popScope()
	restore()
}

func (r *Resolver) VisitParameter(n *ast.Parameter) {
	r.declareDefine(n.Name)
	ast.WalkParameterChildren(r, n)
}

func (r *Resolver) VisitInstanceConstructor(n *ast.InstanceConstructor) {
	ast.WalkInstanceConstructorChildren(r, n)
}

func (r *Resolver) VisitInstanceAttributeDeclarator(n *ast.InstanceAttributeDeclarator) {
	r.duplicateMemberCheck(r.usedInstanceAttributes, n.Name.Name, n.Span(), "instance attribute")
	ast.WalkInstanceAttributeDeclaratorChildren(r, n)
}

func (r *Resolver) VisitInstanceNameDeclarator(n *ast.InstanceNameDeclarator) {
	r.duplicateMemberCheck(r.usedInstanceProperties, "Name", n.Span(), "instance name property")
	ast.WalkInstanceNameDeclaratorChildren(r, n)
}

func (r *Resolver) VisitInstancePropertyDeclarator(n *ast.InstancePropertyDeclarator) {
	r.duplicateMemberCheck(r.usedInstanceProperties, n.Name.Name, n.Span(), "instance property")
	ast.WalkInstancePropertyDeclaratorChildren(r, n)
}

func (r *Resolver) VisitInstanceTagDeclarator(n *ast.InstanceTagDeclarator) {
	r.duplicateMemberCheck(r.usedInstanceTags, "tag", n.Span(), "instance tag")
	ast.WalkInstanceTagDeclaratorChildren(r, n)
}

func (r *Resolver) VisitBreak(n *ast.Break) {
	if r.context != Loop {
		r.ctx.Report(diagnostics.New(diagnostics.InvalidBreak, n.Span()))
	}
}

func (r *Resolver) VisitContinue(n *ast.Continue) {
	if r.context != Loop {
		r.ctx.Report(diagnostics.New(diagnostics.InvalidContinue, n.Span()))
	}
}

func (r *Resolver) VisitReturn(n *ast.Return) {
	if r.context != Function && r.context != AsyncFunction {
		r.ctx.Report(diagnostics.New(diagnostics.InvalidReturn, n.Span()))
	}
	ast.WalkReturnChildren(r, n)
}

func (r *Resolver) visitLoop(body func()) {
	restore := r.enterContext(Loop)
	body()
	restore()
}

func (r *Resolver) VisitWhile(n *ast.While) {
	r.visitLoop(func() { ast.WalkWhileChildren(r, n) })
}

func (r *Resolver) VisitRepeat(n *ast.Repeat) {
	r.visitLoop(func() { ast.WalkRepeatChildren(r, n) })
}

func (r *Resolver) VisitFor(n *ast.For) {
	r.visitLoop(func() {
		r.pushScope()
		for _, name := range n.Names {
			r.declareDefine(name)
		}
		if n.Iterable != nil {
			n.Iterable.Accept(r)
		}
		n.Body.Accept(r)
		r.popScope()
	})
}

func (r *Resolver) VisitEvery(n *ast.Every) {
	r.visitLoop(func() { ast.WalkEveryChildren(r, n) })
}

func (r *Resolver) VisitImport(n *ast.Import) {
	// import path validity is out of scope for this analysis front end.
	for _, name := range n.Names {
		r.declareDefine(name)
	}
}

func (r *Resolver) VisitTypeNameRef(n *ast.TypeNameRef) {
	r.resolveName(n.Name, n.Span())
	ast.WalkTypeNameRefChildren(r, n)
}

func (r *Resolver) VisitTypeParameterRef(n *ast.TypeParameterRef) {
	r.declare(n.Name, n.Span())
	ast.WalkTypeParameterRefChildren(r, n)
	r.define(n.Name)
}

// The overrides below carry no scoping logic of their own; they exist so
// that recursion into these node kinds dispatches back through r rather
// than through the embedded Walker. Go's embedding promotes Walker's
// methods verbatim — an unoverridden composite node would otherwise walk
// its children with w (the embedded Walker) as the Visitor, silently
// losing every override above for anything nested under it.
func (r *Resolver) VisitArrayLiteral(n *ast.ArrayLiteral) { ast.WalkArrayLiteralChildren(r, n) }
func (r *Resolver) VisitTupleLiteral(n *ast.TupleLiteral) { ast.WalkTupleLiteralChildren(r, n) }
func (r *Resolver) VisitRangeLiteral(n *ast.RangeLiteral) { ast.WalkRangeLiteralChildren(r, n) }
func (r *Resolver) VisitHsvLiteral(n *ast.HsvLiteral)     { ast.WalkHsvLiteralChildren(r, n) }
func (r *Resolver) VisitVectorLiteral(n *ast.VectorLiteral) {
	ast.WalkVectorLiteralChildren(r, n)
}
func (r *Resolver) VisitInterpolatedString(n *ast.InterpolatedString) {
	ast.WalkInterpolatedStringChildren(r, n)
}
func (r *Resolver) VisitParenthesized(n *ast.Parenthesized) { ast.WalkParenthesizedChildren(r, n) }
func (r *Resolver) VisitBinaryOp(n *ast.BinaryOp)           { ast.WalkBinaryOpChildren(r, n) }
func (r *Resolver) VisitAssignmentOp(n *ast.AssignmentOp)   { ast.WalkAssignmentOpChildren(r, n) }
func (r *Resolver) VisitUnaryOp(n *ast.UnaryOp)             { ast.WalkUnaryOpChildren(r, n) }
func (r *Resolver) VisitPostfixUnaryOp(n *ast.PostfixUnaryOp) {
	ast.WalkPostfixUnaryOpChildren(r, n)
}
func (r *Resolver) VisitTernaryOp(n *ast.TernaryOp)   { ast.WalkTernaryOpChildren(r, n) }
func (r *Resolver) VisitInvocation(n *ast.Invocation) { ast.WalkInvocationChildren(r, n) }
func (r *Resolver) VisitTypeOf(n *ast.TypeOf)         { ast.WalkTypeOfChildren(r, n) }
func (r *Resolver) VisitNameOf(n *ast.NameOf)         { ast.WalkNameOfChildren(r, n) }
func (r *Resolver) VisitMemberAccess(n *ast.MemberAccess) {
	if n.Object != nil {
		n.Object.Accept(r)
	}
}
func (r *Resolver) VisitOptionalMemberAccess(n *ast.OptionalMemberAccess) {
	if n.Object != nil {
		n.Object.Accept(r)
	}
}
func (r *Resolver) VisitElementAccess(n *ast.ElementAccess) { ast.WalkElementAccessChildren(r, n) }
func (r *Resolver) VisitExpressionStatement(n *ast.ExpressionStatement) {
	ast.WalkExpressionStatementChildren(r, n)
}
func (r *Resolver) VisitEnumMember(n *ast.EnumMember) { ast.WalkEnumMemberChildren(r, n) }
func (r *Resolver) VisitDecorator(n *ast.Decorator)   { ast.WalkDecoratorChildren(r, n) }
func (r *Resolver) VisitIf(n *ast.If)                 { ast.WalkIfChildren(r, n) }
func (r *Resolver) VisitAfter(n *ast.After)            { ast.WalkAfterChildren(r, n) }
func (r *Resolver) VisitMatchCase(n *ast.MatchCase)    { ast.WalkMatchCaseChildren(r, n) }
func (r *Resolver) VisitMatchElseCase(n *ast.MatchElseCase) {
	ast.WalkMatchElseCaseChildren(r, n)
}
func (r *Resolver) VisitMatch(n *ast.Match)   { ast.WalkMatchChildren(r, n) }
func (r *Resolver) VisitExport(n *ast.Export) { ast.WalkExportChildren(r, n) }
func (r *Resolver) VisitLiteralTypeRef(n *ast.LiteralTypeRef) {
	ast.WalkLiteralTypeRefChildren(r, n)
}
func (r *Resolver) VisitNullableTypeRef(n *ast.NullableTypeRef) {
	ast.WalkNullableTypeRefChildren(r, n)
}
func (r *Resolver) VisitArrayTypeRef(n *ast.ArrayTypeRef) { ast.WalkArrayTypeRefChildren(r, n) }
func (r *Resolver) VisitTupleTypeRef(n *ast.TupleTypeRef) { ast.WalkTupleTypeRefChildren(r, n) }
func (r *Resolver) VisitFunctionTypeRef(n *ast.FunctionTypeRef) {
	ast.WalkFunctionTypeRefChildren(r, n)
}
func (r *Resolver) VisitUnionTypeRef(n *ast.UnionTypeRef) { ast.WalkUnionTypeRefChildren(r, n) }
func (r *Resolver) VisitIntersectionTypeRef(n *ast.IntersectionTypeRef) {
	ast.WalkIntersectionTypeRefChildren(r, n)
}
