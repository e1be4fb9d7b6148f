package ast

// Walker is the default post-order Visitor: it visits every child before
// doing nothing itself, so embedding it and overriding only the methods
// a pass cares about gives that pass a full, correct traversal for free.
// Grounded on original_source/include/ion/ast/visitor.h's AstVisitor<R>
// default method bodies, which recurse into children in source order
// before running the node's own (here: no-op) logic.
//
// Every method below delegates to a WalkXChildren helper (children.go)
// rather than recursing through w directly: a pass that embeds Walker and
// overrides, say, VisitBlock only gets virtual dispatch into its own
// override for Block's children if the recursion call carries the outer
// Visitor value, not the embedded *Walker. WalkBlockChildren takes that
// value explicitly, so both Walker itself and every pass built on it
// share one traversal definition per node.
type Walker struct{}

var _ Visitor = (*Walker)(nil)

func (w *Walker) VisitSourceFile(n *SourceFile) { WalkSourceFileChildren(w, n) }

func (w *Walker) VisitIdentifier(n *Identifier)             {}
func (w *Walker) VisitPrimitiveLiteral(n *PrimitiveLiteral) {}

func (w *Walker) VisitArrayLiteral(n *ArrayLiteral) { WalkArrayLiteralChildren(w, n) }
func (w *Walker) VisitTupleLiteral(n *TupleLiteral) { WalkTupleLiteralChildren(w, n) }
func (w *Walker) VisitRangeLiteral(n *RangeLiteral) { WalkRangeLiteralChildren(w, n) }
func (w *Walker) VisitRgbLiteral(n *RgbLiteral)     {}
func (w *Walker) VisitHsvLiteral(n *HsvLiteral)     { WalkHsvLiteralChildren(w, n) }
func (w *Walker) VisitVectorLiteral(n *VectorLiteral) { WalkVectorLiteralChildren(w, n) }

func (w *Walker) VisitInterpolatedString(n *InterpolatedString) {
	WalkInterpolatedStringChildren(w, n)
}

func (w *Walker) VisitParenthesized(n *Parenthesized) { WalkParenthesizedChildren(w, n) }
func (w *Walker) VisitBinaryOp(n *BinaryOp)           { WalkBinaryOpChildren(w, n) }
func (w *Walker) VisitAssignmentOp(n *AssignmentOp)   { WalkAssignmentOpChildren(w, n) }
func (w *Walker) VisitUnaryOp(n *UnaryOp)             { WalkUnaryOpChildren(w, n) }
func (w *Walker) VisitPostfixUnaryOp(n *PostfixUnaryOp) { WalkPostfixUnaryOpChildren(w, n) }
func (w *Walker) VisitTernaryOp(n *TernaryOp)         { WalkTernaryOpChildren(w, n) }
func (w *Walker) VisitInvocation(n *Invocation)       { WalkInvocationChildren(w, n) }
func (w *Walker) VisitTypeOf(n *TypeOf)               { WalkTypeOfChildren(w, n) }
func (w *Walker) VisitNameOf(n *NameOf)               { WalkNameOfChildren(w, n) }
func (w *Walker) VisitAwait(n *Await)                 { WalkAwaitChildren(w, n) }
func (w *Walker) VisitMemberAccess(n *MemberAccess)   { WalkMemberAccessChildren(w, n) }

func (w *Walker) VisitOptionalMemberAccess(n *OptionalMemberAccess) {
	WalkOptionalMemberAccessChildren(w, n)
}

func (w *Walker) VisitElementAccess(n *ElementAccess) { WalkElementAccessChildren(w, n) }

func (w *Walker) VisitInstanceConstructor(n *InstanceConstructor) {
	WalkInstanceConstructorChildren(w, n)
}

func (w *Walker) VisitExpressionStatement(n *ExpressionStatement) {
	WalkExpressionStatementChildren(w, n)
}

func (w *Walker) VisitBlock(n *Block) { WalkBlockChildren(w, n) }

func (w *Walker) VisitVariableDeclaration(n *VariableDeclaration) {
	WalkVariableDeclarationChildren(w, n)
}

func (w *Walker) VisitTypeDeclaration(n *TypeDeclaration) { WalkTypeDeclarationChildren(w, n) }
func (w *Walker) VisitEventDeclaration(n *EventDeclaration) { WalkEventDeclarationChildren(w, n) }
func (w *Walker) VisitInterfaceField(n *InterfaceField)     { WalkInterfaceFieldChildren(w, n) }
func (w *Walker) VisitInterfaceMethod(n *InterfaceMethod)   { WalkInterfaceMethodChildren(w, n) }

func (w *Walker) VisitInterfaceDeclaration(n *InterfaceDeclaration) {
	WalkInterfaceDeclarationChildren(w, n)
}

func (w *Walker) VisitEnumMember(n *EnumMember)         { WalkEnumMemberChildren(w, n) }
func (w *Walker) VisitEnumDeclaration(n *EnumDeclaration) { WalkEnumDeclarationChildren(w, n) }
func (w *Walker) VisitParameter(n *Parameter)           { WalkParameterChildren(w, n) }
func (w *Walker) VisitDecorator(n *Decorator)           { WalkDecoratorChildren(w, n) }

func (w *Walker) VisitFunctionDeclaration(n *FunctionDeclaration) {
	WalkFunctionDeclarationChildren(w, n)
}

func (w *Walker) VisitInstanceNameDeclarator(n *InstanceNameDeclarator) {
	WalkInstanceNameDeclaratorChildren(w, n)
}

func (w *Walker) VisitInstanceTagDeclarator(n *InstanceTagDeclarator) {
	WalkInstanceTagDeclaratorChildren(w, n)
}

func (w *Walker) VisitInstanceAttributeDeclarator(n *InstanceAttributeDeclarator) {
	WalkInstanceAttributeDeclaratorChildren(w, n)
}

func (w *Walker) VisitInstancePropertyDeclarator(n *InstancePropertyDeclarator) {
	WalkInstancePropertyDeclaratorChildren(w, n)
}

func (w *Walker) VisitBreak(n *Break)       {}
func (w *Walker) VisitContinue(n *Continue) {}
func (w *Walker) VisitReturn(n *Return)     { WalkReturnChildren(w, n) }
func (w *Walker) VisitIf(n *If)             { WalkIfChildren(w, n) }
func (w *Walker) VisitWhile(n *While)       { WalkWhileChildren(w, n) }
func (w *Walker) VisitRepeat(n *Repeat)     { WalkRepeatChildren(w, n) }
func (w *Walker) VisitFor(n *For)           { WalkForChildren(w, n) }
func (w *Walker) VisitAfter(n *After)       { WalkAfterChildren(w, n) }
func (w *Walker) VisitEvery(n *Every)       { WalkEveryChildren(w, n) }
func (w *Walker) VisitMatchCase(n *MatchCase) { WalkMatchCaseChildren(w, n) }
func (w *Walker) VisitMatchElseCase(n *MatchElseCase) { WalkMatchElseCaseChildren(w, n) }
func (w *Walker) VisitMatch(n *Match)       { WalkMatchChildren(w, n) }
func (w *Walker) VisitImport(n *Import)     { WalkImportChildren(w, n) }
func (w *Walker) VisitExport(n *Export)     { WalkExportChildren(w, n) }

func (w *Walker) VisitPrimitiveTypeRef(n *PrimitiveTypeRef) {}
func (w *Walker) VisitLiteralTypeRef(n *LiteralTypeRef)     { WalkLiteralTypeRefChildren(w, n) }
func (w *Walker) VisitTypeNameRef(n *TypeNameRef)           { WalkTypeNameRefChildren(w, n) }
func (w *Walker) VisitNullableTypeRef(n *NullableTypeRef)   { WalkNullableTypeRefChildren(w, n) }
func (w *Walker) VisitArrayTypeRef(n *ArrayTypeRef)         { WalkArrayTypeRefChildren(w, n) }
func (w *Walker) VisitTupleTypeRef(n *TupleTypeRef)         { WalkTupleTypeRefChildren(w, n) }
func (w *Walker) VisitFunctionTypeRef(n *FunctionTypeRef)   { WalkFunctionTypeRefChildren(w, n) }
func (w *Walker) VisitUnionTypeRef(n *UnionTypeRef)         { WalkUnionTypeRefChildren(w, n) }

func (w *Walker) VisitIntersectionTypeRef(n *IntersectionTypeRef) {
	WalkIntersectionTypeRefChildren(w, n)
}

func (w *Walker) VisitTypeParameterRef(n *TypeParameterRef) { WalkTypeParameterRefChildren(w, n) }
