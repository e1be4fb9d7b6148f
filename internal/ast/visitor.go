package ast

// Visitor is polymorphic over the three node families (expressions,
// statements, type refs), exposing one method per concrete variant, per
// spec.md §4.3. Grounded on original_source/include/ion/ast/visitor.h's
// AstVisitor<R> template, translated from a templated return type to
// Go's side-effecting double dispatch: passes that need a result thread
// it through their own receiver state instead of a return value.
type Visitor interface {
	VisitSourceFile(n *SourceFile)

	// Expressions
	VisitIdentifier(n *Identifier)
	VisitPrimitiveLiteral(n *PrimitiveLiteral)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitTupleLiteral(n *TupleLiteral)
	VisitRangeLiteral(n *RangeLiteral)
	VisitRgbLiteral(n *RgbLiteral)
	VisitHsvLiteral(n *HsvLiteral)
	VisitVectorLiteral(n *VectorLiteral)
	VisitInterpolatedString(n *InterpolatedString)
	VisitParenthesized(n *Parenthesized)
	VisitBinaryOp(n *BinaryOp)
	VisitAssignmentOp(n *AssignmentOp)
	VisitUnaryOp(n *UnaryOp)
	VisitPostfixUnaryOp(n *PostfixUnaryOp)
	VisitTernaryOp(n *TernaryOp)
	VisitInvocation(n *Invocation)
	VisitTypeOf(n *TypeOf)
	VisitNameOf(n *NameOf)
	VisitAwait(n *Await)
	VisitMemberAccess(n *MemberAccess)
	VisitOptionalMemberAccess(n *OptionalMemberAccess)
	VisitElementAccess(n *ElementAccess)
	VisitInstanceConstructor(n *InstanceConstructor)

	// Statements
	VisitExpressionStatement(n *ExpressionStatement)
	VisitBlock(n *Block)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitTypeDeclaration(n *TypeDeclaration)
	VisitEventDeclaration(n *EventDeclaration)
	VisitInterfaceField(n *InterfaceField)
	VisitInterfaceMethod(n *InterfaceMethod)
	VisitInterfaceDeclaration(n *InterfaceDeclaration)
	VisitEnumMember(n *EnumMember)
	VisitEnumDeclaration(n *EnumDeclaration)
	VisitParameter(n *Parameter)
	VisitDecorator(n *Decorator)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitInstanceNameDeclarator(n *InstanceNameDeclarator)
	VisitInstanceTagDeclarator(n *InstanceTagDeclarator)
	VisitInstanceAttributeDeclarator(n *InstanceAttributeDeclarator)
	VisitInstancePropertyDeclarator(n *InstancePropertyDeclarator)
	VisitBreak(n *Break)
	VisitContinue(n *Continue)
	VisitReturn(n *Return)
	VisitIf(n *If)
	VisitWhile(n *While)
	VisitRepeat(n *Repeat)
	VisitFor(n *For)
	VisitAfter(n *After)
	VisitEvery(n *Every)
	VisitMatchCase(n *MatchCase)
	VisitMatchElseCase(n *MatchElseCase)
	VisitMatch(n *Match)
	VisitImport(n *Import)
	VisitExport(n *Export)

	// Type references
	VisitPrimitiveTypeRef(n *PrimitiveTypeRef)
	VisitLiteralTypeRef(n *LiteralTypeRef)
	VisitTypeNameRef(n *TypeNameRef)
	VisitNullableTypeRef(n *NullableTypeRef)
	VisitArrayTypeRef(n *ArrayTypeRef)
	VisitTupleTypeRef(n *TupleTypeRef)
	VisitFunctionTypeRef(n *FunctionTypeRef)
	VisitUnionTypeRef(n *UnionTypeRef)
	VisitIntersectionTypeRef(n *IntersectionTypeRef)
	VisitTypeParameterRef(n *TypeParameterRef)
}

func acceptAll[N Node](v Visitor, nodes []N) {
	for _, n := range nodes {
		n.Accept(v)
	}
}

func acceptIf(v Visitor, n Node) {
	if n == nil {
		return
	}
	n.Accept(v)
}
