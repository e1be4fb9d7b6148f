package ast

// WalkXChildren functions visit a node's immediate children through the
// given Visitor, not through Walker specifically. Walker's own Visit*
// methods call these; so does every other pass. This is what lets a pass
// embed Walker for its unwritten methods while still getting virtual
// dispatch into its own overrides for the methods it does write — Go's
// embedding promotes methods but does not make embedded-method bodies
// call back through the outer type, so recursion must go through an
// explicit Visitor value (here: whatever v a pass's own override passes
// in, normally itself) rather than through the embedded Walker's "w".
func WalkSourceFileChildren(v Visitor, n *SourceFile) { acceptAll[Statement](v, n.Statements) }

func WalkArrayLiteralChildren(v Visitor, n *ArrayLiteral) { acceptAll[Expression](v, n.Elements) }
func WalkTupleLiteralChildren(v Visitor, n *TupleLiteral) { acceptAll[Expression](v, n.Elements) }

func WalkRangeLiteralChildren(v Visitor, n *RangeLiteral) {
	acceptIf(v, n.Start)
	acceptIf(v, n.Step)
	acceptIf(v, n.End)
}

func WalkHsvLiteralChildren(v Visitor, n *HsvLiteral) {
	acceptIf(v, n.H)
	acceptIf(v, n.S)
	acceptIf(v, n.V)
}

func WalkVectorLiteralChildren(v Visitor, n *VectorLiteral) {
	acceptAll[Expression](v, n.Components)
}

func WalkInterpolatedStringChildren(v Visitor, n *InterpolatedString) {
	acceptAll[Expression](v, n.Expressions)
}

func WalkParenthesizedChildren(v Visitor, n *Parenthesized) { acceptIf(v, n.Inner) }

func WalkBinaryOpChildren(v Visitor, n *BinaryOp) {
	acceptIf(v, n.Left)
	acceptIf(v, n.Right)
}

func WalkAssignmentOpChildren(v Visitor, n *AssignmentOp) {
	acceptIf(v, n.Left)
	acceptIf(v, n.Right)
}

func WalkUnaryOpChildren(v Visitor, n *UnaryOp)               { acceptIf(v, n.Operand) }
func WalkPostfixUnaryOpChildren(v Visitor, n *PostfixUnaryOp) { acceptIf(v, n.Operand) }

func WalkTernaryOpChildren(v Visitor, n *TernaryOp) {
	acceptIf(v, n.Condition)
	acceptIf(v, n.Then)
	acceptIf(v, n.Else)
}

func WalkInvocationChildren(v Visitor, n *Invocation) {
	acceptIf(v, n.Callee)
	acceptAll[TypeRef](v, n.TypeArguments)
	acceptAll[Expression](v, n.Arguments)
}

func WalkTypeOfChildren(v Visitor, n *TypeOf) { acceptIf(v, n.Argument) }
func WalkNameOfChildren(v Visitor, n *NameOf) { acceptIf(v, n.Target) }
func WalkAwaitChildren(v Visitor, n *Await)   { acceptIf(v, n.Argument) }

func WalkMemberAccessChildren(v Visitor, n *MemberAccess) {
	acceptIf(v, n.Object)
	n.Member.Accept(v)
}

func WalkOptionalMemberAccessChildren(v Visitor, n *OptionalMemberAccess) {
	acceptIf(v, n.Object)
	n.Member.Accept(v)
}

func WalkElementAccessChildren(v Visitor, n *ElementAccess) {
	acceptIf(v, n.Object)
	acceptIf(v, n.Index)
}

func WalkInstanceConstructorChildren(v Visitor, n *InstanceConstructor) {
	n.Type.Accept(v)
	if n.NameClause != nil {
		n.NameClause.Accept(v)
	}
	if n.TagsClause != nil {
		n.TagsClause.Accept(v)
	}
	acceptAll[*InstanceAttributeDeclarator](v, n.Attributes)
	acceptAll[*InstancePropertyDeclarator](v, n.Properties)
	acceptAll[*InstanceConstructor](v, n.Children)
}

func WalkExpressionStatementChildren(v Visitor, n *ExpressionStatement) { acceptIf(v, n.Expression) }
func WalkBlockChildren(v Visitor, n *Block)                             { acceptAll[Statement](v, n.Statements) }

func WalkVariableDeclarationChildren(v Visitor, n *VariableDeclaration) {
	n.Name.Accept(v)
	acceptIf(v, n.TypeAnnotation)
	acceptIf(v, n.Initializer)
}

func WalkTypeDeclarationChildren(v Visitor, n *TypeDeclaration) {
	n.Name.Accept(v)
	acceptAll[*TypeParameterRef](v, n.TypeParameters)
	n.Value.Accept(v)
}

func WalkEventDeclarationChildren(v Visitor, n *EventDeclaration) {
	n.Name.Accept(v)
	acceptAll[*Parameter](v, n.Parameters)
}

func WalkInterfaceFieldChildren(v Visitor, n *InterfaceField) {
	n.Name.Accept(v)
	n.Type.Accept(v)
}

func WalkInterfaceMethodChildren(v Visitor, n *InterfaceMethod) {
	n.Name.Accept(v)
	acceptAll[*Parameter](v, n.Parameters)
	acceptIf(v, n.ReturnType)
}

func WalkInterfaceDeclarationChildren(v Visitor, n *InterfaceDeclaration) {
	n.Name.Accept(v)
	acceptAll[*TypeParameterRef](v, n.TypeParameters)
	acceptAll[*TypeNameRef](v, n.Extends)
	acceptAll[*InterfaceField](v, n.Fields)
	acceptAll[*InterfaceMethod](v, n.Methods)
}

func WalkEnumMemberChildren(v Visitor, n *EnumMember) {
	n.Name.Accept(v)
	acceptIf(v, n.Value)
}

func WalkEnumDeclarationChildren(v Visitor, n *EnumDeclaration) {
	n.Name.Accept(v)
	acceptAll[*EnumMember](v, n.Members)
}

func WalkParameterChildren(v Visitor, n *Parameter) {
	n.Name.Accept(v)
	acceptIf(v, n.Type)
	acceptIf(v, n.Default)
}

func WalkDecoratorChildren(v Visitor, n *Decorator) {
	n.Name.Accept(v)
	acceptAll[Expression](v, n.Arguments)
}

func WalkFunctionDeclarationChildren(v Visitor, n *FunctionDeclaration) {
	acceptAll[*Decorator](v, n.Decorators)
	n.Name.Accept(v)
	acceptAll[*TypeParameterRef](v, n.TypeParameters)
	acceptAll[*Parameter](v, n.Parameters)
	acceptIf(v, n.ReturnType)
	n.Body.Accept(v)
}

func WalkInstanceNameDeclaratorChildren(v Visitor, n *InstanceNameDeclarator) {
	acceptIf(v, n.Value)
}

func WalkInstanceTagDeclaratorChildren(v Visitor, n *InstanceTagDeclarator) {
	acceptAll[Expression](v, n.Tags)
}

func WalkInstanceAttributeDeclaratorChildren(v Visitor, n *InstanceAttributeDeclarator) {
	n.Name.Accept(v)
	acceptIf(v, n.Value)
}

func WalkInstancePropertyDeclaratorChildren(v Visitor, n *InstancePropertyDeclarator) {
	n.Name.Accept(v)
	acceptIf(v, n.Value)
}

func WalkReturnChildren(v Visitor, n *Return) { acceptIf(v, n.Value) }

func WalkIfChildren(v Visitor, n *If) {
	acceptIf(v, n.Condition)
	n.Then.Accept(v)
	acceptIf(v, n.Else)
}

func WalkWhileChildren(v Visitor, n *While) {
	acceptIf(v, n.Condition)
	n.Body.Accept(v)
}

func WalkRepeatChildren(v Visitor, n *Repeat) {
	n.Body.Accept(v)
	acceptIf(v, n.Condition)
}

func WalkForChildren(v Visitor, n *For) {
	acceptAll[*Identifier](v, n.Names)
	acceptIf(v, n.Iterable)
	n.Body.Accept(v)
}

func WalkAfterChildren(v Visitor, n *After) {
	acceptIf(v, n.Delay)
	n.Body.Accept(v)
}

func WalkEveryChildren(v Visitor, n *Every) {
	acceptIf(v, n.Interval)
	n.Body.Accept(v)
}

func WalkMatchCaseChildren(v Visitor, n *MatchCase) {
	acceptAll[Expression](v, n.Comparands)
	n.Body.Accept(v)
}

func WalkMatchElseCaseChildren(v Visitor, n *MatchElseCase) {
	if n.Name != nil {
		n.Name.Accept(v)
	}
	n.Body.Accept(v)
}

func WalkMatchChildren(v Visitor, n *Match) {
	acceptIf(v, n.Subject)
	acceptAll[*MatchCase](v, n.Cases)
	if n.ElseCase != nil {
		n.ElseCase.Accept(v)
	}
}

func WalkImportChildren(v Visitor, n *Import) { acceptAll[*Identifier](v, n.Names) }
func WalkExportChildren(v Visitor, n *Export) { n.Inner.Accept(v) }

func WalkLiteralTypeRefChildren(v Visitor, n *LiteralTypeRef) { acceptIf(v, n.Value) }
func WalkTypeNameRefChildren(v Visitor, n *TypeNameRef)       { acceptAll[TypeRef](v, n.TypeArguments) }
func WalkNullableTypeRefChildren(v Visitor, n *NullableTypeRef) { n.Inner.Accept(v) }
func WalkArrayTypeRefChildren(v Visitor, n *ArrayTypeRef)       { n.Element.Accept(v) }
func WalkTupleTypeRefChildren(v Visitor, n *TupleTypeRef)       { acceptAll[TypeRef](v, n.Elements) }

func WalkFunctionTypeRefChildren(v Visitor, n *FunctionTypeRef) {
	acceptAll[*TypeParameterRef](v, n.TypeParameters)
	acceptAll[TypeRef](v, n.Parameters)
	n.Return.Accept(v)
}

func WalkUnionTypeRefChildren(v Visitor, n *UnionTypeRef)               { acceptAll[TypeRef](v, n.Types) }
func WalkIntersectionTypeRefChildren(v Visitor, n *IntersectionTypeRef) { acceptAll[TypeRef](v, n.Types) }

func WalkTypeParameterRefChildren(v Visitor, n *TypeParameterRef) {
	acceptIf(v, n.Base)
	acceptIf(v, n.Default)
}
