package ast

import (
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// BinaryOp is any two-operand operator expression: arithmetic, bitwise,
// comparison, logical, and null-coalescing all share this shape, per
// spec.md §4.2.1's shared precedence table.
type BinaryOp struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator token.SyntaxKind
	Right    Expression
}

func (b *BinaryOp) Span() source.Span { return source.Merge(spanOf(b.Left), spanOf(b.Right)) }
func (b *BinaryOp) Accept(v Visitor)  { v.VisitBinaryOp(b) }
func (b *BinaryOp) expressionNode()   {}

// AssignmentOp extends BinaryOp semantically (spec.md §4.2.1): `=`,
// `+=`, `-=`, etc. Kept as its own node rather than literally embedding
// BinaryOp, since its Left must additionally satisfy is_assignment_target
// — a constraint BinaryOp's Left does not carry.
type AssignmentOp struct {
	Token    token.Token
	Left     Expression // Identifier, ElementAccess, MemberAccess, or OptionalMemberAccess
	Operator token.SyntaxKind
	Right    Expression
}

func (a *AssignmentOp) Span() source.Span { return source.Merge(spanOf(a.Left), spanOf(a.Right)) }
func (a *AssignmentOp) Accept(v Visitor)  { v.VisitAssignmentOp(a) }
func (a *AssignmentOp) expressionNode()   {}

// IsAssignmentTarget implements spec.md §4.2.1's is_assignment_target
// predicate.
func IsAssignmentTarget(e Expression) bool {
	switch e.(type) {
	case *Identifier, *ElementAccess, *MemberAccess, *OptionalMemberAccess:
		return true
	default:
		return false
	}
}

// UnaryOp is a prefix operator: `-x`, `!x`, `~x`, `++x`, `--x`.
type UnaryOp struct {
	Token    token.Token
	Operator token.SyntaxKind
	Operand  Expression
}

func (u *UnaryOp) Span() source.Span { return source.Merge(u.Token.Span, spanOf(u.Operand)) }
func (u *UnaryOp) Accept(v Visitor)  { v.VisitUnaryOp(u) }
func (u *UnaryOp) expressionNode()   {}

// PostfixUnaryOp is a postfix operator: `x++`, `x--`.
type PostfixUnaryOp struct {
	Token    token.Token
	Operand  Expression
	Operator token.SyntaxKind
}

func (p *PostfixUnaryOp) Span() source.Span { return source.Merge(spanOf(p.Operand), p.Token.Span) }
func (p *PostfixUnaryOp) Accept(v Visitor)  { v.VisitPostfixUnaryOp(p) }
func (p *PostfixUnaryOp) expressionNode()   {}

// TernaryOp is `cond ? then : else`.
type TernaryOp struct {
	Token     token.Token // '?'
	Condition Expression
	Then      Expression
	Else      Expression
}

func (t *TernaryOp) Span() source.Span {
	return source.Merge(spanOf(t.Condition), spanOf(t.Else))
}
func (t *TernaryOp) Accept(v Visitor) { v.VisitTernaryOp(t) }
func (t *TernaryOp) expressionNode()  {}

// Invocation is a function/method call: `callee(args...)`. TypeArguments
// is non-nil only when an explicit `<T, U>` generic argument list was
// disambiguated per spec.md §4.2.3.
type Invocation struct {
	Token         token.Token // '('
	End           token.Token // ')'
	Callee        Expression
	TypeArguments []TypeRef
	Arguments     []Expression
}

func (c *Invocation) Span() source.Span { return source.Merge(spanOf(c.Callee), c.End.Span) }
func (c *Invocation) Accept(v Visitor)  { v.VisitInvocation(c) }
func (c *Invocation) expressionNode()   {}

// TypeOf is `typeof <expr>`.
type TypeOf struct {
	Token    token.Token
	Argument Expression
}

func (t *TypeOf) Span() source.Span { return source.Merge(t.Token.Span, spanOf(t.Argument)) }
func (t *TypeOf) Accept(v Visitor)  { v.VisitTypeOf(t) }
func (t *TypeOf) expressionNode()   {}

// NameOf is `nameof <target>`; Target must satisfy spec.md §4.2.4's
// is_name_of_target predicate (Identifier or (Optional)MemberAccess),
// enforced by the parser at construction time.
type NameOf struct {
	Token  token.Token
	Target Expression
}

func (n *NameOf) Span() source.Span { return source.Merge(n.Token.Span, spanOf(n.Target)) }
func (n *NameOf) Accept(v Visitor)  { v.VisitNameOf(n) }
func (n *NameOf) expressionNode()   {}

// IsNameOfTarget implements spec.md §4.2.4's is_name_of_target predicate.
func IsNameOfTarget(e Expression) bool {
	switch e.(type) {
	case *Identifier, *MemberAccess, *OptionalMemberAccess:
		return true
	default:
		return false
	}
}

// Await is `await <expr>`.
type Await struct {
	Token    token.Token
	Argument Expression
}

func (a *Await) Span() source.Span { return source.Merge(a.Token.Span, spanOf(a.Argument)) }
func (a *Await) Accept(v Visitor)  { v.VisitAwait(a) }
func (a *Await) expressionNode()   {}

// MemberAccess is `obj.member`.
type MemberAccess struct {
	Token  token.Token // '.'
	Object Expression
	Member *Identifier
	symboled
}

func (m *MemberAccess) Span() source.Span { return source.Merge(spanOf(m.Object), spanOf(m.Member)) }
func (m *MemberAccess) Accept(v Visitor)  { v.VisitMemberAccess(m) }
func (m *MemberAccess) expressionNode()   {}

// OptionalMemberAccess is `obj?.member`, short-circuiting to null when
// obj is null.
type OptionalMemberAccess struct {
	Token  token.Token // '?.'
	Object Expression
	Member *Identifier
	symboled
}

func (m *OptionalMemberAccess) Span() source.Span {
	return source.Merge(spanOf(m.Object), spanOf(m.Member))
}
func (m *OptionalMemberAccess) Accept(v Visitor) { v.VisitOptionalMemberAccess(m) }
func (m *OptionalMemberAccess) expressionNode()  {}

// ElementAccess is `obj[index]`.
type ElementAccess struct {
	Token  token.Token // '['
	End    token.Token // ']'
	Object Expression
	Index  Expression
}

func (e *ElementAccess) Span() source.Span { return source.Merge(spanOf(e.Object), e.End.Span) }
func (e *ElementAccess) Accept(v Visitor)  { v.VisitElementAccess(e) }
func (e *ElementAccess) expressionNode()   {}
