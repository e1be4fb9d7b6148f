package ast

import (
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) Span() source.Span { return spanOf(s.Expression) }
func (s *ExpressionStatement) Accept(v Visitor)  { v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) statementNode()    {}

// Block is a brace-delimited statement list.
type Block struct {
	Token      token.Token // '{'
	End        token.Token // '}'
	Statements []Statement
}

func (b *Block) Span() source.Span { return source.Merge(b.Token.Span, b.End.Span) }
func (b *Block) Accept(v Visitor)  { v.VisitBlock(b) }
func (b *Block) statementNode()    {}

// VariableDeclaration is `let`/`const name[: Type] [= expr]`.
type VariableDeclaration struct {
	Token          token.Token // 'let' or 'const'
	IsConst        bool
	Name           *Identifier
	TypeAnnotation TypeRef // nil if omitted
	Initializer    Expression // nil if omitted
	symboled
}

func (d *VariableDeclaration) Span() source.Span {
	end := spanOf(d.Initializer)
	if d.Initializer == nil {
		if d.TypeAnnotation != nil {
			end = d.TypeAnnotation.Span()
		} else {
			end = d.Name.Span()
		}
	}
	return source.Merge(d.Token.Span, end)
}
func (d *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(d) }
func (d *VariableDeclaration) statementNode()   {}

// TypeDeclaration is `type Name[<params>] = <TypeRef>`.
type TypeDeclaration struct {
	Token          token.Token // 'type'
	Name           *Identifier
	TypeParameters []*TypeParameterRef
	Value          TypeRef
	symboled
}

func (d *TypeDeclaration) Span() source.Span { return source.Merge(d.Token.Span, d.Value.Span()) }
func (d *TypeDeclaration) Accept(v Visitor)  { v.VisitTypeDeclaration(d) }
func (d *TypeDeclaration) statementNode()    {}

// EventDeclaration is `event Name(params)`: a declared signal name other
// code can dispatch and subscribe to.
type EventDeclaration struct {
	Token      token.Token // 'event'
	End        token.Token
	Name       *Identifier
	Parameters []*Parameter
	symboled
}

func (d *EventDeclaration) Span() source.Span { return source.Merge(d.Token.Span, d.End.Span) }
func (d *EventDeclaration) Accept(v Visitor)  { v.VisitEventDeclaration(d) }
func (d *EventDeclaration) statementNode()    {}

// InterfaceField is one field signature inside an interface body.
type InterfaceField struct {
	Token    token.Token
	Name     *Identifier
	Type     TypeRef
	Optional bool
}

func (f *InterfaceField) Span() source.Span { return source.Merge(f.Name.Span(), f.Type.Span()) }
func (f *InterfaceField) Accept(v Visitor)  { v.VisitInterfaceField(f) }

// InterfaceMethod is one method signature inside an interface body.
type InterfaceMethod struct {
	Token      token.Token // the method name token
	Name       *Identifier
	Parameters []*Parameter
	ReturnType TypeRef // nil if omitted (void)
}

func (m *InterfaceMethod) Span() source.Span { return source.Merge(m.Token.Span, spanOf(m.ReturnType)) }
func (m *InterfaceMethod) Accept(v Visitor)  { v.VisitInterfaceMethod(m) }

// InterfaceDeclaration is `interface Name[<params>] { fields/methods }`.
type InterfaceDeclaration struct {
	Token          token.Token // 'interface'
	End            token.Token
	Name           *Identifier
	TypeParameters []*TypeParameterRef
	Extends        []*TypeNameRef
	Fields         []*InterfaceField
	Methods        []*InterfaceMethod
	symboled
}

func (d *InterfaceDeclaration) Span() source.Span { return source.Merge(d.Token.Span, d.End.Span) }
func (d *InterfaceDeclaration) Accept(v Visitor)  { v.VisitInterfaceDeclaration(d) }
func (d *InterfaceDeclaration) statementNode()    {}

// EnumMember is one `Name[ = value]` case of an enum.
type EnumMember struct {
	Token token.Token
	Name  *Identifier
	Value Expression // nil if auto-assigned
	symboled
}

func (m *EnumMember) Span() source.Span {
	if m.Value != nil {
		return source.Merge(m.Name.Span(), m.Value.Span())
	}
	return m.Name.Span()
}
func (m *EnumMember) Accept(v Visitor) { v.VisitEnumMember(m) }

// EnumDeclaration is `enum Name { Member, Member = value, ... }`.
type EnumDeclaration struct {
	Token   token.Token // 'enum'
	End     token.Token
	Name    *Identifier
	Members []*EnumMember
	symboled
}

func (d *EnumDeclaration) Span() source.Span { return source.Merge(d.Token.Span, d.End.Span) }
func (d *EnumDeclaration) Accept(v Visitor)  { v.VisitEnumDeclaration(d) }
func (d *EnumDeclaration) statementNode()    {}

// Parameter is one function/method/event parameter.
type Parameter struct {
	Token      token.Token
	Name       *Identifier
	Type       TypeRef // nil if omitted (inferred from default or context)
	IsVariadic bool
	Default    Expression // nil if absent
	symboled
}

func (p *Parameter) Span() source.Span {
	if p.Default != nil {
		return source.Merge(p.Name.Span(), p.Default.Span())
	}
	if p.Type != nil {
		return source.Merge(p.Name.Span(), p.Type.Span())
	}
	return p.Name.Span()
}
func (p *Parameter) Accept(v Visitor) { v.VisitParameter(p) }

// Decorator is `@name(args?)` attached to the following function.
type Decorator struct {
	Token     token.Token // '@'
	End       token.Token
	Name      *Identifier
	Arguments []Expression
}

func (d *Decorator) Span() source.Span { return source.Merge(d.Token.Span, d.End.Span) }
func (d *Decorator) Accept(v Visitor)  { v.VisitDecorator(d) }

// FunctionDeclaration is `[@decorators] [async] fn name[<params>](params) [: Type] { body }`.
type FunctionDeclaration struct {
	Token          token.Token // 'fn'
	Decorators     []*Decorator
	IsAsync        bool
	Name           *Identifier
	TypeParameters []*TypeParameterRef
	Parameters     []*Parameter
	ReturnType     TypeRef // nil if omitted (inferred as void, or from body's control flow)
	Body           *Block
	symboled
}

func (d *FunctionDeclaration) Span() source.Span { return source.Merge(d.Token.Span, d.Body.Span()) }
func (d *FunctionDeclaration) Accept(v Visitor)  { v.VisitFunctionDeclaration(d) }
func (d *FunctionDeclaration) statementNode()    {}

// InstanceNameDeclarator is the `name: <expr>` clause of an instance
// literal, naming the instance for diagnostics/introspection.
type InstanceNameDeclarator struct {
	Token token.Token
	Value Expression
}

func (d *InstanceNameDeclarator) Span() source.Span { return source.Merge(d.Token.Span, spanOf(d.Value)) }
func (d *InstanceNameDeclarator) Accept(v Visitor)  { v.VisitInstanceNameDeclarator(d) }

// InstanceTagDeclarator is the `tag: [<expr>, ...]` clause of an
// instance literal.
type InstanceTagDeclarator struct {
	Token token.Token
	Tags  []Expression
}

func (d *InstanceTagDeclarator) Span() source.Span { return d.Token.Span }
func (d *InstanceTagDeclarator) Accept(v Visitor)  { v.VisitInstanceTagDeclarator(d) }

// InstanceAttributeDeclarator is one `attribute <name>: <expr>` clause inside an
// instance literal body.
type InstanceAttributeDeclarator struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (d *InstanceAttributeDeclarator) Span() source.Span {
	return source.Merge(d.Name.Span(), spanOf(d.Value))
}
func (d *InstanceAttributeDeclarator) Accept(v Visitor) { v.VisitInstanceAttributeDeclarator(d) }

// InstancePropertyDeclarator is one `property: <expr>` clause inside an
// instance literal body, distinct from an attribute in that it may also
// be read back/observed elsewhere (spec.md's instance model).
type InstancePropertyDeclarator struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (d *InstancePropertyDeclarator) Span() source.Span {
	return source.Merge(d.Name.Span(), spanOf(d.Value))
}
func (d *InstancePropertyDeclarator) Accept(v Visitor) { v.VisitInstancePropertyDeclarator(d) }

// InstanceConstructor is an instance-literal construction expression:
// `TypeName { name: ..., tag: [...], attribute attr: ..., property: ... }`.
type InstanceConstructor struct {
	Token       token.Token // the type name token
	End         token.Token // '}'
	Type        *TypeNameRef
	NameClause  *InstanceNameDeclarator // nil if absent
	TagsClause  *InstanceTagDeclarator  // nil if absent
	Attributes  []*InstanceAttributeDeclarator
	Properties  []*InstancePropertyDeclarator
	Children    []*InstanceConstructor
}

func (c *InstanceConstructor) Span() source.Span { return source.Merge(c.Token.Span, c.End.Span) }
func (c *InstanceConstructor) Accept(v Visitor)  { v.VisitInstanceConstructor(c) }
func (c *InstanceConstructor) expressionNode()   {}

// Break is `break`.
type Break struct {
	Token token.Token
}

func (b *Break) Span() source.Span { return b.Token.Span }
func (b *Break) Accept(v Visitor)  { v.VisitBreak(b) }
func (b *Break) statementNode()    {}

// Continue is `continue`.
type Continue struct {
	Token token.Token
}

func (c *Continue) Span() source.Span { return c.Token.Span }
func (c *Continue) Accept(v Visitor)  { v.VisitContinue(c) }
func (c *Continue) statementNode()    {}

// Return is `return [expr]`; Value is nil when the next token is on a
// new line or a semicolon (spec.md §4.2.2).
type Return struct {
	Token token.Token
	Value Expression
}

func (r *Return) Span() source.Span {
	if r.Value != nil {
		return source.Merge(r.Token.Span, r.Value.Span())
	}
	return r.Token.Span
}
func (r *Return) Accept(v Visitor) { v.VisitReturn(r) }
func (r *Return) statementNode()   {}

// If is `if cond { then } [else { else }]`. For `else if` chains, Else is
// the nested *If itself.
type If struct {
	Token     token.Token
	Condition Expression
	Then      *Block
	Else      Statement // *Block, *If, or nil
}

func (s *If) Span() source.Span {
	end := s.Then.Span()
	if s.Else != nil {
		end = s.Else.Span()
	}
	return source.Merge(s.Token.Span, end)
}
func (s *If) Accept(v Visitor) { v.VisitIf(s) }
func (s *If) statementNode()   {}

// While is `while cond { body }`.
type While struct {
	Token     token.Token
	Condition Expression
	Body      *Block
}

func (s *While) Span() source.Span { return source.Merge(s.Token.Span, s.Body.Span()) }
func (s *While) Accept(v Visitor)  { v.VisitWhile(s) }
func (s *While) statementNode()    {}

// Repeat is `repeat { body } while cond`.
type Repeat struct {
	Token     token.Token
	Body      *Block
	Condition Expression
}

func (s *Repeat) Span() source.Span { return source.Merge(s.Token.Span, spanOf(s.Condition)) }
func (s *Repeat) Accept(v Visitor)  { v.VisitRepeat(s) }
func (s *Repeat) statementNode()    {}

// For is `for name[, name...] : iterable { body }`.
type For struct {
	Token    token.Token
	Names    []*Identifier
	Iterable Expression
	Body     *Block
}

func (s *For) Span() source.Span { return source.Merge(s.Token.Span, s.Body.Span()) }
func (s *For) Accept(v Visitor)  { v.VisitFor(s) }
func (s *For) statementNode()    {}

// After is `after <time-expression> { body }`: runs body once, the given
// duration from now.
type After struct {
	Token token.Token
	Delay Expression
	Body  *Block
}

func (s *After) Span() source.Span { return source.Merge(s.Token.Span, s.Body.Span()) }
func (s *After) Accept(v Visitor)  { v.VisitAfter(s) }
func (s *After) statementNode()    {}

// Every is `every <time-expression> { body }`: runs body repeatedly on
// the given interval.
type Every struct {
	Token    token.Token
	Interval Expression
	Body     *Block
}

func (s *Every) Span() source.Span { return source.Merge(s.Token.Span, s.Body.Span()) }
func (s *Every) Accept(v Visitor)  { v.VisitEvery(s) }
func (s *Every) statementNode()    {}

// MatchCase is one `comparand[, comparand...] -> body` arm of a match
// statement.
type MatchCase struct {
	Token       token.Token
	Comparands  []Expression
	Body        Statement // *Block or a single ExpressionStatement
}

func (c *MatchCase) Span() source.Span { return source.Merge(c.Token.Span, c.Body.Span()) }
func (c *MatchCase) Accept(v Visitor)  { v.VisitMatchCase(c) }

// MatchElseCase is the `else [name] -> body` fallback arm.
type MatchElseCase struct {
	Token token.Token
	Name  *Identifier // nil if the bound name is omitted
	Body  Statement
}

func (c *MatchElseCase) Span() source.Span { return source.Merge(c.Token.Span, c.Body.Span()) }
func (c *MatchElseCase) Accept(v Visitor)  { v.VisitMatchElseCase(c) }

// Match is `match expr { case, case, ..., else -> body }` (spec.md
// §4.2.4).
type Match struct {
	Token      token.Token
	End        token.Token
	Subject    Expression
	Cases      []*MatchCase
	ElseCase   *MatchElseCase // nil if absent
}

func (s *Match) Span() source.Span { return source.Merge(s.Token.Span, s.End.Span) }
func (s *Match) Accept(v Visitor)  { v.VisitMatch(s) }
func (s *Match) statementNode()    {}

// Import is `import name[, name...] | * from module`.
type Import struct {
	Token      token.Token
	ImportAll  bool
	Names      []*Identifier
	ModuleName string
	symboled
}

func (s *Import) Span() source.Span { return s.Token.Span }
func (s *Import) Accept(v Visitor)  { v.VisitImport(s) }
func (s *Import) statementNode()    {}

// Export wraps a declaration statement with the `export` modifier; the
// parser reports InvalidExport for any non-declaration Inner (spec.md §4.2.2).
type Export struct {
	Token token.Token
	Inner Statement
}

func (s *Export) Span() source.Span { return source.Merge(s.Token.Span, s.Inner.Span()) }
func (s *Export) Accept(v Visitor)  { v.VisitExport(s) }
func (s *Export) statementNode()    {}

// IsDeclaration reports whether stmt is one of the declaration forms
// `export` may legally prefix (spec.md §4.2.2).
func IsDeclaration(stmt Statement) bool {
	switch stmt.(type) {
	case *VariableDeclaration, *FunctionDeclaration, *TypeDeclaration,
		*EventDeclaration, *EnumDeclaration, *InterfaceDeclaration:
		return true
	default:
		return false
	}
}

