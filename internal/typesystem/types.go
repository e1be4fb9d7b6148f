// Package typesystem implements Ion's type model: the small, closed set
// of type forms spec.md §3/§4.6 describes, plus the bottom-up (non-
// unifying) rules the type solver stage applies to them.
//
// This is a deliberate reduction of the teacher's (funvibe-funxy) type
// system: the teacher implements a full Hindley-Milner engine (TVar/TApp/
// TCon, internal/typesystem/unify.go's Robinson unification, kind
// checking). spec.md's analysis front end stops short of that — its type
// solver infers bottom-up from literals and declarations and never
// unifies open type variables against each other. We keep the teacher's
// Type-interface *shape* (a String() method every form implements, plus
// the same "is_same" structural-vs-nominal split) and replace the
// variant set and solving rules with the ones spec.md names. Grounded on
// original_source/include/ion/types/*.h for the exact variant inventory
// and structural/nominal split.
package typesystem

import (
	"math/big"
	"strings"
)

// Type is any Ion type value. Every form implements String for
// diagnostics/printing and IsSame for the equality spec.md §4.6 needs.
type Type interface {
	String() string
	IsSame(other Type) bool
}

// PrimitiveKind enumerates Ion's built-in scalar kinds.
type PrimitiveKind int

const (
	Number PrimitiveKind = iota
	String
	Bool
	Void
	Null
)

func (k PrimitiveKind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Void:
		return "void"
	case Null:
		return "null"
	default:
		return "???"
	}
}

// Primitive is one of Ion's built-in scalar types.
type Primitive struct {
	Kind PrimitiveKind
}

func (p Primitive) String() string { return p.Kind.String() }
func (p Primitive) IsSame(other Type) bool {
	o, ok := other.(Primitive)
	return ok && o.Kind == p.Kind
}

var (
	NumberType = Primitive{Kind: Number}
	StringType = Primitive{Kind: String}
	BoolType   = Primitive{Kind: Bool}
	VoidType   = Primitive{Kind: Void}
	NullType   = Primitive{Kind: Null}
)

// Literal is a singleton type inhabited by exactly one value — the type
// `const` declarations get before widening, per spec.md §4.6's literal
// widening rule.
type Literal struct {
	Kind  PrimitiveKind // String, Number or Bool
	Value interface{}   // string, *big.Int, float64 or bool
}

func (l Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return `"` + v + `"`
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return l.Kind.String()
	}
}

func (l Literal) IsSame(other Type) bool {
	o, ok := other.(Literal)
	if !ok || o.Kind != l.Kind {
		return false
	}
	if a, isInt := l.Value.(*big.Int); isInt {
		b, bothInt := o.Value.(*big.Int)
		return bothInt && a.Cmp(b) == 0
	}
	return o.Value == l.Value
}

// Widen returns the literal's parent primitive type, the type a `let`
// binding's literal initializer widens to (spec.md §4.6): `let` widens,
// `const` keeps the literal type.
func (l Literal) Widen() Type {
	return Primitive{Kind: l.Kind}
}

// Array is a homogeneous, variable-length sequence type.
type Array struct {
	Element Type
}

func (a Array) String() string { return a.Element.String() + "[]" }
func (a Array) IsSame(other Type) bool {
	o, ok := other.(Array)
	return ok && a.Element.IsSame(o.Element)
}

// Tuple is a fixed-length, heterogeneous sequence type.
type Tuple struct {
	Elements []Type
}

func (t Tuple) String() string {
	return "(" + joinTypes(t.Elements, ", ") + ")"
}

func (t Tuple) IsSame(other Type) bool {
	o, ok := other.(Tuple)
	return ok && sameList(t.Elements, o.Elements)
}

// Union is a sum type: a value typed Union is exactly one of its members.
type Union struct {
	Types []Type
}

func (u Union) String() string { return joinTypes(u.Types, " | ") }
func (u Union) IsSame(other Type) bool {
	o, ok := other.(Union)
	return ok && sameSet(u.Types, o.Types)
}

// Intersection is a type satisfying every one of its members at once —
// used for interface composition.
type Intersection struct {
	Types []Type
}

func (i Intersection) String() string { return joinTypes(i.Types, " & ") }
func (i Intersection) IsSame(other Type) bool {
	o, ok := other.(Intersection)
	return ok && sameSet(i.Types, o.Types)
}

// Nullable wraps a type to admit `null` as an additional value, Ion's `T?`
// suffix.
type Nullable struct {
	Inner Type
}

func (n Nullable) String() string { return n.Inner.String() + "?" }
func (n Nullable) IsSame(other Type) bool {
	o, ok := other.(Nullable)
	return ok && n.Inner.IsSame(o.Inner)
}

// Function is a callable type: optional generic type parameters, a
// parameter type list, and a return type.
type Function struct {
	TypeParameters []Type
	Parameters     []Type
	Return         Type
}

func (f Function) String() string {
	var b strings.Builder
	if len(f.TypeParameters) > 0 {
		b.WriteString("<")
		b.WriteString(joinTypes(f.TypeParameters, ", "))
		b.WriteString(">")
	}
	b.WriteString("(")
	b.WriteString(joinTypes(f.Parameters, ", "))
	b.WriteString(") -> ")
	b.WriteString(f.Return.String())
	return b.String()
}

func (f Function) IsSame(other Type) bool {
	o, ok := other.(Function)
	if !ok || !sameList(f.TypeParameters, o.TypeParameters) || !sameList(f.Parameters, o.Parameters) {
		return false
	}
	return f.Return.IsSame(o.Return)
}

// Member is one (key type, value type) pair of an Object/Interface type.
// The original implementation keys its member map by type (to support
// computed/indexed members); Go's map can't hash a Type interface safely,
// so members are kept as an ordered slice instead and looked up linearly
// — object member counts are small (single-digit) in practice.
type Member struct {
	Key   Type
	Value Type
}

// Object is a structural record type: `{ field: Type, ... }`.
type Object struct {
	Members []Member
}

func (o Object) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, m := range o.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		key := "[" + m.Key.String() + "]"
		if lit, ok := m.Key.(Literal); ok && lit.Kind == String {
			key = lit.Value.(string)
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(m.Value.String())
	}
	b.WriteString(" }")
	return b.String()
}

// IsSame for Object is structural: every member of o must be present
// with an IsSame key and value in other (per original_source/include/ion/types/object_type.h).
func (o Object) IsSame(other Type) bool {
	obj, ok := other.(Object)
	if !ok {
		return false
	}
	for _, m := range o.Members {
		found := false
		for _, om := range obj.Members {
			if m.Key.IsSame(om.Key) && m.Value.IsSame(om.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Interface is a nominal object type: two Interfaces are the same type
// only if they share a declaration name, never merely by having the same
// members (spec.md §4.6, original_source's InterfaceType::is_same).
type Interface struct {
	Name           string
	TypeParameters []Type
	Object
}

func (i Interface) String() string {
	return i.Name + generics(i.TypeParameters) + " " + i.Object.String()
}

func (i Interface) IsSame(other Type) bool {
	o, ok := other.(Interface)
	return ok && o.Name == i.Name && i.Object.IsSame(o.Object)
}

// TypeName is a nominal reference to a declared type (alias, enum,
// instance type, or an as-yet-unresolved name during binding).
type TypeName struct {
	Name          string
	TypeArguments []Type
}

func (t TypeName) String() string { return t.Name + generics(t.TypeArguments) }
func (t TypeName) IsSame(other Type) bool {
	o, ok := other.(TypeName)
	return ok && o.Name == t.Name
}

// TypeParameter is a generic type parameter occurring in a declaration's
// `<T: Base = Default>` clause.
type TypeParameter struct {
	Name    string
	Base    Type // nil if absent
	Default Type // nil if absent
}

func (t TypeParameter) String() string {
	s := t.Name
	if t.Base != nil {
		s += " : " + t.Base.String()
	}
	if t.Default != nil {
		s += " = " + t.Default.String()
	}
	return s
}

func (t TypeParameter) IsSame(other Type) bool {
	o, ok := other.(TypeParameter)
	return ok && o.Name == t.Name
}

func joinTypes(types []Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

func generics(types []Type) string {
	if len(types) == 0 {
		return ""
	}
	return "<" + joinTypes(types, ", ") + ">"
}

func sameList(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsSame(b[i]) {
			return false
		}
	}
	return true
}

func sameSet(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for _, t := range a {
		found := false
		for _, o := range b {
			if t.IsSame(o) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
