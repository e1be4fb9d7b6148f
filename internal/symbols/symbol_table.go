// Package symbols' symbol table: a scope stack of symbol maps. The
// resolver pushes a new table on entering a block/function scope and
// pops it on exit, chaining to `outer` for innermost-to-outermost name
// lookup.
//
// Grounded on original_source/src/resolver.cpp's declare/define/resolve
// scope-stack idiom (the original keeps a std::vector<Scope> with the
// same declare-then-define two-step so a name is visible to its own
// initializer only after being defined) and on funvibe-funxy's
// SymbolTable shape, trimmed of every trait/instance-dictionary field
// (traitMethods, implementations, operatorTraits, ...) the teacher's
// evaluator needs and spec.md's analysis front end does not: Ion's
// interfaces are structural, resolved by the type solver directly from
// typesystem.Interface/Object, with no trait-dispatch table to maintain.
package symbols

// SymbolTable is one scope frame.
type SymbolTable struct {
	store map[string]Symbol
	// defined tracks, per name, whether DeclareDefine's second step has
	// run yet. A name present in store but false in defined is
	// declared-but-not-yet-defined: visible to Resolve for forward
	// references but not a legal initializer self-reference.
	defined map[string]bool
	outer   *SymbolTable
}

// NewSymbolTable creates an empty root (global) symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		store:   make(map[string]Symbol),
		defined: make(map[string]bool),
	}
}

// NewEnclosedSymbolTable creates a child scope chained to outer.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	t := NewSymbolTable()
	t.outer = outer
	return t
}

// Outer returns the enclosing scope, or nil at the root.
func (s *SymbolTable) Outer() *SymbolTable { return s.outer }

// Declare introduces name in this scope without marking it defined yet,
// for forward-reference cases (e.g. a function name visible inside its
// own body before the binder finishes typing it). Returns false if name
// is already declared in this exact scope, a redeclaration the resolver
// reports as an error.
func (s *SymbolTable) Declare(name string, sym Symbol) bool {
	if _, exists := s.store[name]; exists {
		return false
	}
	s.store[name] = sym
	s.defined[name] = false
	return true
}

// Define marks a previously declared name (or a new one) as fully
// defined: visible to subsequent sibling declarations and to its own
// initializer's nested scopes.
func (s *SymbolTable) Define(name string, sym Symbol) {
	s.store[name] = sym
	s.defined[name] = true
}

// DeclareDefine is Declare immediately followed by Define, for the
// common case (parameters, `for` loop variables) where no distinction
// between the two steps is needed.
func (s *SymbolTable) DeclareDefine(name string, sym Symbol) bool {
	if !s.Declare(name, sym) {
		return false
	}
	s.Define(name, sym)
	return true
}

// Resolve looks up name starting in this scope and walking outward.
func (s *SymbolTable) Resolve(name string) (Symbol, bool) {
	if sym, ok := s.store[name]; ok {
		return sym, true
	}
	if s.outer != nil {
		return s.outer.Resolve(name)
	}
	return nil, false
}

// ResolveLocal looks up name in this scope only, without walking outward.
func (s *SymbolTable) ResolveLocal(name string) (Symbol, bool) {
	sym, ok := s.store[name]
	return sym, ok
}

// IsDefined reports whether name has completed its Define step anywhere
// in the scope chain, distinguishing a forward-declared-but-not-yet-
// defined name from a fully usable one.
func (s *SymbolTable) IsDefined(name string) bool {
	if defined, ok := s.defined[name]; ok {
		return defined
	}
	if s.outer != nil {
		return s.outer.IsDefined(name)
	}
	return false
}

// ResolveWithDefined walks the scope chain innermost-to-outermost like
// Resolve, additionally reporting whether the frame the name was found in
// has completed its Define step. The resolver's name-use check (spec.md
// §4.4) needs this single-frame flag, not IsDefined's whole-chain OR.
func (s *SymbolTable) ResolveWithDefined(name string) (sym Symbol, defined bool, ok bool) {
	if sym, ok := s.store[name]; ok {
		return sym, s.defined[name], true
	}
	if s.outer != nil {
		return s.outer.ResolveWithDefined(name)
	}
	return nil, false, false
}
