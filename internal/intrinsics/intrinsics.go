// Package intrinsics lists the names the resolver and binder pre-declare
// before a file's own statements are visited, per spec.md §4.4's "At
// pipeline start the resolver pre-declares all intrinsic names." Grounded
// on original_source/include/ion/intrinsics.h, which builds the same
// print symbol from FunctionType/PrimitiveType constructors.
package intrinsics

import (
	"github.com/ion-lang/ionc/internal/symbols"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// Names lists every intrinsic identifier, in declaration order, for
// passes (like the resolver) that only need the name, not its type.
func Names() []string {
	names := make([]string, len(Symbols()))
	for i, sym := range Symbols() {
		names[i] = sym.Name
	}
	return names
}

// Symbols builds the intrinsic NamedSymbol set the binder seeds its root
// scope with. A fresh slice is returned on every call since symbols are
// written into per-compilation scope tables and must not be shared
// between runs.
func Symbols() []*symbols.NamedSymbol {
	return []*symbols.NamedSymbol{
		symbols.NewNamedSymbol("print", typesystem.Function{
			Parameters: []typesystem.Type{typesystem.StringType},
			Return:     typesystem.VoidType,
		}),
	}
}
