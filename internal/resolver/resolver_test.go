package resolver_test

import (
	"testing"

	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/lexer"
	"github.com/ion-lang/ionc/internal/parser"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/resolver"
	"github.com/ion-lang/ionc/internal/source"
)

// resolve lexes, parses, and resolves src, returning the diagnostics the
// resolver stage reported (parser diagnostics are included too, since a
// malformed fixture should fail loudly rather than silently).
func resolve(t *testing.T, src string) []*diagnostics.Diagnostic {
	t.Helper()
	file := source.New("test.ion", src)
	ctx := pipeline.NewPipelineContext(file)
	stages := pipeline.New(lexer.NewProcessor(), parser.NewProcessor(), resolver.NewProcessor())
	ctx = stages.Run(ctx)
	return ctx.Diagnostics
}

func codes(ds []*diagnostics.Diagnostic) []diagnostics.Code {
	out := make([]diagnostics.Code, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}
	return out
}

func hasCode(ds []*diagnostics.Diagnostic, code diagnostics.Code) bool {
	for _, d := range ds {
		if d.Code == code {
			return true
		}
	}
	return false
}

// S2: a variable read in its own initializer is fatal at the inner use.
func TestVariableReadInOwnInitializer(t *testing.T) {
	ds := resolve(t, "let x = x")
	if !hasCode(ds, diagnostics.VariableReadInOwnInitializer) {
		t.Fatalf("want VariableReadInOwnInitializer, got %v", codes(ds))
	}
}

func TestDuplicateVariableInSameScope(t *testing.T) {
	ds := resolve(t, "let x = 1\nlet x = 2")
	if !hasCode(ds, diagnostics.DuplicateVariable) {
		t.Fatalf("want DuplicateVariable, got %v", codes(ds))
	}
}

func TestUndefinedName(t *testing.T) {
	ds := resolve(t, "let x = y")
	if !hasCode(ds, diagnostics.VariableNotFound) {
		t.Fatalf("want VariableNotFound, got %v", codes(ds))
	}
}

// S7: return is only valid inside a function body.
func TestReturnOutsideFunction(t *testing.T) {
	ds := resolve(t, "return 1")
	if !hasCode(ds, diagnostics.InvalidReturn) {
		t.Fatalf("want InvalidReturn, got %v", codes(ds))
	}
}

func TestBreakOutsideLoop(t *testing.T) {
	ds := resolve(t, "break")
	if !hasCode(ds, diagnostics.InvalidBreak) {
		t.Fatalf("want InvalidBreak, got %v", codes(ds))
	}
}

func TestContinueOutsideLoop(t *testing.T) {
	ds := resolve(t, "continue")
	if !hasCode(ds, diagnostics.InvalidContinue) {
		t.Fatalf("want InvalidContinue, got %v", codes(ds))
	}
}

// S5: break is legal inside a loop body, and a `=` condition only warns
// (AmbiguousEquals), it never becomes fatal.
func TestBreakInsideWhileLoop(t *testing.T) {
	ds := resolve(t, "while x = 1 { break }")
	if hasCode(ds, diagnostics.InvalidBreak) {
		t.Fatalf("break inside while should be valid, got %v", codes(ds))
	}
	for _, d := range ds {
		if d.Fatal() {
			t.Fatalf("while x = 1 { break } should not be fatal, got %v", codes(ds))
		}
	}
}

func TestReturnInsideFunction(t *testing.T) {
	ds := resolve(t, "fn f(): void { return }")
	if hasCode(ds, diagnostics.InvalidReturn) {
		t.Fatalf("return inside a function body should be valid, got %v", codes(ds))
	}
}

func TestAwaitOutsideAsyncFunction(t *testing.T) {
	ds := resolve(t, "fn f(): void { await 1 }")
	if !hasCode(ds, diagnostics.InvalidAwait) {
		t.Fatalf("want InvalidAwait, got %v", codes(ds))
	}
}

func TestAwaitInsideAsyncFunction(t *testing.T) {
	ds := resolve(t, "async fn f(): void { await 1 }")
	if hasCode(ds, diagnostics.InvalidAwait) {
		t.Fatalf("await inside an async function should be valid, got %v", codes(ds))
	}
}

func TestBlockScopeShadowing(t *testing.T) {
	// A variable declared in a nested block may share a name with an
	// outer one without reporting DuplicateVariable.
	ds := resolve(t, "let x = 1\nif true { let x = 2 }")
	if hasCode(ds, diagnostics.DuplicateVariable) {
		t.Fatalf("shadowing in a nested block should not duplicate, got %v", codes(ds))
	}
}

func TestFunctionParameterVisibleInBody(t *testing.T) {
	ds := resolve(t, "fn f(x: number): number { return x }")
	if hasCode(ds, diagnostics.VariableNotFound) {
		t.Fatalf("parameter should resolve inside its own body, got %v", codes(ds))
	}
}
