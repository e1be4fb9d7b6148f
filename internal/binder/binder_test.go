package binder_test

import (
	"testing"

	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/binder"
	"github.com/ion-lang/ionc/internal/lexer"
	"github.com/ion-lang/ionc/internal/parser"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/resolver"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/symbols"
)

func bind(t *testing.T, src string) *pipeline.PipelineContext {
	t.Helper()
	file := source.New("test.ion", src)
	ctx := pipeline.NewPipelineContext(file)
	stages := pipeline.New(
		lexer.NewProcessor(),
		parser.NewProcessor(),
		resolver.NewProcessor(),
		binder.NewProcessor(),
	)
	ctx = stages.Run(ctx)
	if ctx.Fatal {
		t.Fatalf("unexpected fatal diagnostics for %q: %v", src, ctx.Diagnostics)
	}
	return ctx
}

// S1's variable declaration should come out of the binder wearing a
// DeclarationSymbol carrying its own name.
func TestVariableDeclarationGetsDeclarationSymbol(t *testing.T) {
	ctx := bind(t, "let x = 1 + 2")

	decl, ok := ctx.AstRoot.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", ctx.AstRoot.Statements[0])
	}

	sym := decl.GetSymbol()
	if sym == nil {
		t.Fatal("variable declaration has no bound symbol")
	}
	ds, ok := sym.(*symbols.DeclarationSymbol)
	if !ok {
		t.Fatalf("expected *symbols.DeclarationSymbol, got %T", sym)
	}
	if ds.Name != "x" {
		t.Fatalf("want symbol name %q, got %q", "x", ds.Name)
	}
}

// The identifier referring back to a declaration must resolve to the
// same symbol the declaration itself carries.
func TestIdentifierResolvesToDeclaringSymbol(t *testing.T) {
	ctx := bind(t, "let x = 1\nlet y = x")

	decl := ctx.AstRoot.Statements[0].(*ast.VariableDeclaration)
	useStmt := ctx.AstRoot.Statements[1].(*ast.VariableDeclaration)
	ident, ok := useStmt.Initializer.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected *ast.Identifier initializer, got %T", useStmt.Initializer)
	}

	if ident.GetSymbol() != decl.GetSymbol() {
		t.Fatalf("identifier %q did not bind to its declaring symbol", ident.Name)
	}
}

func TestFunctionParameterGetsDeclarationSymbol(t *testing.T) {
	ctx := bind(t, "fn f(x: number): number { return x }")

	fn := ctx.AstRoot.Statements[0].(*ast.FunctionDeclaration)
	param := fn.Parameters[0]
	sym := param.GetSymbol()
	if sym == nil {
		t.Fatal("parameter has no bound symbol")
	}
	if sym.(*symbols.DeclarationSymbol).Name != "x" {
		t.Fatalf("want parameter symbol name %q, got %q", "x", sym.String())
	}

	ret := fn.Body.Statements[0].(*ast.Return)
	ident := ret.Value.(*ast.Identifier)
	if ident.GetSymbol() != sym {
		t.Fatal("return's identifier should bind back to the parameter's symbol")
	}
}

func TestFunctionDeclarationVisibleInsideOwnBody(t *testing.T) {
	// FunctionDeclaration declares-and-defines eagerly, so recursive
	// calls resolve without a forward-reference error.
	ctx := bind(t, "fn fact(n: number): number { return fact(n) }")
	fn := ctx.AstRoot.Statements[0].(*ast.FunctionDeclaration)
	if fn.GetSymbol() == nil {
		t.Fatal("function declaration has no bound symbol")
	}
}
