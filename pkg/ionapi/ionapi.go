// Package ionapi is the embeddable surface for Go programs that want the
// Ion analysis pipeline as a library rather than a subprocess, grounded on
// the teacher's pkg/embed/vm.go embedding pattern — adapted from "embed a
// VM you can Call into" to "embed the analysis pipeline you can Compile
// with", since evaluation itself is out of scope (spec.md §1).
package ionapi

import (
	"os"

	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/binder"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/lexer"
	"github.com/ion-lang/ionc/internal/parser"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/resolver"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/symbols"
	"github.com/ion-lang/ionc/internal/typesolver"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// Result is everything a host program needs after a Compile call: the
// resolved/bound/type-solved AST, its symbol table, and any diagnostics —
// fatal or not.
type Result struct {
	File        *source.File
	AstRoot     *ast.SourceFile
	SymbolTable *symbols.SymbolTable
	TypeMap     map[ast.Node]typesystem.Type
	Diagnostics []*diagnostics.Diagnostic
	Fatal       bool
}

// Compile runs one file through the full Lex -> Parse -> Resolve -> Bind ->
// TypeSolve pipeline (spec.md §5) and returns the result. Internal
// compiler errors (diagnostics.CompilerError) are recovered and returned
// as the error value, mirroring cmd/ionc's top-level recover; any other
// panic is re-raised.
func Compile(path string) (*Result, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return CompileSource(path, string(text))
}

// CompileSource runs the pipeline over in-memory source text, for hosts
// that already have the text (editors, REPLs) and don't want a filesystem
// round-trip.
func CompileSource(path, text string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(diagnostics.CompilerError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	file := source.New(path, text)
	ctx := pipeline.NewPipelineContext(file)

	stages := pipeline.New(
		lexer.NewProcessor(),
		parser.NewProcessor(),
		resolver.NewProcessor(),
		binder.NewProcessor(),
		typesolver.NewProcessor(),
	)
	ctx = stages.Run(ctx)

	return &Result{
		File:        ctx.File,
		AstRoot:     ctx.AstRoot,
		SymbolTable: ctx.SymbolTable,
		TypeMap:     ctx.TypeMap,
		Diagnostics: ctx.Diagnostics,
		Fatal:       ctx.Fatal,
	}, nil
}
