package pipeline

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/symbols"
	"github.com/ion-lang/ionc/internal/typesystem"
)

// PipelineContext is the shared state threaded through every analysis
// stage: lexer -> parser -> resolver -> binder -> type solver (spec.md
// §1, §8). Grounded on mcgru-funxy/internal/pipeline/context.go, trimmed
// to what an analysis-only front end needs — no TraitDefaults,
// OperatorTraits or module Loader, since those exist only to support the
// teacher's evaluator.
type PipelineContext struct {
	File        *source.File
	TokenStream TokenStream
	AstRoot     *ast.SourceFile
	SymbolTable *symbols.SymbolTable
	TypeMap     map[ast.Node]typesystem.Type

	Diagnostics []*diagnostics.Diagnostic

	// Fatal is set by a processor once it has emitted an Error-severity
	// diagnostic, per spec.md §7's "fatal at the point it's emitted"
	// rule. Pipeline.Run checks it after each stage and skips the rest.
	Fatal bool
}

// NewPipelineContext creates a context ready for the lexer stage.
func NewPipelineContext(file *source.File) *PipelineContext {
	return &PipelineContext{
		File:    file,
		TypeMap: make(map[ast.Node]typesystem.Type),
	}
}

// Report records a diagnostic and, if it is an Error, marks the context
// fatal so later stages refuse to run.
func (ctx *PipelineContext) Report(d *diagnostics.Diagnostic) {
	ctx.Diagnostics = append(ctx.Diagnostics, d)
	if d.Fatal() {
		ctx.Fatal = true
	}
}
