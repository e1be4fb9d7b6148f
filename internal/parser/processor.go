package parser

import (
	"github.com/ion-lang/ionc/internal/ast"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/pipeline"
)

// Processor is the parser's pipeline.Processor: it drives the token
// stream to completion, builds ctx.AstRoot, then folds any lexical
// diagnostics the stream accumulated along the way into ctx so a
// malformed-number or unterminated-string error reported deep inside a
// Peek lookahead still surfaces with its original code, not a generic
// "unexpected token" from the parser itself.
type Processor struct{}

func NewProcessor() *Processor { return &Processor{} }

type errorSource interface {
	Errors() []*diagnostics.Diagnostic
}

func (stageProcessor *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.TokenStream, ctx)
	statements := p.ParseSourceFile()
	ctx.AstRoot = &ast.SourceFile{File: ctx.File, Statements: statements}

	if src, ok := ctx.TokenStream.(errorSource); ok {
		for _, d := range src.Errors() {
			ctx.Report(d)
		}
	}
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
