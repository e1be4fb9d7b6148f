package binder

import "github.com/ion-lang/ionc/internal/pipeline"

// Processor is the binder's pipeline.Processor: it walks ctx.AstRoot with
// a fresh Binder, populating ctx.SymbolTable with the root scope built
// along the way. Runs after the resolver stage, per spec.md §4's
// lexer -> parser -> resolver -> binder -> type solver ordering.
type Processor struct{}

func NewProcessor() *Processor { return &Processor{} }

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	b := New(ctx)
	ctx.AstRoot.Accept(b)
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
