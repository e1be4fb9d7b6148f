package typesolver

import "github.com/ion-lang/ionc/internal/pipeline"

// Processor is the type solver's pipeline.Processor: the last stage in
// spec.md §5's Parse -> Resolve -> Bind -> TypeSolve ordering. It assumes
// ctx.SymbolTable's declarations already carry symbols (the binder stage
// ran first) and fills ctx.TypeMap plus each declaration symbol's type
// cell.
type Processor struct{}

func NewProcessor() *Processor { return &Processor{} }

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	s := New(ctx)
	s.Run(ctx.AstRoot)
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
