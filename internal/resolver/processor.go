package resolver

import "github.com/ion-lang/ionc/internal/pipeline"

// Processor is the resolver's pipeline.Processor: it walks ctx.AstRoot
// with a fresh Resolver, reporting scoping and context diagnostics into
// ctx as it goes. It does not itself halt on the first error; ctx.Fatal
// is consulted by Pipeline.Run between stages, per spec.md §7.
type Processor struct{}

func NewProcessor() *Processor { return &Processor{} }

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	r := New(ctx)
	r.Run(ctx.AstRoot)
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
