package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes each stage in order, stopping as soon as one reports a
// fatal diagnostic: spec.md §7 makes every Error-severity diagnostic
// terminate the pipeline at its emission point, unlike the teacher's
// evaluator-oriented pipeline which always ran every stage to collect
// diagnostics for the LSP.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Fatal {
			break
		}
	}
	return ctx
}
