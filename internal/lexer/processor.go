package lexer

import "github.com/ion-lang/ionc/internal/pipeline"

// Processor is the lexer's pipeline.Processor: it wraps ctx.File in a
// Lexer and a buffered TokenStream, then hands the stream to later
// stages without consuming a single token itself (lexing is genuinely
// lazy here -- the lexer only runs as far ahead as the parser's Peek
// calls require). Grounded on mcgru-funxy/internal/lexer/processor.go's
// stage-wrapper shape.
type Processor struct{}

// NewProcessor builds the lexer stage.
func NewProcessor() *Processor { return &Processor{} }

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.File)
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
