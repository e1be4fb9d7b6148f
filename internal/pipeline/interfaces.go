package pipeline

import "github.com/ion-lang/ionc/internal/token"

// Processor is one stage of the analysis pipeline: lexing, parsing,
// resolving, binding, or type solving. Each stage reads and extends the
// shared PipelineContext and returns it (or a fatal-diagnostic-bearing
// copy) for the next stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the contract a Processor needs from whatever sits in
// front of the parser: buffered single-token consumption plus bounded
// lookahead. Grounded on mcgru-funxy/internal/pipeline/interfaces.go;
// extended with PushBack and ResumeInterpolatedString for the two lexer
// behaviors spec.md requires that the teacher's stream didn't need
// (generic-argument token splitting, string interpolation resumption).
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
	PushBack(tokens ...token.Token)
	ResumeInterpolatedString() token.Token
}
