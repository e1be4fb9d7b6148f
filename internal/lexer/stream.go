package lexer

import (
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/token"
)

// lookaheadBufferSize bounds how much of the buffer we keep behind the
// read cursor before trimming it away, mirroring
// mcgru-funxy/internal/lexer/processor.go's bufferedLexer.
const lookaheadBufferSize = 10

// TokenStream is a buffered view over a Lexer supporting Peek(n) lookahead
// and PushBack, the latter needed for the generic-argument-vs-comparison
// disambiguation spec.md §4.2.3/§9 describes: the parser may split a `>>`
// or `>>>` token it over-consumed back into narrower `>` tokens and replay
// them. Grounded on mcgru-funxy's bufferedLexer, generalized from its
// fixed forward buffer to also support pushing tokens back in front of the
// cursor.
type TokenStream struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

// NewTokenStream wraps l in a buffered, peekable, push-back-capable stream.
func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{l: l}
}

// Next consumes and returns the next token, pulling fresh ones from the
// lexer once the buffer is drained.
func (ts *TokenStream) Next() token.Token {
	if ts.pos < len(ts.buffer) {
		tok := ts.buffer[ts.pos]
		ts.pos++
		return tok
	}
	return ts.l.NextToken()
}

// Peek returns up to n tokens starting at the current cursor without
// consuming them.
func (ts *TokenStream) Peek(n int) []token.Token {
	if len(ts.buffer)-ts.pos == 0 && !ts.l.AtEnd() {
		ts.buffer = append(ts.buffer, ts.l.NextToken())
	}

	for len(ts.buffer)-ts.pos < n && !ts.l.AtEnd() {
		ts.buffer = append(ts.buffer, ts.l.NextToken())
	}

	if ts.pos > lookaheadBufferSize {
		ts.buffer = ts.buffer[ts.pos:]
		ts.pos = 0
	}

	end := ts.pos + n
	if end > len(ts.buffer) {
		end = len(ts.buffer)
	}
	return ts.buffer[ts.pos:end]
}

// PushBack re-inserts tokens in front of the read cursor, in the order they
// should be re-read. Used by the parser when it consumed a `>>`/`>>>`
// token greedily and must hand back the trailing `>` tokens it didn't
// want, per spec.md §4.2.3's generic-argument-close handling.
func (ts *TokenStream) PushBack(tokens ...token.Token) {
	if ts.pos >= len(tokens) {
		ts.pos -= len(tokens)
		copy(ts.buffer[ts.pos:], tokens)
		return
	}
	rest := append([]token.Token{}, ts.buffer[ts.pos:]...)
	ts.buffer = append(append([]token.Token{}, tokens...), rest...)
	ts.pos = 0
}

// ResumeInterpolatedString delegates to the underlying lexer so the parser
// can resume scanning a string literal's next segment after consuming an
// embedded interpolation expression.
func (ts *TokenStream) ResumeInterpolatedString() token.Token {
	return ts.l.ResumeInterpolatedString()
}

// Errors returns every lexical diagnostic accumulated so far; the parser
// stage processor copies these into the PipelineContext after parsing.
func (ts *TokenStream) Errors() []*diagnostics.Diagnostic {
	return ts.l.Errors
}

var _ pipeline.TokenStream = (*TokenStream)(nil)
