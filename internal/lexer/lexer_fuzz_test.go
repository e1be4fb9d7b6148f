package lexer_test

import (
	"testing"

	"github.com/ion-lang/ionc/internal/lexer"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/token"
)

// FuzzLexer drains the lexer over arbitrary byte input, the invariant
// being panic-freedom and termination: a malformed run of bytes should
// surface as UnexpectedCharacter/MalformedNumber/UnterminatedString
// diagnostics, never a Go panic, and NextToken must eventually reach
// token.EOF. Grounded on funvibe-funxy/tests/fuzz/targets/parser_fuzz_test.go's
// FuzzParser shape, narrowed to the lexer stage alone.
func FuzzLexer(f *testing.F) {
	f.Add([]byte(`let x = 1 + 2`))
	f.Add([]byte(`"unterminated`))
	f.Add([]byte(`0xFF 1.5ms "hi #{x} there"`))
	f.Add([]byte(`a >> b >>> c <<= d`))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		file := source.New("fuzz.ion", string(data))
		l := lexer.New(file)

		const maxTokens = 1_000_000
		for i := 0; i < maxTokens; i++ {
			tok := l.NextToken()
			if tok.Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF within %d tokens for %q", maxTokens, data)
	})
}
