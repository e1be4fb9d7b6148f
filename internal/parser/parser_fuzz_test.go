package parser_test

import (
	"testing"

	"github.com/ion-lang/ionc/internal/lexer"
	"github.com/ion-lang/ionc/internal/parser"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/source"
)

// FuzzParser runs the full lex+parse path over arbitrary byte input. The
// invariant is panic-freedom: malformed or truncated source must come
// back as diagnostics on ctx.Diagnostics, never a Go panic climbing out
// of ParseSourceFile. Grounded on funvibe-funxy/tests/fuzz/targets/
// parser_fuzz_test.go's FuzzParser, reseeded with Ion's own grammar
// (generics, match, interpolation, after/every, vector/color literals)
// since this grammar diverges from the teacher's.
func FuzzParser(f *testing.F) {
	f.Add([]byte(`let x = 1 + 2`))
	f.Add([]byte(`fn f<T>(xs: T[]): T { return xs[0] }`))
	f.Add([]byte(`match x { 1 -> "one", _ -> "other" }`))
	f.Add([]byte(`after 500ms { tick() }`))
	f.Add([]byte(`every 1s { tick() }`))
	f.Add([]byte(`let v = #ff00aa`))
	f.Add([]byte(`let r = a<b,c>(d)`))
	f.Add([]byte(`let s = "hello #{name} world"`))
	f.Add([]byte(`for x in range(0, 10) { print(x) }`))
	f.Add([]byte(`while x = 1 { break }`))
	f.Add([]byte(`fn f() {`))
	f.Add([]byte(`)))) <<< >>> ===`))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		file := source.New("fuzz.ion", string(data))
		ctx := pipeline.NewPipelineContext(file)
		stages := pipeline.New(lexer.NewProcessor(), parser.NewProcessor())

		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("parser panicked on %q: %v", data, r)
			}
		}()

		ctx = stages.Run(ctx)
		if ctx.AstRoot == nil {
			t.Fatalf("AstRoot was never set for %q", data)
		}
	})
}
