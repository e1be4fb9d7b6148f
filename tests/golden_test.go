package tests

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/pkg/ionapi"
)

// Golden fixtures for the whole pipeline, one txtar archive holding every
// case. Each case is a directory with a "source.ion" file (the program
// under test) and a "want" file: one diagnostic code name per line (no
// such lines if none is expected), and a "fatal: true"/"fatal: false" line. Grounded on
// bufbuild-buf/private/bufpkg/bufimage/bufimageutil/bufimageutil_test.go's
// use of txtar.Archive/txtar.Format for structured fixture comparison,
// adapted here to txtar.Parse since these fixtures are static expectations
// rather than captured-and-diffed output.
const goldenArchives = `
-- clean/source.ion --
const greeting: string = "hi"
fn shout(msg: string): string { return msg }
-- clean/want --
fatal: false

-- self-reference/source.ion --
let x = x
-- self-reference/want --
VariableReadInOwnInitializer
fatal: true

-- return-outside-function/source.ion --
return 1
-- return-outside-function/want --
InvalidReturn
fatal: true

-- ambiguous-equals/source.ion --
while x = 1 { break }
-- ambiguous-equals/want --
AmbiguousEquals
fatal: false

-- duplicate-variable/source.ion --
let x = 1
let x = 2
-- duplicate-variable/want --
DuplicateVariable
fatal: true

-- generic-function/source.ion --
fn f<T>(xs: T[]): T { return xs[0] }
-- generic-function/want --
fatal: false

-- await-outside-async/source.ion --
fn f(): void { await 1 }
-- await-outside-async/want --
InvalidAwait
fatal: true
`

var codeNames = map[string]diagnostics.Code{
	"VariableReadInOwnInitializer": diagnostics.VariableReadInOwnInitializer,
	"InvalidReturn":                diagnostics.InvalidReturn,
	"AmbiguousEquals":              diagnostics.AmbiguousEquals,
	"DuplicateVariable":            diagnostics.DuplicateVariable,
	"InvalidAwait":                 diagnostics.InvalidAwait,
	"InvalidBreak":                 diagnostics.InvalidBreak,
	"InvalidContinue":              diagnostics.InvalidContinue,
	"VariableNotFound":             diagnostics.VariableNotFound,
}

func TestGoldenFixtures(t *testing.T) {
	archive := txtar.Parse([]byte(goldenArchives))

	cases := map[string]struct {
		source string
		want   string
	}{}
	for _, f := range archive.Files {
		name, kind, ok := strings.Cut(f.Name, "/")
		if !ok {
			t.Fatalf("malformed archive entry %q", f.Name)
		}
		c := cases[name]
		switch kind {
		case "source.ion":
			c.source = string(f.Data)
		case "want":
			c.want = string(f.Data)
		default:
			t.Fatalf("unexpected archive file %q", f.Name)
		}
		cases[name] = c
	}

	if len(cases) == 0 {
		t.Fatal("no golden fixtures parsed from archive")
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := ionapi.CompileSource(name+".ion", c.source)
			if err != nil {
				t.Fatalf("CompileSource: %v", err)
			}

			var wantCodes []diagnostics.Code
			var wantFatal bool
			for _, line := range strings.Split(strings.TrimSpace(c.want), "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if rest, ok := strings.CutPrefix(line, "fatal: "); ok {
					wantFatal = rest == "true"
					continue
				}
				code, ok := codeNames[line]
				if !ok {
					t.Fatalf("unknown diagnostic code %q in fixture %q", line, name)
				}
				wantCodes = append(wantCodes, code)
			}

			if result.Fatal != wantFatal {
				t.Fatalf("fatal: want %v, got %v (diagnostics: %v)", wantFatal, result.Fatal, result.Diagnostics)
			}

			for _, want := range wantCodes {
				found := false
				for _, d := range result.Diagnostics {
					if d.Code == want {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("want diagnostic %v, got %v", want, result.Diagnostics)
				}
			}
		})
	}
}
