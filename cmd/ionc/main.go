// Command ionc is the `compile <path>` driver spec.md §6 describes as an
// external collaborator of the analysis core: it expands glob arguments,
// loads project config, runs the pipeline once per file, renders
// diagnostics, and journals the run. Grounded on the teacher's
// `cmd/funxy/main.go`/`pkg/cli/entry.go` hand-rolled os.Args/flag CLI idiom
// (no CLI framework in the teacher, so none here either).
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-isatty"

	"github.com/ion-lang/ionc/internal/binder"
	"github.com/ion-lang/ionc/internal/config"
	"github.com/ion-lang/ionc/internal/diagnostics"
	"github.com/ion-lang/ionc/internal/lexer"
	"github.com/ion-lang/ionc/internal/parser"
	"github.com/ion-lang/ionc/internal/pipeline"
	"github.com/ion-lang/ionc/internal/resolver"
	"github.com/ion-lang/ionc/internal/session"
	"github.com/ion-lang/ionc/internal/source"
	"github.com/ion-lang/ionc/internal/typesolver"
)

const projectFileName = "ion.yaml"
const journalFileName = ".ionc-history.sqlite"

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: ionc compile <path>...  |  ionc history <path>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		os.Exit(runCompile(os.Args[2:]))
	case "history":
		os.Exit(runHistory(os.Args[2]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(1)
	}
}

func runCompile(patterns []string) int {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(diagnostics.CompilerError); ok {
				fmt.Fprintln(os.Stderr, ce.Error())
				os.Exit(255)
			}
			panic(r)
		}
	}()

	proj, err := config.LoadProject(projectFileName)
	if err != nil {
		log.Printf("ion.yaml: %v (continuing with argv paths only)", err)
		proj = &config.Project{}
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", pattern, err)
			return 1
		}
		files = append(files, matches...)
	}
	for _, root := range proj.SourceRoots {
		matches, err := doublestar.FilepathGlob(root)
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no source files matched")
		return 1
	}

	journal, err := session.OpenJournal(journalFileName)
	if err != nil {
		log.Printf("session journal unavailable: %v", err)
	} else {
		defer journal.Close()
	}

	color := colorizerFor(os.Stdout)

	worst := 0
	for _, path := range files {
		code := compileFile(path, color, journal)
		if code > worst {
			worst = code
		}
	}
	return worst
}

func compileFile(path string, color diagnostics.Colorizer, journal *session.Journal) int {
	sess := session.New()

	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 1
	}

	file := source.New(path, string(text))
	ctx := pipeline.NewPipelineContext(file)

	stages := pipeline.New(
		lexer.NewProcessor(),
		parser.NewProcessor(),
		resolver.NewProcessor(),
		binder.NewProcessor(),
		typesolver.NewProcessor(),
	)
	ctx = stages.Run(ctx)

	for _, d := range ctx.Diagnostics {
		fmt.Fprint(os.Stderr, diagnostics.Render(d, color))
	}

	exitCode := 0
	if ctx.Fatal {
		exitCode = fatalExitCode(ctx.Diagnostics)
	}

	if journal != nil {
		if err := journal.Record(sess, path, len(ctx.Diagnostics), exitCode); err != nil {
			log.Printf("journal write failed for %s: %v", path, err)
		}
	}

	return exitCode
}

// fatalExitCode maps the first fatal diagnostic's code to spec.md §6's
// "1..N mapped to diagnostic code ranges" exit status.
func fatalExitCode(ds []*diagnostics.Diagnostic) int {
	for _, d := range ds {
		if d.Fatal() {
			return int(d.Code)
		}
	}
	return 1
}

func runHistory(path string) int {
	journal, err := session.OpenJournal(journalFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening history journal: %v\n", err)
		return 255
	}
	defer journal.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	runs, err := journal.History(abs)
	if err != nil {
		runs, err = journal.History(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading history: %v\n", err)
		return 255
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  diagnostics=%d  exit=%d\n", r.RanAt, r.SessionID, r.Diagnostics, r.ExitCode)
	}
	return 0
}

func colorizerFor(f *os.File) diagnostics.Colorizer {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return ansiColorizer{}
	}
	return diagnostics.Plain{}
}

// ansiColorizer implements diagnostics.Colorizer with basic SGR codes; the
// decision to colorize at all is cmd/ionc's alone (spec.md §1 keeps the
// core's rendering plain/colorless), per DESIGN.md.
type ansiColorizer struct{}

func (ansiColorizer) Severity(s diagnostics.Severity, text string) string {
	code := "31" // red, for Error
	switch s {
	case diagnostics.Warning:
		code = "33"
	case diagnostics.Info:
		code = "36"
	case diagnostics.Debug:
		code = "90"
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func (ansiColorizer) Code(text string) string      { return "\x1b[1m" + text + "\x1b[0m" }
func (ansiColorizer) Location(text string) string  { return "\x1b[1m" + text + "\x1b[0m" }
func (ansiColorizer) Underline(text string) string { return "\x1b[32m" + text + "\x1b[0m" }
