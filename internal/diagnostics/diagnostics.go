// Package diagnostics defines Ion's error taxonomy, severities, and the
// span-anchored reporting contract every pass uses. Grounded on
// mcgru-funxy/internal/diagnostics/diagnostics.go for the Go shape and on
// original_source/include/ion/diagnostics.h for the exact taxonomy.
package diagnostics

import (
	"fmt"

	"github.com/ion-lang/ionc/internal/source"
)

// Severity mirrors original_source's DiagnosticSeverity.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Info
	Debug
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return "unknown"
	}
}

// Code is the ION#### numeric code, per spec.md §7.
type Code int

const (
	UnexpectedCharacter Code = iota + 1
	MalformedNumber
	UnterminatedString
	UnexpectedSyntax
	UnexpectedEOF
	ExpectedDifferentSyntax
	InvalidAssignment
	InvalidExport
	InvalidNameOf
	InvalidDecoratorTarget
	DuplicateVariable
	VariableNotFound
	VariableReadInOwnInitializer
	InvalidBreak
	InvalidContinue
	InvalidReturn
	_ // 17 unused in spec.md's taxonomy table
	InvalidAwait
	DuplicateMember
	NoVariableTypeOrInitializer
)

const (
	UnreachableCode Code = iota + 100
	AmbiguousEquals
)

var templates = map[Code]string{
	UnexpectedCharacter:          "unexpected character %q",
	MalformedNumber:              "malformed number literal %q",
	UnterminatedString:           "unterminated string literal",
	UnexpectedSyntax:             "unexpected %s",
	UnexpectedEOF:                "unexpected end of file",
	ExpectedDifferentSyntax:      "expected %s, got %s",
	InvalidAssignment:            "invalid assignment target %q",
	InvalidExport:                "export may only prefix a declaration",
	InvalidNameOf:                "nameof target must be an identifier or member access",
	InvalidDecoratorTarget:       "decorators may only precede a function declaration",
	DuplicateVariable:            "duplicate declaration of %q in this scope",
	VariableNotFound:             "undefined name %q",
	VariableReadInOwnInitializer: "variable read in its own initializer",
	InvalidBreak:                 "break may only appear inside a loop",
	InvalidContinue:              "continue may only appear inside a loop",
	InvalidReturn:                "return may only appear inside a function body",
	InvalidAwait:                 "await may only appear inside an async function",
	DuplicateMember:              "duplicate %s %q",
	NoVariableTypeOrInitializer:  "variable declaration needs a type annotation or a non-null initializer",
	UnreachableCode:              "unreachable code after return",
	AmbiguousEquals:              "assignment used where a comparison may have been intended; did you mean ==?",
}

// severities pins severity for codes whose spec.md table differs from the
// default (Error). Anything absent defaults to Error; the two warnings are
// listed explicitly.
var severities = map[Code]Severity{
	UnreachableCode: Warning,
	AmbiguousEquals: Warning,
}

func defaultSeverity(code Code) Severity {
	if s, ok := severities[code]; ok {
		return s
	}
	return Error
}

// Diagnostic is one reported problem: a code, severity, span, and rendered
// arguments for its message template.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Span     source.Span
	Args     []interface{}
}

// New builds a Diagnostic with the code's default severity.
func New(code Code, span source.Span, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Severity: defaultSeverity(code), Span: span, Args: args}
}

// Message renders the diagnostic's human-readable text, without location
// information (rendering with location is render.go's job).
func (d *Diagnostic) Message() string {
	template, ok := templates[d.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code ION%04d", int(d.Code))
	}
	if len(d.Args) == 0 {
		return template
	}
	return fmt.Sprintf(template, d.Args...)
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s ION%04d: %s", d.Span.Start, d.Severity, int(d.Code), d.Message())
}

// Fatal reports whether this diagnostic terminates the pipeline, per
// spec.md §7: every Error is fatal at emission point, warnings are not.
func (d *Diagnostic) Fatal() bool {
	return d.Severity == Error
}

// CompilerError is the panic value used by the single compiler-internal
// "should never happen" path (spec.md §4.7's compiler_error). cmd/ionc
// recovers it at the top level and reports exit code 255.
type CompilerError struct {
	Message string
}

func (e CompilerError) Error() string { return "internal compiler error: " + e.Message }

// InternalError panics with a CompilerError, the Go analogue of the
// original's report_compiler_error [[noreturn]] path.
func InternalError(message string) {
	panic(CompilerError{Message: message})
}
