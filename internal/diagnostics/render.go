package diagnostics

import (
	"fmt"
	"strconv"
	"strings"
)

// Colorizer applies ANSI color codes to a rendered diagnostic's parts. The
// colorization layer itself — deciding *whether* to colorize — is
// explicitly out of the analysis core (spec.md §1); cmd/ionc supplies a
// Colorizer only when stdout is a terminal. Plain passes a no-op one.
type Colorizer interface {
	Severity(s Severity, text string) string
	Code(text string) string
	Location(text string) string
	Underline(text string) string
}

// Plain performs no colorization; used by default and by any consumer that
// wants machine-parseable output (spec.md §6's stable prefix).
type Plain struct{}

func (Plain) Severity(_ Severity, text string) string { return text }
func (Plain) Code(text string) string                 { return text }
func (Plain) Location(text string) string              { return text }
func (Plain) Underline(text string) string             { return text }

// Render produces the stable, machine-parseable diagnostic format documented
// in spec.md §6:
//
//	<file>:<line>:<col> - <severity> ION####: <message>
//
//	  <line-number>    <source-line>
//	<gutter><underline>
func Render(d *Diagnostic, c Colorizer) string {
	if c == nil {
		c = Plain{}
	}

	loc := d.Span.Start
	header := fmt.Sprintf("%s - %s ION%04d: %s",
		c.Location(loc.String()),
		c.Severity(d.Severity, strings.ToUpper(d.Severity.String()[:1])+d.Severity.String()[1:]),
		int(d.Code),
		d.Message(),
	)

	lineNo := strconv.Itoa(loc.Line)
	gutter := strings.Repeat(" ", len(lineNo)+6)
	sourceLine := d.Span.Line()

	underlineStart := d.Span.Start.Column
	underlineLen := d.Span.End.Column - d.Span.Start.Column
	if underlineLen < 1 {
		underlineLen = 1
	}
	underline := strings.Repeat(" ", underlineStart) + strings.Repeat("~", underlineLen)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s    %s\n", lineNo, sourceLine))
	b.WriteString(gutter)
	b.WriteString(c.Underline(underline))
	b.WriteString("\n")
	return b.String()
}
