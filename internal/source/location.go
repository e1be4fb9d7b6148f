// Package source owns source file buffers and the location/span types that
// every later pass uses to anchor diagnostics and AST nodes.
package source

import "fmt"

// Location is a single point in a source file: a byte offset plus the
// 1-based line and 0-based column it decodes to.
type Location struct {
	Position int
	Line     int
	Column   int
	File     *File
}

func (l Location) String() string {
	name := "<unknown>"
	if l.File != nil {
		name = l.File.Path
	}
	return fmt.Sprintf("%s:%d:%d", name, l.Line, l.Column)
}

// AddColumns returns a Location shifted by n columns and bytes. It does not
// cross line boundaries; callers that need that must re-derive the location
// from the lexer's own position tracking instead.
func (l Location) AddColumns(n int) Location {
	l.Position += n
	l.Column += n
	return l
}

// Less orders two locations by byte position. There is deliberately no
// Greater: the original implementation's FileLocation::operator> was
// actually implemented as <, a bug spec.md explicitly does not rely on. We
// expose only the one unambiguous comparison and let callers negate it.
func (l Location) Less(other Location) bool {
	return l.Position < other.Position
}

// Span is an ordered (start, end) pair of Locations delimiting a token or
// AST node. End is exclusive.
type Span struct {
	Start Location
	End   Location
}

// Text returns the substring of the underlying file covered by the span.
func (s Span) Text() string {
	if s.Start.File == nil {
		return ""
	}
	return s.Start.File.Slice(s.Start.Position, s.End.Position)
}

// Line returns the full source line containing the span's start.
func (s Span) Line() string {
	if s.Start.File == nil {
		return ""
	}
	return s.Start.File.LineText(s.Start.Line)
}

// CrossesNewline reports whether a newline separates this span from other,
// i.e. whether they lie on different source lines.
func (s Span) CrossesNewline(other Span) bool {
	return s.End.Line != other.Start.Line
}

// Merge returns the smallest span covering both s and other.
func Merge(a, b Span) Span {
	start, end := a.Start, a.End
	if b.Start.Less(start) {
		start = b.Start
	}
	if end.Less(b.End) {
		end = b.End
	}
	return Span{Start: start, End: end}
}
