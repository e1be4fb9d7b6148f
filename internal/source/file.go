package source

import "strings"

// File owns a source buffer's path and text, plus lazily computed line
// offsets used to turn a byte position into a 1-based line number and back.
//
// File is non-copyable by convention (always passed by pointer): the lexer,
// parser and every later pass hold a *File so that Location values compare
// equal by pointer identity, not by path string.
type File struct {
	Path        string
	Text        string
	lineOffsets []int
}

// New builds a File over the given path and text, ready for lexing.
func New(path, text string) *File {
	f := &File{Path: path, Text: text}
	f.lineOffsets = []int{0}
	for i, r := range text {
		if r == '\n' {
			f.lineOffsets = append(f.lineOffsets, i+1)
		}
	}
	return f
}

// Slice returns f.Text[start:end], clamped to the buffer's bounds.
func (f *File) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(f.Text) {
		end = len(f.Text)
	}
	if start > end {
		return ""
	}
	return f.Text[start:end]
}

// LineText returns the full text of the given 1-based line, without its
// trailing newline.
func (f *File) LineText(line int) string {
	if line < 1 || line > len(f.lineOffsets) {
		return ""
	}
	start := f.lineOffsets[line-1]
	var end int
	if line < len(f.lineOffsets) {
		end = f.lineOffsets[line] - 1
	} else {
		end = len(f.Text)
	}
	return strings.TrimRight(f.Slice(start, end), "\r")
}

// LocationAt builds a Location for a byte position, deriving line/column
// from the precomputed line offsets. Used by diagnostics that only have a
// byte offset (e.g. from an external tool) and need a renderable location.
func (f *File) LocationAt(position int) Location {
	line := 1
	for i, off := range f.lineOffsets {
		if off > position {
			break
		}
		line = i + 1
	}
	column := position - f.lineOffsets[line-1]
	return Location{Position: position, Line: line, Column: column, File: f}
}
