// Package position locates a byte offset in source text and renders the
// human-readable excerpt-with-caret errors every other package in this
// module reports through.
package position

import (
	"fmt"
	"strings"
)

// Pos is a zero-based index into a source string, shared by every token
// and node produced anywhere in this module.
type Pos int

// NoPos marks the absence of a position (used where a node has no source
// span of its own, e.g. a synthesized implicit-multiplication operator
// is still positioned, but a few internal sentinels are not).
const NoPos Pos = -1

// maxLineWidth is the excerpt width past which a line is windowed around
// the error column instead of printed in full.
const maxLineWidth = 75

// Error is a single parser diagnostic: a fully rendered, multi-line,
// human-readable message. There is no structured payload beyond the
// string because every caller of this package (scanner, balancer,
// builder) only ever surfaces errors to a human, never inspects them
// programmatically — see spec §6 "ParserError carries a single
// multi-line, human-readable string".
type Error struct {
	rendered string
}

func (e *Error) Error() string { return e.rendered }

// New renders a ParserError for `message` at `index` in `source`. An
// empty `suggestion` omits the trailing hint line.
func New(source string, index Pos, message string, suggestion string) *Error {
	return &Error{rendered: Format(source, index, message, suggestion)}
}

// Note formats a contextual "Note: ..." clause, meant to be passed as
// New's suggestion argument (or appended to one with a blank line
// between). Spec §7 asks for these to reference an earlier token by
// index; callers format that reference into `format` themselves.
func Note(format string, args ...any) string {
	return "Note: " + fmt.Sprintf(format, args...)
}

// Format produces the exact shape described in spec §4.1:
//
//	<message> at line L, index I:
//	<excerpt>
//	<spaces>^
//	<suggestion?>
func Format(source string, index Pos, message string, suggestion string) string {
	idx := clamp(int(index), 0, len(source))
	line, lineStart, lineText := locate(source, idx)
	col := idx - lineStart
	excerpt, caretCol := window(lineText, col)

	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d, index %d:\n", message, line, idx)
	b.WriteString(excerpt)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", caretCol))
	b.WriteByte('^')
	if suggestion != "" {
		b.WriteByte('\n')
		b.WriteString(suggestion)
	}
	return b.String()
}

// LineCol returns the 1-based line number and 0-based column of `index`
// within `source`, clamped to the source bounds. Exposed for callers
// (e.g. a CLI reporting `line:col`) that want the raw coordinates
// without a rendered excerpt.
func LineCol(source string, index Pos) (line, col int) {
	idx := clamp(int(index), 0, len(source))
	line, lineStart, _ := locate(source, idx)
	return line, idx - lineStart
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// locate finds the (1-based) line number, the byte offset where that
// line starts, and the line's text (excluding its terminating '\n'),
// for the given clamped index.
func locate(source string, idx int) (lineNum, lineStart int, lineText string) {
	lines := strings.Split(source, "\n")
	offset := 0
	for i, line := range lines {
		end := offset + len(line)
		if idx <= end || i == len(lines)-1 {
			return i + 1, offset, line
		}
		offset = end + 1 // +1 skips the '\n' itself
	}
	// len(lines) is always >= 1, so the loop above always returns.
	panic("unreachable")
}

// window centers a windowed view of `line` around `col` when the line
// is longer than maxLineWidth, prefixing/suffixing an ellipsis as
// needed, and returns the adjusted caret column within the returned
// excerpt.
func window(line string, col int) (excerpt string, caretCol int) {
	if len(line) <= maxLineWidth {
		return line, col
	}

	half := maxLineWidth / 2
	start := col - half
	end := col + half
	if start < 0 {
		end -= start
		start = 0
	}
	if end > len(line) {
		start -= end - len(line)
		end = len(line)
		if start < 0 {
			start = 0
		}
	}

	var prefix, suffix string
	if start > 0 {
		prefix = "..."
	}
	if end < len(line) {
		suffix = "..."
	}

	return prefix + line[start:end] + suffix, col - start + len(prefix)
}
