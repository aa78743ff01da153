package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ream/internal/diag"
	"ream/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	gutterColor  = color.New(color.FgHiBlack)
)

// Pretty renders the bag in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   12 | (let x (/ 1 0))
//	      |           ^~~
//
// followed by notes in the same shape. Call bag.Sort() beforehand for
// stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
	writeSnippet(w, d.Primary, fs, opts)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		sev := severityColored("NOTE", noteColor, opts.Color)
		fmt.Fprintf(w, "%s: %s: %s\n", position(note.Span, fs, opts), sev, note.Msg)
		writeSnippet(w, note.Span, fs, opts)
	}
}

func writeHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = errorColor
	case diag.SevWarning:
		c = warningColor
	default:
		c = infoColor
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		position(sp, fs, opts),
		severityColored(sev.String(), c, opts.Color),
		code.ID(), msg)
}

func severityColored(text string, c *color.Color, useColor bool) string {
	if !useColor {
		return text
	}
	return c.Sprint(text)
}

func position(sp source.Span, fs *source.FileSet, opts PrettyOpts) string {
	if int(sp.File) >= fs.Len() {
		return "<unknown>"
	}
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(file.Path, opts.PathMode), start.Line, start.Col)
}

// writeSnippet prints the source line of the span with a caret
// underline, plus Context surrounding lines.
func writeSnippet(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	if int(sp.File) >= fs.Len() {
		return
	}
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	first := int(start.Line) - opts.Context
	if first < 1 {
		first = 1
	}
	last := int(start.Line) + opts.Context

	for lineNum := first; lineNum <= last; lineNum++ {
		text := file.GetLine(uint32(lineNum))
		if text == "" && lineNum != int(start.Line) {
			continue
		}
		gutter := fmt.Sprintf("%5d |", lineNum)
		if opts.Color {
			gutter = gutterColor.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s %s\n", gutter, text)

		if lineNum == int(start.Line) {
			writeUnderline(w, text, start, end, opts)
		}
	}
}

func writeUnderline(w io.Writer, lineText string, start, end source.LineCol, opts PrettyOpts) {
	// columns count bytes; indentation and underline count display cells
	prefix := min(int(start.Col)-1, len(lineText))
	if prefix < 0 {
		prefix = 0
	}
	pad := runewidth.StringWidth(lineText[:prefix])

	width := 1
	if end.Line == start.Line && int(end.Col)-1 <= len(lineText) && end.Col > start.Col {
		width = runewidth.StringWidth(lineText[prefix : int(end.Col)-1])
	}
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = errorColor.Sprint(underline)
	}
	gutter := "      |"
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s %s%s\n", gutter, strings.Repeat(" ", pad), underline)
}
