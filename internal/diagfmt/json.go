package diagfmt

import (
	"encoding/json"
	"io"

	"ream/internal/diag"
	"ream/internal/source"
)

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Span     source.Span  `json:"span"`
	Path     string       `json:"path,omitempty"`
	Line     uint32       `json:"line,omitempty"`
	Col      uint32       `json:"col,omitempty"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

// NoteOutput is the JSON shape of one attached note.
type NoteOutput struct {
	Message string      `json:"message"`
	Span    source.Span `json:"span"`
}

// JSON writes the bag as a JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	var output []DiagnosticOutput

	for i, d := range bag.Items() {
		if opts.Max > 0 && i >= opts.Max {
			break
		}

		entry := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if opts.IncludePositions && int(d.Primary.File) < fs.Len() {
			start, _ := fs.Resolve(d.Primary)
			entry.Path = fs.Get(d.Primary.File).Path
			entry.Line = start.Line
			entry.Col = start.Col
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				entry.Notes = append(entry.Notes, NoteOutput{Message: note.Msg, Span: note.Span})
			}
		}
		output = append(output, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
