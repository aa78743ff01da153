package diagfmt_test

import (
	"strings"
	"testing"

	"ream/internal/diag"
	"ream/internal/diagfmt"
	"ream/internal/source"
)

func TestPrettyHeaderAndUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.ream", []byte("(let x (/ 1 0))\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.EvalDivideByZero,
		source.Span{File: id, Start: 12, End: 13}, "division by zero"))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{})

	text := out.String()
	for _, want := range []string{
		"main.ream:1:13: ERROR EVL3005: division by zero",
		"    1 | (let x (/ 1 0))",
		"      |             ^",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPrettyMultiByteUnderline(t *testing.T) {
	fs := source.NewFileSet()
	// λ is two bytes but one column wide
	id := fs.AddVirtual("u.ream", []byte("(λx 1)\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynUnexpectedToken,
		source.Span{File: id, Start: 1, End: 4}, "found identifier 'λx'"))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{})

	if !strings.Contains(out.String(), "      |  ^~") {
		t.Fatalf("underline not aligned to display width:\n%s", out.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.ream", []byte("0x1.5\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.LexInvalidNumber,
		source.Span{File: id, Start: 0, End: 5}, "invalid number \"0x1.5\"").
		WithNote(source.Span{File: id, Start: 0, End: 5},
			"floats can only be created using decimal notation"))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})

	text := out.String()
	if !strings.Contains(text, "NOTE: floats can only be created using decimal notation") {
		t.Fatalf("output missing note:\n%s", text)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.ream", []byte("(let a 1)\n(let b nope)\n(let c 3)\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.EvalUnknownIdentifier,
		source.Span{File: id, Start: 17, End: 21}, "unknown identifier \"nope\""))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{Context: 1})

	text := out.String()
	for _, want := range []string{"(let a 1)", "(let b nope)", "(let c 3)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing context line %q:\n%s", want, text)
		}
	}
}

func TestPrettyBasenamePathMode(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("deep/nested/dir/main.ream", []byte("x\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.EvalUnknownIdentifier,
		source.Span{File: id, Start: 0, End: 1}, "unknown identifier \"x\""))

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})

	if !strings.HasPrefix(out.String(), "main.ream:1:1:") {
		t.Fatalf("path not reduced to basename:\n%s", out.String())
	}
}

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("j.ream", []byte("#x\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.LexUnexpectedSymbol,
		source.Span{File: id, Start: 1, End: 2}, "found 'x', expected one of ['f', 't']"))

	var out strings.Builder
	err := diagfmt.JSON(&out, bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{`"code": "LEX1002"`, `"severity": "ERROR"`, `"line": 1`, `"col": 2`} {
		if !strings.Contains(text, want) {
			t.Fatalf("JSON missing %q:\n%s", want, text)
		}
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.ream", []byte("??\n"))

	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewError(diag.LexUnknownSymbol,
			source.Span{File: id, Start: uint32(i), End: uint32(i + 1)}, "unknown symbol"))
	}

	var out strings.Builder
	if err := diagfmt.JSON(&out, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if got := strings.Count(out.String(), `"code"`); got != 2 {
		t.Fatalf("got %d entries, want 2:\n%s", got, out.String())
	}
}
