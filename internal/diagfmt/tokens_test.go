package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"ream/internal/diag"
	"ream/internal/diagfmt"
	"ream/internal/lexer"
	"ream/internal/source"
	"ream/internal/token"
)

func lexForFmt(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ream", []byte(src))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, fs
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := lexForFmt(t, "(let x 42)")

	var out strings.Builder
	if err := diagfmt.FormatTokensPretty(&out, tokens, fs); err != nil {
		t.Fatalf("format failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		`"(" at 1:1-1:2`,
		`"let" at 1:2-1:5`,
		`"x" at 1:6-1:7`,
		`"42" at 1:8-1:10`,
		"IntLit",
		"EOF",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestFormatTokensPrettyTrivia(t *testing.T) {
	tokens, fs := lexForFmt(t, "; comment\nx")

	var out strings.Builder
	if err := diagfmt.FormatTokensPretty(&out, tokens, fs); err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if !strings.Contains(out.String(), "leading:") {
		t.Fatalf("output missing leading trivia:\n%s", out.String())
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, _ := lexForFmt(t, "(+ 1 2)")

	var out strings.Builder
	if err := diagfmt.FormatTokensJSON(&out, tokens); err != nil {
		t.Fatalf("format failed: %v", err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 6 {
		t.Fatalf("got %d tokens, want 6", len(decoded))
	}
	if decoded[0].Kind != "'('" || decoded[1].Text != "+" {
		t.Fatalf("unexpected first tokens: %+v", decoded[:2])
	}
}
