package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ream/internal/diag"
	"ream/internal/driver"
	"ream/internal/eval"
	"ream/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ream", "(let x 42)")

	result, err := driver.Tokenize(path, 100)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Bag.Items())
	}
	if got := len(result.Tokens); got != 6 {
		t.Fatalf("got %d tokens, want 6", got)
	}
	if last := result.Tokens[len(result.Tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", last.Kind)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := driver.Tokenize(filepath.Join(t.TempDir(), "absent.ream"), 100); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestTokenizeCollectsLexErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.ream", "#x")

	result, err := driver.Tokenize(path, 100)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if !result.Bag.HasErrors() {
		t.Fatal("want lex diagnostics")
	}
	if got := result.Bag.Items()[0].Code; got != diag.LexUnexpectedSymbol {
		t.Fatalf("code = %v, want LexUnexpectedSymbol", got)
	}
}

func TestParse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ream", "(let double (lambda (x) (* x 2)))")

	result, err := driver.Parse(path, 100)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.Program == nil {
		t.Fatalf("no program; diagnostics: %v", result.Bag.Items())
	}
	if len(result.Program.Exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(result.Program.Exprs))
	}
}

func TestParseReportsFirstError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.ream", "(let)")

	result, err := driver.Parse(path, 100)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.Program != nil {
		t.Fatal("want nil program on parse error")
	}
	if result.Bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1 (fail-fast)", result.Bag.Len())
	}
}

func TestRun(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ream",
		"(let add (lambda (a b) (+ a b)))\n(print (add 2 3))\n(add 40 2)")

	var out strings.Builder
	result, err := driver.Run(path, &out, 100)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Bag.Items())
	}
	if out.String() != "5\n" {
		t.Fatalf("output = %q, want \"5\\n\"", out.String())
	}
	if result.Value.Kind != eval.ValInteger || result.Value.Int != 42 {
		t.Fatalf("value = %v, want Integer 42", result.Value)
	}
}

func TestRunVirtualRuntimeError(t *testing.T) {
	var out strings.Builder
	result := driver.RunVirtual("stdin", []byte("(/ 1 0)"), &out, 100)
	if !result.Bag.HasErrors() {
		t.Fatal("want runtime diagnostics")
	}
	if got := result.Bag.Items()[0].Code; got != diag.EvalDivideByZero {
		t.Fatalf("code = %v, want EvalDivideByZero", got)
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ream", "(+ 1 2)")
	writeFile(t, dir, "b.ream", ":atom")
	writeFile(t, dir, "skip.txt", "not a source file")

	fs, results, err := driver.TokenizeDir(context.Background(), dir, 100, 0)
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if fs.Len() != 2 {
		t.Fatalf("file set holds %d files, want 2", fs.Len())
	}
	// Deterministic order: a.ream before b.ream.
	if !strings.HasSuffix(results[0].Path, "a.ream") {
		t.Fatalf("results[0] = %s, want a.ream first", results[0].Path)
	}
	if got := len(results[0].Tokens); got != 6 {
		t.Fatalf("a.ream produced %d tokens, want 6", got)
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := driver.TokenizeDir(context.Background(), t.TempDir(), 100, 0)
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}
	if len(results) != 0 || fs.Len() != 0 {
		t.Fatalf("want empty results, got %d results, %d files", len(results), fs.Len())
	}
}

func TestParseFilesKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	second := writeFile(t, dir, "a.ream", "(let x 1)")
	first := writeFile(t, dir, "z.ream", "(let y 2)")

	_, results, err := driver.ParseFiles(context.Background(), []string{first, second}, 100, 0)
	if err != nil {
		t.Fatalf("ParseFiles failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Path != first || results[1].Path != second {
		t.Fatalf("result order = [%s %s], want input order", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Program == nil || r.Bag.HasErrors() {
			t.Fatalf("%s failed: %v", r.Path, r.Bag.Items())
		}
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.ream", "(let x 1)")
	writeFile(t, dir, "bad.ream", "(let)")

	_, results, err := driver.ParseDir(context.Background(), dir, 100, 2)
	if err != nil {
		t.Fatalf("ParseDir failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byName := make(map[string]driver.ParseDirResult, len(results))
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}
	if byName["good.ream"].Program == nil || byName["good.ream"].Bag.HasErrors() {
		t.Fatalf("good.ream failed: %v", byName["good.ream"].Bag.Items())
	}
	if byName["bad.ream"].Program != nil || !byName["bad.ream"].Bag.HasErrors() {
		t.Fatal("bad.ream should have failed with diagnostics")
	}
}
