package parser_test

import (
	"testing"

	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/lexer"
	"ream/internal/parser"
	"ream/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Program, bool, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ream", []byte(src))
	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	p := parser.New(lx, parser.Options{Reporter: reporter})
	prog, ok := p.Parse()
	return prog, ok, bag
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, ok, bag := parseSource(t, src)
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	return prog
}

func mustParseOne(t *testing.T, src string) *ast.Expr {
	t.Helper()
	prog := mustParse(t, src)
	if len(prog.Exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(prog.Exprs))
	}
	return prog.Exprs[0]
}

func wantParseError(t *testing.T, src string, code diag.Code) {
	t.Helper()
	prog, ok, bag := parseSource(t, src)
	if ok {
		t.Fatalf("parse succeeded, want error %v; program: %+v", code, prog)
	}
	if bag.Len() == 0 {
		t.Fatalf("no diagnostics reported")
	}
	if got := bag.Items()[0].Code; got != code {
		t.Fatalf("first diagnostic = %v (%q), want %v",
			got, bag.Items()[0].Message, code)
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ast.LitKind
	}{
		{"boolean", "#t", ast.LitBoolean},
		{"integer", "42", ast.LitInteger},
		{"float", "1.5", ast.LitFloat},
		{"character", "'a'", ast.LitCharacter},
		{"string", `"hi"`, ast.LitString},
		{"atom", ":ok", ast.LitAtom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := mustParseOne(t, tt.src)
			if expr.Kind != ast.ExprLiteral {
				t.Fatalf("expr kind = %v, want Literal", expr.Kind)
			}
			if expr.Lit.Kind != tt.kind {
				t.Errorf("literal kind = %v, want %v", expr.Lit.Kind, tt.kind)
			}
		})
	}
}

func TestParseIdentifier(t *testing.T) {
	expr := mustParseOne(t, "foo")
	if expr.Kind != ast.ExprIdent || expr.Name != "foo" {
		t.Fatalf("got %v %q, want Identifier foo", expr.Kind, expr.Name)
	}
}

func TestParseDefinition(t *testing.T) {
	expr := mustParseOne(t, "(let x 42)")
	if expr.Kind != ast.ExprDefinition {
		t.Fatalf("kind = %v, want Definition", expr.Kind)
	}
	if expr.Target.Name != "x" {
		t.Errorf("target = %q, want x", expr.Target.Name)
	}
	if expr.Value.Kind != ast.ExprLiteral || expr.Value.Lit.Int != 42 {
		t.Errorf("value not literal 42: %+v", expr.Value)
	}
}

func TestParseCall(t *testing.T) {
	expr := mustParseOne(t, "(+ 1 2)")
	if expr.Kind != ast.ExprCall {
		t.Fatalf("kind = %v, want Call", expr.Kind)
	}
	if expr.Operator.Name != "+" {
		t.Errorf("operator = %q, want +", expr.Operator.Name)
	}
	if len(expr.Operands) != 2 {
		t.Errorf("operand count = %d, want 2", len(expr.Operands))
	}
}

func TestParseLambda(t *testing.T) {
	expr := mustParseOne(t, "(lambda (x y) (* x y))")
	if expr.Kind != ast.ExprLambda {
		t.Fatalf("kind = %v, want Lambda", expr.Kind)
	}
	if len(expr.Formals) != 2 {
		t.Fatalf("formals = %d, want 2", len(expr.Formals))
	}
	if expr.Formals[0].Name != "x" || expr.Formals[1].Name != "y" {
		t.Errorf("formals = %q %q", expr.Formals[0].Name, expr.Formals[1].Name)
	}
	if len(expr.Body) != 1 || expr.Body[0].Kind != ast.ExprCall {
		t.Errorf("body: %+v", expr.Body)
	}
}

func TestParseLambdaEmptyFormals(t *testing.T) {
	expr := mustParseOne(t, "(lambda () 1)")
	if len(expr.Formals) != 0 {
		t.Fatalf("formals = %d, want 0", len(expr.Formals))
	}
}

func TestParseLambdaBareFormal(t *testing.T) {
	// A single identifier is shorthand for a one-element formals list.
	expr := mustParseOne(t, "(lambda x x)")
	if expr.Kind != ast.ExprLambda {
		t.Fatalf("kind = %v, want Lambda", expr.Kind)
	}
	if len(expr.Formals) != 1 || expr.Formals[0].Name != "x" {
		t.Fatalf("formals: %+v, want single x", expr.Formals)
	}
	if len(expr.Body) != 1 || expr.Body[0].Kind != ast.ExprIdent {
		t.Fatalf("body: %+v", expr.Body)
	}
}

func TestParseConditional(t *testing.T) {
	t.Run("with alternate", func(t *testing.T) {
		expr := mustParseOne(t, "(if #t 1 2)")
		if expr.Kind != ast.ExprIf {
			t.Fatalf("kind = %v, want If", expr.Kind)
		}
		if expr.Alternate == nil {
			t.Errorf("alternate missing")
		}
	})
	t.Run("without alternate", func(t *testing.T) {
		expr := mustParseOne(t, "(if #t 1)")
		if expr.Alternate != nil {
			t.Errorf("alternate = %+v, want nil", expr.Alternate)
		}
	})
}

func TestParseSequence(t *testing.T) {
	expr := mustParseOne(t, "(seq 1 2 3)")
	if expr.Kind != ast.ExprSequence {
		t.Fatalf("kind = %v, want Sequence", expr.Kind)
	}
	if len(expr.Body) != 3 {
		t.Errorf("body = %d, want 3", len(expr.Body))
	}

	begin := mustParseOne(t, "(begin 1)")
	if begin.Kind != ast.ExprSequence {
		t.Errorf("begin kind = %v, want Sequence", begin.Kind)
	}
}

func TestParseInclusion(t *testing.T) {
	expr := mustParseOne(t, `(include "lib.ream" "util.ream")`)
	if expr.Kind != ast.ExprInclude {
		t.Fatalf("kind = %v, want Include", expr.Kind)
	}
	if len(expr.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(expr.Files))
	}
	if expr.Files[0].Str != "lib.ream" {
		t.Errorf("file 0 = %q", expr.Files[0].Str)
	}
}

func TestParseQuotation(t *testing.T) {
	t.Run("quote form", func(t *testing.T) {
		expr := mustParseOne(t, "(quote (a 1 :b))")
		if expr.Kind != ast.ExprLiteral || expr.Lit.Kind != ast.LitQuotation {
			t.Fatalf("not a quotation: %+v", expr)
		}
		d := expr.Lit.Datum
		if d.Kind != ast.DatumList || len(d.Elems) != 3 {
			t.Fatalf("datum: %+v", d)
		}
		if d.Elems[0].Kind != ast.DatumIdent || d.Elems[0].Str != "a" {
			t.Errorf("elem 0: %+v", d.Elems[0])
		}
		if d.Elems[1].Kind != ast.DatumInteger || d.Elems[1].Int != 1 {
			t.Errorf("elem 1: %+v", d.Elems[1])
		}
		if d.Elems[2].Kind != ast.DatumAtom || d.Elems[2].Str != "b" {
			t.Errorf("elem 2: %+v", d.Elems[2])
		}
	})
	t.Run("backtick shorthand", func(t *testing.T) {
		expr := mustParseOne(t, "`x")
		if expr.Kind != ast.ExprLiteral || expr.Lit.Kind != ast.LitQuotation {
			t.Fatalf("not a quotation: %+v", expr)
		}
		if expr.Lit.Datum.Kind != ast.DatumIdent {
			t.Errorf("datum kind = %v, want Identifier", expr.Lit.Datum.Kind)
		}
	})
	t.Run("dotted list nests tail", func(t *testing.T) {
		expr := mustParseOne(t, "(quote (a . (b c)))")
		d := expr.Lit.Datum
		if len(d.Elems) != 2 {
			t.Fatalf("elems = %d, want 2", len(d.Elems))
		}
		tail := d.Elems[1]
		if tail.Kind != ast.DatumList || len(tail.Elems) != 2 {
			t.Errorf("tail: %+v", tail)
		}
	})
	t.Run("empty list", func(t *testing.T) {
		expr := mustParseOne(t, "(quote ())")
		if expr.Lit.Datum.Kind != ast.DatumList || len(expr.Lit.Datum.Elems) != 0 {
			t.Errorf("datum: %+v", expr.Lit.Datum)
		}
	})
}

func TestParseDocAnnotation(t *testing.T) {
	expr := mustParseOne(t, `(:doc square "Multiplies a number by itself.")`)
	if expr.Kind != ast.ExprAnnotation {
		t.Fatalf("kind = %v, want Annotation", expr.Kind)
	}
	if expr.AnnKind != ast.AnnotationDoc {
		t.Fatalf("annotation kind = %v, want Doc", expr.AnnKind)
	}
	if expr.Target.Name != "square" {
		t.Errorf("target = %q", expr.Target.Name)
	}
	if expr.AnnDoc != "Multiplies a number by itself." {
		t.Errorf("doc = %q", expr.AnnDoc)
	}
}

func TestParseTypeAnnotation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ast.TypeSpecKind
	}{
		{"named", "(:type x Int)", ast.TypeSpecIdent},
		{"bottom", "(:type x Bottom)", ast.TypeSpecBottom},
		{"tuple", "(:type x (Tuple Int Str))", ast.TypeSpecTuple},
		{"list", "(:type x (List Int))", ast.TypeSpecList},
		{"vector", "(:type x (Vector Int))", ast.TypeSpecVector},
		{"function", "(:type f (Function (Int Int) (Int)))", ast.TypeSpecFunction},
		{"sum", "(:type x (Sum (:ok Int) (:err)))", ast.TypeSpecSum},
		{"product", "(:type x (Product (:name Str) (:age Int)))", ast.TypeSpecProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := mustParseOne(t, tt.src)
			if expr.Kind != ast.ExprAnnotation || expr.AnnKind != ast.AnnotationType {
				t.Fatalf("not a type annotation: %+v", expr)
			}
			if expr.AnnType.Kind != tt.kind {
				t.Errorf("spec kind = %v, want %v", expr.AnnType.Kind, tt.kind)
			}
		})
	}
}

func TestParseFunctionTypeSpecShape(t *testing.T) {
	expr := mustParseOne(t, "(:type f (Function (Int Str) (Bool)))")
	spec := expr.AnnType
	if len(spec.Arguments) != 2 || len(spec.Results) != 1 {
		t.Fatalf("arguments = %d, results = %d", len(spec.Arguments), len(spec.Results))
	}
}

func TestParseSumFieldSpecs(t *testing.T) {
	expr := mustParseOne(t, "(:type x (Sum (:ok Int) (:err)))")
	fields := expr.AnnType.Fields
	if len(fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(fields))
	}
	if fields[0].Name != "ok" || fields[0].Spec == nil {
		t.Errorf("field 0: %+v", fields[0])
	}
	if fields[1].Name != "err" || fields[1].Spec != nil {
		t.Errorf("field 1: %+v", fields[1])
	}
}

func TestParseSpansCoverTokens(t *testing.T) {
	src := "  (let x 42)  "
	expr := mustParseOne(t, src)
	if expr.Span.Start != 2 || expr.Span.End != 12 {
		t.Errorf("span = %d-%d, want 2-12", expr.Span.Start, expr.Span.End)
	}
}

func TestParseNestedSpans(t *testing.T) {
	expr := mustParseOne(t, "(if (== x 1) (+ x 2) 3)")
	if expr.Test.Span.Start != 4 || expr.Test.Span.End != 12 {
		t.Errorf("test span = %d-%d, want 4-12", expr.Test.Span.Start, expr.Test.Span.End)
	}
	if expr.Consequent.Span.Start != 13 || expr.Consequent.Span.End != 20 {
		t.Errorf("consequent span = %d-%d, want 13-20",
			expr.Consequent.Span.Start, expr.Consequent.Span.End)
	}
}

func TestParseMultipleTopLevel(t *testing.T) {
	prog := mustParse(t, "(let x 1)\n(let y 2)\n(+ x y)\n")
	if len(prog.Exprs) != 3 {
		t.Fatalf("got %d expressions, want 3", len(prog.Exprs))
	}
}

func TestParseEmptyProgram(t *testing.T) {
	prog := mustParse(t, "; just a comment\n")
	if len(prog.Exprs) != 0 {
		t.Fatalf("got %d expressions, want 0", len(prog.Exprs))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"stray rparen", ")", diag.SynUnexpectedToken},
		{"stray dot", ".", diag.SynUnexpectedToken},
		{"unclosed call", "(f 1", diag.SynUnexpectedEof},
		{"eof input mid-let", "(let x", diag.SynUnexpectedEof},
		{"let target not ident", "(let 1 2)", diag.SynUnexpectedToken},
		{"let keyword target", "(let if 2)", diag.SynUnexpectedToken},
		{"invalid head", "(1 2)", diag.SynInvalidExpression},
		{"nested operator", "((lambda (x) x) 1)", diag.SynInvalidExpression},
		{"invalid annotation", "(:frobnicate x 1)", diag.SynInvalidAnnotation},
		{"invalid datum", "(quote .)", diag.SynInvalidDatum},
		{"lambda formals not list or ident", "(lambda 1 x)", diag.SynInvalidLambdaFormals},
		{"lambda formal not ident", "(lambda (1) x)", diag.SynInvalidLambdaFormals},
		{"include without files", "(include)", diag.SynUnexpectedToken},
		{"include non-string", "(include foo)", diag.SynUnexpectedToken},
		{"if missing test", "(if)", diag.SynUnexpectedToken},
		{"bad typespec", "(:type x 42)", diag.SynInvalidTypeSpec},
		{"bad type constructor", "(:type x (Nope Int))", diag.SynInvalidTypeSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantParseError(t, tt.src, tt.code)
		})
	}
}

func TestParseFailFast(t *testing.T) {
	// Both expressions are bad; only the first may be reported.
	_, ok, bag := parseSource(t, ") )")
	if ok {
		t.Fatalf("parse succeeded")
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1 (fail fast)", bag.Len())
	}
}

func TestParseStopsAfterLexError(t *testing.T) {
	_, ok, bag := parseSource(t, "(f 0x1.5)")
	if ok {
		t.Fatalf("parse succeeded")
	}
	// Exactly the lexer diagnostic; the parser must not pile on.
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Code != diag.LexInvalidNumber {
		t.Errorf("code = %v, want LexInvalidNumber", bag.Items()[0].Code)
	}
}

func TestParseEofDiagnosticUsesZeroWidthSpan(t *testing.T) {
	_, _, bag := parseSource(t, "(let x")
	if bag.Len() == 0 {
		t.Fatalf("no diagnostics")
	}
	d := bag.Items()[0]
	if !d.Primary.Empty() {
		t.Errorf("EOF diagnostic span = %v, want zero-width", d.Primary)
	}
	if d.Primary.Start != 6 {
		t.Errorf("EOF diagnostic at %d, want 6 (after last token)", d.Primary.Start)
	}
}

func TestParseIfStatementSpan(t *testing.T) {
	expr := mustParseOne(t, "(if #t 1 2)")
	if expr.Span.Start != 0 || expr.Span.End != 11 {
		t.Errorf("span = %d-%d, want 0-11", expr.Span.Start, expr.Span.End)
	}
}
