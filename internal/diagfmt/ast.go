package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ream/internal/ast"
	"ream/internal/source"
)

// treeNode is the shared shape behind the pretty and JSON program
// renderers: a node kind, an optional rendered value, an optional span.
type treeNode struct {
	kind     string
	value    string
	span     string
	children []*treeNode
}

func (n *treeNode) add(child *treeNode) {
	n.children = append(n.children, child)
}

func (n *treeNode) label() string {
	var b strings.Builder
	b.WriteString(n.kind)
	if n.value != "" {
		b.WriteByte(' ')
		b.WriteString(n.value)
	}
	if n.span != "" {
		fmt.Fprintf(&b, " (%s)", n.span)
	}
	return b.String()
}

func node(kind, value, span string) *treeNode {
	return &treeNode{kind: kind, value: value, span: span}
}

func group(kind string) *treeNode {
	return &treeNode{kind: kind}
}

// FormatProgramPretty writes the program as an indented tree, one node
// per line with its span.
func FormatProgramPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	renderTree(w, buildProgramNode(prog, fs), "", true, true)
	return nil
}

// ASTNodeOutput is the JSON shape of a single tree node.
type ASTNodeOutput struct {
	Node     string          `json:"node"`
	Value    string          `json:"value,omitempty"`
	Span     string          `json:"span,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatProgramJSON writes the program tree as indented JSON.
func FormatProgramJSON(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toASTOutput(buildProgramNode(prog, fs)))
}

func toASTOutput(n *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Node: n.kind, Value: n.value, Span: n.span}
	for _, child := range n.children {
		out.Children = append(out.Children, toASTOutput(child))
	}
	return out
}

func buildProgramNode(prog *ast.Program, fs *source.FileSet) *treeNode {
	root := node("Program", "", formatSpan(prog.Span, fs))
	for _, expr := range prog.Exprs {
		root.add(buildExprNode(expr, fs))
	}
	return root
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil || int(sp.File) >= fs.Len() {
		return fmt.Sprintf("%d-%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func buildExprNode(expr *ast.Expr, fs *source.FileSet) *treeNode {
	if expr == nil {
		return group("<nil>")
	}
	span := formatSpan(expr.Span, fs)

	switch expr.Kind {
	case ast.ExprIdent:
		return node("Identifier", strconv.Quote(expr.Name), span)

	case ast.ExprLiteral:
		return buildLiteralNode(expr.Lit, fs)

	case ast.ExprDefinition:
		n := node("Definition", "", span)
		n.add(buildExprNode(expr.Target, fs))
		n.add(buildExprNode(expr.Value, fs))
		return n

	case ast.ExprAnnotation:
		kind := "Annotation[Type]"
		if expr.AnnKind == ast.AnnotationDoc {
			kind = "Annotation[Doc]"
		}
		n := node(kind, "", span)
		n.add(buildExprNode(expr.Target, fs))
		if expr.AnnKind == ast.AnnotationDoc {
			n.add(node("Docstring", strconv.Quote(expr.AnnDoc), formatSpan(expr.AnnDocSp, fs)))
		} else {
			n.add(buildTypeSpecNode(expr.AnnType, fs))
		}
		return n

	case ast.ExprSequence:
		n := node("Sequence", "", span)
		for _, e := range expr.Body {
			n.add(buildExprNode(e, fs))
		}
		return n

	case ast.ExprCall:
		n := node("Call", "", span)
		n.add(buildExprNode(expr.Operator, fs))
		for _, e := range expr.Operands {
			n.add(buildExprNode(e, fs))
		}
		return n

	case ast.ExprLambda:
		n := node("Lambda", "", span)
		formals := group("Formals")
		for _, f := range expr.Formals {
			formals.add(buildExprNode(f, fs))
		}
		n.add(formals)
		body := group("Body")
		for _, e := range expr.Body {
			body.add(buildExprNode(e, fs))
		}
		n.add(body)
		return n

	case ast.ExprIf:
		n := node("Conditional", "", span)
		n.add(buildExprNode(expr.Test, fs))
		n.add(buildExprNode(expr.Consequent, fs))
		if expr.Alternate != nil {
			n.add(buildExprNode(expr.Alternate, fs))
		}
		return n

	case ast.ExprInclude:
		n := node("Inclusion", "", span)
		for _, f := range expr.Files {
			n.add(buildLiteralNode(f, fs))
		}
		return n

	default:
		return node(expr.Kind.String(), "", span)
	}
}

func buildLiteralNode(lit *ast.Literal, fs *source.FileSet) *treeNode {
	if lit == nil {
		return group("<nil>")
	}
	span := formatSpan(lit.Span, fs)

	switch lit.Kind {
	case ast.LitBoolean:
		return node("Boolean", strconv.FormatBool(lit.Bool), span)
	case ast.LitInteger:
		return node("Integer", strconv.FormatUint(lit.Int, 10), span)
	case ast.LitFloat:
		return node("Float", strconv.FormatFloat(lit.Float, 'g', -1, 64), span)
	case ast.LitCharacter:
		return node("Character", strconv.QuoteRune(lit.Rune), span)
	case ast.LitString:
		return node("String", strconv.Quote(lit.Str), span)
	case ast.LitAtom:
		return node("Atom", ":"+lit.Str, span)
	case ast.LitQuotation:
		n := node("Quotation", "", span)
		n.add(buildDatumNode(lit.Datum, fs))
		return n
	default:
		return node(lit.Kind.String(), "", span)
	}
}

func buildDatumNode(d *ast.Datum, fs *source.FileSet) *treeNode {
	if d == nil {
		return group("<nil>")
	}
	span := formatSpan(d.Span, fs)

	switch d.Kind {
	case ast.DatumBoolean:
		return node("Boolean", strconv.FormatBool(d.Bool), span)
	case ast.DatumInteger:
		return node("Integer", strconv.FormatUint(d.Int, 10), span)
	case ast.DatumFloat:
		return node("Float", strconv.FormatFloat(d.Float, 'g', -1, 64), span)
	case ast.DatumCharacter:
		return node("Character", strconv.QuoteRune(d.Rune), span)
	case ast.DatumString:
		return node("String", strconv.Quote(d.Str), span)
	case ast.DatumAtom:
		return node("Atom", ":"+d.Str, span)
	case ast.DatumIdent:
		return node("Identifier", strconv.Quote(d.Str), span)
	case ast.DatumList:
		n := node("List", "", span)
		for _, e := range d.Elems {
			n.add(buildDatumNode(e, fs))
		}
		return n
	default:
		return node(d.Kind.String(), "", span)
	}
}

func buildTypeSpecNode(spec *ast.TypeSpec, fs *source.FileSet) *treeNode {
	if spec == nil {
		return group("<nil>")
	}
	span := formatSpan(spec.Span, fs)

	switch spec.Kind {
	case ast.TypeSpecIdent:
		return node("TypeName", strconv.Quote(spec.Name), span)
	case ast.TypeSpecBottom:
		return node("Bottom", "", span)
	case ast.TypeSpecTuple, ast.TypeSpecList, ast.TypeSpecVector:
		n := node(spec.Kind.String(), "", span)
		for _, e := range spec.Elems {
			n.add(buildTypeSpecNode(e, fs))
		}
		return n
	case ast.TypeSpecFunction:
		n := node("Function", "", span)
		args := group("Arguments")
		for _, e := range spec.Arguments {
			args.add(buildTypeSpecNode(e, fs))
		}
		n.add(args)
		results := group("Results")
		for _, e := range spec.Results {
			results.add(buildTypeSpecNode(e, fs))
		}
		n.add(results)
		return n
	case ast.TypeSpecSum, ast.TypeSpecProduct:
		n := node(spec.Kind.String(), "", span)
		for _, f := range spec.Fields {
			field := node("Field", ":"+f.Name, formatSpan(f.Span, fs))
			if f.Spec != nil {
				field.add(buildTypeSpecNode(f.Spec, fs))
			}
			n.add(field)
		}
		return n
	default:
		return node(spec.Kind.String(), "", span)
	}
}

// renderTree prints the node and its descendants with box-drawing
// connectors.
func renderTree(w io.Writer, node *treeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		fmt.Fprintln(w, node.label())
	} else {
		connector := "├─ "
		if isLast {
			connector = "└─ "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, node.label())
		if isLast {
			prefix += "   "
		} else {
			prefix += "│  "
		}
	}
	for i, child := range node.children {
		renderTree(w, child, prefix, false, i == len(node.children)-1)
	}
}
