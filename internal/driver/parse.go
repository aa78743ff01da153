package driver

import (
	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/lexer"
	"ream/internal/parser"
	"ream/internal/source"
)

// ParseResult carries the parsed program, or a nil Program plus the
// diagnostics that stopped the parse.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads one file and parses it to completion or first error.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	p := parser.New(lx, parser.Options{Reporter: reporter})
	prog, _ := p.Parse()

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Bag:     bag,
	}, nil
}

// parseVirtual parses in-memory content under the given name. Used by
// Run for stdin and by tests.
func parseVirtual(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ast.Program, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	prog, _ := parser.New(lx, parser.Options{Reporter: reporter}).Parse()
	return prog, bag
}
