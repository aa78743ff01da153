package driver

import (
	"errors"
	"io"

	"ream/internal/diag"
	"ream/internal/eval"
	"ream/internal/source"
)

// RunResult carries the outcome of evaluating one file. Value is only
// meaningful when the bag has no errors.
type RunResult struct {
	FileSet *source.FileSet
	File    *source.File
	Value   eval.Value
	Bag     *diag.Bag
}

// Run loads, parses, and evaluates one file against a fresh global
// scope. Parse and runtime errors both land in the bag; the returned
// error is reserved for I/O failures.
func Run(path string, out io.Writer, maxDiagnostics int) (*RunResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return runFile(fs, fileID, out, maxDiagnostics), nil
}

// RunVirtual evaluates in-memory source under the given name.
func RunVirtual(name string, content []byte, out io.Writer, maxDiagnostics int) *RunResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return runFile(fs, fileID, out, maxDiagnostics)
}

func runFile(fs *source.FileSet, fileID source.FileID, out io.Writer, maxDiagnostics int) *RunResult {
	file := fs.Get(fileID)
	result := &RunResult{FileSet: fs, File: file}

	prog, bag := parseVirtual(fs, fileID, maxDiagnostics)
	result.Bag = bag
	if prog == nil {
		return result
	}

	ev := eval.New(eval.Options{Out: out})
	value, err := ev.EvalProgram(prog)
	if err != nil {
		var evalErr *eval.Error
		if errors.As(err, &evalErr) {
			bag.Add(evalErr.Diagnostic())
		} else {
			bag.Add(diag.NewError(diag.EvalInfo, source.Span{File: fileID}, err.Error()))
		}
		return result
	}

	result.Value = value
	return result
}
