package vm

import (
	"ream/internal/source"
)

// Chunk is an append-only unit of bytecode: instructions plus a
// parallel span table pointing back into the source, and a constant
// pool. Constants are never deduplicated.
type Chunk struct {
	Name         string
	File         *source.File // may be nil for synthetic chunks
	Instructions []Instruction
	Spans        []source.Span
	Constants    []Value
}

// NewChunk creates an empty chunk over the given source file.
func NewChunk(name string, file *source.File) *Chunk {
	return &Chunk{Name: name, File: file}
}

// PushInstruction appends an instruction with the span of the source
// it was compiled from.
func (c *Chunk) PushInstruction(ins Instruction, sp source.Span) {
	c.Instructions = append(c.Instructions, ins)
	c.Spans = append(c.Spans, sp)
}

// PushConstant appends a constant and returns its pool index.
func (c *Chunk) PushConstant(v Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}
