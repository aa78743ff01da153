package vm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"ream/internal/source"
)

// Current schema version - increment when chunkPayload format changes
const chunkSchemaVersion uint16 = 1

type chunkPayload struct {
	Schema       uint16     `msgpack:"schema"`
	Name         string     `msgpack:"name"`
	Instructions []wireIns  `msgpack:"ins"`
	Spans        []wireSpan `msgpack:"spans"`
	Constants    []Value    `msgpack:"consts"`
}

type wireIns struct {
	Op      uint8 `msgpack:"o"`
	Operand int64 `msgpack:"a,omitempty"`
}

type wireSpan struct {
	File  uint32 `msgpack:"f,omitempty"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

// SaveChunk writes the chunk to path in msgpack form. The source file
// reference does not survive serialization; a loaded chunk disassembles
// without positions.
func SaveChunk(path string, c *Chunk) error {
	payload := chunkPayload{
		Schema:       chunkSchemaVersion,
		Name:         c.Name,
		Instructions: make([]wireIns, len(c.Instructions)),
		Spans:        make([]wireSpan, len(c.Spans)),
		Constants:    c.Constants,
	}
	for i, ins := range c.Instructions {
		payload.Instructions[i] = wireIns{Op: uint8(ins.Op), Operand: ins.Operand}
	}
	for i, sp := range c.Spans {
		payload.Spans[i] = wireSpan{File: uint32(sp.File), Start: sp.Start, End: sp.End}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create chunk file: %w", err)
	}

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode chunk: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close chunk file: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadChunk reads a chunk previously written by SaveChunk.
func LoadChunk(path string) (*Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chunk file: %w", err)
	}
	defer f.Close()

	var payload chunkPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode chunk %s: %w", filepath.Base(path), err)
	}
	if payload.Schema != chunkSchemaVersion {
		return nil, fmt.Errorf("chunk %s has schema %d, want %d",
			filepath.Base(path), payload.Schema, chunkSchemaVersion)
	}
	if len(payload.Instructions) != len(payload.Spans) {
		return nil, fmt.Errorf("chunk %s is corrupt: %d instructions but %d spans",
			filepath.Base(path), len(payload.Instructions), len(payload.Spans))
	}

	c := &Chunk{
		Name:         payload.Name,
		Instructions: make([]Instruction, len(payload.Instructions)),
		Spans:        make([]source.Span, len(payload.Spans)),
		Constants:    payload.Constants,
	}
	for i, ins := range payload.Instructions {
		c.Instructions[i] = Instruction{Op: OpCode(ins.Op), Operand: ins.Operand}
	}
	for i, sp := range payload.Spans {
		c.Spans[i] = source.Span{File: source.FileID(sp.File), Start: sp.Start, End: sp.End}
	}
	return c, nil
}
