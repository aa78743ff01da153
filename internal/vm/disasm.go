package vm

import (
	"fmt"
	"strings"

	"ream/internal/source"
)

// Disassemble renders the whole chunk, one instruction per line.
func (c *Chunk) Disassemble() string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", c.Name)
	for i, ins := range c.Instructions {
		b.WriteString(c.DisasmInstruction(i, ins, c.Spans[i]))
		b.WriteByte('\n')
	}
	return b.String()
}

// DisasmInstruction renders one instruction as
//
//	index | mnemonic | [line col] source-text
func (c *Chunk) DisasmInstruction(index int, ins Instruction, sp source.Span) string {
	mnemonic := ins.Op.String()
	if ins.Op.hasOperand() {
		mnemonic = fmt.Sprintf("%s %d", mnemonic, ins.Operand)
		if ins.Op == OpLoadConstant {
			if idx := int(ins.Operand); idx >= 0 && idx < len(c.Constants) {
				mnemonic = fmt.Sprintf("%s (%s)", mnemonic, c.Constants[idx].String())
			}
		}
	}

	if c.File == nil {
		return fmt.Sprintf("%04d | %-32s |", index, mnemonic)
	}
	pos := c.File.Pos(sp.Start)
	return fmt.Sprintf("%04d | %-32s | [%d %d] %s",
		index, mnemonic, pos.Line, pos.Col, c.File.Snippet(sp))
}
