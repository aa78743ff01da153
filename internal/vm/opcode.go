package vm

// OpCode is one VM instruction. LoadImmediate and LoadConstant carry an
// operand in the Instruction; the rest work on the stack alone.
type OpCode uint8

const (
	// OpReturn pops the top of the stack, records it as the chunk result
	// and halts.
	OpReturn OpCode = iota
	// OpLoadImmediate pushes its integer operand.
	OpLoadImmediate
	// OpLoadConstant pushes a copy of the constant at its operand index.
	OpLoadConstant
	// OpNegate pops a number and pushes its negation.
	OpNegate
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var opcodeNames = [...]string{
	OpReturn:        "Return",
	OpLoadImmediate: "LoadImmediate",
	OpLoadConstant:  "LoadConstant",
	OpNegate:        "Negate",
	OpAdd:           "Add",
	OpSub:           "Sub",
	OpMul:           "Mul",
	OpDiv:           "Div",
}

func (op OpCode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "Unknown"
}

// hasOperand reports whether the instruction's Operand field is used.
func (op OpCode) hasOperand() bool {
	return op == OpLoadImmediate || op == OpLoadConstant
}

// Instruction is one decoded instruction.
type Instruction struct {
	Op      OpCode
	Operand int64
}
