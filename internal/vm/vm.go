package vm

import (
	"fmt"
	"io"
	"os"

	"ream/internal/diag"
	"ream/internal/source"
)

// StackCap is the fixed capacity of the value stack.
const StackCap = 1024

// Options configures a VM.
type Options struct {
	Out   io.Writer // destination for Return reporting; defaults to os.Stdout
	Trace bool      // emit a disassembly line and the live stack per step
}

// VM executes one chunk over a fixed-capacity value stack. The machine
// runs until Return executes, the instruction stream ends, or the first
// runtime error.
type VM struct {
	chunk *Chunk
	opts  Options
	out   io.Writer

	stack [StackCap]Value
	sp    int
	ip    int

	// Result is the value popped by the last Return, valid after a
	// successful Run.
	Result Value
}

// New creates a VM for the given chunk.
func New(chunk *Chunk, opts Options) *VM {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &VM{chunk: chunk, opts: opts, out: out}
}

// Run executes the chunk from the first instruction.
func (vm *VM) Run() error {
	for vm.ip < len(vm.chunk.Instructions) {
		ins := vm.chunk.Instructions[vm.ip]
		sp := vm.chunk.Spans[vm.ip]

		if vm.opts.Trace {
			vm.traceStep(ins, sp)
		}
		vm.ip++

		switch ins.Op {
		case OpReturn:
			v, err := vm.pop(sp)
			if err != nil {
				return err
			}
			vm.Result = v
			fmt.Fprintln(vm.out, v.String())
			return nil

		case OpLoadImmediate:
			if err := vm.push(Integer(ins.Operand), sp); err != nil {
				return err
			}

		case OpLoadConstant:
			idx := int(ins.Operand)
			if idx < 0 || idx >= len(vm.chunk.Constants) {
				return errRun(diag.RunBadConstant, sp,
					"constant index %d out of range (pool has %d)", idx, len(vm.chunk.Constants))
			}
			if err := vm.push(vm.chunk.Constants[idx], sp); err != nil {
				return err
			}

		case OpNegate:
			v, err := vm.pop(sp)
			if err != nil {
				return err
			}
			switch v.Kind {
			case ValInteger:
				v.Int = -v.Int
			case ValFloat:
				v.Float = -v.Float
			default:
				return errRun(diag.RunWrongType, sp,
					"wrong operand type for Negate: expected Integer or Float, found %s", v.Kind)
			}
			if err := vm.push(v, sp); err != nil {
				return err
			}

		case OpAdd, OpSub, OpMul, OpDiv:
			if err := vm.binary(ins.Op, sp); err != nil {
				return err
			}

		default:
			return errRun(diag.RunBadOpcode, sp, "bad opcode %d", uint8(ins.Op))
		}
	}
	return nil
}

// binary pops the right operand, then the left, and pushes left∘right.
func (vm *VM) binary(op OpCode, sp source.Span) error {
	right, err := vm.pop(sp)
	if err != nil {
		return err
	}
	left, err := vm.pop(sp)
	if err != nil {
		return err
	}

	if left.Kind != ValInteger && left.Kind != ValFloat {
		return errRun(diag.RunWrongType, sp,
			"wrong operand type for %s: expected Integer or Float, found %s", op, left.Kind)
	}
	if right.Kind != left.Kind {
		return errRun(diag.RunWrongType, sp,
			"wrong operand type for %s: expected %s, found %s", op, left.Kind, right.Kind)
	}

	if left.Kind == ValInteger {
		var n int64
		switch op {
		case OpAdd:
			n = left.Int + right.Int
		case OpSub:
			n = left.Int - right.Int
		case OpMul:
			n = left.Int * right.Int
		case OpDiv:
			if right.Int == 0 {
				return errRun(diag.RunDivideByZero, sp, "division by zero")
			}
			n = left.Int / right.Int
		}
		return vm.push(Integer(n), sp)
	}

	var f float64
	switch op {
	case OpAdd:
		f = left.Float + right.Float
	case OpSub:
		f = left.Float - right.Float
	case OpMul:
		f = left.Float * right.Float
	case OpDiv:
		if right.Float == 0 {
			return errRun(diag.RunDivideByZero, sp, "division by zero")
		}
		f = left.Float / right.Float
	}
	return vm.push(Float64(f), sp)
}

func (vm *VM) push(v Value, sp source.Span) error {
	if vm.sp >= StackCap {
		return errRun(diag.RunStackOverflow, sp, "value stack overflow (capacity %d)", StackCap)
	}
	vm.stack[vm.sp] = v
	vm.sp++
	return nil
}

func (vm *VM) pop(sp source.Span) (Value, error) {
	if vm.sp == 0 {
		return Value{}, errRun(diag.RunStackUnderflow, sp, "value stack underflow")
	}
	vm.sp--
	return vm.stack[vm.sp], nil
}

func (vm *VM) traceStep(ins Instruction, sp source.Span) {
	fmt.Fprintf(vm.out, "          ")
	for i := 0; i < vm.sp; i++ {
		fmt.Fprintf(vm.out, "[ %s ]", vm.stack[i].String())
	}
	fmt.Fprintln(vm.out)
	fmt.Fprintln(vm.out, vm.chunk.DisasmInstruction(vm.ip, ins, sp))
}
