package cpu

import (
	"log"
)

// shiftCount limits a shift to the 0..31 range of 32-bit shift hardware.
func shiftCount(count int32) uint {
	return uint(count) & 0x1f
}

// alu computes a two operand arithmetic or logic result.
func alu(op Op, a, b int32) (value int32, err error) {
	switch op {
	case OP_ADD_REG, OP_ADD_IMM:
		value = a + b
	case OP_SUB_REG, OP_SUB_IMM:
		value = a - b
	case OP_AND_REG, OP_AND_IMM:
		value = a & b
	case OP_OR_REG, OP_OR_IMM:
		value = a | b
	case OP_XOR_REG, OP_XOR_IMM:
		value = a ^ b
	case OP_SHR_REG, OP_SHR_IMM:
		value = a >> shiftCount(b)
	case OP_SHL_REG, OP_SHL_IMM:
		if b < 0 {
			err = ErrShiftNegative
			return
		}
		value = a << shiftCount(b)
	default:
		panic("cpu: not an alu op " + op.String())
	}

	return
}

// branch jumps to label when taken, otherwise steps to the next instruction.
func (cpu *Cpu) branch(label string, taken bool) (err error) {
	if !taken {
		cpu.IncPc()
		return
	}

	address, err := cpu.LabelAddress(label)
	if err != nil {
		return
	}

	cpu.SetPc(address)
	return
}

// Execute performs the instruction against the CPU state.
// On error the state is left as it was before the instruction,
// except for data values already written by a failing allocation.
func (in *Instr) Execute(cpu *Cpu) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: %04d %v", cpu.Pc, in)
	}

	switch in.Op {
	case OP_ADD_REG, OP_SUB_REG, OP_AND_REG, OP_OR_REG, OP_XOR_REG, OP_SHR_REG, OP_SHL_REG:
		var value int32
		value, err = alu(in.Op, cpu.Reg(in.Dest), cpu.Reg(in.Src))
		if err != nil {
			return
		}
		cpu.SetReg(in.Dest, value)
	case OP_ADD_IMM, OP_SUB_IMM, OP_AND_IMM, OP_OR_IMM, OP_XOR_IMM, OP_SHR_IMM, OP_SHL_IMM:
		var value int32
		value, err = alu(in.Op, cpu.Reg(in.Dest), in.Imm)
		if err != nil {
			return
		}
		cpu.SetReg(in.Dest, value)
	case OP_NOT:
		cpu.SetReg(in.Dest, ^cpu.Reg(in.Dest))
	case OP_SET_REG:
		cpu.SetReg(in.Dest, cpu.Reg(in.Src))
	case OP_SET_IMM:
		cpu.SetReg(in.Dest, in.Imm)
	case OP_SET_NAME:
		var value int32
		value, err = cpu.LoadName(in.Name)
		if err != nil {
			return
		}
		cpu.SetReg(in.Dest, value)
	case OP_LD:
		var address int
		address, err = cpu.DataAddress(in.Name)
		if err != nil {
			return
		}
		cpu.SetReg(in.Dest, int32(address))
	case OP_ST:
		err = cpu.StoreName(in.Name, cpu.Reg(in.Src))
		if err != nil {
			return
		}
	case OP_LDI:
		var value int32
		value, err = cpu.Load(int(cpu.Reg(in.Src)))
		if err != nil {
			return
		}
		cpu.SetReg(in.Dest, value)
	case OP_STI:
		err = cpu.Store(int(cpu.Reg(in.Dest)), cpu.Reg(in.Src))
		if err != nil {
			return
		}
	case OP_JMP:
		return cpu.branch(in.Name, true)
	case OP_JEQ:
		return cpu.branch(in.Name, cpu.Reg(in.Dest) == cpu.Reg(in.Src))
	case OP_JGT:
		return cpu.branch(in.Name, cpu.Reg(in.Dest) > cpu.Reg(in.Src))
	case OP_CALL:
		return cpu.Call(in.Name)
	case OP_RET:
		return cpu.Return()
	case OP_DATA:
		err = cpu.Allocate(in.Name, in.Data)
		if err != nil {
			return
		}
	default:
		err = ErrOpcode(in.Op)
		return
	}

	cpu.IncPc()
	return
}
