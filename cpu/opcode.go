package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Register identifies one of the general purpose registers.
type Register int

const (
	REG_R0 = Register(0) // r0
	REG_R1 = Register(1) // r1
	REG_R2 = Register(2) // r2
	REG_R3 = Register(3) // r3
	REG_R4 = Register(4) // r4
	REG_R5 = Register(5) // r5
	REG_R6 = Register(6) // r6
	REG_R7 = Register(7) // r7
)

func (r Register) String() string {
	return fmt.Sprintf("r%d", int(r))
}

// Op is the instruction variant tag.
type Op int

const (
	OP_ADD_REG  = Op(0)  // add
	OP_ADD_IMM  = Op(1)  // add
	OP_SUB_REG  = Op(2)  // sub
	OP_SUB_IMM  = Op(3)  // sub
	OP_AND_REG  = Op(4)  // and
	OP_AND_IMM  = Op(5)  // and
	OP_OR_REG   = Op(6)  // or
	OP_OR_IMM   = Op(7)  // or
	OP_XOR_REG  = Op(8)  // xor
	OP_XOR_IMM  = Op(9)  // xor
	OP_NOT      = Op(10) // not
	OP_SHR_REG  = Op(11) // shr
	OP_SHR_IMM  = Op(12) // shr
	OP_SHL_REG  = Op(13) // shl
	OP_SHL_IMM  = Op(14) // shl
	OP_SET_REG  = Op(15) // set
	OP_SET_IMM  = Op(16) // set
	OP_SET_NAME = Op(17) // set
	OP_LD       = Op(18) // ld
	OP_ST       = Op(19) // st
	OP_LDI      = Op(20) // ldi
	OP_STI      = Op(21) // sti
	OP_JMP      = Op(22) // jmp
	OP_JEQ      = Op(23) // jeq
	OP_JGT      = Op(24) // jgt
	OP_CALL     = Op(25) // call
	OP_RET      = Op(26) // ret
	OP_DATA     = Op(27) // data

	opCount = 28
)

var opMnemonic = [opCount]string{
	"add", "add", "sub", "sub", "and", "and", "or", "or", "xor", "xor",
	"not", "shr", "shr", "shl", "shl", "set", "set", "set",
	"ld", "st", "ldi", "sti", "jmp", "jeq", "jgt", "call", "ret", "data",
}

// String returns the mnemonic for the op.
func (op Op) String() string {
	if op < 0 || op >= opCount {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opMnemonic[op]
}

// Instr is a single decoded instruction. Only the fields the variant's
// syntax requires are meaningful:
//
//	reg-form ALU ops, set/ldi/sti   Dest, Src
//	imm-form ALU ops, set           Dest, Imm
//	not                             Dest
//	set by name, ld                 Dest, Name
//	st                              Name, Src
//	jmp, call                       Name
//	jeq, jgt                        Name, Dest, Src
//	data                            Name, Data
type Instr struct {
	Op     Op
	Dest   Register
	Src    Register
	Imm    int32
	Name   string
	Data   []int32
	LineNo int // Source line, for diagnostics only.
}

// Instruction constructors, one per variant.

func AddReg(dest, src Register) Instr { return Instr{Op: OP_ADD_REG, Dest: dest, Src: src} }
func AddImm(dest Register, imm int32) Instr { return Instr{Op: OP_ADD_IMM, Dest: dest, Imm: imm} }
func SubReg(dest, src Register) Instr { return Instr{Op: OP_SUB_REG, Dest: dest, Src: src} }
func SubImm(dest Register, imm int32) Instr { return Instr{Op: OP_SUB_IMM, Dest: dest, Imm: imm} }
func AndReg(dest, src Register) Instr { return Instr{Op: OP_AND_REG, Dest: dest, Src: src} }
func AndImm(dest Register, imm int32) Instr { return Instr{Op: OP_AND_IMM, Dest: dest, Imm: imm} }
func OrReg(dest, src Register) Instr { return Instr{Op: OP_OR_REG, Dest: dest, Src: src} }
func OrImm(dest Register, imm int32) Instr { return Instr{Op: OP_OR_IMM, Dest: dest, Imm: imm} }
func XorReg(dest, src Register) Instr { return Instr{Op: OP_XOR_REG, Dest: dest, Src: src} }
func XorImm(dest Register, imm int32) Instr { return Instr{Op: OP_XOR_IMM, Dest: dest, Imm: imm} }
func Not(reg Register) Instr { return Instr{Op: OP_NOT, Dest: reg} }
func ShrReg(dest, src Register) Instr { return Instr{Op: OP_SHR_REG, Dest: dest, Src: src} }
func ShrImm(dest Register, imm int32) Instr { return Instr{Op: OP_SHR_IMM, Dest: dest, Imm: imm} }
func ShlReg(dest, src Register) Instr { return Instr{Op: OP_SHL_REG, Dest: dest, Src: src} }
func ShlImm(dest Register, imm int32) Instr { return Instr{Op: OP_SHL_IMM, Dest: dest, Imm: imm} }
func SetReg(dest, src Register) Instr { return Instr{Op: OP_SET_REG, Dest: dest, Src: src} }
func SetImm(dest Register, imm int32) Instr { return Instr{Op: OP_SET_IMM, Dest: dest, Imm: imm} }
func SetName(dest Register, name string) Instr {
	return Instr{Op: OP_SET_NAME, Dest: dest, Name: name}
}
func Ld(dest Register, name string) Instr { return Instr{Op: OP_LD, Dest: dest, Name: name} }
func St(name string, src Register) Instr { return Instr{Op: OP_ST, Name: name, Src: src} }
func Ldi(dest, src Register) Instr { return Instr{Op: OP_LDI, Dest: dest, Src: src} }
func Sti(dest, src Register) Instr { return Instr{Op: OP_STI, Dest: dest, Src: src} }
func Jmp(label string) Instr { return Instr{Op: OP_JMP, Name: label} }
func Jeq(label string, a, b Register) Instr {
	return Instr{Op: OP_JEQ, Name: label, Dest: a, Src: b}
}
func Jgt(label string, a, b Register) Instr {
	return Instr{Op: OP_JGT, Name: label, Dest: a, Src: b}
}
func Call(name string) Instr { return Instr{Op: OP_CALL, Name: name} }
func Ret() Instr { return Instr{Op: OP_RET} }
func Data(name string, values ...int32) Instr {
	return Instr{Op: OP_DATA, Name: name, Data: values}
}

// String renders the instruction in canonical source form.
func (in Instr) String() string {
	op := in.Op.String()

	switch in.Op {
	case OP_ADD_REG, OP_SUB_REG, OP_AND_REG, OP_OR_REG, OP_XOR_REG,
		OP_SHR_REG, OP_SHL_REG, OP_SET_REG, OP_LDI, OP_STI:
		return fmt.Sprintf("%v %v, %v", op, in.Dest, in.Src)
	case OP_ADD_IMM, OP_SUB_IMM, OP_AND_IMM, OP_OR_IMM, OP_XOR_IMM,
		OP_SHR_IMM, OP_SHL_IMM, OP_SET_IMM:
		return fmt.Sprintf("%v %v, %d", op, in.Dest, in.Imm)
	case OP_NOT:
		return fmt.Sprintf("%v %v", op, in.Dest)
	case OP_SET_NAME, OP_LD:
		return fmt.Sprintf("%v %v, %v", op, in.Dest, in.Name)
	case OP_ST:
		return fmt.Sprintf("%v %v, %v", op, in.Name, in.Src)
	case OP_JMP, OP_CALL:
		return fmt.Sprintf("%v %v", op, in.Name)
	case OP_JEQ, OP_JGT:
		return fmt.Sprintf("%v %v, %v, %v", op, in.Name, in.Dest, in.Src)
	case OP_RET:
		return op
	case OP_DATA:
		values := make([]string, len(in.Data))
		for n, value := range in.Data {
			values[n] = strconv.Itoa(int(value))
		}
		return fmt.Sprintf("%v %v %v", op, in.Name, strings.Join(values, ", "))
	}

	return op
}
