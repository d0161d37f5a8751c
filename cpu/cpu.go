// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/pasm/internal"
	"github.com/ezrec/pasm/io"
)

// Builtin subroutines, intercepted before label lookup.
const (
	CALL_PUTC = "putc" // Write the low byte of r0.
	CALL_PUTS = "puts" // Write the zero terminated string at address r0.
	CALL_GETC = "getc" // Read one character into r0, -1 at end of input.
)

// Cpu is the program state of the pseudo-assembly machine.
type Cpu struct {
	Verbose bool       // Set to enable verbose logging.
	Console io.Console // Console for the builtin subroutines.

	Pc       int                   // Index of the next instruction.
	Register [REGISTER_COUNT]int32 // Register bank.
	Memory   [MEMORY_SIZE]int32    // Flat data memory.
	Stack    Stack                 // Return addresses.
	Arena    Arena                 // Data label allocations.

	label      map[string]int // Map of jump labels to instruction indexes.
	instrCount int            // Number of instructions in the program.
}

// NewCpu creates the state for a program of instrCount instructions.
func NewCpu(instrCount int) (cpu *Cpu) {
	cpu = &Cpu{
		label:      make(map[string]int),
		instrCount: instrCount,
	}

	return
}

// Running returns true while the program counter addresses an instruction.
func (cpu *Cpu) Running() bool {
	return cpu.Pc < cpu.instrCount
}

// InstrCount returns the number of instructions the state was built for.
func (cpu *Cpu) InstrCount() int {
	return cpu.instrCount
}

// CheckPc verifies the program counter addresses an instruction.
func (cpu *Cpu) CheckPc() (err error) {
	if cpu.Pc < 0 || cpu.Pc >= cpu.instrCount {
		err = ErrInstrAddress(cpu.Pc)
	}
	return
}

// Reg returns the value of a register.
func (cpu *Cpu) Reg(r Register) int32 {
	return cpu.Register[r]
}

// SetReg sets the value of a register.
func (cpu *Cpu) SetReg(r Register, value int32) {
	cpu.Register[r] = value
}

// Load reads a memory cell.
func (cpu *Cpu) Load(address int) (value int32, err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrMemoryAddress(address)
		return
	}

	value = cpu.Memory[address]
	return
}

// Store writes a memory cell.
func (cpu *Cpu) Store(address int, value int32) (err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrMemoryAddress(address)
		return
	}

	cpu.Memory[address] = value
	return
}

// DataAddress returns the base address of a data label.
func (cpu *Cpu) DataAddress(name string) (address int, err error) {
	return cpu.Arena.Lookup(name)
}

// LoadName reads the first cell of a data label.
func (cpu *Cpu) LoadName(name string) (value int32, err error) {
	address, err := cpu.Arena.Lookup(name)
	if err != nil {
		return
	}

	return cpu.Load(address)
}

// StoreName writes the first cell of a data label.
func (cpu *Cpu) StoreName(name string, value int32) (err error) {
	address, err := cpu.Arena.Lookup(name)
	if err != nil {
		return
	}

	return cpu.Store(address, value)
}

// LoadString reads a zero terminated string starting at address.
func (cpu *Cpu) LoadString(address int) (text string, err error) {
	c, err := cpu.Load(address)
	if err != nil {
		return
	}

	var sb strings.Builder
	for c != 0 {
		sb.WriteByte(byte(c))
		address++
		if address >= MEMORY_SIZE {
			err = ErrStringUnterminated
			return
		}
		c = cpu.Memory[address]
	}

	text = sb.String()
	return
}

// Allocate writes values to a new data region named name.
func (cpu *Cpu) Allocate(name string, values []int32) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: data %v[%d] at %d", name, len(values), cpu.Arena.Next)
	}

	return cpu.Arena.Allocate(name, values, cpu.Store)
}

// LabelAddress returns the instruction index of a label.
func (cpu *Cpu) LabelAddress(name string) (address int, err error) {
	address, ok := cpu.label[name]
	if !ok {
		err = ErrLabelMissing(name)
		return
	}

	return
}

// AddLabel binds a label to an instruction index, replacing any binding.
func (cpu *Cpu) AddLabel(name string, address int) {
	cpu.label[name] = address
}

// SetPc sets the index of the next instruction.
func (cpu *Cpu) SetPc(address int) {
	cpu.Pc = address
}

// IncPc advances to the following instruction.
func (cpu *Cpu) IncPc() {
	cpu.Pc++
}

// Call enters a builtin or user subroutine.
func (cpu *Cpu) Call(name string) (err error) {
	if cpu.Stack.Full() {
		err = ErrStackFull
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: call %v from %d", name, cpu.Pc)
	}

	switch name {
	case CALL_PUTC, CALL_PUTS, CALL_GETC:
		if cpu.Console == nil {
			err = ErrConsoleMissing
			return
		}
	}

	switch name {
	case CALL_PUTC:
		err = cpu.Console.PutChar(byte(cpu.Register[REG_R0]))
	case CALL_PUTS:
		var text string
		text, err = cpu.LoadString(int(cpu.Register[REG_R0]))
		if err != nil {
			return
		}
		err = cpu.Console.PutString(text)
	case CALL_GETC:
		var c byte
		var ok bool
		c, ok, err = cpu.Console.GetChar()
		if err != nil {
			return
		}
		if ok {
			cpu.Register[REG_R0] = int32(c)
		} else {
			cpu.Register[REG_R0] = -1
		}
	default:
		var address int
		address, err = cpu.LabelAddress(name)
		if err != nil {
			return
		}
		cpu.Stack.Push(cpu.Pc + 1)
		cpu.SetPc(address)
		return
	}

	if err != nil {
		return
	}

	cpu.IncPc()
	return
}

// Return resumes after the most recent call.
func (cpu *Cpu) Return() (err error) {
	address, ok := cpu.Stack.Pop()
	if !ok {
		err = ErrStackEmpty
		return
	}

	cpu.SetPc(address)
	return
}

// Symbols iterates over the jump labels followed by the data labels.
func (cpu *Cpu) Symbols() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(cpu.label), maps.All(cpu.Arena.Label))
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %d\n", "pc", cpu.Pc)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %04X_%04X (%d)\n", Register(n), uint32(val)>>16, uint32(val)&0xffff, val)
	}

	strval := "----_----"
	if val, ok := cpu.Stack.Peek(); ok {
		strval = fmt.Sprintf("%d", val)
	}
	text += fmt.Sprintf("% 5s: %v (depth %d)\n", "stack", strval, cpu.Stack.Depth())
	text += fmt.Sprintf("% 5s: %d\n", "heap", cpu.Arena.Next)

	return
}
