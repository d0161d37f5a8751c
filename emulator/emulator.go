// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/pasm/cpu"
	"github.com/ezrec/pasm/io"
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU state.
	Program   *cpu.Program // Reference to the currently running program.
	Tape      io.Tape      // Console for putc, puts and getc.
	TickLimit int          // If non-zero, the most instructions Run may execute.

	ticks int
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Reset()

	return
}

// Reset prepares a fresh CPU state for the current program.
func (emu *Emulator) Reset() {
	if emu.Program == nil {
		emu.Program = &cpu.Program{}
	}

	emu.Cpu = cpu.NewCpu(len(emu.Program.Instrs))
	emu.Cpu.Console = &emu.Tape
	for label, address := range emu.Program.Labels {
		emu.Cpu.AddLabel(label, address)
	}

	emu.Tape.Rewind()
	emu.ticks = 0
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick executes a single instruction. done is set once the program
// counter has left the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: line %d: %v", lineno, err)
			}
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.CheckPc()
	if err != nil {
		return
	}

	in := &emu.Program.Instrs[emu.Cpu.Pc]
	err = in.Execute(emu.Cpu)
	if err != nil {
		return
	}

	emu.ticks++
	done = !emu.Cpu.Running()

	return
}

// Run executes the program until it leaves its last instruction, or
// until the first runtime error.
func (emu *Emulator) Run() (err error) {
	for {
		if emu.TickLimit > 0 && emu.ticks >= emu.TickLimit && emu.Cpu.Running() {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
