package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAssembler(f *testing.F) {
	f.Add("add r0, r1")
	f.Add("loop: sub r1, 0x10 ; tail")
	f.Add("data s \"a\\\"b\", 'c', -0b11")
	f.Add("set r0, $(MEMORY_SIZE // 2)")
	f.Add("jgt x, r0, r1 r2")
	f.Add("a: a: ret")
	f.Add("#")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(line))
		if prog == nil {
			// Only an input error, such as an overlong line, yields no program.
			assert.Error(err)
			return
		}

		var et *ErrTranslate
		if err != nil {
			assert.True(errors.As(err, &et))
			assert.Equal(len(asm.Lexical)+len(asm.Syntax), len(et.Unwrap()))
		}

		for _, in := range prog.Instrs {
			assert.True(in.Op < opCount)
			assert.True(in.Dest >= REG_R0 && in.Dest <= REG_R7)
			assert.True(in.Src >= REG_R0 && in.Src <= REG_R7)
			assert.True(in.LineNo > 0)
		}

		for label, address := range prog.Labels {
			assert.True(address >= 0 && address < len(prog.Instrs), label)
		}

		// Every translated instruction executes without panicking.
		cpu := NewCpu(len(prog.Instrs))
		for label, address := range prog.Labels {
			cpu.AddLabel(label, address)
		}
		for n := range prog.Instrs {
			cpu.SetPc(n)
			_ = prog.Instrs[n].Execute(cpu)
		}
	})
}
