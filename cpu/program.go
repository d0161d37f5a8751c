package cpu

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Program is the output of the assembler: instructions indexed by
// address and the jump label table.
type Program struct {
	Instrs []Instr
	Labels map[string]int
}

// LineNo returns the source line of the instruction at pc, or 0.
func (prog *Program) LineNo(pc int) int {
	if pc < 0 || pc >= len(prog.Instrs) {
		return 0
	}

	return prog.Instrs[pc].LineNo
}

// LabelsAt returns the sorted labels bound to an address.
func (prog *Program) LabelsAt(pc int) (labels []string) {
	for label, address := range prog.Labels {
		if address == pc {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)

	return
}

// Listing iterates over the program as canonical source lines.
func (prog *Program) Listing() iter.Seq2[int, string] {
	return func(yield func(pc int, line string) bool) {
		for pc, in := range prog.Instrs {
			var prefix string
			for _, label := range prog.LabelsAt(pc) {
				prefix += label + ": "
			}
			line := fmt.Sprintf("%v%v", prefix, in)
			if !yield(pc, line) {
				return
			}
		}
	}
}

// String returns the listing with addresses and source line numbers.
func (prog *Program) String() string {
	var sb strings.Builder
	for pc, line := range prog.Listing() {
		fmt.Fprintf(&sb, "%04d [%4d] %v\n", pc, prog.Instrs[pc].LineNo, line)
	}
	return sb.String()
}
