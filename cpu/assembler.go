// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/pasm/token"
)

// Assembler translates pseudo-assembly source into a Program.
// Errors are collected line by line; a bad line contributes nothing
// and translation carries on with the next one.
type Assembler struct {
	Verbose bool    // If set, verbosely logs the assembler actions.
	Instr   []Instr // List of generated instructions.

	Label   map[string]int // Map of jump labels to instruction indexes.
	Lexical []error        // Tokenizer errors, as *ErrLexical.
	Syntax  []error        // Grammar errors, as *ErrSyntax.

	predefine map[string]int64 // Predefines
	tokenizer *token.Tokenizer
	declared  map[string]bool // Every label name seen so far.
	pending   []string        // Labels waiting for the next instruction.
}

// Predefine defines a new constant for $(...) expressions, or
// redefines an existing one.
func (asm *Assembler) Predefine(name string, value int64) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// reset clears the state of a previous Parse.
func (asm *Assembler) reset() {
	if asm.tokenizer == nil {
		asm.tokenizer = token.NewTokenizer()
	}

	asm.Instr = asm.Instr[:0]
	asm.Label = make(map[string]int, 16)
	asm.Lexical = nil
	asm.Syntax = nil
	asm.declared = make(map[string]bool, 16)
	asm.pending = nil
}

// Parse translates an input stream into a Program. The program holds
// every instruction that translated; err is an *ErrTranslate if any
// line failed, or the read error of the input.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.reset()

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		asm.parseLine(line, lineno)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instrs: slices.Clone(asm.Instr),
		Labels: maps.Clone(asm.Label),
	}

	if len(asm.Lexical) != 0 || len(asm.Syntax) != 0 {
		err = &ErrTranslate{
			Lexical: slices.Clone(asm.Lexical),
			Syntax:  slices.Clone(asm.Syntax),
		}
	}

	return
}

// syntaxError records a grammar failure for a line.
func (asm *Assembler) syntaxError(line string, lineno int, err error) {
	if asm.Verbose {
		log.Printf("%v: %v", lineno, err)
	}
	asm.Syntax = append(asm.Syntax, &ErrSyntax{LineNo: lineno, Line: line, Err: err})
}

// parseLine translates a single source line.
func (asm *Assembler) parseLine(line string, lineno int) {
	tokens, err := asm.tokenizer.Tokenize(line)
	if err != nil {
		if asm.Verbose {
			log.Printf("%v: %v", lineno, err)
		}
		asm.Lexical = append(asm.Lexical, &ErrLexical{LineNo: lineno, Line: line, Err: err})
		return
	}

	p := &parser{asm: asm, tokens: tokens, lineno: lineno}

	labels, err := p.labels()
	if err != nil {
		asm.syntaxError(line, lineno, err)
		return
	}

	for _, label := range labels {
		if asm.declared[label] {
			asm.syntaxError(line, lineno, ErrLabelDuplicate(label))
			continue
		}
		asm.declared[label] = true
		asm.pending = append(asm.pending, label)
	}

	if p.done() {
		return
	}

	in, err := p.instr()
	if err != nil {
		asm.syntaxError(line, lineno, err)
		return
	}

	in.LineNo = lineno
	address := len(asm.Instr)
	asm.Instr = append(asm.Instr, in)

	if asm.Verbose {
		log.Printf("%v: %04d %v", lineno, address, in)
	}

	for _, label := range asm.pending {
		asm.Label[label] = address
	}
	asm.pending = asm.pending[:0]
}

// equates returns the constants visible to $(...) on a line.
func (asm *Assembler) equates(lineno int) (equate map[string]int64) {
	equate = maps.Clone(sysEquate)
	for label, address := range asm.Label {
		equate[label] = int64(address)
	}
	for name, value := range asm.predefine {
		equate[name] = value
	}
	equate["LINENO"] = int64(lineno)

	return
}

// aluMap maps two operand mnemonics to their register and immediate forms.
var aluMap = map[token.Kind][2]Op{
	token.ADD: {OP_ADD_REG, OP_ADD_IMM},
	token.SUB: {OP_SUB_REG, OP_SUB_IMM},
	token.AND: {OP_AND_REG, OP_AND_IMM},
	token.OR:  {OP_OR_REG, OP_OR_IMM},
	token.XOR: {OP_XOR_REG, OP_XOR_IMM},
	token.SHR: {OP_SHR_REG, OP_SHR_IMM},
	token.SHL: {OP_SHL_REG, OP_SHL_IMM},
}

// parser walks the tokens of one line.
type parser struct {
	asm    *Assembler
	tokens []token.Token
	pos    int
	lineno int
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the kind of the current token, or UNSPECIFIED at the end.
func (p *parser) peek() token.Kind {
	if p.done() {
		return token.UNSPECIFIED
	}
	return p.tokens[p.pos].Kind
}

// expected builds the error for a missing or unexpected token.
func (p *parser) expected(want string) error {
	if p.done() {
		return &ErrExpected{Want: want}
	}
	return &ErrExpected{Want: want, Got: p.tokens[p.pos].Text}
}

// labels consumes the leading 'name:' declarations.
func (p *parser) labels() (labels []string, err error) {
	for p.peek() == token.NAME {
		label := p.tokens[p.pos].Text
		p.pos++
		if p.peek() != token.COLON {
			err = ErrLabelColon(label)
			return
		}
		p.pos++
		labels = append(labels, label)
	}

	return
}

func (p *parser) comma() (err error) {
	if p.peek() != token.COMMA {
		return p.expected(f("a comma"))
	}
	p.pos++
	return
}

func (p *parser) register() (reg Register, err error) {
	kind := p.peek()
	if !kind.IsRegister() {
		err = p.expected(f("a register"))
		return
	}
	p.pos++
	reg = Register(kind - token.R0)
	return
}

func (p *parser) name(want string) (name string, err error) {
	if p.peek() != token.NAME {
		err = p.expected(want)
		return
	}
	name = p.tokens[p.pos].Text
	p.pos++
	return
}

// number consumes an optionally signed numeric literal.
func (p *parser) number() (value int32, err error) {
	sign := int64(1)
	switch p.peek() {
	case token.MINUS:
		sign = -1
		p.pos++
	case token.PLUS:
		p.pos++
	}

	if !p.peek().IsNumber() {
		err = p.expected(f("a number"))
		return
	}

	tok := p.tokens[p.pos]
	v64, err := p.convert(tok)
	if err != nil {
		return
	}
	p.pos++

	v64 *= sign
	if v64 < math.MinInt32 {
		err = ErrParseNumber("-" + tok.Text)
		return
	}

	value = int32(v64)
	return
}

// isOperandNumber returns true if the current token starts a number.
func (p *parser) isOperandNumber() bool {
	kind := p.peek()
	return kind == token.MINUS || kind == token.PLUS || kind.IsNumber()
}

// convert returns the unsigned value of a numeric token, below 2^32.
func (p *parser) convert(tok token.Token) (value int64, err error) {
	text := tok.Text

	switch tok.Kind {
	case token.HEX_NUMBER:
		value, err = strconv.ParseInt(text[2:], 16, 64)
	case token.OCTAL_NUMBER:
		value, err = strconv.ParseInt(text[2:], 8, 64)
	case token.BINARY_NUMBER:
		value, err = strconv.ParseInt(text[2:], 2, 64)
	case token.DECIMAL_NUMBER:
		value, err = strconv.ParseInt(text, 10, 64)
	case token.CHAR:
		var c rune
		c, err = unquoteChar(text[1 : len(text)-1])
		value = int64(c)
		return
	case token.EXPR:
		return parenEval(text[2:len(text)-1], p.asm.equates(p.lineno))
	default:
		err = &ErrExpected{Want: f("a number"), Got: text}
		return
	}

	if err != nil || value > math.MaxUint32 {
		err = ErrParseNumber(text)
		return
	}

	return
}

// unquoteChar decodes the body of a character literal.
func unquoteChar(body string) (c rune, err error) {
	if len(body) == 2 && body[0] == '\\' {
		switch body[1] {
		case 'n':
			return '\n', nil
		case 't':
			return '\t', nil
		case '\\':
			return '\\', nil
		case '\'':
			return '\'', nil
		}
	}

	c, size := utf8.DecodeRuneInString(body)
	if size != len(body) || c == utf8.RuneError {
		err = ErrParseNumber("'" + body + "'")
	}
	return
}

// unquoteString decodes the body of a string literal. Unknown escapes
// are kept as written.
func unquoteString(body string) string {
	var sb strings.Builder
	for n := 0; n < len(body); n++ {
		c := body[n]
		if c == '\\' && n+1 < len(body) {
			switch body[n+1] {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case '\\':
				c = '\\'
			case '"':
				c = '"'
			default:
				sb.WriteByte(c)
				continue
			}
			n++
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// instr parses exactly one instruction, which must end the line.
func (p *parser) instr() (in Instr, err error) {
	if p.done() {
		err = p.expected(f("an instruction"))
		return
	}

	kind := p.peek()
	if !kind.IsOpcode() {
		err = p.expected(f("an instruction"))
		return
	}
	p.pos++

	if ops, ok := aluMap[kind]; ok {
		in, err = p.alu(ops[0], ops[1])
	} else {
		switch kind {
		case token.NOT:
			var reg Register
			reg, err = p.register()
			in = Not(reg)
		case token.SET:
			in, err = p.set()
		case token.LD:
			in, err = p.ld()
		case token.ST:
			in, err = p.st()
		case token.LDI, token.STI:
			var dest, src Register
			dest, src, err = p.registerPair()
			if kind == token.LDI {
				in = Ldi(dest, src)
			} else {
				in = Sti(dest, src)
			}
		case token.JMP:
			var label string
			label, err = p.name(f("a label name"))
			in = Jmp(label)
		case token.JEQ, token.JGT:
			in, err = p.branch(kind)
		case token.CALL:
			var name string
			name, err = p.name(f("a subroutine name"))
			in = Call(name)
		case token.RET:
			in = Ret()
		case token.DATA:
			in, err = p.data()
		}
	}

	if err != nil {
		return
	}

	if !p.done() {
		err = ErrInstructionExtra
		return
	}

	return
}

// alu parses 'reg, reg' or 'reg, [+-]imm'.
func (p *parser) alu(regOp, immOp Op) (in Instr, err error) {
	dest, err := p.register()
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}

	switch {
	case p.peek().IsRegister():
		var src Register
		src, err = p.register()
		in = Instr{Op: regOp, Dest: dest, Src: src}
	case p.isOperandNumber():
		var imm int32
		imm, err = p.number()
		in = Instr{Op: immOp, Dest: dest, Imm: imm}
	default:
		err = p.expected(f("a number or register"))
	}

	return
}

// set parses 'reg, reg', 'reg, name' or 'reg, [+-]imm'.
func (p *parser) set() (in Instr, err error) {
	dest, err := p.register()
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}

	switch {
	case p.peek().IsRegister():
		var src Register
		src, err = p.register()
		in = SetReg(dest, src)
	case p.peek() == token.NAME:
		var name string
		name, err = p.name(f("a data label name"))
		in = SetName(dest, name)
	case p.isOperandNumber():
		var imm int32
		imm, err = p.number()
		in = SetImm(dest, imm)
	default:
		err = p.expected(f("a register, data label name or number"))
	}

	return
}

func (p *parser) ld() (in Instr, err error) {
	dest, err := p.register()
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}
	name, err := p.name(f("a data label name"))
	in = Ld(dest, name)
	return
}

func (p *parser) st() (in Instr, err error) {
	name, err := p.name(f("a data label name"))
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}
	src, err := p.register()
	in = St(name, src)
	return
}

func (p *parser) registerPair() (dest, src Register, err error) {
	dest, err = p.register()
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}
	src, err = p.register()
	return
}

// branch parses 'label, reg, reg'.
func (p *parser) branch(kind token.Kind) (in Instr, err error) {
	label, err := p.name(f("a label name"))
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}
	a, b, err := p.registerPair()
	if err != nil {
		return
	}

	if kind == token.JEQ {
		in = Jeq(label, a, b)
	} else {
		in = Jgt(label, a, b)
	}
	return
}

// data parses 'name[,] item, item, ...' where an item is a number or
// a string. Strings become one value per byte and a zero terminator.
func (p *parser) data() (in Instr, err error) {
	name, err := p.name(f("a data label name"))
	if err != nil {
		return
	}
	if p.peek() == token.COMMA {
		p.pos++
	}

	var values []int32
	for {
		if p.done() {
			err = ErrDataMissing
			return
		}

		if p.peek() == token.STRING {
			text := p.tokens[p.pos].Text
			for _, c := range []byte(unquoteString(text[1 : len(text)-1])) {
				values = append(values, int32(c))
			}
			values = append(values, 0)
			p.pos++
		} else {
			var value int32
			value, err = p.number()
			if err != nil {
				return
			}
			values = append(values, value)
		}

		if p.done() {
			break
		}

		err = p.comma()
		if err != nil {
			return
		}
	}

	in = Data(name, values...)
	return
}
