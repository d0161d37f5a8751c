package cpu

import (
	"errors"
	"strings"

	"github.com/ezrec/pasm/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrStackFull          = errors.New(f("too many subroutines called"))
	ErrStackEmpty         = errors.New(f("return without matching call"))
	ErrShiftNegative      = errors.New(f("shift count cannot be negative"))
	ErrMemoryExhausted    = errors.New(f("not enough memory for all values"))
	ErrStringUnterminated = errors.New(f("string terminator not found"))
	ErrConsoleMissing     = errors.New(f("no console attached"))

	// Assembler errors
	ErrInstructionExtra = errors.New(f("only one instruction per line is allowed"))
	ErrDataMissing      = errors.New(f("data values expected"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("unknown label \"%v\"", string(el))
}

type ErrDataLabelMissing string

func (el ErrDataLabelMissing) Error() string {
	return f("unknown data label \"%v\"", string(el))
}

type ErrDataLabelDuplicate string

func (el ErrDataLabelDuplicate) Error() string {
	return f("data label \"%v\" cannot be redefined", string(el))
}

type ErrMemoryAddress int

func (ea ErrMemoryAddress) Error() string {
	return f("invalid memory address %v", int(ea))
}

type ErrInstrAddress int

func (ea ErrInstrAddress) Error() string {
	return f("invalid instruction address %v", int(ea))
}

type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label \"%v\" declared more than once", string(el))
}

type ErrLabelColon string

func (el ErrLabelColon) Error() string {
	return f("label \"%v\" must be followed by a colon", string(el))
}

// ErrExpected reports a token that does not fit the instruction grammar.
// Got is empty when the line ended early.
type ErrExpected struct {
	Want string
	Got  string
}

func (err *ErrExpected) Error() string {
	if len(err.Got) == 0 {
		return f("expected %v", err.Want)
	}
	return f("expected %v, got \"%v\"", err.Want, err.Got)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrLexical is a tokenizer failure on a source line.
type ErrLexical struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLexical) Error() string {
	return f("line %d: %v", err.LineNo, err.Err)
}

func (err *ErrLexical) Unwrap() error {
	return err.Err
}

// ErrSyntax is a grammar failure on a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d: %v", err.LineNo, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrTranslate collects every lexical and syntax error of a translation.
type ErrTranslate struct {
	Lexical []error
	Syntax  []error
}

func (err *ErrTranslate) Error() string {
	var lines []string
	for _, e := range err.Lexical {
		lines = append(lines, e.Error())
	}
	for _, e := range err.Syntax {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}

func (err *ErrTranslate) Unwrap() []error {
	return append(append([]error{}, err.Lexical...), err.Syntax...)
}

type ErrOpcode Op

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Op(eo).String())
}
