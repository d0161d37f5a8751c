// Package io provides the console and source file access of the
// pseudo-assembly machine.
package io

// Console is the character I/O channel used by the builtin subroutines.
type Console interface {
	// PutChar writes a single character.
	PutChar(c byte) error
	// PutString writes every character of text.
	PutString(text string) error
	// GetChar reads a single character; ok is false at end of input.
	GetChar() (c byte, ok bool, err error)
}
