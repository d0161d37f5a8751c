package io

import (
	"errors"
	"io"
)

// Tape provides sequential console I/O over byte streams.
// A nil Input reads as an empty stream.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	eof bool
}

var _ Console = (*Tape)(nil)

// PutChar writes one byte to the output stream.
func (tc *Tape) PutChar(c byte) (err error) {
	if tc.Output == nil {
		err = ErrOutputMissing
		return
	}

	_, err = tc.Output.Write([]byte{c})
	return
}

// PutString writes a string to the output stream.
func (tc *Tape) PutString(text string) (err error) {
	if tc.Output == nil {
		err = ErrOutputMissing
		return
	}

	_, err = io.WriteString(tc.Output, text)
	return
}

// GetChar reads the next byte of the input stream. Once the end of
// input has been seen, every later read also reports it.
func (tc *Tape) GetChar() (c byte, ok bool, err error) {
	if tc.Input == nil || tc.eof {
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if errors.Is(err, io.EOF) {
		tc.eof = true
		err = nil
		return
	}
	if err != nil {
		return
	}

	c = one[0]
	ok = true
	return
}

// Rewind forgets an end of input, for interactive streams.
func (tc *Tape) Rewind() {
	tc.eof = false
}
