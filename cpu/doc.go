// Package cpu implements the pseudo-assembly machine and its assembler.
//
// The machine has eight 32-bit registers (r0-r7), a flat data memory of
// 2048 cells filled by 'data' declarations, and a call stack limited to
// 64 return addresses. The builtin subroutines putc, puts and getc talk
// to an attached console.
//
// The assembler translates source text, one instruction per line, into
// a Program. Numbers may be written in hex, octal, binary, decimal, as
// character literals, or as $(...) compile-time expressions.
package cpu
