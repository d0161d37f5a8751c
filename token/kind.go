package token

// Kind is the lexical category of a token.
type Kind int

const (
	UNSPECIFIED = Kind(iota) // unspecified

	// Opcodes
	ADD  // add
	SUB  // sub
	AND  // and
	OR   // or
	XOR  // xor
	NOT  // not
	SHR  // shr
	SHL  // shl
	SET  // set
	LD   // ld
	ST   // st
	LDI  // ldi
	STI  // sti
	JMP  // jmp
	JEQ  // jeq
	JGT  // jgt
	CALL // call
	RET  // ret
	DATA // data

	// Registers
	R0 // r0
	R1 // r1
	R2 // r2
	R3 // r3
	R4 // r4
	R5 // r5
	R6 // r6
	R7 // r7

	// Operands
	NAME           // name
	EXPR           // expression
	HEX_NUMBER     // hex number
	OCTAL_NUMBER   // octal number
	BINARY_NUMBER  // binary number
	DECIMAL_NUMBER // decimal number
	STRING         // string
	CHAR           // char

	// Punctuation
	PLUS  // +
	MINUS // -
	COMMA // ,
	COLON // :

	// Discarded
	SPACE   // space
	COMMENT // comment

	kindCount
)

var kindName = [kindCount]string{
	UNSPECIFIED:    "unspecified",
	ADD:            "add",
	SUB:            "sub",
	AND:            "and",
	OR:             "or",
	XOR:            "xor",
	NOT:            "not",
	SHR:            "shr",
	SHL:            "shl",
	SET:            "set",
	LD:             "ld",
	ST:             "st",
	LDI:            "ldi",
	STI:            "sti",
	JMP:            "jmp",
	JEQ:            "jeq",
	JGT:            "jgt",
	CALL:           "call",
	RET:            "ret",
	DATA:           "data",
	R0:             "r0",
	R1:             "r1",
	R2:             "r2",
	R3:             "r3",
	R4:             "r4",
	R5:             "r5",
	R6:             "r6",
	R7:             "r7",
	NAME:           "name",
	EXPR:           "expression",
	HEX_NUMBER:     "hex number",
	OCTAL_NUMBER:   "octal number",
	BINARY_NUMBER:  "binary number",
	DECIMAL_NUMBER: "decimal number",
	STRING:         "string",
	CHAR:           "char",
	PLUS:           "+",
	MINUS:          "-",
	COMMA:          ",",
	COLON:          ":",
	SPACE:          "space",
	COMMENT:        "comment",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(?)"
	}
	return kindName[k]
}

// IsOpcode returns true for the instruction mnemonics.
func (k Kind) IsOpcode() bool {
	return k >= ADD && k <= DATA
}

// IsRegister returns true for r0 through r7.
func (k Kind) IsRegister() bool {
	return k >= R0 && k <= R7
}

// IsNumber returns true for every kind that converts to an integer value,
// including character literals and compile-time expressions.
func (k Kind) IsNumber() bool {
	switch k {
	case EXPR, HEX_NUMBER, OCTAL_NUMBER, BINARY_NUMBER, DECIMAL_NUMBER, CHAR:
		return true
	}
	return false
}
