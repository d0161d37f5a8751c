package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizerEmpty(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	for _, line := range []string{"", "              ", "\t \t", "; add r0, r1, 0xff", "   ; comment"} {
		tokens, err := tz.Tokenize(line)
		assert.NoError(err, line)
		assert.Empty(tokens, line)
	}
}

func TestTokenizerSingle(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	table := [](struct {
		text string
		kind Kind
	}){
		{"add", ADD}, {"sub", SUB}, {"and", AND}, {"or", OR}, {"xor", XOR},
		{"not", NOT}, {"shr", SHR}, {"shl", SHL}, {"set", SET}, {"ld", LD},
		{"st", ST}, {"ldi", LDI}, {"sti", STI}, {"jmp", JMP}, {"jeq", JEQ},
		{"jgt", JGT}, {"call", CALL}, {"ret", RET}, {"data", DATA},
		{"r0", R0}, {"r1", R1}, {"r2", R2}, {"r3", R3},
		{"r4", R4}, {"r5", R5}, {"r6", R6}, {"r7", R7},
		{"hello", NAME}, {"_x9", NAME}, {"r8", NAME},
		{"$(1 + 2)", EXPR},
		{"0xffa21", HEX_NUMBER}, {"0XAB", HEX_NUMBER},
		{"0o1235", OCTAL_NUMBER}, {"0O7", OCTAL_NUMBER},
		{"0b10101", BINARY_NUMBER}, {"0B1", BINARY_NUMBER},
		{"102132", DECIMAL_NUMBER},
		{`"string"`, STRING}, {`"say \"hi\""`, STRING}, {`""`, STRING},
		{"'a'", CHAR}, {`'\n'`, CHAR}, {`'\t'`, CHAR}, {`'\\'`, CHAR}, {`'\''`, CHAR},
		{"+", PLUS}, {"-", MINUS}, {",", COMMA}, {":", COLON},
	}

	for _, entry := range table {
		tokens, err := tz.Tokenize(entry.text)
		assert.NoError(err, entry.text)
		if !assert.Len(tokens, 1, entry.text) {
			continue
		}
		assert.Equal(Token{Kind: entry.kind, Text: entry.text, Start: 0, End: len(entry.text) - 1}, tokens[0])
	}
}

func TestTokenizerSeveralNames(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	tokens, err := tz.Tokenize("hello world")
	assert.NoError(err)
	assert.Equal([]Token{
		{NAME, "hello", 0, 4},
		{NAME, "world", 6, 10},
	}, tokens)
}

func TestTokenizerKeywordPrefix(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	for _, text := range []string{"callmelater", "address", "r0x", "ldx", "returned", "dataset"} {
		tokens, err := tz.Tokenize(text)
		assert.NoError(err, text)
		if assert.Len(tokens, 1, text) {
			assert.Equal(NAME, tokens[0].Kind, text)
			assert.Equal(text, tokens[0].Text)
		}
	}

	tokens, err := tz.Tokenize("ldi")
	assert.NoError(err)
	assert.Equal(LDI, tokens[0].Kind)
}

func TestTokenizerErrors(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	table := [](struct {
		name   string
		line   string
		column int
	}){
		{"unknown", "!", 0},
		{"unclosed string", `"hello world`, 0},
		{"unclosed char", "'a", 0},
		{"char too long", "'aascasc'", 0},
		{"late", "add r0, #1", 8},
		{"quoted expression", `set r0, $("a")`, 8},
	}

	for _, entry := range table {
		tokens, err := tz.Tokenize(entry.line)
		assert.Nil(tokens, entry.name)
		var ent *ErrNoToken
		if assert.ErrorAs(err, &ent, entry.name) {
			assert.Equal(entry.column, ent.Column, entry.name)
			assert.Equal(entry.line[entry.column:], ent.Text, entry.name)
		}
	}
}

func TestTokenizerComplex(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	tokens, err := tz.Tokenize("     add r0, r1, -0xffff; add r0 adfsdfg asdf as")
	assert.NoError(err)

	expected := []Token{
		{ADD, "add", 5, 7},
		{R0, "r0", 9, 10},
		{COMMA, ",", 11, 11},
		{R1, "r1", 13, 14},
		{COMMA, ",", 15, 15},
		{MINUS, "-", 17, 17},
		{HEX_NUMBER, "0xffff", 18, 23},
	}
	assert.Equal(expected, tokens)
}

func TestTokenizerData(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	tokens, err := tz.Tokenize(`msg: data text "a,b", "c", 'x', $(2 * 3) ; done`)
	assert.NoError(err)

	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal([]Kind{NAME, COLON, DATA, NAME, STRING, COMMA, STRING, COMMA, CHAR, COMMA, EXPR}, kinds)
	assert.Equal(`"a,b"`, tokens[4].Text)
	assert.Equal("$(2 * 3)", tokens[10].Text)
}

func TestTokenizerExpressionEnd(t *testing.T) {
	assert := assert.New(t)

	tz := NewTokenizer()

	tokens, err := tz.Tokenize(`data x $(1), "a)"`)
	assert.NoError(err)
	if assert.Len(tokens, 5) {
		assert.Equal(Token{EXPR, "$(1)", 7, 10}, tokens[2])
		assert.Equal(Token{STRING, `"a)"`, 13, 16}, tokens[4])
	}

	tokens, err = tz.Tokenize("set r0, $((1 + 2) * 3), ')'")
	assert.NoError(err)
	if assert.Len(tokens, 6) {
		assert.Equal("$((1 + 2) * 3)", tokens[3].Text)
		assert.Equal(CHAR, tokens[5].Kind)
	}
}

func TestTokenizerCustomRule(t *testing.T) {
	assert := assert.New(t)

	tz := &Tokenizer{}
	tz.AddRule(NAME, `[a-z]+`)
	tz.AddRule(SPACE, ` +`)

	tokens, err := tz.Tokenize("ab cd")
	assert.NoError(err)
	assert.Len(tokens, 3)

	tz.Ignore(SPACE)
	tokens, err = tz.Tokenize("ab cd")
	assert.NoError(err)
	assert.Len(tokens, 2)
}

func TestKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", ADD.String())
	assert.Equal("r7", R7.String())
	assert.Equal(",", COMMA.String())
	assert.Equal("Kind(?)", Kind(-1).String())

	assert.True(DATA.IsOpcode())
	assert.False(R0.IsOpcode())
	assert.True(R3.IsRegister())
	assert.False(NAME.IsRegister())
	assert.True(CHAR.IsNumber())
	assert.True(EXPR.IsNumber())
	assert.False(STRING.IsNumber())
}
