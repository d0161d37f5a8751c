// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package token splits pseudo-assembly source lines into tokens.
package token

import (
	"regexp"
)

// rule is a single anchored lexical pattern.
type rule struct {
	kind    Kind
	pattern *regexp.Regexp
}

// Tokenizer scans lines with an ordered list of anchored patterns.
// At every position the first registered pattern that matches wins,
// which is how mnemonics and registers take priority over NAME.
type Tokenizer struct {
	rules   []rule
	ignored map[Kind]bool
}

// NewTokenizer returns a tokenizer loaded with the pseudo-assembly rules.
func NewTokenizer() (tz *Tokenizer) {
	tz = &Tokenizer{}

	for kind := ADD; kind <= DATA; kind++ {
		tz.AddRule(kind, kind.String()+`\b`)
	}
	for kind := R0; kind <= R7; kind++ {
		tz.AddRule(kind, kind.String()+`\b`)
	}

	tz.AddRule(NAME, `[a-zA-Z_]\w*`)
	tz.AddRule(EXPR, `\$\([^$;"']*\)`)
	tz.AddRule(HEX_NUMBER, `0[xX][0-9A-Fa-f]+`)
	tz.AddRule(OCTAL_NUMBER, `0[oO][0-7]+`)
	tz.AddRule(BINARY_NUMBER, `0[bB][01]+`)
	tz.AddRule(DECIMAL_NUMBER, `[0-9]+`)
	tz.AddRule(STRING, `"(?:\\.|[^"\\])*"`)
	tz.AddRule(CHAR, `'(?:\\n|\\t|\\'|\\\\|.)'`)

	tz.AddRule(PLUS, `\+`)
	tz.AddRule(MINUS, `-`)
	tz.AddRule(COMMA, `,`)
	tz.AddRule(COLON, `:`)

	tz.AddRule(SPACE, `\s+`)
	tz.Ignore(SPACE)

	tz.AddRule(COMMENT, `;.*`)
	tz.Ignore(COMMENT)

	return
}

// AddRule appends a pattern for a token kind. The pattern is anchored
// to the scan position. Panics if the pattern does not compile.
func (tz *Tokenizer) AddRule(kind Kind, pattern string) {
	tz.rules = append(tz.rules, rule{
		kind:    kind,
		pattern: regexp.MustCompile(`^(?:` + pattern + `)`),
	})
}

// Ignore marks a kind as matched but never emitted.
func (tz *Tokenizer) Ignore(kind Kind) {
	if tz.ignored == nil {
		tz.ignored = make(map[Kind]bool)
	}
	tz.ignored[kind] = true
}

// next matches the single token at the start of text.
func (tz *Tokenizer) next(text string) (kind Kind, length int) {
	for _, r := range tz.rules {
		loc := r.pattern.FindStringIndex(text)
		if loc != nil && loc[1] > 0 {
			return r.kind, loc[1]
		}
	}

	return UNSPECIFIED, 0
}

// Tokenize splits a line into tokens, consuming the whole line.
// Ignored kinds are dropped. Fails with *ErrNoToken if no pattern
// matches at some position.
func (tz *Tokenizer) Tokenize(line string) (tokens []Token, err error) {
	for pos := 0; pos < len(line); {
		kind, length := tz.next(line[pos:])
		if kind == UNSPECIFIED {
			err = &ErrNoToken{Column: pos, Text: line[pos:]}
			return nil, err
		}

		if !tz.ignored[kind] {
			tokens = append(tokens, Token{
				Kind:  kind,
				Text:  line[pos : pos+length],
				Start: pos,
				End:   pos + length - 1,
			})
		}

		pos += length
	}

	return
}
