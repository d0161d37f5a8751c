package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzTokenizer(f *testing.F) {
	for _, seed := range []string{
		"add r0, r1",
		"loop: jgt loop, r0, r3 ; again",
		`data msg "hi\n", 0`,
		"set r1, '\\''",
		"!",
	} {
		f.Add(seed)
	}

	tz := NewTokenizer()

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		tokens, err := tz.Tokenize(line)
		if err != nil {
			assert.Nil(tokens)
			return
		}

		last := -1
		for _, tok := range tokens {
			assert.Greater(tok.Start, last)
			assert.GreaterOrEqual(tok.End, tok.Start)
			assert.Equal(line[tok.Start:tok.End+1], tok.Text)
			assert.False(strings.HasPrefix(tok.Text, ";"))
			last = tok.End
		}
	})
}
