package token

import (
	"fmt"
)

// Token is a single lexical element of a source line.
type Token struct {
	Kind  Kind   // Lexical category.
	Text  string // Matched text.
	Start int    // Offset of the first character in the line.
	End   int    // Offset of the last character in the line.
}

func (tok Token) String() string {
	return fmt.Sprintf("%v(%q)@%d", tok.Kind, tok.Text, tok.Start)
}
