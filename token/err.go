package token

import (
	"github.com/ezrec/pasm/translate"
)

var f = translate.From

// ErrNoToken reports that no lexical pattern applies at a column.
type ErrNoToken struct {
	Column int    // Offset in the line where scanning stopped.
	Text   string // Unmatched remainder of the line.
}

func (err *ErrNoToken) Error() string {
	return f("no lexical pattern matches at column %d: '%v'", err.Column+1, err.Text)
}
