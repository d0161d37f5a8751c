package io

import (
	"errors"

	"github.com/ezrec/pasm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrOutputMissing = errors.New(f("console has no output"))
)

// ErrSourceExtension is a source file without the '.pasm' extension.
type ErrSourceExtension string

func (err ErrSourceExtension) Error() string {
	return f("source file \"%v\" must have a %v extension", string(err), SOURCE_EXT)
}
