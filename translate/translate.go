// Package translate formats user visible messages for the detected locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	current language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("pasm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message language from a list of BCP 47 tags, most
// preferred first. An empty list selects en-US.
func Use(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	current = message.MatchLanguage(tags...)
	printer = message.NewPrinter(current)
}

// Language returns the currently selected message language.
func Language() language.Tag {
	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
