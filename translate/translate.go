// Package translate renders user-visible messages for the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

// fallback is used when the host reports no usable locale.
const fallback = "en-US"

func setup() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("vm6502: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Use forces the message language, overriding the host locale.
// Mostly useful for tests that compare rendered text.
func Use(tag language.Tag) {
	once.Do(setup)
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(setup)
	return printer.Sprintf(key, args...)
}
