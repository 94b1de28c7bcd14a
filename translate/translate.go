// Package translate renders user visible messages in the user's language.
package translate

import (
	"sync"

	"github.com/golang/glog"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

// Fallback is the language used when the system locale cannot be determined.
const Fallback = "en-US"

// systemPrinter builds a printer for the locales reported by the system.
func systemPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		glog.Warningf("mano: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the system locale with the given BCP 47 tags.
// With no tags, the system locale is used again.
func SetLanguage(tags ...string) (err error) {
	var p *message.Printer

	if len(tags) == 0 {
		p = systemPrinter()
	} else {
		for _, tag := range tags {
			_, err = language.Parse(tag)
			if err != nil {
				return
			}
		}
		p = message.NewPrinter(message.MatchLanguage(tags...))
	}

	mutex.Lock()
	printer = p
	mutex.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	p := printer
	mutex.RUnlock()

	if p == nil {
		p = systemPrinter()
		mutex.Lock()
		if printer == nil {
			printer = p
		} else {
			p = printer
		}
		mutex.Unlock()
	}

	return p.Sprintf(key, args...)
}
