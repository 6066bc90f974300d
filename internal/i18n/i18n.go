// Package i18n holds every user-facing string, keyed by message id, and
// picks the locale to render them in.
package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the locales with a catalog. The first entry is the
// fallback.
var Supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(Supported)

var (
	buildOnce sync.Once
	built     *catalog.Builder
)

// Match returns the supported locale that best fits the candidates, which
// may be BCP 47 tags ("es-MX") or POSIX locale names ("es_ES.UTF-8").
// Unparseable or empty candidates are skipped.
func Match(candidates ...string) language.Tag {
	var desired []language.Tag
	for _, c := range candidates {
		c = normalize(c)
		if c == "" {
			continue
		}
		tag, err := language.Parse(c)
		if err != nil {
			continue
		}
		desired = append(desired, tag)
	}
	if len(desired) == 0 {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Printer renders catalog messages for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Printer for tag. Tags without a catalog get the fallback.
func New(tag language.Tag) *Printer {
	tag = Match(tag.String())
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat()))}
}

// Default returns an English printer.
func Default() *Printer { return New(Supported[0]) }

// Tag reports the locale the printer renders in.
func (p *Printer) Tag() language.Tag { return p.tag }

// T renders the message with the given id, formatting args with the
// locale's number conventions. Unknown ids are rendered verbatim.
func (p *Printer) T(id string, args ...any) string {
	return p.p.Sprintf(id, args...)
}

// Has reports whether id is in the catalog.
func Has(id string) bool {
	_, ok := messages[Supported[0]][id]
	return ok
}

// cat builds the shared catalog. Ids missing from a locale fall back to the
// English text.
func cat() *catalog.Builder {
	buildOnce.Do(func() {
		b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
		fallback := messages[Supported[0]]
		for _, tag := range Supported {
			local := messages[tag]
			for id, text := range fallback {
				if t, ok := local[id]; ok {
					text = t
				}
				if err := b.SetString(tag, id, text); err != nil {
					panic("i18n: " + id + ": " + err.Error())
				}
			}
		}
		built = b
	})
	return built
}
