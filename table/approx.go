package table

import (
	"strings"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/emirpasic/gods/maps/treemap"
)

// DefaultLocale names the approximation table consulted when no override
// table applies.
const DefaultLocale = "latin"

// The registry maps locale names to approximation tables. A treemap keeps
// the locale names ordered, so Locales() is deterministic. Registration is
// the only mutation and must be serialized against lookups (see package
// documentation).
var registry = struct {
	sync.RWMutex
	maps *treemap.Map // locale name ⇒ map[rune]string
}{
	maps: treemap.NewWithStringComparator(),
}

func init() {
	registry.maps.Put(DefaultLocale, latin)
	registry.maps.Put("german", german)
	registry.maps.Put("spanish", spanish)
}

// Register adds codepoint replacements to the approximation table named
// locale, creating the table if it does not exist yet. Registration is
// idempotent per codepoint; the last write wins.
func Register(locale string, m map[rune]string) {
	registry.Lock()
	defer registry.Unlock()
	var target map[rune]string
	if v, ok := registry.maps.Get(locale); ok {
		target = v.(map[rune]string)
	} else {
		target = make(map[rune]string, len(m))
		registry.maps.Put(locale, target)
	}
	for r, repl := range m {
		target[r] = repl
	}
	T().Infof("registered %d approximation(s) for locale '%s'", len(m), locale)
}

// Approximation looks up the ASCII replacement for r: first in the table
// named locale, then in the default table. An unknown locale is not an
// error, the lookup simply falls through to the default table. The second
// return value reports whether any table maps r.
func Approximation(locale string, r rune) (string, bool) {
	registry.RLock()
	defer registry.RUnlock()
	if locale != "" && locale != DefaultLocale {
		if v, ok := registry.maps.Get(locale); ok {
			if repl, ok := v.(map[rune]string)[r]; ok {
				return repl, true
			}
		}
	}
	if v, ok := registry.maps.Get(DefaultLocale); ok {
		if repl, ok := v.(map[rune]string)[r]; ok {
			return repl, true
		}
	}
	return "", false
}

// Locales returns the names of all registered approximation tables, in
// sorted order.
func Locales() []string {
	registry.RLock()
	defer registry.RUnlock()
	keys := registry.maps.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// localeLanguages links registered table names to ISO 639-1 language codes,
// for resolving the host environment's locale.
var localeLanguages = map[string]string{
	"german":  "de",
	"spanish": "es",
}

// LocaleFromEnvironment detects the locale of the host environment and
// returns the name of a matching registered approximation table, falling
// back to DefaultLocale. It never fails.
func LocaleFromEnvironment() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		T().Infof("falling back to approximation locale '%s'", DefaultLocale)
		return DefaultLocale
	}
	T().Infof("detected user locale %v", userLocale)
	lang := userLocale
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ToLower(lang)
	registry.RLock()
	defer registry.RUnlock()
	for name, iso := range localeLanguages {
		if iso != lang {
			continue
		}
		if _, ok := registry.maps.Get(name); ok {
			return name
		}
	}
	return DefaultLocale
}
