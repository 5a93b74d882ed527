package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/npillmayer/slug/table"
)

// MaxSlugBytes is the byte budget the canonical normalize pipeline imposes
// on its output. It corresponds to the common 255-byte limit for file names
// and URL path segments.
const MaxSlugBytes = 255

// Slug is a wrapper around a string on its way to becoming a URL-safe slug.
//
// A Slug always wraps well-formed UTF-8: construction repairs the byte
// encoding and applies Unicode canonical composition (NFC) before anything
// else. The zero value is not useful, clients create Slugs with FromString,
// FromBytes or FromStringWith.
//
// Mutating methods (Approximate, Clean, …) replace the wrapped value and
// return the resulting string. Their non-mutating counterparts (Approximated,
// Cleaned, …) leave the receiver untouched and return a new independent Slug.
// A single Slug instance is not safe for concurrent use; the natural usage is
// one short-lived instance per logical string.
type Slug struct {
	value   string
	backend Backend
}

// FromString wraps a string in a Slug value, repairing its encoding and
// applying canonical composition. It never fails.
func FromString(s string) *Slug {
	return FromStringWith(s, nil)
}

// FromBytes wraps a byte sequence in a Slug value. The bytes may be valid
// UTF-8 or mis-decoded single-byte text; see FromString.
func FromBytes(b []byte) *Slug {
	return construct(b, CurrentBackend())
}

// FromStringWith is FromString with an explicit Unicode backend. A nil
// backend selects the process-wide default.
func FromStringWith(s string, b Backend) *Slug {
	if b == nil {
		b = CurrentBackend()
	}
	return construct([]byte(s), b)
}

func construct(b []byte, backend Backend) *Slug {
	return &Slug{
		value:   backend.Compose(backend.Tidy(b)),
		backend: backend,
	}
}

// String returns the wrapped string. Slug implements fmt.Stringer.
func (sl *Slug) String() string {
	return sl.value
}

// Bytes returns the wrapped string as a byte slice.
func (sl *Slug) Bytes() []byte {
	return []byte(sl.value)
}

// Len returns the length of the wrapped string in codepoints, not bytes.
func (sl *Slug) Len() int {
	return utf8.RuneCountInString(sl.value)
}

func (sl *Slug) set(s string) string {
	sl.value = s
	return s
}

// derive is the single helper behind all non-mutating method variants:
// clone the receiver, apply a mutating operation to the clone, return the
// clone.
func (sl *Slug) derive(apply func(*Slug)) *Slug {
	d := &Slug{value: sl.value, backend: sl.backend}
	apply(d)
	return d
}

// --- Transformations -------------------------------------------------------

// Approximate replaces accented and other non-ASCII codepoints with
// ASCII look-alike sequences, e.g. 'Ł' ⇒ "L" or, with the "german" locale,
// 'ü' ⇒ "ue". An optional locale names an override table consulted before
// the default one (see package table). Codepoints without a replacement in
// any table pass through unchanged, including non-Latin scripts. An unknown
// locale is not an error and falls back to the default table.
func (sl *Slug) Approximate(locale ...string) string {
	loc := table.DefaultLocale
	if len(locale) > 0 {
		loc = locale[0]
	}
	var b strings.Builder
	b.Grow(len(sl.value))
	for _, r := range sl.value {
		if repl, ok := table.Approximation(loc, r); ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return sl.set(b.String())
}

// StripNonWord removes every codepoint classified as non-word (punctuation,
// symbols and the like, see table.Strippable). Letters, digits, combining
// marks and whitespace, newlines included, are preserved.
func (sl *Slug) StripNonWord() string {
	var b strings.Builder
	b.Grow(len(sl.value))
	for _, r := range sl.value {
		if !table.Strippable(r) {
			b.WriteRune(r)
		}
	}
	return sl.set(b.String())
}

// Clean replaces dashes with spaces, collapses runs of whitespace into a
// single space and trims leading and trailing whitespace. Clean is
// idempotent.
func (sl *Slug) Clean() string {
	s := strings.Map(func(r rune) rune {
		if r == '-' {
			return ' '
		}
		return r
	}, sl.value)
	return sl.set(strings.Join(strings.Fields(s), " "))
}

// ToASCII deletes every codepoint ≥ U+0080. It does not transliterate;
// clients wanting "Lodz" instead of "dz" for "Łódź" call Approximate first.
func (sl *Slug) ToASCII() string {
	del := runes.Remove(runes.Predicate(func(r rune) bool {
		return r >= 0x80
	}))
	out, _, _ := transform.String(del, sl.value)
	return sl.set(out)
}

// Fold converts the wrapped string to the given case. Folding is
// Unicode-aware and handled by the configured backend, not a byte-wise
// ASCII conversion.
func (sl *Slug) Fold(c Case) string {
	return sl.set(sl.backend.Fold(sl.value, c))
}

// Truncate keeps the first max codepoints and drops the rest. It is a no-op
// if the wrapped string is shorter. A bound ≤ 0 yields the empty string.
func (sl *Slug) Truncate(max int) string {
	if max <= 0 {
		return sl.set("")
	}
	n := 0
	for pos := range sl.value {
		if n == max {
			return sl.set(sl.value[:pos])
		}
		n++
	}
	return sl.value
}

// TruncateBytes greedily keeps codepoints from the start while the
// cumulative UTF-8 byte length stays within max. It never emits a partial
// codepoint, so the result may be strictly shorter than max bytes. A bound
// ≤ 0 yields the empty string.
func (sl *Slug) TruncateBytes(max int) string {
	if max <= 0 {
		return sl.set("")
	}
	if len(sl.value) <= max {
		return sl.value
	}
	end := 0
	for pos, r := range sl.value {
		next := pos + utf8.RuneLen(r)
		if next > max {
			break
		}
		end = next
	}
	return sl.set(sl.value[:end])
}

// Dasherize replaces every Unicode whitespace codepoint with a single dash.
// It is the last step of the canonical pipeline; run Clean first to collapse
// whitespace runs into single separators.
func (sl *Slug) Dasherize() string {
	return sl.set(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, sl.value))
}

// --- The canonical pipeline ------------------------------------------------

// Normalize runs the canonical slug pipeline: clean, strip non-word
// codepoints, clean again, fold to lower case, truncate to MaxSlugBytes and
// dasherize. The result may still contain non-ASCII letters; use
// NormalizeASCII for a pure ASCII slug.
//
// Normalize is idempotent: normalizing an already normalized string yields
// the same string.
func (sl *Slug) Normalize() string {
	return sl.normalize()
}

// NormalizeASCII approximates non-ASCII codepoints (with an optional
// locale override, see Approximate), deletes whatever non-ASCII remains,
// and then runs the canonical pipeline of Normalize.
func (sl *Slug) NormalizeASCII(locale ...string) string {
	sl.Approximate(locale...)
	sl.ToASCII()
	return sl.normalize()
}

// Byte truncation runs before dasherizing so that the byte budget is spent
// on content rather than on separator dashes. The wrapped value is not
// re-trimmed afterwards: if truncation lands on a space boundary the slug
// ends in a dash. Downstream callers rely on the exact truncation boundary,
// so this is kept as documented behavior.
func (sl *Slug) normalize() string {
	sl.Clean()
	sl.StripNonWord()
	sl.Clean()
	sl.Fold(Lower)
	sl.TruncateBytes(MaxSlugBytes)
	return sl.Dasherize()
}

// --- Non-mutating variants -------------------------------------------------

// Approximated is the non-mutating variant of Approximate.
func (sl *Slug) Approximated(locale ...string) *Slug {
	return sl.derive(func(d *Slug) { d.Approximate(locale...) })
}

// StrippedNonWord is the non-mutating variant of StripNonWord.
func (sl *Slug) StrippedNonWord() *Slug {
	return sl.derive(func(d *Slug) { d.StripNonWord() })
}

// Cleaned is the non-mutating variant of Clean.
func (sl *Slug) Cleaned() *Slug {
	return sl.derive(func(d *Slug) { d.Clean() })
}

// ASCII is the non-mutating variant of ToASCII.
func (sl *Slug) ASCII() *Slug {
	return sl.derive(func(d *Slug) { d.ToASCII() })
}

// Folded is the non-mutating variant of Fold.
func (sl *Slug) Folded(c Case) *Slug {
	return sl.derive(func(d *Slug) { d.Fold(c) })
}

// Truncated is the non-mutating variant of Truncate.
func (sl *Slug) Truncated(max int) *Slug {
	return sl.derive(func(d *Slug) { d.Truncate(max) })
}

// TruncatedBytes is the non-mutating variant of TruncateBytes.
func (sl *Slug) TruncatedBytes(max int) *Slug {
	return sl.derive(func(d *Slug) { d.TruncateBytes(max) })
}

// Dasherized is the non-mutating variant of Dasherize.
func (sl *Slug) Dasherized() *Slug {
	return sl.derive(func(d *Slug) { d.Dasherize() })
}

// Normalized is the non-mutating variant of Normalize.
func (sl *Slug) Normalized() *Slug {
	return sl.derive(func(d *Slug) { d.Normalize() })
}

// NormalizedASCII is the non-mutating variant of NormalizeASCII.
func (sl *Slug) NormalizedASCII(locale ...string) *Slug {
	return sl.derive(func(d *Slug) { d.NormalizeASCII(locale...) })
}

// --- Conveniences ----------------------------------------------------------

// Make returns an ASCII slug for s, using the default approximation table.
//
//   slug.Make("Łódź, Poland")   // ⇒ "lodz-poland"
func Make(s string) string {
	return FromString(s).NormalizeASCII()
}

// MakeLang returns an ASCII slug for s, approximating with the named
// locale table.
//
//   slug.MakeLang("Jürgen Müller", "german")   // ⇒ "juergen-mueller"
func MakeLang(s string, locale string) string {
	return FromString(s).NormalizeASCII(locale)
}

// MakeForHost returns an ASCII slug for s, picking the approximation
// locale from the host environment (see table.LocaleFromEnvironment).
func MakeForHost(s string) string {
	return FromString(s).NormalizeASCII(table.LocaleFromEnvironment())
}
