package slug

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/slug/table"
)

func TestMake(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	cases := []struct {
		in   string
		want string
	}{
		{"hello world", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"Łódź, Poland", "lodz-poland"},
		{"  spaced\tout \n text ", "spaced-out-text"},
		{"already-normalized", "already-normalized"},
		{"C'est déjà l'été", "cest-deja-lete"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestMakeLang(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if got := Make("Jürgen Müller"); got != "jurgen-muller" {
		t.Errorf("default approximation gave %q, expected \"jurgen-muller\"", got)
	}
	if got := MakeLang("Jürgen Müller", "german"); got != "juergen-mueller" {
		t.Errorf("german approximation gave %q, expected \"juergen-mueller\"", got)
	}
	if got := MakeLang("feliz año", "spanish"); got != "feliz-anio" {
		t.Errorf("spanish approximation gave %q, expected \"feliz-anio\"", got)
	}
	// unknown locale falls back to the default table
	if got := MakeLang("Jürgen", "klingon"); got != "jurgen" {
		t.Errorf("unknown locale gave %q, expected \"jurgen\"", got)
	}
}

func TestMakeForHost(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	got := MakeForHost("Jürgen")
	if got != "jurgen" && got != "juergen" {
		t.Errorf("host-locale slug is %q, expected \"jurgen\" or \"juergen\"", got)
	}
	t.Logf("host environment slugs \"Jürgen\" as %q", got)
}

func TestConstructionRepairsAndComposes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// mis-decoded Latin-1 bytes are tidied up
	if got := FromString("caf\xe9").String(); got != "café" {
		t.Errorf("expected construction to repair encoding, got %q", got)
	}
	if got := FromBytes([]byte{'M', 0xfc, 'h', 'e'}).String(); got != "Mühe" {
		t.Errorf("expected construction to repair bytes, got %q", got)
	}
	// combining sequences are composed, so approximation tables match
	sl := FromString("Jürgen") // u + COMBINING DIAERESIS
	if sl.String() != "Jürgen" {
		t.Errorf("expected NFC composition at construction, got %q", sl.String())
	}
	if got := sl.Approximate(); got != "Jurgen" {
		t.Errorf("expected approximation of composed input, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"Hello, World!",
		"Jürgen Müller",
		"Łódź, Poland",
		"multi   space\tand\nnewline",
		"dash-already-there",
	}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent on %q: %q != %q", in, twice, once)
		}
		composed := FromString(in).Normalize()
		if again := FromString(composed).Normalize(); again != composed {
			t.Errorf("Normalize not idempotent on %q: %q != %q", in, again, composed)
		}
	}
}

func TestToASCIIDeletesOnly(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{"Jürgen", "日本語 text", "naïve café", "plain"}
	for _, in := range inputs {
		out := FromString(in).ToASCII()
		for _, r := range out {
			if r >= 0x80 {
				t.Errorf("ToASCII(%q) left codepoint %q in %q", in, r, out)
			}
		}
	}
	// deletion, not transliteration
	if got := FromString("Łódź").ToASCII(); got != "d" {
		t.Errorf("expected ToASCII to delete, not transliterate, got %q", got)
	}
	if got := FromString("Łódź").Approximated().ASCII().String(); got != "Lodz" {
		t.Errorf("expected approximate-then-ASCII to keep letters, got %q", got)
	}
}

func TestTruncateCodepoints(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if got := FromString("üéøá").Truncate(3); got != "üéø" {
		t.Errorf("expected codepoint truncation \"üéø\", got %q", got)
	}
	if got := FromString("short").Truncate(10); got != "short" {
		t.Errorf("expected truncation to be a no-op, got %q", got)
	}
	if got := FromString("whatever").Truncate(-1); got != "" {
		t.Errorf("expected negative bound to yield empty string, got %q", got)
	}
}

func TestTruncateBytesAtRuneBoundary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	// "üüü" is 6 bytes; a 5-byte budget must not split the third 'ü'
	if got := FromString("üüü").TruncateBytes(5); got != "üü" {
		t.Errorf("expected byte truncation \"üü\", got %q", got)
	}
	if got := FromString("whatever").TruncateBytes(-1); got != "" {
		t.Errorf("expected negative bound to yield empty string, got %q", got)
	}
	inputs := []string{"Jürgen Müller", "日本語のテキスト", "plain ascii", "üéøá"}
	for _, in := range inputs {
		s := FromString(in).String()
		for max := 0; max <= len(s)+1; max++ {
			out := FromString(in).TruncateBytes(max)
			if len(out) > max {
				t.Errorf("TruncateBytes(%q, %d) is %d bytes long", in, max, len(out))
			}
			if !strings.HasPrefix(s, out) {
				t.Errorf("TruncateBytes(%q, %d) = %q is not a prefix", in, max, out)
			}
			if !utf8.ValidString(out) {
				t.Errorf("TruncateBytes(%q, %d) split a codepoint: %q", in, max, out)
			}
		}
	}
}

func TestCleanAndDasherize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sl := FromString("hello   world\tfoo")
	sl.Clean()
	if got := sl.Dasherize(); got != "hello-world-foo" {
		t.Errorf("expected \"hello-world-foo\", got %q", got)
	}
	// Clean is idempotent
	sl = FromString(" a - b  c ")
	once := sl.Clean()
	if twice := sl.Clean(); twice != once {
		t.Errorf("Clean not idempotent: %q != %q", twice, once)
	}
}

func TestFoldMultiByteScripts(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if got := FromString("ГРУЗ ÄÖÜ").Fold(Lower); got != "груз äöü" {
		t.Errorf("lower fold gave %q", got)
	}
	if got := FromString("straße").Fold(Upper); got != "STRASSE" {
		t.Errorf("upper fold gave %q", got)
	}
}

func TestNonMutatingVariants(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	orig := "Jürgen Müller"
	sl := FromString(orig)
	derived := []*Slug{
		sl.Approximated("german"),
		sl.StrippedNonWord(),
		sl.Cleaned(),
		sl.ASCII(),
		sl.Folded(Lower),
		sl.Truncated(3),
		sl.TruncatedBytes(3),
		sl.Dasherized(),
		sl.Normalized(),
		sl.NormalizedASCII(),
	}
	if sl.String() != orig {
		t.Fatalf("a non-mutating variant altered the receiver: %q", sl.String())
	}
	if derived[0].String() != "Juergen Mueller" {
		t.Errorf("Approximated returned %q", derived[0].String())
	}
	if derived[9].String() != "jurgen-muller" {
		t.Errorf("NormalizedASCII returned %q", derived[9].String())
	}
}

func TestNormalizeKeepsTruncationBoundary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	// The byte budget lands exactly on the space separating the words, so
	// the trailing separator survives dasherizing. This boundary is part of
	// the documented contract and must not be trimmed away.
	in := strings.Repeat("a", MaxSlugBytes-1) + " b"
	out := FromString(in).Normalize()
	if len(out) != MaxSlugBytes {
		t.Errorf("expected output to use the full byte budget, got %d bytes", len(out))
	}
	if !strings.HasSuffix(out, "-") {
		t.Errorf("expected trailing dash at truncation boundary, got %q", out[len(out)-8:])
	}
}

func TestStringPassthrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sl := FromString("üx")
	if sl.Len() != 2 {
		t.Errorf("expected codepoint length 2, got %d", sl.Len())
	}
	if len(sl.Bytes()) != 3 {
		t.Errorf("expected byte length 3, got %d", len(sl.Bytes()))
	}
	if sl.String() != "üx" {
		t.Errorf("String() = %q", sl.String())
	}
}

func TestRegisteredApproximationsApply(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table.Register("polish", map[rune]string{'ł': "w"}) // roughly how it sounds
	if got := MakeLang("Łódź miłość", "polish"); got != "lodz-miwosc" {
		t.Errorf("expected registered override to apply, got %q", got)
	}
}
