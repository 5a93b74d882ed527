package tidy

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Bytes turns an arbitrary byte sequence into well-formed UTF-8.
//
// If b already is valid UTF-8 it passes through untouched. Otherwise the
// input is re-interpreted as single-byte legacy text: ASCII bytes are kept,
// bytes ≥ 0x80 are decoded through the Windows CP1252 table, which is a
// superset of Latin-1 for 0xA0–0xFF and maps 0x80–0x9F to printable
// characters such as '€' and '™'. The five byte values CP1252 leaves
// undefined become U+FFFD.
//
// Bytes never fails, for any input.
func Bytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	T().Infof("input is not valid UTF-8, re-decoding %d bytes as CP1252", len(b))
	var sb strings.Builder
	sb.Grow(len(b) + len(b)/2)
	for _, c := range b {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
			continue
		}
		sb.WriteRune(decodeLegacyByte(c))
	}
	return sb.String()
}

// String is Bytes for string input, convenient for callers holding
// mis-decoded text in a Go string.
func String(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return Bytes([]byte(s))
}

func decodeLegacyByte(c byte) rune {
	r := charmap.Windows1252.DecodeByte(c)
	if r >= 0x80 && r <= 0x9f {
		// charmap follows the WHATWG mapping and yields C1 control
		// codepoints for the slots CP1252 leaves undefined
		// (0x81, 0x8D, 0x8F, 0x90, 0x9D).
		return utf8.RuneError
	}
	return r
}
