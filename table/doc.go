/*
Package table holds the character tables driving slug normalization.

Two kinds of tables live here: per-locale approximation maps, which
replace accented codepoints with ASCII look-alike sequences ('Ł' ⇒ "L",
'ü' ⇒ "ue" for German), and the classification of strippable non-word
codepoints (punctuation, symbols).

The approximation maps form a small registry. A default table named
"latin" covers the Latin-1 Supplement and Latin Extended-A blocks;
override tables such as "german" and "spanish" take precedence for the
codepoints they map. Clients may register additional replacements into an
existing table or add wholly new named tables, typically at startup.
Registration is the only mutation of the registry and is serialized
against lookups; once no registration is in flight, lookups are safe to
run from any number of goroutines.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package table

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
