/*
Package slug derives URL-safe “slugs” from arbitrary human-readable text.

A slug is a string restricted to characters that are safe within a URL
path segment: letters, digits and dashes, optionally pure ASCII. Deriving
one from a title or a name is mostly a matter of careful Unicode plumbing:
repairing the byte encoding, composing combining characters, approximating
diacritics with ASCII sequences, stripping punctuation, folding case and
truncating without ever splitting a multi-byte codepoint.

Clients wrap their input in a Slug value and either run the canonical
pipeline

   slug.FromString("Jürgen Müller, Köln").NormalizeASCII("german")
   // ⇒ "juergen-mueller-koeln"

or apply the individual transformations one by one. Every transformation
comes in two forms: a mutating one, which replaces the wrapped value and
returns the resulting string, and a non-mutating one (past participle),
which leaves the receiver untouched and returns a new independent Slug.

Construction never fails. Input that is not valid UTF-8 is re-interpreted
as CP1252/Latin-1 and repaired (see sub-package tidy), so that a Slug value
always wraps well-formed UTF-8.

Approximation of accented characters is driven by per-locale replacement
tables in sub-package table. Clients may register additional replacements
or wholly new locale tables at startup.

___________________________________________________________________________

BSD License

Copyright © 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package slug

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
