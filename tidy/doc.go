/*
Package tidy repairs mis-encoded byte sequences into well-formed UTF-8.

A frequent source of garbled text is single-byte Latin-1 or Windows
CP1252 content that has been pasted or streamed into a system expecting
UTF-8. Such input is invalid as UTF-8 but perfectly decodable with the
legacy tables. Package tidy is the safety net at the bottom of the slug
pipeline: whatever bytes come in, valid UTF-8 comes out, and it never
fails.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tidy

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
