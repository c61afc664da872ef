/*
Package bidimirror is about the mirroring and bracket pairing properties of
the Unicode Bidirectional Algorithm (UAX#9).

Description

From UAX#9:

The Bidi_Mirrored property is used to determine whether a given character
should be rendered mirrored in right-to-left text. [...] Paired brackets
are identified by the Bidi_Paired_Bracket and Bidi_Paired_Bracket_Type
properties.

A bidi engine needs two facts per code-point during bracket pair resolution
(BD16, N0) and character mirroring (L4): the mirror glyph of a code-point
and whether it is an opening or closing paired bracket. The data comes from
UCD files BidiMirroring.txt and BidiBrackets.txt. Both cover only a few hundred
code-points, sprinkled over a range of tens of thousands.

Contents

Sub-package pairing compresses these two properties into three small static
arrays and decodes them in constant time. Sub-package ucd reads the
properties from UCD files, sub-package bidi contains the consumer side:
bracket pair identification and mirroring on top of the lookup tables.
Generated tables are written by the generator in pairing/internal/generator.

Base package bidimirror defines the vocabulary shared between them: type
BracketType and interface PropertySource.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package bidimirror

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the version of the UCD files the bundled test data
// has been taken from.
const UnicodeVersion = "13.0.0"
