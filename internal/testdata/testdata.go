// Package testdata holds excerpts of UCD files, used for tests and as
// default input of the generator.
package testdata

import _ "embed" // for UCD file excerpts

// BidiMirroring is an excerpt of UCD file BidiMirroring.txt.
//go:embed BidiMirroring.txt
var BidiMirroring []byte

// BidiBrackets is an excerpt of UCD file BidiBrackets.txt.
//go:embed BidiBrackets.txt
var BidiBrackets []byte
