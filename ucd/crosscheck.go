package ucd

import (
	"fmt"

	"github.com/npillmayer/bidimirror"
	"golang.org/x/text/unicode/bidi"
)

// Discrepancy is a code-point where a property source and the bidi tables
// of golang.org/x/text disagree about the bracket type.
type Discrepancy struct {
	CodePoint rune
	Have      bidimirror.BracketType // bracket type of the property source
	XText     bidimirror.BracketType // bracket type according to x/text
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%#U is %s bracket, x/text says %s", d.CodePoint, d.Have, d.XText)
}

// XTextBracketType returns the bracket type of r according to package
// golang.org/x/text/unicode/bidi.
func XTextBracketType(r rune) bidimirror.BracketType {
	props, sz := bidi.LookupRune(r)
	if sz == 0 || !props.IsBracket() {
		return bidimirror.NoBracket
	}
	if props.IsOpeningBracket() {
		return bidimirror.OpenBracket
	}
	return bidimirror.CloseBracket
}

// CrossCheck compares the bracket types of a property source with the
// ones of golang.org/x/text/unicode/bidi, for every code-point in the range
// of src. x/text may follow a different Unicode version than src, therefore
// discrepancies are reported, not treated as errors.
func CrossCheck(src bidimirror.PropertySource) []Discrepancy {
	var ds []Discrepancy
	first, last := src.Range()
	for r := first; r <= last; r++ {
		have, xt := src.BracketType(r), XTextBracketType(r)
		if have != xt {
			d := Discrepancy{CodePoint: r, Have: have, XText: xt}
			T().Debugf("ucd: %s", d)
			ds = append(ds, d)
		}
	}
	T().Infof("ucd: %d bracket type discrepancies with x/text (Unicode %s)", len(ds), bidi.UnicodeVersion)
	return ds
}
