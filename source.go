package bidimirror

import "fmt"

// BracketType is the Bidi_Paired_Bracket_Type of a code-point, as defined
// in UAX#9 and listed in UCD file BidiBrackets.txt.
type BracketType uint8

// Bidi_Paired_Bracket_Type values. The numeric values are the flag bits used
// in encoded pairing data, see package pairing.
const (
	NoBracket    BracketType = 0x00 // Bidi_Paired_Bracket_Type=None
	OpenBracket  BracketType = 0x40 // Bidi_Paired_Bracket_Type=Open
	CloseBracket BracketType = 0x80 // Bidi_Paired_Bracket_Type=Close
)

// BracketTypeMask masks the bracket type bits of an encoded pairing byte.
const BracketTypeMask = 0xC0

func (bt BracketType) String() string {
	switch bt {
	case NoBracket:
		return "none"
	case OpenBracket:
		return "open"
	case CloseBracket:
		return "close"
	}
	return fmt.Sprintf("BracketType(%#02x)", uint8(bt))
}

// BracketTypeFromUCD maps the short value names of BidiBrackets.txt
// ("o", "c", "n") to a bracket type.
func BracketTypeFromUCD(s string) (BracketType, bool) {
	switch s {
	case "o":
		return OpenBracket, true
	case "c":
		return CloseBracket, true
	case "n", "":
		return NoBracket, true
	}
	return NoBracket, false
}

// PropertySource provides the mirroring and bracket pairing properties of
// code-points over a contiguous range [first…last].
//
// Implementations return 0 for code-points without a mirror or paired bracket.
type PropertySource interface {
	Range() (first, last rune)
	Mirror(r rune) rune
	PairedBracket(r rune) rune
	BracketType(r rune) BracketType
}
