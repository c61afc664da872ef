package pairing

import (
	"fmt"

	"github.com/npillmayer/bidimirror"
)

// Entry is the encoded pairing byte of a single code-point.
//
//    bit   7 6 5 4 3 2 1 0
//          └┬┘ └────┬────┘
//     bracket type  difference index
//
type Entry uint8

const (
	indexBits = 6
	indexMask = 1<<indexBits - 1

	// MaxDeltas is the maximum number of entries of a DeltaTable, including
	// the reserved slot 0.
	MaxDeltas = 1 << indexBits
)

// The bracket type flags have to stay clear of the index bits.
var _ = [1]int{}[bidimirror.BracketTypeMask&indexMask]

// MakeEntry combines a difference index and a bracket type. It returns an
// *OverflowError if index does not fit into the index bits.
func MakeEntry(index int, bt bidimirror.BracketType) (Entry, error) {
	if index < 0 || index > indexMask {
		return 0, &OverflowError{Kind: IndexOverflow, Value: index, Limit: indexMask}
	}
	switch bt {
	case bidimirror.NoBracket, bidimirror.OpenBracket, bidimirror.CloseBracket:
	default:
		return 0, fmt.Errorf("invalid bracket type %s", bt)
	}
	return Entry(index) | Entry(bt), nil
}

// Index is the difference index of an entry.
func (e Entry) Index() int {
	return int(e & indexMask)
}

// BracketType is the bracket type of an entry.
func (e Entry) BracketType() bidimirror.BracketType {
	return bidimirror.BracketType(e & bidimirror.BracketTypeMask)
}

func (e Entry) String() string {
	return fmt.Sprintf("[%d|%s]", e.Index(), e.BracketType())
}
