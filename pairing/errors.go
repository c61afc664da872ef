package pairing

import (
	"errors"
	"fmt"
)

var (
	// ErrEncodingOverflow is the base error for values not fitting into
	// their slot of the encoded arrays.
	ErrEncodingOverflow = errors.New("encoding overflow")

	// ErrInconsistentData is the base error for code-points where mirror
	// and paired bracket disagree.
	ErrInconsistentData = errors.New("inconsistent pairing data")

	// ErrRangeViolation flags lookups outside of a table's code-point range.
	ErrRangeViolation = errors.New("code-point out of range")

	// ErrSegmentSize flags segment sizes outside of [MinSegmentSize…MaxSegmentSize].
	ErrSegmentSize = errors.New("segment size out of bounds")

	// ErrEmptyRange is returned for property sources with first > last.
	ErrEmptyRange = errors.New("empty code-point range")

	// ErrMismatch is returned by Table.Verify.
	ErrMismatch = errors.New("decoded properties differ from source")
)

// OverflowKind tells which slot of the encoding overflowed.
type OverflowKind int

// Kinds of encoding overflow.
const (
	IndexOverflow  OverflowKind = iota // difference index does not fit into the index bits
	DeltaOverflow                      // mirror difference does not fit into int16
	OffsetOverflow                     // segment offset does not fit into uint16
)

func (k OverflowKind) String() string {
	switch k {
	case IndexOverflow:
		return "difference index"
	case DeltaOverflow:
		return "mirror difference"
	case OffsetOverflow:
		return "segment offset"
	}
	return fmt.Sprintf("OverflowKind(%d)", int(k))
}

// OverflowError is an EncodingOverflow. It unwraps to ErrEncodingOverflow.
type OverflowError struct {
	Kind      OverflowKind
	CodePoint rune // code-point being encoded when the overflow happened
	Value     int  // the value which did not fit
	Limit     int  // largest value which would have fit
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("encoding overflow at %#U: %s %d exceeds %d",
		e.CodePoint, e.Kind, e.Value, e.Limit)
}

func (e *OverflowError) Unwrap() error { return ErrEncodingOverflow }

// InconsistencyError reports a code-point with a paired bracket different
// from its mirror. It unwraps to ErrInconsistentData.
type InconsistencyError struct {
	CodePoint     rune
	Mirror        rune
	PairedBracket rune
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent data at %#U: mirror %#U, paired bracket %#U",
		e.CodePoint, e.Mirror, e.PairedBracket)
}

func (e *InconsistencyError) Unwrap() error { return ErrInconsistentData }
