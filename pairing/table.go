package pairing

import (
	"fmt"

	"github.com/npillmayer/bidimirror"
)

// Table is the decoder for encoded pairing data. It is read-only and may be
// used concurrently.
type Table struct {
	First, Last rune
	SegmentSize int
	Differences []int16
	Data        []uint8
	Indexes     []uint16
}

// Properties are the pairing properties of a code-point.
type Properties struct {
	Mirror   rune // mirror glyph, valid if Mirrored is set
	Mirrored bool
	Bracket  bidimirror.BracketType
}

// Table flattens an encoding into the arrays of a lookup table.
func (enc *Encoding) Table() *Table {
	t := &Table{
		First:       enc.First,
		Last:        enc.Last,
		SegmentSize: enc.SegmentSize,
		Differences: enc.Deltas.Deltas(),
		Data:        make([]uint8, 0, enc.dataSize),
		Indexes:     make([]uint16, len(enc.Indexes)),
	}
	for _, seg := range enc.Segments {
		t.Data = append(t.Data, seg.Data...)
	}
	for i, inx := range enc.Indexes {
		t.Indexes[i] = uint16(enc.Segments[inx].Offset)
	}
	return t
}

// Covers is true if r is within the range of the table.
func (t *Table) Covers(r rune) bool {
	return r >= t.First && r <= t.Last
}

// Lookup decodes the pairing properties of r. It panics with an error
// wrapping ErrRangeViolation if r is not covered by the table.
func (t *Table) Lookup(r rune) Properties {
	if !t.Covers(r) {
		panic(fmt.Errorf("%w: %#U not in %#U…%#U", ErrRangeViolation, r, t.First, t.Last))
	}
	pos := int(r - t.First)
	base := int(t.Indexes[pos/t.SegmentSize])
	e := Entry(t.Data[base+pos%t.SegmentSize])
	p := Properties{Bracket: e.BracketType()}
	if delta := t.Differences[e.Index()]; delta != 0 {
		p.Mirror = r + rune(delta)
		p.Mirrored = true
	}
	return p
}

// --- Property source interface ---------------------------------------------

// A Table is itself a property source. Code-points outside of its range
// have neither mirror nor bracket type.

// Range returns the code-point range of the table.
func (t *Table) Range() (rune, rune) {
	return t.First, t.Last
}

// Mirror returns the mirror glyph of r, or 0.
func (t *Table) Mirror(r rune) rune {
	if !t.Covers(r) {
		return 0
	}
	if p := t.Lookup(r); p.Mirrored {
		return p.Mirror
	}
	return 0
}

// PairedBracket returns the paired bracket of r, or 0. The paired bracket of
// a bracket is its mirror.
func (t *Table) PairedBracket(r rune) rune {
	if !t.Covers(r) {
		return 0
	}
	if p := t.Lookup(r); p.Bracket != bidimirror.NoBracket && p.Mirrored {
		return p.Mirror
	}
	return 0
}

// BracketType returns the bracket type of r.
func (t *Table) BracketType(r rune) bidimirror.BracketType {
	if !t.Covers(r) {
		return bidimirror.NoBracket
	}
	return t.Lookup(r).Bracket
}

var _ bidimirror.PropertySource = (*Table)(nil)

// Verify compares the decoded properties of every code-point in the range of
// the table with the properties reported by src. It returns an error
// wrapping ErrMismatch for the first code-point which differs.
func (t *Table) Verify(src bidimirror.PropertySource) error {
	for r := t.First; r <= t.Last; r++ {
		p := t.Lookup(r)
		mirror := src.Mirror(r)
		if p.Mirrored != (mirror != 0) || (p.Mirrored && p.Mirror != mirror) {
			return fmt.Errorf("%w: mirror of %#U is %#U, decoded %#U", ErrMismatch, r, mirror, p.Mirror)
		}
		if bt := src.BracketType(r); p.Bracket != bt {
			return fmt.Errorf("%w: bracket type of %#U is %s, decoded %s", ErrMismatch, r, bt, p.Bracket)
		}
	}
	return nil
}
