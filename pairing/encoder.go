package pairing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/npillmayer/bidimirror"
)

// Segment is a distinct run of encoded bytes, stored at Offset within the
// flattened data array.
type Segment struct {
	Offset int
	Data   []byte
}

// Name is the symbolic name of the segment's offset in generated code.
func (seg *Segment) Name(prefix string) string {
	return fmt.Sprintf("%s_%03X", prefix, seg.Offset)
}

// Encoding is the result of encoding a property source with a fixed
// segment size.
type Encoding struct {
	SegmentSize     int
	First, Last     rune                  // covered code-point range
	Deltas          *DeltaTable           // mirror differences
	Segments        []*Segment            // distinct segments in order of registration
	Indexes         []int                 // segment position → index into Segments
	Inconsistencies []*InconsistencyError // diagnostics, see Strict
	dataSize        int
}

// DataSize is the number of bytes of all distinct segments.
func (enc *Encoding) DataSize() int {
	return enc.dataSize
}

// Size is the total number of bytes of the three arrays: 1 byte per data
// entry, 2 bytes per difference and per index.
func (enc *Encoding) Size() int {
	return enc.dataSize + enc.Deltas.Len()*2 + len(enc.Indexes)*2
}

// SegmentStart returns the first code-point of segment position i.
func (enc *Encoding) SegmentStart(i int) rune {
	return enc.First + rune(i*enc.SegmentSize)
}

// Encode encodes the properties of src using segments of size segmentSize.
//
// Inconsistencies between mirror and paired bracket are reported and
// collected, unless option Strict is set, which makes them fatal. An
// *OverflowError is returned if the data does not fit the encoding.
func Encode(src bidimirror.PropertySource, segmentSize int, opts ...Option) (*Encoding, error) {
	cfg := makeConfig(opts)
	enc, err := encode(src, segmentSize, cfg)
	if err != nil {
		T().Errorf("pairing: %v", err)
		return nil, err
	}
	for _, inc := range enc.Inconsistencies {
		T().Errorf("pairing: %v", inc)
	}
	return enc, nil
}

// encode is a single trial. It allocates all of its state and does not log,
// as the optimizer will call it for hundreds of segment sizes.
func encode(src bidimirror.PropertySource, segmentSize int, cfg config) (*Encoding, error) {
	if segmentSize < MinSegmentSize || segmentSize > MaxSegmentSize {
		return nil, fmt.Errorf("%w: %d", ErrSegmentSize, segmentSize)
	}
	first, last := src.Range()
	if first > last {
		return nil, fmt.Errorf("%w: %#U > %#U", ErrEmptyRange, first, last)
	}
	rangeLen := int(last-first) + 1
	count := (rangeLen + segmentSize - 1) / segmentSize
	enc := &Encoding{
		SegmentSize: segmentSize,
		First:       first,
		Last:        last,
		Deltas:      NewDeltaTable(),
		Segments:    make([]*Segment, 0, count),
		Indexes:     make([]int, 0, count),
	}
	for i := 0; i < count; i++ {
		start := enc.SegmentStart(i)
		end := start + rune(segmentSize) - 1
		if end > last {
			end = last
		}
		candidate := make([]byte, 0, int(end-start)+1)
		for r := start; r <= end; r++ {
			e, err := enc.encodeCodePoint(src, r, cfg)
			if err != nil {
				return nil, err
			}
			candidate = append(candidate, byte(e))
		}
		inx, err := enc.register(candidate)
		if err != nil {
			return nil, err
		}
		enc.Indexes = append(enc.Indexes, inx)
	}
	return enc, nil
}

func (enc *Encoding) encodeCodePoint(src bidimirror.PropertySource, r rune, cfg config) (Entry, error) {
	mirror := src.Mirror(r)
	if bracket := src.PairedBracket(r); bracket != 0 && mirror != bracket {
		inc := &InconsistencyError{CodePoint: r, Mirror: mirror, PairedBracket: bracket}
		if cfg.strict {
			return 0, inc
		}
		enc.Inconsistencies = append(enc.Inconsistencies, inc)
	}
	var delta int
	if mirror != 0 {
		delta = int(mirror) - int(r)
	}
	if delta < math.MinInt16 || delta > math.MaxInt16 {
		return 0, &OverflowError{Kind: DeltaOverflow, CodePoint: r, Value: delta, Limit: math.MaxInt16}
	}
	e, err := MakeEntry(enc.Deltas.Intern(int16(delta)), src.BracketType(r))
	if err != nil {
		if ovfl, ok := err.(*OverflowError); ok {
			ovfl.CodePoint = r
		}
		return 0, err
	}
	return e, nil
}

// register finds the registry entry for a segment's content, registering it
// if it is new. If more than one entry matches, the last one wins.
func (enc *Encoding) register(candidate []byte) (int, error) {
	match := -1
	for j, seg := range enc.Segments {
		if bytes.Equal(seg.Data, candidate) {
			match = j
		}
	}
	if match >= 0 {
		return match, nil
	}
	if enc.dataSize > math.MaxUint16 {
		return -1, &OverflowError{
			Kind:      OffsetOverflow,
			CodePoint: enc.SegmentStart(len(enc.Indexes)),
			Value:     enc.dataSize,
			Limit:     math.MaxUint16,
		}
	}
	enc.Segments = append(enc.Segments, &Segment{Offset: enc.dataSize, Data: candidate})
	enc.dataSize += len(candidate)
	return len(enc.Segments) - 1, nil
}

// Stats summarizes an encoding.
type Stats struct {
	SegmentSize      int
	SegmentCount     int
	DistinctSegments int
	DeltaCount       int
	DataBytes        int
	TotalBytes       int
	Inconsistencies  int
}

// Stats returns the figures of an encoding.
func (enc *Encoding) Stats() Stats {
	return Stats{
		SegmentSize:      enc.SegmentSize,
		SegmentCount:     len(enc.Indexes),
		DistinctSegments: len(enc.Segments),
		DeltaCount:       enc.Deltas.Len(),
		DataBytes:        enc.dataSize,
		TotalBytes:       enc.Size(),
		Inconsistencies:  len(enc.Inconsistencies),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("segment size %d: %d segments (%d distinct), %d differences, %d data bytes, %d bytes total",
		s.SegmentSize, s.SegmentCount, s.DistinctSegments, s.DeltaCount, s.DataBytes, s.TotalBytes)
}
