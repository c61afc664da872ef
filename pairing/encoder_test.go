package pairing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/bidimirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParens(t *testing.T) {
	defer redirectTracing(t)()
	//
	enc, err := Encode(parens(), 32)
	require.NoError(t, err)
	assert.Equal(t, []int16{0, 1, -1}, enc.Deltas.Deltas())
	require.Len(t, enc.Segments, 2, "expected a zero segment and a segment with brackets")
	assert.Equal(t, []int{0, 1, 0, 0}, enc.Indexes)
	assert.Equal(t, 0, enc.Segments[0].Offset)
	assert.Equal(t, 32, enc.Segments[1].Offset)
	assert.Equal(t, 64+3*2+4*2, enc.Size())
	//
	seg := enc.Segments[1].Data
	open, cls := Entry(seg['('-0x20]), Entry(seg[')'-0x20])
	assert.NotEqual(t, open, cls)
	assert.Equal(t, bidimirror.OpenBracket, open.BracketType())
	assert.Equal(t, bidimirror.CloseBracket, cls.BracketType())
	assert.Equal(t, 1, open.Index())
	assert.Equal(t, 2, cls.Index())
	//
	table := enc.Table()
	p := table.Lookup('(')
	assert.Equal(t, Properties{Mirror: ')', Mirrored: true, Bracket: bidimirror.OpenBracket}, p)
	p = table.Lookup(')')
	assert.Equal(t, Properties{Mirror: '(', Mirrored: true, Bracket: bidimirror.CloseBracket}, p)
	p = table.Lookup('a')
	assert.False(t, p.Mirrored)
	assert.Equal(t, bidimirror.NoBracket, p.Bracket)
}

func TestEncodeBoundaries(t *testing.T) {
	defer redirectTracing(t)()
	//
	src := newMapSource(0x10, 0x74).mirror(0x10, 0x74) // 101 code-points
	enc, err := Encode(src, 32)
	require.NoError(t, err)
	require.Len(t, enc.Indexes, 4)
	last := enc.Segments[enc.Indexes[3]]
	assert.Len(t, last.Data, 5, "final segment should be short")
	table := enc.Table()
	assert.Equal(t, rune(0x74), table.Lookup(0x10).Mirror)
	assert.Equal(t, rune(0x10), table.Lookup(0x74).Mirror)
	require.NoError(t, table.Verify(src))
}

func TestEncodeLastCodePointAlone(t *testing.T) {
	defer redirectTracing(t)()
	//
	// range length − 1 is a multiple of the segment size
	src := newMapSource(0, 0x40).bracket(0x3f, 0x40)
	enc, err := Encode(src, 32)
	require.NoError(t, err)
	require.Len(t, enc.Indexes, 3)
	assert.Len(t, enc.Segments[enc.Indexes[2]].Data, 1)
	p := enc.Table().Lookup(0x40)
	assert.Equal(t, rune(0x3f), p.Mirror)
	assert.Equal(t, bidimirror.CloseBracket, p.Bracket)
}

func TestEncodeDedup(t *testing.T) {
	defer redirectTracing(t)()
	//
	src := scattered()
	enc, err := Encode(src, 64)
	require.NoError(t, err)
	for i := 0; i < len(enc.Segments); i++ {
		for j := i + 1; j < len(enc.Segments); j++ {
			assert.False(t, bytes.Equal(enc.Segments[i].Data, enc.Segments[j].Data),
				"segments %d and %d are identical", i, j)
		}
	}
	table := enc.Table()
	for pos, inx := range enc.Indexes {
		seg := enc.Segments[inx]
		start := int(enc.SegmentStart(pos) - enc.First)
		for k := range seg.Data {
			if start+k > int(enc.Last-enc.First) {
				break
			}
			b := table.Data[int(table.Indexes[pos])+k]
			assert.Equal(t, seg.Data[k], b)
		}
	}
	require.NoError(t, table.Verify(src))
	assert.Equal(t, int16(0), table.Differences[0])
}

func TestEncodeSegmentSizeBounds(t *testing.T) {
	defer redirectTracing(t)()
	//
	_, err := Encode(parens(), MinSegmentSize-1)
	assert.True(t, errors.Is(err, ErrSegmentSize))
	_, err = Encode(parens(), MaxSegmentSize+1)
	assert.True(t, errors.Is(err, ErrSegmentSize))
	_, err = Encode(newMapSource(10, 9), 32)
	assert.True(t, errors.Is(err, ErrEmptyRange))
	assert.Equal(t, 32, ClampSegmentSize(1))
	assert.Equal(t, 512, ClampSegmentSize(4096))
	assert.Equal(t, 100, ClampSegmentSize(100))
}

func TestEncodeIndexOverflow(t *testing.T) {
	defer redirectTracing(t)()
	//
	src := newMapSource(0, 0x3ff)
	for i := 0; i < MaxDeltas-1; i++ { // 63 distinct differences fit
		r := rune(i)
		src.mirrors[r] = r + rune(i+1)
	}
	enc, err := Encode(src, 32)
	require.NoError(t, err)
	assert.Equal(t, MaxDeltas, enc.Deltas.Len())
	//
	src.mirrors[0x200] = 0x200 + MaxDeltas
	_, err = Encode(src, 32)
	require.Error(t, err)
	var ovfl *OverflowError
	require.True(t, errors.As(err, &ovfl))
	assert.Equal(t, IndexOverflow, ovfl.Kind)
	assert.Equal(t, rune(0x200), ovfl.CodePoint)
	assert.True(t, errors.Is(err, ErrEncodingOverflow))
}

func TestEncodeDeltaOverflow(t *testing.T) {
	defer redirectTracing(t)()
	//
	src := newMapSource(0, 0x7f)
	src.mirrors[0x10] = 0x10010
	_, err := Encode(src, 32)
	var ovfl *OverflowError
	require.True(t, errors.As(err, &ovfl))
	assert.Equal(t, DeltaOverflow, ovfl.Kind)
	assert.Equal(t, 0x10000, ovfl.Value)
}

func TestEncodeInconsistency(t *testing.T) {
	defer redirectTracing(t)()
	//
	src := parens()
	src.pairs['('] = ']'
	enc, err := Encode(src, 32)
	require.NoError(t, err)
	require.Len(t, enc.Inconsistencies, 1)
	assert.Equal(t, rune('('), enc.Inconsistencies[0].CodePoint)
	assert.Equal(t, rune(')'), enc.Table().Lookup('(').Mirror, "mirror should win")
	//
	_, err = Encode(src, 32, Strict(true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentData))
	var inc *InconsistencyError
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, rune(']'), inc.PairedBracket)
}

func TestStats(t *testing.T) {
	defer redirectTracing(t)()
	//
	enc, err := Encode(parens(), 32)
	require.NoError(t, err)
	stats := enc.Stats()
	assert.Equal(t, Stats{
		SegmentSize:      32,
		SegmentCount:     4,
		DistinctSegments: 2,
		DeltaCount:       3,
		DataBytes:        64,
		TotalBytes:       78,
	}, stats)
	t.Logf("stats: %s", stats)
}
