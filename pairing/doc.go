/*
Package pairing compresses the bidi mirroring and bracket pairing properties
of Unicode code-points into three static arrays, and decodes them again.

Encoding

The covered code-point range is cut into segments of fixed size. Every
code-point is encoded into a single byte: the upper two bits hold its
bracket type, the lower six bits an index into a table of mirror
differences (mirror − code-point). Index 0 of that table is always the
difference 0, i.e. "no mirror". Segments with identical content are stored
only once; an index array maps segment positions to stored segments.

The segment size is not fixed in advance. Optimize tries every size from
32 to 512 and keeps the one producing the smallest total size. Ties are
won by the smaller segment size.

Decoding

A Table holds the three arrays, the segment size and the covered range.
Lookup of a code-point is

   pos  := r − first
   base := indexes[pos / segmentSize]
   b    := data[base + pos % segmentSize]
   diff := differences[b & 0x3F],  bracket type := b & 0xC0

which does not depend on the size of the range.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pairing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Bounds for segment sizes.
const (
	MinSegmentSize = 32
	MaxSegmentSize = 512
)

// ClampSegmentSize forces a segment size into [MinSegmentSize…MaxSegmentSize].
func ClampSegmentSize(size int) int {
	if size < MinSegmentSize {
		return MinSegmentSize
	}
	if size > MaxSegmentSize {
		return MaxSegmentSize
	}
	return size
}
