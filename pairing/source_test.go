package pairing

import (
	"testing"

	"github.com/npillmayer/bidimirror"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// mapSource is a property source for tests.
type mapSource struct {
	first, last rune
	mirrors     map[rune]rune
	pairs       map[rune]rune
	types       map[rune]bidimirror.BracketType
}

func newMapSource(first, last rune) *mapSource {
	return &mapSource{
		first:   first,
		last:    last,
		mirrors: make(map[rune]rune),
		pairs:   make(map[rune]rune),
		types:   make(map[rune]bidimirror.BracketType),
	}
}

// bracket enters a bracket pair o, c with mirrors.
func (src *mapSource) bracket(o, c rune) *mapSource {
	src.mirrors[o], src.mirrors[c] = c, o
	src.pairs[o], src.pairs[c] = c, o
	src.types[o], src.types[c] = bidimirror.OpenBracket, bidimirror.CloseBracket
	return src
}

// mirror enters a mirror pair a, b which are not brackets.
func (src *mapSource) mirror(a, b rune) *mapSource {
	src.mirrors[a], src.mirrors[b] = b, a
	return src
}

func (src *mapSource) Range() (rune, rune)                       { return src.first, src.last }
func (src *mapSource) Mirror(r rune) rune                        { return src.mirrors[r] }
func (src *mapSource) PairedBracket(r rune) rune                 { return src.pairs[r] }
func (src *mapSource) BracketType(r rune) bidimirror.BracketType { return src.types[r] }

// parens covers U+0000…U+007F with just '(' and ')'.
func parens() *mapSource {
	return newMapSource(0, 0x7f).bracket('(', ')')
}

// scattered has brackets and mirrors sprinkled over U+0000…U+0FFF.
func scattered() *mapSource {
	src := newMapSource(0, 0xfff)
	src.bracket('(', ')').bracket('[', ']').bracket('{', '}')
	src.mirror('<', '>').mirror(0xab, 0xbb)
	src.bracket(0x0f3a, 0x0f3b).bracket(0x0f3c, 0x0f3d)
	for r := rune(0x200); r < 0x240; r += 4 {
		src.bracket(r, r+1)
	}
	for r := rune(0x800); r < 0x810; r += 2 {
		src.mirror(r, r+0x100)
	}
	return src
}

func redirectTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}
