/*
Package ucd provides the bidi pairing properties of code-points, read from
the Unicode Character Database files BidiMirroring.txt and BidiBrackets.txt.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/bidimirror"
	"github.com/npillmayer/bidimirror/internal/testdata"
	"github.com/npillmayer/bidimirror/internal/ucdparse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Names of the UCD files.
const (
	MirroringFile = "BidiMirroring.txt"
	BracketsFile  = "BidiBrackets.txt"
)

type bracket struct {
	pair rune
	typ  bidimirror.BracketType
}

// Source holds the properties of BidiMirroring.txt and BidiBrackets.txt.
// It implements bidimirror.PropertySource and is safe for concurrent reads.
type Source struct {
	mirrors  map[rune]rune
	brackets map[rune]bracket
	mrange   [2]rune // code-point range of BidiMirroring.txt
	brange   [2]rune // code-point range of BidiBrackets.txt
	lists    map[bidimirror.BracketType]*arraylist.List
}

// Load reads a source from the content of BidiMirroring.txt and BidiBrackets.txt.
func Load(mirroring, brackets io.Reader) (*Source, error) {
	src := &Source{
		mirrors:  make(map[rune]rune, 512),
		brackets: make(map[rune]bracket, 128),
		lists: map[bidimirror.BracketType]*arraylist.List{
			bidimirror.OpenBracket:  arraylist.New(),
			bidimirror.CloseBracket: arraylist.New(),
		},
	}
	if err := src.loadMirroring(mirroring); err != nil {
		return nil, fmt.Errorf("reading %s: %w", MirroringFile, err)
	}
	if err := src.loadBrackets(brackets); err != nil {
		return nil, fmt.Errorf("reading %s: %w", BracketsFile, err)
	}
	if len(src.mirrors) == 0 && len(src.brackets) == 0 {
		return nil, errors.New("no pairing data found")
	}
	T().Infof("ucd: %d mirrors in %#U…%#U, %d brackets in %#U…%#U",
		len(src.mirrors), src.mrange[0], src.mrange[1],
		len(src.brackets), src.brange[0], src.brange[1])
	return src, nil
}

// LoadDir reads BidiMirroring.txt and BidiBrackets.txt from directory dir.
func LoadDir(dir string) (*Source, error) {
	mf, err := os.Open(filepath.Join(dir, MirroringFile))
	if err != nil {
		return nil, err
	}
	defer mf.Close()
	bf, err := os.Open(filepath.Join(dir, BracketsFile))
	if err != nil {
		return nil, err
	}
	defer bf.Close()
	return Load(mf, bf)
}

// Bundled returns a source for the excerpts of the UCD files which come
// with this module.
func Bundled() (*Source, error) {
	return Load(bytes.NewReader(testdata.BidiMirroring), bytes.NewReader(testdata.BidiBrackets))
}

func (src *Source) loadMirroring(r io.Reader) error {
	return ucdparse.Parse(r, func(token *ucdparse.Token) {
		from, to := token.Range()
		mirror, err := ucdparse.ParseHexRune(token.Field(1))
		if err != nil || from != to {
			T().Errorf("ucd: skipping line %d of %s", token.LineNo, MirroringFile)
			return
		}
		src.mirrors[from] = mirror
		extend(&src.mrange, len(src.mirrors) == 1, from)
	})
}

func (src *Source) loadBrackets(r io.Reader) error {
	return ucdparse.Parse(r, func(token *ucdparse.Token) {
		from, to := token.Range()
		pair, err := ucdparse.ParseHexRune(token.Field(1))
		typ, ok := bidimirror.BracketTypeFromUCD(token.Field(2))
		if err != nil || !ok || from != to {
			T().Errorf("ucd: skipping line %d of %s", token.LineNo, BracketsFile)
			return
		}
		src.brackets[from] = bracket{pair: pair, typ: typ}
		extend(&src.brange, len(src.brackets) == 1, from)
		if list := src.lists[typ]; list != nil {
			list.Add(from)
		}
	})
}

func extend(rng *[2]rune, isFirst bool, r rune) {
	if isFirst {
		rng[0], rng[1] = r, r
		return
	}
	if r < rng[0] {
		rng[0] = r
	}
	if r > rng[1] {
		rng[1] = r
	}
}

// Range is the union of the code-point ranges of both files.
func (src *Source) Range() (first, last rune) {
	switch {
	case len(src.brackets) == 0:
		return src.mrange[0], src.mrange[1]
	case len(src.mirrors) == 0:
		return src.brange[0], src.brange[1]
	}
	first, last = src.mrange[0], src.mrange[1]
	if src.brange[0] < first {
		first = src.brange[0]
	}
	if src.brange[1] > last {
		last = src.brange[1]
	}
	return first, last
}

// Mirror returns the Bidi_Mirroring_Glyph of r, or 0.
func (src *Source) Mirror(r rune) rune {
	return src.mirrors[r]
}

// PairedBracket returns the Bidi_Paired_Bracket of r, or 0.
func (src *Source) PairedBracket(r rune) rune {
	return src.brackets[r].pair
}

// BracketType returns the Bidi_Paired_Bracket_Type of r.
func (src *Source) BracketType(r rune) bidimirror.BracketType {
	return src.brackets[r].typ
}

// Brackets returns a range table of all code-points with bracket type bt.
// For NoBracket it returns an empty table.
func (src *Source) Brackets(bt bidimirror.BracketType) *unicode.RangeTable {
	list := src.lists[bt]
	if list == nil {
		return rangetable.New()
	}
	runes := make([]rune, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		runes = append(runes, it.Value().(rune))
	}
	return rangetable.New(runes...)
}

var _ bidimirror.PropertySource = (*Source)(nil)
