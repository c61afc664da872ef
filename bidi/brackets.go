package bidi

import (
	"context"
	"sort"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/bidimirror"
)

// BD16MaxNesting is the maximum stack depth for rule BD16 as defined in UAX#9.
const BD16MaxNesting = 63

// Lookup provides pairing properties of code-points, as pairing.Table does.
type Lookup interface {
	Mirror(r rune) rune
	BracketType(r rune) bidimirror.BracketType
}

// --- Brackets and bracket stack --------------------------------------------

// UAX#9 identifies bracket pairs within an isolating run sequence like this:
//
// * Create a fixed-size stack for exactly 63 elements each consisting of a bracket
//   character and a text position. Initialize it to empty.
// * Create a list for elements each consisting of two text positions, one for an opening
//   paired bracket and the other for a corresponding closing paired bracket. Initialize
//   it to empty.
// * Inspect each character in the isolating run sequence in logical order.
//   - If an opening paired bracket is found and there is room in the stack, push its
//     Bidi_Paired_Bracket property value and its text position onto the stack.
//   - If an opening paired bracket is found and there is no room in the stack, stop
//     processing BD16 for the remainder of the isolating run sequence.
//   - If a closing paired bracket is found, do the following:
// 	   1. Declare a variable that holds a reference to the current stack element and
//        initialize it with the top element of the stack.
// 	   2. Compare the closing paired bracket being inspected or its canonical equivalent
//        to the bracket in the current stack element.
// 	   3. If the values match, meaning the two characters form a bracket pair, then
// 	      . Append the text position in the current stack element together with the
//          text position of the closing paired bracket to the list.
// 	      . Pop the stack through the current stack element inclusively.
// 	   4. Else, if the current stack element is not at the bottom of the stack, advance
//        it to the next element deeper in the stack and go back to step 2.
// 	   5. Else, continue with inspecting the next character without popping the stack.
// * Sort the list of pairs of text positions in ascending order based on the text position of the opening paired bracket.
//
// Examples of bracket pairs:
//
// 	Text                Pairings
// 	1 2 3 4 5 6 7 8
// 	a ) b ( c           None
// 	a ( b ] c           None
// 	a ( b ) c           2-4
// 	a ( b [ c ) d ]     2-6
// 	a ( b ] c ) d       2-6
// 	a ( b ) c ) d       2-4
// 	a ( b ( c ) d       4-6
// 	a ( b ( c ) d )     2-8, 4-6
// 	a ( b { c } d )     2-8, 4-6

// Pair is a bracket pair, given as text positions of the opening and the
// closing bracket.
type Pair struct {
	Open, Close int
}

// This is the stack to perform the algorithm described above
type bracketStack []brktpos
type brktpos struct {
	pos     int  // position of an opening bracket
	closing rune // its Bidi_Paired_Bracket, canonicalized
}

// We use a special class to handle discovery of bracket pairs.
type bracketPairHandler struct {
	stack    bracketStack
	pairings []Pair
}

// Bracket pair handlers are short-lived objects. To avoid multiple allocation
// of their stacks we will pool them.
type handlerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalHandlerPool *handlerPool

func init() {
	globalHandlerPool = &handlerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			h := &bracketPairHandler{
				stack:    make(bracketStack, 0, BD16MaxNesting),
				pairings: make([]Pair, 0, 8),
			}
			return h, nil
		})
	globalHandlerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalHandlerPool.opool = pool.NewObjectPool(globalHandlerPool.ctx, factory, config)
}

func borrowHandler() *bracketPairHandler {
	o, err := globalHandlerPool.opool.BorrowObject(globalHandlerPool.ctx)
	if err != nil {
		T().Errorf("bidi: cannot borrow bracket pair handler: %v", err)
		return &bracketPairHandler{
			stack:    make(bracketStack, 0, BD16MaxNesting),
			pairings: make([]Pair, 0, 8),
		}
	}
	return o.(*bracketPairHandler)
}

// Clears the handler and puts it back into the pool.
func (bph *bracketPairHandler) releaseIntoPool() {
	bph.stack = bph.stack[:0]
	bph.pairings = bph.pairings[:0]
	_ = globalHandlerPool.opool.ReturnObject(globalHandlerPool.ctx, bph)
}

// FindBracketPairs performs rule BD16 on an isolating run sequence. The
// pairs are sorted by the position of the opening bracket.
func FindBracketPairs(text []rune, lookup Lookup) []Pair {
	bph := borrowHandler()
	defer bph.releaseIntoPool()
	for pos, r := range text {
		switch lookup.BracketType(r) {
		case bidimirror.OpenBracket:
			if len(bph.stack) >= BD16MaxNesting {
				T().Debugf("bidi: BD16 stack overflow at position %d", pos)
				return bph.result()
			}
			closing := lookup.Mirror(r)
			bph.stack = append(bph.stack, brktpos{pos: pos, closing: canonical(closing)})
		case bidimirror.CloseBracket:
			var open brktpos
			var found bool
			if found, open, bph.stack = bph.stack.popWith(canonical(r)); found {
				bph.pairings = append(bph.pairings, Pair{Open: open.pos, Close: pos})
			}
		}
	}
	return bph.result()
}

func (bph *bracketPairHandler) result() []Pair {
	pairs := make([]Pair, len(bph.pairings))
	copy(pairs, bph.pairings)
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Open < pairs[j].Open
	})
	return pairs
}

// popWith checks for an opening bracket on the bracket stack matching a given
// closing bracket. It performs steps 1–5 from the algorithm described above.
func (bs bracketStack) popWith(closing rune) (bool, brktpos, bracketStack) {
	for i := len(bs) - 1; i >= 0; i-- { // start at TOS, possibly skip unclosed opening brackets
		if bs[i].closing == closing {
			return true, bs[i], bs[:i]
		}
	}
	return false, brktpos{}, bs
}

// canonical maps brackets to their canonical equivalents. The only brackets
// with a canonical decomposition are the angle brackets U+2329 and U+232A.
func canonical(r rune) rune {
	switch r {
	case 0x2329:
		return 0x3008
	case 0x232A:
		return 0x3009
	}
	return r
}
