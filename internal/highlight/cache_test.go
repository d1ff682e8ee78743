//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package highlight

import (
	"testing"

	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
)

// countingTokenizer records how many times it was invoked, so tests can
// assert the cache only recomputes on a miss, and honors the carried-in
// multi-line state rather than recomputing it from scratch.
type countingTokenizer struct {
	calls int
}

func (c *countingTokenizer) tokenize(line []byte, prevEndsInMultiline bool) ([]types.HighlightSegment, bool) {
	c.calls++
	if prevEndsInMultiline {
		return []types.HighlightSegment{{StartCol: 0, EndColExclusive: len(line), Kind: types.HighlightComment}}, len(line) == 0 || line[len(line)-1] != '!'
	}
	if len(line) > 0 && line[0] == '#' {
		return []types.HighlightSegment{{StartCol: 0, EndColExclusive: len(line), Kind: types.HighlightKeyword}}, true
	}
	return []types.HighlightSegment{{StartCol: 0, EndColExclusive: len(line), Kind: types.HighlightNormal}}, false
}

// fresh replays Tokenize independently for rows 0..r, the spec's
// "fresh-tokenise" reference against which Lookup's lazily cached result
// must agree.
func fresh(rows [][]byte, r int) []types.HighlightSegment {
	counting := &countingTokenizer{}
	prevMultiline := false
	var segments []types.HighlightSegment
	for i := 0; i <= r; i++ {
		segments, prevMultiline = counting.tokenize(rows[i], prevMultiline)
	}
	return segments
}

func TestLookupComputesOnMissAndCachesOnHit(t *testing.T) {
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, 1)

	first := c.Lookup(0, []byte("hello"))
	assert.Equal(t, 1, counting.calls)
	second := c.Lookup(0, []byte("hello"))
	assert.Equal(t, 1, counting.calls, "a second Lookup of a valid row must not retokenize")
	assert.Equal(t, first, second)
}

func TestLookupMatchesFreshTokeniseAcrossRows(t *testing.T) {
	rows := [][]byte{[]byte("#start"), []byte("carried"), []byte("carried!"), []byte("back to normal")}
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, len(rows))

	for r := range rows {
		got := c.Lookup(r, rows[r])
		assert.Equal(t, fresh(rows, r), got, "row %d must match fresh-tokenise(rows 0..%d)", r, r)
	}
}

func TestLookupOutOfOrderStillCarriesMultilineStateWithLineFetcher(t *testing.T) {
	rows := [][]byte{[]byte("#start"), []byte("still in"), []byte("still in too")}
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, len(rows))
	c.SetLineFetcher(func(row int) []byte { return rows[row] })

	// Looking up row 2 first, with no prior Lookup of rows 0 or 1, must
	// still walk back and resolve them so the multi-line carry is
	// correct rather than defaulting to false.
	got := c.Lookup(2, rows[2])
	assert.Equal(t, fresh(rows, 2), got)
}

func TestLookupOutOfOrderWithoutLineFetcherTrustsCallerOrder(t *testing.T) {
	rows := [][]byte{[]byte("#start"), []byte("still in"), []byte("still in too")}
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, len(rows))

	// With no LineFetcher attached, Lookup has no way to recover row
	// 1's bytes on its own, so it falls back to its original contract:
	// an unresolved predecessor's multi-line state reads as false.
	got := c.Lookup(2, rows[2])
	assert.Equal(t, []types.HighlightSegment{{StartCol: 0, EndColExclusive: len(rows[2]), Kind: types.HighlightNormal}}, got)
}

func TestInvalidateFromDropsDownstreamRowsOnly(t *testing.T) {
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, 3)
	c.Lookup(0, []byte("a"))
	c.Lookup(1, []byte("b"))
	c.Lookup(2, []byte("c"))
	assert.Equal(t, 3, counting.calls)

	c.InvalidateFrom(1)
	c.Lookup(0, []byte("a"))
	assert.Equal(t, 3, counting.calls, "row 0 precedes the invalidated range and must stay cached")

	c.Lookup(1, []byte("b"))
	assert.Equal(t, 4, counting.calls, "row 1 was invalidated and must retokenize")
}

func TestResizePreservesValidRowsAndDropsDisplaced(t *testing.T) {
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, 3)
	c.Lookup(0, []byte("a"))
	c.Lookup(1, []byte("b"))
	c.Lookup(2, []byte("c"))

	c.Resize(3, 2)
	assert.Equal(t, 2, c.Len())
	c.Lookup(0, []byte("a"))
	assert.Equal(t, 3, counting.calls, "row 0 must still be cached after shrinking")

	c.Resize(2, 4)
	assert.Equal(t, 4, c.Len())
	assert.False(t, c.EndsInMultiline(3), "a newly grown row has no cached multi-line state yet")
}

func TestSetTokenizerInvalidatesEveryRow(t *testing.T) {
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, 2)
	c.Lookup(0, []byte("a"))
	c.Lookup(1, []byte("b"))
	assert.Equal(t, 2, counting.calls)

	other := &countingTokenizer{}
	c.SetTokenizer(other.tokenize)
	c.Lookup(0, []byte("a"))
	c.Lookup(1, []byte("b"))
	assert.Equal(t, 2, other.calls, "replacing the tokenizer must force every row to recompute")
}

func TestLookupOutOfRangeReturnsNil(t *testing.T) {
	counting := &countingTokenizer{}
	c := NewCache(counting.tokenize)
	c.Resize(0, 1)
	assert.Nil(t, c.Lookup(-1, []byte("a")))
	assert.Nil(t, c.Lookup(5, []byte("a")))
}
