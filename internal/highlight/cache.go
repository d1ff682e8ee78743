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

// Package highlight implements the per-row highlight cache described in
// the editor's component design: a pure accelerator over a tokenizer,
// aligned 1:1 with buffer rows, that never changes the tokenizer's
// semantics — only how often it runs.
package highlight

import "github.com/gottx/gottx/internal/types"

// TokenizeFunc tokenizes one line given the multi-line state carried in
// from the previous row, returning the line's segments and the
// multi-line state to carry to the next row.
type TokenizeFunc func(line []byte, prevEndsInMultiline bool) (segments []types.HighlightSegment, endsInMultiline bool)

// LineFetcher retrieves the current raw bytes of a row by index. Lookup
// uses it to recover an earlier, not-yet-cached row's content when it
// needs to walk backward to establish the correct multi-line carry-in
// state for the requested row.
type LineFetcher func(row int) []byte

// Cache holds lazily-computed, per-row highlight segments and the
// multi-line-state vector tokenization depends on.
type Cache struct {
	tokenize  TokenizeFunc
	fetchLine LineFetcher
	segments  [][]types.HighlightSegment
	multiline []bool
	valid     []bool
}

// NewCache constructs a cache with the given tokenizer and no rows yet
// allocated. Call Resize before first use.
func NewCache(tokenize TokenizeFunc) *Cache {
	return &Cache{tokenize: tokenize}
}

// SetTokenizer replaces the tokenizer (e.g. when a buffer's syntax
// definition changes) and invalidates every cached row, since a new
// tokenizer may classify existing bytes differently.
func (c *Cache) SetTokenizer(fn TokenizeFunc) {
	c.tokenize = fn
	c.InvalidateFrom(0)
}

// SetLineFetcher attaches the callback Lookup uses to fetch an earlier
// row's bytes when it isn't cached yet. Without one, Lookup falls back
// to treating an unresolved predecessor's multi-line state as false,
// which only gives fresh-tokenise-equivalent results when rows are
// looked up in increasing order (e.g. rendering from row 0). With one,
// Lookup holds for any row regardless of lookup order, matching the
// cache's own tokenizer-agnostic invariant: lookup(r) always equals
// tokenizing rows 0..r from scratch.
func (c *Cache) SetLineFetcher(fn LineFetcher) {
	c.fetchLine = fn
}

// Resize rebuilds the backing arrays for a row count change, preserving
// valid entries for rows that still exist and dropping displaced ones.
func (c *Cache) Resize(oldLen, newLen int) {
	newSegments := make([][]types.HighlightSegment, newLen)
	newMultiline := make([]bool, newLen)
	newValid := make([]bool, newLen)
	n := oldLen
	if newLen < n {
		n = newLen
	}
	for i := 0; i < n; i++ {
		if i < len(c.valid) && c.valid[i] {
			newSegments[i] = c.segments[i]
			newMultiline[i] = c.multiline[i]
			newValid[i] = true
		}
	}
	c.segments = newSegments
	c.multiline = newMultiline
	c.valid = newValid
}

// InvalidateFrom drops cached entries for rows [row, len), because an
// edit at or before row may have changed downstream multi-line state.
func (c *Cache) InvalidateFrom(row int) {
	if row < 0 {
		row = 0
	}
	for i := row; i < len(c.valid); i++ {
		c.valid[i] = false
		c.segments[i] = nil
		c.multiline[i] = false
	}
}

// Lookup returns the cached segments for row, computing and storing them
// on a miss. lineBytes must be the current content of that row. If a
// LineFetcher is attached and row's nearest cached predecessor isn't
// row-1, Lookup first walks back to the nearest valid row (or row 0)
// and recomputes the uncached chain forward, so the result always
// equals tokenizing rows 0..row from scratch regardless of what order
// rows have been looked up in.
func (c *Cache) Lookup(row int, lineBytes []byte) []types.HighlightSegment {
	if row < 0 || row >= len(c.valid) {
		return nil
	}
	if c.valid[row] {
		return c.segments[row]
	}
	start := row
	if c.fetchLine != nil {
		for start > 0 && !c.valid[start-1] {
			start--
		}
	}
	for i := start; i < row; i++ {
		c.computeRow(i, c.fetchLine(i))
	}
	return c.computeRow(row, lineBytes)
}

func (c *Cache) computeRow(row int, lineBytes []byte) []types.HighlightSegment {
	if c.valid[row] {
		return c.segments[row]
	}
	prevMultiline := c.EndsInMultiline(row - 1)
	if c.tokenize == nil {
		c.valid[row] = true
		c.segments[row] = nil
		c.multiline[row] = false
		return nil
	}
	segments, endsInMultiline := c.tokenize(lineBytes, prevMultiline)
	c.segments[row] = segments
	c.multiline[row] = endsInMultiline
	c.valid[row] = true
	return segments
}

// EndsInMultiline reports the multi-line-state bit for row, treating an
// absent or unset entry as false.
func (c *Cache) EndsInMultiline(row int) bool {
	if row < 0 || row >= len(c.multiline) {
		return false
	}
	return c.multiline[row]
}

// Len reports the number of rows the cache is sized for.
func (c *Cache) Len() int {
	return len(c.valid)
}
