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

package buffer

import "github.com/gottx/gottx/internal/types"

var bracketPairs = map[byte]byte{
	'(': ')', '[': ']', '{': '}',
}
var bracketPairsReverse = map[byte]byte{
	')': '(', ']': '[', '}': '{',
}

func isOpenBracket(c byte) bool  { _, ok := bracketPairs[c]; return ok }
func isCloseBracket(c byte) bool { _, ok := bracketPairsReverse[c]; return ok }

// FindMatchingBracket scans from the cursor's position for the matching
// bracket, tracking a depth counter incremented on same-kind openers and
// decremented on matching closers. It does not understand strings or
// comments; this is an accepted approximation. Complexity is O(total
// characters scanned), with no line-length cap.
func (b *Buffer) FindMatchingBracket() types.BracketMatch {
	cy, cx := b.cursor.Row, b.cursor.Col
	if cy < 0 || cy >= len(b.rows) {
		return types.BracketMatch{}
	}
	c := b.rows[cy].ByteAt(cx)
	switch {
	case isOpenBracket(c):
		return b.scanForward(cy, cx, c, bracketPairs[c])
	case isCloseBracket(c):
		return b.scanBackward(cy, cx, c, bracketPairsReverse[c])
	default:
		return types.BracketMatch{}
	}
}

func (b *Buffer) scanForward(row, col int, open, close byte) types.BracketMatch {
	depth := 0
	for r := row; r < len(b.rows); r++ {
		line := b.rows[r].Text
		start := 0
		if r == row {
			start = col
		}
		for c := start; c < len(line); c++ {
			switch line[c] {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return types.BracketMatch{Row: r, Col: c, Found: true}
				}
			}
		}
	}
	return types.BracketMatch{}
}

func (b *Buffer) scanBackward(row, col int, close, open byte) types.BracketMatch {
	depth := 0
	for r := row; r >= 0; r-- {
		line := b.rows[r].Text
		end := len(line) - 1
		if r == row {
			end = col
		}
		for c := end; c >= 0; c-- {
			switch line[c] {
			case close:
				depth++
			case open:
				depth--
				if depth == 0 {
					return types.BracketMatch{Row: r, Col: c, Found: true}
				}
			}
		}
	}
	return types.BracketMatch{}
}
