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

import (
	"strings"

	"github.com/gottx/gottx/internal/types"
)

// PasteText splits text on '\n' and inserts the first fragment at the
// current column, then for each subsequent fragment creates a new row
// (without auto-indent, to preserve source whitespace exactly) and
// writes the fragment. Because a multi-line paste can change multi-line
// comment/string state anywhere downstream, it dirties the entire
// highlight cache rather than a partial range.
func (b *Buffer) PasteText(text string) {
	if b.cursor.Row < 0 || b.cursor.Row >= len(b.rows) {
		return
	}
	fragments := strings.Split(text, "\n")
	cx, cy := b.cursor.Col, b.cursor.Row

	b.undo.Push(UndoAction{Kind: ActionGroupBegin})

	for _, c := range []byte(fragments[0]) {
		b.insertByteNoUndo(cx, cy, c)
		b.undo.Push(UndoAction{Kind: ActionInsertChar, X: cx, Y: cy, Byte: c})
		cx++
	}

	for i := 1; i < len(fragments); i++ {
		b.InsertNewline(cx, cy, false)
		cy++
		cx = 0
		for _, c := range []byte(fragments[i]) {
			b.insertByteNoUndo(cx, cy, c)
			b.undo.Push(UndoAction{Kind: ActionInsertChar, X: cx, Y: cy, Byte: c})
			cx++
		}
	}

	b.undo.Push(UndoAction{Kind: ActionGroupEnd})
	b.cache.InvalidateFrom(0)
	b.cursor = types.Point{Row: cy, Col: cx}
	b.markModified()
}
