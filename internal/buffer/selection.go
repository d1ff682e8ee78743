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

	"github.com/gottx/gottx/internal/row"
	"github.com/gottx/gottx/internal/types"
)

// BeginSelection anchors a selection at the current cursor position.
func (b *Buffer) BeginSelection() {
	b.selection = types.Selection{Active: true, AnchorX: b.cursor.Col, AnchorY: b.cursor.Row}
}

// ClearSelection deactivates the selection without altering its anchor.
func (b *Buffer) ClearSelection() {
	b.selection.Active = false
}

// GetSelection returns the current selection state.
func (b *Buffer) GetSelection() types.Selection {
	return b.selection
}

// normalisedRange returns the selection's anchor and cursor points
// ordered so the first point is not after the second in reading order.
func (b *Buffer) normalisedRange() (types.Point, types.Point) {
	anchor := types.Point{Row: b.selection.AnchorY, Col: b.selection.AnchorX}
	cursor := b.cursor
	if anchor.Row > cursor.Row || (anchor.Row == cursor.Row && anchor.Col > cursor.Col) {
		return cursor, anchor
	}
	return anchor, cursor
}

// GetSelectedText returns a freshly allocated copy of the half-open range
// [anchor, cursor) in reading order, joining rows with '\n'. It returns
// an empty string when no selection is active.
func (b *Buffer) GetSelectedText() string {
	if !b.selection.Active {
		return ""
	}
	start, end := b.normalisedRange()
	if start.Row == end.Row {
		if start.Row < 0 || start.Row >= len(b.rows) {
			return ""
		}
		r := b.rows[start.Row]
		lo, hi := clamp(start.Col, r.Length()), clamp(end.Col, r.Length())
		if lo > hi {
			lo, hi = hi, lo
		}
		return string(r.Text[lo:hi])
	}
	var sb strings.Builder
	for rIdx := start.Row; rIdx <= end.Row && rIdx < len(b.rows); rIdx++ {
		r := b.rows[rIdx]
		switch rIdx {
		case start.Row:
			lo := clamp(start.Col, r.Length())
			sb.Write(r.Text[lo:])
		case end.Row:
			hi := clamp(end.Col, r.Length())
			sb.Write(r.Text[:hi])
		default:
			sb.Write(r.Text)
		}
		if rIdx != end.Row {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// DeleteSelection removes the selected range, joining the first and last
// rows when the range spans more than one row, leaves the cursor at the
// normalised start, and dirties the highlight cache from that row. It is
// a no-op when no selection is active. The removed text is pushed as a
// single ActionDeleteRange so Undo restores it, and Redo re-deletes it,
// in one step.
func (b *Buffer) DeleteSelection() {
	if !b.selection.Active {
		return
	}
	start, end := b.normalisedRange()
	removed := b.GetSelectedText()
	b.undo.Push(UndoAction{
		Kind: ActionDeleteRange,
		X:    start.Col, Y: start.Row,
		EndX: end.Col, EndY: end.Row,
		Line: []byte(removed),
	})
	b.deleteRangeInPlace(start, end)
	b.markModified()
	b.cache.InvalidateFrom(start.Row)
	b.cursor = start
	b.selection.Active = false
}

// deleteRangeInPlace removes the half-open range [start, end) in reading
// order, joining the first and last rows when the range spans more than
// one row. Shared by DeleteSelection and applyForward's ActionDeleteRange
// case, neither of which touches undo recording here.
func (b *Buffer) deleteRangeInPlace(start, end types.Point) {
	if start.Row == end.Row {
		if start.Row < 0 || start.Row >= len(b.rows) {
			return
		}
		r := b.rows[start.Row]
		lo, hi := clamp(start.Col, r.Length()), clamp(end.Col, r.Length())
		if lo > hi {
			lo, hi = hi, lo
		}
		b.rows[start.Row].Text = append(r.Text[:lo], r.Text[hi:]...)
		return
	}
	if start.Row < 0 || start.Row >= len(b.rows) || end.Row < 0 || end.Row >= len(b.rows) {
		return
	}
	startRow := b.rows[start.Row]
	endRow := b.rows[end.Row]
	lo := clamp(start.Col, startRow.Length())
	hi := clamp(end.Col, endRow.Length())
	merged := append(append([]byte(nil), startRow.Text[:lo]...), endRow.Text[hi:]...)
	b.rows[start.Row].Text = merged
	old := len(b.rows)
	b.rows = append(b.rows[:start.Row+1], b.rows[end.Row+1:]...)
	b.resizeCache(old)
}

// insertRangeAt reinserts text (rows joined by '\n') at pos, splitting the
// row at pos.Col and inserting any middle/trailing fragments as new rows.
// The inverse of deleteRangeInPlace, used by applyInverse's
// ActionDeleteRange case to restore a deleted selection in one step.
func (b *Buffer) insertRangeAt(pos types.Point, text string) {
	if pos.Row < 0 || pos.Row >= len(b.rows) {
		return
	}
	fragments := strings.Split(text, "\n")
	tail := b.rows[pos.Row].Split(clamp(pos.Col, b.rows[pos.Row].Length()))
	b.rows[pos.Row].Append(row.NewFromBytes([]byte(fragments[0])))
	if len(fragments) == 1 {
		b.rows[pos.Row].Append(tail)
		return
	}
	newRows := make([]row.Row, len(fragments)-1)
	for i, frag := range fragments[1:] {
		newRows[i] = row.NewFromBytes([]byte(frag))
	}
	newRows[len(newRows)-1].Append(tail)
	old := len(b.rows)
	tailRows := append([]row.Row(nil), b.rows[pos.Row+1:]...)
	b.rows = append(b.rows[:pos.Row+1], newRows...)
	b.rows = append(b.rows, tailRows...)
	b.resizeCache(old)
}
