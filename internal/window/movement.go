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

package window

import "github.com/gottx/gottx/internal/types"

// Grounded on pkg/editor/window.go's cursor-navigation methods, adapted
// to byte positions (a "character" here is one byte) and to a cursor
// that lives on the buffer rather than the window itself.

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == 0
}

func isAlphaNumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func isNonAlphaNumeric(c byte) bool {
	return !isAlphaNumeric(c) && c != ' ' && c != 0
}

// SetCursorForDisplay positions d's terminal cursor at w's cursor,
// translated by the leaf's scroll offset and screen origin.
func (w *Window) SetCursorForDisplay(d types.Display) {
	cursor := w.GetCursor()
	d.SetCursor(types.Point{
		Col: cursor.Col - w.colOffset + w.rect.Origin.Col,
		Row: cursor.Row - w.rowOffset + w.rect.Origin.Row,
	})
}

// PerformSearchForward moves the cursor to the next occurrence of text
// after the cursor, wrapping at the end of the buffer.
func (w *Window) PerformSearchForward(text string) {
	if w.buf == nil || w.buf.GetRowCount() == 0 {
		return
	}
	cursor := w.buf.GetCursor()
	row, col := cursor.Row, cursor.Col
	for {
		if position := w.buf.FirstPositionInRowAfterCol(row, col, text); position != -1 {
			w.buf.SetCursor(types.Point{Row: row, Col: position})
			return
		}
		col = -1
		row++
		if row == w.buf.GetRowCount() {
			row = 0
		}
		if row == cursor.Row {
			return
		}
	}
}

// PerformSearchBackward moves the cursor to the previous occurrence of
// text before the cursor, wrapping at the start of the buffer.
func (w *Window) PerformSearchBackward(text string) {
	if w.buf == nil || w.buf.GetRowCount() == 0 {
		return
	}
	cursor := w.buf.GetCursor()
	row, col := cursor.Row, cursor.Col
	for {
		if position := w.buf.LastPositionInRowBeforeCol(row, col, text); position != -1 {
			w.buf.SetCursor(types.Point{Row: row, Col: position})
			return
		}
		row--
		if row < 0 {
			row = w.buf.GetRowCount() - 1
		}
		col = w.buf.GetRowLength(row)
		if col < 0 {
			col = 0
		}
		if row == cursor.Row {
			return
		}
	}
}

// MoveCursor moves the cursor one step in direction, multiplier times,
// never past the end of the current line nor off the buffer's edges.
func (w *Window) MoveCursor(direction, multiplier int) {
	for i := 0; i < multiplier; i++ {
		cursor := w.GetCursor()
		switch direction {
		case types.MoveLeft:
			if cursor.Col > 0 {
				cursor.Col--
			}
		case types.MoveRight:
			if cursor.Row < w.buf.GetRowCount() {
				if rowLength := w.buf.GetRowLength(cursor.Row); cursor.Col < rowLength-1 {
					cursor.Col++
				}
			}
		case types.MoveUp:
			if cursor.Row > 0 {
				cursor.Row--
			}
		case types.MoveDown:
			if cursor.Row < w.buf.GetRowCount()-1 {
				cursor.Row++
			}
		}
		if cursor.Row < w.buf.GetRowCount() {
			rowLength := w.buf.GetRowLength(cursor.Row)
			if cursor.Col > rowLength-1 {
				cursor.Col = rowLength - 1
				if cursor.Col < 0 {
					cursor.Col = 0
				}
			}
		}
		w.SetCursor(cursor)
	}
}

// MoveCursorForward advances one byte, wrapping to the next line, and
// reports what kind of boundary (if any) it crossed.
func (w *Window) MoveCursorForward() int {
	cursor := w.GetCursor()
	defer func() { w.SetCursor(cursor) }()
	if cursor.Row >= w.buf.GetRowCount() {
		return types.AtEndOfFile
	}
	rowLength := w.buf.GetRowLength(cursor.Row)
	if cursor.Col < rowLength-1 {
		cursor.Col++
		return types.AtNextCharacter
	}
	cursor.Col = 0
	if cursor.Row+1 < w.buf.GetRowCount() {
		cursor.Row++
		return types.AtNextLine
	}
	return types.AtEndOfFile
}

// MoveCursorBackward retreats one byte, wrapping to the previous line.
func (w *Window) MoveCursorBackward() int {
	cursor := w.GetCursor()
	defer func() { w.SetCursor(cursor) }()
	if cursor.Row >= w.buf.GetRowCount() {
		return types.AtEndOfFile
	}
	if cursor.Col > 0 {
		cursor.Col--
		return types.AtNextCharacter
	}
	if cursor.Row > 0 {
		cursor.Row--
		rowLength := w.buf.GetRowLength(cursor.Row)
		cursor.Col = rowLength - 1
		if cursor.Col < 0 {
			cursor.Col = 0
		}
		return types.AtNextLine
	}
	return types.AtEndOfFile
}

func (w *Window) MoveToBeginningOfLine() {
	cursor := w.GetCursor()
	cursor.Col = 0
	w.SetCursor(cursor)
}

func (w *Window) MoveToEndOfLine() {
	cursor := w.GetCursor()
	cursor.Col = 0
	if cursor.Row < w.buf.GetRowCount() {
		cursor.Col = w.buf.GetRowLength(cursor.Row) - 1
		if cursor.Col < 0 {
			cursor.Col = 0
		}
	}
	w.SetCursor(cursor)
}

func (w *Window) MoveCursorToNextWord(multiplier int) {
	for i := 0; i < multiplier; i++ {
		w.moveCursorToNextWord()
	}
}

func (w *Window) moveCursorToNextWord() {
	c := w.buf.GetCharacterAtCursor(w.GetCursor())
	switch {
	case isSpace(c):
		for isSpace(c) {
			if w.MoveCursorForward() != types.AtNextCharacter {
				w.MoveForwardToFirstNonSpace()
				return
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
	case isAlphaNumeric(c):
		for isAlphaNumeric(c) {
			if w.MoveCursorForward() != types.AtNextCharacter {
				w.MoveForwardToFirstNonSpace()
				return
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
		for isSpace(c) {
			if w.MoveCursorForward() != types.AtNextCharacter {
				return
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
	default:
		for isNonAlphaNumeric(c) {
			if w.MoveCursorForward() != types.AtNextCharacter {
				w.MoveForwardToFirstNonSpace()
				return
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
		for isSpace(c) {
			if w.MoveCursorForward() != types.AtNextCharacter {
				return
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
	}
}

func (w *Window) MoveForwardToFirstNonSpace() {
	c := w.buf.GetCharacterAtCursor(w.GetCursor())
	for c == ' ' {
		if w.MoveCursorForward() != types.AtNextCharacter {
			return
		}
		c = w.buf.GetCharacterAtCursor(w.GetCursor())
	}
}

func (w *Window) MoveCursorBackToFirstNonSpace() int {
	c := w.buf.GetCharacterAtCursor(w.GetCursor())
	for isSpace(c) {
		if p := w.MoveCursorBackward(); p != types.AtNextCharacter {
			return p
		}
		c = w.buf.GetCharacterAtCursor(w.GetCursor())
	}
	return types.AtNextCharacter
}

func (w *Window) MoveCursorBackBeforeCurrentWord() int {
	c := w.buf.GetCharacterAtCursor(w.GetCursor())
	switch {
	case isAlphaNumeric(c):
		for isAlphaNumeric(c) {
			if p := w.MoveCursorBackward(); p != types.AtNextCharacter {
				return p
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
	case isNonAlphaNumeric(c):
		for isNonAlphaNumeric(c) {
			if p := w.MoveCursorBackward(); p != types.AtNextCharacter {
				return p
			}
			c = w.buf.GetCharacterAtCursor(w.GetCursor())
		}
	}
	return types.AtNextCharacter
}

func (w *Window) MoveCursorBackToStartOfCurrentWord() {
	c := w.buf.GetCharacterAtCursor(w.GetCursor())
	if isSpace(c) {
		return
	}
	if p := w.MoveCursorBackBeforeCurrentWord(); p != types.AtEndOfFile {
		w.MoveCursorForward()
	}
}

func (w *Window) MoveCursorToPreviousWord(multiplier int) {
	for i := 0; i < multiplier; i++ {
		w.moveCursorToPreviousWord()
	}
}

func (w *Window) moveCursorToPreviousWord() {
	c := w.buf.GetCharacterAtCursor(w.GetCursor())
	if isSpace(c) {
		w.MoveCursorBackToFirstNonSpace()
		w.MoveCursorBackToStartOfCurrentWord()
		return
	}
	original := w.GetCursor()
	w.MoveCursorBackToStartOfCurrentWord()
	if w.GetCursor() == original {
		w.MoveCursorBackBeforeCurrentWord()
		c = w.buf.GetCharacterAtCursor(w.GetCursor())
		if c == 0 {
			return
		}
		w.MoveCursorBackToFirstNonSpace()
		w.MoveCursorBackToStartOfCurrentWord()
	}
}

func (w *Window) PageUp(multiplier int) {
	cursor := w.GetCursor()
	cursor.Row = w.rowOffset
	w.SetCursor(cursor)
	for m := 0; m < multiplier; m++ {
		w.MoveCursor(types.MoveUp, w.rect.Size.Rows)
	}
}

func (w *Window) PageDown(multiplier int) {
	cursor := w.GetCursor()
	cursor.Row = min(w.rowOffset+w.rect.Size.Rows-1, w.buf.GetRowCount()-1)
	w.SetCursor(cursor)
	for m := 0; m < multiplier; m++ {
		w.MoveCursor(types.MoveDown, w.rect.Size.Rows)
	}
}

func (w *Window) HalfPageUp(multiplier int) {
	cursor := w.GetCursor()
	cursor.Row = w.rowOffset
	w.SetCursor(cursor)
	for m := 0; m < multiplier; m++ {
		w.MoveCursor(types.MoveUp, w.rect.Size.Rows/2)
	}
}

func (w *Window) HalfPageDown(multiplier int) {
	cursor := w.GetCursor()
	cursor.Row = min(w.rowOffset+w.rect.Size.Rows-1, w.buf.GetRowCount()-1)
	w.SetCursor(cursor)
	for m := 0; m < multiplier; m++ {
		w.MoveCursor(types.MoveDown, w.rect.Size.Rows/2)
	}
}

func (w *Window) KeepCursorInRow() {
	cursor := w.GetCursor()
	if w.buf.GetRowCount() == 0 {
		cursor.Col = 0
		w.SetCursor(cursor)
		return
	}
	cursor.Row = clipToRange(cursor.Row, 0, w.buf.GetRowCount()-1)
	lastIndexInRow := w.buf.GetRowLength(cursor.Row) - 1
	cursor.Col = clipToRange(cursor.Col, 0, max(lastIndexInRow, 0))
	w.SetCursor(cursor)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
