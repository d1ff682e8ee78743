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

import (
	"testing"

	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCharInsertsByte(t *testing.T) {
	w := newLeafWithText("ac")
	w.SetCursor(types.Point{Row: 0, Col: 1})
	w.InsertChar('b')
	assert.Equal(t, "abc", string(w.GetBuffer().RowBytes(0)))
}

func TestInsertCharNewlinePlacesCursorAfterTailIndent(t *testing.T) {
	w := newLeafWithText("  abcd")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.InsertChar('\n')
	require.Equal(t, 2, w.GetBuffer().GetRowCount())
	assert.Equal(t, "", string(w.GetBuffer().RowBytes(0)))
	assert.Equal(t, "  abcd", string(w.GetBuffer().RowBytes(1)))
	assert.Equal(t, types.Point{Row: 1, Col: 2}, w.GetCursor())
}

func TestBackspaceCharWithinRow(t *testing.T) {
	w := newLeafWithText("abc")
	w.SetCursor(types.Point{Row: 0, Col: 2})
	deleted := w.BackspaceChar()
	assert.Equal(t, 'b', deleted)
	assert.Equal(t, "ac", string(w.GetBuffer().RowBytes(0)))
}

func TestBackspaceCharAtOriginIsNoOp(t *testing.T) {
	w := newLeafWithText("abc")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	deleted := w.BackspaceChar()
	assert.Equal(t, rune(0), deleted)
	assert.Equal(t, "abc", string(w.GetBuffer().RowBytes(0)))
}

func TestJoinRowMergesRowBelow(t *testing.T) {
	w := newLeafWithText("abc\ndef\nghi")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	insertions := w.JoinRow(1)
	require.Len(t, insertions, 1)
	assert.Equal(t, 3, insertions[0].Col)
	assert.Equal(t, "abcdef", string(w.GetBuffer().RowBytes(0)))
}

func TestYankRowReturnsTextWithoutMutatingBuffer(t *testing.T) {
	w := newLeafWithText("one\ntwo\nthree")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	text := w.YankRow(2)
	assert.Equal(t, "one\ntwo\n", text)
	assert.Equal(t, 3, w.GetBuffer().GetRowCount())
}

func TestInsertLineAboveCursorOpensBlankLine(t *testing.T) {
	w := newLeafWithText("hello")
	w.SetCursor(types.Point{Row: 0, Col: 2})
	w.InsertLineAboveCursor()
	require.Equal(t, 2, w.GetBuffer().GetRowCount())
	assert.Equal(t, "", string(w.GetBuffer().RowBytes(0)))
	assert.Equal(t, "hello", string(w.GetBuffer().RowBytes(1)))
	assert.Equal(t, types.Point{Row: 0, Col: 0}, w.GetCursor())
}

func TestInsertLineBelowCursorOpensBlankLineBelow(t *testing.T) {
	w := newLeafWithText("hello")
	w.SetCursor(types.Point{Row: 0, Col: 2})
	w.InsertLineBelowCursor()
	require.Equal(t, 2, w.GetBuffer().GetRowCount())
	assert.Equal(t, "hello", string(w.GetBuffer().RowBytes(0)))
	assert.Equal(t, "", string(w.GetBuffer().RowBytes(1)))
}

func TestReplaceCharacterAtCursorReturnsPrevious(t *testing.T) {
	w := newLeafWithText("abc")
	previous := w.ReplaceCharacterAtCursor(types.Point{Row: 0, Col: 1}, 'X')
	assert.Equal(t, 'b', previous)
	assert.Equal(t, "aXc", string(w.GetBuffer().RowBytes(0)))
}

func TestDeleteRowsAtCursorRemovesWholeRows(t *testing.T) {
	w := newLeafWithText("one\ntwo\nthree")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	text := w.DeleteRowsAtCursor(2)
	assert.Equal(t, "one\ntwo", text)
	require.Equal(t, 1, w.GetBuffer().GetRowCount())
	assert.Equal(t, "three", string(w.GetBuffer().RowBytes(0)))
}

func TestReverseCaseCharactersAtCursorFlipsCase(t *testing.T) {
	w := newLeafWithText("AbC")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.ReverseCaseCharactersAtCursor(3)
	assert.Equal(t, "aBc", string(w.GetBuffer().RowBytes(0)))
}

func TestDeleteWordsAtCursorDeletesWordAndTrailingSpace(t *testing.T) {
	w := newLeafWithText("foo bar")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	deleted := w.DeleteWordsAtCursor(1)
	assert.Equal(t, "foo ", deleted)
	assert.Equal(t, "bar", string(w.GetBuffer().RowBytes(0)))
}

func TestDeleteCharactersAtCursorForwardDelete(t *testing.T) {
	w := newLeafWithText("abcdef")
	w.SetCursor(types.Point{Row: 0, Col: 1})
	deleted := w.DeleteCharactersAtCursor(3, false, false)
	assert.Equal(t, "bcd", deleted)
	assert.Equal(t, "aef", string(w.GetBuffer().RowBytes(0)))
}

func TestDeleteCharactersAtCursorJoinsNextRowWhenUndoTrue(t *testing.T) {
	w := newLeafWithText("ab\ncd")
	w.SetCursor(types.Point{Row: 0, Col: 2})
	deleted := w.DeleteCharactersAtCursor(1, true, false)
	assert.Equal(t, "\n", deleted)
	require.Equal(t, 1, w.GetBuffer().GetRowCount())
	assert.Equal(t, "abcd", string(w.GetBuffer().RowBytes(0)))
}

func TestChangeWordAtCursorWithTextReplaysNonInteractively(t *testing.T) {
	w := newLeafWithText("foo bar")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	deleted, mode := w.ChangeWordAtCursor(1, "baz")
	assert.Equal(t, "foo ", deleted)
	assert.Equal(t, types.ModeEdit, mode)
	assert.Equal(t, "bazbar", string(w.GetBuffer().RowBytes(0)))
}

func TestChangeWordAtCursorWithoutTextEntersInsertMode(t *testing.T) {
	w := newLeafWithText("foo bar")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	_, mode := w.ChangeWordAtCursor(1, "")
	assert.Equal(t, types.ModeInsert, mode)
}

func TestInsertTextAtCursorPastesWithoutMovingCursor(t *testing.T) {
	w := newLeafWithText("ac")
	w.SetCursor(types.Point{Row: 0, Col: 1})
	cursor, mode := w.InsertText("XY", types.InsertAtCursor)
	assert.Equal(t, types.ModeEdit, mode)
	assert.Equal(t, types.Point{Row: 0, Col: 1}, cursor)
	assert.Equal(t, "aXYc", string(w.GetBuffer().RowBytes(0)))
}

func TestInsertTextAfterEndOfLinePositionsAtRowEnd(t *testing.T) {
	w := newLeafWithText("abc")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	_, mode := w.InsertText("", types.InsertAfterEndOfLine)
	assert.Equal(t, types.ModeInsert, mode)
	assert.Equal(t, types.Point{Row: 0, Col: 3}, w.GetCursor())
}
