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
	"testing"

	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytesRoundTrip(t *testing.T) {
	b := New()
	source := []byte("line one\nline two\nline three")
	b.LoadBytes(source)
	assert.Equal(t, source, b.GetBytes())
	assert.Equal(t, 3, b.GetRowCount())
}

func TestInsertByteAdvancesCursorAndMarksModified(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	assert.False(t, b.IsModified())
	b.InsertByte(1, 0, 'X')
	assert.Equal(t, "aXbc", string(b.RowBytes(0)))
	assert.Equal(t, types.Point{Row: 0, Col: 2}, b.GetCursor())
	assert.True(t, b.IsModified())
}

func TestInsertByteAppendsRowWhenAtEnd(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("only"))
	b.InsertByte(0, 1, 'z')
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "z", string(b.RowBytes(1)))
}

func TestInsertNewlineSplitsRowWithAutoIndent(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("  indented text"))
	b.InsertNewline(2, 0, true)
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "  ", string(b.RowBytes(0)))
	assert.Equal(t, "indented text", string(b.RowBytes(1)))
	assert.Equal(t, types.Point{Row: 1, Col: 0}, b.GetCursor())
}

func TestInsertNewlineWithoutAutoIndentStartsAtZero(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("  indented text"))
	b.InsertNewline(2, 0, false)
	assert.Equal(t, types.Point{Row: 1, Col: 0}, b.GetCursor())
}

func TestBackspaceWithinRow(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	b.DeleteByteBeforeCursor(2, 0)
	assert.Equal(t, "ac", string(b.RowBytes(0)))
	assert.Equal(t, types.Point{Row: 0, Col: 1}, b.GetCursor())
}

func TestBackspaceAtStartOfRowJoinsPreviousRow(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("first\nsecond"))
	b.DeleteByteBeforeCursor(0, 1)
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "firstsecond", string(b.RowBytes(0)))
	assert.Equal(t, types.Point{Row: 0, Col: 5}, b.GetCursor())
}

func TestBackspaceAtOriginIsNoOp(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	b.DeleteByteBeforeCursor(0, 0)
	assert.Equal(t, "abc", string(b.RowBytes(0)))
}

func TestUndoRedoInsertChar(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	b.InsertByte(1, 0, 'X')
	require.Equal(t, "aXbc", string(b.RowBytes(0)))

	ok := b.Undo()
	require.True(t, ok)
	assert.Equal(t, "abc", string(b.RowBytes(0)))

	ok = b.Redo()
	require.True(t, ok)
	assert.Equal(t, "aXbc", string(b.RowBytes(0)))
}

func TestUndoPastHeadIsNoOp(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	assert.False(t, b.Undo())
}

func TestPushAfterUndoTruncatesRedoBranch(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	b.InsertByte(1, 0, 'X')
	b.Undo()
	b.InsertByte(0, 0, 'Y')
	assert.False(t, b.Redo())
}

func TestSelectionGetAndDelete(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("hello world"))
	b.SetCursor(types.Point{Row: 0, Col: 0})
	b.BeginSelection()
	b.SetCursor(types.Point{Row: 0, Col: 5})
	assert.Equal(t, "hello", b.GetSelectedText())

	b.DeleteSelection()
	assert.Equal(t, " world", string(b.RowBytes(0)))
	assert.False(t, b.GetSelection().Active)
}

func TestSelectionAcrossRows(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc\ndef\nghi"))
	b.SetCursor(types.Point{Row: 0, Col: 1})
	b.BeginSelection()
	b.SetCursor(types.Point{Row: 2, Col: 2})
	assert.Equal(t, "bc\ndef\ngh", b.GetSelectedText())
}

func TestFindMatchingBracketForward(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("return (1)"))
	b.SetCursor(types.Point{Row: 0, Col: 7})
	m := b.FindMatchingBracket()
	require.True(t, m.Found)
	assert.Equal(t, 9, m.Col)
}

func TestFindMatchingBracketBackward(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("(a(b)c)"))
	b.SetCursor(types.Point{Row: 0, Col: 6})
	m := b.FindMatchingBracket()
	require.True(t, m.Found)
	assert.Equal(t, 0, m.Col)
}

func TestFindMatchingBracketNotFound(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("(a"))
	b.SetCursor(types.Point{Row: 0, Col: 0})
	m := b.FindMatchingBracket()
	assert.False(t, m.Found)
}

func TestPasteTextMultiline(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("start end"))
	b.SetCursor(types.Point{Row: 0, Col: 5})
	b.PasteText("A\nB")
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "startA", string(b.RowBytes(0)))
	assert.Equal(t, "B end", string(b.RowBytes(1)))
}

func TestDeleteByteAtCursorForwardDelete(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	c := b.DeleteByteAtCursor(1, 0)
	assert.Equal(t, byte('b'), c)
	assert.Equal(t, "ac", string(b.RowBytes(0)))
	assert.Equal(t, types.Point{Row: 0, Col: 1}, b.GetCursor())
}

func TestDeleteByteAtCursorOutOfRangeIsNoOp(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	c := b.DeleteByteAtCursor(5, 0)
	assert.Equal(t, byte(0), c)
	assert.Equal(t, "abc", string(b.RowBytes(0)))
}

func TestReplaceByteReturnsPreviousAndUndoesAsOneStep(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc"))
	previous := b.ReplaceByte(1, 0, 'X')
	assert.Equal(t, byte('b'), previous)
	assert.Equal(t, "aXc", string(b.RowBytes(0)))

	require.True(t, b.Undo())
	assert.Equal(t, "abc", string(b.RowBytes(0)))

	require.True(t, b.Redo())
	assert.Equal(t, "aXc", string(b.RowBytes(0)))
}

func TestDeleteRowRemovesOutrightAndUndoRestores(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("one\ntwo\nthree"))
	text := b.DeleteRow(1)
	assert.Equal(t, "two", text)
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "one", string(b.RowBytes(0)))
	assert.Equal(t, "three", string(b.RowBytes(1)))

	require.True(t, b.Undo())
	require.Equal(t, 3, b.GetRowCount())
	assert.Equal(t, "one", string(b.RowBytes(0)))
	assert.Equal(t, "two", string(b.RowBytes(1)))
	assert.Equal(t, "three", string(b.RowBytes(2)))

	require.True(t, b.Redo())
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "three", string(b.RowBytes(1)))
}

func TestJoinRowsMergesAndUndoSplitsBack(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc\ndef\nghi"))
	joinCol := b.JoinRows(0)
	assert.Equal(t, 3, joinCol)
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "abcdef", string(b.RowBytes(0)))
	assert.Equal(t, "ghi", string(b.RowBytes(1)))

	require.True(t, b.Undo())
	require.Equal(t, 3, b.GetRowCount())
	assert.Equal(t, "abc", string(b.RowBytes(0)))
	assert.Equal(t, "def", string(b.RowBytes(1)))
	assert.Equal(t, "ghi", string(b.RowBytes(2)))

	require.True(t, b.Redo())
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "abcdef", string(b.RowBytes(0)))
}

func TestInsertNewlineUndoRestoresCutSuffix(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("helloworld"))
	b.InsertNewline(5, 0, false)
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "hello", string(b.RowBytes(0)))
	assert.Equal(t, "world", string(b.RowBytes(1)))

	require.True(t, b.Undo())
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "helloworld", string(b.RowBytes(0)))

	require.True(t, b.Redo())
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "hello", string(b.RowBytes(0)))
	assert.Equal(t, "world", string(b.RowBytes(1)))
}

func TestBackspaceJoinUndoRestoresBothRowsIntact(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("first\nsecond"))
	b.DeleteByteBeforeCursor(0, 1)
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "firstsecond", string(b.RowBytes(0)))

	require.True(t, b.Undo())
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "first", string(b.RowBytes(0)))
	assert.Equal(t, "second", string(b.RowBytes(1)))

	require.True(t, b.Redo())
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "firstsecond", string(b.RowBytes(0)))
}

func TestPasteTextUndoesAsOneStepAndRedoesIt(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("start end"))
	b.SetCursor(types.Point{Row: 0, Col: 5})
	b.PasteText("A\nB")
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "startA", string(b.RowBytes(0)))
	assert.Equal(t, "B end", string(b.RowBytes(1)))

	require.True(t, b.Undo())
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "start end", string(b.RowBytes(0)))

	require.True(t, b.Redo())
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "startA", string(b.RowBytes(0)))
	assert.Equal(t, "B end", string(b.RowBytes(1)))
}

func TestDeleteSelectionIsUndoableAndRedoableWithinRow(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("hello world"))
	b.SetCursor(types.Point{Row: 0, Col: 0})
	b.BeginSelection()
	b.SetCursor(types.Point{Row: 0, Col: 5})
	b.DeleteSelection()
	assert.Equal(t, " world", string(b.RowBytes(0)))

	require.True(t, b.Undo())
	assert.Equal(t, "hello world", string(b.RowBytes(0)))
	assert.Equal(t, types.Point{Row: 0, Col: 0}, b.GetCursor())

	require.True(t, b.Redo())
	assert.Equal(t, " world", string(b.RowBytes(0)))
}

func TestDeleteSelectionAcrossRowsIsUndoableAndRedoable(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("abc\ndef\nghi"))
	b.SetCursor(types.Point{Row: 0, Col: 1})
	b.BeginSelection()
	b.SetCursor(types.Point{Row: 2, Col: 2})
	b.DeleteSelection()
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "ai", string(b.RowBytes(0)))

	require.True(t, b.Undo())
	require.Equal(t, 3, b.GetRowCount())
	assert.Equal(t, "abc", string(b.RowBytes(0)))
	assert.Equal(t, "def", string(b.RowBytes(1)))
	assert.Equal(t, "ghi", string(b.RowBytes(2)))

	require.True(t, b.Redo())
	require.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, "ai", string(b.RowBytes(0)))
}

func TestFirstPositionInRowAfterColSearchesForward(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("foo bar foo"))
	assert.Equal(t, 8, b.FirstPositionInRowAfterCol(0, 0, "foo"))
	assert.Equal(t, -1, b.FirstPositionInRowAfterCol(0, 8, "foo"))
}

func TestLastPositionInRowBeforeColSearchesBackward(t *testing.T) {
	b := New()
	b.LoadBytes([]byte("foo bar foo"))
	assert.Equal(t, 0, b.LastPositionInRowBeforeCol(0, 8, "foo"))
	assert.Equal(t, -1, b.LastPositionInRowBeforeCol(0, 3, "bar"))
}
