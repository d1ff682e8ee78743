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

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeafWithText(text string) *Window {
	buf := buffer.New()
	buf.LoadBytes([]byte(text))
	leaf := NewLeaf(buf)
	leaf.Layout(types.Rect{Size: types.Size{Rows: 10, Cols: 40}})
	return leaf
}

func TestMoveCursorClampsAtLineEnd(t *testing.T) {
	w := newLeafWithText("abc\nd")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.MoveCursor(types.MoveRight, 10)
	assert.Equal(t, types.Point{Row: 0, Col: 2}, w.GetCursor())
}

func TestMoveCursorDownClampsColumnToShorterRow(t *testing.T) {
	w := newLeafWithText("abcdef\nxy")
	w.SetCursor(types.Point{Row: 0, Col: 5})
	w.MoveCursor(types.MoveDown, 1)
	assert.Equal(t, types.Point{Row: 1, Col: 1}, w.GetCursor())
}

func TestMoveCursorForwardWrapsToNextLine(t *testing.T) {
	w := newLeafWithText("ab\ncd")
	w.SetCursor(types.Point{Row: 0, Col: 1})
	result := w.MoveCursorForward()
	assert.Equal(t, types.AtNextLine, result)
	assert.Equal(t, types.Point{Row: 1, Col: 0}, w.GetCursor())
}

func TestMoveCursorForwardReportsEndOfFile(t *testing.T) {
	w := newLeafWithText("ab")
	w.SetCursor(types.Point{Row: 0, Col: 1})
	result := w.MoveCursorForward()
	assert.Equal(t, types.AtEndOfFile, result)
}

func TestMoveCursorBackwardWrapsToPreviousLine(t *testing.T) {
	w := newLeafWithText("ab\ncd")
	w.SetCursor(types.Point{Row: 1, Col: 0})
	result := w.MoveCursorBackward()
	assert.Equal(t, types.AtNextLine, result)
	assert.Equal(t, types.Point{Row: 0, Col: 1}, w.GetCursor())
}

func TestMoveCursorToNextWordSkipsSpaceAndWord(t *testing.T) {
	w := newLeafWithText("foo bar baz")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.MoveCursorToNextWord(1)
	assert.Equal(t, types.Point{Row: 0, Col: 4}, w.GetCursor())
}

func TestMoveCursorToPreviousWordReturnsToWordStart(t *testing.T) {
	w := newLeafWithText("foo bar baz")
	w.SetCursor(types.Point{Row: 0, Col: 8})
	w.MoveCursorToPreviousWord(1)
	assert.Equal(t, types.Point{Row: 0, Col: 4}, w.GetCursor())
}

func TestMoveToBeginningAndEndOfLine(t *testing.T) {
	w := newLeafWithText("hello")
	w.SetCursor(types.Point{Row: 0, Col: 2})
	w.MoveToEndOfLine()
	assert.Equal(t, types.Point{Row: 0, Col: 4}, w.GetCursor())
	w.MoveToBeginningOfLine()
	assert.Equal(t, types.Point{Row: 0, Col: 0}, w.GetCursor())
}

func TestPerformSearchForwardFindsNextOccurrence(t *testing.T) {
	w := newLeafWithText("foo bar foo")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.PerformSearchForward("foo")
	assert.Equal(t, types.Point{Row: 0, Col: 8}, w.GetCursor())
}

func TestPerformSearchForwardWrapsAroundBuffer(t *testing.T) {
	w := newLeafWithText("foo bar")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.PerformSearchForward("foo")
	assert.Equal(t, types.Point{Row: 0, Col: 0}, w.GetCursor())
}

func TestPerformSearchBackwardFindsPriorOccurrence(t *testing.T) {
	w := newLeafWithText("foo bar foo")
	w.SetCursor(types.Point{Row: 0, Col: 8})
	w.PerformSearchBackward("foo")
	assert.Equal(t, types.Point{Row: 0, Col: 0}, w.GetCursor())
}

func TestKeepCursorInRowClampsAfterRowRemoval(t *testing.T) {
	w := newLeafWithText("one\ntwo")
	w.SetCursor(types.Point{Row: 1, Col: 2})
	w.GetBuffer().DeleteRow(1)
	w.KeepCursorInRow()
	require.Equal(t, 1, w.GetBuffer().GetRowCount())
	assert.Equal(t, 0, w.GetCursor().Row)
}

func TestPageDownAdvancesByWindowHeight(t *testing.T) {
	lines := ""
	for i := 0; i < 40; i++ {
		lines += "x\n"
	}
	w := newLeafWithText(lines)
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.PageDown(1)
	assert.Greater(t, w.GetCursor().Row, 0)
}
