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

package editor

import (
	"github.com/gottx/gottx/internal/types"
	"github.com/gottx/gottx/internal/window"
)

// windowAdapter satisfies types.Window by delegating to a concrete
// *window.Window, following the teacher's own type-assert idiom
// (pkg/editor/window.go stores `parent gott.Window` and asserts back to
// `*Window`) one layer up, as recorded in DESIGN.md's "Deferred
// types.Window interface satisfaction" section. It also carries the
// owning *Editor so InsertChar/YankRow can do the insert-operation and
// paste-board bookkeeping the teacher's Window does via its own
// editor back-reference (DESIGN.md's "InsertOperation accumulation and
// paste-board access moved to Editor" section).
type windowAdapter struct {
	e *Editor
	w *window.Window
}

func wrap(e *Editor, w *window.Window) types.Window {
	if w == nil {
		return nil
	}
	return &windowAdapter{e: e, w: w}
}

func unwrap(w types.Window) *window.Window {
	if w == nil {
		return nil
	}
	a, ok := w.(*windowAdapter)
	if !ok {
		return nil
	}
	return a.w
}

func (a *windowAdapter) GetNumber() int       { return a.w.GetNumber() }
func (a *windowAdapter) GetName() string      { return a.w.GetName() }
func (a *windowAdapter) GetBuffer() types.Buffer {
	buf := a.w.GetBuffer()
	if buf == nil {
		return nil
	}
	return buf
}
func (a *windowAdapter) GetParent() types.Window  { return wrap(a.e, a.w.GetParent()) }
func (a *windowAdapter) SetParent(w types.Window) { a.w.SetParent(unwrap(w)) }

func (a *windowAdapter) GetCursor() types.Point  { return a.w.GetCursor() }
func (a *windowAdapter) SetCursor(p types.Point) { a.w.SetCursor(p) }

func (a *windowAdapter) SetCursorForDisplay(d types.Display) { a.w.SetCursorForDisplay(d) }
func (a *windowAdapter) PerformSearchForward(text string)    { a.w.PerformSearchForward(text) }
func (a *windowAdapter) PerformSearchBackward(text string)   { a.w.PerformSearchBackward(text) }
func (a *windowAdapter) MoveCursor(direction, multiplier int) {
	a.w.MoveCursor(direction, multiplier)
}
func (a *windowAdapter) MoveCursorForward() int  { return a.w.MoveCursorForward() }
func (a *windowAdapter) MoveCursorBackward() int { return a.w.MoveCursorBackward() }
func (a *windowAdapter) MoveToBeginningOfLine()  { a.w.MoveToBeginningOfLine() }
func (a *windowAdapter) MoveToEndOfLine()        { a.w.MoveToEndOfLine() }
func (a *windowAdapter) MoveCursorToNextWord(multiplier int) {
	a.w.MoveCursorToNextWord(multiplier)
}
func (a *windowAdapter) MoveForwardToFirstNonSpace()      { a.w.MoveForwardToFirstNonSpace() }
func (a *windowAdapter) MoveCursorBackToFirstNonSpace() int {
	return a.w.MoveCursorBackToFirstNonSpace()
}
func (a *windowAdapter) MoveCursorBackBeforeCurrentWord() int {
	return a.w.MoveCursorBackBeforeCurrentWord()
}
func (a *windowAdapter) MoveCursorBackToStartOfCurrentWord() {
	a.w.MoveCursorBackToStartOfCurrentWord()
}
func (a *windowAdapter) MoveCursorToPreviousWord(multiplier int) {
	a.w.MoveCursorToPreviousWord(multiplier)
}
func (a *windowAdapter) KeepCursorInRow()                 { a.w.KeepCursorInRow() }
func (a *windowAdapter) MoveCursorToStartOfLine()         { a.w.MoveCursorToStartOfLine() }
func (a *windowAdapter) MoveCursorToStartOfLineBelowCursor() {
	a.w.MoveCursorToStartOfLineBelowCursor()
}

func (a *windowAdapter) PageUp(multiplier int)       { a.w.PageUp(multiplier) }
func (a *windowAdapter) PageDown(multiplier int)     { a.w.PageDown(multiplier) }
func (a *windowAdapter) HalfPageUp(multiplier int)   { a.w.HalfPageUp(multiplier) }
func (a *windowAdapter) HalfPageDown(multiplier int) { a.w.HalfPageDown(multiplier) }

// InsertChar feeds the in-flight insert operation before mutating the
// buffer, matching Editor.InsertChar's bookkeeping for the active
// window; here it applies to whichever window this adapter wraps.
func (a *windowAdapter) InsertChar(c rune) {
	if a.e.insert != nil {
		a.e.insert.AddCharacter(c)
	}
	a.w.InsertChar(c)
}

func (a *windowAdapter) InsertRow() { a.w.InsertRow() }

// BackspaceChar refuses to delete past what the active insert operation
// has accumulated, matching Editor.BackspaceChar (see that method's
// comment for why).
func (a *windowAdapter) BackspaceChar() rune {
	if a.e.insert == nil || a.e.insert.Length() == 0 {
		return 0
	}
	a.e.insert.DeleteCharacter()
	return a.w.BackspaceChar()
}

func (a *windowAdapter) JoinRow(multiplier int) []types.Point { return a.w.JoinRow(multiplier) }

// YankRow copies the yanked text onto the editor's paste board, the
// bookkeeping the teacher's Window.YankRow does via its editor
// back-reference (see DESIGN.md).
func (a *windowAdapter) YankRow(multiplier int) {
	text := a.w.YankRow(multiplier)
	a.e.SetPasteBoard(text, types.PasteNewLine)
}

func (a *windowAdapter) InsertText(text string, position int) (types.Point, int) {
	return a.w.InsertText(text, position)
}
func (a *windowAdapter) ReverseCaseCharactersAtCursor(multiplier int) {
	a.w.ReverseCaseCharactersAtCursor(multiplier)
}
func (a *windowAdapter) ReplaceCharacterAtCursor(cursor types.Point, c rune) rune {
	return a.w.ReplaceCharacterAtCursor(cursor, c)
}
func (a *windowAdapter) DeleteRowsAtCursor(multiplier int) string {
	return a.w.DeleteRowsAtCursor(multiplier)
}
func (a *windowAdapter) DeleteWordsAtCursor(multiplier int) string {
	return a.w.DeleteWordsAtCursor(multiplier)
}
func (a *windowAdapter) DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string {
	return a.w.DeleteCharactersAtCursor(multiplier, undo, finallyDeleteRow)
}
func (a *windowAdapter) ChangeWordAtCursor(multiplier int, text string) (string, int) {
	return a.w.ChangeWordAtCursor(multiplier, text)
}

func (a *windowAdapter) Layout(r types.Rect) { a.w.Layout(r) }

// Render draws a's subtree (the whole tree when a wraps a tab group's
// root, a single leaf when a wraps a leaf) using the editor's shared
// renderer, with the editor's active tab's active leaf as the focused
// leaf.
func (a *windowAdapter) Render(d types.Display) {
	a.e.renderer.RenderWindow(d, a.w, a.e.activeTab.Active)
}

func (a *windowAdapter) SplitVertically() (types.Window, types.Window) {
	left, right := a.w.SplitVertically()
	return wrap(a.e, left), wrap(a.e, right)
}
func (a *windowAdapter) SplitHorizontally() (types.Window, types.Window) {
	top, bottom := a.w.SplitHorizontally()
	return wrap(a.e, top), wrap(a.e, bottom)
}
func (a *windowAdapter) Close() types.Window            { return wrap(a.e, a.w.Close()) }
func (a *windowAdapter) GetWindowNext() types.Window     { return wrap(a.e, a.w.NextLeaf()) }
func (a *windowAdapter) GetWindowPrevious() types.Window { return wrap(a.e, a.w.PrevLeaf()) }
func (a *windowAdapter) FindWindow(number int) types.Window {
	return wrap(a.e, a.w.FindWindow(number))
}

func (a *windowAdapter) ID() string               { return a.w.ID() }
func (a *windowAdapter) IsLeaf() bool              { return a.w.IsLeaf() }
func (a *windowAdapter) SetSplitRatio(ratio float64) { a.w.SetSplitRatio(ratio) }
func (a *windowAdapter) GetSplitRatio() float64   { return a.w.GetSplitRatio() }
func (a *windowAdapter) SetFocused(focused bool)  { a.w.SetFocused(focused) }
func (a *windowAdapter) IsFocused() bool          { return a.w.IsFocused() }
func (a *windowAdapter) SetLayoutHints(h types.LayoutHints) { a.w.SetLayoutHints(h) }
func (a *windowAdapter) GetLayoutHints() types.LayoutHints  { return a.w.GetLayoutHints() }
