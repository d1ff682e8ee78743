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

// Package editor implements the top-level coordinator: it owns every
// buffer's enclosing tab group, dispatches operations against the
// focused window, and is the types.Editor the commander and script
// bridge drive. Grounded on pkg/editor/editor.go, generalized from one
// always-visible window tree to a list of named tab groups (one window
// tree each) plus the paste-board/insert-operation bookkeeping that the
// teacher keeps on Editor directly.
package editor

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/render"
	"github.com/gottx/gottx/internal/syntax"
	"github.com/gottx/gottx/internal/types"
	"github.com/gottx/gottx/internal/window"
)

// Editor owns every tab group, the process-wide syntax registry, the
// shared renderer, and the cut/paste and repeat/undo bookkeeping the
// teacher keeps directly on its Editor type.
type Editor struct {
	size types.Size

	tabs       []*window.TabGroup
	activeTab  *window.TabGroup
	nextTabIdx int

	buffers map[string]*buffer.Buffer // fileName -> buffer, for "reopen existing" sharing

	syntax   *syntax.Registry
	renderer *render.Renderer
	log      *zap.SugaredLogger

	pasteText string
	pasteMode int

	previous types.Operation
	insert   types.InsertOperation

	// UndoHistoryBound is the per-buffer undo history size applied to
	// every buffer this editor creates (config's undo_history_bound).
	UndoHistoryBound int
}

// New constructs an editor with one tab group named "output" holding a
// single read-only scratch buffer, matching the teacher's NewEditor,
// which seeds a "*output*" buffer before any file is opened. log may be
// nil (gofmt diagnostics are then simply dropped).
func New(reg *syntax.Registry, renderer *render.Renderer, log *zap.SugaredLogger) *Editor {
	e := &Editor{
		buffers:          make(map[string]*buffer.Buffer),
		syntax:           reg,
		renderer:         renderer,
		log:              log,
		UndoHistoryBound: buffer.DefaultMaxUndoSize,
	}
	buf := buffer.New()
	buf.SetNameAndReadOnly("*output*", true)
	leaf := window.NewLeaf(buf)
	group := window.NewTabGroup("output", leaf)
	e.tabs = append(e.tabs, group)
	e.activeTab = group
	return e
}

func (e *Editor) SetSize(size types.Size) {
	e.size = size
	e.LayoutWindows()
}

// activeLeaf returns the concrete *window.Window currently focused in
// the active tab group.
func (e *Editor) activeLeaf() *window.Window {
	return e.activeTab.Active
}

// GetActiveWindow wraps the focused leaf in a types.Window adapter, the
// deferred-interface-satisfaction seam described in DESIGN.md: window.Window
// stays concrete-typed so the window package never imports editor.
func (e *Editor) GetActiveWindow() types.Window {
	return &windowAdapter{e: e, w: e.activeLeaf()}
}

// bufferOrNewForPath finds an already-open buffer for path (so reopening
// the same file twice shares one buffer, as the teacher's
// documentWindows map makes possible) or builds a fresh one, attaching
// syntax by extension and the editor's configured undo bound.
func (e *Editor) bufferOrNewForPath(path string) *buffer.Buffer {
	if existing, ok := e.buffers[path]; ok {
		return existing
	}
	buf := buffer.New()
	buf.SetUndoBound(e.UndoHistoryBound)
	if def := e.syntax.FindByFilename(path); def != nil {
		buf.AttachSyntax(def)
	}
	e.buffers[path] = buf
	return buf
}

// ReadFile opens path in the active tab group's tree. Grounded on
// pkg/editor/editor.go's ReadFile, generalized to attach syntax. A custom
// or bufferless active leaf, or an unmodified "*output*" scratch leaf,
// takes the buffer in place; otherwise the active leaf is split and the
// new right-hand leaf gets the buffer and the focus.
func (e *Editor) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buf := e.bufferOrNewForPath(path)
	buf.SetFileName(path)
	buf.LoadBytes(normalizeLineEndings(data))

	active := e.activeLeaf()
	switch {
	case active.IsCustom() || active.GetBuffer() == nil:
		active.SetBuffer(buf)
	case active.GetBuffer().GetName() == "*output*" && !active.GetBuffer().IsModified():
		// Replace the scratch buffer in place rather than splitting, so
		// the first file opened doesn't leave an empty leaf behind.
		active.SetBuffer(buf)
	default:
		_, right := active.SplitVertically()
		right.SetBuffer(buf)
		e.activeTab.Focus(right)
	}
	e.LayoutWindows()
	return nil
}

func normalizeLineEndings(data []byte) []byte {
	return []byte(strings.ReplaceAll(string(data), "\r\n", "\n"))
}

// WriteFile saves the active buffer's bytes to path, running them
// through Gofmt first for a ".go" path, exactly as the teacher's
// WriteFile does.
func (e *Editor) WriteFile(path string) error {
	buf := e.activeLeaf().GetBuffer()
	b := buf.GetBytes()
	if strings.HasSuffix(path, ".go") {
		if out, err := runGofmt(buf.GetFileName(), b, e.log); err == nil {
			b = out
		}
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return err
	}
	buf.SetFileName(path)
	e.buffers[path] = buf
	return nil
}

func (e *Editor) Bytes() []byte          { return e.activeLeaf().GetBuffer().GetBytes() }
func (e *Editor) LoadBytes(b []byte)     { e.activeLeaf().GetBuffer().LoadBytes(b) }
func (e *Editor) AppendBytes(b []byte)   { e.activeLeaf().GetBuffer().AppendBytes(b) }
func (e *Editor) GetFileName() string    { return e.activeLeaf().GetBuffer().GetFileName() }

// SelectWindow focuses the leaf with the given sequential number,
// searching the active tab group's tree first and then every other tab
// group, switching tabs if the window is found elsewhere.
func (e *Editor) SelectWindow(number int) error {
	if w := e.activeTab.Root.FindWindow(number); w != nil {
		e.activeTab.Focus(w)
		return nil
	}
	for _, g := range e.tabs {
		if w := g.Root.FindWindow(number); w != nil {
			e.activeTab = g
			g.Focus(w)
			return nil
		}
	}
	return fmt.Errorf("no window exists for identifier %d", number)
}

func (e *Editor) SelectWindowNext() error {
	e.activeTab.FocusNext()
	return nil
}

func (e *Editor) SelectWindowPrevious() error {
	e.activeTab.FocusPrevious()
	return nil
}

// ListWindows loads a textual listing of every leaf across every tab
// group into the active window's buffer, mirroring the teacher's
// ListWindows diagnostic command.
func (e *Editor) ListWindows() {
	var b strings.Builder
	for _, g := range e.tabs {
		for _, leaf := range g.Root.Leaves() {
			fmt.Fprintf(&b, " [%d] %s (tab %q)\n", leaf.GetNumber(), leaf.GetName(), g.Name)
		}
	}
	e.activeLeaf().GetBuffer().LoadBytes([]byte(strings.TrimRight(b.String(), "\n")))
}

func (e *Editor) GetCursor() types.Point  { return e.activeLeaf().GetCursor() }
func (e *Editor) SetCursor(p types.Point) { e.activeLeaf().SetCursor(p) }

func (e *Editor) MoveCursor(direction, multiplier int) { e.activeLeaf().MoveCursor(direction, multiplier) }
func (e *Editor) MoveCursorToNextWord(multiplier int)  { e.activeLeaf().MoveCursorToNextWord(multiplier) }
func (e *Editor) MoveCursorToPreviousWord(multiplier int) {
	e.activeLeaf().MoveCursorToPreviousWord(multiplier)
}
func (e *Editor) MoveCursorToStartOfLine()            { e.activeLeaf().MoveCursorToStartOfLine() }
func (e *Editor) MoveCursorToStartOfLineBelowCursor()  { e.activeLeaf().MoveCursorToStartOfLineBelowCursor() }
func (e *Editor) MoveToBeginningOfLine()               { e.activeLeaf().MoveToBeginningOfLine() }
func (e *Editor) MoveToEndOfLine()                     { e.activeLeaf().MoveToEndOfLine() }

// MoveCursorToLine moves the cursor to the start of the given 1-based
// line number, clamping to the buffer's bounds, per the teacher's ":N"
// command-line handling.
func (e *Editor) MoveCursorToLine(line int) {
	w := e.activeLeaf()
	buf := w.GetBuffer()
	row := line - 1
	if row < 0 {
		row = 0
	}
	if row >= buf.GetRowCount() {
		row = buf.GetRowCount() - 1
	}
	if row < 0 {
		row = 0
	}
	w.SetCursor(types.Point{Row: row, Col: 0})
}

func (e *Editor) KeepCursorInRow()      { e.activeLeaf().KeepCursorInRow() }
func (e *Editor) PageUp(multiplier int) { e.activeLeaf().PageUp(multiplier) }
func (e *Editor) PageDown(multiplier int) { e.activeLeaf().PageDown(multiplier) }
func (e *Editor) HalfPageUp(multiplier int) { e.activeLeaf().HalfPageUp(multiplier) }
func (e *Editor) HalfPageDown(multiplier int) { e.activeLeaf().HalfPageDown(multiplier) }

func (e *Editor) ReplaceCharacterAtCursor(cursor types.Point, c rune) rune {
	return e.activeLeaf().ReplaceCharacterAtCursor(cursor, c)
}
func (e *Editor) DeleteRowsAtCursor(multiplier int) string {
	return e.activeLeaf().DeleteRowsAtCursor(multiplier)
}
func (e *Editor) DeleteWordsAtCursor(multiplier int) string {
	return e.activeLeaf().DeleteWordsAtCursor(multiplier)
}
func (e *Editor) DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string {
	return e.activeLeaf().DeleteCharactersAtCursor(multiplier, undo, finallyDeleteRow)
}
// InsertChar feeds c to the in-flight insert operation (for "." repeat
// bookkeeping, mirroring the teacher's Window.InsertChar reaching into
// w.editor.GetInsertOperation()) before applying it to the buffer.
func (e *Editor) InsertChar(c rune) {
	if e.insert != nil {
		e.insert.AddCharacter(c)
	}
	e.activeLeaf().InsertChar(c)
}

// BackspaceChar refuses to delete past what the active insert operation
// has itself accumulated, matching the teacher's Window.BackspaceChar:
// backspace in insert mode can only undo typing from this insert, not
// text that predates it.
func (e *Editor) BackspaceChar() rune {
	if e.insert == nil || e.insert.Length() == 0 {
		return 0
	}
	e.insert.DeleteCharacter()
	return e.activeLeaf().BackspaceChar()
}
func (e *Editor) InsertText(text string, position int) (types.Point, int) {
	return e.activeLeaf().InsertText(text, position)
}
func (e *Editor) ReverseCaseCharactersAtCursor(multiplier int) {
	e.activeLeaf().ReverseCaseCharactersAtCursor(multiplier)
}
func (e *Editor) JoinRow(multiplier int) []types.Point { return e.activeLeaf().JoinRow(multiplier) }
func (e *Editor) ChangeWordAtCursor(multiplier int, text string) (string, int) {
	return e.activeLeaf().ChangeWordAtCursor(multiplier, text)
}

// YankRow copies multiplier rows starting at the cursor onto the paste
// board, as a newline delimited, newline mode paste. This is where the
// InsertOperation-accumulation and paste-board bookkeeping the teacher
// keeps on Window moves onto Editor, since window.Window has no
// back-reference to reach it (see DESIGN.md).
func (e *Editor) YankRow(multiplier int) {
	text := e.activeLeaf().YankRow(multiplier)
	e.SetPasteBoard(text, types.PasteNewLine)
}

func (e *Editor) SetPasteBoard(text string, mode int) {
	e.pasteText = text
	e.pasteMode = mode
}
func (e *Editor) GetPasteMode() int    { return e.pasteMode }
func (e *Editor) GetPasteText() string { return e.pasteText }

// Perform runs op against the editor, unless the active buffer is
// read-only, and records it for Repeat. Grounded on pkg/editor/editor.go's
// Perform; this editor does not separately stack inverses for
// PerformUndo, since the buffer's own undo history is authoritative (see
// DESIGN.md's "Undo architecture" section) — the inverse op.Perform
// returns is discarded here rather than pushed onto an undo stack.
func (e *Editor) Perform(op types.Operation, multiplier int) {
	if e.activeLeaf().GetBuffer().GetReadOnly() {
		return
	}
	op.Perform(e, multiplier)
	e.previous = op
}

// Repeat replays the last performed operation (the "." command).
func (e *Editor) Repeat() {
	if e.previous != nil {
		e.previous.Perform(e, 0)
	}
}

// PerformUndo/PerformRedo call straight through to the active buffer's
// own undo history, which is authoritative; internal/operations'
// inverse-returning pattern backs Repeat only.
func (e *Editor) PerformUndo() { e.activeLeaf().GetBuffer().Undo() }
func (e *Editor) PerformRedo() { e.activeLeaf().GetBuffer().Redo() }

func (e *Editor) SetInsertOperation(insert types.InsertOperation) { e.insert = insert }
func (e *Editor) GetInsertOperation() types.InsertOperation       { return e.insert }

// CloseInsert closes the active insert operation, if any, and clears it.
func (e *Editor) CloseInsert() {
	if e.insert != nil {
		e.insert.Close()
		e.insert = nil
	}
}

func (e *Editor) PerformSearchForward(text string) {
	buf := e.activeLeaf().GetBuffer()
	buf.LastSearch = text
	e.activeLeaf().PerformSearchForward(text)
}
func (e *Editor) PerformSearchBackward(text string) {
	buf := e.activeLeaf().GetBuffer()
	buf.LastSearch = text
	e.activeLeaf().PerformSearchBackward(text)
}

// LayoutWindows lays out the active tab group's tree over the editor's
// size, reserving the top row for the tab bar and the bottom row for the
// message bar, per spec's terminal layout.
func (e *Editor) LayoutWindows() {
	if e.activeTab == nil || e.size.Rows < 3 {
		return
	}
	rect := types.Rect{
		Origin: types.Point{Row: 1, Col: 0},
		Size:   types.Size{Rows: e.size.Rows - 2, Cols: e.size.Cols},
	}
	e.activeTab.Root.Layout(rect)
}

// RenderWindows draws the tab bar, the active tab group's window tree,
// and the message bar (delegated to the caller via Commander, so this
// only draws the tab bar and windows; the commander's message bar text
// is drawn by the caller that has a Commander in hand) to d.
func (e *Editor) RenderWindows(d types.Display) {
	render.RenderTabBar(d, e.tabs, e.activeTab.ID, e.size.Cols)
	e.renderer.RenderWindow(d, e.activeTab.Root, e.activeTab.Active)
}

func (e *Editor) SplitWindowVertically() {
	active := e.activeLeaf()
	_, right := active.SplitVertically()
	e.activeTab.Focus(right)
	e.LayoutWindows()
}

func (e *Editor) SplitWindowHorizontally() {
	active := e.activeLeaf()
	_, bottom := active.SplitHorizontally()
	e.activeTab.Focus(bottom)
	e.LayoutWindows()
}

func (e *Editor) CloseActiveWindow() {
	e.activeTab.CloseActive()
	e.LayoutWindows()
}

func (e *Editor) Gofmt(filename string, inputBytes []byte) ([]byte, error) {
	return runGofmt(filename, inputBytes, e.log)
}
