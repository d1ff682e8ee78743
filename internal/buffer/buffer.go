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

// Package buffer implements the editor's per-file text buffer: row
// storage, cursor, selection, bracket matching, and the undo history and
// highlight cache attached to it.
package buffer

import (
	"os"
	"strings"

	"github.com/gottx/gottx/internal/highlight"
	"github.com/gottx/gottx/internal/row"
	"github.com/gottx/gottx/internal/syntax"
	"github.com/gottx/gottx/internal/types"
)

// Buffer owns an ordered sequence of rows, a cursor, a selection, a
// bounded undo history, and a highlight cache kept 1:1 with its rows.
type Buffer struct {
	Name     string
	ReadOnly bool

	rows     []row.Row
	fileName string
	modified bool

	cursor    types.Point
	selection types.Selection

	syntaxDef *syntax.Definition
	cache     *highlight.Cache
	undo      *UndoHistory

	// LastSearch retains the most recent search string so a future
	// redraw pass can re-highlight matches; see SPEC_FULL's supplemented
	// search-term retention feature.
	LastSearch string
}

// New constructs an empty buffer with a default-bounded undo history.
func New() *Buffer {
	b := &Buffer{
		rows: make([]row.Row, 0),
		undo: NewUndoHistory(DefaultMaxUndoSize),
	}
	b.cache = highlight.NewCache(nil)
	b.cache.SetLineFetcher(b.RowBytes)
	return b
}

// SetUndoBound overrides the undo history's maximum size.
func (b *Buffer) SetUndoBound(max int) {
	b.undo = NewUndoHistory(max)
}

func (b *Buffer) SetNameAndReadOnly(name string, readOnly bool) {
	b.Name = name
	b.ReadOnly = readOnly
}

func (b *Buffer) GetName() string     { return b.Name }
func (b *Buffer) GetFileName() string { return b.fileName }
func (b *Buffer) GetReadOnly() bool   { return b.ReadOnly }
func (b *Buffer) IsModified() bool    { return b.modified }

// SetFileName records the buffer's on-disk path and uses it as the
// buffer's name. It does not attach a syntax definition; callers with a
// registry do that through AttachSyntax.
func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.Name = name
}

// AttachSyntax sets the buffer's syntax definition (a weak reference;
// the registry owns it) and rebuilds the highlight cache's tokenizer.
func (b *Buffer) AttachSyntax(def *syntax.Definition) {
	b.syntaxDef = def
	b.cache.SetTokenizer(b.tokenizeFunc())
}

// GetSyntax returns the buffer's attached syntax definition, or nil.
func (b *Buffer) GetSyntax() *syntax.Definition { return b.syntaxDef }

func (b *Buffer) tokenizeFunc() highlight.TokenizeFunc {
	def := b.syntaxDef
	return func(line []byte, prevEndsInMultiline bool) ([]types.HighlightSegment, bool) {
		return syntax.Tokenize(def, line, prevEndsInMultiline)
	}
}

// Cache exposes the buffer's highlight cache to the renderer.
func (b *Buffer) Cache() *highlight.Cache { return b.cache }

func (b *Buffer) resizeCache(oldLen int) {
	b.cache.Resize(oldLen, len(b.rows))
}

// GetCursor and SetCursor manage the buffer's own cursor; windows may
// keep a copy for display purposes but the buffer is authoritative for
// byte-position invariants.
func (b *Buffer) GetCursor() types.Point  { return b.cursor }
func (b *Buffer) SetCursor(p types.Point) { b.cursor = p }

// LoadBytes replaces the buffer's contents with the given bytes split on
// '\n', returning the previous contents. This resets the undo history
// and invalidates the entire highlight cache.
func (b *Buffer) LoadBytes(bytes []byte) []byte {
	previous := b.GetBytes()
	lines := strings.Split(string(bytes), "\n")
	old := len(b.rows)
	b.rows = make([]row.Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, row.New(line))
	}
	b.resizeCache(old)
	b.cache.InvalidateFrom(0)
	b.cursor = types.Point{}
	b.undo = NewUndoHistory(b.undo.MaxSize)
	b.modified = false
	return []byte(previous)
}

// AppendBytes appends lines split on '\n' to the end of the buffer.
func (b *Buffer) AppendBytes(bytes []byte) {
	old := len(b.rows)
	lines := strings.Split(string(bytes), "\n")
	for _, line := range lines {
		b.rows = append(b.rows, row.New(line))
	}
	b.resizeCache(old)
}

// GetBytes serializes the buffer's rows, joined with '\n'.
func (b *Buffer) GetBytes() []byte {
	parts := make([]string, len(b.rows))
	for i := range b.rows {
		parts[i] = b.rows[i].DisplayText()
	}
	return []byte(strings.Join(parts, "\n"))
}

func (b *Buffer) GetRowCount() int { return len(b.rows) }

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) RowBytes(i int) []byte {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i].Text
}

func (b *Buffer) GetCharacterAtCursor(cursor types.Point) byte {
	if cursor.Row < 0 || cursor.Row >= len(b.rows) {
		return 0
	}
	return b.rows[cursor.Row].ByteAt(cursor.Col)
}

// FirstPositionInRowAfterCol returns the byte offset in row of the first
// occurrence of text strictly after col, or -1 if row is out of range or
// text does not occur there; used by forward search.
func (b *Buffer) FirstPositionInRowAfterCol(row, col int, text string) int {
	if row < 0 || row >= len(b.rows) {
		return -1
	}
	return b.rows[row].FirstPositionAfterCol(col, text)
}

// LastPositionInRowBeforeCol returns the byte offset in row of the last
// occurrence of text strictly before col, or -1 if row is out of range or
// text does not occur there; used by backward search.
func (b *Buffer) LastPositionInRowBeforeCol(row, col int, text string) int {
	if row < 0 || row >= len(b.rows) {
		return -1
	}
	return b.rows[row].LastPositionBeforeCol(col, text)
}

func (b *Buffer) TextFromPosition(rowIdx, col int) string {
	if rowIdx < 0 || rowIdx >= len(b.rows) {
		return ""
	}
	r := b.rows[rowIdx]
	if col < 0 {
		col = 0
	}
	if col > r.Length() {
		col = r.Length()
	}
	return string(r.Text[col:])
}

// appendRow appends an empty or given row at the end, used internally
// when insert_byte targets cy == |rows|.
func (b *Buffer) appendRow(r row.Row) {
	old := len(b.rows)
	b.rows = append(b.rows, r)
	b.resizeCache(old)
}

// AppendRow appends a row built from bytes.
func (b *Buffer) AppendRow(bytes []byte) {
	b.appendRow(row.NewFromBytes(bytes))
}

func (b *Buffer) markModified() { b.modified = true }

// InsertByte implements the Buffer contract's insert_byte: inserts c at
// (cx, cy), advances the cursor, marks modified, pushes an undo record,
// and dirties the highlight cache from cy onward. If cy == |rows| an
// empty row is appended first.
func (b *Buffer) InsertByte(cx, cy int, c byte) {
	if cy >= len(b.rows) {
		b.appendRow(row.New(""))
	}
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	b.rows[cy].InsertByte(cx, c)
	b.markModified()
	b.undo.Push(UndoAction{Kind: ActionInsertChar, X: cx, Y: cy, Byte: c})
	b.cache.InvalidateFrom(cy)
	b.cursor = types.Point{Row: cy, Col: cx + 1}
}

// insertByteNoUndo performs the same mutation as InsertByte but does not
// push an undo record; used by undo/redo application and by paste, which
// manages its own coarser-grained undo record.
func (b *Buffer) insertByteNoUndo(cx, cy int, c byte) {
	if cy >= len(b.rows) {
		b.appendRow(row.New(""))
	}
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	b.rows[cy].InsertByte(cx, c)
	b.markModified()
	b.cache.InvalidateFrom(cy)
}

// leadingIndent returns the count of leading spaces or tabs in r.
func leadingIndent(r row.Row) int {
	n := 0
	for n < r.Length() {
		c := r.ByteAt(n)
		if c != ' ' && c != '\t' {
			break
		}
		n++
	}
	return n
}

// InsertNewline implements insert_newline: splits the current row at cx,
// moving [cx, size) into a new row at cy+1, and places the cursor at
// (indent, cy+1) unless autoIndent is false (paste-originated newlines
// bypass auto-indent to preserve source whitespace exactly).
func (b *Buffer) InsertNewline(cx, cy int, autoIndent bool) {
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	tail := b.rows[cy].Split(cx)
	old := len(b.rows)
	b.rows = append(b.rows, row.Row{})
	copy(b.rows[cy+2:], b.rows[cy+1:])
	b.rows[cy+1] = tail
	b.resizeCache(old)
	b.markModified()
	b.undo.Push(UndoAction{Kind: ActionInsertLine, X: cx, Y: cy, Line: append([]byte(nil), tail.Text...)})
	b.cache.InvalidateFrom(cy)
	indent := 0
	if autoIndent {
		indent = leadingIndent(b.rows[cy+1])
	}
	b.cursor = types.Point{Row: cy + 1, Col: indent}
}

// DeleteByteBeforeCursor implements backspace semantics: with cx > 0,
// deletes the byte before the cursor; with cx == 0 and cy > 0, merges the
// current row onto the end of the previous row and removes the current
// row; no-op at (0,0).
func (b *Buffer) DeleteByteBeforeCursor(cx, cy int) {
	if cx > 0 {
		if cy < 0 || cy >= len(b.rows) {
			return
		}
		c := b.rows[cy].DeleteByte(cx - 1)
		b.markModified()
		b.undo.Push(UndoAction{Kind: ActionDeleteChar, X: cx - 1, Y: cy, Byte: c})
		b.cache.InvalidateFrom(cy)
		b.cursor = types.Point{Row: cy, Col: cx - 1}
		return
	}
	if cx == 0 && cy > 0 {
		prevSize := b.rows[cy-1].Length()
		merged := b.rows[cy]
		b.undo.Push(UndoAction{Kind: ActionJoinLine, X: prevSize, Y: cy, Line: append([]byte(nil), merged.Text...)})
		b.rows[cy-1].Append(merged)
		old := len(b.rows)
		b.rows = append(b.rows[:cy], b.rows[cy+1:]...)
		b.resizeCache(old)
		b.markModified()
		b.cache.InvalidateFrom(cy - 1)
		b.cursor = types.Point{Row: cy - 1, Col: prevSize}
	}
}

// DeleteByteAtCursor deletes the byte at (cx, cy) (forward delete, as
// opposed to DeleteByteBeforeCursor's backspace semantics) and returns
// the deleted byte, or 0 if out of range.
func (b *Buffer) DeleteByteAtCursor(cx, cy int) byte {
	if cy < 0 || cy >= len(b.rows) || cx < 0 || cx >= b.rows[cy].Length() {
		return 0
	}
	c := b.rows[cy].DeleteByte(cx)
	b.markModified()
	b.undo.Push(UndoAction{Kind: ActionDeleteChar, X: cx, Y: cy, Byte: c})
	b.cache.InvalidateFrom(cy)
	b.cursor = types.Point{Row: cy, Col: cx}
	return c
}

// ReplaceByte replaces the byte at (cx, cy) with c and returns the byte
// it replaced, recorded as a delete-then-insert undo pair so a single
// Undo call restores the original.
func (b *Buffer) ReplaceByte(cx, cy int, c byte) byte {
	if cy < 0 || cy >= len(b.rows) || cx < 0 || cx >= b.rows[cy].Length() {
		return 0
	}
	previous := b.rows[cy].ReplaceByte(cx, c)
	b.markModified()
	b.undo.Push(UndoAction{Kind: ActionGroupBegin})
	b.undo.Push(UndoAction{Kind: ActionDeleteChar, X: cx, Y: cy, Byte: previous})
	b.undo.Push(UndoAction{Kind: ActionInsertChar, X: cx, Y: cy, Byte: c})
	b.undo.Push(UndoAction{Kind: ActionGroupEnd})
	b.cache.InvalidateFrom(cy)
	b.cursor = types.Point{Row: cy, Col: cx}
	return previous
}

// DeleteRow removes row index outright (no merge into a neighbor) and
// returns its text, pushing an undo record that reinserts it at the same
// index on Undo.
func (b *Buffer) DeleteRow(index int) string {
	if index < 0 || index >= len(b.rows) {
		return ""
	}
	text := string(b.rows[index].Text)
	b.undo.Push(UndoAction{Kind: ActionRemoveRow, Y: index, Line: append([]byte(nil), b.rows[index].Text...)})
	old := len(b.rows)
	b.rows = append(b.rows[:index], b.rows[index+1:]...)
	b.resizeCache(old)
	b.markModified()
	b.cache.InvalidateFrom(index - 1)
	switch {
	case index < len(b.rows):
		b.cursor = types.Point{Row: index, Col: 0}
	case len(b.rows) > 0:
		b.cursor = types.Point{Row: len(b.rows) - 1, Col: 0}
	default:
		b.cursor = types.Point{}
	}
	return text
}

// JoinRows merges row cy+1 onto the end of row cy and removes row cy+1,
// returning the column at which they were joined (the original length of
// row cy). Used by the explicit row-join command, as distinct from
// DeleteByteBeforeCursor's backspace-triggered join.
func (b *Buffer) JoinRows(cy int) int {
	if cy < 0 || cy+1 >= len(b.rows) {
		return b.rows[cy].Length()
	}
	joinCol := b.rows[cy].Length()
	merged := b.rows[cy+1]
	b.undo.Push(UndoAction{Kind: ActionJoinLine, X: joinCol, Y: cy + 1, Line: append([]byte(nil), merged.Text...)})
	b.rows[cy].Append(merged)
	old := len(b.rows)
	b.rows = append(b.rows[:cy+1], b.rows[cy+2:]...)
	b.resizeCache(old)
	b.markModified()
	b.cache.InvalidateFrom(cy)
	b.cursor = types.Point{Row: cy, Col: joinCol}
	return joinCol
}

// Save writes each row's bytes followed by '\n' to the attached path,
// clearing modified on success.
func (b *Buffer) Save(path string) error {
	if err := os.WriteFile(path, append(b.GetBytes(), '\n'), 0644); err != nil {
		return err
	}
	b.modified = false
	return nil
}

// Open reads path by lines, stripping trailing '\n' or '\r\n', appends
// each as a row, and clears modified. Syntax attachment by filename is
// the caller's responsibility (it requires a registry).
func (b *Buffer) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b.LoadBytes(normalizeLineEndings(data))
	b.SetFileName(path)
	b.modified = false
	return nil
}

func normalizeLineEndings(data []byte) []byte {
	return []byte(strings.ReplaceAll(string(data), "\r\n", "\n"))
}
