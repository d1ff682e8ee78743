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

// Package render draws the window tree to a types.Display: a tab bar
// across the top, each leaf's buffer content colored from its highlight
// cache with current-line/selection/bracket-match overdraw and a
// per-leaf status line, and a terminal-wide message bar at the bottom.
// Grounded on the teacher's pkg/editor/window.go Render/RenderBuffer and
// screen/screen.go's RenderInfoBar/RenderMessageBar, generalized from a
// single always-visible buffer to an arbitrary split/tab window tree.
package render

import (
	"fmt"

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/types"
	"github.com/gottx/gottx/internal/window"
)

// CustomRenderer draws a leaf whose content is opaque script-registered
// data rather than a buffer.
type CustomRenderer func(d types.Display, rect types.Rect, dataHandle string)

// GutterRenderer computes the text drawn left of a buffer leaf's text
// column for one row (typically a line number). While a GutterRenderer
// is set, every row reserves four gutter columns; an empty string leaves
// them blank.
type GutterRenderer func(b *buffer.Buffer, row int) string

// Renderer draws the window tree. Custom and gutter renderers are
// pluggable so the script bridge can register them without this package
// depending on it.
type Renderer struct {
	Custom map[string]CustomRenderer
	Gutter GutterRenderer
}

// NewRenderer builds a Renderer with no custom or gutter renderers
// registered.
func NewRenderer() *Renderer {
	return &Renderer{Custom: make(map[string]CustomRenderer)}
}

// RegisterCustom installs the renderer used for leaves with the given
// renderer name.
func (r *Renderer) RegisterCustom(name string, fn CustomRenderer) {
	r.Custom[name] = fn
}

func colorForKind(k types.HighlightKind) types.Color {
	switch k {
	case types.HighlightKeyword:
		return types.Color(0x0e) // bright magenta in termbox's Output256 palette
	case types.HighlightType:
		return types.Color(0x0c)
	case types.HighlightString:
		return types.Color(0x0a)
	case types.HighlightNumber:
		return types.Color(0x0d)
	case types.HighlightComment:
		return types.Color(0x08)
	case types.HighlightPreprocessor:
		return types.Color(0x0b)
	case types.HighlightOperator:
		return types.Color(0x07)
	case types.HighlightIdentifier:
		return types.Color(types.ColorWhite)
	default:
		return types.Color(types.ColorWhite)
	}
}

// RenderTabBar draws the tab strip across row 0, highlighting the
// active tab.
func RenderTabBar(d types.Display, groups []*window.TabGroup, activeID int, cols int) {
	col := 0
	for _, g := range groups {
		label := fmt.Sprintf(" %s ", g.Name)
		for _, ch := range label {
			if col >= cols {
				return
			}
			if g.ID == activeID {
				d.SetCellReversed(col, 0, ch, types.Color(types.ColorWhite))
			} else {
				d.SetCell(col, 0, ch, types.Color(types.ColorWhite))
			}
			col++
		}
	}
	for ; col < cols; col++ {
		d.SetCell(col, 0, ' ', types.Color(types.ColorWhite))
	}
}

// RenderMessageBar draws a single status/command/search line across the
// bottom row.
func RenderMessageBar(d types.Display, row, cols int, text string) {
	if len(text) > cols {
		text = text[:cols]
	}
	col := 0
	for _, ch := range text {
		d.SetCell(col, row, ch, types.Color(types.ColorWhite))
		col++
	}
	for ; col < cols; col++ {
		d.SetCell(col, row, ' ', types.Color(types.ColorWhite))
	}
}

// RenderWindow recursively draws w's subtree: a split draws both
// children plus a one-cell dividing bar; a leaf draws its buffer or
// custom content.
func (r *Renderer) RenderWindow(d types.Display, w *window.Window, focused *window.Window) {
	if w.IsLeaf() {
		if w.IsCustom() {
			r.renderCustomLeaf(d, w)
		} else {
			r.renderBufferLeaf(d, w, w == focused)
		}
		return
	}
	r.RenderWindow(d, w.Left(), focused)
	r.RenderWindow(d, w.Right(), focused)
	r.renderDivider(d, w)
}

func (r *Renderer) renderDivider(d types.Display, w *window.Window) {
	rect := w.Rect()
	if w.Orientation() == types.Vertical {
		col := w.Right().Rect().Origin.Col - 1
		for row := rect.Origin.Row; row < rect.Origin.Row+rect.Size.Rows; row++ {
			d.SetCell(col, row, '|', types.Color(types.ColorWhite))
		}
	} else {
		row := w.Right().Rect().Origin.Row - 1
		for col := rect.Origin.Col; col < rect.Origin.Col+rect.Size.Cols; col++ {
			d.SetCell(col, row, '-', types.Color(types.ColorWhite))
		}
	}
}

func (r *Renderer) renderCustomLeaf(d types.Display, w *window.Window) {
	fn, ok := r.Custom[w.RendererName()]
	if !ok {
		return
	}
	fn(d, w.Rect(), w.CustomDataHandle())
}

// renderBufferLeaf draws one buffer-backed leaf: scrolls to keep the
// cursor in view, then for each visible row draws gutter, highlighted
// text, current-line/selection/bracket overdraw, and finally a status
// line on the leaf's last row.
func (r *Renderer) renderBufferLeaf(d types.Display, w *window.Window, focused bool) {
	buf := w.GetBuffer()
	rect := w.Rect()
	textRows := rect.Size.Rows - 1
	if textRows < 1 {
		textRows = 1
	}

	cursor := w.GetCursor()
	rowOffset, colOffset := w.ScrollOffsets()
	if cursor.Row < rowOffset {
		rowOffset = cursor.Row
	}
	if cursor.Row >= rowOffset+textRows {
		rowOffset = cursor.Row - textRows + 1
	}
	gutterWidth := 0
	if r.Gutter != nil {
		gutterWidth = 4
	}
	textCols := rect.Size.Cols - gutterWidth
	if cursor.Col < colOffset {
		colOffset = cursor.Col
	}
	if cursor.Col >= colOffset+textCols {
		colOffset = cursor.Col - textCols + 1
	}
	w.SetScrollOffsets(rowOffset, colOffset)

	selection := buf.GetSelection()
	bracket := buf.FindMatchingBracket()

	for i := 0; i < textRows; i++ {
		row := i + rowOffset
		screenRow := rect.Origin.Row + i
		if r.Gutter != nil {
			label := r.Gutter(buf, row)
			for x := 0; x < gutterWidth; x++ {
				ch := ' '
				if x < len(label) {
					ch = rune(label[x])
				}
				d.SetCell(rect.Origin.Col+x, screenRow, ch, types.Color(types.ColorWhite))
			}
		}
		if row >= buf.GetRowCount() {
			d.SetCell(rect.Origin.Col+gutterWidth, screenRow, '~', types.Color(types.ColorWhite))
			for x := gutterWidth + 1; x < rect.Size.Cols; x++ {
				d.SetCell(rect.Origin.Col+x, screenRow, ' ', types.Color(types.ColorWhite))
			}
			continue
		}
		r.renderTextRow(d, buf, w, row, rect, gutterWidth, colOffset, textCols, screenRow, selection, bracket, cursor)
	}

	infoRow := rect.Origin.Row + rect.Size.Rows - 1
	RenderMessageBar(d, infoRow, rect.Size.Cols, leafStatusText(w, buf))

	if focused {
		d.SetCursor(types.Point{
			Row: rect.Origin.Row + (cursor.Row - rowOffset),
			Col: rect.Origin.Col + gutterWidth + (cursor.Col - colOffset),
		})
	}
}

func (r *Renderer) renderTextRow(d types.Display, buf *buffer.Buffer, w *window.Window, row int, rect types.Rect, gutterWidth, colOffset, textCols, screenRow int, selection types.Selection, bracket types.BracketMatch, cursor types.Point) {
	line := buf.RowBytes(row)
	segments := buf.Cache().Lookup(row, line)
	isCurrentLine := row == cursor.Row

	for col := 0; col < textCols; col++ {
		srcCol := col + colOffset
		screenCol := rect.Origin.Col + gutterWidth + col
		if srcCol >= len(line) {
			ch := rune(' ')
			color := types.Color(types.ColorWhite)
			if isCurrentLine {
				d.SetCellReversed(screenCol, screenRow, ch, color)
			} else {
				d.SetCell(screenCol, screenRow, ch, color)
			}
			continue
		}
		ch := rune(line[srcCol])
		color := colorForKind(segmentKindAt(segments, srcCol))
		reversed := false
		if selection.Active && inSelection(selection, row, srcCol, buf) {
			reversed = true
		}
		if bracket.Found && bracket.Row == row && bracket.Col == srcCol {
			reversed = true
		}
		if reversed {
			d.SetCellReversed(screenCol, screenRow, ch, color)
		} else {
			d.SetCell(screenCol, screenRow, ch, color)
		}
	}
}

func segmentKindAt(segments []types.HighlightSegment, col int) types.HighlightKind {
	for _, seg := range segments {
		if col >= seg.StartCol && col < seg.EndColExclusive {
			return seg.Kind
		}
	}
	return types.HighlightNormal
}

func inSelection(sel types.Selection, row, col int, buf *buffer.Buffer) bool {
	cursor := buf.GetCursor()
	anchor := types.Point{Row: sel.AnchorY, Col: sel.AnchorX}
	start, end := anchor, cursor
	if start.Row > end.Row || (start.Row == end.Row && start.Col > end.Col) {
		start, end = end, start
	}
	p := types.Point{Row: row, Col: col}
	if p.Row < start.Row || p.Row > end.Row {
		return false
	}
	if p.Row == start.Row && p.Col < start.Col {
		return false
	}
	if p.Row == end.Row && p.Col >= end.Col {
		return false
	}
	return true
}

func leafStatusText(w *window.Window, buf *buffer.Buffer) string {
	finalText := fmt.Sprintf(" %d/%d ", w.GetCursor().Row+1, buf.GetRowCount())
	text := fmt.Sprintf("%s ", buf.GetName())
	if buf.GetReadOnly() {
		text += "(read-only) "
	}
	if buf.IsModified() {
		text += "[modified] "
	}
	width := w.Rect().Size.Cols
	for len(text) <= width-len(finalText)-1 {
		text += "."
	}
	text += finalText
	return text
}
