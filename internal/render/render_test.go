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

package render

import (
	"testing"

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/types"
	"github.com/gottx/gottx/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	ch       rune
	reversed bool
}

type fakeDisplay struct {
	cells  map[[2]int]cell
	cursor types.Point
}

func newFakeDisplay() *fakeDisplay { return &fakeDisplay{cells: make(map[[2]int]cell)} }

func (d *fakeDisplay) Close()                       {}
func (d *fakeDisplay) GetNextEvent() *types.Event    { return nil }
func (d *fakeDisplay) Render(types.Editor, types.Commander) {}
func (d *fakeDisplay) SetCell(j, i int, c rune, color types.Color) {
	d.cells[[2]int{j, i}] = cell{ch: c}
}
func (d *fakeDisplay) SetCellReversed(j, i int, c rune, color types.Color) {
	d.cells[[2]int{j, i}] = cell{ch: c, reversed: true}
}
func (d *fakeDisplay) SetCursor(p types.Point) { d.cursor = p }

func (d *fakeDisplay) at(col, row int) cell { return d.cells[[2]int{col, row}] }

func newFocusedLeaf(rows, cols int, content string) *window.Window {
	b := buffer.New()
	b.LoadBytes([]byte(content))
	w := window.NewLeaf(b)
	w.Layout(types.Rect{Size: types.Size{Rows: rows, Cols: cols}})
	w.SetFocused(true)
	return w
}

func TestRenderBufferLeafDrawsTextAndPlacesCursor(t *testing.T) {
	d := newFakeDisplay()
	w := newFocusedLeaf(5, 20, "hello")
	w.SetCursor(types.Point{Row: 0, Col: 0})
	w.GetBuffer().SetCursor(types.Point{Row: 0, Col: 0})
	r := NewRenderer()

	r.renderBufferLeaf(d, w, true)

	assert.Equal(t, 'h', d.at(0, 0).ch)
	assert.Equal(t, 'e', d.at(1, 0).ch)
	assert.Equal(t, types.Point{Row: 0, Col: 0}, d.cursor)
}

func TestRenderBufferLeafMarksCurrentLineReversed(t *testing.T) {
	d := newFakeDisplay()
	w := newFocusedLeaf(5, 20, "abc\ndef")
	w.SetCursor(types.Point{Row: 1, Col: 0})
	w.GetBuffer().SetCursor(types.Point{Row: 1, Col: 0})
	r := NewRenderer()

	r.renderBufferLeaf(d, w, true)

	assert.True(t, d.at(5, 1).reversed)
	assert.False(t, d.at(5, 0).reversed)
}

func TestRenderBufferLeafOverdrawsSelection(t *testing.T) {
	d := newFakeDisplay()
	w := newFocusedLeaf(5, 20, "hello world")
	buf := w.GetBuffer()
	buf.SetCursor(types.Point{Row: 0, Col: 0})
	buf.BeginSelection()
	buf.SetCursor(types.Point{Row: 0, Col: 5})
	w.SetCursor(types.Point{Row: 0, Col: 5})
	r := NewRenderer()

	r.renderBufferLeaf(d, w, true)

	assert.True(t, d.at(2, 0).reversed)
	assert.False(t, d.at(6, 0).reversed)
}

func TestRenderWindowDrawsDividerBetweenSplits(t *testing.T) {
	d := newFakeDisplay()
	root := newFocusedLeaf(10, 20, "left")
	_, right := root.SplitVertically()
	right.GetBuffer().LoadBytes([]byte("right"))
	r := NewRenderer()

	r.RenderWindow(d, root, root.Left())

	dividerCol := root.Right().Rect().Origin.Col - 1
	assert.Equal(t, '|', d.at(dividerCol, 0).ch)
}

func TestRenderTabBarHighlightsActiveTab(t *testing.T) {
	d := newFakeDisplay()
	a := window.NewTabGroup("one", newFocusedLeaf(5, 10, ""))
	b := window.NewTabGroup("two", newFocusedLeaf(5, 10, ""))
	RenderTabBar(d, []*window.TabGroup{a, b}, b.ID, 40)

	require.NotEmpty(t, d.cells)
	found := false
	for _, c := range d.cells {
		if c.ch == 't' && c.reversed {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRenderMessageBarTruncatesToWidth(t *testing.T) {
	d := newFakeDisplay()
	RenderMessageBar(d, 0, 5, "way too long")
	assert.Equal(t, 'w', d.at(0, 0).ch)
	_, ok := d.cells[[2]int{5, 0}]
	assert.False(t, ok)
}
