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

// Package window implements the window tree: a tagged union of Leaf and
// Split nodes realized, as the teacher's single Window type does, as one
// struct whose nilable fields pick out which variant is live — a Split
// has left/right children and no buffer; a Leaf has content and no
// children.
package window

import (
	"fmt"

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/types"
)

// lastID is the monotonically increasing leaf/split ID counter, unique
// for the editor process's lifetime.
var lastID int

func nextID() string {
	lastID++
	return fmt.Sprintf("w%d", lastID)
}

// ContentKind distinguishes a leaf holding a buffer from one holding
// opaque script-registered content.
type ContentKind int

const (
	ContentBuffer ContentKind = iota
	ContentCustom
)

// lastWindowNumber is the teacher's sequential window numbering,
// displayed in the status line and used by ":N" window-select commands;
// distinct from id, which never gets reassigned across a split.
var lastWindowNumber = -1

// Window is one node of the window tree: a Split when left/right are
// both non-nil, a Leaf otherwise.
type Window struct {
	id     string
	number int
	rect   types.Rect
	parent *Window

	// Leaf fields.
	contentKind   ContentKind
	buf           *buffer.Buffer
	rendererName  string
	customDataHdl string
	rowOffset     int
	colOffset     int
	layoutHints   types.LayoutHints
	focused       bool
	customCursor  types.Point // cursor for a custom (bufferless) leaf

	// Split fields.
	orientation types.Orientation
	left        *Window
	right       *Window
	splitRatio  float64
}

// NewLeaf builds a leaf window holding buf.
func NewLeaf(buf *buffer.Buffer) *Window {
	lastWindowNumber++
	return &Window{id: nextID(), number: lastWindowNumber, buf: buf, contentKind: ContentBuffer}
}

// NewCustomLeaf builds a leaf window holding opaque script content.
func NewCustomLeaf(rendererName, dataHandle string) *Window {
	lastWindowNumber++
	return &Window{id: nextID(), number: lastWindowNumber, contentKind: ContentCustom, rendererName: rendererName, customDataHdl: dataHandle}
}

func (w *Window) ID() string     { return w.id }
func (w *Window) IsLeaf() bool   { return w.left == nil && w.right == nil }
func (w *Window) GetNumber() int { return w.number }

// GetName reports the buffer's name, or "**" for a container or custom
// leaf with nothing to name.
func (w *Window) GetName() string {
	if w.buf != nil {
		return w.buf.GetName()
	}
	return "**"
}

// FindWindow searches the subtree rooted at w for the leaf with the
// given sequential number.
func (w *Window) FindWindow(number int) *Window {
	if w.IsLeaf() {
		if w.number == number {
			return w
		}
		return nil
	}
	if found := w.left.FindWindow(number); found != nil {
		return found
	}
	return w.right.FindWindow(number)
}

func (w *Window) GetParent() *Window  { return w.parent }
func (w *Window) SetParent(p *Window) { w.parent = p }

func (w *Window) GetBuffer() *buffer.Buffer { return w.buf }

// SetBuffer replaces the buffer a leaf displays, used when a newly
// opened file takes over the editor's initial scratch leaf rather than
// splitting a new one alongside it.
func (w *Window) SetBuffer(buf *buffer.Buffer) {
	w.buf = buf
	w.contentKind = ContentBuffer
	w.rowOffset, w.colOffset = 0, 0
}
func (w *Window) IsCustom() bool            { return w.contentKind == ContentCustom }
func (w *Window) RendererName() string      { return w.rendererName }
func (w *Window) CustomDataHandle() string  { return w.customDataHdl }

func (w *Window) SetFocused(f bool) { w.focused = f }
func (w *Window) IsFocused() bool   { return w.focused }

func (w *Window) SetLayoutHints(h types.LayoutHints) { w.layoutHints = h }
func (w *Window) GetLayoutHints() types.LayoutHints  { return w.layoutHints }

// GetCursor/SetCursor proxy to the buffer's own cursor for a
// buffer-backed leaf (original_source/include/buffer.h keeps cursor_x/y
// on the buffer, not the window), and fall back to a window-local point
// for a custom leaf, which has no buffer to hold one.
func (w *Window) GetCursor() types.Point {
	if w.buf != nil {
		return w.buf.GetCursor()
	}
	return w.customCursor
}

func (w *Window) SetCursor(p types.Point) {
	if w.buf != nil {
		w.buf.SetCursor(p)
		return
	}
	w.customCursor = p
}

func (w *Window) Rect() types.Rect { return w.rect }

func (w *Window) Left() *Window                { return w.left }
func (w *Window) Right() *Window               { return w.right }
func (w *Window) Orientation() types.Orientation { return w.orientation }

func (w *Window) ScrollOffsets() (int, int)  { return w.rowOffset, w.colOffset }
func (w *Window) SetScrollOffsets(r, c int) { w.rowOffset, w.colOffset = r, c }

func clampRatio(r float64) float64 {
	if r < 0.1 {
		return 0.1
	}
	if r > 0.9 {
		return 0.9
	}
	return r
}

func (w *Window) SetSplitRatio(ratio float64) {
	if w.IsLeaf() {
		return
	}
	w.splitRatio = clampRatio(ratio)
	w.Layout(w.rect)
}

func (w *Window) GetSplitRatio() float64 {
	if w.IsLeaf() {
		return 0
	}
	return w.splitRatio
}

// Layout computes this node's geometry top-down: a split's children get
// a prorated region along its orientation; split_ratio persists across
// resizes.
func (w *Window) Layout(r types.Rect) {
	w.rect = r
	if w.IsLeaf() {
		return
	}
	var r1, r2 types.Rect
	if w.orientation == types.Horizontal {
		r1, r2 = r, r
		top := int(float64(r.Size.Rows) * w.splitRatio)
		r1.Size.Rows = top
		r2.Size.Rows = r.Size.Rows - top
		r2.Origin.Row += top
	} else {
		r1, r2 = r, r
		left := int(float64(r.Size.Cols) * w.splitRatio)
		r1.Size.Cols = left
		r2.Size.Cols = r.Size.Cols - left
		r2.Origin.Col += left
	}
	w.left.Layout(r1)
	w.right.Layout(r2)
}

// split turns w (a leaf) into a split node whose children are the
// original leaf's content, copied into left, and a fresh buffer-backed
// leaf as right, in the requested orientation.
func (w *Window) split(orientation types.Orientation) (*Window, *Window) {
	left := &Window{
		id:            w.id,
		number:        w.number,
		contentKind:   w.contentKind,
		buf:           w.buf,
		rendererName:  w.rendererName,
		customDataHdl: w.customDataHdl,
		parent:        w,
	}
	var rightBuf *buffer.Buffer
	if w.buf != nil {
		rightBuf = buffer.New()
	}
	right := NewLeaf(rightBuf)
	right.parent = w

	w.id = nextID()
	w.number = -1
	w.contentKind = ContentBuffer
	w.buf = nil
	w.rendererName = ""
	w.customDataHdl = ""
	w.left = left
	w.right = right
	w.orientation = orientation
	w.splitRatio = 0.5

	w.Layout(w.rect)
	return left, right
}

// SplitVertically splits w left/right.
func (w *Window) SplitVertically() (*Window, *Window) { return w.split(types.Vertical) }

// SplitHorizontally splits w top/bottom.
func (w *Window) SplitHorizontally() (*Window, *Window) { return w.split(types.Horizontal) }

// Close removes w from the tree, replacing its parent split with w's
// sibling, and returns the first leaf of the node that took the parent's
// place. Called on a node with no parent (the root), Close changes
// nothing and returns w; TabGroup.CloseActive refuses that case with an
// error before calling Close.
func (w *Window) Close() *Window {
	parent := w.parent
	if parent == nil {
		return w
	}
	var sibling *Window
	if parent.left == w {
		sibling = parent.right
	} else {
		sibling = parent.left
	}
	grandparent := parent.parent
	*parent = *sibling
	parent.parent = grandparent
	if parent.left != nil {
		parent.left.parent = parent
	}
	if parent.right != nil {
		parent.right.parent = parent
	}
	parent.Layout(parent.rect)
	return parent.firstLeaf()
}

func (w *Window) firstLeaf() *Window {
	n := w
	for !n.IsLeaf() {
		n = n.left
	}
	return n
}

func (w *Window) lastLeaf() *Window {
	n := w
	for !n.IsLeaf() {
		n = n.right
	}
	return n
}

// Root walks parent pointers to the tree's root.
func (w *Window) Root() *Window {
	n := w
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Leaves returns every leaf in the subtree rooted at w, in-order.
func (w *Window) Leaves() []*Window {
	if w.IsLeaf() {
		return []*Window{w}
	}
	return append(w.left.Leaves(), w.right.Leaves()...)
}

// Only replaces the entire tree with w as the sole leaf; other leaves'
// content is released (not destroyed — buffers are editor-owned) by the
// caller, since only the tree shape changes here.
func (w *Window) Only() *Window {
	root := w.Root()
	solo := &Window{
		id:            w.id,
		number:        w.number,
		contentKind:   w.contentKind,
		buf:           w.buf,
		rendererName:  w.rendererName,
		customDataHdl: w.customDataHdl,
	}
	*root = *solo
	root.parent = nil
	root.Layout(root.rect)
	return root
}

// Equalize recursively sets each split's ratio to the left subtree's
// leaf-count share of the whole subtree's leaf count, so geometry is
// distributed proportional to leaf counts. When any leaf in the subtree
// carries a non-zero layout-hint weight, weights are summed instead of
// leaf counts.
func Equalize(w *Window) {
	if w.IsLeaf() {
		return
	}
	Equalize(w.left)
	Equalize(w.right)
	leftWeight := subtreeWeight(w.left)
	totalWeight := leftWeight + subtreeWeight(w.right)
	if totalWeight > 0 {
		w.splitRatio = clampRatio(leftWeight / totalWeight)
	}
	w.Layout(w.rect)
}

func subtreeWeight(w *Window) float64 {
	total := 0.0
	hasWeight := false
	for _, leaf := range w.Leaves() {
		if leaf.layoutHints.Weight > 0 {
			hasWeight = true
			total += leaf.layoutHints.Weight
		}
	}
	if hasWeight {
		return total
	}
	return float64(len(w.Leaves()))
}

// Swap exchanges the content (not geometry) of two leaves.
func Swap(a, b *Window) {
	a.contentKind, b.contentKind = b.contentKind, a.contentKind
	a.buf, b.buf = b.buf, a.buf
	a.rendererName, b.rendererName = b.rendererName, a.rendererName
	a.customDataHdl, b.customDataHdl = b.customDataHdl, a.customDataHdl
}

// FindByID searches the subtree rooted at w for a node with the given ID.
func (w *Window) FindByID(id string) *Window {
	if w.id == id {
		return w
	}
	if w.IsLeaf() {
		return nil
	}
	if found := w.left.FindByID(id); found != nil {
		return found
	}
	return w.right.FindByID(id)
}

// NextLeaf returns the cyclic successor of w in the in-order leaf
// sequence of the whole tree.
func (w *Window) NextLeaf() *Window {
	leaves := w.Root().Leaves()
	for i, leaf := range leaves {
		if leaf == w {
			return leaves[(i+1)%len(leaves)]
		}
	}
	return w
}

// PrevLeaf returns the cyclic predecessor of w in the in-order leaf
// sequence of the whole tree.
func (w *Window) PrevLeaf() *Window {
	leaves := w.Root().Leaves()
	for i, leaf := range leaves {
		if leaf == w {
			return leaves[(i-1+len(leaves))%len(leaves)]
		}
	}
	return w
}
