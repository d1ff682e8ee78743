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

import "fmt"

// TabGroup is a named container holding one window tree and a pointer to
// that tree's currently focused leaf. Tab groups form an ordered list
// owned by the editor.
type TabGroup struct {
	ID     int
	Name   string
	Root   *Window
	Active *Window
}

var lastTabGroupID int

// NewTabGroup builds a tab group whose tree is the given leaf alone, with
// that leaf active.
func NewTabGroup(name string, leaf *Window) *TabGroup {
	lastTabGroupID++
	return &TabGroup{ID: lastTabGroupID, Name: name, Root: leaf, Active: leaf}
}

// Focus sets the tab group's active leaf and updates each leaf's focused
// flag accordingly.
func (g *TabGroup) Focus(leaf *Window) {
	for _, l := range g.Root.Leaves() {
		l.SetFocused(l == leaf)
	}
	g.Active = leaf
}

// CloseActive closes the active leaf, refusing when it is the tree's
// only leaf (the root), and focuses the leaf Close() returns.
func (g *TabGroup) CloseActive() error {
	if g.Active.IsLeaf() && g.Active.parent == nil {
		return fmt.Errorf("cannot close the only window in tab %q", g.Name)
	}
	next := g.Active.Close()
	g.Root = next.Root()
	g.Focus(next)
	return nil
}

// Only collapses the tree to the active leaf alone.
func (g *TabGroup) Only() {
	solo := g.Active.Only()
	g.Root = solo
	g.Focus(solo)
}

// FocusNext/FocusPrevious cycle the active leaf through the in-order
// leaf sequence.
func (g *TabGroup) FocusNext() {
	g.Focus(g.Active.NextLeaf())
}

func (g *TabGroup) FocusPrevious() {
	g.Focus(g.Active.PrevLeaf())
}
