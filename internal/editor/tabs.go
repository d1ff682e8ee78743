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
	"fmt"

	"github.com/gottx/gottx/internal/buffer"
	"github.com/gottx/gottx/internal/window"
)

// NewTabGroup creates a tab group named name, seeded with one empty
// scratch buffer leaf, and returns its ID. The teacher has no tab
// concept at all (every window lives in one tree); tab groups are
// spec.md's addition, grounded on original_source/include/window.h's
// TabGroup list.
func (e *Editor) NewTabGroup(name string) int {
	buf := buffer.New()
	buf.SetUndoBound(e.UndoHistoryBound)
	leaf := window.NewLeaf(buf)
	group := window.NewTabGroup(name, leaf)
	e.tabs = append(e.tabs, group)
	return group.ID
}

func (e *Editor) findTabGroup(id int) *window.TabGroup {
	for _, g := range e.tabs {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// SelectTabGroup switches the active tab group to id.
func (e *Editor) SelectTabGroup(id int) error {
	g := e.findTabGroup(id)
	if g == nil {
		return fmt.Errorf("no tab exists for identifier %d", id)
	}
	e.activeTab = g
	e.LayoutWindows()
	return nil
}

// CloseTabGroup removes the tab group with the given ID, refusing when
// it is the editor's only tab group (mirroring the refusal to close a
// tree's only leaf — see DESIGN.md's Open Question decision on this).
// Closing the active tab group falls back to the first remaining one.
func (e *Editor) CloseTabGroup(id int) error {
	if len(e.tabs) <= 1 {
		return fmt.Errorf("cannot close the only tab group")
	}
	for i, g := range e.tabs {
		if g.ID != id {
			continue
		}
		e.tabs = append(e.tabs[:i], e.tabs[i+1:]...)
		if e.activeTab == g {
			e.activeTab = e.tabs[0]
			e.LayoutWindows()
		}
		return nil
	}
	return fmt.Errorf("no tab exists for identifier %d", id)
}

// ListTabGroups reports the IDs of every open tab group, in creation
// order.
func (e *Editor) ListTabGroups() []int {
	ids := make([]int, len(e.tabs))
	for i, g := range e.tabs {
		ids[i] = g.ID
	}
	return ids
}
