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

// Package operations wraps editing commands into repeatable units. Each
// exported type embeds operation for its cursor/multiplier bookkeeping
// and implements types.Operation by performing its edit against the
// editor and returning a best-effort inverse, used by Editor.Repeat and
// kept for symmetry with how an operation is applied. The buffer's own
// undo history (internal/buffer) is the single source of truth for
// undo/redo; these returned inverses are not replayed by PerformUndo.
package operations

import "github.com/gottx/gottx/internal/types"

// operation is the base embedded by every operation type, recording the
// cursor position and multiplier an operation was performed with so it
// can be repeated or, when constructed as an inverse, restore that
// cursor before reapplying.
type operation struct {
	Cursor     types.Point
	Multiplier int
	Undo       bool
}

// init restores the recorded cursor when this operation is itself an
// inverse being performed, or captures the editor's current cursor and
// multiplier (defaulting to 1) when performed normally.
func (o *operation) init(e types.Editor, multiplier int) {
	if o.Undo {
		e.SetCursor(o.Cursor)
		return
	}
	o.Cursor = e.GetCursor()
	if multiplier == 0 {
		multiplier = 1
	}
	o.Multiplier = multiplier
}

// copyForUndo copies this operation's cursor/multiplier into other and
// marks other as an inverse.
func (o *operation) copyForUndo(other *operation) {
	other.Cursor = o.Cursor
	other.Multiplier = o.Multiplier
	other.Undo = true
}
