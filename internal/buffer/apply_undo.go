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

package buffer

import (
	"github.com/gottx/gottx/internal/row"
	"github.com/gottx/gottx/internal/types"
)

// Undo applies the inverse of the action at the undo history's current
// position and moves current backward. It bypasses undo recording (it
// does not push a new action) and triggers a one-shot invalidate-from
// the minimum affected row rather than a full cache rebuild.
//
// A GroupEnd marks the tail of a logical group (ReplaceByte, PasteText);
// landing on one steps back through every action in the group, applying
// each inverse in turn, until its matching GroupBegin is consumed, so the
// whole group undoes as a single Undo call.
func (b *Buffer) Undo() bool {
	action, ok := b.undo.StepBack()
	if !ok {
		return false
	}
	if action.Kind == ActionGroupEnd {
		for {
			a, ok := b.undo.StepBack()
			if !ok {
				break
			}
			if a.Kind == ActionGroupBegin {
				break
			}
			b.applyInverse(a)
		}
		return true
	}
	b.applyInverse(action)
	return true
}

// Redo moves current forward and re-applies that action. Symmetrically,
// landing on a GroupBegin steps forward through the group, re-applying
// each action, until its matching GroupEnd is consumed.
func (b *Buffer) Redo() bool {
	action, ok := b.undo.StepForward()
	if !ok {
		return false
	}
	if action.Kind == ActionGroupBegin {
		for {
			a, ok := b.undo.StepForward()
			if !ok {
				break
			}
			if a.Kind == ActionGroupEnd {
				break
			}
			b.applyForward(a)
		}
		return true
	}
	b.applyForward(action)
	return true
}

// applyInverse undoes action: InsertChar <-> remove byte at (x,y);
// DeleteChar <-> insert byte c at (x,y); InsertLine/JoinLine/RemoveRow
// symmetrically.
func (b *Buffer) applyInverse(action UndoAction) {
	switch action.Kind {
	case ActionInsertChar:
		if action.Y >= 0 && action.Y < len(b.rows) {
			b.rows[action.Y].DeleteByte(action.X)
		}
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X}
	case ActionDeleteChar:
		if action.Y >= 0 && action.Y < len(b.rows) {
			b.rows[action.Y].InsertByte(action.X, action.Byte)
		}
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X + 1}
	case ActionInsertLine:
		// Row Y+1 was created by cutting Line off row Y at column X;
		// reverse that by reappending it to row Y and removing row Y+1.
		if action.Y >= 0 && action.Y+1 < len(b.rows) {
			b.rows[action.Y].Append(b.rows[action.Y+1])
		}
		b.removeLineInsertedAt(action.Y + 1)
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X}
	case ActionJoinLine:
		// Row Y was merged onto row Y-1 at split column X and removed;
		// reverse that by truncating row Y-1 back to X and reinserting
		// row Y with its original content.
		if action.Y-1 >= 0 && action.Y-1 < len(b.rows) {
			b.rows[action.Y-1].Split(action.X)
		}
		b.reinsertLineAt(action.Y, action.Line)
		b.cache.InvalidateFrom(action.Y - 1)
		b.cursor = types.Point{Row: action.Y, Col: 0}
	case ActionRemoveRow:
		b.reinsertLineAt(action.Y, action.Line)
		b.cache.InvalidateFrom(action.Y - 1)
		b.cursor = types.Point{Row: action.Y, Col: 0}
	case ActionDeleteRange:
		b.insertRangeAt(types.Point{Row: action.Y, Col: action.X}, string(action.Line))
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X}
	case ActionGroupBegin, ActionGroupEnd:
		// No direct state change; these bracket a logical group of
		// primitive actions applied individually around them.
	}
	b.markModified()
}

// applyForward re-applies action in its original forward direction.
func (b *Buffer) applyForward(action UndoAction) {
	switch action.Kind {
	case ActionInsertChar:
		if action.Y >= 0 && action.Y < len(b.rows) {
			b.rows[action.Y].InsertByte(action.X, action.Byte)
		}
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X + 1}
	case ActionDeleteChar:
		if action.Y >= 0 && action.Y < len(b.rows) {
			b.rows[action.Y].DeleteByte(action.X)
		}
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X}
	case ActionInsertLine:
		if action.Y >= 0 && action.Y < len(b.rows) {
			tail := b.rows[action.Y].Split(action.X)
			b.reinsertLineAt(action.Y+1, tail.Text)
		}
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y + 1, Col: 0}
	case ActionJoinLine:
		if action.Y-1 >= 0 && action.Y < len(b.rows) {
			b.rows[action.Y-1].Append(b.rows[action.Y])
		}
		b.removeLineInsertedAt(action.Y)
		b.cache.InvalidateFrom(action.Y - 1)
		b.cursor = types.Point{Row: action.Y - 1, Col: action.X}
	case ActionRemoveRow:
		b.removeLineInsertedAt(action.Y)
		b.cache.InvalidateFrom(action.Y - 1)
		b.cursor = types.Point{Row: action.Y, Col: 0}
	case ActionDeleteRange:
		b.deleteRangeInPlace(types.Point{Row: action.Y, Col: action.X}, types.Point{Row: action.EndY, Col: action.EndX})
		b.cache.InvalidateFrom(action.Y)
		b.cursor = types.Point{Row: action.Y, Col: action.X}
	case ActionGroupBegin, ActionGroupEnd:
	}
	b.markModified()
}

func (b *Buffer) removeLineInsertedAt(idx int) {
	if idx < 0 || idx >= len(b.rows) {
		return
	}
	old := len(b.rows)
	b.rows = append(b.rows[:idx], b.rows[idx+1:]...)
	b.resizeCache(old)
}

func (b *Buffer) reinsertLineAt(idx int, data []byte) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(b.rows) {
		idx = len(b.rows)
	}
	old := len(b.rows)
	b.rows = append(b.rows, row.Row{})
	copy(b.rows[idx+1:], b.rows[idx:])
	b.rows[idx] = row.NewFromBytes(data)
	b.resizeCache(old)
}

// UndoLen reports how many actions the undo history currently retains.
func (b *Buffer) UndoLen() int { return b.undo.Len() }
