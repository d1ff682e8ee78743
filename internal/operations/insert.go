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

package operations

import "github.com/gottx/gottx/internal/types"

// Insert enters insert mode at Position and accumulates the characters
// typed until the editor closes it (on Escape). It implements
// types.InsertOperation so the commander can feed it keystrokes directly.
type Insert struct {
	operation
	Position  int
	Text      string
	Commander types.Commander
}

// Perform positions the cursor for Position and installs op as the
// editor's active insert operation. The characters typed afterwards are
// written to the buffer (each with its own undo record) by
// Editor.InsertChar, which also hands each one to AddCharacter.
func (op *Insert) Perform(e types.Editor, multiplier int) types.Operation {
	op.init(e, multiplier)
	switch op.Position {
	case types.InsertAtCursor:
	case types.InsertAfterCursor:
		e.InsertText("", types.InsertAfterCursor)
	case types.InsertAtStartOfLine:
		e.MoveToBeginningOfLine()
	case types.InsertAfterEndOfLine:
		e.MoveToEndOfLine()
	case types.InsertAtNewLineBelowCursor, types.InsertAtNewLineAboveCursor:
		e.InsertText("\n", op.Position)
	}
	if op.Commander != nil {
		op.Commander.SetMode(types.ModeInsert)
	}
	e.SetInsertOperation(op)
	return op.inverse()
}

// AddCharacter records c for Repeat; it does not touch the buffer.
func (op *Insert) AddCharacter(c rune) {
	op.Text += string(c)
}

// DeleteCharacter removes the most recently accumulated character, used
// when Backspace is pressed while still in this insert operation.
func (op *Insert) DeleteCharacter() {
	if len(op.Text) == 0 {
		return
	}
	op.Text = op.Text[:len(op.Text)-1]
}

// Close is called by the editor when insert mode ends.
func (op *Insert) Close() {}

// Length reports how many characters have been typed so far.
func (op *Insert) Length() int { return len(op.Text) }

// inverse returns a DeleteCharacter sized to undo this insert, used only
// for Repeat bookkeeping; actual undo/redo is handled by the buffer's own
// history.
func (op *Insert) inverse() types.Operation {
	inv := &DeleteCharacter{Count: len(op.Text)}
	op.copyForUndo(&inv.operation)
	return inv
}
