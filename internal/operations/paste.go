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

// Paste inserts the paste board's contents at the cursor, Count times
// (the "p" command).
type Paste struct {
	operation
	Count int
	Text  string
	Mode  int
}

func (op *Paste) Perform(e types.Editor, multiplier int) types.Operation {
	op.init(e, multiplier)
	count := op.Count
	if !op.Undo {
		count *= op.Multiplier
		op.Text = e.GetPasteText()
		op.Mode = e.GetPasteMode()
	}
	position := types.InsertAfterCursor
	if op.Mode == types.PasteNewLine {
		position = types.InsertAtNewLineBelowCursor
	}
	for i := 0; i < count; i++ {
		e.InsertText(op.Text, position)
	}
	inv := &DeleteCharacter{Count: len(op.Text) * count}
	op.copyForUndo(&inv.operation)
	return inv
}
