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

// DeleteRow deletes Count whole rows starting at the cursor's row (the
// "dd" command) and yanks them onto the paste board.
type DeleteRow struct {
	operation
	Count   int
	Deleted string
}

func (op *DeleteRow) Perform(e types.Editor, multiplier int) types.Operation {
	op.init(e, multiplier)
	count := op.Count
	if !op.Undo {
		count *= op.Multiplier
	}
	op.Deleted = e.DeleteRowsAtCursor(count)
	e.SetPasteBoard(op.Deleted, types.PasteNewLine)
	inv := &Insert{Text: op.Deleted, Position: types.InsertAtNewLineAboveCursor}
	op.copyForUndo(&inv.operation)
	return inv
}
