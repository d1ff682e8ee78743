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

// ChangeWord replaces Count words at the cursor with Text, then enters
// insert mode positioned where the replaced words ended (the "cw"
// command, commonly followed by typed replacement text).
type ChangeWord struct {
	operation
	Count     int
	Text      string
	Replaced  string
	Commander types.Commander
}

func (op *ChangeWord) Perform(e types.Editor, multiplier int) types.Operation {
	op.init(e, multiplier)
	count := op.Count
	if !op.Undo {
		count *= op.Multiplier
	}
	replaced, _ := e.ChangeWordAtCursor(count, op.Text)
	op.Replaced = replaced
	if !op.Undo && op.Commander != nil {
		insert := &Insert{Commander: op.Commander}
		e.SetInsertOperation(insert)
		op.Commander.SetMode(types.ModeInsert)
	}
	inv := &ChangeWord{Text: op.Replaced}
	op.copyForUndo(&inv.operation)
	return inv
}
