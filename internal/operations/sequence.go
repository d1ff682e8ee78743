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

// Sequence performs a fixed list of operations in order, used to record
// a multi-keystroke command (for example "cw" paired with its typed
// replacement) as one repeatable unit for Editor.Repeat.
type Sequence struct {
	operation
	Ops []types.Operation
}

func (op *Sequence) Perform(e types.Editor, multiplier int) types.Operation {
	op.init(e, multiplier)
	inverses := make([]types.Operation, 0, len(op.Ops))
	for _, sub := range op.Ops {
		if inv := sub.Perform(e, multiplier); inv != nil {
			inverses = append([]types.Operation{inv}, inverses...)
		}
	}
	inv := &Sequence{Ops: inverses}
	op.copyForUndo(&inv.operation)
	return inv
}
