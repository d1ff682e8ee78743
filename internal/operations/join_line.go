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

// JoinLine joins Count lines below the cursor onto the cursor's line
// (the "J" command).
type JoinLine struct {
	operation
	Count int
}

func (op *JoinLine) Perform(e types.Editor, multiplier int) types.Operation {
	op.init(e, multiplier)
	count := op.Count
	if !op.Undo {
		count *= op.Multiplier
	}
	e.JoinRow(count)
	inv := &JoinLine{}
	op.copyForUndo(&inv.operation)
	return inv
}
