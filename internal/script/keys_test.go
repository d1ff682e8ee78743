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

package script

import (
	"testing"

	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestKeyWithNameResolvesNamedKeys(t *testing.T) {
	key, ok := KeyWithName("ctrl-w")
	assert.True(t, ok)
	assert.Equal(t, types.KeyCtrlW, key)
}

func TestKeyWithNameRejectsUnknownNames(t *testing.T) {
	_, ok := KeyWithName("nonsense")
	assert.False(t, ok)
}

func TestModifierWithNameDefaultsToNone(t *testing.T) {
	assert.Equal(t, types.ModNone, ModifierWithName(""))
	assert.Equal(t, types.ModNone, ModifierWithName("nonsense"))
	assert.Equal(t, types.ModCtrl, ModifierWithName("ctrl"))
	assert.Equal(t, types.ModAlt, ModifierWithName("alt"))
	assert.Equal(t, types.ModShift, ModifierWithName("shift"))
}
