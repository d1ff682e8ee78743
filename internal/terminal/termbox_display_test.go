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

package terminal

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestKeyTranslatesArrowsAndControlKeys(t *testing.T) {
	assert.Equal(t, types.KeyArrowUp, key(termbox.KeyArrowUp))
	assert.Equal(t, types.KeyCtrlW, key(termbox.KeyCtrlW))
	assert.Equal(t, types.KeyEsc, key(termbox.KeyEsc))
}

func TestKeyUnrecognizedIsUnsupported(t *testing.T) {
	assert.Equal(t, types.KeyUnsupported, key(termbox.Key(0xffff)))
}

func TestMouseKeyTranslatesButtonsAndWheel(t *testing.T) {
	assert.Equal(t, types.KeyMouseLeft, mouseKey(termbox.MouseLeft))
	assert.Equal(t, types.KeyMouseWheelUp, mouseKey(termbox.MouseWheelUp))
	assert.Equal(t, types.KeyMouseWheelDown, mouseKey(termbox.MouseWheelDown))
}

func TestModifierDetectsAlt(t *testing.T) {
	assert.Equal(t, types.ModAlt, modifier(termbox.ModAlt))
	assert.Equal(t, types.ModNone, modifier(0))
}
