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

import "github.com/gottx/gottx/internal/types"

// namedKeys maps the key names a plugin's (bind ...) call spells out to
// the Key constants the terminal layer decodes events into.
var namedKeys = map[string]types.Key{
	"up":        types.KeyArrowUp,
	"down":      types.KeyArrowDown,
	"left":      types.KeyArrowLeft,
	"right":     types.KeyArrowRight,
	"home":      types.KeyHome,
	"end":       types.KeyEnd,
	"pgup":      types.KeyPgup,
	"pgdn":      types.KeyPgdn,
	"enter":     types.KeyEnter,
	"esc":       types.KeyEsc,
	"tab":       types.KeyTab,
	"space":     types.KeySpace,
	"backspace": types.KeyBackspace2,
	"ctrl-a":    types.KeyCtrlA,
	"ctrl-b":    types.KeyCtrlB,
	"ctrl-c":    types.KeyCtrlC,
	"ctrl-d":    types.KeyCtrlD,
	"ctrl-e":    types.KeyCtrlE,
	"ctrl-f":    types.KeyCtrlF,
	"ctrl-g":    types.KeyCtrlG,
	"ctrl-h":    types.KeyCtrlH,
	"ctrl-i":    types.KeyCtrlI,
	"ctrl-j":    types.KeyCtrlJ,
	"ctrl-k":    types.KeyCtrlK,
	"ctrl-l":    types.KeyCtrlL,
	"ctrl-m":    types.KeyCtrlM,
	"ctrl-n":    types.KeyCtrlN,
	"ctrl-o":    types.KeyCtrlO,
	"ctrl-p":    types.KeyCtrlP,
	"ctrl-q":    types.KeyCtrlQ,
	"ctrl-r":    types.KeyCtrlR,
	"ctrl-s":    types.KeyCtrlS,
	"ctrl-t":    types.KeyCtrlT,
	"ctrl-u":    types.KeyCtrlU,
	"ctrl-v":    types.KeyCtrlV,
	"ctrl-w":    types.KeyCtrlW,
	"ctrl-x":    types.KeyCtrlX,
	"ctrl-y":    types.KeyCtrlY,
	"ctrl-z":    types.KeyCtrlZ,
}

// KeyWithName resolves a plugin-supplied key name to its Key constant.
func KeyWithName(name string) (types.Key, bool) {
	key, ok := namedKeys[name]
	return key, ok
}

// ModifierWithName resolves a plugin-supplied modifier name ("alt",
// "ctrl", "shift", or "" for none) to its Modifier bit. Unrecognized
// names resolve to ModNone.
func ModifierWithName(name string) types.Modifier {
	switch name {
	case "alt":
		return types.ModAlt
	case "ctrl":
		return types.ModCtrl
	case "shift":
		return types.ModShift
	default:
		return types.ModNone
	}
}
