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

package commander

import "github.com/gottx/gottx/internal/types"

// binding is a flat (key_code, modifier_bitmask) pair, per spec.md §4.H.
// A printable character event (Key == 0, Ch != 0) is keyed by its rune
// value; a named key event is keyed by its negated Key constant. The two
// ranges never collide: rune codes are non-negative, named-key codes are
// negative.
type binding struct {
	code int32
	mod  types.Modifier
}

func codeForEvent(key types.Key, ch rune) int32 {
	if key != 0 {
		return -int32(key)
	}
	return int32(ch)
}

// Keymap is a flat, script-addressable map from (key_code, modifier) to
// an action name, generalized from commander.go's hardcoded per-key
// parseEval dispatch into the bindable table spec.md §4.H requires.
// `bind` replaces any existing binding for the same key; `unbind`
// removes one. No two bindings may share a (key_code, modifier) pair,
// which the map representation enforces structurally.
type Keymap struct {
	bindings map[binding]string
}

// NewKeymap constructs an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[binding]string)}
}

// Bind registers action as the response to (key, mod), replacing any
// earlier binding for that pair. Printable characters are bound with
// BindChar.
func (k *Keymap) Bind(key types.Key, mod types.Modifier, action string) {
	k.bindings[binding{code: -int32(key), mod: mod}] = action
}

// BindChar is Bind for a printable-character binding.
func (k *Keymap) BindChar(ch rune, mod types.Modifier, action string) {
	k.bindings[binding{code: int32(ch), mod: mod}] = action
}

// Unbind removes the binding for (key, mod), if any.
func (k *Keymap) Unbind(key types.Key, mod types.Modifier) {
	delete(k.bindings, binding{code: -int32(key), mod: mod})
}

// UnbindChar is Unbind for a printable-character binding.
func (k *Keymap) UnbindChar(ch rune, mod types.Modifier) {
	delete(k.bindings, binding{code: int32(ch), mod: mod})
}

// Lookup resolves the action bound to a decoded key/character event, if
// any.
func (k *Keymap) Lookup(key types.Key, ch rune, mod types.Modifier) (string, bool) {
	action, ok := k.bindings[binding{code: codeForEvent(key, ch), mod: mod}]
	return action, ok
}
