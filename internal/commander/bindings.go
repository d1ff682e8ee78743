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

// installDefaultBindings seeds a new keymap with the same single-key
// edit-mode commands commander.go wired directly into its switch
// statement, one binding per action name the script bridge registers as
// a primitive. A user script rebinding a key with editor.bind replaces
// one of these entries; editor.unbind restores none of them, per
// spec.md §4.H ("unbind removes a user binding; there is no separate
// built-in layer to fall back to once a key is unbound").
//
// Digits are not bound here: processKeyEditMode consumes '0'-'9' as a
// pending multiplier before consulting the keymap, so a line-start
// motion bound to '0' would never fire. Beginning-of-line is reached
// through Home instead.
func installDefaultBindings(k *Keymap) {
	none := types.ModNone

	k.Bind(types.KeyArrowUp, none, "move-up")
	k.Bind(types.KeyArrowDown, none, "move-down")
	k.Bind(types.KeyArrowLeft, none, "move-left")
	k.Bind(types.KeyArrowRight, none, "move-right")
	k.BindChar('k', none, "move-up")
	k.BindChar('j', none, "move-down")
	k.BindChar('h', none, "move-left")
	k.BindChar('l', none, "move-right")

	k.BindChar('w', none, "move-next-word")
	k.BindChar('b', none, "move-previous-word")
	k.Bind(types.KeyHome, none, "move-beginning-of-line")
	k.Bind(types.KeyEnd, none, "move-end-of-line")

	k.Bind(types.KeyPgup, none, "page-up")
	k.Bind(types.KeyPgdn, none, "page-down")
	k.Bind(types.KeyCtrlU, none, "half-page-up")
	k.Bind(types.KeyCtrlD, none, "half-page-down")

	k.BindChar('x', none, "delete-character")
	k.BindChar('p', none, "paste")
	k.BindChar('~', none, "reverse-case-character")
	k.BindChar('J', none, "join-line")
	k.BindChar('u', none, "undo")
	k.Bind(types.KeyCtrlR, none, "redo")
	k.BindChar('.', none, "repeat")

	k.BindChar('i', none, "insert-at-cursor")
	k.BindChar('a', none, "insert-after-cursor")
	k.BindChar('I', none, "insert-at-start-of-line")
	k.BindChar('A', none, "insert-after-end-of-line")
	k.BindChar('o', none, "insert-at-new-line-below-cursor")
	k.BindChar('O', none, "insert-at-new-line-above-cursor")

	k.BindChar(':', none, "command-mode")
	k.BindChar('/', none, "search-forward-mode")
	k.BindChar('?', none, "search-backward-mode")
	k.BindChar('n', none, "repeat-search-forward")
	k.BindChar('N', none, "repeat-search-backward")

	k.Bind(types.KeyCtrlW, none, "change-window")
	k.Bind(types.KeyCtrlL, none, "redraw")
}
