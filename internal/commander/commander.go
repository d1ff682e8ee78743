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

// Package commander converts decoded terminal events into editor
// commands. Grounded on pkg/commander/commander.go's mode dispatch
// (edit/insert/command/search/lisp), generalized so that edit-mode's
// single-key dispatch runs through a bindable Keymap (spec.md §4.H)
// instead of a hardcoded switch, with every built-in edit command
// registered as a default binding to the same script-addressable action
// name the teacher passed to parseEval.
package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gottx/gottx/internal/script"
	"github.com/gottx/gottx/internal/types"
)

// Evaluator is the subset of *script.Bridge the commander depends on,
// narrowed so tests can substitute a fake without a real golisp runtime.
type Evaluator interface {
	Eval(command string) string
}

var _ Evaluator = (*script.Bridge)(nil)

// Commander converts user input into commands to the editor, per
// pkg/commander/commander.go's Commander, plus the Keymap this repo
// generalizes dispatch through.
type Commander struct {
	editor types.Editor
	script Evaluator
	keymap *Keymap

	mode  int  // editor mode
	debug bool // debug mode displays information about events

	editKeys       string // edit key sequences in progress (e.g. "d" awaiting "w"/"d")
	commandText    string
	searchText     string
	lispText       string
	multiplierText string
	message        string

	lastKey types.Key
	lastCh  rune
}

// New constructs a commander in edit mode with the default keymap
// installed.
func New(e types.Editor, s Evaluator) *Commander {
	c := &Commander{
		editor: e,
		script: s,
		keymap: NewKeymap(),
		mode:   types.ModeEdit,
	}
	installDefaultBindings(c.keymap)
	return c
}

// Keymap exposes the commander's bindable keymap, e.g. for the script
// bridge's editor.bind/editor.unbind primitives.
func (c *Commander) Keymap() *Keymap { return c.keymap }

// SetEvaluator installs the script bridge a commander dispatches
// through. Exists because the commander and the bridge depend on each
// other (the bridge needs a types.Commander, the commander needs an
// Evaluator): callers build the commander first, build the bridge from
// it, then call SetEvaluator to close the loop.
func (c *Commander) SetEvaluator(s Evaluator) { c.script = s }

func (c *Commander) getMode() int { return c.mode }

// LastKeyAndChar reports the most recently processed edit-mode key
// event, consulted by the script bridge's replace-character primitive
// (the "r" command replaces with whatever key followed it).
func (c *Commander) LastKeyAndChar() (types.Key, rune) { return c.lastKey, c.lastCh }

// GetMultiplier consumes and returns the pending numeric prefix (or 1
// if none was typed), consulted by the script bridge when a primitive
// is invoked with no explicit integer argument.
func (c *Commander) GetMultiplier() int { return c.getMultiplier() }

// SearchText reports the most recently entered search text, consulted
// by the script bridge's repeat-search-forward/backward primitives (the
// "n"/"N" commands).
func (c *Commander) SearchText() string { return c.searchText }

func (c *Commander) SetMode(m int) { c.mode = m }

func (c *Commander) SetMessage(text string) { c.message = text }

func (c *Commander) Bind(key types.Key, mod types.Modifier, action string) {
	c.keymap.Bind(key, mod, action)
}

func (c *Commander) Unbind(key types.Key, mod types.Modifier) {
	c.keymap.Unbind(key, mod)
}

// IsRunning reports whether the editor should keep processing events.
func (c *Commander) IsRunning() bool { return c.mode != types.ModeQuit }

// ProcessEvent dispatches a decoded input event to the handler for the
// commander's current mode.
func (c *Commander) ProcessEvent(event *types.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", *event)
	}
	switch event.Type {
	case types.EventKey:
		return c.processKey(event)
	case types.EventMouse:
		return c.processMouse(event)
	case types.EventResize:
		c.editor.SetSize(types.Size{Rows: event.Height, Cols: event.Width})
		return nil
	default:
		return nil
	}
}

// processMouse translates a mouse event into cursor placement or
// scrolling. Button-down sets the active window's cursor to the event's
// MouseY/MouseX; wheel events page the active window. Drag events are
// not distinguished, so a drag does not extend a selection.
func (c *Commander) processMouse(event *types.Event) error {
	w := c.editor.GetActiveWindow()
	switch event.Key {
	case types.KeyMouseLeft:
		w.SetCursor(types.Point{Row: event.MouseY, Col: event.MouseX})
	case types.KeyMouseWheelUp:
		w.PageUp(1)
	case types.KeyMouseWheelDown:
		w.PageDown(1)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch

	c.lastKey = key
	c.lastCh = ch

	// Multi-key sequences have the highest precedence, same as the
	// teacher: a leading c/d/y/r consumes exactly one more character.
	if len(c.editKeys) > 0 {
		switch c.editKeys {
		case "c":
			if ch == 'w' {
				c.eval("(change-word)")
			}
		case "d":
			switch ch {
			case 'd':
				c.eval("(delete-row)")
			case 'w':
				c.eval("(delete-word)")
			}
		case "r":
			if key != 0 || ch != 0 {
				c.eval("(replace-character)")
			}
		case "y":
			if ch == 'y' {
				c.eval("(yank-row)")
			}
		}
		c.editKeys = ""
		return nil
	}

	// Command multipliers accumulate digits ahead of an action.
	if ch >= '0' && ch <= '9' {
		c.multiplierText += string(ch)
		return nil
	}

	switch ch {
	case 'c', 'd', 'y', 'r':
		c.editKeys = string(ch)
		return nil
	}

	if action, ok := c.keymap.Lookup(key, ch, event.Mod); ok {
		c.eval("(" + action + ")")
	}
	return nil
}

func (c *Commander) processKeyInsertMode(event *types.Event) error {
	e := c.editor
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			e.CloseInsert()
			c.mode = types.ModeEdit
			e.KeepCursorInRow()
		case types.KeyBackspace2:
			e.BackspaceChar()
		case types.KeyTab:
			e.InsertChar(' ')
			for e.GetCursor().Col%8 != 0 {
				e.InsertChar(' ')
			}
		case types.KeyEnter:
			e.InsertChar('\n')
		case types.KeySpace:
			e.InsertChar(' ')
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
		case types.KeyEnter:
			c.performCommand()
		case types.KeyBackspace2:
			if len(c.commandText) > 0 {
				c.commandText = c.commandText[:len(c.commandText)-1]
			}
		case types.KeySpace:
			c.commandText += " "
		}
	}
	if ch != 0 {
		c.commandText += string(ch)
	}
	return nil
}

func (c *Commander) processKeySearchMode(event *types.Event) error {
	e := c.editor
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
		case types.KeyEnter:
			if c.mode == types.ModeSearchForward {
				e.PerformSearchForward(c.searchText)
			} else {
				e.PerformSearchBackward(c.searchText)
			}
			c.mode = types.ModeEdit
		case types.KeyBackspace2:
			if len(c.searchText) > 0 {
				c.searchText = c.searchText[:len(c.searchText)-1]
			}
		case types.KeySpace:
			c.searchText += " "
		}
	}
	if ch != 0 {
		c.searchText += string(ch)
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
		case types.KeyEnter:
			c.message = c.eval(c.lispText)
			if c.mode == types.ModeLisp {
				c.mode = types.ModeEdit
			}
		case types.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[:len(c.lispText)-1]
			}
		case types.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText += string(ch)
	}
	return nil
}

func (c *Commander) processKey(event *types.Event) error {
	switch c.mode {
	case types.ModeEdit:
		return c.processKeyEditMode(event)
	case types.ModeInsert:
		return c.processKeyInsertMode(event)
	case types.ModeCommand:
		return c.processKeyCommandMode(event)
	case types.ModeSearchForward, types.ModeSearchBackward:
		return c.processKeySearchMode(event)
	case types.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

func (c *Commander) performCommand() {
	e := c.editor
	parts := strings.Split(c.commandText, " ")
	if len(parts) > 0 {
		if i, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
			e.MoveCursorToLine(int(i))
		}
		switch parts[0] {
		case "q", "quit":
			c.mode = types.ModeQuit
			return
		case "r":
			if len(parts) == 2 {
				e.ReadFile(parts[1])
			}
		case "debug":
			if len(parts) == 2 {
				switch parts[1] {
				case "on":
					c.debug = true
				case "off":
					c.debug = false
					c.message = ""
				}
			}
		case "w":
			filename := e.GetFileName()
			if len(parts) == 2 {
				filename = parts[1]
			}
			e.WriteFile(filename)
		case "wq":
			filename := e.GetFileName()
			if len(parts) == 2 {
				filename = parts[1]
			}
			e.WriteFile(filename)
			c.mode = types.ModeQuit
			return
		case "fmt":
			out, err := e.Gofmt(e.GetFileName(), e.Bytes())
			if err == nil {
				e.LoadBytes(out)
			}
		case "$":
			e.MoveCursorToLine(1e9)
		case "cursor":
			cursor := e.GetCursor()
			c.message = fmt.Sprintf("%d,%d", cursor.Row, cursor.Col)
		case "window":
			if len(parts) > 1 {
				if number, err := strconv.Atoi(parts[1]); err == nil {
					if err := e.SelectWindow(number); err != nil {
						c.message = err.Error()
					} else {
						c.message = ""
					}
				} else {
					c.message = err.Error()
				}
			}
		case "next":
			e.SelectWindowNext()
		case "prev":
			e.SelectWindowPrevious()
		case "windows":
			e.ListWindows()
		case "clear":
			e.LoadBytes([]byte{})
		case "eval":
			output := c.eval(string(e.Bytes()))
			e.SelectWindow(0)
			e.AppendBytes([]byte(output))
		case "split", "vsplit":
			e.SplitWindowVertically()
		case "hsplit":
			e.SplitWindowHorizontally()
		case "close":
			e.CloseActiveWindow()
		case "layout":
			e.LayoutWindows()
		case "tabnew":
			if len(parts) == 2 {
				e.NewTabGroup(parts[1])
			}
		case "tabclose":
			if len(parts) == 2 {
				if id, err := strconv.Atoi(parts[1]); err == nil {
					if err := e.CloseTabGroup(id); err != nil {
						c.message = err.Error()
					}
				}
			}
		default:
			c.message = ""
		}
	}
	c.commandText = ""
	c.mode = types.ModeEdit
}

// eval runs command through the script bridge. The multiplier
// accumulated so far stays pending here; a built-in primitive invoked
// without an integer argument reads it through GetMultiplier.
func (c *Commander) eval(command string) string {
	return c.script.Eval(command)
}

func (c *Commander) getMultiplier() int {
	if c.multiplierText == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplierText, 10, 64)
	c.multiplierText = ""
	if err != nil {
		return 1
	}
	return int(i)
}

func (c *Commander) getSearchText() string  { return c.searchText }
func (c *Commander) getLispText() string    { return c.lispText }
func (c *Commander) getCommandText() string { return c.commandText }
func (c *Commander) getMessage() string     { return c.message }

// GetMessageBarText returns the text drawn on the terminal's message
// bar, truncated to length: the command/search/lisp line in progress, or
// the last status message in edit/insert mode.
func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.getMode() {
	case types.ModeCommand:
		line = ":" + c.getCommandText()
	case types.ModeSearchForward:
		line = "/" + c.getSearchText()
	case types.ModeSearchBackward:
		line = "?" + c.getSearchText()
	case types.ModeLisp:
		line = c.getLispText()
	default:
		line = c.getMessage()
	}
	if len(line) > length {
		line = line[:length]
	}
	return line
}
