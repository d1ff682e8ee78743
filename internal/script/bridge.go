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

// Package script embeds golisp as gottx's scripting runtime, per
// spec.md §4.I. Grounded directly on pkg/commander/lisp.go: every
// editor action, built-in or user-defined, is a golisp callable bound
// in the global environment, and every key dispatch ultimately runs
// "(action-name)" through the same interpreter. A plugin file loaded at
// startup can redefine an existing primitive name or register new ones
// (gutter renderers, custom-buffer renderers, lifecycle hooks) with
// ordinary golisp function definitions; the bridge does not distinguish
// the two once they're registered.
package script

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/steelseries/golisp"
	"go.uber.org/zap"

	"github.com/gottx/gottx/internal/operations"
	"github.com/gottx/gottx/internal/types"
)

// Keymapper is the subset of the commander's Keymap a script plugin can
// rebind, so editor.bind/editor.unbind primitives don't need the
// commander package (which already depends on this one for Evaluator).
type Keymapper interface {
	Bind(key types.Key, mod types.Modifier, action string)
	BindChar(ch rune, mod types.Modifier, action string)
	Unbind(key types.Key, mod types.Modifier)
	UnbindChar(ch rune, mod types.Modifier)
}

// customRenderer holds a plugin-registered renderer for an opaque
// buffer: render names the function RenderCustomBuffer calls for the
// buffer's display lines, onKey the function CustomKey calls with a key.
// Neither the commander nor the renderer calls RenderCustomBuffer or
// CustomKey.
type customRenderer struct {
	render string // golisp function name
	onKey  string // golisp function name, may be empty
}

// Bridge wires an editor, commander, and keymap into golisp's global
// environment. golisp registers primitives through package-level
// init() functions with no receiver, so exactly one Bridge is active
// per process; active holds it, mirroring lisp.go's own file-global
// commander/editor variables.
type Bridge struct {
	editor    types.Editor
	commander types.Commander
	keymap    Keymapper
	log       *zap.SugaredLogger

	batch bool // true while evaluating a file non-interactively

	renderers map[string]customRenderer
	gutter    string // golisp function name, empty if unset
	hooks     map[string][]string
}

var active *Bridge

// NewBridge constructs a Bridge and registers its editor/commander/
// keymap as the targets of every golisp primitive. Constructing a
// second Bridge replaces the first as golisp's active target; gottx
// only ever constructs one, at startup.
func NewBridge(e types.Editor, c types.Commander, keymap Keymapper, log *zap.SugaredLogger) *Bridge {
	b := &Bridge{
		editor:    e,
		commander: c,
		keymap:    keymap,
		log:       log,
		renderers: make(map[string]customRenderer),
		hooks:     make(map[string][]string),
	}
	b.Bind()
	return b
}

// Bind installs b as the active target of golisp's global primitives.
func (b *Bridge) Bind() { active = b }

// getMultiplier asks the commander for its pending numeric prefix, if
// the bridge's commander exposes one. gottx's commander always does;
// the interface assertion keeps the dependency one-directional (this
// package does not import internal/commander).
type multiplierSource interface {
	GetMultiplier() int
}

func (b *Bridge) getMultiplier() int {
	if src, ok := b.commander.(multiplierSource); ok {
		return src.GetMultiplier()
	}
	return 1
}

func (b *Bridge) lastKeyAndChar() (types.Key, rune) {
	if src, ok := b.commander.(interface {
		LastKeyAndChar() (types.Key, rune)
	}); ok {
		return src.LastKeyAndChar()
	}
	return 0, 0
}

func (b *Bridge) lastSearchText() string {
	if src, ok := b.commander.(interface{ SearchText() string }); ok {
		return src.SearchText()
	}
	return ""
}

// Eval parses and evaluates command, returning golisp's printed result
// or an "ERR ..." string on failure. Grounded on lisp.go's parseEval.
func (b *Bridge) Eval(command string) string {
	active = b
	value, err := golisp.ParseAndEvalAll(command)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}

// EvalFile reads filename and evaluates its contents as a sequence of
// golisp forms, in batch mode (the "print" primitive writes to stdout
// rather than the editor's output buffer while batch is set). Grounded
// on lisp.go's ParseEvalFile.
func (b *Bridge) EvalFile(filename string) string {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return err.Error()
	}
	b.batch = true
	result := b.Eval(string(contents))
	b.batch = false
	return result
}

// Fire evaluates every hook registered for event with the "on"
// primitive, in registration order, passing args as string arguments;
// events with no registered hook are ignored. No code in the editor,
// window or commander packages calls Fire, so window-tree changes do not
// run on_create/on_focus/on_close/on_resize hooks.
func (b *Bridge) Fire(event string, args ...string) {
	for _, fn := range b.hooks[event] {
		call := fn
		for _, a := range args {
			call += " \"" + a + "\""
		}
		b.Eval("(" + call + ")")
	}
}

// GutterText returns the gutter's rendering for row, or "" if no
// gutter renderer is registered.
func (b *Bridge) GutterText(row int) string {
	if b.gutter == "" {
		return ""
	}
	return b.Eval(fmt.Sprintf("(%s %d)", b.gutter, row))
}

// RenderCustomBuffer asks a plugin-registered renderer for buffer id's
// display lines, or ("", false) if id has no custom renderer.
func (b *Bridge) RenderCustomBuffer(id string, width int) (string, bool) {
	r, ok := b.renderers[id]
	if !ok {
		return "", false
	}
	return b.Eval(fmt.Sprintf("(%s \"%s\" %d)", r.render, id, width)), true
}

// CustomKey forwards a key event to id's custom renderer's on_key hook,
// if it registered one.
func (b *Bridge) CustomKey(id string, ch rune) {
	r, ok := b.renderers[id]
	if !ok || r.onKey == "" {
		return
	}
	b.Eval(fmt.Sprintf("(%s \"%s\" %d)", r.onKey, id, ch))
}

func makePrimitiveFunction(name string, action func()) {
	golisp.MakePrimitiveFunction(name, "0",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			action()
			return nil, nil
		})
}

func argumentCountValue(name string, args *golisp.Data) (int, error) {
	val := golisp.Car(args)
	if val == nil {
		return active.getMultiplier(), nil
	}
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

func makePrimitiveFunctionWithMultiplier(name string, action func(multiplier int)) {
	golisp.MakePrimitiveFunction(name, "0|1",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			n, err := argumentCountValue(name, args)
			if err == nil {
				action(n)
			}
			return nil, err
		})
}

func argumentStringValue(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if val == nil {
		return "", nil
	}
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func makePrimitiveFunctionWithString(name string, action func(s string)) {
	golisp.MakePrimitiveFunction(name, "1",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			s, err := argumentStringValue(name, args)
			if err == nil {
				action(s)
			}
			return nil, err
		})
}

func argumentStringValueAt(args *golisp.Data, index int) string {
	rest := args
	for i := 0; i < index; i++ {
		rest = golisp.Cdr(rest)
	}
	val := golisp.Car(rest)
	if val == nil || !golisp.StringP(val) {
		return ""
	}
	return golisp.StringValue(val)
}

// init registers every built-in editor action as a golisp primitive.
// Motion, paging, and edit commands are grounded one-for-one on
// lisp.go's equivalents generalized to the types.Editor/types.Commander
// interfaces; the mode-switch and binding primitives additionally cover
// spec.md §4.I's editor.bind/unbind/set_status_message surface and the
// plugin registration hooks lisp.go has no equivalent for (gott had no
// plugin system).
func init() {
	makePrimitiveFunctionWithMultiplier("up", func(m int) { active.editor.MoveCursor(types.MoveUp, m) })
	makePrimitiveFunctionWithMultiplier("down", func(m int) { active.editor.MoveCursor(types.MoveDown, m) })
	makePrimitiveFunctionWithMultiplier("move-up", func(m int) { active.editor.MoveCursor(types.MoveUp, m) })
	makePrimitiveFunctionWithMultiplier("move-down", func(m int) { active.editor.MoveCursor(types.MoveDown, m) })
	makePrimitiveFunctionWithMultiplier("move-left", func(m int) { active.editor.MoveCursor(types.MoveLeft, m) })
	makePrimitiveFunctionWithMultiplier("move-right", func(m int) { active.editor.MoveCursor(types.MoveRight, m) })
	makePrimitiveFunctionWithMultiplier("left", func(m int) { active.editor.MoveCursor(types.MoveLeft, m) })
	makePrimitiveFunctionWithMultiplier("right", func(m int) { active.editor.MoveCursor(types.MoveRight, m) })

	makePrimitiveFunctionWithMultiplier("page-down", func(m int) { active.editor.PageDown(m) })
	makePrimitiveFunctionWithMultiplier("page-up", func(m int) { active.editor.PageUp(m) })
	makePrimitiveFunctionWithMultiplier("half-page-down", func(m int) { active.editor.HalfPageDown(m) })
	makePrimitiveFunctionWithMultiplier("half-page-up", func(m int) { active.editor.HalfPageUp(m) })

	makePrimitiveFunctionWithMultiplier("move-beginning-of-line", func(m int) { active.editor.MoveToBeginningOfLine() })
	makePrimitiveFunctionWithMultiplier("move-end-of-line", func(m int) { active.editor.MoveToEndOfLine() })
	makePrimitiveFunctionWithMultiplier("move-next-word", func(m int) { active.editor.MoveCursorToNextWord(m) })
	makePrimitiveFunctionWithMultiplier("move-previous-word", func(m int) { active.editor.MoveCursorToPreviousWord(m) })

	makePrimitiveFunctionWithMultiplier("change-window", func(m int) { active.editor.SelectWindow(m) })

	makePrimitiveFunctionWithMultiplier("insert-at-cursor", func(m int) {
		active.editor.Perform(&operations.Insert{Position: types.InsertAtCursor, Commander: active.commander}, m)
	})
	makePrimitiveFunctionWithMultiplier("insert-after-cursor", func(m int) {
		active.editor.Perform(&operations.Insert{Position: types.InsertAfterCursor, Commander: active.commander}, m)
	})
	makePrimitiveFunctionWithMultiplier("insert-at-start-of-line", func(m int) {
		active.editor.Perform(&operations.Insert{Position: types.InsertAtStartOfLine, Commander: active.commander}, m)
	})
	makePrimitiveFunctionWithMultiplier("insert-after-end-of-line", func(m int) {
		active.editor.Perform(&operations.Insert{Position: types.InsertAfterEndOfLine, Commander: active.commander}, m)
	})
	makePrimitiveFunctionWithMultiplier("insert-at-new-line-below-cursor", func(m int) {
		active.editor.Perform(&operations.Insert{Position: types.InsertAtNewLineBelowCursor, Commander: active.commander}, m)
	})
	makePrimitiveFunctionWithMultiplier("insert-at-new-line-above-cursor", func(m int) {
		active.editor.Perform(&operations.Insert{Position: types.InsertAtNewLineAboveCursor, Commander: active.commander}, m)
	})

	makePrimitiveFunctionWithMultiplier("delete-character", func(m int) {
		active.editor.Perform(&operations.DeleteCharacter{Count: 1}, m)
	})
	makePrimitiveFunctionWithMultiplier("delete-row", func(m int) {
		active.editor.Perform(&operations.DeleteRow{Count: 1}, m)
	})
	makePrimitiveFunctionWithMultiplier("delete-word", func(m int) {
		active.editor.Perform(&operations.DeleteWord{Count: 1}, m)
	})
	makePrimitiveFunctionWithMultiplier("join-line", func(m int) {
		active.editor.Perform(&operations.JoinLine{Count: 1}, m)
	})
	makePrimitiveFunctionWithMultiplier("paste", func(m int) {
		active.editor.Perform(&operations.Paste{Count: 1}, m)
	})
	makePrimitiveFunctionWithMultiplier("reverse-case-character", func(m int) {
		active.editor.Perform(&operations.ReverseCaseCharacter{Count: 1}, m)
	})
	makePrimitiveFunctionWithMultiplier("undo", func(m int) { active.editor.PerformUndo() })
	makePrimitiveFunctionWithMultiplier("redo", func(m int) { active.editor.PerformRedo() })
	makePrimitiveFunctionWithMultiplier("repeat", func(m int) { active.editor.Repeat() })

	makePrimitiveFunctionWithMultiplier("change-word", func(m int) {
		active.editor.Perform(&operations.ChangeWord{Count: 1, Commander: active.commander}, m)
	})
	makePrimitiveFunctionWithMultiplier("yank-row", func(m int) { active.editor.YankRow(m) })

	makePrimitiveFunctionWithMultiplier("replace-character", func(m int) {
		key, ch := active.lastKeyAndChar()
		if key == types.KeySpace {
			active.editor.Perform(&operations.ReplaceCharacter{Character: ' '}, m)
		} else {
			active.editor.Perform(&operations.ReplaceCharacter{Character: ch}, m)
		}
	})

	makePrimitiveFunction("command-mode", func() {
		active.commander.SetMode(types.ModeCommand)
		active.commander.SetMessage("")
	})
	makePrimitiveFunction("lisp-mode", func() {
		active.commander.SetMode(types.ModeLisp)
	})
	makePrimitiveFunction("search-forward-mode", func() {
		active.commander.SetMode(types.ModeSearchForward)
	})
	makePrimitiveFunction("search-backward-mode", func() {
		active.commander.SetMode(types.ModeSearchBackward)
	})
	makePrimitiveFunction("repeat-search-forward", func() {
		active.editor.PerformSearchForward(active.lastSearchText())
	})
	makePrimitiveFunction("repeat-search-backward", func() {
		active.editor.PerformSearchBackward(active.lastSearchText())
	})
	makePrimitiveFunction("redraw", func() {})

	makePrimitiveFunctionWithString("print", func(s string) {
		if active.batch {
			os.Stdout.Write([]byte(s + "\n"))
			return
		}
		active.editor.SelectWindow(0)
		active.editor.AppendBytes([]byte(s))
	})

	makePrimitiveFunctionWithString("set_status_message", func(s string) {
		active.commander.SetMessage(s)
	})

	// editor.bind/editor.unbind: (bind "ctrl-w" "change-window"),
	// (bind-char "g" "move-beginning-of-line"). Key names are looked up
	// against the same Key constants the terminal layer decodes events
	// into; unrecognized names are a no-op rather than an error, so a
	// plugin targeting a future key name degrades quietly.
	golisp.MakePrimitiveFunction("bind", "2|3",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			name := argumentStringValueAt(args, 0)
			action := argumentStringValueAt(args, 1)
			mod := ModifierWithName(argumentStringValueAt(args, 2))
			if key, ok := KeyWithName(name); ok {
				active.keymap.Bind(key, mod, action)
			}
			return nil, nil
		})
	golisp.MakePrimitiveFunction("bind-char", "2|3",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			ch := argumentStringValueAt(args, 0)
			action := argumentStringValueAt(args, 1)
			mod := ModifierWithName(argumentStringValueAt(args, 2))
			if len(ch) > 0 {
				active.keymap.BindChar(rune(ch[0]), mod, action)
			}
			return nil, nil
		})
	golisp.MakePrimitiveFunction("unbind", "1|2",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			name := argumentStringValueAt(args, 0)
			mod := ModifierWithName(argumentStringValueAt(args, 1))
			if key, ok := KeyWithName(name); ok {
				active.keymap.Unbind(key, mod)
			}
			return nil, nil
		})

	// gutter_renderer/custom_renderer/hook registration: plugin files
	// call these at load time to name a golisp function already defined
	// earlier in the same file.
	makePrimitiveFunctionWithString("gutter_renderer", func(fn string) {
		active.gutter = fn
	})
	golisp.MakePrimitiveFunction("custom_renderer", "2|3",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			id := argumentStringValueAt(args, 0)
			render := argumentStringValueAt(args, 1)
			onKey := argumentStringValueAt(args, 2)
			active.renderers[id] = customRenderer{render: render, onKey: onKey}
			return nil, nil
		})
	golisp.MakePrimitiveFunction("on", "2",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			event := argumentStringValueAt(args, 0)
			fn := argumentStringValueAt(args, 1)
			active.hooks[event] = append(active.hooks[event], fn)
			return nil, nil
		})

	makePrimitiveFunctionWithString("new_handle", func(prefix string) {
		// no-op placeholder target; new_uuid below returns the value.
		_ = prefix
	})
	golisp.MakePrimitiveFunction("new_uuid", "0",
		func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return golisp.StringWithValue(uuid.New().String()), nil
		})
}
