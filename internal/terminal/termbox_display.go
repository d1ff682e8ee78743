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

// Package terminal implements types.Display over termbox-go. Grounded
// on screen/screen.go: Render clears the screen, resizes the editor,
// draws the window tree, and draws the message bar, then flushes;
// GetNextEvent decodes a termbox event into a types.Event, extended
// here to also decode mouse and resize events (the teacher's screen.go
// only decoded keys).
package terminal

import (
	"log"

	"github.com/nsf/termbox-go"

	"github.com/gottx/gottx/internal/render"
	"github.com/gottx/gottx/internal/types"
)

// Display draws an editor and commander to the terminal via termbox-go.
type Display struct {
	size types.Size
}

// New opens the terminal and enables mouse and 256-color support. It
// returns nil if termbox fails to initialize, mirroring screen.go's
// NewScreen.
func New() *Display {
	if err := termbox.Init(); err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputAlt | termbox.InputMouse)
	return &Display{}
}

func (d *Display) Close() { termbox.Close() }

func (d *Display) SetCell(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), 0x01)
}

func (d *Display) SetCellReversed(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.ColorBlack, termbox.Attribute(color))
}

func (d *Display) SetCursor(position types.Point) {
	termbox.SetCursor(position.Col, position.Row)
}

// Render clears the screen, resizes e to fit, draws the window tree and
// message bar, and flushes. Row 0 is the tab bar (drawn by
// e.RenderWindows); the last row is the message bar, drawn here since
// only the caller holds both an Editor and a Commander at once.
func (d *Display) Render(e types.Editor, c types.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)

	var size types.Size
	size.Cols, size.Rows = termbox.Size()
	d.size = size
	e.SetSize(size)

	e.RenderWindows(d)
	if size.Rows > 0 {
		render.RenderMessageBar(d, size.Rows-1, size.Cols, c.GetMessageBarText(size.Cols))
	}

	termbox.Flush()
}

// GetNextEvent blocks for the next termbox event and decodes it into a
// types.Event. Flushes on resize so the next Render redraws cleanly,
// per screen.go.
func (d *Display) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &types.Event{Type: types.EventResize, Width: event.Width, Height: event.Height}
	case termbox.EventMouse:
		return &types.Event{
			Type:   types.EventMouse,
			Key:    mouseKey(event.Key),
			Mod:    modifier(event.Mod),
			MouseX: event.MouseX,
			MouseY: event.MouseY,
		}
	default:
		return &types.Event{
			Type: types.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
			Mod:  modifier(event.Mod),
		}
	}
}

func modifier(m termbox.Modifier) types.Modifier {
	if m&termbox.ModAlt != 0 {
		return types.ModAlt
	}
	return types.ModNone
}

func mouseKey(k termbox.Key) types.Key {
	switch k {
	case termbox.MouseLeft:
		return types.KeyMouseLeft
	case termbox.MouseMiddle:
		return types.KeyMouseMiddle
	case termbox.MouseRight:
		return types.KeyMouseRight
	case termbox.MouseRelease:
		return types.KeyMouseRelease
	case termbox.MouseWheelUp:
		return types.KeyMouseWheelUp
	case termbox.MouseWheelDown:
		return types.KeyMouseWheelDown
	default:
		return types.KeyUnsupported
	}
}

// key translates a termbox named key into its types.Key equivalent, per
// screen.go's key function (the commented-out KeyCtrlI/KeyCtrlM cases
// there are termbox aliases for Tab/Enter and are handled below through
// those names instead).
func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyCtrlA:
		return types.KeyCtrlA
	case termbox.KeyCtrlB:
		return types.KeyCtrlB
	case termbox.KeyCtrlC:
		return types.KeyCtrlC
	case termbox.KeyCtrlD:
		return types.KeyCtrlD
	case termbox.KeyCtrlE:
		return types.KeyCtrlE
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyCtrlG:
		return types.KeyCtrlG
	case termbox.KeyCtrlH:
		return types.KeyCtrlH
	case termbox.KeyCtrlJ:
		return types.KeyCtrlJ
	case termbox.KeyCtrlK:
		return types.KeyCtrlK
	case termbox.KeyCtrlL:
		return types.KeyCtrlL
	case termbox.KeyCtrlN:
		return types.KeyCtrlN
	case termbox.KeyCtrlO:
		return types.KeyCtrlO
	case termbox.KeyCtrlP:
		return types.KeyCtrlP
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlR:
		return types.KeyCtrlR
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyCtrlT:
		return types.KeyCtrlT
	case termbox.KeyCtrlU:
		return types.KeyCtrlU
	case termbox.KeyCtrlV:
		return types.KeyCtrlV
	case termbox.KeyCtrlW:
		return types.KeyCtrlW
	case termbox.KeyCtrlX:
		return types.KeyCtrlX
	case termbox.KeyCtrlY:
		return types.KeyCtrlY
	case termbox.KeyCtrlZ:
		return types.KeyCtrlZ
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
