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

// Package types holds the shared vocabulary used across the editor core:
// modes, movement directions, geometry, the highlight/window/event types,
// and the interfaces that let the commander, script bridge, and renderer
// depend on the editor without importing its concrete packages.
package types

// The editor is modal and is always in one of these modes.
const (
	ModeEdit           = 0
	ModeInsert         = 1
	ModeCommand        = 2
	ModeLisp           = 3
	ModeSearchForward  = 4
	ModeSearchBackward = 5
	ModeVisual         = 6
	ModeQuit           = 9999
)

// Possible directions for cursor movement.
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Positions after cursor movements, typically desired positions after
// automated movements.
const (
	AtNextCharacter = 0
	AtNextLine      = 1
	AtEndOfFile     = 2
)

// Positions to begin inserting text in response to edit commands.
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Modes of pasting text, usually implied by how the text was captured.
const (
	PasteAtCursor = 0
	PasteNewLine  = 1
)

// Kinds of words, used by word-motion and word-edit commands.
const (
	WordAlphaNumeric = 0
	WordPunctuation  = 1
	WordSpace        = 2
)

// Point represents a cursor or character position in a buffer or window.
type Point struct {
	Row int
	Col int
}

// Size represents the size of a buffer, window, or screen.
type Size struct {
	Rows int
	Cols int
}

// Rect represents a rectangular area, typically used to position windows.
type Rect struct {
	Origin Point
	Size   Size
}

// Selection describes an in-progress or committed text selection anchored
// at one point and extending to the current cursor.
type Selection struct {
	Active  bool
	AnchorX int
	AnchorY int
}

// BracketMatch describes the result of a bracket-matching scan from the
// cursor position.
type BracketMatch struct {
	Row   int
	Col   int
	Found bool
}

// HighlightKind enumerates the categories a highlighted segment can carry.
// These are stable across syntax definitions; a definition's rules map
// onto this fixed set rather than each definition inventing its own.
type HighlightKind int

const (
	HighlightNormal HighlightKind = iota
	HighlightKeyword
	HighlightType
	HighlightString
	HighlightNumber
	HighlightComment
	HighlightPreprocessor
	HighlightOperator
	HighlightIdentifier
)

// HighlightSegment is a non-overlapping, half-open run of columns sharing
// one highlight kind within a single row.
type HighlightSegment struct {
	StartCol        int
	EndColExclusive int
	Kind            HighlightKind
}

// Orientation enumerates the two ways a window split can divide its area.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// LayoutHints carries optional sizing preferences for a window leaf.
// Equalize reads Weight; the min/max fields are stored but no layout
// code reads them.
type LayoutHints struct {
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
	Weight    float64
}

// The Editor interface supports text editing in multiple windows across
// multiple tab groups.
type Editor interface {
	SetSize(size Size)

	ReadFile(path string) error
	WriteFile(path string) error

	Bytes() []byte
	LoadBytes([]byte)
	AppendBytes([]byte)

	GetFileName() string

	GetActiveWindow() Window
	SelectWindow(number int) error
	SelectWindowNext() error
	SelectWindowPrevious() error
	ListWindows()

	GetCursor() Point
	SetCursor(cursor Point)
	MoveCursor(direction int, multiplier int)
	MoveCursorToNextWord(multiplier int)
	MoveCursorToPreviousWord(multiplier int)
	MoveCursorToStartOfLine()
	MoveCursorToStartOfLineBelowCursor()
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveCursorToLine(line int)
	KeepCursorInRow()
	PageUp(multiplier int)
	PageDown(multiplier int)
	HalfPageUp(multiplier int)
	HalfPageDown(multiplier int)

	ReplaceCharacterAtCursor(cursor Point, c rune) rune
	DeleteRowsAtCursor(multiplier int) string
	DeleteWordsAtCursor(multiplier int) string
	DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string
	InsertChar(c rune)
	BackspaceChar() rune
	InsertText(text string, position int) (Point, int)
	ReverseCaseCharactersAtCursor(multiplier int)
	JoinRow(multiplier int) []Point
	ChangeWordAtCursor(multiplier int, text string) (string, int)

	YankRow(multiplier int)
	SetPasteBoard(text string, mode int)
	GetPasteMode() int
	GetPasteText() string

	Perform(op Operation, multiplier int)
	Repeat()
	PerformUndo()
	PerformRedo()

	SetInsertOperation(insert InsertOperation)
	GetInsertOperation() InsertOperation
	CloseInsert()

	PerformSearchForward(text string)
	PerformSearchBackward(text string)

	Gofmt(filename string, inputBytes []byte) (outputBytes []byte, err error)

	LayoutWindows()
	RenderWindows(d Display)

	SplitWindowVertically()
	SplitWindowHorizontally()
	CloseActiveWindow()

	// Tab groups.
	NewTabGroup(name string) int
	SelectTabGroup(id int) error
	CloseTabGroup(id int) error
	ListTabGroups() []int
}

// The Window interface supports text editing in a single focused leaf,
// or dispatch to a custom renderer when the leaf holds opaque content.
type Window interface {
	GetNumber() int
	GetName() string
	GetBuffer() Buffer
	GetParent() Window
	SetParent(w Window)

	GetCursor() Point
	SetCursor(cursor Point)

	SetCursorForDisplay(d Display)
	PerformSearchForward(text string)
	PerformSearchBackward(text string)
	MoveCursor(direction int, multiplier int)
	MoveCursorForward() int
	MoveCursorBackward() int
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveCursorToNextWord(multiplier int)
	MoveForwardToFirstNonSpace()
	MoveCursorBackToFirstNonSpace() int
	MoveCursorBackBeforeCurrentWord() int
	MoveCursorBackToStartOfCurrentWord()
	MoveCursorToPreviousWord(multiplier int)
	KeepCursorInRow()
	MoveCursorToStartOfLine()
	MoveCursorToStartOfLineBelowCursor()

	PageUp(multiplier int)
	PageDown(multiplier int)
	HalfPageUp(multiplier int)
	HalfPageDown(multiplier int)

	InsertChar(c rune)
	InsertRow()
	BackspaceChar() rune
	JoinRow(multiplier int) []Point
	YankRow(multiplier int)

	InsertText(text string, position int) (Point, int)
	ReverseCaseCharactersAtCursor(multiplier int)
	ReplaceCharacterAtCursor(cursor Point, c rune) rune
	DeleteRowsAtCursor(multiplier int) string

	DeleteWordsAtCursor(multiplier int) string
	DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string
	ChangeWordAtCursor(multiplier int, text string) (string, int)

	Layout(r Rect)
	Render(d Display)

	SplitVertically() (Window, Window)
	SplitHorizontally() (Window, Window)
	Close() Window
	GetWindowNext() Window
	GetWindowPrevious() Window
	FindWindow(int) Window

	// Window-tree geometry and identity beyond the original teacher shape.
	ID() string
	IsLeaf() bool
	SetSplitRatio(ratio float64)
	GetSplitRatio() float64
	SetFocused(focused bool)
	IsFocused() bool
	SetLayoutHints(h LayoutHints)
	GetLayoutHints() LayoutHints
}

// The Buffer interface supports file-level text manipulation.
type Buffer interface {
	LoadBytes(bytes []byte) []byte
	AppendBytes(bytes []byte)

	GetName() string
	GetReadOnly() bool
	GetFileName() string
	GetRowCount() int
	GetBytes() []byte
	TextFromPosition(row, col int) string

	SetNameAndReadOnly(string, bool)
	SetFileName(string)
}

// The Highlighter interface supports text highlighting over a buffer's rows.
type Highlighter interface {
	Highlight(b Buffer)
}

// The Operation interface supports repeatable, invertible operations.
type Operation interface {
	Perform(e Editor, multiplier int) Operation
}

// The InsertOperation interface supports insert operations that
// accumulate characters typed during insert mode.
type InsertOperation interface {
	Operation
	AddCharacter(c rune)
	DeleteCharacter()
	Close()
	Length() int
}

// The Commander interface supports user- and script-level control of an
// editor's mode, message bar, and keymap.
type Commander interface {
	SetMode(int)
	GetMessageBarText(length int) string

	// SetMessage sets the status message shown outside command/search/lisp
	// mode (the script bridge's "editor.set_status_message").
	SetMessage(text string)

	// Bind and Unbind implement the script bridge's "editor.bind"/
	// "editor.unbind": binding replaces any existing binding for the same
	// (key, mod) pair; unbinding removes one, falling back to the built-in
	// handler, if any, for that key.
	Bind(key Key, mod Modifier, action string)
	Unbind(key Key, mod Modifier)
}

// Color represents a displayable color.
type Color uint16

// Named colors for use by the Display interface.
const (
	ColorWhite = 0x08
	ColorBlack = 0x01
)

// The Display interface supports text and cursor display.
type Display interface {
	Close()
	GetNextEvent() *Event
	Render(Editor, Commander)
	SetCell(j int, i int, c rune, color Color)
	SetCellReversed(j int, i int, c rune, color Color)
	SetCursor(position Point)
}

// Event types generated by a Display.
const (
	EventKey = iota
	EventResize
)

// Key represents a keystroke value.
type Key int16

// Named key values generated by a Display.
const (
	KeyUnsupported = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab

	// Mouse buttons are reported as Key values on an EventMouse event,
	// following termbox-go's own convention of overloading Key for mouse
	// buttons rather than a separate type.
	KeyMouseLeft
	KeyMouseMiddle
	KeyMouseRight
	KeyMouseRelease
	KeyMouseWheelUp
	KeyMouseWheelDown
)

// Modifier is a bitmask of keyboard modifiers accompanying a key or
// mouse event. Bindings key on (Key, Modifier) pairs (spec.md §4.H).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModAlt   Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModShift Modifier = 1 << 2
)

// Event types generated by a Display.
const (
	EventMouse = iota + 2
)

// Event represents a user input event: a keystroke, a mouse action, or a
// terminal resize. MouseX/MouseY are populated for EventMouse; Width/
// Height are populated for EventResize.
type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Mod    Modifier
	MouseX int
	MouseY int
	Width  int
	Height int
}
