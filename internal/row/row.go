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

// Package row implements the editor's line storage. A Row holds the raw
// bytes of one line, with no Unicode grapheme awareness: positions are
// byte offsets, and InsertByte, DeleteByte and ReplaceByte each change
// exactly one byte.
package row

// Row is one line of text in a buffer.
type Row struct {
	Text []byte
}

// New builds a Row from a string, copying its bytes directly. Tabs are
// preserved as-is; expansion to display columns is a rendering concern,
// not a storage concern.
func New(text string) Row {
	r := Row{}
	r.Text = append([]byte(nil), text...)
	return r
}

// NewFromBytes builds a Row by copying the given byte slice.
func NewFromBytes(b []byte) Row {
	r := Row{}
	r.Text = append([]byte(nil), b...)
	return r
}

// DisplayText renders the row's raw bytes as a string.
func (r *Row) DisplayText() string {
	return string(r.Text)
}

// Length returns the row's length in bytes.
func (r *Row) Length() int {
	return len(r.Text)
}

// InsertByte inserts b at position, growing the row. Go's append already
// amortizes this with doubling capacity growth, so no separate growth
// bookkeeping is needed.
func (r *Row) InsertByte(position int, b byte) {
	if position > len(r.Text) {
		position = len(r.Text)
	}
	r.Text = append(r.Text, 0)
	copy(r.Text[position+1:], r.Text[position:])
	r.Text[position] = b
}

// InsertBytes inserts a run of bytes at position.
func (r *Row) InsertBytes(position int, b []byte) {
	if position < 0 {
		position = 0
	}
	if position > len(r.Text) {
		position = len(r.Text)
	}
	line := make([]byte, 0, len(r.Text)+len(b))
	line = append(line, r.Text[0:position]...)
	line = append(line, b...)
	line = append(line, r.Text[position:]...)
	r.Text = line
}

// ReplaceByte replaces the byte at position and returns the replaced byte.
func (r *Row) ReplaceByte(position int, b byte) byte {
	if position < 0 || position >= len(r.Text) {
		return 0
	}
	result := r.Text[position]
	r.Text[position] = b
	return result
}

// DeleteByte deletes the byte at position and returns the deleted byte.
func (r *Row) DeleteByte(position int) byte {
	if len(r.Text) == 0 {
		return 0
	}
	if position > len(r.Text)-1 {
		position = len(r.Text) - 1
	}
	if position < 0 {
		position = 0
	}
	c := r.Text[position]
	r.Text = append(r.Text[0:position], r.Text[position+1:]...)
	return c
}

// Split splits the row at position, leaving the prefix in place and
// returning a new Row holding the suffix.
func (r *Row) Split(position int) Row {
	if position < 0 {
		position = 0
	}
	if position < len(r.Text) {
		after := r.Text[position:]
		tail := NewFromBytes(after)
		r.Text = r.Text[0:position]
		return tail
	}
	return New("")
}

// Append joins another row's bytes onto the end of this one.
func (r *Row) Append(other Row) {
	r.Text = append(r.Text, other.Text...)
}

// ByteAt returns the byte at position, or 0 if out of range.
func (r *Row) ByteAt(position int) byte {
	if position < 0 || position >= len(r.Text) {
		return 0
	}
	return r.Text[position]
}

// FirstPositionAfterCol returns the byte offset of the first occurrence
// of text strictly after col, or -1 if none.
func (r *Row) FirstPositionAfterCol(col int, text string) int {
	if col < -1 {
		col = -1
	}
	start := col + 1
	if start > len(r.Text) {
		return -1
	}
	idx := indexOf(r.Text[start:], text)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// LastPositionBeforeCol returns the byte offset of the last occurrence
// of text strictly before col, or -1 if none.
func (r *Row) LastPositionBeforeCol(col int, text string) int {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	if col <= 0 {
		return -1
	}
	best := -1
	for i := 0; i+len(text) <= col; i++ {
		if string(r.Text[i:i+len(text)]) == text {
			best = i
		}
	}
	return best
}

func indexOf(haystack []byte, needle string) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}
