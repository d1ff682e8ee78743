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

package syntax

import "github.com/gottx/gottx/internal/types"

// goKeywords lists the Go language's reserved words, the same set the
// teacher's regex-based GoHighlighter matched.
var goKeywords = []string{
	"break", "default", "func", "interface", "select",
	"case", "defer", "go", "map", "struct",
	"chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type",
	"continue", "for", "import", "return", "var",
}

// NewGoDefinition builds the bundled Go syntax definition. The full
// catalogue of bundled languages is out of scope; this one ships because
// the editor's own Gofmt integration and test fixtures are Go source.
func NewGoDefinition() *Definition {
	d := NewDefinition("go")
	d.AddExtension(".go")
	d.SetComments("//", "/*", "*/")
	for _, kw := range goKeywords {
		d.AddKeyword(kw, types.HighlightKeyword)
	}
	return d
}

// NewPlainDefinition builds a definition with no rules at all, used for
// files with no recognized extension; tokenizing against it always
// yields an empty segment list.
func NewPlainDefinition() *Definition {
	return NewDefinition("text")
}
