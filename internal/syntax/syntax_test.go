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

import (
	"regexp"
	"testing"

	"github.com/gottx/gottx/internal/types"
	"github.com/stretchr/testify/assert"
)

func cLikeDefinition() *Definition {
	d := NewDefinition("c")
	d.AddExtension(".c")
	d.SetComments("//", "/*", "*/")
	d.AddKeyword("int", types.HighlightKeyword)
	d.AddKeyword("return", types.HighlightKeyword)
	return d
}

// TestTokenizeClikeKeywordNumberAndComment is spec.md §8 scenario 2: a
// file whose content is "int x = 42;\n// hi\n" with a C-like syntax
// attached highlights "int" as a keyword, "42" as a number, ";"
// uncoloured, and row 1 entirely as a comment.
func TestTokenizeClikeKeywordNumberAndComment(t *testing.T) {
	def := cLikeDefinition()

	segments, endsInMultiline := Tokenize(def, []byte("int x = 42;"), false)
	assert.False(t, endsInMultiline)
	assert.Contains(t, segments, types.HighlightSegment{StartCol: 0, EndColExclusive: 3, Kind: types.HighlightKeyword})
	numberAt := func() *types.HighlightSegment {
		for _, s := range segments {
			if s.Kind == types.HighlightNumber {
				return &s
			}
		}
		return nil
	}()
	if assert.NotNil(t, numberAt) {
		assert.Equal(t, "42", "int x = 42;"[numberAt.StartCol:numberAt.EndColExclusive])
	}
	semicolon := len("int x = 42;") - 1
	for _, s := range segments {
		covered := semicolon >= s.StartCol && semicolon < s.EndColExclusive
		assert.False(t, covered, "semicolon must not fall inside any highlighted segment")
	}

	commentSegments, _ := Tokenize(def, []byte("// hi"), false)
	assert.Equal(t, []types.HighlightSegment{{StartCol: 0, EndColExclusive: 5, Kind: types.HighlightComment}}, commentSegments)
}

// TestTokenizePriorityOrder exercises the fixed priority order: a
// multi-line carry-in beats everything, then single-line comment, then
// multi-line open marker, then string, then pattern rules, then number,
// then identifier/keyword.
func TestTokenizePriorityOrder(t *testing.T) {
	d := NewDefinition("go")
	d.SetComments("//", "/*", "*/")
	d.AddKeyword("return", types.HighlightKeyword)

	segments, ends := Tokenize(d, []byte(`return "//not a comment" // real`), false)
	assert.False(t, ends)
	assert.Equal(t, types.HighlightKeyword, segments[0].Kind)
	var sawString, sawComment bool
	for _, s := range segments {
		switch s.Kind {
		case types.HighlightString:
			sawString = true
		case types.HighlightComment:
			sawComment = true
		}
	}
	assert.True(t, sawString, "a quoted comment marker must tokenize as a string, not a comment")
	assert.True(t, sawComment, "the real trailing comment must still be recognized")
}

// TestTokenizeMultilineCommentCarriesStateAcrossLines checks that an
// unterminated /* carries the multi-line bit forward, and the next
// line's close marker is honored before normal scanning resumes.
func TestTokenizeMultilineCommentCarriesStateAcrossLines(t *testing.T) {
	def := cLikeDefinition()

	segments, ends := Tokenize(def, []byte("/* start of a"), false)
	assert.True(t, ends)
	assert.Equal(t, []types.HighlightSegment{{StartCol: 0, EndColExclusive: 13, Kind: types.HighlightComment}}, segments)

	segments, ends = Tokenize(def, []byte("comment that keeps going"), true)
	assert.True(t, ends)
	assert.Equal(t, types.HighlightComment, segments[0].Kind)

	segments, ends = Tokenize(def, []byte("end */ int x;"), true)
	assert.False(t, ends)
	assert.Equal(t, types.HighlightSegment{StartCol: 0, EndColExclusive: 6, Kind: types.HighlightComment}, segments[0])
	var sawKeywordAfterClose bool
	for _, s := range segments[1:] {
		if s.Kind == types.HighlightKeyword {
			sawKeywordAfterClose = true
		}
	}
	assert.True(t, sawKeywordAfterClose, "scanning must resume normally after the multi-line comment closes")
}

// TestTokenizeRulePatternBeatsIdentifier exercises AddRule's escape
// hatch, which is tried before the default identifier/keyword check.
func TestTokenizeRulePatternBeatsIdentifier(t *testing.T) {
	d := NewDefinition("shell")
	d.AddRule(regexp.MustCompile(`^#[a-zA-Z]+`), types.HighlightString)

	segments, _ := Tokenize(d, []byte("#include"), false)
	assert.Equal(t, []types.HighlightSegment{{StartCol: 0, EndColExclusive: 8, Kind: types.HighlightString}}, segments)
}

func TestRegistryFindByFilenameMatchesRegisteredExtension(t *testing.T) {
	r := NewRegistry()
	goDef := NewGoDefinition()
	r.Register(goDef)
	r.Register(NewPlainDefinition())

	assert.Same(t, goDef, r.FindByFilename("main.go"))
	assert.Nil(t, r.FindByFilename("README.md"))
}

func TestRegistryRegisterReplacesSameName(t *testing.T) {
	r := NewRegistry()
	first := NewDefinition("go")
	second := NewDefinition("go")
	second.AddExtension(".go")
	r.Register(first)
	r.Register(second)

	got, ok := r.Get("go")
	assert.True(t, ok)
	assert.Same(t, second, got)
	assert.Len(t, r.All(), 1)
}
