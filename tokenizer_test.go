// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package html

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenizeAll drains a Tokenizer built over src, copying every token (the
// tokenizer reuses its builder fields) up to and including the terminal EOF.
func tokenizeAll(src string) []Token {
	tok := NewTokenizer(strings.NewReader(src))
	var got []Token
	for {
		t := tok.Next()
		got = append(got, t.Copy())
		if t.Kind() == EOFToken {
			break
		}
	}
	return got
}

func diffTokens(t *testing.T, want, got []Token) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("token diff (-want +got)\n", diff)
	}
}

func chars(s string) []Token {
	var out []Token
	for _, r := range s {
		out = append(out, Character(r))
	}
	return out
}

func tok(toks ...Token) []Token { return toks }

func TestTokenDoctypeParagraph(t *testing.T) {
	const input = `<!DOCTYPE html><p>Hi</p>`
	want := append(tok(&Doctype{Name: "html"}, &Tag{Name: "p"}),
		append(chars("Hi"), &Tag{Name: "p", IsEnd: true}, EOF{})...)
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenAttributeCaseAndBooleanAttribute(t *testing.T) {
	const input = `<input TYPE=checkbox CHECKED>`
	want := tok(&Tag{
		Name: "input",
		Attributes: []Attribute{
			{Name: "type", Value: "checkbox"},
			{Name: "checked", Value: ""},
		},
	}, EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenDuplicateAttributeDropped(t *testing.T) {
	var gotErrors []ParseErrorKind
	tokr := NewTokenizer(strings.NewReader(`<a href="1" href="2">`))
	tokr.ErrorSink = func(kind ParseErrorKind, offset int) { gotErrors = append(gotErrors, kind) }
	got := tokr.Next().Copy()
	want := &Tag{Name: "a", Attributes: []Attribute{{Name: "href", Value: "1"}}}
	diffTokens(t, tok(want), tok(got))
	if len(gotErrors) != 1 || gotErrors[0] != DuplicateAttribute {
		t.Fatalf("errors = %v, want [DuplicateAttribute]", gotErrors)
	}
}

func TestTokenNestedCommentRetained(t *testing.T) {
	const input = `<!--a<!--b-->`
	want := tok(&Comment{Data: "a<!--b"}, EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenNamedCharacterReferences(t *testing.T) {
	const input = `&amp;&notin;`
	want := append(chars("&"), append(chars("∉"), EOF{})...)
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenAmbiguousAmpersandUnknownReference(t *testing.T) {
	const input = `&zzzzz;`
	want := append(chars("&zzzzz;"), EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenAmbiguousAmpersandInAttributeHistoricalRule(t *testing.T) {
	// "amp" (no trailing ';') followed by '=' inside an attribute value must
	// NOT expand, for historical reasons.
	const input = `<a href="x&amp=y">`
	got := tokenizeAll(input)
	tag, ok := got[0].(*Tag)
	if !ok {
		t.Fatalf("got[0] = %T, want *Tag", got[0])
	}
	if want := "x&amp=y"; tag.Attributes[0].Value != want {
		t.Errorf("attribute value = %q, want %q", tag.Attributes[0].Value, want)
	}
}

func TestTokenAmbiguousAmpersandInAttributeHistoricalRuleWithTrailingRun(t *testing.T) {
	// "amp" (no trailing ';') matches as a strict prefix of the greedily
	// scanned "ampXy", so the characters beyond the match ("Xy") are pushed
	// back onto the source rather than consumed as part of the reference.
	// They must be re-consumed exactly once by the attribute-value state,
	// not flushed a second time out of the temporary buffer.
	const input = `<a href="x&ampXy">`
	got := tokenizeAll(input)
	tag, ok := got[0].(*Tag)
	if !ok {
		t.Fatalf("got[0] = %T, want *Tag", got[0])
	}
	if want := "x&ampXy"; tag.Attributes[0].Value != want {
		t.Errorf("attribute value = %q, want %q", tag.Attributes[0].Value, want)
	}
}

func TestTokenAmpersandWithSemicolonExpandsInAttribute(t *testing.T) {
	const input = `<a href="x&amp;y">`
	got := tokenizeAll(input)
	tag := got[0].(*Tag)
	if want := "x&y"; tag.Attributes[0].Value != want {
		t.Errorf("attribute value = %q, want %q", tag.Attributes[0].Value, want)
	}
}

func TestTokenScriptDataEndTagTermination(t *testing.T) {
	const input = `<script>var x = "<div>";</script>`
	got := tokenizeAll(input)

	if _, ok := got[0].(*Tag); !ok || got[0].(*Tag).Name != "script" {
		t.Fatalf("got[0] = %#v, want start tag script", got[0])
	}

	var buf strings.Builder
	i := 1
	for ; i < len(got); i++ {
		c, ok := got[i].(Character)
		if !ok {
			break
		}
		buf.WriteRune(rune(c))
	}
	if want := `var x = "<div>";`; buf.String() != want {
		t.Errorf("script body = %q, want %q", buf.String(), want)
	}

	end, ok := got[i].(*Tag)
	if !ok || !end.IsEnd || end.Name != "script" {
		t.Fatalf("terminating token = %#v, want end tag script", got[i])
	}
	if got[i+1].Kind() != EOFToken {
		t.Fatalf("final token = %#v, want EOF", got[i+1])
	}
}

func TestTokenSelfClosingVoidTag(t *testing.T) {
	const input = `<br/>`
	want := tok(&Tag{Name: "br", SelfClosing: true}, EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenEOFBeforeTagName(t *testing.T) {
	const input = `<`
	want := append(chars("<"), EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenEOFAfterMarkupDeclarationOpen(t *testing.T) {
	const input = `<!`
	got := tokenizeAll(input)
	c, ok := got[0].(*Comment)
	if !ok {
		t.Fatalf("got[0] = %#v, want *Comment (bogus-comment recovery)", got[0])
	}
	if c.Data != "" {
		t.Errorf("comment data = %q, want empty", c.Data)
	}
	if got[1].Kind() != EOFToken {
		t.Fatalf("got[1] = %#v, want EOF", got[1])
	}
}

func TestTokenEOFInAttributeValue(t *testing.T) {
	const input = `<a href="unterminated`
	got := tokenizeAll(input)
	if len(got) != 1 || got[0].Kind() != EOFToken {
		t.Fatalf("got = %#v, want exactly [EOF] (tag dropped on eof-in-tag)", got)
	}
}

func TestTokenDoctypeNameCaseFolded(t *testing.T) {
	const input = `<!DOCTYPE HTML>`
	want := tok(&Doctype{Name: "html"}, EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenPlainEndTag(t *testing.T) {
	// A bare end tag is emitted with IsEnd set, no attributes, and no
	// self-closing flag.
	const input = `</p>`
	want := tok(&Tag{Name: "p", IsEnd: true}, EOF{})
	diffTokens(t, want, tokenizeAll(input))
}

func TestTokenCDATASectionOutsideHTMLNamespace(t *testing.T) {
	tokr := NewTokenizer(strings.NewReader(`<![CDATA[a<b]]>`))
	tokr.IsAdjustedCurrentNodeInHTMLNamespace = func() bool { return false }
	var got []Token
	for {
		tk := tokr.Next().Copy()
		got = append(got, tk)
		if tk.Kind() == EOFToken {
			break
		}
	}
	want := append(chars("a<b"), EOF{})
	diffTokens(t, want, got)
}

func TestTokenSetStateEntersRawTextWithAppropriateEndTag(t *testing.T) {
	// A fragment re-tokenization of a <textarea> subtree: the caller already
	// knows it is inside a textarea, so it enters RCDATAState directly and
	// seeds the appropriate-end-tag predicate with "textarea" instead of
	// tokenizing a synthetic start tag first.
	tokr := NewTokenizer(strings.NewReader(`fine&amp;dandy</textarea><p>`))
	tokr.SetState(RCDATAState, "textarea")
	var got []Token
	for {
		tk := tokr.Next().Copy()
		got = append(got, tk)
		if tk.Kind() == EOFToken {
			break
		}
	}
	want := append(chars("fine&dandy"), &Tag{Name: "textarea", IsEnd: true}, &Tag{Name: "p"}, EOF{})
	diffTokens(t, want, got)
}

func TestTokenCDATASectionInHTMLNamespaceIsBogusComment(t *testing.T) {
	const input = `<![CDATA[a]]>`
	got := tokenizeAll(input)
	c, ok := got[0].(*Comment)
	if !ok {
		t.Fatalf("got[0] = %#v, want *Comment", got[0])
	}
	if c.Data != "[CDATA[a]]" {
		t.Errorf("comment data = %q, want %q", c.Data, "[CDATA[a]]")
	}
}
