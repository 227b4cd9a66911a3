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

// https://html.spec.whatwg.org/#tag-open-state
func (t *Tokenizer) tagOpenState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFBeforeTagName)
		t.emitChar('<')
		t.emitEOF()
		return
	}
	switch {
	case r == '!':
		t.switchTo(MarkupDeclarationOpenState)
	case r == '/':
		t.switchTo(EndTagOpenState)
	case isAlpha(r):
		t.newTagBuf(false)
		t.reconsumeIn(TagNameState)
	case r == '?':
		t.parseError(UnexpectedQuestionMarkInsteadOfTagName)
		t.newCommentBuf()
		t.reconsumeIn(BogusCommentState)
	default:
		t.parseError(InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		t.reconsumeIn(DataState)
	}
}

// https://html.spec.whatwg.org/#end-tag-open-state
func (t *Tokenizer) endTagOpenState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		t.emitEOF()
		return
	}
	switch {
	case isAlpha(r):
		t.newTagBuf(true)
		t.reconsumeIn(TagNameState)
	case r == '>':
		t.parseError(MissingEndTagName)
		t.switchTo(DataState)
	default:
		t.parseError(InvalidFirstCharacterOfTagName)
		t.newCommentBuf()
		t.reconsumeIn(BogusCommentState)
	}
}

// https://html.spec.whatwg.org/#tag-name-state
func (t *Tokenizer) tagNameState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInTag)
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(BeforeAttributeNameState)
	case r == '/':
		t.switchTo(SelfClosingStartTagState)
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentTag()
	case isUpperAlpha(r):
		t.tag.appendName(toLower(r))
	case r == 0:
		t.parseError(UnexpectedNullCharacter)
		t.tag.appendName(replacementChar)
	default:
		t.tag.appendName(r)
	}
}

// finishAttributeName runs the duplicate-attribute check whenever the
// AttributeName state is left, whether via whitespace, '/', '>', EOF, or
// '='.
func (t *Tokenizer) finishAttributeName() {
	if t.tag.dropDuplicateAttribute() {
		t.parseError(DuplicateAttribute)
	}
}

// https://html.spec.whatwg.org/#before-attribute-name-state
func (t *Tokenizer) beforeAttributeNameState() {
	r, ok := t.consume()
	if !ok {
		t.reconsumeIn(AfterAttributeNameState)
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '/', r == '>':
		t.reconsumeIn(AfterAttributeNameState)
	case r == '=':
		t.parseError(UnexpectedEqualsSignBeforeAttributeName)
		t.tag.startNewAttribute()
		t.tag.appendAttrName('=')
		t.switchTo(AttributeNameState)
	default:
		t.tag.startNewAttribute()
		t.reconsumeIn(AttributeNameState)
	}
}

// https://html.spec.whatwg.org/#attribute-name-state
func (t *Tokenizer) attributeNameState() {
	r, ok := t.consume()
	if !ok {
		t.finishAttributeName()
		t.reconsumeIn(AfterAttributeNameState)
		return
	}
	switch {
	case isWhitespace(r), r == '/', r == '>':
		t.finishAttributeName()
		t.reconsumeIn(AfterAttributeNameState)
	case r == '=':
		t.finishAttributeName()
		t.switchTo(BeforeAttributeValueState)
	case isUpperAlpha(r):
		t.tag.appendAttrName(toLower(r))
	case r == 0:
		t.parseError(UnexpectedNullCharacter)
		t.tag.appendAttrName(replacementChar)
	case r == '"', r == '\'', r == '<':
		t.parseError(UnexpectedCharacterInAttributeName)
		t.tag.appendAttrName(r)
	default:
		t.tag.appendAttrName(r)
	}
}

// https://html.spec.whatwg.org/#after-attribute-name-state
func (t *Tokenizer) afterAttributeNameState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInTag)
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '/':
		t.switchTo(SelfClosingStartTagState)
	case r == '=':
		t.switchTo(BeforeAttributeValueState)
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentTag()
	default:
		t.tag.startNewAttribute()
		t.reconsumeIn(AttributeNameState)
	}
}

// https://html.spec.whatwg.org/#before-attribute-value-state
func (t *Tokenizer) beforeAttributeValueState() {
	r, ok := t.consume()
	if !ok {
		t.reconsumeIn(AttributeValueUnquotedState)
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '"':
		t.switchTo(AttributeValueDoubleQuotedState)
	case r == '\'':
		t.switchTo(AttributeValueSingleQuotedState)
	case r == '>':
		t.parseError(MissingAttributeValue)
		t.switchTo(DataState)
		t.emitCurrentTag()
	default:
		t.reconsumeIn(AttributeValueUnquotedState)
	}
}

// attributeValueQuotedState implements both AttributeValueDoubleQuoted and
// AttributeValueSingleQuoted, which differ only in their terminating quote.
func (t *Tokenizer) attributeValueQuotedState(quote rune) {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInTag)
		t.emitEOF()
		return
	}
	switch r {
	case quote:
		t.switchTo(AfterAttributeValueQuotedState)
	case '&':
		t.setReturnState(t.state)
		t.switchTo(CharacterReferenceState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.tag.appendAttrValue(replacementChar)
	default:
		t.tag.appendAttrValue(r)
	}
}

// https://html.spec.whatwg.org/#attribute-value-unquoted-state
func (t *Tokenizer) attributeValueUnquotedState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInTag)
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(BeforeAttributeNameState)
	case r == '&':
		t.setReturnState(AttributeValueUnquotedState)
		t.switchTo(CharacterReferenceState)
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentTag()
	case r == 0:
		t.parseError(UnexpectedNullCharacter)
		t.tag.appendAttrValue(replacementChar)
	case r == '"', r == '\'', r == '<', r == '=', r == '`':
		t.parseError(UnexpectedCharacterInUnquotedAttributeValue)
		t.tag.appendAttrValue(r)
	default:
		t.tag.appendAttrValue(r)
	}
}

// https://html.spec.whatwg.org/#after-attribute-value-quoted-state
func (t *Tokenizer) afterAttributeValueQuotedState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInTag)
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(BeforeAttributeNameState)
	case r == '/':
		t.switchTo(SelfClosingStartTagState)
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentTag()
	default:
		t.parseError(MissingWhitespaceBetweenAttributes)
		t.reconsumeIn(BeforeAttributeNameState)
	}
}

// https://html.spec.whatwg.org/#self-closing-start-tag-state
func (t *Tokenizer) selfClosingStartTagState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInTag)
		t.emitEOF()
		return
	}
	if r == '>' {
		t.tag.SelfClosing = true
		t.switchTo(DataState)
		t.emitCurrentTag()
		return
	}
	t.parseError(UnexpectedSolidusInTag)
	t.reconsumeIn(BeforeAttributeNameState)
}
