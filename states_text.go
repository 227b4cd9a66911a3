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

// https://html.spec.whatwg.org/#data-state
func (t *Tokenizer) dataState() {
	r, ok := t.consume()
	if !ok {
		t.emitEOF()
		return
	}
	switch r {
	case '&':
		t.setReturnState(DataState)
		t.switchTo(CharacterReferenceState)
	case '<':
		t.switchTo(TagOpenState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(0)
	default:
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#rcdata-state
func (t *Tokenizer) rcdataState() {
	r, ok := t.consume()
	if !ok {
		t.emitEOF()
		return
	}
	switch r {
	case '&':
		t.setReturnState(RCDATAState)
		t.switchTo(CharacterReferenceState)
	case '<':
		t.switchTo(RCDATALessThanSignState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	default:
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#rawtext-state
func (t *Tokenizer) rawtextState() {
	r, ok := t.consume()
	if !ok {
		t.emitEOF()
		return
	}
	switch r {
	case '<':
		t.switchTo(RAWTEXTLessThanSignState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	default:
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-state
func (t *Tokenizer) scriptDataState() {
	r, ok := t.consume()
	if !ok {
		t.emitEOF()
		return
	}
	switch r {
	case '<':
		t.switchTo(ScriptDataLessThanSignState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	default:
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#plaintext-state
func (t *Tokenizer) plaintextState() {
	r, ok := t.consume()
	if !ok {
		t.emitEOF()
		return
	}
	if r == 0 {
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
		return
	}
	t.emitChar(r)
}

// genericLessThanSign implements the shared shape of RCDATALessThanSign and
// RAWTEXTLessThanSign: only '/' diverts to an end-tag-open path, anything
// else is literal '<' followed by reconsuming in the parent text state.
func (t *Tokenizer) genericLessThanSign(parent, endTagOpen State) {
	r, ok := t.consume()
	if ok && r == '/' {
		t.resetTempBuffer()
		t.switchTo(endTagOpen)
		return
	}
	t.emitChar('<')
	t.reconsumeIn(parent)
}

// genericEndTagOpen implements the shared shape of the *EndTagOpen states:
// an ASCII letter starts building a (possibly inappropriate) end tag,
// anything else backs out to literal "</" in the parent text state.
func (t *Tokenizer) genericEndTagOpen(parent, endTagName State) {
	r, ok := t.consume()
	if ok && isAlpha(r) {
		t.newTagBuf(true)
		t.reconsumeIn(endTagName)
		return
	}
	t.emitChar('<')
	t.emitChar('/')
	t.reconsumeIn(parent)
}

// genericEndTagName implements the shared shape of the *EndTagName states:
// only an *appropriate* end tag is allowed to complete; otherwise every
// character scanned so far (and the '<','/' prefix) is flushed back out as
// literal character tokens and the parent text state reconsumes the
// offending character.
func (t *Tokenizer) genericEndTagName(parent State) {
	r, ok := t.consume()
	if ok {
		switch {
		case isWhitespace(r):
			if t.appropriateEndTag() {
				t.switchTo(BeforeAttributeNameState)
				return
			}
		case r == '/':
			if t.appropriateEndTag() {
				t.switchTo(SelfClosingStartTagState)
				return
			}
		case r == '>':
			if t.appropriateEndTag() {
				t.switchTo(DataState)
				t.emitCurrentTag()
				return
			}
		case isUpperAlpha(r):
			t.tag.appendName(toLower(r))
			t.appendTempBuffer(r)
			return
		case isLowerAlpha(r):
			t.tag.appendName(r)
			t.appendTempBuffer(r)
			return
		}
	}
	t.emitChar('<')
	t.emitChar('/')
	t.emitString(t.tempBufferString())
	t.reconsumeIn(parent)
}

func (t *Tokenizer) rcdataLessThanSignState() {
	t.genericLessThanSign(RCDATAState, RCDATAEndTagOpenState)
}
func (t *Tokenizer) rcdataEndTagOpenState() {
	t.genericEndTagOpen(RCDATAState, RCDATAEndTagNameState)
}
func (t *Tokenizer) rcdataEndTagNameState() { t.genericEndTagName(RCDATAState) }

func (t *Tokenizer) rawtextLessThanSignState() {
	t.genericLessThanSign(RAWTEXTState, RAWTEXTEndTagOpenState)
}
func (t *Tokenizer) rawtextEndTagOpenState() {
	t.genericEndTagOpen(RAWTEXTState, RAWTEXTEndTagNameState)
}
func (t *Tokenizer) rawtextEndTagNameState() { t.genericEndTagName(RAWTEXTState) }
