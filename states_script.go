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

// https://html.spec.whatwg.org/#script-data-less-than-sign-state
func (t *Tokenizer) scriptDataLessThanSignState() {
	r, ok := t.consume()
	if ok && r == '/' {
		t.resetTempBuffer()
		t.switchTo(ScriptDataEndTagOpenState)
		return
	}
	if ok && r == '!' {
		t.switchTo(ScriptDataEscapeStartState)
		t.emitChar('<')
		t.emitChar('!')
		return
	}
	t.emitChar('<')
	t.reconsumeIn(ScriptDataState)
}

func (t *Tokenizer) scriptDataEndTagOpenState() {
	t.genericEndTagOpen(ScriptDataState, ScriptDataEndTagNameState)
}
func (t *Tokenizer) scriptDataEndTagNameState() { t.genericEndTagName(ScriptDataState) }

// https://html.spec.whatwg.org/#script-data-escape-start-state
func (t *Tokenizer) scriptDataEscapeStartState() {
	r, ok := t.consume()
	if ok && r == '-' {
		t.switchTo(ScriptDataEscapeStartDashState)
		t.emitChar('-')
		return
	}
	t.reconsumeIn(ScriptDataState)
}

// https://html.spec.whatwg.org/#script-data-escape-start-dash-state
func (t *Tokenizer) scriptDataEscapeStartDashState() {
	r, ok := t.consume()
	if ok && r == '-' {
		t.switchTo(ScriptDataEscapedDashDashState)
		t.emitChar('-')
		return
	}
	t.reconsumeIn(ScriptDataState)
}

// https://html.spec.whatwg.org/#script-data-escaped-state
func (t *Tokenizer) scriptDataEscapedState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.switchTo(ScriptDataEscapedDashState)
		t.emitChar('-')
	case '<':
		t.switchTo(ScriptDataEscapedLessThanSignState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	default:
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-escaped-dash-state
func (t *Tokenizer) scriptDataEscapedDashState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.switchTo(ScriptDataEscapedDashDashState)
		t.emitChar('-')
	case '<':
		t.switchTo(ScriptDataEscapedLessThanSignState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.switchTo(ScriptDataEscapedState)
		t.emitChar(replacementChar)
	default:
		t.switchTo(ScriptDataEscapedState)
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-escaped-dash-dash-state
func (t *Tokenizer) scriptDataEscapedDashDashState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.emitChar('-')
	case '<':
		t.switchTo(ScriptDataEscapedLessThanSignState)
	case '>':
		t.switchTo(ScriptDataState)
		t.emitChar('>')
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.switchTo(ScriptDataEscapedState)
		t.emitChar(replacementChar)
	default:
		t.switchTo(ScriptDataEscapedState)
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-escaped-less-than-sign-state
func (t *Tokenizer) scriptDataEscapedLessThanSignState() {
	r, ok := t.consume()
	if ok && r == '/' {
		t.resetTempBuffer()
		t.switchTo(ScriptDataEscapedEndTagOpenState)
		return
	}
	if ok && isAlpha(r) {
		t.resetTempBuffer()
		t.emitChar('<')
		t.reconsumeIn(ScriptDataDoubleEscapeStartState)
		return
	}
	t.emitChar('<')
	t.reconsumeIn(ScriptDataEscapedState)
}

func (t *Tokenizer) scriptDataEscapedEndTagOpenState() {
	t.genericEndTagOpen(ScriptDataEscapedState, ScriptDataEscapedEndTagNameState)
}
func (t *Tokenizer) scriptDataEscapedEndTagNameState() {
	t.genericEndTagName(ScriptDataEscapedState)
}

// https://html.spec.whatwg.org/#script-data-double-escape-start-state
func (t *Tokenizer) scriptDataDoubleEscapeStartState() {
	r, ok := t.consume()
	if ok && (isWhitespace(r) || r == '/' || r == '>') {
		if t.tempBufferString() == "script" {
			t.switchTo(ScriptDataDoubleEscapedState)
		} else {
			t.switchTo(ScriptDataEscapedState)
		}
		t.emitChar(r)
		return
	}
	if ok && isUpperAlpha(r) {
		t.appendTempBuffer(toLower(r))
		t.emitChar(r)
		return
	}
	if ok && isLowerAlpha(r) {
		t.appendTempBuffer(r)
		t.emitChar(r)
		return
	}
	t.reconsumeIn(ScriptDataEscapedState)
}

// https://html.spec.whatwg.org/#script-data-double-escaped-state
func (t *Tokenizer) scriptDataDoubleEscapedState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.switchTo(ScriptDataDoubleEscapedDashState)
		t.emitChar('-')
	case '<':
		t.switchTo(ScriptDataDoubleEscapedLessThanSignState)
		t.emitChar('<')
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(replacementChar)
	default:
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-double-escaped-dash-state
func (t *Tokenizer) scriptDataDoubleEscapedDashState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.switchTo(ScriptDataDoubleEscapedDashDashState)
		t.emitChar('-')
	case '<':
		t.switchTo(ScriptDataDoubleEscapedLessThanSignState)
		t.emitChar('<')
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.switchTo(ScriptDataDoubleEscapedState)
		t.emitChar(replacementChar)
	default:
		t.switchTo(ScriptDataDoubleEscapedState)
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-double-escaped-dash-dash-state
func (t *Tokenizer) scriptDataDoubleEscapedDashDashState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.emitChar('-')
	case '<':
		t.switchTo(ScriptDataDoubleEscapedLessThanSignState)
		t.emitChar('<')
	case '>':
		t.switchTo(ScriptDataState)
		t.emitChar('>')
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.switchTo(ScriptDataDoubleEscapedState)
		t.emitChar(replacementChar)
	default:
		t.switchTo(ScriptDataDoubleEscapedState)
		t.emitChar(r)
	}
}

// https://html.spec.whatwg.org/#script-data-double-escaped-less-than-sign-state
func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignState() {
	r, ok := t.consume()
	if ok && r == '/' {
		t.resetTempBuffer()
		t.switchTo(ScriptDataDoubleEscapeEndState)
		t.emitChar('/')
		return
	}
	t.reconsumeIn(ScriptDataDoubleEscapedState)
}

// https://html.spec.whatwg.org/#script-data-double-escape-end-state
func (t *Tokenizer) scriptDataDoubleEscapeEndState() {
	r, ok := t.consume()
	if ok && (isWhitespace(r) || r == '/' || r == '>') {
		if t.tempBufferString() == "script" {
			t.switchTo(ScriptDataEscapedState)
		} else {
			t.switchTo(ScriptDataDoubleEscapedState)
		}
		t.emitChar(r)
		return
	}
	if ok && isUpperAlpha(r) {
		t.appendTempBuffer(toLower(r))
		t.emitChar(r)
		return
	}
	if ok && isLowerAlpha(r) {
		t.appendTempBuffer(r)
		t.emitChar(r)
		return
	}
	t.reconsumeIn(ScriptDataDoubleEscapedState)
}
