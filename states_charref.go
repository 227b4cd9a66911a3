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

// https://html.spec.whatwg.org/#character-reference-state
func (t *Tokenizer) characterReferenceState() {
	t.resetTempBuffer()
	t.appendTempBuffer('&')
	r, ok := t.consume()
	if ok && isAlphanumeric(r) {
		t.reconsumeIn(NamedCharacterReferenceState)
		return
	}
	if ok && r == '#' {
		t.appendTempBuffer('#')
		t.switchTo(NumericCharacterReferenceState)
		return
	}
	t.flushTempBufferAsCharRef()
	t.reconsumeIn(t.returnState)
}

// https://html.spec.whatwg.org/#named-character-reference-state
//
// The real algorithm walks the named-character-reference trie one scalar at
// a time, matching the longest registered identifier as it goes. Since
// lookupLongestNamedReference (entities.go) only exposes exact-key lookups,
// this greedily consumes a bounded run of alphanumerics (plus a trailing
// ';' if present) into the temporary buffer, then finds the longest
// matching prefix of that run and pushes back whatever wasn't part of it.
func (t *Tokenizer) namedCharacterReferenceState() {
	for len(t.tempBuffer)-1 < maxNamedReferenceLength {
		r, ok := t.consume()
		if !ok {
			break
		}
		if isAlphanumeric(r) {
			t.appendTempBuffer(r)
			continue
		}
		if r == ';' {
			t.appendTempBuffer(r)
			break
		}
		t.src.reconsumeLast()
		break
	}

	matchBuf := t.tempBuffer[1:]
	consumedN, expansion, ok := t.lookupNamedReference(matchBuf)
	if !ok {
		t.flushTempBufferAsCharRef()
		t.switchTo(AmbiguousAmpersandState)
		return
	}

	extra := matchBuf[consumedN:]
	if len(extra) > 0 {
		t.src.pushBack(extra)
	}
	lastMatched := matchBuf[consumedN-1]

	var next rune
	var nextOK bool
	if len(extra) > 0 {
		next, nextOK = extra[0], true
	} else {
		next, nextOK = t.consume()
		if nextOK {
			t.src.reconsumeLast()
		}
	}

	if t.consumedAsPartOfAttribute() && lastMatched != ';' && nextOK && (next == '=' || isAlphanumeric(next)) {
		// Flush only '&' plus the matched prefix verbatim; matchBuf[consumedN:]
		// was already pushed back above and will be re-consumed by the
		// return state, so it must not also be flushed here.
		t.tempBuffer = t.tempBuffer[:consumedN+1]
		t.flushTempBufferAsCharRef()
		t.switchToReturnState()
		return
	}

	if lastMatched != ';' {
		t.parseError(MissingSemicolonAfterCharacterReference)
	}
	t.resetTempBuffer()
	for _, r := range expansion {
		t.appendTempBuffer(r)
	}
	t.flushTempBufferAsCharRef()
	t.switchToReturnState()
}

// lookupNamedReference is a thin wrapper so the state method above reads at
// the same level of abstraction as the rest of the file.
func (t *Tokenizer) lookupNamedReference(buf []rune) (int, string, bool) {
	return lookupLongestNamedReference(buf)
}

// https://html.spec.whatwg.org/#ambiguous-ampersand-state
func (t *Tokenizer) ambiguousAmpersandState() {
	r, ok := t.consume()
	if ok && isAlphanumeric(r) {
		if t.consumedAsPartOfAttribute() {
			t.tag.appendAttrValue(r)
		} else {
			t.emitChar(r)
		}
		return
	}
	if ok && r == ';' {
		t.parseError(UnknownNamedCharacterReference)
	}
	t.reconsumeIn(t.returnState)
}

// https://html.spec.whatwg.org/#numeric-character-reference-state
func (t *Tokenizer) numericCharacterReferenceState() {
	t.charRefCode = 0
	r, ok := t.consume()
	if ok && (r == 'x' || r == 'X') {
		t.appendTempBuffer(r)
		t.switchTo(HexadecimalCharacterReferenceStartState)
		return
	}
	t.reconsumeIn(DecimalCharacterReferenceStartState)
}

// https://html.spec.whatwg.org/#hexadecimal-character-reference-start-state
func (t *Tokenizer) hexadecimalCharacterReferenceStartState() {
	r, ok := t.consume()
	if ok && isHexDigit(r) {
		t.reconsumeIn(HexadecimalCharacterReferenceState)
		return
	}
	t.parseError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBufferAsCharRef()
	t.reconsumeIn(t.returnState)
}

// https://html.spec.whatwg.org/#decimal-character-reference-start-state
func (t *Tokenizer) decimalCharacterReferenceStartState() {
	r, ok := t.consume()
	if ok && isDigit(r) {
		t.reconsumeIn(DecimalCharacterReferenceState)
		return
	}
	t.parseError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBufferAsCharRef()
	t.reconsumeIn(t.returnState)
}

// saturatedAdd folds a new digit into the accumulated character reference
// code, clamping once it's past the Unicode range so a long run of digits
// can't overflow the uint32 accumulator.
func saturatedAdd(code uint32, base, digit uint32) uint32 {
	code = code*base + digit
	if code > 0x10FFFF {
		code = 0x10FFFF + 1
	}
	return code
}

// https://html.spec.whatwg.org/#hexadecimal-character-reference-state
func (t *Tokenizer) hexadecimalCharacterReferenceState() {
	r, ok := t.consume()
	if ok {
		switch {
		case isHexDigit(r):
			t.charRefCode = saturatedAdd(t.charRefCode, 16, hexVal(r))
			return
		case r == ';':
			t.switchTo(NumericCharacterReferenceEndState)
			return
		}
	}
	t.parseError(MissingSemicolonAfterCharacterReference)
	t.reconsumeIn(NumericCharacterReferenceEndState)
}

// https://html.spec.whatwg.org/#decimal-character-reference-state
func (t *Tokenizer) decimalCharacterReferenceState() {
	r, ok := t.consume()
	if ok {
		switch {
		case isDigit(r):
			t.charRefCode = saturatedAdd(t.charRefCode, 10, uint32(r-'0'))
			return
		case r == ';':
			t.switchTo(NumericCharacterReferenceEndState)
			return
		}
	}
	t.parseError(MissingSemicolonAfterCharacterReference)
	t.reconsumeIn(NumericCharacterReferenceEndState)
}

// https://html.spec.whatwg.org/#numeric-character-reference-end-state
func (t *Tokenizer) numericCharacterReferenceEndState() {
	r, kind, isErr := normalizeNumericReference(t.charRefCode)
	if isErr {
		t.parseError(kind)
	}
	t.resetTempBuffer()
	t.appendTempBuffer(r)
	t.flushTempBufferAsCharRef()
	t.switchToReturnState()
}
