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

// https://html.spec.whatwg.org/#doctype-state
func (t *Tokenizer) doctypeState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.newDoctypeBuf()
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	if isWhitespace(r) {
		t.switchTo(BeforeDOCTYPENameState)
		return
	}
	if r == '>' {
		t.reconsumeIn(BeforeDOCTYPENameState)
		return
	}
	t.parseError(MissingWhitespaceBeforeDoctypeName)
	t.reconsumeIn(BeforeDOCTYPENameState)
}

// https://html.spec.whatwg.org/#before-doctype-name-state
func (t *Tokenizer) beforeDOCTYPENameState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.newDoctypeBuf()
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case isUpperAlpha(r):
		t.newDoctypeBuf()
		t.doctype.appendName(toLower(r))
		t.switchTo(DOCTYPENameState)
	case r == 0:
		t.parseError(UnexpectedNullCharacter)
		t.newDoctypeBuf()
		t.doctype.appendName(replacementChar)
		t.switchTo(DOCTYPENameState)
	case r == '>':
		t.parseError(MissingDoctypeName)
		t.newDoctypeBuf()
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.newDoctypeBuf()
		t.doctype.appendName(r)
		t.switchTo(DOCTYPENameState)
	}
}

// https://html.spec.whatwg.org/#doctype-name-state
func (t *Tokenizer) doctypeNameState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(AfterDOCTYPENameState)
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	case isUpperAlpha(r):
		t.doctype.appendName(toLower(r))
	case r == 0:
		t.parseError(UnexpectedNullCharacter)
		t.doctype.appendName(replacementChar)
	default:
		t.doctype.appendName(r)
	}
}

// https://html.spec.whatwg.org/#after-doctype-name-state
func (t *Tokenizer) afterDOCTYPENameState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	if isWhitespace(r) {
		return
	}
	if r == '>' {
		t.switchTo(DataState)
		t.emitCurrentDoctype()
		return
	}
	pushedBack := false
	if r == 'p' || r == 'P' {
		if matched, _ := t.matchGoalAfterFirst(r, "ublic", true); matched {
			t.switchTo(AfterDOCTYPEPublicKeywordState)
			return
		}
		pushedBack = true
	} else if r == 's' || r == 'S' {
		if matched, _ := t.matchGoalAfterFirst(r, "ystem", true); matched {
			t.switchTo(AfterDOCTYPESystemKeywordState)
			return
		}
		pushedBack = true
	}
	t.parseError(InvalidCharacterSequenceAfterDoctypeName)
	t.doctype.ForceQuirks = true
	if pushedBack {
		// r and every rune after it are already back on the source.
		t.switchTo(BogusDOCTYPEState)
		return
	}
	t.reconsumeIn(BogusDOCTYPEState)
}

// https://html.spec.whatwg.org/#after-doctype-public-keyword-state
func (t *Tokenizer) afterDOCTYPEPublicKeywordState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(BeforeDOCTYPEPublicIdentifierState)
	case r == '"':
		t.parseError(MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.setPublicIDEmpty()
		t.switchTo(DOCTYPEPublicIdentifierDoubleQuotedState)
	case r == '\'':
		t.parseError(MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.setPublicIDEmpty()
		t.switchTo(DOCTYPEPublicIdentifierSingleQuotedState)
	case r == '>':
		t.parseError(MissingDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.parseError(MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// https://html.spec.whatwg.org/#before-doctype-public-identifier-state
func (t *Tokenizer) beforeDOCTYPEPublicIdentifierState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '"':
		t.doctype.setPublicIDEmpty()
		t.switchTo(DOCTYPEPublicIdentifierDoubleQuotedState)
	case r == '\'':
		t.doctype.setPublicIDEmpty()
		t.switchTo(DOCTYPEPublicIdentifierSingleQuotedState)
	case r == '>':
		t.parseError(MissingDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.parseError(MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// doctypePublicIdentifierQuotedState implements both the double- and
// single-quoted public-identifier states, which differ only in quote.
func (t *Tokenizer) doctypePublicIdentifierQuotedState(quote rune) {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch r {
	case quote:
		t.switchTo(AfterDOCTYPEPublicIdentifierState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.doctype.appendPublicID(replacementChar)
	case '>':
		t.parseError(AbruptDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.doctype.appendPublicID(r)
	}
}

// https://html.spec.whatwg.org/#after-doctype-public-identifier-state
func (t *Tokenizer) afterDOCTYPEPublicIdentifierState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(BetweenDOCTYPEPublicAndSystemIdentifiersState)
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	case r == '"':
		t.parseError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierDoubleQuotedState)
	case r == '\'':
		t.parseError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierSingleQuotedState)
	default:
		t.parseError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// https://html.spec.whatwg.org/#between-doctype-public-and-system-identifiers-state
func (t *Tokenizer) betweenDOCTYPEPublicAndSystemIdentifiersState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	case r == '"':
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierDoubleQuotedState)
	case r == '\'':
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierSingleQuotedState)
	default:
		t.parseError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// https://html.spec.whatwg.org/#after-doctype-system-keyword-state
func (t *Tokenizer) afterDOCTYPESystemKeywordState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		t.switchTo(BeforeDOCTYPESystemIdentifierState)
	case r == '"':
		t.parseError(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierDoubleQuotedState)
	case r == '\'':
		t.parseError(MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierSingleQuotedState)
	case r == '>':
		t.parseError(MissingDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.parseError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// https://html.spec.whatwg.org/#before-doctype-system-identifier-state
func (t *Tokenizer) beforeDOCTYPESystemIdentifierState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '"':
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierDoubleQuotedState)
	case r == '\'':
		t.doctype.setSystemIDEmpty()
		t.switchTo(DOCTYPESystemIdentifierSingleQuotedState)
	case r == '>':
		t.parseError(MissingDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.parseError(MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// doctypeSystemIdentifierQuotedState implements both the double- and
// single-quoted system-identifier states, which differ only in quote.
func (t *Tokenizer) doctypeSystemIdentifierQuotedState(quote rune) {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch r {
	case quote:
		t.switchTo(AfterDOCTYPESystemIdentifierState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.doctype.appendSystemID(replacementChar)
	case '>':
		t.parseError(AbruptDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.doctype.appendSystemID(r)
	}
}

// https://html.spec.whatwg.org/#after-doctype-system-identifier-state
func (t *Tokenizer) afterDOCTYPESystemIdentifierState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInDoctype)
		t.doctype.ForceQuirks = true
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(r):
		// ignore
	case r == '>':
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	default:
		t.parseError(MissingQuoteAfterDoctypeSystemIdentifier)
		t.reconsumeIn(BogusDOCTYPEState)
	}
}

// https://html.spec.whatwg.org/#bogus-doctype-state
func (t *Tokenizer) bogusDOCTYPEState() {
	r, ok := t.consume()
	if !ok {
		t.emitCurrentDoctype()
		t.emitEOF()
		return
	}
	switch r {
	case '>':
		t.switchTo(DataState)
		t.emitCurrentDoctype()
	case 0:
		t.parseError(UnexpectedNullCharacter)
	default:
		// ignore
	}
}
