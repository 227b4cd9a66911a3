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

// https://html.spec.whatwg.org/#bogus-comment-state
func (t *Tokenizer) bogusCommentState() {
	r, ok := t.consume()
	if !ok {
		t.emitCurrentComment()
		t.emitEOF()
		return
	}
	switch r {
	case '>':
		t.switchTo(DataState)
		t.emitCurrentComment()
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.comment.appendData(replacementChar)
	default:
		t.comment.appendData(r)
	}
}

func (t *Tokenizer) isAdjustedCurrentNodeHTML() bool {
	if t.IsAdjustedCurrentNodeInHTMLNamespace == nil {
		return true
	}
	return t.IsAdjustedCurrentNodeInHTMLNamespace()
}

// matchGoalAfterFirst tries to match `first` plus the literal string rest
// against the input, consuming one rune at a time. On a full match it
// returns (true, the matched runes including first). On mismatch or EOF it
// pushes every rune it consumed (including first and, on a mismatch, the
// offending rune) back onto the source, so the caller's fallback state sees
// them again from the very start. This is what lets a failed keyword match
// (MarkupDeclarationOpen's "--"/"DOCTYPE"/"[CDATA[" lookahead) recover into
// a bogus comment without losing characters that a single-slot reconsume
// could not hold all at once.
func (t *Tokenizer) matchGoalAfterFirst(first rune, rest string, caseInsensitive bool) (bool, []rune) {
	consumed := []rune{first}
	for i := 0; i < len(rest); i++ {
		r, ok := t.consume()
		if !ok {
			t.src.pushBack(consumed)
			return false, nil
		}
		consumed = append(consumed, r)
		got := r
		if caseInsensitive {
			got = toLower(r)
		}
		if got != rune(rest[i]) {
			t.src.pushBack(consumed)
			return false, nil
		}
	}
	return true, consumed
}

// https://html.spec.whatwg.org/#markup-declaration-open-state
func (t *Tokenizer) markupDeclarationOpenState() {
	c, ok := t.consume()
	if !ok {
		t.parseError(IncorrectlyOpenedComment)
		t.newCommentBuf()
		t.switchTo(BogusCommentState)
		return
	}
	switch {
	case c == '-':
		if matched, _ := t.matchGoalAfterFirst(c, "-", false); matched {
			t.newCommentBuf()
			t.switchTo(CommentStartState)
			return
		} else {
			t.parseError(IncorrectlyOpenedComment)
			t.newCommentBuf()
			t.switchTo(BogusCommentState)
		}
	case c == 'D' || c == 'd':
		if matched, _ := t.matchGoalAfterFirst(c, "octype", true); matched {
			t.switchTo(DOCTYPEState)
			return
		}
		t.parseError(IncorrectlyOpenedComment)
		t.newCommentBuf()
		t.switchTo(BogusCommentState)
	case c == '[':
		if matched, _ := t.matchGoalAfterFirst(c, "CDATA[", false); matched {
			if t.isAdjustedCurrentNodeHTML() {
				t.parseError(CDATAInHTMLContent)
				t.newCommentBuf()
				t.comment.Data = "[CDATA["
				t.switchTo(BogusCommentState)
			} else {
				t.switchTo(CDATASectionState)
			}
			return
		}
		t.parseError(IncorrectlyOpenedComment)
		t.newCommentBuf()
		t.switchTo(BogusCommentState)
	default:
		t.parseError(IncorrectlyOpenedComment)
		t.newCommentBuf()
		t.reconsumeIn(BogusCommentState)
	}
}

// https://html.spec.whatwg.org/#comment-start-state
func (t *Tokenizer) commentStartState() {
	r, ok := t.consume()
	if ok {
		switch r {
		case '-':
			t.switchTo(CommentStartDashState)
			return
		case '>':
			t.parseError(AbruptClosingOfEmptyComment)
			t.switchTo(DataState)
			t.emitCurrentComment()
			return
		}
	}
	t.reconsumeIn(CommentState)
}

// https://html.spec.whatwg.org/#comment-start-dash-state
func (t *Tokenizer) commentStartDashState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInComment)
		t.emitCurrentComment()
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.switchTo(CommentEndState)
	case '>':
		t.parseError(AbruptClosingOfEmptyComment)
		t.switchTo(DataState)
		t.emitCurrentComment()
	default:
		t.comment.appendData('-')
		t.reconsumeIn(CommentState)
	}
}

// https://html.spec.whatwg.org/#comment-state
func (t *Tokenizer) commentState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInComment)
		t.emitCurrentComment()
		t.emitEOF()
		return
	}
	switch r {
	case '<':
		t.comment.appendData('<')
		t.switchTo(CommentLessThanSignState)
	case '-':
		t.switchTo(CommentEndDashState)
	case 0:
		t.parseError(UnexpectedNullCharacter)
		t.comment.appendData(replacementChar)
	default:
		t.comment.appendData(r)
	}
}

// https://html.spec.whatwg.org/#comment-less-than-sign-state
func (t *Tokenizer) commentLessThanSignState() {
	r, ok := t.consume()
	if ok {
		switch r {
		case '!':
			t.comment.appendData('!')
			t.switchTo(CommentLessThanSignBangState)
			return
		case '<':
			t.comment.appendData('<')
			return
		}
	}
	t.reconsumeIn(CommentState)
}

// https://html.spec.whatwg.org/#comment-less-than-sign-bang-state
func (t *Tokenizer) commentLessThanSignBangState() {
	r, ok := t.consume()
	if ok && r == '-' {
		t.switchTo(CommentLessThanSignBangDashState)
		return
	}
	t.reconsumeIn(CommentState)
}

// https://html.spec.whatwg.org/#comment-less-than-sign-bang-dash-state
func (t *Tokenizer) commentLessThanSignBangDashState() {
	r, ok := t.consume()
	if ok && r == '-' {
		t.switchTo(CommentLessThanSignBangDashDashState)
		return
	}
	t.reconsumeIn(CommentEndDashState)
}

// https://html.spec.whatwg.org/#comment-less-than-sign-bang-dash-dash-state
func (t *Tokenizer) commentLessThanSignBangDashDashState() {
	r, ok := t.consume()
	if !ok || r == '>' {
		t.reconsumeIn(CommentEndState)
		return
	}
	t.parseError(NestedComment)
	t.reconsumeIn(CommentEndState)
}

// https://html.spec.whatwg.org/#comment-end-dash-state
func (t *Tokenizer) commentEndDashState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInComment)
		t.emitCurrentComment()
		t.emitEOF()
		return
	}
	if r == '-' {
		t.switchTo(CommentEndState)
		return
	}
	t.comment.appendData('-')
	t.reconsumeIn(CommentState)
}

// https://html.spec.whatwg.org/#comment-end-state
func (t *Tokenizer) commentEndState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInComment)
		t.emitCurrentComment()
		t.emitEOF()
		return
	}
	switch r {
	case '>':
		t.switchTo(DataState)
		t.emitCurrentComment()
	case '!':
		t.switchTo(CommentEndBangState)
	case '-':
		t.comment.appendData('-')
	default:
		t.comment.appendData('-')
		t.comment.appendData('-')
		t.reconsumeIn(CommentState)
	}
}

// https://html.spec.whatwg.org/#comment-end-bang-state
func (t *Tokenizer) commentEndBangState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInComment)
		t.emitCurrentComment()
		t.emitEOF()
		return
	}
	switch r {
	case '-':
		t.comment.Data += "--!"
		t.switchTo(CommentEndDashState)
	case '>':
		t.parseError(IncorrectlyClosedComment)
		t.switchTo(DataState)
		t.emitCurrentComment()
	default:
		t.comment.Data += "--!"
		t.reconsumeIn(CommentState)
	}
}

// https://html.spec.whatwg.org/#cdata-section-state
func (t *Tokenizer) cdataSectionState() {
	r, ok := t.consume()
	if !ok {
		t.parseError(EOFInCDATA)
		t.emitEOF()
		return
	}
	if r == ']' {
		t.switchTo(CDATASectionBracketState)
		return
	}
	t.emitChar(r)
}

// https://html.spec.whatwg.org/#cdata-section-bracket-state
func (t *Tokenizer) cdataSectionBracketState() {
	r, ok := t.consume()
	if ok && r == ']' {
		t.switchTo(CDATASectionEndState)
		return
	}
	t.emitChar(']')
	t.reconsumeIn(CDATASectionState)
}

// https://html.spec.whatwg.org/#cdata-section-end-state
func (t *Tokenizer) cdataSectionEndState() {
	r, ok := t.consume()
	if ok {
		switch r {
		case ']':
			t.emitChar(']')
			return
		case '>':
			t.switchTo(DataState)
			return
		}
	}
	t.emitChar(']')
	t.emitChar(']')
	t.reconsumeIn(CDATASectionState)
}
