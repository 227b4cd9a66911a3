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

// Package html implements the tokenization stage (WHATWG HTML Living
// Standard §13.2.5) of an HTML parser: a state machine that turns a stream
// of Unicode scalar values into DOCTYPE, tag, comment, character, and EOF
// tokens. Tree construction, byte decoding, and the named-character-
// reference table's own construction are external collaborators.
package html

import "io"

// building identifies which structural token (if any) is under
// construction in the Tokenizer's reused builder fields.
type building uint8

const (
	buildingNone building = iota
	buildingTag
	buildingComment
	buildingDoctype
)

// Tokenizer drives the WHATWG tokenization state machine over a rune
// stream. A Tokenizer is single-threaded and not safe for concurrent use;
// it is owned exclusively from construction through the terminal EOF token.
type Tokenizer struct {
	// ErrorSink receives parse errors as tokenization proceeds. Defaults to
	// a no-op; tokenization itself never fails.
	ErrorSink ErrorSink

	// IsAdjustedCurrentNodeInHTMLNamespace is consulted only by the
	// MarkupDeclarationOpen state's CDATA branch. A nil value behaves as
	// "always true" (HTML namespace), matching stand-alone use without a
	// tree constructor.
	IsAdjustedCurrentNodeInHTMLNamespace func() bool

	src *source

	state       State
	returnState State

	building building
	tag       Tag
	comment   Comment
	doctype   Doctype

	tempBuffer  []rune
	charRefCode uint32

	lastStartTag string
	openTags     []string

	queue  []Token
	halted bool
}

// NewTokenizer creates a Tokenizer that reads scalars from r, starting in
// the Data state.
func NewTokenizer(r io.RuneReader) *Tokenizer {
	return &Tokenizer{
		src:       newSource(r),
		state:     DataState,
		ErrorSink: noopSink,
	}
}

// SetState switches the tokenizer's starting state before the first call to
// Next. A tree constructor that already knows it is about to tokenize the
// contents of a raw-text element (e.g. re-entrant fragment parsing of a
// <title> or <textarea> subtree) uses this to enter RCDATAState/
// RAWTEXTState/ScriptDataState/PLAINTEXTState directly instead of routing
// through a synthetic start tag. lastStartTag seeds the "appropriate end
// tag" predicate (§4.5) so the corresponding end tag is recognized even
// though no matching start tag was ever tokenized in this stream.
func (t *Tokenizer) SetState(s State, lastStartTag string) {
	t.state = s
	t.lastStartTag = lastStartTag
	if lastStartTag != "" {
		t.openTags = append(t.openTags, lastStartTag)
	}
}

// Next advances the state machine until at least one token is available and
// returns it. After an EOF token has been returned, every subsequent call
// returns EOF again without touching the underlying reader: once an EOF
// token is in the output queue, the driver halts for good.
func (t *Tokenizer) Next() Token {
	if t.ErrorSink == nil {
		t.ErrorSink = noopSink
	}
	if t.halted {
		return EOF{}
	}
	for len(t.queue) == 0 {
		t.step()
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	if tok.Kind() == EOFToken {
		t.halted = true
	}
	return tok
}

// step runs exactly one state handler, which may consume zero or more
// scalars, mutate the current token, switch state, and/or emit tokens.
func (t *Tokenizer) step() {
	switch t.state {
	case DataState:
		t.dataState()
	case RCDATAState:
		t.rcdataState()
	case RAWTEXTState:
		t.rawtextState()
	case ScriptDataState:
		t.scriptDataState()
	case PLAINTEXTState:
		t.plaintextState()

	case TagOpenState:
		t.tagOpenState()
	case EndTagOpenState:
		t.endTagOpenState()
	case TagNameState:
		t.tagNameState()

	case RCDATALessThanSignState:
		t.rcdataLessThanSignState()
	case RCDATAEndTagOpenState:
		t.rcdataEndTagOpenState()
	case RCDATAEndTagNameState:
		t.rcdataEndTagNameState()

	case RAWTEXTLessThanSignState:
		t.rawtextLessThanSignState()
	case RAWTEXTEndTagOpenState:
		t.rawtextEndTagOpenState()
	case RAWTEXTEndTagNameState:
		t.rawtextEndTagNameState()

	case ScriptDataLessThanSignState:
		t.scriptDataLessThanSignState()
	case ScriptDataEndTagOpenState:
		t.scriptDataEndTagOpenState()
	case ScriptDataEndTagNameState:
		t.scriptDataEndTagNameState()
	case ScriptDataEscapeStartState:
		t.scriptDataEscapeStartState()
	case ScriptDataEscapeStartDashState:
		t.scriptDataEscapeStartDashState()
	case ScriptDataEscapedState:
		t.scriptDataEscapedState()
	case ScriptDataEscapedDashState:
		t.scriptDataEscapedDashState()
	case ScriptDataEscapedDashDashState:
		t.scriptDataEscapedDashDashState()
	case ScriptDataEscapedLessThanSignState:
		t.scriptDataEscapedLessThanSignState()
	case ScriptDataEscapedEndTagOpenState:
		t.scriptDataEscapedEndTagOpenState()
	case ScriptDataEscapedEndTagNameState:
		t.scriptDataEscapedEndTagNameState()
	case ScriptDataDoubleEscapeStartState:
		t.scriptDataDoubleEscapeStartState()
	case ScriptDataDoubleEscapedState:
		t.scriptDataDoubleEscapedState()
	case ScriptDataDoubleEscapedDashState:
		t.scriptDataDoubleEscapedDashState()
	case ScriptDataDoubleEscapedDashDashState:
		t.scriptDataDoubleEscapedDashDashState()
	case ScriptDataDoubleEscapedLessThanSignState:
		t.scriptDataDoubleEscapedLessThanSignState()
	case ScriptDataDoubleEscapeEndState:
		t.scriptDataDoubleEscapeEndState()

	case BeforeAttributeNameState:
		t.beforeAttributeNameState()
	case AttributeNameState:
		t.attributeNameState()
	case AfterAttributeNameState:
		t.afterAttributeNameState()
	case BeforeAttributeValueState:
		t.beforeAttributeValueState()
	case AttributeValueDoubleQuotedState:
		t.attributeValueQuotedState('"')
	case AttributeValueSingleQuotedState:
		t.attributeValueQuotedState('\'')
	case AttributeValueUnquotedState:
		t.attributeValueUnquotedState()
	case AfterAttributeValueQuotedState:
		t.afterAttributeValueQuotedState()
	case SelfClosingStartTagState:
		t.selfClosingStartTagState()

	case BogusCommentState:
		t.bogusCommentState()
	case MarkupDeclarationOpenState:
		t.markupDeclarationOpenState()
	case CommentStartState:
		t.commentStartState()
	case CommentStartDashState:
		t.commentStartDashState()
	case CommentState:
		t.commentState()
	case CommentLessThanSignState:
		t.commentLessThanSignState()
	case CommentLessThanSignBangState:
		t.commentLessThanSignBangState()
	case CommentLessThanSignBangDashState:
		t.commentLessThanSignBangDashState()
	case CommentLessThanSignBangDashDashState:
		t.commentLessThanSignBangDashDashState()
	case CommentEndDashState:
		t.commentEndDashState()
	case CommentEndState:
		t.commentEndState()
	case CommentEndBangState:
		t.commentEndBangState()

	case DOCTYPEState:
		t.doctypeState()
	case BeforeDOCTYPENameState:
		t.beforeDOCTYPENameState()
	case DOCTYPENameState:
		t.doctypeNameState()
	case AfterDOCTYPENameState:
		t.afterDOCTYPENameState()
	case AfterDOCTYPEPublicKeywordState:
		t.afterDOCTYPEPublicKeywordState()
	case BeforeDOCTYPEPublicIdentifierState:
		t.beforeDOCTYPEPublicIdentifierState()
	case DOCTYPEPublicIdentifierDoubleQuotedState:
		t.doctypePublicIdentifierQuotedState('"')
	case DOCTYPEPublicIdentifierSingleQuotedState:
		t.doctypePublicIdentifierQuotedState('\'')
	case AfterDOCTYPEPublicIdentifierState:
		t.afterDOCTYPEPublicIdentifierState()
	case BetweenDOCTYPEPublicAndSystemIdentifiersState:
		t.betweenDOCTYPEPublicAndSystemIdentifiersState()
	case AfterDOCTYPESystemKeywordState:
		t.afterDOCTYPESystemKeywordState()
	case BeforeDOCTYPESystemIdentifierState:
		t.beforeDOCTYPESystemIdentifierState()
	case DOCTYPESystemIdentifierDoubleQuotedState:
		t.doctypeSystemIdentifierQuotedState('"')
	case DOCTYPESystemIdentifierSingleQuotedState:
		t.doctypeSystemIdentifierQuotedState('\'')
	case AfterDOCTYPESystemIdentifierState:
		t.afterDOCTYPESystemIdentifierState()
	case BogusDOCTYPEState:
		t.bogusDOCTYPEState()

	case CDATASectionState:
		t.cdataSectionState()
	case CDATASectionBracketState:
		t.cdataSectionBracketState()
	case CDATASectionEndState:
		t.cdataSectionEndState()

	case CharacterReferenceState:
		t.characterReferenceState()
	case NamedCharacterReferenceState:
		t.namedCharacterReferenceState()
	case AmbiguousAmpersandState:
		t.ambiguousAmpersandState()
	case NumericCharacterReferenceState:
		t.numericCharacterReferenceState()
	case HexadecimalCharacterReferenceStartState:
		t.hexadecimalCharacterReferenceStartState()
	case DecimalCharacterReferenceStartState:
		t.decimalCharacterReferenceStartState()
	case HexadecimalCharacterReferenceState:
		t.hexadecimalCharacterReferenceState()
	case DecimalCharacterReferenceState:
		t.decimalCharacterReferenceState()
	case NumericCharacterReferenceEndState:
		t.numericCharacterReferenceEndState()

	default:
		panic("html: unhandled state " + t.state.String())
	}
}

// --- consume/reconsume helpers ---

func (t *Tokenizer) consume() (rune, bool) { return t.src.consume() }

func (t *Tokenizer) reconsumeIn(s State) {
	t.src.reconsumeLast()
	t.state = s
}

func (t *Tokenizer) switchTo(s State)       { t.state = s }
func (t *Tokenizer) switchToReturnState()   { t.state = t.returnState }
func (t *Tokenizer) setReturnState(s State) { t.returnState = s }

func (t *Tokenizer) parseError(kind ParseErrorKind) {
	t.ErrorSink(kind, t.src.offset())
}

// --- emission ---

func (t *Tokenizer) emit(tok Token) { t.queue = append(t.queue, tok) }

func (t *Tokenizer) emitChar(r rune) { t.emit(Character(r)) }

func (t *Tokenizer) emitString(s string) {
	for _, r := range s {
		t.emitChar(r)
	}
}

func (t *Tokenizer) emitEOF() { t.emit(EOF{}) }

// rawTextSwitch lists the tag names that, per this tokenizer's convenience
// extension (see DESIGN.md), switch the text-content state immediately
// after their non-self-closing start tag is emitted. A standards tree
// constructor would instead drive these transitions explicitly; a
// stand-alone tokenizer has no tree constructor, so it applies the common
// HTML5 table itself.
var rawTextSwitch = map[string]State{
	"title":    RCDATAState,
	"textarea": RCDATAState,
	"style":    RAWTEXTState,
	"xmp":      RAWTEXTState,
	"iframe":   RAWTEXTState,
	"noembed":  RAWTEXTState,
	"noframes": RAWTEXTState,
	"script":   ScriptDataState,
	"plaintext": PLAINTEXTState,
}

// newTagBuf resets the reusable Tag builder to a fresh start or end tag.
func (t *Tokenizer) newTagBuf(isEnd bool) {
	if isEnd {
		t.tag = newEndTag()
	} else {
		t.tag = newStartTag()
	}
	t.building = buildingTag
}

func (t *Tokenizer) newCommentBuf() {
	t.comment = newComment()
	t.building = buildingComment
}

func (t *Tokenizer) newDoctypeBuf() {
	t.doctype = newDoctype()
	t.building = buildingDoctype
}

// emitCurrentTag finishes the tag under construction: it interns the tag and
// attribute names, enqueues a token, maintains the open-tags stack, and
// applies the raw-text convenience switch. It does not check for duplicate
// attributes itself; that check runs as each attribute name ends
// (finishAttributeName).
func (t *Tokenizer) emitCurrentTag() {
	tok := t.tag
	tok.Name = internName(tok.Name)
	for i := range tok.Attributes {
		tok.Attributes[i].Name = internName(tok.Attributes[i].Name)
	}
	t.emit(&tok)
	if !tok.IsEnd {
		if !tok.SelfClosing {
			t.openTags = append(t.openTags, tok.Name)
			if next, ok := rawTextSwitch[tok.Name]; ok {
				t.switchTo(next)
			}
		}
		t.lastStartTag = tok.Name
	} else {
		if n := len(t.openTags); n > 0 && t.openTags[n-1] == tok.Name {
			t.openTags = t.openTags[:n-1]
		}
	}
	t.building = buildingNone
}

func (t *Tokenizer) emitCurrentComment() {
	tok := t.comment
	t.emit(&tok)
	t.building = buildingNone
}

func (t *Tokenizer) emitCurrentDoctype() {
	tok := t.doctype
	t.emit(&tok)
	t.building = buildingNone
}

// appropriateEndTag reports whether the tag currently under construction
// (an end tag whose name is being accumulated) matches the top of the
// open-tags stack, i.e. is the "appropriate end tag token" for the
// RCDATA/RAWTEXT/ScriptData end-tag-open paths.
func (t *Tokenizer) appropriateEndTag() bool {
	if len(t.openTags) == 0 {
		return false
	}
	return t.openTags[len(t.openTags)-1] == t.tag.Name
}

// --- temporary buffer ---

func (t *Tokenizer) resetTempBuffer()         { t.tempBuffer = t.tempBuffer[:0] }
func (t *Tokenizer) appendTempBuffer(r rune)  { t.tempBuffer = append(t.tempBuffer, r) }
func (t *Tokenizer) tempBufferString() string { return string(t.tempBuffer) }

// flushTempBufferAsCharRef emits the temporary buffer's contents either as
// attribute-value characters (when the reference was consumed inside an
// attribute value) or as individual character tokens.
func (t *Tokenizer) flushTempBufferAsCharRef() {
	if t.consumedAsPartOfAttribute() {
		for _, r := range t.tempBuffer {
			t.tag.appendAttrValue(r)
		}
		return
	}
	for _, r := range t.tempBuffer {
		t.emitChar(r)
	}
}

// consumedAsPartOfAttribute reports whether the character-reference
// sub-machine was entered from an attribute-value state.
func (t *Tokenizer) consumedAsPartOfAttribute() bool {
	switch t.returnState {
	case AttributeValueDoubleQuotedState, AttributeValueSingleQuotedState, AttributeValueUnquotedState:
		return true
	}
	return false
}

// --- character classification ---

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func isUpperAlpha(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLowerAlpha(r rune) bool { return r >= 'a' && r <= 'z' }
func isAlpha(r rune) bool      { return isUpperAlpha(r) || isLowerAlpha(r) }
func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isAlphanumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func toLower(r rune) rune {
	if isUpperAlpha(r) {
		return r + 0x20
	}
	return r
}
func toUpper(r rune) rune {
	if isLowerAlpha(r) {
		return r - 0x20
	}
	return r
}

func hexVal(r rune) uint32 {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0')
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10
	}
	return 0
}
