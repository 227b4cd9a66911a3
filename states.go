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

// State identifies one of the tokenizer's named states. The driver
// dispatches on State rather than using a function-pointer table so that
// reconsume/return-state bookkeeping stays a plain field assignment.
type State int

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState

	TagOpenState
	EndTagOpenState
	TagNameState

	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState

	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState

	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState

	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState

	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState

	DOCTYPEState
	BeforeDOCTYPENameState
	DOCTYPENameState
	AfterDOCTYPENameState
	AfterDOCTYPEPublicKeywordState
	BeforeDOCTYPEPublicIdentifierState
	DOCTYPEPublicIdentifierDoubleQuotedState
	DOCTYPEPublicIdentifierSingleQuotedState
	AfterDOCTYPEPublicIdentifierState
	BetweenDOCTYPEPublicAndSystemIdentifiersState
	AfterDOCTYPESystemKeywordState
	BeforeDOCTYPESystemIdentifierState
	DOCTYPESystemIdentifierDoubleQuotedState
	DOCTYPESystemIdentifierSingleQuotedState
	AfterDOCTYPESystemIdentifierState
	BogusDOCTYPEState

	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState

	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

var stateNames = [...]string{
	"Data", "RCDATA", "RAWTEXT", "ScriptData", "PLAINTEXT",
	"TagOpen", "EndTagOpen", "TagName",
	"RCDATALessThanSign", "RCDATAEndTagOpen", "RCDATAEndTagName",
	"RAWTEXTLessThanSign", "RAWTEXTEndTagOpen", "RAWTEXTEndTagName",
	"ScriptDataLessThanSign", "ScriptDataEndTagOpen", "ScriptDataEndTagName",
	"ScriptDataEscapeStart", "ScriptDataEscapeStartDash",
	"ScriptDataEscaped", "ScriptDataEscapedDash", "ScriptDataEscapedDashDash",
	"ScriptDataEscapedLessThanSign", "ScriptDataEscapedEndTagOpen", "ScriptDataEscapedEndTagName",
	"ScriptDataDoubleEscapeStart",
	"ScriptDataDoubleEscaped", "ScriptDataDoubleEscapedDash", "ScriptDataDoubleEscapedDashDash",
	"ScriptDataDoubleEscapedLessThanSign", "ScriptDataDoubleEscapeEnd",
	"BeforeAttributeName", "AttributeName", "AfterAttributeName",
	"BeforeAttributeValue", "AttributeValueDoubleQuoted", "AttributeValueSingleQuoted",
	"AttributeValueUnquoted", "AfterAttributeValueQuoted", "SelfClosingStartTag",
	"BogusComment", "MarkupDeclarationOpen", "CommentStart", "CommentStartDash",
	"Comment", "CommentLessThanSign", "CommentLessThanSignBang",
	"CommentLessThanSignBangDash", "CommentLessThanSignBangDashDash",
	"CommentEndDash", "CommentEnd", "CommentEndBang",
	"DOCTYPE", "BeforeDOCTYPEName", "DOCTYPEName", "AfterDOCTYPEName",
	"AfterDOCTYPEPublicKeyword", "BeforeDOCTYPEPublicIdentifier",
	"DOCTYPEPublicIdentifierDoubleQuoted", "DOCTYPEPublicIdentifierSingleQuoted",
	"AfterDOCTYPEPublicIdentifier", "BetweenDOCTYPEPublicAndSystemIdentifiers",
	"AfterDOCTYPESystemKeyword", "BeforeDOCTYPESystemIdentifier",
	"DOCTYPESystemIdentifierDoubleQuoted", "DOCTYPESystemIdentifierSingleQuoted",
	"AfterDOCTYPESystemIdentifier", "BogusDOCTYPE",
	"CDATASection", "CDATASectionBracket", "CDATASectionEnd",
	"CharacterReference", "NamedCharacterReference", "AmbiguousAmpersand",
	"NumericCharacterReference", "HexadecimalCharacterReferenceStart",
	"DecimalCharacterReferenceStart", "HexadecimalCharacterReference",
	"DecimalCharacterReference", "NumericCharacterReferenceEnd",
}

func (s State) String() string {
	if int(s) >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
