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

// ParseErrorKind is the closed set of tokenizer parse-error identifiers
// defined by WHATWG HTML §13.2. Parse errors never interrupt tokenization;
// they are delivered out-of-band to an ErrorSink.
type ParseErrorKind int

const (
	UnexpectedNullCharacter ParseErrorKind = iota + 1
	UnexpectedQuestionMarkInsteadOfTagName
	InvalidFirstCharacterOfTagName
	MissingEndTagName
	EOFBeforeTagName
	EOFInTag
	EOFInComment
	EOFInDoctype
	EOFInCDATA
	EOFInScriptHTMLCommentLikeText
	IncorrectlyOpenedComment
	AbruptClosingOfEmptyComment
	NestedComment
	IncorrectlyClosedComment
	MissingWhitespaceBeforeDoctypeName
	MissingDoctypeName
	InvalidCharacterSequenceAfterDoctypeName
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	MissingQuoteAfterDoctypeSystemIdentifier
	CDATAInHTMLContent
	MissingSemicolonAfterCharacterReference
	UnknownNamedCharacterReference
	AbsenceOfDigitsInNumericCharacterReference
	NullCharacterReference
	CharacterReferenceOutsideUnicodeRange
	SurrogateCharacterReference
	NoncharacterCharacterReference
	ControlCharacterReference
	DuplicateAttribute
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	MissingAttributeValue
	MissingWhitespaceBetweenAttributes
	UnexpectedSolidusInTag
)

var parseErrorNames = map[ParseErrorKind]string{
	UnexpectedNullCharacter:                 "unexpected-null-character",
	UnexpectedQuestionMarkInsteadOfTagName:  "unexpected-question-mark-instead-of-tag-name",
	InvalidFirstCharacterOfTagName:          "invalid-first-character-of-tag-name",
	MissingEndTagName:                       "missing-end-tag-name",
	EOFBeforeTagName:                        "eof-before-tag-name",
	EOFInTag:                                "eof-in-tag",
	EOFInComment:                            "eof-in-comment",
	EOFInDoctype:                            "eof-in-doctype",
	EOFInCDATA:                              "eof-in-cdata",
	EOFInScriptHTMLCommentLikeText:          "eof-in-script-html-comment-like-text",
	IncorrectlyOpenedComment:                "incorrectly-opened-comment",
	AbruptClosingOfEmptyComment:             "abrupt-closing-of-empty-comment",
	NestedComment:                           "nested-comment",
	IncorrectlyClosedComment:                "incorrectly-closed-comment",
	MissingWhitespaceBeforeDoctypeName:      "missing-whitespace-before-doctype-name",
	MissingDoctypeName:                      "missing-doctype-name",
	InvalidCharacterSequenceAfterDoctypeName: "invalid-character-sequence-after-doctype-name",
	MissingWhitespaceAfterDoctypePublicKeyword: "missing-whitespace-after-doctype-public-keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword: "missing-whitespace-after-doctype-system-keyword",
	MissingQuoteBeforeDoctypePublicIdentifier:  "missing-quote-before-doctype-public-identifier",
	MissingQuoteBeforeDoctypeSystemIdentifier:  "missing-quote-before-doctype-system-identifier",
	MissingDoctypePublicIdentifier:             "missing-doctype-public-identifier",
	MissingDoctypeSystemIdentifier:             "missing-doctype-system-identifier",
	AbruptDoctypePublicIdentifier:              "abrupt-doctype-public-identifier",
	AbruptDoctypeSystemIdentifier:              "abrupt-doctype-system-identifier",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "missing-whitespace-between-doctype-public-and-system-identifiers",
	MissingQuoteAfterDoctypeSystemIdentifier:                  "missing-quote-after-doctype-system-identifier",
	CDATAInHTMLContent:                          "cdata-in-html-content",
	MissingSemicolonAfterCharacterReference:     "missing-semicolon-after-character-reference",
	UnknownNamedCharacterReference:              "unknown-named-character-reference",
	AbsenceOfDigitsInNumericCharacterReference:  "absence-of-digits-in-numeric-character-reference",
	NullCharacterReference:                      "null-character-reference",
	CharacterReferenceOutsideUnicodeRange:       "character-reference-outside-unicode-range",
	SurrogateCharacterReference:                 "surrogate-character-reference",
	NoncharacterCharacterReference:              "noncharacter-character-reference",
	ControlCharacterReference:                   "control-character-reference",
	DuplicateAttribute:                          "duplicate-attribute",
	UnexpectedEqualsSignBeforeAttributeName:     "unexpected-equals-sign-before-attribute-name",
	UnexpectedCharacterInAttributeName:          "unexpected-character-in-attribute-name",
	UnexpectedCharacterInUnquotedAttributeValue: "unexpected-character-in-unquoted-attribute-value",
	MissingAttributeValue:                       "missing-attribute-value",
	MissingWhitespaceBetweenAttributes:          "missing-whitespace-between-attributes",
	UnexpectedSolidusInTag:                      "unexpected-solidus-in-tag",
}

func (k ParseErrorKind) String() string {
	if s, ok := parseErrorNames[k]; ok {
		return s
	}
	return "unknown-parse-error"
}

// ErrorSink receives parse errors as they are detected, along with the
// input offset (scalar count consumed so far) at which they occurred.
// Tokenization never stops because of a parse error; the default sink is
// a no-op.
type ErrorSink func(kind ParseErrorKind, offset int)

func noopSink(ParseErrorKind, int) {}
