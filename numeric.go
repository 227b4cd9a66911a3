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

// replacementChar is U+FFFD REPLACEMENT CHARACTER.
const replacementChar rune = '�'

// legacyC1Table is the WHATWG numeric-character-reference-end-state table
// mapping the Windows-1252 C1-area code points (0x80-0x9F) to the Unicode
// scalar value they're mistakenly used for in legacy markup.
var legacyC1Table = map[uint32]rune{
	0x80: 0x20AC, // EURO SIGN
	0x82: 0x201A, // SINGLE LOW-9 QUOTATION MARK
	0x83: 0x0192, // LATIN SMALL LETTER F WITH HOOK
	0x84: 0x201E, // DOUBLE LOW-9 QUOTATION MARK
	0x85: 0x2026, // HORIZONTAL ELLIPSIS
	0x86: 0x2020, // DAGGER
	0x87: 0x2021, // DOUBLE DAGGER
	0x88: 0x02C6, // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: 0x2030, // PER MILLE SIGN
	0x8A: 0x0160, // LATIN CAPITAL LETTER S WITH CARON
	0x8B: 0x2039, // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: 0x0152, // LATIN CAPITAL LIGATURE OE
	0x8E: 0x017D, // LATIN CAPITAL LETTER Z WITH CARON
	0x91: 0x2018, // LEFT SINGLE QUOTATION MARK
	0x92: 0x2019, // RIGHT SINGLE QUOTATION MARK
	0x93: 0x201C, // LEFT DOUBLE QUOTATION MARK
	0x94: 0x201D, // RIGHT DOUBLE QUOTATION MARK
	0x95: 0x2022, // BULLET
	0x96: 0x2013, // EN DASH
	0x97: 0x2014, // EM DASH
	0x98: 0x02DC, // SMALL TILDE
	0x99: 0x2122, // TRADE MARK SIGN
	0x9A: 0x0161, // LATIN SMALL LETTER S WITH CARON
	0x9B: 0x203A, // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: 0x0153, // LATIN SMALL LIGATURE OE
	0x9E: 0x017E, // LATIN SMALL LETTER Z WITH CARON
	0x9F: 0x0178, // LATIN CAPITAL LETTER Y WITH DIAERESIS
}

func isNumericSurrogate(n uint32) bool { return n >= 0xD800 && n <= 0xDFFF }

func isNumericNoncharacter(n uint32) bool {
	if n >= 0xFDD0 && n <= 0xFDEF {
		return true
	}
	switch n & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

func isNumericControl(n uint32) bool {
	return (n <= 0x1F) || (n >= 0x7F && n <= 0x9F)
}

func isNumericWhitespace(n uint32) bool {
	switch n {
	case 0x09, 0x0A, 0x0C, 0x20:
		return true
	}
	return false
}

// normalizeNumericReference applies the WHATWG numeric-character-reference-
// end-state rules to a raw accumulated reference code, returning the scalar
// value to emit and whether this invocation represents a parse error worth
// reporting via the kind returned.
func normalizeNumericReference(code uint32) (r rune, kind ParseErrorKind, isError bool) {
	if code == 0x00 {
		return replacementChar, NullCharacterReference, true
	}
	if code > 0x10FFFF {
		return replacementChar, CharacterReferenceOutsideUnicodeRange, true
	}
	if isNumericSurrogate(code) {
		return replacementChar, SurrogateCharacterReference, true
	}
	if isNumericNoncharacter(code) {
		return rune(code), NoncharacterCharacterReference, true
	}
	if repl, ok := legacyC1Table[code]; ok {
		return repl, ControlCharacterReference, true
	}
	if code == 0x0D || (isNumericControl(code) && !isNumericWhitespace(code)) {
		return rune(code), ControlCharacterReference, true
	}
	return rune(code), 0, false
}
