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

import (
	"strings"
	"testing"
)

func TestNormalizeNumericReference(t *testing.T) {
	testCases := []struct {
		desc     string
		code     uint32
		wantRune rune
		wantKind ParseErrorKind
		wantErr  bool
	}{
		{"null", 0x00, replacementChar, NullCharacterReference, true},
		{"past unicode range", 0x110000, replacementChar, CharacterReferenceOutsideUnicodeRange, true},
		{"surrogate", 0xD800, replacementChar, SurrogateCharacterReference, true},
		{"noncharacter FFFE", 0xFFFE, 0xFFFE, NoncharacterCharacterReference, true},
		{"noncharacter FDD0 block", 0xFDD5, 0xFDD5, NoncharacterCharacterReference, true},
		{"legacy C1 euro", 0x80, '€', ControlCharacterReference, true},
		{"carriage return", 0x0D, 0x0D, ControlCharacterReference, true},
		{"control C0", 0x01, 0x01, ControlCharacterReference, true},
		{"control whitespace tab passes", 0x09, 0x09, 0, false},
		{"ordinary ASCII", 'A', 'A', 0, false},
		{"ordinary outside BMP", 0x1F600, 0x1F600, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r, kind, isErr := normalizeNumericReference(tc.code)
			if r != tc.wantRune || isErr != tc.wantErr || (isErr && kind != tc.wantKind) {
				t.Errorf("normalizeNumericReference(%#x) = (%q, %v, %v), want (%q, %v, %v)",
					tc.code, r, kind, isErr, tc.wantRune, tc.wantKind, tc.wantErr)
			}
		})
	}
}

func TestTokenNumericCharacterReferences(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  string
	}{
		{"decimal", "&#65;", "A"},
		{"hex lower", "&#x41;", "A"},
		{"hex upper", "&#X41;", "A"},
		{"missing semicolon", "&#65", "A"},
		{"null becomes replacement", "&#0;", string(replacementChar)},
		{"legacy C1 remap", "&#128;", "€"},
		{"surrogate becomes replacement", "&#xD800;", string(replacementChar)},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := tokenizeAll(tc.input)
			if len(got) < 2 {
				t.Fatalf("got %d tokens, want at least 2", len(got))
			}
			var buf []rune
			for _, tk := range got {
				if c, ok := tk.(Character); ok {
					buf = append(buf, rune(c))
				}
			}
			if string(buf) != tc.want {
				t.Errorf("chars = %q, want %q", string(buf), tc.want)
			}
		})
	}
}

func TestTokenAbsenceOfDigitsInNumericCharacterReference(t *testing.T) {
	var errs []ParseErrorKind
	tokr := NewTokenizer(strings.NewReader("&#;"))
	tokr.ErrorSink = func(kind ParseErrorKind, offset int) { errs = append(errs, kind) }
	for {
		tk := tokr.Next()
		if tk.Kind() == EOFToken {
			break
		}
	}
	found := false
	for _, e := range errs {
		if e == AbsenceOfDigitsInNumericCharacterReference {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want AbsenceOfDigitsInNumericCharacterReference", errs)
	}
}
