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

import "testing"

func TestLookupLongestNamedReference(t *testing.T) {
	testCases := []struct {
		desc         string
		buf          string
		wantConsumed int
		wantExpand   string
		wantOK       bool
	}{
		{"exact semicolon form", "notin;rest", 6, "∉", true},
		{"legacy no-semicolon form", "amp=rest", 3, "&", true},
		{"longest prefix preferred over shorter", "amp;rest", 4, "&", true},
		{"no match at all", "zzzzzzzz", 0, "", false},
		{"too short to ever match", "a", 0, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			consumed, expansion, ok := lookupLongestNamedReference([]rune(tc.buf))
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if consumed != tc.wantConsumed || expansion != tc.wantExpand {
				t.Errorf("got (%d, %q), want (%d, %q)", consumed, expansion, tc.wantConsumed, tc.wantExpand)
			}
		})
	}
}
