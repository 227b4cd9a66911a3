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
	"sync"

	"github.com/google/triemap"
)

// maxNamedReferenceLength bounds the greedy alphanumeric scan in the
// NamedCharacterReference state; the longest entry in the WHATWG table,
// "CounterClockwiseContourIntegral;" (32 runes including the ';'), fits
// exactly.
const maxNamedReferenceLength = 32

// minNamedReferenceLength is the shortest legal identifier, e.g. "gt".
const minNamedReferenceLength = 2

var (
	namedReferencesOnce sync.Once
	namedReferences     triemap.RuneSliceMap
)

// buildNamedReferences populates the trie from namedReferenceTable (see
// entities_data.go). It runs once, lazily, the first time a lookup happens,
// so importing the package without ever hitting a character reference costs
// nothing.
func buildNamedReferences() {
	for name, expansion := range namedReferenceTable {
		namedReferences.Put([]rune(name), expansion)
	}
}

// lookupLongestNamedReference finds the longest prefix of buf that matches a
// registered named character reference, trying the full buffer first and
// shrinking one rune at a time. It returns the number of runes consumed out
// of buf and the expansion, or ok=false if no prefix of buf (down to
// minNamedReferenceLength runes) matches anything.
//
// This mirrors the longest-prefix-match rule the WHATWG named-reference
// table requires, implemented as repeated exact lookups against shrinking
// prefixes rather than a native prefix walk, since the trie's lookup
// contract is exact-key Get/Put.
func lookupLongestNamedReference(buf []rune) (consumed int, expansion string, ok bool) {
	namedReferencesOnce.Do(buildNamedReferences)

	for n := len(buf); n >= minNamedReferenceLength; n-- {
		if v, found := namedReferences.Get(buf[:n]); found {
			return n, v.(string), true
		}
	}
	return 0, "", false
}

// internedNames is a second, independent trie that dedupes tag and attribute
// name strings across tokens. HTML documents repeat a small alphabet of
// names (div, class, id, span, ...) across thousands of tokens; interning
// lets every occurrence of the same name share one backing string instead
// of allocating a fresh one per tag.
var internedNames triemap.RuneSliceMap

// internName returns a canonical string equal to s, reusing a previously
// interned string for the same rune sequence when one exists.
func internName(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	if v, ok := internedNames.Get(runes); ok {
		return v.(string)
	}
	internedNames.Put(runes, s)
	return s
}
