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

const benchDocument = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Benchmark &amp; Friends</title>
	<style>body { color: red; }</style>
</head>
<body>
	<!-- a comment that the tokenizer must skip over -->
	<p class="greeting" data-count="3">Hello&nbsp;world, this &amp; that.</p>
	<ul>
		<li>one</li>
		<li>two</li>
		<li>three</li>
	</ul>
	<script>var x = "<not a tag>"; console.log(x &lt; 1);</script>
	<input type="checkbox" checked disabled>
</body>
</html>`

func BenchmarkTokenizeAll(b *testing.B) {
	testCases := []struct {
		desc        string
		tokenizeAll func()
	}{
		{"html-tokenizer",
			func() {
				tokr := NewTokenizer(strings.NewReader(benchDocument))
				for {
					tk := tokr.Next()
					if tk.Kind() == EOFToken {
						return
					}
				}
			},
		},
	}

	for _, tc := range testCases {
		b.Run(tc.desc, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tc.tokenizeAll()
			}
		})
	}
}

func BenchmarkLookupLongestNamedReference(b *testing.B) {
	buf := []rune("notin;rest")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookupLongestNamedReference(buf)
	}
}
