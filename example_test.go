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

package html_test

import (
	"fmt"
	"strings"

	html "github.com/KorieDrakeChaney/html-parser"
)

// Example_manualTokenLoop pulls tokens one at a time until EOF, the shape
// every caller of Tokenizer is expected to follow.
func Example_manualTokenLoop() {
	tok := html.NewTokenizer(strings.NewReader(`<p class="greeting">Hi&nbsp;there</p>`))

	var chars strings.Builder
	for {
		t := tok.Next()
		switch v := t.(type) {
		case *html.Tag:
			if chars.Len() > 0 {
				fmt.Printf("text: %q\n", chars.String())
				chars.Reset()
			}
			fmt.Println("tag:", v.String())
		case html.Character:
			chars.WriteRune(rune(v))
		case html.EOF:
			if chars.Len() > 0 {
				fmt.Printf("text: %q\n", chars.String())
			}
			return
		}
	}

	// Output:
	// tag: <p class="greeting">
	// text: "Hi\u00a0there"
	// tag: </p>
}
