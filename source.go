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

import "io"

// noRune is returned by source.consume on exhaustion. It is not a valid
// Unicode scalar value returned from decoding, so it is safe as a sentinel.
const noRune rune = -1

// source is a forward-only cursor over the decoded input with a one-slot
// pushback, modeling WHATWG's "reconsume" as a flag rather than true
// stream rewind.
type source struct {
	r   io.RuneReader
	off int

	last      rune
	lastOK    bool
	reconsume bool

	// pending holds scalars pushed back by pushBack, to be redelivered
	// before reading from r again. The NamedCharacterReference state's
	// longest-match backtrack and matchGoalAfterFirst's failed keyword match
	// need more than the one-slot reconsume above.
	pending []rune

	eof bool
}

func newSource(r io.RuneReader) *source {
	return &source{r: r}
}

// consume returns the next scalar and true, or (noRune, false) at EOF. CR is
// assumed already normalized away by the input preprocessor.
func (s *source) consume() (rune, bool) {
	if s.reconsume {
		s.reconsume = false
		return s.last, s.lastOK
	}
	if len(s.pending) > 0 {
		c := s.pending[0]
		s.pending = s.pending[1:]
		s.off++
		s.last, s.lastOK = c, true
		return c, true
	}
	if s.eof {
		return noRune, false
	}
	c, _, err := s.r.ReadRune()
	if err != nil {
		s.eof = true
		s.last, s.lastOK = noRune, false
		return noRune, false
	}
	s.off++
	s.last, s.lastOK = c, true
	return c, true
}

// reconsumeLast arranges for the next consume to return the same scalar
// again without advancing the underlying reader.
func (s *source) reconsumeLast() {
	s.reconsume = true
}

// pushBack arranges for runes to be redelivered by future consume calls, in
// the same order they were originally read, ahead of anything already
// pending. A rune held for reconsumption by reconsumeLast was read after
// runes, so it is redelivered after them. It rolls back the offset counter
// so a rune redelivered this way is only counted once towards offset() when
// it's actually (re)consumed.
func (s *source) pushBack(runes []rune) {
	if len(runes) == 0 {
		return
	}
	pushed := append([]rune(nil), runes...)
	if s.reconsume {
		s.reconsume = false
		if s.lastOK {
			pushed = append(pushed, s.last)
		}
	}
	s.off -= len(pushed)
	s.pending = append(pushed, s.pending...)
}

// offset reports the current input position for parse-error reporting: the
// number of scalars consumed so far, not counting pushed-back scalars that
// have not been redelivered yet.
func (s *source) offset() int { return s.off }
