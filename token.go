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

import "strings"

// TokenKind identifies which of the five token variants a Token carries.
type TokenKind uint8

const (
	DoctypeToken TokenKind = iota
	TagToken
	CommentToken
	CharacterToken
	EOFToken
)

func (k TokenKind) String() string {
	switch k {
	case DoctypeToken:
		return "Doctype"
	case TagToken:
		return "Tag"
	case CommentToken:
		return "Comment"
	case CharacterToken:
		return "Character"
	case EOFToken:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token represents one emitted unit from the tokenizer: DOCTYPE, a start or
// end tag, a comment, a single character, or the end-of-file sentinel.
//
// Each token returned by Next is a copy taken when it was emitted, so later
// calls to Next do not change it. Copy returns an independent deep copy, for
// a caller that modifies a token and wants to keep the original.
type Token interface {
	Kind() TokenKind
	String() string
	Copy() Token
}

// Doctype is the DOCTYPE token. PublicID and SystemID distinguish *missing*
// (nil) from *present but empty* (non-nil, pointing at ""); tree
// construction relies on that distinction to pick quirks mode.
type Doctype struct {
	Name        string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

func newDoctype() Doctype { return Doctype{} }

func (d *Doctype) Kind() TokenKind { return DoctypeToken }

func (d *Doctype) appendName(c rune) { d.Name += string(c) }

func (d *Doctype) setPublicIDEmpty() { s := ""; d.PublicID = &s }
func (d *Doctype) setSystemIDEmpty() { s := ""; d.SystemID = &s }

func (d *Doctype) appendPublicID(c rune) {
	if d.PublicID != nil {
		*d.PublicID += string(c)
	}
}

func (d *Doctype) appendSystemID(c rune) {
	if d.SystemID != nil {
		*d.SystemID += string(c)
	}
}

func (d *Doctype) String() string {
	return "<!DOCTYPE " + d.Name + ">"
}

func (d *Doctype) Copy() Token {
	c := *d
	if d.PublicID != nil {
		s := *d.PublicID
		c.PublicID = &s
	}
	if d.SystemID != nil {
		s := *d.SystemID
		c.SystemID = &s
	}
	return &c
}

// Attribute is a single name/value pair belonging to a Tag. Name comparison
// is case-sensitive; the tokenizer has already lowercased ASCII upper-alpha
// while consuming the name.
type Attribute struct {
	Name  string
	Value string
}

// Tag is a start or end tag token, with its attributes in source order.
type Tag struct {
	Name                    string
	IsEnd                   bool
	SelfClosing             bool
	SelfClosingAcknowledged bool
	Attributes              []Attribute
}

func newStartTag() Tag { return Tag{} }
func newEndTag() Tag   { return Tag{IsEnd: true} }

func (t *Tag) Kind() TokenKind { return TagToken }

func (t *Tag) appendName(c rune) { t.Name += string(c) }

func (t *Tag) startNewAttribute() {
	t.Attributes = append(t.Attributes, Attribute{})
}

func (t *Tag) appendAttrName(c rune) {
	if n := len(t.Attributes); n > 0 {
		t.Attributes[n-1].Name += string(c)
	}
}

func (t *Tag) appendAttrValue(c rune) {
	if n := len(t.Attributes); n > 0 {
		t.Attributes[n-1].Value += string(c)
	}
}

// lastAttrName returns the name of the attribute currently being built, or
// "" if none is in progress.
func (t *Tag) lastAttrName() string {
	if n := len(t.Attributes); n > 0 {
		return t.Attributes[n-1].Name
	}
	return ""
}

// dropDuplicateAttribute discards the attribute currently being built (the
// last one) if its name duplicates an earlier attribute's, keeping the
// first occurrence per WHATWG's duplicate-attribute rule. It reports
// whether the attribute was a duplicate, so the driver can stop appending
// to its value.
func (t *Tag) dropDuplicateAttribute() bool {
	n := len(t.Attributes)
	if n == 0 {
		return false
	}
	last := t.Attributes[n-1]
	for i := 0; i < n-1; i++ {
		if t.Attributes[i].Name == last.Name {
			t.Attributes = t.Attributes[:n-1]
			return true
		}
	}
	return false
}

// AcknowledgeSelfClosing lets a downstream tree-construction stage record
// that it has handled the self-closing flag on a start tag. It is a no-op
// for end tags or tags that were never marked self-closing.
func (t *Tag) AcknowledgeSelfClosing() {
	if t.SelfClosing && !t.IsEnd {
		t.SelfClosingAcknowledged = true
	}
}

func (t *Tag) String() string {
	var b strings.Builder
	if t.IsEnd {
		b.WriteString("</")
		b.WriteString(t.Name)
		b.WriteByte('>')
		return b.String()
	}
	b.WriteByte('<')
	b.WriteString(t.Name)
	for _, a := range t.Attributes {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	if t.SelfClosing {
		b.WriteString(" />")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}

func (t *Tag) Copy() Token {
	c := *t
	if t.Attributes != nil {
		c.Attributes = make([]Attribute, len(t.Attributes))
		copy(c.Attributes, t.Attributes)
	}
	return &c
}

// Comment is a comment token; Data holds the comment's text.
type Comment struct {
	Data string
}

func newComment() Comment { return Comment{} }

func (c *Comment) Kind() TokenKind { return CommentToken }

func (c *Comment) appendData(r rune) { c.Data += string(r) }

func (c *Comment) String() string { return "<!--" + c.Data + "-->" }

func (c *Comment) Copy() Token {
	cp := *c
	return &cp
}

// Character is a single emitted scalar value. The tokenizer emits one
// Character token per code point; a consumer wishing to batch runs of
// character data may coalesce adjacent Character tokens itself.
type Character rune

func (c Character) Kind() TokenKind { return CharacterToken }
func (c Character) String() string  { return string(rune(c)) }
func (c Character) Copy() Token     { return c }

// EOF is the singleton end-of-input token. Once emitted, no further tokens
// follow it.
type EOF struct{}

func (EOF) Kind() TokenKind { return EOFToken }
func (EOF) String() string  { return "" }
func (EOF) Copy() Token     { return EOF{} }
