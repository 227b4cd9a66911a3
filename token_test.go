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

func TestTagDropDuplicateAttribute(t *testing.T) {
	tag := newStartTag()
	tag.startNewAttribute()
	tag.appendAttrName('a')
	tag.startNewAttribute()
	tag.appendAttrName('a')
	if dropped := tag.dropDuplicateAttribute(); !dropped {
		t.Fatal("dropDuplicateAttribute() = false, want true")
	}
	if len(tag.Attributes) != 1 {
		t.Fatalf("len(Attributes) = %d, want 1", len(tag.Attributes))
	}

	tag.startNewAttribute()
	tag.appendAttrName('b')
	if dropped := tag.dropDuplicateAttribute(); dropped {
		t.Fatal("dropDuplicateAttribute() = true for a fresh name, want false")
	}
	if len(tag.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(tag.Attributes))
	}
}

func TestTagCopyIsIndependent(t *testing.T) {
	tag := newStartTag()
	tag.appendName('a')
	tag.startNewAttribute()
	tag.appendAttrName('x')
	tag.appendAttrValue('1')

	cp := tag.Copy().(*Tag)
	cp.Attributes[0].Value = "mutated"

	if tag.Attributes[0].Value != "1" {
		t.Errorf("original attribute mutated via copy: %q", tag.Attributes[0].Value)
	}
}

func TestTagAcknowledgeSelfClosing(t *testing.T) {
	tag := newStartTag()
	tag.SelfClosing = true
	tag.AcknowledgeSelfClosing()
	if !tag.SelfClosingAcknowledged {
		t.Error("self-closing start tag should be acknowledgeable")
	}

	end := newEndTag()
	end.SelfClosing = true
	end.AcknowledgeSelfClosing()
	if end.SelfClosingAcknowledged {
		t.Error("end tags never acknowledge self-closing")
	}
}

func TestDoctypeMissingVsEmptyIdentifier(t *testing.T) {
	d := newDoctype()
	if d.PublicID != nil {
		t.Fatal("PublicID should start nil (missing)")
	}
	d.setPublicIDEmpty()
	if d.PublicID == nil || *d.PublicID != "" {
		t.Fatal("setPublicIDEmpty should set a non-nil empty string")
	}
	d.appendPublicID('x')
	if *d.PublicID != "x" {
		t.Errorf("PublicID = %q, want %q", *d.PublicID, "x")
	}
}

func TestDoctypeCopyIsIndependent(t *testing.T) {
	d := newDoctype()
	d.setPublicIDEmpty()
	d.appendPublicID('a')

	cp := d.Copy().(*Doctype)
	*cp.PublicID = "mutated"

	if *d.PublicID != "a" {
		t.Errorf("original PublicID mutated via copy: %q", *d.PublicID)
	}
}

func TestTagStringRoundTrip(t *testing.T) {
	tag := newStartTag()
	tag.appendName('a')
	tag.startNewAttribute()
	tag.appendAttrName('h')
	tag.appendAttrName('r')
	tag.appendAttrName('e')
	tag.appendAttrName('f')
	tag.appendAttrValue('/')
	if got, want := tag.String(), `<a href="/">`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	end := newEndTag()
	end.appendName('a')
	if got, want := end.String(), "</a>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
