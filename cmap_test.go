// seehuhn.de/go/maskfont - fonts for masking sensitive text
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package maskfont

import (
	"errors"
	"testing"

	"seehuhn.de/go/sfnt/glyph"
)

func TestRange(t *testing.T) {
	if n := PrivateUseArea.Len(); n != 6400 {
		t.Errorf("private use area has %d code points", n)
	}
	if n := RareHangul.Len(); n != 2100 {
		t.Errorf("rare Hangul range has %d code points", n)
	}
	if s := RareHangul.String(); s != "U+CF70-U+D7A3" {
		t.Errorf("wrong string %q", s)
	}
	if n := (Range{First: 10, Last: 9}).Len(); n != 0 {
		t.Errorf("empty range has length %d", n)
	}

	for _, c := range []rune{0xE000, 0xF000, 0xF8FF} {
		if !PrivateUseArea.Contains(c) {
			t.Errorf("U+%04X not contained", c)
		}
	}
	for _, c := range []rune{0xDFFF, 0xF900, ' '} {
		if PrivateUseArea.Contains(c) {
			t.Errorf("U+%04X contained", c)
		}
	}
}

func TestBuildCodePointMap(t *testing.T) {
	m, err := BuildCodePointMap([]Range{PrivateUseArea, RareHangul}, AsteriskName)
	if err != nil {
		t.Fatal(err)
	}

	if len(m) != 6400+2100+1 {
		t.Errorf("map has %d entries", len(m))
	}
	for _, r := range []Range{PrivateUseArea, RareHangul} {
		for c := r.First; c <= r.Last; c++ {
			if m[c] != AsteriskName {
				t.Fatalf("U+%04X maps to %q", c, m[c])
			}
		}
	}
	if m[' '] != SpaceName {
		t.Errorf("space maps to %q", m[' '])
	}
	for _, c := range []rune{'A', '*', 0xCF6F, 0xD7A4, 0xDFFF, 0xF900} {
		if name, ok := m[c]; ok {
			t.Errorf("U+%04X unexpectedly maps to %q", c, name)
		}
	}
}

func TestBuildCodePointMapOverlap(t *testing.T) {
	ranges := []Range{
		{First: 0xE000, Last: 0xE0FF},
		{First: 0xE080, Last: 0xE17F},
	}
	m, err := BuildCodePointMap(ranges, AsteriskName)
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 0x180+1 {
		t.Errorf("map has %d entries", len(m))
	}
}

func TestBuildCodePointMapErrors(t *testing.T) {
	_, err := BuildCodePointMap(nil, AsteriskName)
	if !errors.Is(err, ErrNoRanges) {
		t.Errorf("nil ranges: unexpected error %v", err)
	}

	bad := []Range{
		{First: 0xE100, Last: 0xE000},    // empty
		{First: 0xF000, Last: 0x10000},   // outside the BMP
		{First: 0xD700, Last: 0xD800},    // surrogates
		{First: 0x0000, Last: 0x007F},    // includes the space
		{First: -1, Last: 10},            // negative
		{First: 0x10000, Last: 0x10FFFF}, // supplementary planes
	}
	for _, r := range bad {
		_, err := BuildCodePointMap([]Range{PrivateUseArea, r}, AsteriskName)
		if err == nil {
			t.Errorf("%s: no error", r)
		}
	}
}

func TestCodePoints(t *testing.T) {
	m, err := BuildCodePointMap([]Range{{First: 0xE002, Last: 0xE004}, {First: 'A', Last: 'B'}}, AsteriskName)
	if err != nil {
		t.Fatal(err)
	}
	got := m.CodePoints()
	want := []rune{' ', 'A', 'B', 0xE002, 0xE003, 0xE004}
	if len(got) != len(want) {
		t.Fatalf("got %d code points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("code point %d: U+%04X != U+%04X", i, got[i], want[i])
		}
	}
}

func TestFormat4(t *testing.T) {
	m, err := BuildCodePointMap([]Range{RareHangul}, AsteriskName)
	if err != nil {
		t.Fatal(err)
	}
	gids := map[string]glyph.ID{NotdefName: 0, AsteriskName: 1, SpaceName: 2}
	lookup := func(name string) (glyph.ID, bool) {
		gid, ok := gids[name]
		return gid, ok
	}

	sub, err := m.Format4(lookup)
	if err != nil {
		t.Fatal(err)
	}
	if len(sub) != len(m) {
		t.Errorf("subtable has %d entries, want %d", len(sub), len(m))
	}
	if sub[0xD000] != 1 {
		t.Errorf("U+D000 maps to glyph %d", sub[0xD000])
	}
	if sub[' '] != 2 {
		t.Errorf("space maps to glyph %d", sub[' '])
	}

	// unknown glyph names are an error
	delete(gids, SpaceName)
	_, err = m.Format4(lookup)
	if err == nil {
		t.Error("missing glyph not detected")
	}
}
