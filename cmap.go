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
	"fmt"
	"slices"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// A Range is a closed interval of Unicode code points.
type Range struct {
	First, Last rune
}

func (r Range) String() string {
	return fmt.Sprintf("U+%04X-U+%04X", r.First, r.Last)
}

// Len returns the number of code points in the range.
func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return int(r.Last-r.First) + 1
}

// Contains reports whether c lies in the range.
func (r Range) Contains(c rune) bool {
	return c >= r.First && c <= r.Last
}

// check verifies that the range can be used in a format 4 cmap subtable
// without clashing with the space character.
func (r Range) check() error {
	switch {
	case r.Last < r.First:
		return fmt.Errorf("range %s is empty", r)
	case r.First < 0 || r.Last > 0xFFFF:
		return fmt.Errorf("range %s is outside the BMP", r)
	case r.Last >= 0xD800 && r.First <= 0xDFFF:
		return fmt.Errorf("range %s contains surrogate code points", r)
	case r.Contains(' '):
		return fmt.Errorf("range %s contains the space character", r)
	}
	return nil
}

// A CodePointMap assigns glyph names to Unicode code points.
// Code points which are not present in the map are shown using
// the ".notdef" glyph.
type CodePointMap map[rune]string

// ErrNoRanges is returned by BuildCodePointMap if no ranges are given.
var ErrNoRanges = errors.New("no code point ranges given")

// BuildCodePointMap maps every code point in the given ranges to the glyph
// name mask, and the space character U+0020 to the space glyph.
//
// Ranges may overlap, since every range maps to the same glyph.
// Ranges which are empty, leave the BMP, contain surrogates or contain the
// space character are rejected.
func BuildCodePointMap(ranges []Range, mask string) (CodePointMap, error) {
	if len(ranges) == 0 {
		return nil, ErrNoRanges
	}

	size := 1
	for _, r := range ranges {
		err := r.check()
		if err != nil {
			return nil, err
		}
		size += r.Len()
	}

	m := make(CodePointMap, size)
	for _, r := range ranges {
		for c := r.First; c <= r.Last; c++ {
			m[c] = mask
		}
	}
	m[' '] = SpaceName
	return m, nil
}

// CodePoints returns the mapped code points in increasing order.
func (m CodePointMap) CodePoints() []rune {
	res := make([]rune, 0, len(m))
	for c := range m {
		res = append(res, c)
	}
	slices.Sort(res)
	return res
}

// Format4 converts the map into a format 4 cmap subtable.
// The function gid translates glyph names into glyph IDs.
func (m CodePointMap) Format4(gid func(name string) (glyph.ID, bool)) (cmap.Format4, error) {
	sub := make(cmap.Format4, len(m))
	for c, name := range m {
		if c < 0 || c > 0xFFFF {
			return nil, fmt.Errorf("code point U+%04X is outside the BMP", c)
		}
		g, ok := gid(name)
		if !ok {
			return nil, fmt.Errorf("code point U+%04X: unknown glyph %q", c, name)
		}
		sub[uint16(c)] = g
	}
	return sub, nil
}
