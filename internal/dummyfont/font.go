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

// Package dummyfont provides a minimal OpenType font for use in tests.
package dummyfont

import (
	"bytes"
	"time"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// CFF returns a CFF-based OpenType font as a byte slice.
// The only glyphs available are the space and the capital letter A.
//
// If the font cannot be encoded, the function panics.
func CFF() []byte {
	encoding := make([]glyph.ID, 256)
	encoding[' '] = 1
	encoding['A'] = 2

	outlines := &cff.Outlines{
		Private:  []*type1.PrivateDict{{}},
		FDSelect: func(gi glyph.ID) int { return 0 },
		Encoding: encoding,
	}

	g := cff.NewGlyph(".notdef", 500)
	outlines.Glyphs = append(outlines.Glyphs, g)

	g = cff.NewGlyph("space", 1000)
	outlines.Glyphs = append(outlines.Glyphs, g)

	g = cff.NewGlyph("A", 900)
	g.MoveTo(50, 50)
	g.LineTo(850, 50)
	g.LineTo(850, 850)
	g.LineTo(50, 850)
	outlines.Glyphs = append(outlines.Glyphs, g)

	subtable := cmap.Format4{
		' ': 1,
		'A': 2,
	}
	cmapTable := cmap.Table{
		{PlatformID: 3, EncodingID: 1}: subtable.Encode(0),
	}

	// A fixed time keeps the output reproducible.
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	info := &sfnt.Font{
		FamilyName:       "Dummy",
		Width:            os2.WidthNormal,
		Weight:           os2.WeightNormal,
		IsRegular:        true,
		CreationTime:     t,
		ModificationTime: t,
		UnitsPerEm:       1000,
		FontMatrix:       matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		Ascent:           850,
		Descent:          0,
		CapHeight:        850,
		CMapTable:        cmapTable,
		Outlines:         outlines,
	}

	buf := &bytes.Buffer{}
	_, err := info.Write(buf)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}
