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
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/sfnt"
)

// ErrGlyphNotFound is returned (wrapped) when a font has no glyph
// for a character.
var ErrGlyphNotFound = errors.New("glyph not found")

// LoadAsterisk copies the outline of the asterisk "*" from the first usable
// font in the list of candidate files.  The outline and the advance width are
// scaled from the design grid of the source font to unitsPerEm.
//
// Files which do not exist, which cannot be parsed, or which have no asterisk
// are skipped.  If none of the candidates can be used, the function returns
// (nil, false).
func LoadAsterisk(candidates []string, unitsPerEm uint16, logger *log.Logger) (*Outline, bool) {
	if logger == nil {
		logger = discardLogger
	}

	for _, fname := range candidates {
		if _, err := os.Stat(fname); err != nil {
			continue
		}

		base := filepath.Base(fname)
		logger.Printf("loading the asterisk from %s", base)
		star, err := loadGlyphFile(fname, '*', unitsPerEm)
		if err != nil {
			logger.Printf("  %s: %v", base, err)
			continue
		}

		logger.Printf("  using %s, advance width %g", base, star.Width)
		return star, true
	}

	logger.Print("no system font provides an asterisk")
	return nil, false
}

// loadGlyphFile reads the outline of the glyph for r from the given font
// file.  Panics from the font parser are converted into errors.
func loadGlyphFile(fname string, r rune, unitsPerEm uint16) (res *Outline, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = fmt.Errorf("malformed font: %v", p)
		}
	}()

	info, err := openFont(fname)
	if err != nil {
		return nil, err
	}
	return ExtractGlyph(info, r, unitsPerEm)
}

// ExtractGlyph returns the outline of the glyph which info uses for the
// character r, scaled to a design grid of unitsPerEm units.
// The outline is named AsteriskName.
func ExtractGlyph(info *sfnt.Font, r rune, unitsPerEm uint16) (*Outline, error) {
	if info.UnitsPerEm == 0 {
		return nil, errors.New("font has invalid units per em")
	}
	if info.Outlines == nil {
		return nil, errors.New("font has no glyph outlines")
	}

	lookup, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	gid := lookup.Lookup(r)
	if gid == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}

	src := NewOutline(AsteriskName, float64(info.GlyphWidth(gid)))
	for cmd, pts := range info.Outlines.Path(gid) {
		switch cmd {
		case path.CmdMoveTo:
			src.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			src.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			src.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			src.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			src.ClosePath()
		}
	}

	q := float64(unitsPerEm) / float64(info.UnitsPerEm)
	return src.Scaled(q), nil
}
