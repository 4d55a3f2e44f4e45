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
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"
	"time"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/hmtx"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/maskfont/internal/tables"
)

// Metric gives the horizontal metrics of one glyph, in font design units.
type Metric struct {
	Advance float64
	LSB     float64 // left side bearing
}

// A Bundle is an assembled mask font.
// A Bundle must not be modified after it has been returned by Assemble.
type Bundle struct {
	// Font is the generated font.
	Font *sfnt.Font

	// Glyphs lists the glyph outlines in glyph ID order.
	// Glyphs[0] is always the ".notdef" glyph.
	Glyphs []*Outline

	// CodePoints maps the supported characters to glyph names.
	CodePoints CodePointMap

	// Ranges lists the masked code point ranges.
	Ranges []Range

	opt     *Options
	metrics map[string]Metric
	data    []byte // the binary OpenType font
}

// Assemble builds a mask font which shows every character in the ranges
// given by opt using the outline asterisk.  If asterisk is nil, CrossGlyph
// is used.
//
// The advance width of the asterisk in the generated font is
// opt.GlyphWidth, independent of the width of the source glyph.
func Assemble(asterisk *Outline, opt *Options) (*Bundle, error) {
	err := opt.Validate()
	if err != nil {
		return nil, err
	}
	opt = opt.withDefaults()
	logger := opt.Logger

	logger.Printf("building font %s", opt.FamilyName)

	// The hand-drawn glyphs are designed for a 1000 unit grid.
	q := float64(opt.UnitsPerEm) / 1000

	logger.Print("creating the .notdef glyph")
	notdef := NotdefGlyph(opt.GlyphWidth).Scaled(q)
	notdef.Width = opt.GlyphWidth

	logger.Print("creating the shared asterisk glyph")
	var star *Outline
	if asterisk != nil {
		star = asterisk.Scaled(1)
	} else {
		logger.Print("  using the hand-drawn asterisk")
		star = CrossGlyph(opt.GlyphWidth).Scaled(q)
	}
	star.Name = AsteriskName
	star.Width = opt.GlyphWidth
	logger.Printf("  outline starts at x=%g, side bearing set to %g",
		star.LeftSideBearing(), opt.SideBearing)

	space := SpaceGlyph(opt.SpaceWidth)

	glyphs := []*Outline{notdef, star, space}
	gids := make(map[string]glyph.ID, len(glyphs))
	for i, g := range glyphs {
		gids[g.Name] = glyph.ID(i)
	}

	for _, r := range opt.Ranges {
		logger.Printf("mapping %s (%d code points)", r, r.Len())
	}
	codePoints, err := BuildCodePointMap(opt.Ranges, AsteriskName)
	if err != nil {
		return nil, err
	}
	logger.Print("adding the space character")

	lookup := func(name string) (glyph.ID, bool) {
		gid, ok := gids[name]
		return gid, ok
	}
	subtable, err := codePoints.Format4(lookup)
	if err != nil {
		return nil, err
	}
	encodedSubtable := subtable.Encode(0)
	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: encodedSubtable,
		{PlatformID: 3, EncodingID: 1}: encodedSubtable,
	}

	encoding := make([]glyph.ID, 256)
	encoding[' '] = gids[SpaceName]
	encoding['*'] = gids[AsteriskName]
	outlines := &cff.Outlines{
		Private:  []*type1.PrivateDict{{}},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: encoding,
	}
	for _, g := range glyphs {
		outlines.Glyphs = append(outlines.Glyphs, g.CFFGlyph())
	}

	logger.Print("setting font metadata")
	created := opt.CreationTime
	if created.IsZero() {
		created = time.Now()
	}
	created = created.UTC().Truncate(time.Second)
	s := 1 / float64(opt.UnitsPerEm)
	info := &sfnt.Font{
		FamilyName: opt.FamilyName,
		Width:      os2.WidthNormal,
		Weight:     os2.WeightNormal,
		IsRegular:  true,

		Version:          head.Version(0x00010000),
		CreationTime:     created,
		ModificationTime: created,

		PermUse: os2.PermInstall,

		UnitsPerEm: opt.UnitsPerEm,
		FontMatrix: matrix.Matrix{s, 0, 0, s, 0, 0},

		Ascent:    funit.Int16(math.Round(opt.Ascent)),
		Descent:   funit.Int16(math.Round(opt.Descent)),
		LineGap:   funit.Int16(math.Round(opt.LineGap)),
		CapHeight: funit.Int16(math.Round(700 * q)),
		XHeight:   funit.Int16(math.Round(500 * q)),

		UnderlinePosition:  funit.Float64(-100 * q),
		UnderlineThickness: funit.Float64(50 * q),

		CMapTable: cmapTable,
		Outlines:  outlines,
	}

	buf := &bytes.Buffer{}
	_, err = info.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", opt.FamilyName, err)
	}

	lsb := make([]funit.Int16, len(glyphs))
	for i, g := range glyphs {
		if !g.IsBlank() {
			lsb[i] = funit.Int16(math.Round(opt.SideBearing))
		}
	}
	data, err := setSideBearings(buf.Bytes(), info, lsb)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", opt.FamilyName, err)
	}
	metrics, err := readMetrics(data, glyphs)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", opt.FamilyName, err)
	}

	res := &Bundle{
		Font:       info,
		Glyphs:     glyphs,
		CodePoints: codePoints,
		Ranges:     append([]Range(nil), opt.Ranges...),
		opt:        opt,
		metrics:    metrics,
		data:       data,
	}
	return res, nil
}

// setSideBearings replaces the "hhea" and "hmtx" tables of the encoded font
// by versions which record the given left side bearings.  The sfnt encoder
// derives the side bearings of CFF glyphs from the outlines.
func setSideBearings(data []byte, info *sfnt.Font, lsb []funit.Int16) ([]byte, error) {
	f, err := tables.Read(data)
	if err != nil {
		return nil, err
	}
	tableData := f.Map()

	widths := make([]funit.Int16, info.NumGlyphs())
	for i, w := range info.Widths() {
		widths[i] = funit.Int16(w)
	}
	hmtxInfo := &hmtx.Info{
		Widths:       widths,
		GlyphExtents: info.GlyphBBoxes(),
		LSB:          lsb,
		Ascent:       info.Ascent,
		Descent:      info.Descent,
		LineGap:      info.LineGap,
		CaretAngle:   info.ItalicAngle / 180 * math.Pi,
	}
	tableData["hhea"], tableData["hmtx"] = hmtxInfo.Encode()

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, f.ScalerType, tableData)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var errMissingMetrics = errors.New("missing horizontal metrics")

// readMetrics decodes the horizontal metrics stored in an encoded font.
func readMetrics(data []byte, glyphs []*Outline) (map[string]Metric, error) {
	f, err := tables.Read(data)
	if err != nil {
		return nil, err
	}
	tableData := f.Map()
	hmtxInfo, err := hmtx.Decode(tableData["hhea"], tableData["hmtx"])
	if err != nil {
		return nil, err
	}
	if len(hmtxInfo.Widths) != len(glyphs) || len(hmtxInfo.LSB) != len(glyphs) {
		return nil, errMissingMetrics
	}

	res := make(map[string]Metric, len(glyphs))
	for i, g := range glyphs {
		res[g.Name] = Metric{
			Advance: float64(hmtxInfo.Widths[i]),
			LSB:     float64(hmtxInfo.LSB[i]),
		}
	}
	return res, nil
}

// FamilyName returns the family name of the font.
func (b *Bundle) FamilyName() string {
	return b.opt.FamilyName
}

// PostScriptName returns the PostScript name of the font.
func (b *Bundle) PostScriptName() string {
	return strings.ReplaceAll(b.opt.FamilyName, " ", "")
}

// GlyphOrder returns the glyph names in glyph ID order.
func (b *Bundle) GlyphOrder() []string {
	res := make([]string, len(b.Glyphs))
	for i, g := range b.Glyphs {
		res[i] = g.Name
	}
	return res
}

// Metrics returns the horizontal metrics of all glyphs, keyed by glyph name,
// as stored in the "hmtx" table of the font.
func (b *Bundle) Metrics() map[string]Metric {
	return maps.Clone(b.metrics)
}

// Glyph returns the outline with the given name, or nil if the font has no
// such glyph.
func (b *Bundle) Glyph(name string) *Outline {
	for _, g := range b.Glyphs {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Size returns the size of the OpenType font in bytes.
func (b *Bundle) Size() int {
	return len(b.data)
}

