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
	"io"
	"log"
	"math"
	"time"
)

// Glyph names used in the generated font.
const (
	NotdefName   = ".notdef"
	AsteriskName = "asterisk"
	SpaceName    = "space"
)

// Standard code point ranges which are masked.
var (
	// PrivateUseArea is the BMP private use area.
	PrivateUseArea = Range{First: 0xE000, Last: 0xF8FF}

	// RareHangul is the rarely used tail of the Hangul syllables block.
	RareHangul = Range{First: 0xCF70, Last: 0xD7A3}
)

// Options control the generated font.
// A nil *Options or a zero field selects the default value.
type Options struct {
	// FamilyName is the font family name.  This is also used as the base
	// name of the output files.
	FamilyName string

	// Ranges lists the code point ranges which are mapped to the asterisk.
	// If this is empty, PrivateUseArea and RareHangul are used.
	Ranges []Range

	// UnitsPerEm is the size of the design grid.  The default is 1000.
	UnitsPerEm uint16

	Ascent  float64 // default 800
	Descent float64 // default -200, negative
	LineGap float64 // default 200

	// The OS/2 clipping metrics are computed from the glyph outlines when
	// the font is written.
	GlyphWidth  float64 // advance width of .notdef and the asterisk, default 600
	SideBearing float64 // hmtx left side bearing of all non-blank glyphs, default 50
	SpaceWidth  float64 // advance width of the space glyph, default 300

	// CreationTime is stored in the "head" table.  If this is zero, the
	// current time is used.
	CreationTime time.Time

	// Logger receives progress messages.  If this is nil, messages are
	// discarded.
	Logger *log.Logger
}

var defaultOptions = Options{
	FamilyName:  "UniMask",
	Ranges:      []Range{PrivateUseArea, RareHangul},
	UnitsPerEm:  1000,
	Ascent:      800,
	Descent:     -200,
	LineGap:     200,
	GlyphWidth:  600,
	SideBearing: 50,
	SpaceWidth:  300,
}

// ErrInvalidOptions is returned (wrapped) when the options cannot be used
// to generate a font.
var ErrInvalidOptions = errors.New("invalid options")

// withDefaults returns a copy of opt where all unset fields have been
// replaced by their default values.
func (opt *Options) withDefaults() *Options {
	res := defaultOptions
	if opt == nil {
		res.Logger = discardLogger
		return &res
	}

	if opt.FamilyName != "" {
		res.FamilyName = opt.FamilyName
	}
	if len(opt.Ranges) > 0 {
		res.Ranges = opt.Ranges
	}
	if opt.UnitsPerEm != 0 {
		res.UnitsPerEm = opt.UnitsPerEm
	}
	if opt.Ascent != 0 {
		res.Ascent = opt.Ascent
	}
	if opt.Descent != 0 {
		res.Descent = opt.Descent
	}
	if opt.LineGap != 0 {
		res.LineGap = opt.LineGap
	}
	if opt.GlyphWidth != 0 {
		res.GlyphWidth = opt.GlyphWidth
	}
	if opt.SideBearing != 0 {
		res.SideBearing = opt.SideBearing
	}
	if opt.SpaceWidth != 0 {
		res.SpaceWidth = opt.SpaceWidth
	}
	res.CreationTime = opt.CreationTime
	res.Logger = opt.Logger
	if res.Logger == nil {
		res.Logger = discardLogger
	}
	return &res
}

// Validate checks that the options can be used to generate a font.
// Unset fields are not an error, since defaults are used for these.
func (opt *Options) Validate() error {
	o := opt.withDefaults()
	for _, c := range o.FamilyName {
		if c < 0x20 || c > 0x7E {
			return fmt.Errorf("%w: family name %q is not printable ASCII",
				ErrInvalidOptions, o.FamilyName)
		}
	}
	if o.UnitsPerEm < 16 || o.UnitsPerEm > 16384 {
		return fmt.Errorf("%w: units per em %d outside the range 16-16384",
			ErrInvalidOptions, o.UnitsPerEm)
	}
	if o.Descent > 0 {
		return fmt.Errorf("%w: descent %g must not be positive",
			ErrInvalidOptions, o.Descent)
	}
	if o.GlyphWidth < 0 || o.SpaceWidth < 0 {
		return fmt.Errorf("%w: negative glyph width", ErrInvalidOptions)
	}
	if math.Abs(o.SideBearing) > math.MaxInt16 {
		return fmt.Errorf("%w: side bearing %g out of range",
			ErrInvalidOptions, o.SideBearing)
	}
	for _, r := range o.Ranges {
		err := r.check()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}
	return nil
}

var discardLogger = log.New(io.Discard, "", 0)
