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

// Package maskfont generates fonts which display every character of a
// set of Unicode ranges as the same asterisk glyph.
//
// Text which has been encoded into the Unicode private use area (or into
// the rarely used part of the Hangul syllables block) can be shown with such
// a font: every masked character renders as "*", while the underlying
// string is left untouched.
//
// The asterisk is copied from the first usable system font, scaled to the
// units per em of the generated font.  If no system font can be used, a
// simple cross shape is drawn instead:
//
//	opt := &maskfont.Options{Logger: log.Default()}
//	star, ok := maskfont.LoadAsterisk(maskfont.Candidates(runtime.GOOS), 1000, opt.Logger)
//	if !ok {
//	    star = maskfont.CrossGlyph(600)
//	}
//	bundle, err := maskfont.Assemble(star, opt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, res := range bundle.WriteFiles("fonts", []string{"otf", "woff", "woff2"}) {
//	    ...
//	}
//
// The generated font is a CFF-flavoured OpenType font.  It can be written
// as a plain OpenType file, as WOFF 1.0 or WOFF 2.0 web font, and an AFM
// metrics file can be written alongside.
package maskfont
