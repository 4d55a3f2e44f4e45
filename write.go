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
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/postscript/afm"

	"seehuhn.de/go/maskfont/woff"
	"seehuhn.de/go/maskfont/woff2"
)

// Formats lists the supported output formats.
var Formats = []string{"otf", "woff", "woff2", "afm"}

// ErrUnsupportedFormat is returned (wrapped) for unknown format identifiers.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Result describes the outcome of writing one output file.
type Result struct {
	Format string
	Path   string
	Size   int64 // in bytes
	Err    error
}

// Encode writes the font to w, using the given format.
// Valid formats are listed in Formats.
func (b *Bundle) Encode(w io.Writer, format string) error {
	switch format {
	case "otf":
		_, err := w.Write(b.data)
		return err
	case "woff":
		return woff.Encode(w, b.data)
	case "woff2":
		return woff2.Encode(w, b.data)
	case "afm":
		return b.afmMetrics().Write(w)
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// WriteFiles writes the font into the directory dir, one file per format.
// The file names are formed from the family name and the format.
// The directory is created if needed.
//
// Every format is attempted, even if an earlier one fails.
// No file is created for unsupported formats.
func (b *Bundle) WriteFiles(dir string, formats []string) []Result {
	logger := b.opt.Logger

	res := make([]Result, 0, len(formats))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Printf("cannot create %s: %v", dir, err)
		for _, format := range formats {
			res = append(res, Result{Format: format, Err: err})
		}
		return res
	}

	for _, format := range formats {
		r := Result{
			Format: format,
			Path:   filepath.Join(dir, b.FamilyName()+"."+format),
		}
		r.Size, r.Err = b.writeFile(r.Path, format)
		if r.Err != nil {
			logger.Printf("  %s: %v", format, r.Err)
			if errors.Is(r.Err, ErrUnsupportedFormat) {
				r.Path = ""
			}
		} else {
			logger.Printf("  wrote %s (%d bytes)", r.Path, r.Size)
		}
		res = append(res, r)
	}
	return res
}

func (b *Bundle) writeFile(fname, format string) (int64, error) {
	if !slices.Contains(Formats, format) {
		return 0, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}

	fd, err := os.Create(fname)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: fd}
	err = b.Encode(cw, format)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(fname)
		return 0, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.n += int64(n)
	return n, err
}

// afmMetrics returns the font metrics in the form used for AFM files.
// The built-in encoding maps the space and the asterisk.
func (b *Bundle) afmMetrics() *afm.Metrics {
	opt := b.opt
	encoding := make([]string, 256)
	encoding[' '] = SpaceName
	encoding['*'] = AsteriskName

	// The AFM writer takes the weight from the words of the full name
	// after the first one.
	metrics := &afm.Metrics{
		Glyphs:   make(map[string]*afm.GlyphInfo, len(b.Glyphs)),
		Encoding: encoding,
		FontName: b.PostScriptName(),
		FullName: b.FamilyName() + " Regular",
		Version:  "1.0",

		Ascent:             opt.Ascent,
		Descent:            opt.Descent,
		CapHeight:          float64(b.Font.CapHeight),
		XHeight:            float64(b.Font.XHeight),
		UnderlinePosition:  float64(b.Font.UnderlinePosition),
		UnderlineThickness: float64(b.Font.UnderlineThickness),
	}
	for _, g := range b.Glyphs {
		metrics.Glyphs[g.Name] = &afm.GlyphInfo{
			WidthX: g.Width,
			BBox:   g.BBox(),
		}
	}
	return metrics
}
