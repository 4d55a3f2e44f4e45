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
	"encoding/binary"
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/maskfont/internal/tables"
)

// goAsteriskWidth returns the advance width of the asterisk in the Go Regular
// font, in font design units, and the units per em of the font.
// The values are obtained using an independent font parser.
func goAsteriskWidth(t *testing.T) (float64, float64) {
	t.Helper()

	f, err := xsfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf xsfnt.Buffer
	gid, err := f.GlyphIndex(&buf, '*')
	if err != nil || gid == 0 {
		t.Fatalf("no asterisk in Go Regular: %v", err)
	}
	upem := f.UnitsPerEm()
	adv, err := f.GlyphAdvance(&buf, gid, fixed.I(int(upem)), font.HintingNone)
	if err != nil {
		t.Fatal(err)
	}
	return float64(adv.Round()), float64(upem)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fname, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadAsterisk(t *testing.T) {
	fname := writeFile(t, "goregular.ttf", goregular.TTF)

	logBuf := &bytes.Buffer{}
	logger := log.New(logBuf, "", 0)
	star, ok := LoadAsterisk([]string{fname}, 1000, logger)
	if !ok {
		t.Fatalf("asterisk not loaded:\n%s", logBuf.String())
	}

	adv, upem := goAsteriskWidth(t)
	want := math.Round(adv * 1000 / upem)
	if star.Width != want {
		t.Errorf("advance width %g, want %g", star.Width, want)
	}
	if star.Name != AsteriskName {
		t.Errorf("wrong glyph name %q", star.Name)
	}
	if star.IsBlank() {
		t.Fatal("asterisk outline is empty")
	}

	// The asterisk sits above the baseline and within the advance width.
	bbox := star.BBox()
	if bbox.LLy <= 0 || bbox.URy > 1000 || bbox.URx > star.Width {
		t.Errorf("implausible bounding box %v", bbox)
	}
	for _, c := range star.Cmds {
		for _, p := range c.Pts {
			if p.X != math.Round(p.X) || p.Y != math.Round(p.Y) {
				t.Fatalf("coordinates not rounded: %v", p)
			}
		}
	}

	if !strings.Contains(logBuf.String(), "goregular.ttf") {
		t.Errorf("source font not logged:\n%s", logBuf.String())
	}
}

func TestLoadAsteriskScaling(t *testing.T) {
	fname := writeFile(t, "goregular.ttf", goregular.TTF)

	adv, upem := goAsteriskWidth(t)
	for _, unitsPerEm := range []uint16{1000, 2048, 256} {
		star, ok := LoadAsterisk([]string{fname}, unitsPerEm, nil)
		if !ok {
			t.Fatal("asterisk not loaded")
		}
		want := math.Round(adv * float64(unitsPerEm) / upem)
		if star.Width != want {
			t.Errorf("%d: advance width %g, want %g", unitsPerEm, star.Width, want)
		}
	}
}

func TestLoadAsteriskSkip(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.ttf")
	garbage := writeFile(t, "garbage.ttf", []byte("this is not a font file"))
	truncated := writeFile(t, "truncated.ttf", goregular.TTF[:200])
	good := writeFile(t, "goregular.ttf", goregular.TTF)

	logBuf := &bytes.Buffer{}
	logger := log.New(logBuf, "", 0)
	star, ok := LoadAsterisk([]string{missing, garbage, truncated, good}, 1000, logger)
	if !ok || star == nil {
		t.Fatalf("asterisk not loaded:\n%s", logBuf.String())
	}

	msg := logBuf.String()
	if strings.Contains(msg, "missing.ttf") {
		t.Error("missing file was logged")
	}
	for _, name := range []string{"garbage.ttf", "truncated.ttf"} {
		if !strings.Contains(msg, name) {
			t.Errorf("failure for %s not logged", name)
		}
	}
}

func TestLoadAsteriskFallback(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{
		filepath.Join(dir, "a.ttf"),
		filepath.Join(dir, "b.ttc"),
	}

	logBuf := &bytes.Buffer{}
	logger := log.New(logBuf, "", 0)
	star, ok := LoadAsterisk(candidates, 1000, logger)
	if ok || star != nil {
		t.Error("asterisk loaded from missing files")
	}
	if !strings.Contains(logBuf.String(), "no system font") {
		t.Errorf("fallback not logged:\n%s", logBuf.String())
	}

	_, ok = LoadAsterisk(nil, 1000, nil)
	if ok {
		t.Error("asterisk loaded from empty candidate list")
	}
}

func TestExtractGlyphMissing(t *testing.T) {
	info, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	_, err = ExtractGlyph(info, '中', 1000)
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("unexpected error %v", err)
	}
}

// makeCollection wraps the given fonts into a TrueType collection.
func makeCollection(t *testing.T, fonts ...[]byte) []byte {
	t.Helper()

	var parsed []*tables.Font
	for _, data := range fonts {
		f, err := tables.Read(data)
		if err != nil {
			t.Fatal(err)
		}
		parsed = append(parsed, f)
	}

	buf := &bytes.Buffer{}
	put := func(v any) {
		_ = binary.Write(buf, binary.BigEndian, v)
	}
	put([]byte("ttcf"))
	put(uint16(1))
	put(uint16(0))
	put(uint32(len(parsed)))

	// directories first, then all table data
	offset := uint32(12 + 4*len(parsed))
	for _, f := range parsed {
		put(offset)
		offset += uint32(12 + 16*len(f.Tables))
	}
	for _, f := range parsed {
		n := len(f.Tables)
		put(f.ScalerType)
		put(uint16(n))
		put(uint16(0)) // search hints are not used by the reader
		put(uint16(0))
		put(uint16(0))
		for _, tab := range f.Tables {
			put([]byte(tab.Tag))
			put(tab.Checksum)
			put(offset)
			put(uint32(len(tab.Data)))
			offset += tables.Pad4(uint32(len(tab.Data)))
		}
	}
	for _, f := range parsed {
		for _, tab := range f.Tables {
			buf.Write(tab.Data)
			buf.Write(make([]byte, tables.Pad4(uint32(len(tab.Data)))-uint32(len(tab.Data))))
		}
	}
	return buf.Bytes()
}

func TestCollection(t *testing.T) {
	ttc := makeCollection(t, goregular.TTF, goregular.TTF)
	fname := writeFile(t, "go.ttc", ttc)

	star, ok := LoadAsterisk([]string{fname}, 1000, nil)
	if !ok {
		t.Fatal("asterisk not loaded from collection")
	}
	adv, upem := goAsteriskWidth(t)
	if want := math.Round(adv * 1000 / upem); star.Width != want {
		t.Errorf("advance width %g, want %g", star.Width, want)
	}

	// The second member can be extracted as well.
	member, err := collectionMember(bytes.NewReader(ttc), 1)
	if err != nil {
		t.Fatal(err)
	}
	info, err := sfnt.Read(bytes.NewReader(member))
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != uint16(upem) {
		t.Errorf("units per em %d, want %g", info.UnitsPerEm, upem)
	}

	_, err = collectionMember(bytes.NewReader(ttc), 2)
	if !errors.Is(err, errInvalidCollection) {
		t.Errorf("unexpected error %v", err)
	}
	_, err = collectionMember(bytes.NewReader(goregular.TTF), 0)
	if !errors.Is(err, errInvalidCollection) {
		t.Errorf("plain font accepted as collection: %v", err)
	}
}

func TestCandidates(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux", "freebsd"} {
		c := Candidates(goos)
		if len(c) == 0 {
			t.Errorf("%s: no candidates", goos)
		}
	}

	win := Candidates("windows")
	if !strings.HasSuffix(win[0], "msyh.ttc") {
		t.Errorf("unexpected first Windows candidate %q", win[0])
	}
	if c := Candidates("darwin"); !strings.HasSuffix(c[0], "PingFang.ttc") {
		t.Errorf("unexpected first macOS candidate %q", c[0])
	}

	// The result is a copy.
	win[0] = "modified"
	if Candidates("windows")[0] == "modified" {
		t.Error("candidate list can be modified by callers")
	}
}
