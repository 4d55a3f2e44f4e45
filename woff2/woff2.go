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

// Package woff2 writes fonts in the Web Open Font Format, version 2.0.
//
// All tables are stored with the null transform.  This is the only option
// for CFF-based fonts, and allowed for TrueType fonts.
// See https://www.w3.org/TR/WOFF2/ for the file format.
package woff2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/andybalholm/brotli"

	"seehuhn.de/go/maskfont/internal/tables"
)

// Signature is the first four bytes of every WOFF2 file.
const Signature = 0x774F4632 // "wOF2"

const headerSize = 48

type fileHeader struct {
	Signature           uint32
	Flavor              uint32
	Length              uint32
	NumTables           uint16
	Reserved            uint16
	TotalSfntSize       uint32
	TotalCompressedSize uint32
	MajorVersion        uint16
	MinorVersion        uint16
	MetaOffset          uint32
	MetaLength          uint32
	MetaOrigLength      uint32
	PrivOffset          uint32
	PrivLength          uint32
}

// Encode converts the sfnt font data into WOFF2 format and writes
// the result to w.
func Encode(w io.Writer, sfnt []byte) error {
	font, err := tables.Read(sfnt)
	if err != nil {
		return err
	}
	for _, t := range font.Tables {
		if t.Tag == "glyf" || t.Tag == "loca" {
			// With the null transform, the transform version bits
			// for these two tables must be 3.
			return errTrueTypeOutlines
		}
	}

	dir := &bytes.Buffer{}
	payload := &bytes.Buffer{}
	bw := brotli.NewWriterLevel(payload, brotli.BestCompression)
	for _, t := range font.Tables {
		if idx, ok := knownTagIndex[t.Tag]; ok {
			dir.WriteByte(byte(idx))
		} else {
			dir.WriteByte(63)
			dir.WriteString(t.Tag)
		}
		dir.Write(AppendUIntBase128(nil, uint32(len(t.Data))))

		_, err = bw.Write(t.Data)
		if err != nil {
			return err
		}
	}
	err = bw.Close()
	if err != nil {
		return err
	}

	length := uint32(headerSize + dir.Len() + payload.Len())
	padded := tables.Pad4(length)
	hdr := &fileHeader{
		Signature:           Signature,
		Flavor:              font.ScalerType,
		Length:              padded,
		NumTables:           uint16(len(font.Tables)),
		TotalSfntSize:       font.SfntSize(),
		TotalCompressedSize: uint32(payload.Len()),
		MajorVersion:        1,
	}

	buf := bytes.NewBuffer(make([]byte, 0, padded))
	_ = binary.Write(buf, binary.BigEndian, hdr)
	buf.Write(dir.Bytes())
	buf.Write(payload.Bytes())
	var pad [3]byte
	buf.Write(pad[:padded-length])

	_, err = w.Write(buf.Bytes())
	return err
}

var errTrueTypeOutlines = errors.New("woff2: glyf/loca tables are not supported")

// AppendUIntBase128 appends the UIntBase128 encoding of x to buf.
// The encoding uses big-endian groups of 7 bits, where the high bit
// of every byte except the last one is set.  No leading zero bytes
// are written.
func AppendUIntBase128(buf []byte, x uint32) []byte {
	var tmp [5]byte
	i := len(tmp) - 1
	tmp[i] = byte(x & 0x7F)
	for x >>= 7; x > 0; x >>= 7 {
		i--
		tmp[i] = byte(x&0x7F) | 0x80
	}
	return append(buf, tmp[i:]...)
}

// knownTags lists the tags which can be stored in the flags byte of a
// table directory entry.
var knownTags = [63]string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca", "prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern", "LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS", "GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL", "SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar", "fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar", "mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat", "Gloc", "Feat", "Sill",
}

var knownTagIndex = func() map[string]int {
	res := make(map[string]int, len(knownTags))
	for i, tag := range knownTags {
		res[tag] = i
	}
	return res
}()
