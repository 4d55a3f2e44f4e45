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

// Package woff writes fonts in the Web Open Font Format, version 1.0.
//
// See https://www.w3.org/TR/WOFF/ for the file format.
package woff

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"

	"seehuhn.de/go/maskfont/internal/tables"
)

const (
	headerSize   = 44
	dirEntrySize = 20
)

// Signature is the first four bytes of every WOFF file.
const Signature = 0x774F4646 // "wOFF"

type fileHeader struct {
	Signature      uint32
	Flavor         uint32
	Length         uint32
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

type dirEntry struct {
	Tag          [4]byte
	Offset       uint32
	CompLength   uint32
	OrigLength   uint32
	OrigChecksum uint32
}

// Encode converts the sfnt font data into WOFF format and writes
// the result to w.
//
// Each table is zlib-compressed when this makes it smaller, and stored
// unchanged otherwise.  No metadata or private data block is written.
func Encode(w io.Writer, sfnt []byte) error {
	font, err := tables.Read(sfnt)
	if err != nil {
		return err
	}

	numTables := len(font.Tables)
	entries := make([]dirEntry, numTables)
	bodies := make([][]byte, numTables)
	offset := uint32(headerSize + dirEntrySize*numTables)
	for i, t := range font.Tables {
		body, err := compress(t.Data)
		if err != nil {
			return err
		}
		bodies[i] = body

		copy(entries[i].Tag[:], t.Tag)
		entries[i].Offset = offset
		entries[i].CompLength = uint32(len(body))
		entries[i].OrigLength = uint32(len(t.Data))
		entries[i].OrigChecksum = t.Checksum
		offset += tables.Pad4(uint32(len(body)))
	}

	hdr := &fileHeader{
		Signature:     Signature,
		Flavor:        font.ScalerType,
		Length:        offset,
		NumTables:     uint16(numTables),
		TotalSfntSize: font.SfntSize(),
		MajorVersion:  1,
	}

	buf := bytes.NewBuffer(make([]byte, 0, offset))
	_ = binary.Write(buf, binary.BigEndian, hdr)
	_ = binary.Write(buf, binary.BigEndian, entries)
	var pad [3]byte
	for _, body := range bodies {
		buf.Write(body)
		n := tables.Pad4(uint32(len(body))) - uint32(len(body))
		buf.Write(pad[:n])
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// compress returns the zlib-compressed version of data, or data itself if
// compression does not make it shorter.
func compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	if buf.Len() >= len(data) {
		return data, nil
	}
	return buf.Bytes(), nil
}
