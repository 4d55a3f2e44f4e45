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
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/header"
)

// openFont reads a TrueType or OpenType font file.
// For font collections, the first font in the collection is used.
// The file is closed before the function returns.
func openFont(fname string) (*sfnt.Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var magic [4]byte
	_, err = fd.ReadAt(magic[:], 0)
	if err != nil {
		return nil, err
	}
	if string(magic[:]) == "ttcf" {
		data, err := collectionMember(fd, 0)
		if err != nil {
			return nil, err
		}
		return sfnt.Read(bytes.NewReader(data))
	}
	return sfnt.Read(fd)
}

var errInvalidCollection = errors.New("invalid font collection")

const (
	maxCollectionTables = 1024
	maxTableSize        = 1 << 28
)

// collectionMember extracts font number idx from a TrueType collection
// and returns the member as a stand-alone sfnt file.
func collectionMember(r io.ReaderAt, idx int) ([]byte, error) {
	var ttcHeader struct {
		Tag          [4]byte
		MajorVersion uint16
		MinorVersion uint16
		NumFonts     uint32
	}
	err := binary.Read(io.NewSectionReader(r, 0, 12), binary.BigEndian, &ttcHeader)
	if err != nil {
		return nil, err
	}
	if string(ttcHeader.Tag[:]) != "ttcf" {
		return nil, errInvalidCollection
	}
	if idx < 0 || uint32(idx) >= ttcHeader.NumFonts {
		return nil, fmt.Errorf("%w: font %d not found (collection has %d fonts)",
			errInvalidCollection, idx, ttcHeader.NumFonts)
	}

	var memberOffset uint32
	err = binary.Read(io.NewSectionReader(r, 12+4*int64(idx), 4), binary.BigEndian, &memberOffset)
	if err != nil {
		return nil, err
	}

	var dir struct {
		ScalerType    uint32
		NumTables     uint16
		SearchRange   uint16
		EntrySelector uint16
		RangeShift    uint16
	}
	err = binary.Read(io.NewSectionReader(r, int64(memberOffset), 12), binary.BigEndian, &dir)
	if err != nil {
		return nil, err
	}
	if dir.NumTables == 0 || dir.NumTables > maxCollectionTables {
		return nil, fmt.Errorf("%w: %d tables", errInvalidCollection, dir.NumTables)
	}

	type record struct {
		Tag      [4]byte
		CheckSum uint32
		Offset   uint32
		Length   uint32
	}
	records := make([]record, dir.NumTables)
	recordsSize := 16 * int64(dir.NumTables)
	err = binary.Read(io.NewSectionReader(r, int64(memberOffset)+12, recordsSize), binary.BigEndian, records)
	if err != nil {
		return nil, err
	}

	tables := make(map[string][]byte, len(records))
	for _, rec := range records {
		if rec.Length > maxTableSize {
			return nil, fmt.Errorf("%w: table %q too large",
				errInvalidCollection, rec.Tag[:])
		}
		body := make([]byte, rec.Length)
		_, err := r.ReadAt(body, int64(rec.Offset))
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", rec.Tag[:], err)
		}
		tables[string(rec.Tag[:])] = body
	}

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, dir.ScalerType, tables)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
