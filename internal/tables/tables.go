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

// Package tables splits an sfnt file into its tables.
// This is the common input of the web font encoders.
package tables

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/sfnt/header"
)

// Table is one table of an sfnt file.
type Table struct {
	Tag      string
	Data     []byte
	Checksum uint32
}

// Font is the decomposed form of an sfnt file.
type Font struct {
	ScalerType uint32
	Tables     []*Table // sorted by tag
}

// Read decomposes the sfnt file given by data.
func Read(data []byte) (*Font, error) {
	r := bytes.NewReader(data)
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}
	if len(info.Toc) == 0 {
		return nil, errors.New("sfnt file has no tables")
	}

	res := &Font{ScalerType: info.ScalerType}
	for tag, rec := range info.Toc {
		if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(data)) {
			return nil, fmt.Errorf("table %q extends beyond the end of the file", tag)
		}
		body, err := info.ReadTableBytes(r, tag)
		if err != nil {
			return nil, err
		}
		res.Tables = append(res.Tables, &Table{
			Tag:      tag,
			Data:     body,
			Checksum: TableChecksum(tag, body),
		})
	}
	slices.SortFunc(res.Tables, func(a, b *Table) int {
		return strings.Compare(a.Tag, b.Tag)
	})
	return res, nil
}

// Map returns the table data keyed by tag.
// The slices are shared with f.
func (f *Font) Map() map[string][]byte {
	res := make(map[string][]byte, len(f.Tables))
	for _, t := range f.Tables {
		res[t.Tag] = t.Data
	}
	return res
}

// SfntSize returns the size of the sfnt file which holds the tables,
// including the table directory and the padding after each table.
func (f *Font) SfntSize() uint32 {
	size := uint32(12 + 16*len(f.Tables))
	for _, t := range f.Tables {
		size += Pad4(uint32(len(t.Data)))
	}
	return size
}

// TableChecksum computes the checksum of an sfnt table.
// For the "head" table, the checkSumAdjustment field is treated as zero.
func TableChecksum(tag string, data []byte) uint32 {
	var sum uint32
	n := len(data)
	for i := 0; i < n; i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		if tag == "head" && i == 8 {
			continue
		}
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// Pad4 rounds n up to the next multiple of 4.
func Pad4(n uint32) uint32 {
	return (n + 3) &^ 3
}
