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
	"log"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaults(t *testing.T) {
	var opt *Options
	o := opt.withDefaults()

	if o.Logger != discardLogger {
		t.Error("nil options must use the discard logger")
	}
	o.Logger = nil
	if d := cmp.Diff(&defaultOptions, o); d != "" {
		t.Errorf("unexpected defaults (-want +got):\n%s", d)
	}

	o = (&Options{}).withDefaults()
	o.Logger = nil
	if d := cmp.Diff(&defaultOptions, o); d != "" {
		t.Errorf("zero options differ from nil options (-want +got):\n%s", d)
	}
}

func TestOverrides(t *testing.T) {
	logger := log.New(os.Stderr, "", 0)
	opt := &Options{
		FamilyName: "Hidden",
		Ranges:     []Range{{First: 0xE000, Last: 0xE00F}},
		UnitsPerEm: 2048,
		SpaceWidth: 250,
		Logger:     logger,
	}
	o := opt.withDefaults()

	if o == opt {
		t.Fatal("withDefaults must return a copy")
	}
	if o.FamilyName != "Hidden" || o.UnitsPerEm != 2048 || o.SpaceWidth != 250 {
		t.Errorf("overrides lost: %+v", o)
	}
	if len(o.Ranges) != 1 || o.Ranges[0].Last != 0xE00F {
		t.Errorf("wrong ranges %v", o.Ranges)
	}
	if o.GlyphWidth != 600 || o.SideBearing != 50 || o.Ascent != 800 || o.Descent != -200 {
		t.Error("defaults not applied to unset fields")
	}
	if o.Logger != logger {
		t.Error("logger not kept")
	}
}

func TestValidate(t *testing.T) {
	var opt *Options
	if err := opt.Validate(); err != nil {
		t.Errorf("default options: %v", err)
	}

	bad := []*Options{
		{FamilyName: "Uni\nMask"},
		{FamilyName: "Ünimask"},
		{Descent: 10},
		{UnitsPerEm: 8},
		{UnitsPerEm: 20000},
		{GlyphWidth: -1},
		{SpaceWidth: -300},
		{SideBearing: 40000},
		{Ranges: []Range{{First: 0x20, Last: 0x7E}}},
		{Ranges: []Range{{First: 0xE000, Last: 0x1F000}}},
	}
	for i, opt := range bad {
		err := opt.Validate()
		if !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%d: unexpected error %v", i, err)
		}
	}
}
