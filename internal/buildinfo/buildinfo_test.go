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

package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	const mod = "seehuhn.de/go/maskfont"
	cases := []struct {
		version  string
		settings []debug.BuildSetting
		want     string
	}{
		{"v0.1.0", nil, "mkmaskfont (" + mod + " v0.1.0)"},
		{"(devel)", nil, "mkmaskfont"},
		{"", nil, "mkmaskfont"},
		{
			"(devel)",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			"mkmaskfont (" + mod + " 01234567)",
		},
		{
			"(devel)",
			[]debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			"mkmaskfont (" + mod + " abc+dirty)",
		},
	}
	for _, c := range cases {
		info := &debug.BuildInfo{
			Main:     debug.Module{Path: mod, Version: c.version},
			Settings: c.settings,
		}
		if got := describe("mkmaskfont", info); got != c.want {
			t.Errorf("%q: got %q, want %q", c.version, got, c.want)
		}
	}

	if Version(nil) != "" {
		t.Error("nil build info has a version")
	}
}

func TestShort(t *testing.T) {
	s := Short("tool")
	if !strings.HasPrefix(s, "tool") {
		t.Errorf("unexpected version string %q", s)
	}
}
