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

// Candidates returns the system font files which are searched for an
// asterisk glyph, in order of preference.  The argument is a value of
// runtime.GOOS.
func Candidates(goos string) []string {
	var res []string
	switch goos {
	case "windows":
		res = windowsFonts
	case "darwin", "ios":
		res = darwinFonts
	default:
		res = unixFonts
	}
	return append([]string(nil), res...)
}

var windowsFonts = []string{
	`C:\Windows\Fonts\msyh.ttc`,    // Microsoft YaHei
	`C:\Windows\Fonts\simsun.ttc`,  // SimSun
	`C:\Windows\Fonts\arial.ttf`,   // Arial
	`C:\Windows\Fonts\segoeui.ttf`, // Segoe UI
	`C:\Windows\Fonts\times.ttf`,   // Times New Roman
}

var darwinFonts = []string{
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
}

var unixFonts = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
}
