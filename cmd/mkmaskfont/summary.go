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

package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/maskfont"
)

func printSummary(b *maskfont.Bundle, results []maskfont.Result) error {
	fmt.Println()

	data := [][]string{{"Format", "File", "Size", "Status"}}
	for _, r := range results {
		status := "ok"
		size := strconv.FormatInt(r.Size, 10)
		if r.Err != nil {
			status = r.Err.Error()
			size = "-"
		}
		data = append(data, []string{r.Format, r.Path, size, status})
	}
	err := pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if err != nil {
		return err
	}

	fmt.Println()
	data = [][]string{{"Range", "Code points", "Characters"}}
	for _, r := range b.Ranges {
		data = append(data, []string{r.String(), strconv.Itoa(r.Len()), rangeLabel(r)})
	}
	err = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, r := range results {
		if r.Err != nil {
			pterm.Warning.Printfln("%s: %v", r.Format, r.Err)
		}
	}
	pterm.Success.Printfln("%s: %d glyphs, %d mapped code points",
		b.FamilyName(), len(b.Glyphs), len(b.CodePoints))
	return nil
}

// rangeLabel describes the characters in a code point range,
// using the Unicode names of the first and last character.
func rangeLabel(r maskfont.Range) string {
	first := runeName(r.First)
	last := runeName(r.Last)
	if first == last {
		return first
	}
	return first + " .. " + last
}

// runeName returns the lower-case Unicode name of c.  Characters from
// ranges without individual names, like the private use area, are
// described by the name of the range.
func runeName(c rune) string {
	name := strings.Trim(runenames.Name(c), "<>")
	if name == "" {
		return fmt.Sprintf("U+%04X", c)
	}
	return strings.ToLower(name)
}

// cssSnippet returns a CSS @font-face rule which loads the successfully
// written web fonts.
func cssSnippet(family string, ranges []maskfont.Range, results []maskfont.Result) string {
	cssFormat := map[string]string{
		"woff2": "woff2",
		"woff":  "woff",
		"otf":   "opentype",
	}

	var sources []string
	for _, format := range []string{"woff2", "woff", "otf"} {
		for _, r := range results {
			if r.Format != format || r.Err != nil {
				continue
			}
			url := filepath.ToSlash(r.Path)
			sources = append(sources,
				fmt.Sprintf("url(%q) format(%q)", url, cssFormat[format]))
		}
	}

	var unicodeRange []string
	for _, r := range ranges {
		unicodeRange = append(unicodeRange, fmt.Sprintf("U+%04X-%04X", r.First, r.Last))
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "@font-face {\n")
	fmt.Fprintf(b, "  font-family: %q;\n", family)
	fmt.Fprintf(b, "  src: %s;\n", strings.Join(sources, ",\n       "))
	fmt.Fprintf(b, "  unicode-range: %s;\n", strings.Join(unicodeRange, ", "))
	fmt.Fprintf(b, "}\n")
	fmt.Fprintf(b, ".masked {\n")
	fmt.Fprintf(b, "  font-family: %q, sans-serif;\n", family)
	fmt.Fprintf(b, "}\n")
	return b.String()
}
