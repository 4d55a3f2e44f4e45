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

// Mkmaskfont generates a font which shows every character of the Unicode
// private use area, and of the rare Hangul syllables, as an asterisk.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"seehuhn.de/go/maskfont"
	"seehuhn.de/go/maskfont/internal/buildinfo"
)

const unitsPerEm = 1000

// defaultOutDir is interpreted relative to the current working directory.
const defaultOutDir = "fonts"

// formats lists the files written by the tool.
var formats = []string{"otf", "woff", "woff2"}

func main() {
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	outDir, ok := outputDir(flag.Args())
	if !ok {
		flag.Usage()
		os.Exit(1)
	}

	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(os.Stderr, "mkmaskfont: %v\n\n%s", p, debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(outDir); err != nil {
		fmt.Fprintln(os.Stderr, "mkmaskfont:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "mkmaskfont - generate a font which masks private use characters\n")
	fmt.Fprintf(w, "%s\n\n", buildinfo.Short("mkmaskfont"))
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  mkmaskfont [outdir]\n\n")
	fmt.Fprintf(w, "Arguments:\n")
	fmt.Fprintf(w, "  outdir   directory for the font files\n")
	fmt.Fprintf(w, "           (default %q in the current directory)\n", defaultOutDir)
}

// outputDir returns the output directory given on the command line.
// The second return value is false if there are too many arguments.
func outputDir(args []string) (string, bool) {
	switch len(args) {
	case 0:
		return defaultOutDir, true
	case 1:
		return args[0], true
	default:
		return "", false
	}
}

func run(outDir string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	logger := log.New(os.Stdout, "", 0)
	logger.Print(buildinfo.Short("mkmaskfont"))

	opt := &maskfont.Options{
		UnitsPerEm: unitsPerEm,
		Logger:     logger,
	}

	star, ok := maskfont.LoadAsterisk(maskfont.Candidates(runtime.GOOS), unitsPerEm, logger)
	if !ok {
		star = maskfont.CrossGlyph(600)
	}

	bundle, err := maskfont.Assemble(star, opt)
	if err != nil {
		return err
	}

	results := bundle.WriteFiles(outDir, formats)
	err = printSummary(bundle, results)
	if err != nil {
		return err
	}

	written := 0
	for _, r := range results {
		if r.Err == nil {
			written++
		}
	}
	if written == 0 {
		// Write failures are reported in the summary and do not change
		// the exit status.
		return nil
	}

	fmt.Println()
	fmt.Println("Use the font in a web page like this:")
	fmt.Println()
	fmt.Print(cssSnippet(bundle.FamilyName(), bundle.Ranges, results))
	return nil
}
