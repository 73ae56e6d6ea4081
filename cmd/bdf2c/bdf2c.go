// bdf2c is a commandline tool for converting BDF bitmap fonts into Go source
// files with packed bitmap tables.
//
// The Bitmap Distribution Format (BDF) stores a bitmap font as a
// human-readable text file. bdf2c normalizes every glyph into the font's
// bounding box and emits a Go package exposing the font's width, encoding and
// bitmap tables:
//
//	bdf2c -i myfont.bdf -o myfont.go -n myfont
//
// Pass -O to generate the outlined (1-pixel stroke) variant of the font, and
// -p proof.png to additionally write a PNG proof sheet of every converted
// glyph for visual inspection.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ever-Never/bdf2c/cmd/bdf2c/internal/bdf"
	"github.com/Ever-Never/bdf2c/cmd/bdf2c/internal/gen"
	"github.com/Ever-Never/bdf2c/cmd/bdf2c/internal/proof"
)

var (
	inName    = flag.String("i", "", "BDF font file to read (default stdin)")
	outName   = flag.String("o", "", "Go source file to create (default stdout)")
	fontName  = flag.String("n", "font", "name of the generated font package")
	outline   = flag.Bool("O", false, "create an outline variant of the font")
	proofName = flag.String("p", "", "PNG proof sheet to create")
	proofZoom = flag.Int("s", 4, "proof sheet magnification")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	in := os.Stdin
	if *inName != "" {
		f, err := os.Open(*inName)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	font, err := bdf.Read(in, bdf.Options{Outline: *outline})
	if err != nil {
		return fmt.Errorf("error parsing font: %w", err)
	}

	out := os.Stdout
	if *outName != "" {
		f, err := os.Create(*outName)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := gen.Generate(out, font, *fontName); err != nil {
		return err
	}
	if *outName != "" {
		fmt.Fprintln(os.Stderr, "Created package file:", *outName)
	}

	if *proofName != "" {
		f, err := os.Create(*proofName)
		if err != nil {
			return fmt.Errorf("failed to create proof sheet: %w", err)
		}
		defer f.Close()
		if err := proof.Render(f, font, &proof.Options{Scale: *proofZoom}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Created proof sheet:", *proofName)
	}
	return nil
}
