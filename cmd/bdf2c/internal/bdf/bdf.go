// Package bdf reads BDF (Bitmap Distribution Format) font files and produces
// a bitfont.Font whose glyphs are all normalized into the font bounding box:
// glyph bitmaps are decoded, shifted to the font origin, optionally replaced
// by their outline, and placed vertically into fixed-height cells.
package bdf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/sirupsen/logrus"

	"github.com/Ever-Never/bdf2c/internal/bitfont"
)

// Options configures a single conversion run.
type Options struct {
	// Outline grows the font bounding box by one pixel in each axis and
	// replaces every glyph with its one-pixel stroke variant.
	Outline bool
}

// widthUnset marks a glyph whose advance width has not been established by
// STARTCHAR or DWIDTH yet.
const widthUnset = math.MinInt32

type reader struct {
	opts Options
	font *bitfont.Font
	bm   *bitfont.Bitmap
	seen bitset.BitSet

	// font-level header, collected until CHARS
	fontName string
	bbox     bitfont.BoundingBox

	// current glyph block
	name               string
	encoding           int
	width              int
	bbw, bbh, bbx, bby int
	scanline           int // -1 outside a BITMAP block
}

// Read consumes a whole BDF stream and returns the assembled font. Fatal
// conditions (missing or non-positive FONTBOUNDINGBOX or CHARS, a glyph
// without an established width) return an error; recoverable ones (extra
// glyph blocks, unsupported shifts, overflowing glyphs) are logged and
// conversion continues best-effort.
func Read(r io.Reader, opts Options) (*bitfont.Font, error) {
	rd := &reader{
		opts:     opts,
		name:     "unknown character",
		encoding: -1,
		width:    widthUnset,
		scanline: -1,
	}

	sc := bufio.NewScanner(r)
	curline := 0
	for sc.Scan() {
		curline++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		var err error
		if rd.font == nil {
			err = rd.headerLine(fields)
		} else {
			err = rd.glyphLine(fields, curline)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading bdf: %w", err)
	}
	if rd.font == nil {
		return nil, fmt.Errorf("need to know the number of characters")
	}
	if len(rd.font.Glyphs) < rd.font.Chars {
		logrus.Warnf("font declares %d characters but only %d bitmaps were read", rd.font.Chars, len(rd.font.Glyphs))
	}
	return rd.font, nil
}

// headerLine handles the font-level keywords up to and including CHARS, which
// switches the reader into glyph mode.
func (rd *reader) headerLine(fields []string) error {
	switch strings.ToUpper(fields[0]) {
	case "FONTBOUNDINGBOX":
		rd.bbox.Width = atoi(fields, 1)
		rd.bbox.Height = atoi(fields, 2)
		rd.bbox.XOff = atoi(fields, 3)
		rd.bbox.YOff = atoi(fields, 4)
	case "FONT":
		rd.fontName = field(fields, 1)
	case "CHARS":
		chars := atoi(fields, 1)
		if rd.bbox.Width <= 0 || rd.bbox.Height <= 0 {
			return fmt.Errorf("need to know the character size")
		}
		if chars <= 0 {
			return fmt.Errorf("need to know the number of characters")
		}
		box := rd.bbox
		if rd.opts.Outline { // room for the stroke on every side
			box.Width++
			box.Height++
		}
		rd.font = &bitfont.Font{Name: rd.fontName, BBox: box, Chars: chars}
		rd.bm = bitfont.NewBitmap(box.Width, box.Height)
	}
	return nil
}

// glyphLine handles one line of a STARTCHAR..ENDCHAR block. Inside a BITMAP
// block every line that is not a keyword is a hex scanline.
func (rd *reader) glyphLine(fields []string, curline int) error {
	switch strings.ToUpper(fields[0]) {
	case "STARTCHAR":
		rd.name = field(fields, 1)
		rd.width = rd.font.BBox.Width
	case "ENCODING":
		rd.encoding = atoi(fields, 1)
	case "DWIDTH":
		rd.width = atoi(fields, 1) // the vertical component is ignored
	case "BBX":
		rd.bbw = atoi(fields, 1)
		rd.bbh = atoi(fields, 2)
		rd.bbx = atoi(fields, 3)
		rd.bby = atoi(fields, 4)
	case "BITMAP":
		return rd.startBitmap(curline)
	case "ENDCHAR":
		rd.endChar()
	default:
		if rd.scanline >= 0 {
			rd.bm.DecodeHexRow(rd.scanline, fields[0])
			rd.scanline++
		}
	}
	return nil
}

// startBitmap validates and adjusts the glyph's advance width, records the
// width and encoding table entries and resets the scratch bitmap for the hex
// rows that follow.
func (rd *reader) startBitmap(curline int) error {
	if len(rd.font.Glyphs) == rd.font.Chars {
		logrus.Warnf("too many bitmaps for characters, chars=%d, line=%d", rd.font.Chars, curline)
	}
	if rd.width == widthUnset {
		return fmt.Errorf("character width not specified for %q (line %d)", rd.name, curline)
	}

	// grow the advance to cover the glyph's own bounding box
	if rd.bbx < 0 {
		rd.width -= rd.bbx
		rd.bbx = 0
	}
	if rd.bbx+rd.bbw > rd.width {
		rd.width = rd.bbx + rd.bbw
	}
	if rd.opts.Outline {
		rd.width++
	}

	// the encoding table is uint16, so duplicates are only tracked over that
	// range; the bitset would otherwise grow to the largest encoding seen
	if rd.encoding >= 0 && rd.encoding <= math.MaxUint16 {
		if rd.seen.Test(uint(rd.encoding)) {
			logrus.Warnf("duplicate encoding %d (%s), line=%d", rd.encoding, rd.name, curline)
		}
		rd.seen.Set(uint(rd.encoding))
	}

	if rd.opts.Outline { // keep the first row blank for the stroke
		rd.scanline = 1
	} else {
		rd.scanline = 0
	}
	rd.bm.Clear()
	return nil
}

// endChar normalizes the decoded bitmap and emits the glyph: flag
// computation, horizontal shift to the font origin, outline synthesis, then
// vertical placement into the fixed-height cell.
func (rd *reader) endChar() {
	if rd.scanline < 0 {
		logrus.Debugf("ENDCHAR without BITMAP for %q; skipped", rd.name)
		return
	}
	box := rd.font.BBox
	g := bitfont.Glyph{
		Name:     rd.name,
		Encoding: rd.encoding,
		Width:    rd.width,
		BBW:      rd.bbw,
		BBH:      rd.bbh,
		BBX:      rd.bbx,
		BBY:      rd.bby,
	}

	if rd.bbx != box.XOff {
		g.Shifted = true
		if rd.bbx < box.XOff || rd.bbx+rd.bbw > box.XOff+box.Width {
			g.Overflow = true
		}
	}
	if rd.bby+rd.bbh != box.YOff+box.Height {
		g.Shifted = true
		if rd.bby < box.YOff || rd.bby+rd.bbh > box.YOff+box.Height {
			g.Overflow = true
		}
	}
	if g.Overflow {
		logrus.Warnf("glyph %q (encoding %d) overflows the font bounding box; emitted best-effort", g.Name, g.Encoding)
	}

	if rd.bbx != box.XOff {
		rd.bm.ShiftRight(rd.bbx-box.XOff, 0, rd.bbw, rd.bbh)
	}
	if rd.opts.Outline {
		rd.bm.ShiftRight(1, 0, rd.bbw, rd.bbh)
		rd.bm.Outline()
	}

	g.YOffset = box.Height - (rd.bby - box.YOff + rd.bbh)
	rd.font.AppendGlyph(g, rd.bm)

	rd.scanline = -1
	rd.width = widthUnset
}

// atoi reads an optional integer field with C atoi semantics: missing or
// malformed input is zero.
func atoi(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	n, _ := strconv.Atoi(fields[i])
	return n
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
