// Package bdf2c provides the runtime font type backing the Go source files
// generated by cmd/bdf2c. A generated package builds one Font from its packed
// tables in init() and exposes it as a package variable; this package knows
// how to index and draw those tables.
package bdf2c

import "strings"

// Font is a fixed-cell bitmap font: three parallel tables plus the trailer
// values a renderer needs to compute row strides. Each glyph occupies
// ceil(Width/8)*Height bytes of Bitmap, rows packed most-significant-bit
// first.
type Font struct {
	Width  uint8  // font bounding box width in pixels
	Height uint8  // font bounding box height in pixels
	Chars  uint16 // declared glyph count

	Widths []uint8  // advance width per glyph
	Index  []uint16 // encoding per glyph; sparse, non-contiguous sets allowed
	Bitmap []byte   // concatenated glyph cells

	lookup map[uint16]int
}

// NewFont binds the three tables and the trailer together.
func NewFont(width, height uint8, chars uint16, widths []uint8, index []uint16, bitmap []byte) *Font {
	return &Font{
		Width:  width,
		Height: height,
		Chars:  chars,
		Widths: widths,
		Index:  index,
		Bitmap: bitmap,
	}
}

func (f *Font) rowBytes() int {
	return (int(f.Width) + 7) / 8
}

// GlyphIndex returns the table position of the glyph for encoding, or -1 if
// the font has no such glyph. The first table entry wins when a font carries
// duplicate encodings.
func (f *Font) GlyphIndex(encoding uint16) int {
	if f.lookup == nil {
		f.lookup = make(map[uint16]int, len(f.Index))
		for i := len(f.Index) - 1; i >= 0; i-- {
			f.lookup[f.Index[i]] = i
		}
	}
	i, ok := f.lookup[encoding]
	if !ok {
		return -1
	}
	return i
}

// Pixel reports whether glyph i has ink at (x, y).
func (f *Font) Pixel(i, x, y int) bool {
	stride := f.rowBytes()
	off := i*stride*int(f.Height) + y*stride + x/8
	if off < 0 || off >= len(f.Bitmap) {
		return false
	}
	return f.Bitmap[off]&(0x80>>uint(x%8)) != 0
}

// Drawable is any surface DrawString can set pixels on.
type Drawable interface {
	SetPixel(x, y int)
}

// DrawRune draws the glyph for r at (x, y) and returns its advance width.
// Runes the font has no glyph for draw nothing and advance zero.
func (f *Font) DrawRune(d Drawable, x, y int, r rune) int {
	i := f.GlyphIndex(uint16(r))
	if i < 0 {
		return 0
	}
	for yy := 0; yy < int(f.Height); yy++ {
		for xx := 0; xx < int(f.Width); xx++ {
			if f.Pixel(i, xx, yy) {
				d.SetPixel(x+xx, y+yy)
			}
		}
	}
	if i < len(f.Widths) {
		return int(f.Widths[i])
	}
	return int(f.Width)
}

// DrawString draws s starting at (x, y), advancing per glyph, and returns the
// final pen position.
func (f *Font) DrawString(d Drawable, x, y int, s string) int {
	for _, r := range s {
		x += f.DrawRune(d, x, y, r)
	}
	return x
}

// StringDrawable collects pixels into X/_ art, one line per pixel row. The
// generator uses it to draw the font's own name into the header comment of
// the file it emits.
type StringDrawable struct {
	lines [][]byte
}

func (s *StringDrawable) SetPixel(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	for len(s.lines) <= y {
		s.lines = append(s.lines, nil)
	}
	for len(s.lines[y]) <= x {
		s.lines[y] = append(s.lines[y], '_')
	}
	s.lines[y][x] = 'X'
}

func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the collected art with prefix prepended to every line.
func (s *StringDrawable) PrefixString(prefix string) string {
	var b strings.Builder
	for _, ln := range s.lines {
		b.WriteString(prefix)
		b.Write(ln)
		b.WriteByte('\n')
	}
	return b.String()
}
