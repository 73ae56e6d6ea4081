// Package bitfont holds the packed bitmap engines and the tool-side font
// model shared by the bdf2c command's reader, serializer and proof-sheet
// renderer.
package bitfont

// BoundingBox is the font-wide pixel rectangle every glyph is normalized
// into, as declared by FONTBOUNDINGBOX.
type BoundingBox struct {
	Width, Height int
	XOff, YOff    int
}

// RowBytes is the byte stride of one packed bitmap row.
func (bb BoundingBox) RowBytes() int {
	return (bb.Width + 7) / 8
}

// Glyph is one normalized character cell.
type Glyph struct {
	Name     string
	Encoding int
	Width    int // advance width, after bounding box adjustment
	BBW, BBH int // glyph's own bounding box
	BBX, BBY int

	Shifted  bool // origin differed from the font bounding box
	Overflow bool // shifted placement falls outside the font bounding box
	YOffset  int  // vertical placement applied to Data, kept for inspection

	Data []byte // placed bitmap, RowBytes()*Height bytes
	Raw  []byte // pre-placement bitmap, kept only for overflowing glyphs
}

// Pixel reports whether the placed bitmap has ink at (x, y).
func (g *Glyph) Pixel(bb BoundingBox, x, y int) bool {
	return g.Data[y*bb.RowBytes()+x/8]&(0x80>>uint(x%8)) != 0
}

// Font accumulates glyphs in reading order and derives the three parallel
// tables the serializer writes. Chars is the declared count; len(Glyphs) may
// exceed it when the input carries extra glyph blocks (warned by the reader,
// kept here).
type Font struct {
	Name   string
	BBox   BoundingBox
	Chars  int
	Glyphs []Glyph
}

// AppendGlyph places bm into a fixed BBox.Height-row cell using the glyph's
// vertical offset and appends the result. A positive YOffset pads blank rows
// on top; a negative one drops that many top rows of bm and pads below. The
// cell is always exactly BBox.Height rows, whatever the offset. Overflowing
// glyphs additionally keep a pre-placement copy of bm for dumping.
func (f *Font) AppendGlyph(g Glyph, bm *Bitmap) {
	rb := bm.RowBytes()
	h := bm.Height()
	placed := make([]byte, rb*h)

	top, skip := g.YOffset, 0
	if top < 0 {
		top, skip = 0, -g.YOffset
	}
	if top > h {
		top = h
	}
	for y := top; y < h; y++ {
		src := y - top + skip
		if src >= h {
			break
		}
		copy(placed[y*rb:(y+1)*rb], bm.Row(src))
	}

	g.Data = placed
	if g.Overflow {
		g.Raw = append([]byte(nil), bm.Bytes()...)
	}
	f.Glyphs = append(f.Glyphs, g)
}

// Widths returns the advance width table, one byte per glyph.
func (f *Font) Widths() []uint8 {
	w := make([]uint8, len(f.Glyphs))
	for i, g := range f.Glyphs {
		w[i] = uint8(g.Width)
	}
	return w
}

// Index returns the encoding table, two bytes per glyph, used to resolve
// sparse character sets at runtime.
func (f *Font) Index() []uint16 {
	idx := make([]uint16, len(f.Glyphs))
	for i, g := range f.Glyphs {
		idx[i] = uint16(g.Encoding)
	}
	return idx
}

// BitmapTable returns the concatenated placed glyph bitmaps.
func (f *Font) BitmapTable() []byte {
	out := make([]byte, 0, len(f.Glyphs)*f.BBox.RowBytes()*f.BBox.Height)
	for _, g := range f.Glyphs {
		out = append(out, g.Data...)
	}
	return out
}
