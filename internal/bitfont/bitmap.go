package bitfont

// Bitmap is a row-major, most-significant-bit-first packed monochrome pixel
// buffer with byte-aligned rows. The backing store is allocated with twice
// the nominal capacity: the reader reuses one Bitmap for every glyph in a
// font, and glyphs whose declared bounding box spills past the font bounding
// box decode into the headroom instead of out of bounds. ShiftRight relies on
// the same invariant, see shift.go.
type Bitmap struct {
	width    int
	height   int
	rowBytes int
	data     []byte
}

// NewBitmap allocates a width x height bitmap, rounded up to whole bytes per
// row, with the doubled capacity described on the type.
func NewBitmap(width, height int) *Bitmap {
	rb := (width + 7) / 8
	return &Bitmap{
		width:    width,
		height:   height,
		rowBytes: rb,
		data:     make([]byte, rb*height*2),
	}
}

func (b *Bitmap) Width() int    { return b.width }
func (b *Bitmap) Height() int   { return b.height }
func (b *Bitmap) RowBytes() int { return b.rowBytes }

// Row returns the nominal bytes of row y, aliasing the backing store.
func (b *Bitmap) Row(y int) []byte {
	return b.data[y*b.rowBytes : (y+1)*b.rowBytes]
}

// Bytes returns the nominal region, aliasing the backing store.
func (b *Bitmap) Bytes() []byte {
	return b.data[:b.rowBytes*b.height]
}

// Clear zeroes the buffer so it can be reused for the next glyph.
func (b *Bitmap) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Pixel reports whether the pixel at (x, y) is set.
func (b *Bitmap) Pixel(x, y int) bool {
	return b.data[y*b.rowBytes+x/8]&(0x80>>uint(x%8)) != 0
}

// SetPixel sets the pixel at (x, y).
func (b *Bitmap) SetPixel(x, y int) {
	b.data[y*b.rowBytes+x/8] |= 0x80 >> uint(x%8)
}

// hexVal converts one hex digit. Input outside 0-9A-Fa-f produces garbage
// values, not an error; BITMAP lines are not validated.
func hexVal(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c <= 'F':
		return c - 'A' + 10
	default:
		return c - 'a' + 10
	}
}

// DecodeHexRow decodes one BITMAP scanline of hex digit pairs into row y. An
// odd trailing nibble becomes a final single-nibble byte value. Rows outside
// the bitmap and bytes past the row stride are dropped; over-tall and
// over-wide glyphs are flagged as overflowing elsewhere and emitted
// best-effort.
func (b *Bitmap) DecodeHexRow(y int, line string) {
	if y < 0 || y >= b.height {
		return
	}
	row := b.Row(y)
	j := 0
	for i := 0; i < len(line) && j < b.rowBytes; i, j = i+2, j+1 {
		v := hexVal(line[i])
		if i+1 < len(line) {
			v = v<<4 | hexVal(line[i+1])
		}
		row[j] = v
	}
}
