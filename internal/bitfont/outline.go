package bitfont

// Outline replaces the bitmap with its one-pixel stroke: a pixel is set in
// the result iff it was clear in the input and at least one of its four
// direct neighbors (up, left, right, down, no wraparound) was set. Set input
// pixels always come out clear, so the outline and the input are disjoint bit
// sets. The result is computed into a scratch buffer from an input snapshot;
// later pixels never observe already-written outline pixels.
func (b *Bitmap) Outline() {
	scratch := make([]byte, b.rowBytes*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Pixel(x, y) {
				continue
			}
			if y > 0 && b.Pixel(x, y-1) ||
				x > 0 && b.Pixel(x-1, y) ||
				x < b.width-1 && b.Pixel(x+1, y) ||
				y < b.height-1 && b.Pixel(x, y+1) {
				scratch[y*b.rowBytes+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	copy(b.data, scratch)
}
