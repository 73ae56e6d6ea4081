package bitfont

import "github.com/sirupsen/logrus"

// ShiftRight moves every row of the bitmap shiftX pixels to the right,
// discarding bits pushed past the byte-aligned row width and zero-filling the
// vacated pixels on the left. shiftX of zero is a no-op. Only rightward
// horizontal shifts smaller than the pixel width are supported; a negative or
// too-large shiftX, or any nonzero shiftY, is reported and skipped, leaving
// the bitmap untouched so conversion can continue with unshifted data.
// glyphWidth and glyphHeight only label the diagnostic.
//
// Each output byte combines the two source bytes shiftX/8 positions back,
// walking from the last byte of the row toward the first, so a single pass
// needs no temporary row copy.
func (b *Bitmap) ShiftRight(shiftX, shiftY, glyphWidth, glyphHeight int) {
	if shiftX < 0 || shiftX >= b.width {
		logrus.Warnf("unsupported horizontal shift: glyph w=%d,h=%d (max %d,%d), shiftx=%d, shifty=%d; ignored",
			glyphWidth, glyphHeight, b.width, b.height, shiftX, shiftY)
		return
	}
	if shiftY != 0 {
		logrus.Warnf("unsupported vertical shift: glyph w=%d,h=%d (max %d,%d), shiftx=%d, shifty=%d; ignored",
			glyphWidth, glyphHeight, b.width, b.height, shiftX, shiftY)
		return
	}
	if shiftX == 0 {
		return
	}

	bitShift := uint(shiftX % 8)
	byteShift := shiftX / 8
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		p1 := b.rowBytes - 1 - byteShift
		for p2 := b.rowBytes - 1; p2 >= 0; p2-- {
			var val byte
			if p1 >= 0 {
				val = row[p1]
				if bitShift > 0 {
					val >>= bitShift
					if p1 > 0 {
						val |= row[p1-1] << (8 - bitShift)
					}
				}
				p1--
			}
			row[p2] = val
		}
	}
}
