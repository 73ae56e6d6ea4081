// Package proof renders a PNG contact sheet of a converted font so the
// normalization result can be inspected by eye: every glyph cell magnified,
// captioned with its encoding, and framed in a color that flags shifted and
// overflowing glyphs.
package proof

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/Ever-Never/bdf2c/internal/bitfont"
)

// Options configures the sheet.
type Options struct {
	Scale int // glyph magnification, default 4
}

const (
	columns = 16
	pad     = 2
)

var (
	background = color.RGBA{0x20, 0x20, 0x20, 0xff}
	okBorder   = color.RGBA{0x30, 0x70, 0x30, 0xff}
	shiftedBdr = color.RGBA{0xc0, 0x90, 0x20, 0xff}
	overflowBr = color.RGBA{0xc0, 0x30, 0x30, 0xff}
)

// Render writes the proof sheet for fnt to w as a PNG.
func Render(w io.Writer, fnt *bitfont.Font, opts *Options) error {
	scale := 4
	if opts != nil && opts.Scale > 0 {
		scale = opts.Scale
	}
	n := len(fnt.Glyphs)
	if n == 0 {
		return fmt.Errorf("no glyphs to render")
	}

	cols := columns
	if n < cols {
		cols = n
	}
	rows := (n + cols - 1) / cols

	face := basicfont.Face7x13
	capH := face.Height + 2
	cellW := fnt.BBox.Width*scale + 2*pad
	if minW := 8 * face.Advance; cellW < minW { // room for the caption text
		cellW = minW
	}
	cellH := fnt.BBox.Height*scale + 2*pad + capH

	dst := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i := range fnt.Glyphs {
		g := &fnt.Glyphs[i]
		cx := (i % cols) * cellW
		cy := (i / cols) * cellH

		drawBorder(dst, image.Rect(cx, cy, cx+cellW, cy+cellH), borderColor(g))

		// rasterize the glyph once at 1:1, then magnify into the cell
		src := image.NewGray(image.Rect(0, 0, fnt.BBox.Width, fnt.BBox.Height))
		for y := 0; y < fnt.BBox.Height; y++ {
			for x := 0; x < fnt.BBox.Width; x++ {
				if g.Pixel(fnt.BBox, x, y) {
					src.SetGray(x, y, color.Gray{Y: 0xff})
				}
			}
		}
		target := image.Rect(cx+pad, cy+pad, cx+pad+fnt.BBox.Width*scale, cy+pad+fnt.BBox.Height*scale)
		draw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), draw.Src, nil)

		d := font.Drawer{
			Dst:  dst,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(cx+pad, cy+pad+fnt.BBox.Height*scale+face.Ascent),
		}
		d.DrawString(caption(g.Encoding))
	}

	return png.Encode(w, dst)
}

func borderColor(g *bitfont.Glyph) color.RGBA {
	switch {
	case g.Overflow:
		return overflowBr
	case g.Shifted:
		return shiftedBdr
	default:
		return okBorder
	}
}

func drawBorder(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, c)
		dst.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, c)
		dst.SetRGBA(r.Max.X-1, y, c)
	}
}

// caption labels a cell with the encoding in hex and, for printable ISO
// 8859-1 code points, the character itself.
func caption(encoding int) string {
	s := fmt.Sprintf("$%02x", encoding)
	if encoding >= 0x20 && encoding <= 0xff {
		if r := charmap.ISO8859_1.DecodeByte(byte(encoding)); strconv.IsPrint(r) {
			s += " " + string(r)
		}
	}
	return s
}
