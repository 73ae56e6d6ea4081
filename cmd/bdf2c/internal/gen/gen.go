// Package gen writes the generated Go source for a converted font: the
// width, encoding and bitmap tables, the trailer binding them together, and
// human readable X/_ art comments so the file can be reviewed and hand-edited
// like the BDF it came from.
package gen

import (
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/Ever-Never/bdf2c"
	"github.com/Ever-Never/bdf2c/internal/bitfont"
)

// Generate writes the Go source for font to w. name is used as the package
// name, and the file's header comment carries name drawn in the font itself.
func Generate(w io.Writer, font *bitfont.Font, name string) error {
	var b strings.Builder

	writeHeader(&b, font, name)

	fmt.Fprintf(&b, "package %s\n\n", name)
	fmt.Fprintf(&b, "import %q\n\n", "github.com/Ever-Never/bdf2c")
	b.WriteString("// Font is built from the tables below in init.\nvar Font *bdf2c.Font\n\n")
	b.WriteString("func init() {\n")

	writeWidths(&b, font)
	writeIndex(&b, font)
	writeBitmap(&b, font)

	fmt.Fprintf(&b, "Font = bdf2c.NewFont(%d, %d, %d, widths, index, bitmap)\n}\n",
		font.BBox.Width, font.BBox.Height, font.Chars)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("writing generated source: %w", err)
	}
	return nil
}

// writeHeader draws name using the freshly converted font, so the generated
// file opens with a preview of the font rendering its own name.
func writeHeader(b *strings.Builder, font *bitfont.Font, name string) {
	rt := bdf2c.NewFont(
		uint8(font.BBox.Width), uint8(font.BBox.Height), uint16(font.Chars),
		font.Widths(), font.Index(), font.BitmapTable())
	sd := &bdf2c.StringDrawable{}
	rt.DrawString(sd, 0, 0, name)
	b.WriteString(sd.PrefixString("// "))

	fmt.Fprintf(b, "//\n// Generated by bdf2c from %s\n", font.Name)
	fmt.Fprintf(b, "// FONTBOUNDINGBOX %d %d %d %d\n",
		font.BBox.Width, font.BBox.Height, font.BBox.XOff, font.BBox.YOff)
}

func writeWidths(b *strings.Builder, font *bitfont.Font) {
	b.WriteString("// advance width for each glyph\nwidths := []uint8{\n")
	for _, g := range font.Glyphs {
		fmt.Fprintf(b, "%d, // %q\n", g.Width, g.Name)
	}
	b.WriteString("}\n\n")
}

func writeIndex(b *strings.Builder, font *bitfont.Font) {
	b.WriteString("// encoding for each glyph\nindex := []uint16{\n")
	for _, g := range font.Glyphs {
		fmt.Fprintf(b, "%d, // %q\n", uint16(g.Encoding), g.Name)
	}
	b.WriteString("}\n\n")
}

func writeBitmap(b *strings.Builder, font *bitfont.Font) {
	rb := font.BBox.RowBytes()
	b.WriteString("// packed bitmap for each glyph\nbitmap := []byte{\n")
	for _, g := range font.Glyphs {
		fmt.Fprintf(b, "// %d $%02x '%s'\n", g.Encoding, g.Encoding, g.Name)
		fmt.Fprintf(b, "//\twidth %d, bbx %d, bby %d, bbw %d, bbh %d\n",
			g.Width, g.BBX, g.BBY, g.BBW, g.BBH)
		if g.Overflow {
			b.WriteString("// overflows the font bounding box; pre-placement form:\n")
			for y := 0; y < font.BBox.Height; y++ {
				fmt.Fprintf(b, "//\t%s\n", rowArt(g.Raw[y*rb:(y+1)*rb], font.BBox.Width))
			}
		}
		for y := 0; y < font.BBox.Height; y++ {
			row := g.Data[y*rb : (y+1)*rb]
			for _, v := range row {
				fmt.Fprintf(b, "0b%08b, ", v)
			}
			fmt.Fprintf(b, "// %s\n", rowArt(row, font.BBox.Width))
		}
	}
	b.WriteString("}\n\n")
}

// rowArt renders one packed row as width X/_ characters.
func rowArt(row []byte, width int) string {
	art := make([]byte, width)
	for x := 0; x < width; x++ {
		if row[x/8]&(0x80>>uint(x%8)) != 0 {
			art[x] = 'X'
		} else {
			art[x] = '_'
		}
	}
	return string(art)
}
