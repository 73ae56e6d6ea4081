package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ever-Never/bdf2c/internal/bitfont"
)

func letterAFont() *bitfont.Font {
	return &bitfont.Font{
		Name:  "-misc-fixed-medium",
		BBox:  bitfont.BoundingBox{Width: 8, Height: 13, XOff: 0, YOff: -2},
		Chars: 1,
		Glyphs: []bitfont.Glyph{{
			Name:     "A",
			Encoding: 65,
			Width:    8,
			BBW:      8, BBH: 13, BBX: 0, BBY: -2,
			Data: []byte{0x00, 0x38, 0x7C, 0xC6, 0xC6, 0xC6, 0xFE, 0xC6, 0xC6, 0xC6, 0xC6, 0x00, 0x00},
		}},
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, letterAFont(), "font"); err != nil {
		t.Fatal(err)
	}
	src := buf.String()

	for _, want := range []string{
		"package font",
		`import "github.com/Ever-Never/bdf2c"`,
		"widths := []uint8{",
		"index := []uint16{",
		"bitmap := []byte{",
		"// 65 $41 'A'",
		"bdf2c.NewFont(8, 13, 1, widths, index, bitmap)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}

	// 0x38 renders as the X/_ art row of the letter's top bar
	if !strings.Contains(src, "__XXX___") {
		t.Errorf("generated source missing glyph art:\n%s", src)
	}
}

func TestGenerateSelfPreview(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, letterAFont(), "A"); err != nil {
		t.Fatal(err)
	}

	// the header draws the name with the font itself; the first art line of
	// 'A' is its top bar, prefixed as a comment
	if !strings.Contains(buf.String(), "// __XXX\n") {
		t.Errorf("missing self-rendered header:\n%s", buf.String())
	}
}

func TestGenerateOverflowDump(t *testing.T) {
	f := letterAFont()
	f.Glyphs[0].Overflow = true
	f.Glyphs[0].Raw = f.Glyphs[0].Data

	var buf bytes.Buffer
	if err := Generate(&buf, f, "font"); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "pre-placement form") {
		t.Errorf("missing overflow dump:\n%s", buf.String())
	}
}

func TestRowArt(t *testing.T) {
	if got := rowArt([]byte{0b10100001, 0b10000000}, 9); got != "X_X____XX" {
		t.Errorf("unexpected art %q", got)
	}
}
