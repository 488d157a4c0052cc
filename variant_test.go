package fontier

import (
	"testing"

	"github.com/npillmayer/fontier/glyphs"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestChooseVariantPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontier")
	defer teardown()
	//
	cases := []struct {
		format TextFormat
		table  *glyphs.Table
	}{
		{TextFormat{}, nil},
		{TextFormat{Font: FontMonospace, Bold: true, Size: SizeH1}, glyphs.Monospace},
		{TextFormat{Font: FontScript, Italic: true}, glyphs.Script},
		{TextFormat{Font: FontSerif, Size: SizeH3}, glyphs.Serif},
		{TextFormat{Size: SizeH1, Bold: true, Italic: true}, glyphs.SansBold},
		{TextFormat{Size: SizeH2}, glyphs.Bold},
		{TextFormat{Size: SizeH3}, glyphs.DoubleStruck},
		{TextFormat{Size: SizeH4, Italic: true}, glyphs.Sans},
		{TextFormat{Size: SizeH5, Bold: true}, glyphs.Italic},
		{TextFormat{Bold: true, Italic: true}, glyphs.BoldItalic},
		{TextFormat{Bold: true}, glyphs.Bold},
		{TextFormat{Italic: true}, glyphs.Italic},
		{TextFormat{Underline: true, Strikethrough: true}, nil},
		{TextFormat{Size: Size(17), Bold: true}, glyphs.Bold},
		{TextFormat{Font: Font(9)}, nil},
	}
	for i, c := range cases {
		if table := ChooseVariant(c.format); table != c.table {
			t.Errorf("case %d (%v): expected table %s, have %s", i, c.format,
				c.table.Name(), table.Name())
		}
	}
}
