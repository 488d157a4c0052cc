package fontier

import "github.com/npillmayer/fontier/glyphs"

// ChooseVariant selects at most one glyph table for a format. A return value
// of nil denotes the identity transformation.
//
// Applying tables sequentially (e.g., bold, then italic) does not work, as a
// character styled by the first table will not be found in the second one.
// ChooseVariant therefore resolves a format to a single table, first match wins:
//
//	font monospace      →  glyphs.Monospace
//	font script         →  glyphs.Script
//	font serif          →  glyphs.Serif
//	size h1             →  glyphs.SansBold
//	size h2             →  glyphs.Bold
//	size h3             →  glyphs.DoubleStruck
//	size h4             →  glyphs.Sans
//	size h5             →  glyphs.Italic
//	bold and italic     →  glyphs.BoldItalic
//	bold                →  glyphs.Bold
//	italic              →  glyphs.Italic
//
// Font choices dominate headings, headings dominate the bold/italic flags.
// Sizes and fonts not listed (including out-of-range values) fall through.
func ChooseVariant(f TextFormat) *glyphs.Table {
	switch f.Font {
	case FontMonospace:
		return glyphs.Monospace
	case FontScript:
		return glyphs.Script
	case FontSerif:
		return glyphs.Serif
	}
	switch f.Size {
	case SizeH1:
		return glyphs.SansBold
	case SizeH2:
		return glyphs.Bold
	case SizeH3:
		return glyphs.DoubleStruck
	case SizeH4:
		return glyphs.Sans
	case SizeH5:
		return glyphs.Italic
	}
	switch {
	case f.Bold && f.Italic:
		return glyphs.BoldItalic
	case f.Bold:
		return glyphs.Bold
	case f.Italic:
		return glyphs.Italic
	}
	return nil
}
