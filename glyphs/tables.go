package glyphs

import "strings"

// Code points of the Mathematical Alphanumeric Symbols block where an alphabet
// (upper case, lower case or digits) starts.
const (
	mathBoldA         = 0x1D400
	mathBolda         = 0x1D41A
	mathItalicA       = 0x1D434
	mathItalica       = 0x1D44E
	mathBoldItalicA   = 0x1D468
	mathBoldItalica   = 0x1D482
	mathScriptA       = 0x1D49C
	mathScripta       = 0x1D4B6
	mathBoldScriptA   = 0x1D4D0
	mathBoldScripta   = 0x1D4EA
	mathDoubleStruckA = 0x1D538
	mathDoubleStrucka = 0x1D552
	mathSansA         = 0x1D5A0
	mathSansa         = 0x1D5BA
	mathSansBoldA     = 0x1D5D4
	mathSansBolda     = 0x1D5EE
	mathMonospaceA    = 0x1D670
	mathMonospacea    = 0x1D68A
	mathBold0         = 0x1D7CE
	mathDoubleStruck0 = 0x1D7D8
	mathSans0         = 0x1D7E2
	mathSansBold0     = 0x1D7EC
	mathMonospace0    = 0x1D7F6
	fullwidthA        = 0xFF21
	fullwidtha        = 0xFF41
	fullwidth0        = 0xFF10
)

// The glyph tables. Their order of declaration is significant: it is the order
// returned by All() and therefore the precedence for reverse mapping.
var (
	// Bold uses the serif bold letters and digits.
	Bold = makeTable("bold",
		[]run{upper(mathBoldA), lower(mathBolda), digits(mathBold0)}, nil)
	// Italic uses the serif italic letters. There are no italic digits.
	Italic = makeTable("italic",
		[]run{upper(mathItalicA), lower(mathItalica)},
		map[rune]rune{'h': 0x210E})
	BoldItalic = makeTable("bold-italic",
		[]run{upper(mathBoldItalicA), lower(mathBoldItalica)}, nil)
	// Script uses the calligraphic letters, 11 of which live in the Letterlike
	// Symbols block.
	Script = makeTable("script",
		[]run{upper(mathScriptA), lower(mathScripta)},
		map[rune]rune{
			'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B,
			'I': 0x2110, 'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
			'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
		})
	Monospace = makeTable("monospace",
		[]run{upper(mathMonospaceA), lower(mathMonospacea), digits(mathMonospace0)}, nil)
	// Serif is the bold serif look selected by font "serif".
	Serif = makeTable("serif",
		[]run{upper(mathBoldA), lower(mathBolda), digits(mathBold0)}, nil)
	// H1 is a decorative heading table (bold script).
	H1 = makeTable("h1",
		[]run{upper(mathBoldScriptA), lower(mathBoldScripta)}, nil)
	Sans = makeTable("sans",
		[]run{upper(mathSansA), lower(mathSansa), digits(mathSans0)}, nil)
	SansBold = makeTable("sans-bold",
		[]run{upper(mathSansBoldA), lower(mathSansBolda), digits(mathSansBold0)}, nil)
	Fullwidth = makeTable("fullwidth",
		[]run{upper(fullwidthA), lower(fullwidtha), digits(fullwidth0)}, nil)
	DoubleStruck = makeTable("double-struck",
		[]run{upper(mathDoubleStruckA), lower(mathDoubleStrucka), digits(mathDoubleStruck0)},
		map[rune]rune{
			'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119,
			'Q': 0x211A, 'R': 0x211D, 'Z': 0x2124,
		})
)

var registry = []*Table{
	Bold, Italic, BoldItalic, Script, Monospace, Serif, H1, Sans, SansBold,
	Fullwidth, DoubleStruck,
}

// All returns all glyph tables in order of declaration.
func All() []*Table {
	all := make([]*Table, len(registry))
	copy(all, registry)
	return all
}

// Names returns the names of all glyph tables in order of declaration.
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.name
	}
	return names
}

// ByName finds a glyph table by its name. Matching is case-insensitive and
// treats '_' and '-' alike, so "BOLD_ITALIC" will find table "bold-italic".
func ByName(name string) (*Table, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, t := range registry {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}
