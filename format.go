package fontier

import (
	"fmt"
	"strings"
)

// Size is a pseudo text size. Unicode text has no size attribute, therefore
// headings are rendered with visually distinct glyph tables instead.
type Size uint8

// Text sizes
const (
	SizeNormal Size = iota
	SizeH1
	SizeH2
	SizeH3
	SizeH4
	SizeH5
)

var sizeNames = [...]string{"normal", "h1", "h2", "h3", "h4", "h5"}

func (s Size) String() string {
	if int(s) < len(sizeNames) {
		return sizeNames[s]
	}
	return fmt.Sprintf("Size(%d)", s)
}

// ParseSize returns the size for a name like "h2". Unknown names result in
// SizeNormal, as do the empty string and "h6".
func ParseSize(name string) Size {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sizeNames {
		if n == name {
			return Size(i)
		}
	}
	return SizeNormal
}

// MarshalText is part of interface encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if int(s) >= len(sizeNames) {
		return []byte(sizeNames[SizeNormal]), nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
// It never fails; unknown sizes are treated as SizeNormal.
func (s *Size) UnmarshalText(text []byte) error {
	*s = ParseSize(string(text))
	return nil
}

// Font is a pseudo font family.
type Font uint8

// Font families
const (
	FontNormal Font = iota
	FontSerif
	FontMonospace
	FontScript
)

var fontNames = [...]string{"normal", "serif", "monospace", "script"}

func (f Font) String() string {
	if int(f) < len(fontNames) {
		return fontNames[f]
	}
	return fmt.Sprintf("Font(%d)", f)
}

// ParseFont returns the font for a name like "monospace". Unknown names result in
// FontNormal.
func ParseFont(name string) Font {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fontNames {
		if n == name {
			return Font(i)
		}
	}
	return FontNormal
}

// MarshalText is part of interface encoding.TextMarshaler.
func (f Font) MarshalText() ([]byte, error) {
	if int(f) >= len(fontNames) {
		return []byte(fontNames[FontNormal]), nil
	}
	return []byte(f.String()), nil
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
// It never fails; unknown fonts are treated as FontNormal.
func (f *Font) UnmarshalText(text []byte) error {
	*f = ParseFont(string(text))
	return nil
}

// TextFormat describes the styling requested for a conversion.
//
// The zero value is a valid format and selects the identity transformation.
// TextFormat is a value type; the functions of this package never modify it.
type TextFormat struct {
	Bold            bool `yaml:"bold,omitempty"`
	Italic          bool `yaml:"italic,omitempty"`
	Underline       bool `yaml:"underline,omitempty"`
	UnderlinePhrase bool `yaml:"underline_phrase,omitempty"` // underline across spaces
	Strikethrough   bool `yaml:"strikethrough,omitempty"`
	Size            Size `yaml:"size,omitempty"`
	Font            Font `yaml:"font,omitempty"`
}

// IsPlain is true if f does not request any styling.
func (f TextFormat) IsPlain() bool {
	return f == TextFormat{}
}

// Equals is true if f and other look identical. Out-of-range sizes and fonts are
// considered to be normal.
func (f TextFormat) Equals(other TextFormat) bool {
	return f.normalized() == other.normalized()
}

func (f TextFormat) normalized() TextFormat {
	if int(f.Size) >= len(sizeNames) {
		f.Size = SizeNormal
	}
	if int(f.Font) >= len(fontNames) {
		f.Font = FontNormal
	}
	return f
}

// String returns an informational string for a format, e.g. "b+i+u/h2/serif".
// Clients must not rely on the format of the string.
func (f TextFormat) String() string {
	var flags []string
	if f.Bold {
		flags = append(flags, "b")
	}
	if f.Italic {
		flags = append(flags, "i")
	}
	if f.Underline {
		flags = append(flags, "u")
	}
	if f.UnderlinePhrase {
		flags = append(flags, "U")
	}
	if f.Strikethrough {
		flags = append(flags, "s")
	}
	str := "plain"
	if len(flags) > 0 {
		str = strings.Join(flags, "+")
	}
	return str + "/" + f.Size.String() + "/" + f.Font.String()
}

// Merge returns a format with every flag set which is set in f or other.
// Size and font of other win if they are not normal.
func (f TextFormat) Merge(other TextFormat) TextFormat {
	f.Bold = f.Bold || other.Bold
	f.Italic = f.Italic || other.Italic
	f.Underline = f.Underline || other.Underline
	f.UnderlinePhrase = f.UnderlinePhrase || other.UnderlinePhrase
	f.Strikethrough = f.Strikethrough || other.Strikethrough
	if other.Size != SizeNormal {
		f.Size = other.Size
	}
	if other.Font != FontNormal {
		f.Font = other.Font
	}
	return f
}
