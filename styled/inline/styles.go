package inline

import (
	"strings"

	"github.com/npillmayer/fontier"
)

// FormatFromTag returns the text format for the content of an HTML element with
// tag name `name`, nested within an element with format `parent`.
// Elements which do not change the inline appearance return `parent` unchanged.
//
// Headings set the size, but keep the style flags of the parent. h6 resets the
// size to normal, as there is no heading table of that size.
func FormatFromTag(name string, parent fontier.TextFormat) fontier.TextFormat {
	f := parent
	switch strings.ToLower(name) {
	case "b", "strong":
		f.Bold = true
	case "i", "em", "cite", "var", "dfn":
		f.Italic = true
	case "u", "ins":
		f.Underline = true
	case "s", "strike", "del":
		f.Strikethrough = true
	case "code", "kbd", "samp", "tt", "pre":
		f.Font = fontier.FontMonospace
	case "h1":
		f.Size = fontier.SizeH1
	case "h2":
		f.Size = fontier.SizeH2
	case "h3":
		f.Size = fontier.SizeH3
	case "h4":
		f.Size = fontier.SizeH4
	case "h5":
		f.Size = fontier.SizeH5
	case "h6":
		f.Size = fontier.SizeNormal
	}
	return f
}

// skipped elements never contribute text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"head":     true,
}
