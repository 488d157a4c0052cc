package fontier

import (
	"strings"
	"unicode"

	"github.com/npillmayer/fontier/glyphs"
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	skipSpaces bool
}

func makeOptions(opts []Option) options {
	o := options{skipSpaces: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// SkipSpaces controls whether whitespace characters receive combining marks.
// The default is to skip them.
func SkipSpaces(skip bool) Option {
	return func(o *options) {
		o.skipSpaces = skip
	}
}

// Combining selects the combining marks to apply with ApplyVariant.
type Combining struct {
	Underline     bool
	Strikethrough bool
}

// Convert styles text according to format f.
//
// At most one glyph table is applied to the text, as selected by ChooseVariant.
// Characters not covered by the table pass through unchanged. Afterwards
// combining marks are appended:
//
// If f.UnderlinePhrase is set, spaces are replaced by no-break spaces and every
// character except other whitespace receives an underline mark, giving a
// continuous underline across words. Otherwise, if f.Underline is set, every
// non-whitespace character receives an underline mark.
//
// If f.Strikethrough is set, every character of the intermediate result receives
// a strikethrough mark. Whitespace is skipped unless option SkipSpaces(false) is
// given or phrase underlining has been applied; in the latter case the no-break
// spaces are struck as well.
//
// Convert never fails and never modifies its input.
func Convert(text string, f TextFormat, opts ...Option) string {
	if text == "" {
		return ""
	}
	o := makeOptions(opts)
	out := mapString(text, ChooseVariant(f))
	if f.UnderlinePhrase {
		out = underlinePhrase(out)
	} else if f.Underline {
		out = appendMark(out, glyphs.Underline, true)
	}
	if f.Strikethrough {
		skip := o.skipSpaces
		if f.UnderlinePhrase {
			skip = false
		}
		out = appendMark(out, glyphs.Strikethrough, skip)
	}
	return out
}

// ApplyVariant maps text with a given glyph table, then appends the combining
// marks requested by c. It is intended for clients which already know which
// table they want. A nil table is the identity.
//
// Both marks honour option SkipSpaces (default true). There is no phrase mode.
func ApplyVariant(text string, table *glyphs.Table, c Combining, opts ...Option) string {
	if text == "" {
		return ""
	}
	o := makeOptions(opts)
	out := mapString(text, table)
	if c.Underline {
		out = appendMark(out, glyphs.Underline, o.skipSpaces)
	}
	if c.Strikethrough {
		out = appendMark(out, glyphs.Strikethrough, o.skipSpaces)
	}
	return out
}

// --- Helpers ---------------------------------------------------------------

// mapString maps every code point of s through table.
func mapString(s string, table *glyphs.Table) string {
	if table == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		b.WriteRune(table.Map(r))
	}
	return b.String()
}

// appendMark appends mark after every code point of s, optionally leaving
// whitespace untouched.
func appendMark(s string, mark rune, skipSpaces bool) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		b.WriteRune(r)
		if skipSpaces && isSpace(r) {
			continue
		}
		b.WriteRune(mark)
	}
	return b.String()
}

// underlinePhrase underlines every code point of s. Spaces are replaced by a
// no-break space and underlined as well, any other whitespace is left alone.
func underlinePhrase(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteRune(glyphs.NBSP)
			b.WriteRune(glyphs.Underline)
		case isSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(r)
			b.WriteRune(glyphs.Underline)
		}
	}
	return b.String()
}

// isSpace reports whitespace characters: the ASCII control whitespace, the
// Unicode space separators (including NBSP), line and paragraph separators and
// the byte order mark. U+0085 (NEL) is not considered whitespace.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
