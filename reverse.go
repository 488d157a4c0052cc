package fontier

import (
	"strings"
	"sync"

	"github.com/npillmayer/fontier/glyphs"
	"golang.org/x/text/unicode/norm"
)

// Denormalize maps styled text back to plain text, as far as possible.
//
// Underline and strikethrough marks are removed, and every character found in one
// of the glyph tables is replaced by its plain counterpart. Other characters pass
// through unchanged. No-break spaces inserted by phrase underlining are kept; use
// a Normalizer with option RestoreSpaces to turn them back into spaces.
func Denormalize(text string) string {
	return defaultNormalizer.Denormalize(text)
}

// ContainsStyledGlyph is a quick check whether text contains characters which
// might stem from styling: combining underline or strikethrough, letterlike
// symbols, mathematical alphanumeric symbols, or halfwidth/fullwidth forms.
//
// It is a hint for offering reverse conversion, not a guarantee that Denormalize
// will change the text.
func ContainsStyledGlyph(text string) bool {
	for _, r := range text {
		if isStyledGlyph(r) {
			return true
		}
	}
	return false
}

func isStyledGlyph(r rune) bool {
	switch {
	case glyphs.IsMark(r):
		return true
	case r >= 0x2100 && r <= 0x214F: // Letterlike Symbols
		return true
	case r >= 0x1D400 && r <= 0x1D7FF: // Mathematical Alphanumeric Symbols
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // Halfwidth and Fullwidth Forms
		return true
	}
	return false
}

// --- Normalizer ------------------------------------------------------------

// Normalizer maps styled text back to plain text.
//
// The inverse index over all glyph tables is shared between all normalizers and
// is built on first use.
type Normalizer struct {
	restoreSpaces bool
	compat        bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// RestoreSpaces lets a normalizer replace no-break spaces by spaces.
func RestoreSpaces() NormalizerOption {
	return func(n *Normalizer) {
		n.restoreSpaces = true
	}
}

// CompatibilityFallback lets a normalizer apply Unicode compatibility
// normalization (NFKC) to characters not found in any glyph table. This covers
// styles fontier does not produce itself, e.g. fraktur or circled letters.
func CompatibilityFallback() NormalizerOption {
	return func(n *Normalizer) {
		n.compat = true
	}
}

// NewNormalizer creates a normalizer. Without options it behaves like Denormalize.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// Denormalize maps styled text back to plain text. See package-level function
// Denormalize.
func (n *Normalizer) Denormalize(text string) string {
	if text == "" {
		return ""
	}
	index := reverseIndex()
	var b strings.Builder
	b.Grow(len(text))
	var pending strings.Builder // unmapped run, for compatibility normalization
	flush := func() {
		if pending.Len() > 0 {
			b.WriteString(norm.NFKC.String(pending.String()))
			pending.Reset()
		}
	}
	for _, r := range text {
		if glyphs.IsMark(r) {
			continue
		}
		if p, ok := index[r]; ok {
			flush()
			b.WriteRune(p)
			continue
		}
		if r == glyphs.NBSP && n.restoreSpaces {
			flush()
			b.WriteByte(' ')
			continue
		}
		if n.compat {
			pending.WriteRune(r)
			continue
		}
		b.WriteRune(r)
	}
	flush()
	return b.String()
}

var (
	inverse     map[rune]rune
	inverseOnce sync.Once
)

// reverseIndex returns the inverse of all glyph tables. It is built once and
// read-only afterwards.
//
// If two tables map different plain characters to the same styled character,
// the table declared first (see glyphs.All) wins.
func reverseIndex() map[rune]rune {
	inverseOnce.Do(func() {
		tables := glyphs.All()
		index := make(map[rune]rune, len(tables)*62)
		for _, table := range tables {
			for _, p := range table.Pairs() {
				if prev, ok := index[p.Styled]; ok {
					if prev != p.Plain {
						T().Errorf("glyph %U of table %s collides with %q, keeping %q",
							p.Styled, table.Name(), p.Plain, prev)
					}
					continue
				}
				index[p.Styled] = p.Plain
			}
		}
		T().Debugf("built reverse index with %d glyphs from %d tables", len(index), len(tables))
		inverse = index
	})
	return inverse
}
