package glyphs

import (
	"fmt"
	"sort"
	"strings"
)

// Combining marks and spacing characters used for decorating styled text.
const (
	Underline     rune = '\u0332' // COMBINING LOW LINE
	Strikethrough rune = '\u0336' // COMBINING LONG STROKE OVERLAY
	NBSP          rune = '\u00A0' // NO-BREAK SPACE
)

// IsMark is a predicate for the combining marks of this package.
func IsMark(r rune) bool {
	return r == Underline || r == Strikethrough
}

// Table maps plain characters to styled characters of a single visual variant.
//
// A table is immutable. Each plain character maps to at most one styled character;
// characters not present in a table are expected to pass through unchanged.
type Table struct {
	name   string
	glyphs map[rune]rune
	plain  []rune // sorted keys of glyphs
}

// Name returns the identifying name of a table, e.g. "bold".
func (t *Table) Name() string {
	if t == nil {
		return "identity"
	}
	return t.name
}

// Lookup returns the styled character for a plain character r. The second return
// value is false if r is not part of the table's domain.
func (t *Table) Lookup(r rune) (rune, bool) {
	if t == nil {
		return r, false
	}
	s, ok := t.glyphs[r]
	return s, ok
}

// Map returns the styled character for r, or r itself if the table has no
// mapping for it. A nil table is the identity.
func (t *Table) Map(r rune) rune {
	if s, ok := t.Lookup(r); ok {
		return s
	}
	return r
}

// Len returns the number of mappings of a table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.plain)
}

// Pair is a single mapping of a table.
type Pair struct {
	Plain  rune
	Styled rune
}

// Pairs returns a copy of all mappings of a table, sorted by plain character.
func (t *Table) Pairs() []Pair {
	if t == nil {
		return nil
	}
	pairs := make([]Pair, len(t.plain))
	for i, r := range t.plain {
		pairs[i] = Pair{Plain: r, Styled: t.glyphs[r]}
	}
	return pairs
}

// Sample returns the styled version of s, useful for displaying a table to users.
func (t *Table) Sample(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		b.WriteRune(t.Map(r))
	}
	return b.String()
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(%s, %d glyphs)", t.Name(), t.Len())
}

// --- Table construction ----------------------------------------------------

// run is a contiguous range [from…to] of plain characters which map to
// consecutive code points starting at base.
type run struct {
	from, to rune
	base     rune
}

func upper(base rune) run  { return run{from: 'A', to: 'Z', base: base} }
func lower(base rune) run  { return run{from: 'a', to: 'z', base: base} }
func digits(base rune) run { return run{from: '0', to: '9', base: base} }

// makeTable enumerates the runs and pairs each plain character with its offset
// code point. Entries in holes replace the offset code point for single characters.
func makeTable(name string, runs []run, holes map[rune]rune) *Table {
	t := &Table{
		name:   name,
		glyphs: make(map[rune]rune, 62),
	}
	for _, rn := range runs {
		for r := rn.from; r <= rn.to; r++ {
			t.glyphs[r] = rn.base + (r - rn.from)
		}
	}
	for plain, styled := range holes {
		if _, ok := t.glyphs[plain]; !ok {
			panic(fmt.Sprintf("glyph table %s: hole for unmapped character %q", name, plain))
		}
		t.glyphs[plain] = styled
	}
	t.plain = make([]rune, 0, len(t.glyphs))
	for r := range t.glyphs {
		t.plain = append(t.plain, r)
	}
	sort.Slice(t.plain, func(i, j int) bool { return t.plain[i] < t.plain[j] })
	tracer().Debugf("created glyph table %s with %d glyphs", name, len(t.plain))
	return t
}
