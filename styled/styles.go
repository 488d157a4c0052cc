package styled

import (
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontier"
)

// --- Styled Text -----------------------------------------------------------

// Text is a styled text. Its text and its styles are automatically synchronized.
type Text struct {
	text string
	runs runs
}

// TextFromString creates a stylable text from a string.
func TextFromString(s string) *Text {
	t := &Text{
		text: s,
		runs: runs{},
	}
	t.runs = t.runs.append(styleRun{length: uint64(len(s))})
	return t
}

// Raw returns the text without any styles.
func (t *Text) Raw() string {
	return t.text
}

// Len returns the length of the text in bytes.
func (t *Text) Len() uint64 {
	return uint64(len(t.text))
}

// String returns an informational string for the text's style runs.
// Clients must not rely on the format of the string.
func (t *Text) String() string {
	return t.runs.String()
}

// StyleAt returns the format at byte position pos of the styled text, together
// with the start position of the style run containing pos.
func (t *Text) StyleAt(pos uint64) (fontier.TextFormat, uint64, error) {
	if pos >= t.Len() {
		return fontier.TextFormat{}, pos, fontier.ErrIndexOutOfBounds
	}
	start := uint64(0)
	for _, run := range t.runs {
		if pos < start+run.length {
			return run.format, start, nil
		}
		start += run.length
	}
	tracer().Errorf("styled text: style runs do not cover text position %d", pos)
	return fontier.TextFormat{}, pos, fontier.ErrIllegalArguments
}

// EachStyleRun applies a function to each run of a single format.
// pos is the text position of this run of text within the overall
// styled text. If f returns an error, iteration stops and the error is returned.
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to type `Iterator`.
func (t *Text) EachStyleRun(f func(content string, format fontier.TextFormat, pos uint64) error) error {
	pos := uint64(0)
	for _, run := range t.runs {
		if err := f(t.text[pos:pos+run.length], run.format, pos); err != nil {
			return err
		}
		pos += run.length
	}
	return nil
}

// RangeStyleRun returns an iterator over the runs of the text, yielding
// the content and format of each run.
func (t *Text) RangeStyleRun() iter.Seq2[string, fontier.TextFormat] {
	return func(yield func(string, fontier.TextFormat) bool) {
		pos := uint64(0)
		for _, run := range t.runs {
			if !yield(t.text[pos:pos+run.length], run.format) {
				return
			}
			pos += run.length
		}
	}
}

// Style styles a run of text, given the start and end position.
//
// The span will silently be restricted to valid text positions and widened to
// rune boundaries. An empty span leaves the text unchanged.
func (t *Text) Style(format fontier.TextFormat, from, to uint64) *Text {
	spn := toSpan(from, to).contained(t.text)
	if spn.void() {
		tracer().Debugf("styled text: void span [%d,%d), cannot style", from, to)
		return t
	}
	t.runs = t.runs.style(format, spn)
	return t
}

// Unstyle removes all formats from a run of text.
func (t *Text) Unstyle(from, to uint64) *Text {
	return t.Style(fontier.TextFormat{}, from, to)
}

// Section copies a piece of styled text, delimited by parameters from and to.
func Section(t *Text, from, to uint64) (*Text, error) {
	if from > to || to > t.Len() {
		return nil, fontier.ErrIndexOutOfBounds
	}
	spn := toSpan(from, to).contained(t.text)
	section := &Text{text: t.text[spn.l:spn.r], runs: runs{}}
	pos := uint64(0)
	for _, run := range t.runs {
		l, r := max(pos, spn.l), min(pos+run.length, spn.r)
		if l < r {
			section.runs = section.runs.append(styleRun{format: run.format, length: r - l})
		}
		pos += run.length
	}
	return section, nil
}

// StyleChange holds a format and the text position where the style run starts.
type StyleChange struct {
	Format   fontier.TextFormat
	Position uint64
	Length   uint64
}

// StyleRuns returns a slice of style runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	slice := make([]StyleChange, len(t.runs))
	pos := uint64(0)
	for i, run := range t.runs {
		slice[i].Format = run.format
		slice[i].Position = pos
		slice[i].Length = run.length
		pos += run.length
	}
	return slice
}

// Render converts every run of text with its format. Unstyled runs are
// copied verbatim. Options are handed to fontier.Convert.
func (t *Text) Render(opts ...fontier.Option) string {
	var b strings.Builder
	b.Grow(len(t.text) * 3)
	for content, format := range t.RangeStyleRun() {
		if format.IsPlain() {
			b.WriteString(content)
			continue
		}
		b.WriteString(fontier.Convert(content, format, opts...))
	}
	return b.String()
}

// --- Runs of Styles --------------------------------------------------------

// runs hold information about formats which have been applied to a text.
// Runs are contiguous, and adjacent runs never share an equal format.
type runs []styleRun

type styleRun struct {
	format fontier.TextFormat // applied format
	length uint64             // length of this style run in bytes
}

// String returns an informational string for these runs.
func (r runs) String() string {
	var b strings.Builder
	for i, run := range r {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(run.format.String())
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(run.length, 10))
	}
	return b.String()
}

// Len returns the overall length in bytes for these runs.
func (r runs) Len() uint64 {
	l := uint64(0)
	for _, run := range r {
		l += run.length
	}
	return l
}

// append adds a run at the end, merging it with the last run if the formats
// are equal.
func (r runs) append(run styleRun) runs {
	if run.length == 0 {
		return r
	}
	if n := len(r); n > 0 && r[n-1].format.Equals(run.format) {
		r[n-1].length += run.length
		return r
	}
	return append(r, run)
}

// style overwrites the formats for span spn and returns the unified set.
// spn must be contained in the runs.
func (r runs) style(format fontier.TextFormat, spn span) runs {
	tracer().Debugf("styled runs: style %v for [%d,%d)", format, spn.l, spn.r)
	rs := make(runs, 0, len(r)+2)
	inserted := false
	pos := uint64(0)
	for _, run := range r {
		end := pos + run.length
		switch {
		case end <= spn.l: // before span
			rs = rs.append(run)
		case pos >= spn.r: // behind span
			if !inserted {
				rs = rs.append(styleRun{format: format, length: spn.len()})
				inserted = true
			}
			rs = rs.append(run)
		default: // run overlaps span
			if pos < spn.l {
				rs = rs.append(styleRun{format: run.format, length: spn.l - pos})
			}
			if !inserted {
				rs = rs.append(styleRun{format: format, length: spn.len()})
				inserted = true
			}
			if end > spn.r {
				rs = rs.append(styleRun{format: run.format, length: end - spn.r})
			}
		}
		pos = end
	}
	if !inserted {
		rs = rs.append(styleRun{format: format, length: spn.len()})
	}
	return rs
}

// --- Span ------------------------------------------------------------------

type span struct {
	l uint64
	r uint64
}

func toSpan(from, to uint64) span {
	if from > to {
		from, to = to, from
	}
	return span{from, to}
}

func (spn span) void() bool {
	return spn.r <= spn.l
}

func (spn span) len() uint64 {
	if spn.void() {
		return 0
	}
	return spn.r - spn.l
}

// contained restricts spn to the positions of s and widens it to rune
// boundaries.
func (spn span) contained(s string) span {
	n := uint64(len(s))
	if spn.r > n {
		spn.r = n
	}
	if spn.l > n {
		spn.l = n
	}
	for spn.l > 0 && spn.l < n && !utf8.RuneStart(s[spn.l]) {
		spn.l--
	}
	for spn.r < n && !utf8.RuneStart(s[spn.r]) {
		spn.r++
	}
	return spn
}
