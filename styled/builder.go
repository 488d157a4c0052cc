package styled

import (
	"strings"

	"github.com/npillmayer/fontier"
)

// ErrTextCompleted is returned when appending to a builder after its text has
// been requested.
const ErrTextCompleted = fontier.Error("styled text has already been completed")

// TextBuilder is for building styled text from style runs.
type TextBuilder struct {
	strBuilder strings.Builder
	length     uint64
	done       bool
	styles     []styleSpan
}

type styleSpan struct {
	format fontier.TextFormat
	span   span
}

// NewTextBuilder creates a new and empty builder for styled.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	text := TextFromString(b.strBuilder.String())
	if text.Len() == 0 {
		tracer().Debugf("text builder: text is empty")
		return text
	}
	for _, s := range b.styles {
		text.Style(s.format, s.span.l, s.span.r)
	}
	return text
}

// Append appends a text fragment at the end of the text to build.
// A nil format leaves the fragment unstyled.
func (b *TextBuilder) Append(s string, format *fontier.TextFormat) error {
	if b.done {
		return ErrTextCompleted
	}
	if s == "" {
		return nil
	}
	b.strBuilder.WriteString(s)
	end := b.length + uint64(len(s))
	if format != nil && !format.IsPlain() {
		b.styles = append(b.styles, styleSpan{format: *format, span: toSpan(b.length, end)})
	}
	b.length = end
	return nil
}
