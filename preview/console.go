package preview

import (
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/fontier"
)

// Mode tells in which direction a text should be converted.
type Mode uint8

// Conversion modes
const (
	ModeForward Mode = iota // plain text to styled glyphs
	ModeReverse             // styled glyphs to plain text
)

func (m Mode) String() string {
	if m == ModeReverse {
		return "reverse"
	}
	return "forward"
}

// SuggestMode proposes reverse conversion for text which contains styled glyphs,
// and forward conversion otherwise.
func SuggestMode(text string) Mode {
	if fontier.ContainsStyledGlyph(text) {
		return ModeReverse
	}
	return ModeForward
}

// Console is a type for outputting previews to a console with
// a fixed width font. Labels and hints are colored, if coloring is enabled.
type Console struct {
	Config Config
	w      io.Writer
	label  *color.Color
	hint   *color.Color
}

// NewConsole creates a console printer writing to w. If colored is false, no escape
// sequences will be written.
func NewConsole(w io.Writer, colored bool) *Console {
	c := &Console{
		Config: Config{Ellipsis: DefaultEllipsis},
		w:      w,
		label:  color.New(color.FgBlue, color.Bold),
		hint:   color.New(color.FgYellow),
	}
	if colored {
		c.label.EnableColor()
		c.hint.EnableColor()
	} else {
		c.label.DisableColor()
		c.hint.DisableColor()
	}
	return c
}

// Print outputs a single line preview of text, preceded by a label.
func (c *Console) Print(label, text string) error {
	if label != "" {
		if _, err := c.label.Fprint(c.w, label+": "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(c.w, c.Config.Line(text)+"\n")
	return err
}

// Hint outputs a line of information, e.g., a suggested mode of conversion.
func (c *Console) Hint(msg string) error {
	_, err := c.hint.Fprintln(c.w, msg)
	return err
}
