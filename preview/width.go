package preview

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultEllipsis is appended to truncated text if no other ellipsis is configured.
const DefaultEllipsis = "…"

var setupOnce sync.Once

func setup() {
	setupOnce.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
}

// Width returns the display width of s in “en”s.
// It is safe to have ctx set to nil. In this case, uax11.LatinContext is used.
func Width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	setup()
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// Truncate shortens s to a display width of at most width “en”s, ending it
// with ellipsis if anything has been cut off. Text is cut between grapheme
// clusters only, thus an underlined or struck character will never lose its
// combining mark.
//
// If even the ellipsis does not fit, the result is the ellipsis alone.
func Truncate(s string, width int, ellipsis string, ctx *uax11.Context) string {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	if Width(s, ctx) <= width {
		return s
	}
	space := width - Width(ellipsis, ctx)
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := uax11.Width([]byte(g), ctx)
		if w > space {
			break
		}
		space -= w
		b.WriteString(g)
	}
	T().Debugf("preview: truncated %d bytes to %d bytes", len(s), b.Len())
	b.WriteString(ellipsis)
	return b.String()
}

// Config represents a set of configuration parameters for previews.
type Config struct {
	Width    int            // maximum display width in “en”s; 0 means unlimited
	Ellipsis string         // appended to truncated text
	Context  *uax11.Context // context for character width; nil for uax11.LatinContext
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Line formats s for display on a single line: line breaks and tabs are
// replaced by spaces and the text is truncated to the configured width.
func (c Config) Line(s string) string {
	s = lineBreaks.Replace(s)
	if c.Width <= 0 {
		return s
	}
	ellipsis := c.Ellipsis
	if ellipsis == "" {
		ellipsis = DefaultEllipsis
	}
	return Truncate(s, c.Width, ellipsis, c.Context)
}

// WidthFromTerminal is a simple helper for finding a preview width.
// It checks wether fd is a terminal, and if so it reads the terminal's width
// and derives a width from it. Otherwise fallback is returned.
func WidthFromTerminal(fd int, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return fallback
	}
	var width int
	if w > 65 {
		width = w - 10
	} else if w > 30 {
		width = w - 5
	} else if w > 10 {
		width = w
	} else {
		width = 10
	}
	T().Infof("preview: setting width to %d en", width)
	return width
}
