/*
Package styled manages text with runs of formats.

A styled text is a plain string, together with text formats applied to spans of
it. Positions are byte positions into the plain string. Styling a span overwrites
the formats previously set for it; the text itself never changes.

Rendering a styled text converts each run with its format, resulting in a
string of Unicode look-alike glyphs. This is the typical workflow of an editor,
where a user selects a portion of a text and applies a format to it:

	text := styled.TextFromString("Hello World")
	text.Style(fontier.TextFormat{Bold: true}, 6, 11)
	s := text.Render()  // "Hello 𝐖𝐨𝐫𝐥𝐝"

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontier'
func tracer() tracing.Trace {
	return tracing.Select("fontier")
}
