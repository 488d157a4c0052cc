/*
Package glyphs holds the glyph tables for styling plain text with Unicode.

Unicode contains a couple of blocks which repeat the Latin alphabet (and sometimes
the decimal digits) in a distinct visual style. The most prominent one is the
block of Mathematical Alphanumeric Symbols (U+1D400…U+1D7FF), which carries bold,
italic, script, double-struck, sans-serif and monospace variants of the letters.
Fullwidth forms live in the Halfwidth and Fullwidth Forms block (U+FF00…U+FFEF).

A handful of letters have been encoded before the mathematical block was introduced.
These show up as "holes" in the mathematical block and have to be taken from the
Letterlike Symbols block (U+2100…U+214F) instead, e.g. the italic small h is
U+210E (PLANCK CONSTANT). The tables of this package take care of these holes.

All tables are created once at package initialization and are read-only afterwards.
Clients may use them from concurrent goroutines without synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package glyphs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontier'
func tracer() tracing.Trace {
	return tracing.Select("fontier")
}
