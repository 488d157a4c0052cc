/*
Package fontier styles plain text by substituting characters with Unicode code points
from alternate character blocks.

Fontier

Unicode has no notion of font weight, slant or size. It does, however, contain blocks
which repeat the Latin alphabet in a distinct visual style, most prominently the
Mathematical Alphanumeric Symbols. Replacing "Hi" by "𝐇𝐢" makes text look bold in
every place which accepts plain text: chat messages, profile bios, commit messages,
terminal output. Underline and strikethrough can be simulated by appending the
combining characters U+0332 and U+0336 after every character.

Clients describe the styling they want with a TextFormat:

	f := fontier.TextFormat{Bold: true, Underline: true}
	s := fontier.Convert("Hello", f)

Only one glyph table is ever applied to a text (see ChooseVariant), as applying
tables one after another would fail silently: an already styled character will not
be found in a second table. Combining marks are always appended last.

Denormalize partially reverses the process. This is a best-effort operation: styled
text may have been produced by other tools, and some information (e.g., spaces
replaced by no-break spaces) is not recoverable.

All functions of this package are free of side effects and safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package fontier

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the tracer with key 'fontier'.
func T() tracing.Trace {
	return tracing.Select("fontier")
}

// Error is an error type for the fontier module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = Error("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// ErrUnknownTable is flagged if a glyph table is requested by an unknown name.
const ErrUnknownTable = Error("unknown glyph table")

// ErrUnknownPreset is flagged if a format preset is requested by an unknown name.
const ErrUnknownPreset = Error("unknown format preset")
