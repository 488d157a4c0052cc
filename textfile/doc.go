/*
Package textfile converts UTF-8 text files in fragments.

A text file is read in fragments of about equal size, each ending at a line
break. Fragments are converted one after another and broadcast to all
subscribers of a stream, in file order. This allows clients to display or write
converted text while the rest of a large file is still being processed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontier'
func tracer() tracing.Trace {
	return tracing.Select("fontier")
}
