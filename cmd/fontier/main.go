/*
Command fontier styles plain text with Unicode look-alike glyphs.

Usage:

	fontier convert --bold "Hello World"
	echo "𝐇𝐞𝐥𝐥𝐨" | fontier reverse
	fontier tables
	fontier html '<p>My <b>first</b> paragraph.</p>'

Run `fontier help` for a list of commands and flags.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
