/*
Package inline creates styled text from HTML.

Only inline formatting is respected, i.e. the textual content of elements such as

	<b> … </b>   <em> … </em>   <code> … </code>   <h2> … </h2>

is styled with a corresponding text format. Formats of nested elements are merged.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"io"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/fontier/styled"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'fontier'
func tracer() tracing.Trace {
	return tracing.Select("fontier")
}

// InnerText creates a styled text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore the resulting styled text is limited to inline span elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Clients should provide a paragraph-like element.
//
// Line breaks (<br>) are kept as newlines.
func InnerText(n *html.Node) (*styled.Text, error) {
	if n == nil {
		return nil, fontier.ErrIllegalArguments
	}
	b := styled.NewTextBuilder()
	collectText(n, fontier.TextFormat{}, b)
	return b.Text(), nil
}

func collectText(n *html.Node, format fontier.TextFormat, b *styled.TextBuilder) {
	switch n.Type {
	case html.ElementNode:
		if skipped[n.Data] {
			return
		}
		if n.Data == "br" {
			_ = b.Append("\n", &format)
			return
		}
		format = FormatFromTag(n.Data, format)
		tracer().Debugf("styled inline text: collect text of <%s> as %v", n.Data, format)
	case html.TextNode:
		tracer().Debugf("styled inline text = %q (%v)", n.Data, format)
		_ = b.Append(n.Data, &format)
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, format, b)
	}
}

// TextFromHTML creates a styled.Text from the textual content of an HTML fragment.
// The HTML fragment should reflect the content of a paragraph-like element.
func TextFromHTML(input io.Reader) (*styled.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := styled.NewTextBuilder()
	for _, n := range nodes {
		collectText(n, fontier.TextFormat{}, b)
	}
	return b.Text(), nil
}
