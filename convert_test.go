package fontier

import (
	"strings"
	"testing"

	"github.com/npillmayer/fontier/glyphs"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	ul   = "\u0332"
	st   = "\u0336"
	nbsp = "\u00a0"
)

func TestConvertHiBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontier")
	defer teardown()
	//
	out := Convert("Hi", TextFormat{Bold: true})
	if out != "\U0001D407\U0001D422" {
		t.Errorf("expected bold 'Hi', have %q", out)
	}
	out = Convert("Hi", TextFormat{Size: SizeH1})
	if out != "\U0001D5DB\U0001D5F6" {
		t.Errorf("expected sans-bold 'Hi', have %q", out)
	}
	out = Convert("Hi", TextFormat{Size: SizeH1, Italic: true})
	if out != Convert("Hi", TextFormat{Size: SizeH1}) {
		t.Errorf("size h1 should ignore style flags, have %q", out)
	}
}

func TestConvertEveryTableGlyph(t *testing.T) {
	selecting := map[*glyphs.Table]TextFormat{
		glyphs.Bold:         {Bold: true},
		glyphs.Italic:       {Italic: true},
		glyphs.BoldItalic:   {Bold: true, Italic: true},
		glyphs.Script:       {Font: FontScript},
		glyphs.Monospace:    {Font: FontMonospace},
		glyphs.Serif:        {Font: FontSerif},
		glyphs.SansBold:     {Size: SizeH1},
		glyphs.DoubleStruck: {Size: SizeH3},
		glyphs.Sans:         {Size: SizeH4},
	}
	for table, format := range selecting {
		for _, p := range table.Pairs() {
			out := Convert(string(p.Plain), format)
			if out != string(p.Styled) {
				t.Errorf("%s: expected %q -> %q, have %q", table.Name(), p.Plain, p.Styled, out)
			}
		}
	}
}

func TestConvertIdentity(t *testing.T) {
	texts := []string{"", "Hello World", "tabs\tand\nnewlines", "ünïcödé €", "𝐀lready styled"}
	for _, text := range texts {
		if out := Convert(text, TextFormat{}); out != text {
			t.Errorf("expected identity for %q, have %q", text, out)
		}
	}
}

func TestConvertPunctuationPassesThrough(t *testing.T) {
	out := Convert("a, b!", TextFormat{Bold: true})
	expected := "\U0001D41A, \U0001D41B!"
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}

func TestConvertMonospaceBeatsBold(t *testing.T) {
	out := Convert("ab", TextFormat{Font: FontMonospace, Bold: true})
	if out != glyphs.Monospace.Sample("ab") {
		t.Errorf("expected monospace only, have %q", out)
	}
}

func TestUnderline(t *testing.T) {
	out := Convert("a b", TextFormat{Underline: true})
	if out != "a"+ul+" b"+ul {
		t.Errorf("expected spaces to be skipped, have %q", out)
	}
	// underline always skips whitespace
	out = Convert("a b", TextFormat{Underline: true}, SkipSpaces(false))
	if out != "a"+ul+" b"+ul {
		t.Errorf("expected spaces to be skipped for underline, have %q", out)
	}
}

func TestUnderlinePhrase(t *testing.T) {
	out := Convert("a b", TextFormat{UnderlinePhrase: true})
	expected := "a" + ul + nbsp + ul + "b" + ul
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
	out = Convert("a\nb", TextFormat{UnderlinePhrase: true, Underline: true})
	expected = "a" + ul + "\n" + "b" + ul
	if out != expected {
		t.Errorf("expected newline to stay unmarked, have %q", out)
	}
}

func TestStrikethroughWithPhrase(t *testing.T) {
	out := Convert("a b", TextFormat{UnderlinePhrase: true, Strikethrough: true})
	if !strings.Contains(out, nbsp+st) {
		t.Errorf("expected strikethrough immediately after NBSP, have %q", out)
	}
	expected := "a" + st + ul + st + nbsp + st + ul + st + "b" + st + ul + st
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}

func TestStrikethrough(t *testing.T) {
	out := Convert("a b", TextFormat{Strikethrough: true})
	if out != "a"+st+" b"+st {
		t.Errorf("expected spaces to be skipped, have %q", out)
	}
	out = Convert("a b", TextFormat{Strikethrough: true}, SkipSpaces(false))
	if out != "a"+st+" "+st+"b"+st {
		t.Errorf("expected spaces to be struck, have %q", out)
	}
}

func TestMarksFollowStyledGlyph(t *testing.T) {
	out := Convert("H", TextFormat{Bold: true, Underline: true})
	if out != "\U0001D407"+ul {
		t.Errorf("expected mark after the bold glyph, have %q", out)
	}
}

func TestConvertDoesNotTouchFormat(t *testing.T) {
	f := TextFormat{Bold: true, UnderlinePhrase: true, Strikethrough: true}
	g := f
	_ = Convert("some text", f, SkipSpaces(true))
	if f != g {
		t.Errorf("format has been modified")
	}
}

func TestApplyVariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontier")
	defer teardown()
	//
	out := ApplyVariant("ab", glyphs.Fullwidth, Combining{})
	if out != "ａｂ" {
		t.Errorf("expected fullwidth 'ab', have %q", out)
	}
	out = ApplyVariant("a b", nil, Combining{Underline: true, Strikethrough: true})
	// strikethrough is appended to every code point, including the underline marks
	if out != "a"+st+ul+st+" b"+st+ul+st {
		t.Errorf("expected underline then strikethrough, have %q", out)
	}
	out = ApplyVariant("a b", nil, Combining{Underline: true}, SkipSpaces(false))
	if out != "a"+ul+" "+ul+"b"+ul {
		t.Errorf("expected space to be underlined, have %q", out)
	}
	if ApplyVariant("", glyphs.Bold, Combining{Underline: true}) != "" {
		t.Errorf("expected empty output for empty input")
	}
}

func TestConvertConcurrent(t *testing.T) {
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() {
			done <- Convert("concurrent", TextFormat{Bold: true, Strikethrough: true})
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		if s := <-done; s != first {
			t.Errorf("concurrent conversions differ: %q vs %q", s, first)
		}
	}
}
