package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

const testConfig = `
tracelevel:
  root: Error
  fontier: Error
preview:
  width: 30
default:
  italic: true
presets:
  shout: { size: h1 }
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fontier.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(trace2go.Teardown)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "", "convert", "--bold", "Hello", "World")
	if err != nil {
		t.Fatal(err)
	}
	if out != fontier.Convert("Hello World", fontier.TextFormat{Bold: true})+"\n" {
		t.Errorf("unexpected output %q", out)
	}
	out, _ = run(t, "from stdin\n", "convert", "--preset", "shout")
	if out != fontier.Convert("from stdin", fontier.TextFormat{Size: fontier.SizeH1})+"\n" {
		t.Errorf("unexpected output for preset %q", out)
	}
	out, _ = run(t, "", "convert", "plain")
	if out != fontier.Convert("plain", fontier.TextFormat{Italic: true})+"\n" {
		t.Errorf("expected configured default format, have %q", out)
	}
	out, _ = run(t, "", "convert", "--table", "fullwidth", "ab")
	if out != "ａｂ\n" {
		t.Errorf("expected fullwidth output, have %q", out)
	}
	if _, err = run(t, "", "convert", "--preset", "nope", "x"); err == nil {
		t.Errorf("expected error for unknown preset")
	}
	if _, err = run(t, "", "convert", "--table", "nope", "x"); err == nil {
		t.Errorf("expected error for unknown table")
	}
}

func TestConvertFileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "convert", "--strike", "--file", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != fontier.Convert("line one\nline two\n", fontier.TextFormat{Strikethrough: true}) {
		t.Errorf("unexpected file conversion %q", out)
	}
}

func TestReverseAndCheckCommands(t *testing.T) {
	styled := fontier.Convert("a b", fontier.TextFormat{Bold: true, UnderlinePhrase: true})
	out, err := run(t, styled, "reverse", "--restore-spaces")
	if err != nil {
		t.Fatal(err)
	}
	if out != "a b\n" {
		t.Errorf("unexpected reverse output %q", out)
	}
	out, _ = run(t, "", "check", styled)
	if out != "reverse\n" {
		t.Errorf("expected reverse mode, have %q", out)
	}
	out, _ = run(t, "", "check", "plain")
	if out != "forward\n" {
		t.Errorf("expected forward mode, have %q", out)
	}
}

func TestTablesHTMLPreviewCommands(t *testing.T) {
	out, err := run(t, "", "tables")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "\n") < 10 {
		t.Errorf("expected a line per glyph table, have %q", out)
	}
	out, _ = run(t, "", "tables", "--presets")
	if !strings.Contains(out, "shout: ") {
		t.Errorf("expected configured preset to be listed, have %q", out)
	}
	out, _ = run(t, "", "html", "<p>a <b>b</b></p>")
	if out != "a "+fontier.Convert("b", fontier.TextFormat{Bold: true})+"\n" {
		t.Errorf("unexpected html output %q", out)
	}
	out, _ = run(t, "", "preview", "Hi")
	if !strings.HasPrefix(out, "mode: forward\n") || !strings.Contains(out, "shout: "+fontier.Convert("Hi", fontier.TextFormat{Size: fontier.SizeH1})) {
		t.Errorf("unexpected preview %q", out)
	}
	out, _ = run(t, "", "preview", fontier.Convert("Hi", fontier.TextFormat{Bold: true}))
	if out != "mode: reverse\nplain: Hi\n" {
		t.Errorf("unexpected reverse preview %q", out)
	}
}
