package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

const sample = `
tracing:
  adapter: go
  destination: stderr
tracelevel:
  root: Error
  fontier: Debug
preview:
  width: 24
default:
  italic: true
  size: h2
presets:
  shout: { size: h1, underline: true }
  Code_Block: { font: monospace }
  bold: { bold: true, strikethrough: true }
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontier")
	defer teardown()
	//
	c, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if c.GetString("tracing.adapter") != "go" || c.GetString("tracelevel.fontier") != "Debug" {
		t.Errorf("expected tracing keys to be set")
	}
	if c.GetString("tracing") != "go" {
		t.Errorf("expected tracing section to fall back to default adapter, have %q", c.GetString("tracing"))
	}
	if c.GetInt("preview.width") != 24 {
		t.Errorf("expected preview width 24, have %d", c.GetInt("preview.width"))
	}
	if c.GetString("preview.ellipsis") != "…" {
		t.Errorf("expected default ellipsis, have %q", c.GetString("preview.ellipsis"))
	}
	if !c.IsSet("tracing.destination") || c.IsSet("no.such.key") {
		t.Errorf("IsSet misreports keys")
	}
	if c.GetBool("default.italic") != true || c.GetBool("default.bold") {
		t.Errorf("unexpected boolean values")
	}
	f := c.DefaultFormat()
	if !f.Italic || f.Size != fontier.SizeH2 {
		t.Errorf("unexpected default format %v", f)
	}
	p := c.Preview()
	if p.Width != 24 || p.Ellipsis != "…" {
		t.Errorf("unexpected preview config %+v", p)
	}
}

func TestPresets(t *testing.T) {
	c, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	f, err := c.Preset("Shout")
	if err != nil || f.Size != fontier.SizeH1 || !f.Underline {
		t.Errorf("unexpected preset 'shout': %v (%v)", f, err)
	}
	if f, _ = c.Preset("code-block"); f.Font != fontier.FontMonospace {
		t.Errorf("expected monospace preset, have %v", f)
	}
	if f, _ = c.Preset("bold"); !f.Strikethrough {
		t.Errorf("expected configured preset to override built-in one, have %v", f)
	}
	if f, _ = c.Preset("h3"); f.Size != fontier.SizeH3 {
		t.Errorf("expected built-in preset h3, have %v", f)
	}
	if _, err = c.Preset("nope"); !errors.Is(err, fontier.ErrUnknownPreset) {
		t.Errorf("expected unknown preset error, have %v", err)
	}
	names := c.Presets()
	if !slices.IsSorted(names) || !slices.Contains(names, "shout") || !slices.Contains(names, "mono") {
		t.Errorf("unexpected preset names %v", names)
	}
	if n := len(slices.Compact(slices.Clone(names))); n != len(names) {
		t.Errorf("expected preset names to be unique, have %v", names)
	}
}

func TestDefaultAndLoad(t *testing.T) {
	c := Default()
	if c.GetInt("preview.width") != 40 || !c.DefaultFormat().IsPlain() {
		t.Errorf("unexpected defaults")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Path() != path || c.GetInt("preview.width") != 24 {
		t.Errorf("configuration file not loaded")
	}
	if err = os.WriteFile(path, []byte("presets: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err = Load(path); err == nil {
		t.Errorf("expected error for malformed file")
	}
	empty, err := Parse(strings.NewReader(""))
	if err != nil || empty.GetString("tracing") != "go" {
		t.Errorf("expected empty document to yield defaults (%v)", err)
	}
}

func TestSetupTracing(t *testing.T) {
	c, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	defer trace2go.Teardown()
	if err = c.SetupTracing(); err != nil {
		t.Fatal(err)
	}
	tracer := tracing.Select("fontier")
	if tracer.GetTraceLevel() != tracing.LevelDebug {
		t.Errorf("expected trace level Debug from configuration, have %v", tracer.GetTraceLevel())
	}
}
