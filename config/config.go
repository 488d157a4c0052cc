/*
Package config reads fontier configuration files.

Configuration is stored in YAML format and is located in one of the places
searched by schuko.LocateConfig, e.g. ~/.config/fontier/config.yaml:

	tracing:
	  adapter: go
	  destination: stderr
	tracelevel:
	  root: Error
	  fontier: Info
	preview:
	  width: 40
	  ellipsis: "…"
	default:
	  bold: true
	presets:
	  shout: { size: h1 }
	  code:  { font: monospace, underline: true }

Config implements schuko.Configuration, with keys addressing nested values
separated by dots (e.g., "preview.width"). It is used to set up tracing.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/fontier/preview"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// AppTag is used for locating configuration files.
const AppTag = "fontier"

// Config holds the configuration of fontier.
type Config struct {
	path     string
	tree     map[string]interface{} // decoded YAML document
	defaults map[string]interface{} // flat keys
	format   fontier.TextFormat     // default text format
	presets  map[string]fontier.TextFormat
}

// document is the typed view of a configuration file.
type document struct {
	Default fontier.TextFormat            `yaml:"default"`
	Presets map[string]fontier.TextFormat `yaml:"presets"`
}

// builtinPresets are always available, but may be overridden by configuration files.
var builtinPresets = map[string]fontier.TextFormat{
	"bold":        {Bold: true},
	"italic":      {Italic: true},
	"bold-italic": {Bold: true, Italic: true},
	"underline":   {Underline: true},
	"strike":      {Strikethrough: true},
	"h1":          {Size: fontier.SizeH1},
	"h2":          {Size: fontier.SizeH2},
	"h3":          {Size: fontier.SizeH3},
	"h4":          {Size: fontier.SizeH4},
	"h5":          {Size: fontier.SizeH5},
	"mono":        {Font: fontier.FontMonospace},
	"script":      {Font: fontier.FontScript},
	"serif":       {Font: fontier.FontSerif},
}

// Default returns a configuration holding default values only.
func Default() *Config {
	c := &Config{
		tree:    map[string]interface{}{},
		presets: map[string]fontier.TextFormat{},
	}
	c.InitDefaults()
	return c
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("configuration file %s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// Locate searches for a configuration file in the user's configuration
// directories and loads it. If none is found, the default configuration
// is returned.
func Locate() (*Config, error) {
	paths := schuko.LocateConfig(AppTag, "", []string{"yaml", "yml"})
	if len(paths) == 0 {
		tracing.Infof("no configuration file found, using defaults")
		return Default(), nil
	}
	return Load(paths[0])
}

// Parse reads a YAML configuration from r.
func Parse(r io.Reader) (*Config, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil && err != io.EOF {
		return nil, err
	}
	c := Default()
	if root.Kind == 0 { // empty document
		return c, nil
	}
	if err := root.Decode(&c.tree); err != nil {
		return nil, err
	}
	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	c.format = doc.Default
	for name, f := range doc.Presets {
		c.presets[normalizeName(name)] = f
	}
	return c, nil
}

// Path returns the path of the configuration file, if any.
func (c *Config) Path() string {
	return c.path
}

// --- Formats ---------------------------------------------------------------

// DefaultFormat returns the text format to use if none is given.
func (c *Config) DefaultFormat() fontier.TextFormat {
	return c.format
}

// Preset returns the text format for a named preset. Presets from the
// configuration file override built-in presets of the same name.
func (c *Config) Preset(name string) (fontier.TextFormat, error) {
	name = normalizeName(name)
	if f, ok := c.presets[name]; ok {
		return f, nil
	}
	if f, ok := builtinPresets[name]; ok {
		return f, nil
	}
	return fontier.TextFormat{}, fmt.Errorf("%w: %q", fontier.ErrUnknownPreset, name)
}

// Presets returns the sorted names of all available presets.
func (c *Config) Presets() []string {
	names := make([]string, 0, len(builtinPresets)+len(c.presets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	for name := range c.presets {
		if _, ok := builtinPresets[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// Preview returns the configuration for previews.
func (c *Config) Preview() preview.Config {
	return preview.Config{
		Width:    c.GetInt("preview.width"),
		Ellipsis: c.GetString("preview.ellipsis"),
	}
}

// --- Tracing ---------------------------------------------------------------

// SetupTracing configures tracing from the "tracing" and "tracelevel" keys.
// A Go log adapter is registered with key "go".
func (c *Config) SetupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// --- schuko.Configuration --------------------------------------------------

// InitDefaults initializes a base set of key/value pairs.
func (c *Config) InitDefaults() {
	c.defaults = map[string]interface{}{
		"tracing":            "go",
		"tracelevel.root":    "Error",
		"tracelevel.fontier": "Error",
		"preview.width":      40,
		"preview.ellipsis":   preview.DefaultEllipsis,
	}
}

// IsSet is a predicate wether a configuration key is set.
func (c *Config) IsSet(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// GetString returns a configuration property as a string. Nested sections
// return the default value, if any.
func (c *Config) GetString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case map[string]interface{}, []interface{}:
		if d, ok := c.defaults[key].(string); ok {
			return d
		}
		return ""
	}
	return fmt.Sprint(v)
}

// GetInt returns a configuration property as an integer. Values which are
// not numbers return 0.
func (c *Config) GetInt(key string) int {
	v, ok := c.lookup(key)
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case uint64:
		return int(x)
	case float64:
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err == nil {
			return n
		}
	}
	return 0
}

// GetBool returns a configuration property as a boolean value.
func (c *Config) GetBool(key string) bool {
	v, ok := c.lookup(key)
	if !ok {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	}
	return false
}

// IsInteractive returns true if stdin is a terminal.
func (c *Config) IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var _ schuko.Configuration = &Config{}

// lookup finds a value for a dotted key, falling back to the defaults.
func (c *Config) lookup(key string) (interface{}, bool) {
	var node interface{} = c.tree
	for _, k := range strings.Split(key, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			node = nil
			break
		}
		if node, ok = m[k]; !ok {
			node = nil
			break
		}
	}
	if node != nil {
		return node, true
	}
	v, ok := c.defaults[key]
	return v, ok
}
