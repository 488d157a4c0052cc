package main

import (
	"context"
	"fmt"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/fontier/glyphs"
	"github.com/npillmayer/fontier/textfile"
	"github.com/spf13/cobra"
)

type formatFlags struct {
	bold, italic, underline, phrase, strike bool
	size, font, preset, table              string
	noSkipSpaces                           bool
}

func (ff *formatFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVarP(&ff.bold, "bold", "b", false, "bold text")
	fl.BoolVarP(&ff.italic, "italic", "i", false, "italic text")
	fl.BoolVarP(&ff.underline, "underline", "u", false, "underline every character, except whitespace")
	fl.BoolVarP(&ff.phrase, "phrase", "p", false, "underline the whole phrase, including spaces")
	fl.BoolVarP(&ff.strike, "strike", "s", false, "strike through text")
	fl.StringVar(&ff.size, "size", "", "text size: normal, h1 … h5")
	fl.StringVar(&ff.font, "font", "", "font family: normal, serif, monospace, script")
	fl.StringVar(&ff.preset, "preset", "", "named format preset (see 'fontier tables --presets')")
	fl.StringVarP(&ff.table, "table", "t", "", "apply a glyph table directly (see 'fontier tables')")
	fl.BoolVar(&ff.noSkipSpaces, "no-skip-spaces", false, "strike through whitespace, too")
}

// format combines preset, flags and the configured default format.
func (ff *formatFlags) format(a *app) (fontier.TextFormat, error) {
	var f fontier.TextFormat
	if ff.preset != "" {
		var err error
		if f, err = a.conf.Preset(ff.preset); err != nil {
			return f, err
		}
	}
	f = f.Merge(fontier.TextFormat{
		Bold:            ff.bold,
		Italic:          ff.italic,
		Underline:       ff.underline,
		UnderlinePhrase: ff.phrase,
		Strikethrough:   ff.strike,
		Size:            fontier.ParseSize(ff.size),
		Font:            fontier.ParseFont(ff.font),
	})
	if ff.preset == "" && f.IsPlain() {
		f = a.conf.DefaultFormat()
	}
	return f, nil
}

// converter returns the conversion function selected by the flags.
func (ff *formatFlags) converter(a *app) (func(string) string, error) {
	opts := []fontier.Option{fontier.SkipSpaces(!ff.noSkipSpaces)}
	if ff.table != "" {
		table, ok := glyphs.ByName(ff.table)
		if !ok {
			return nil, fmt.Errorf("%w: %q", fontier.ErrUnknownTable, ff.table)
		}
		c := fontier.Combining{Underline: ff.underline, Strikethrough: ff.strike}
		return func(s string) string {
			return fontier.ApplyVariant(s, table, c, opts...)
		}, nil
	}
	f, err := ff.format(a)
	if err != nil {
		return nil, err
	}
	fontier.T().Debugf("converting with format %v", f)
	return func(s string) string {
		return fontier.Convert(s, f, opts...)
	}, nil
}

func newConvertCmd(a *app) *cobra.Command {
	ff := &formatFlags{}
	var file string
	cmd := &cobra.Command{
		Use:   "convert [text …]",
		Short: "Convert plain text to styled glyphs",
		Long: `Convert plain text to styled glyphs. Text is taken from the arguments,
from a file (--file), or from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, err := ff.converter(a)
			if err != nil {
				return err
			}
			if file != "" {
				return textfile.Convert(context.Background(), file, cmd.OutOrStdout(), convert)
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), convert(text))
			return err
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "convert a text file")
	return cmd
}
