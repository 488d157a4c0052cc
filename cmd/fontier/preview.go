package main

import (
	"os"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/fontier/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	var colored bool
	var width int
	cmd := &cobra.Command{
		Use:   "preview [text …]",
		Short: "Preview text in all formats, or reverted to plain text",
		Long: `Preview text in all format presets on a single line each. If the text
already contains styled glyphs, the plain text is shown instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			console := preview.NewConsole(cmd.OutOrStdout(), colored)
			console.Config = a.conf.Preview()
			if width > 0 {
				console.Config.Width = width
			} else if !cmd.Flags().Changed("width") && colored {
				console.Config.Width = preview.WidthFromTerminal(int(os.Stdout.Fd()), console.Config.Width)
			}
			mode := preview.SuggestMode(text)
			if err = console.Hint("mode: " + mode.String()); err != nil {
				return err
			}
			if mode == preview.ModeReverse {
				return console.Print("plain", fontier.Denormalize(text))
			}
			for _, name := range a.conf.Presets() {
				f, _ := a.conf.Preset(name)
				if err = console.Print(name, fontier.Convert(text, f)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&colored, "color", false, "colored output, sized to the terminal")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "maximum width of preview lines")
	return cmd
}
