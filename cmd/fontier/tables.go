package main

import (
	"fmt"

	"github.com/npillmayer/fontier/glyphs"
	"github.com/npillmayer/fontier/preview"
	"github.com/spf13/cobra"
)

const sampleText = "Hello World 0123"

func newTablesCmd(a *app) *cobra.Command {
	var presets, colored bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List glyph tables or format presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			console := preview.NewConsole(cmd.OutOrStdout(), colored)
			console.Config = a.conf.Preview()
			if presets {
				for _, name := range a.conf.Presets() {
					f, _ := a.conf.Preset(name)
					if err := console.Print(name, f.String()); err != nil {
						return err
					}
				}
				return nil
			}
			for _, table := range glyphs.All() {
				label := fmt.Sprintf("%-13s", table.Name())
				if err := console.Print(label, table.Sample(sampleText)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&presets, "presets", false, "list format presets instead of glyph tables")
	cmd.Flags().BoolVar(&colored, "color", false, "colored output")
	return cmd
}
