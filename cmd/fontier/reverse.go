package main

import (
	"fmt"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/fontier/preview"
	"github.com/spf13/cobra"
)

func newReverseCmd(a *app) *cobra.Command {
	var restore, compat bool
	cmd := &cobra.Command{
		Use:   "reverse [text …]",
		Short: "Map styled glyphs back to plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			var opts []fontier.NormalizerOption
			if restore {
				opts = append(opts, fontier.RestoreSpaces())
			}
			if compat {
				opts = append(opts, fontier.CompatibilityFallback())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fontier.NewNormalizer(opts...).Denormalize(text))
			return err
		},
	}
	cmd.Flags().BoolVar(&restore, "restore-spaces", false, "replace no-break spaces by spaces")
	cmd.Flags().BoolVar(&compat, "compat", false, "fold unknown styled characters by compatibility normalization")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text …]",
		Short: "Check wether text contains styled glyphs",
		Long: `Check wether text contains styled glyphs and print the suggested mode
of conversion: "reverse" for styled text, "forward" otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			mode := preview.SuggestMode(text)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), mode)
			return err
		},
	}
	return cmd
}
