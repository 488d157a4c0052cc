package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/fontier"
	"github.com/npillmayer/fontier/styled/inline"
	"github.com/spf13/cobra"
)

func newHTMLCmd(a *app) *cobra.Command {
	var noSkipSpaces bool
	cmd := &cobra.Command{
		Use:   "html [fragment …]",
		Short: "Convert an HTML fragment, styling text by inline elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				r = strings.NewReader(strings.Join(args, " "))
			}
			text, err := inline.TextFromHTML(r)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text.Render(fontier.SkipSpaces(!noSkipSpaces)))
			return err
		},
	}
	cmd.Flags().BoolVar(&noSkipSpaces, "no-skip-spaces", false, "strike through whitespace, too")
	return cmd
}
