package main

import (
	"io"
	"strings"

	"github.com/npillmayer/fontier/config"
	"github.com/spf13/cobra"
)

// app holds state shared between commands.
type app struct {
	configPath string
	conf       *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "fontier",
		Short:         "Style plain text with Unicode look-alike glyphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (default: located in user config dir)")
	rootCmd.AddCommand(
		newConvertCmd(a),
		newReverseCmd(a),
		newCheckCmd(a),
		newTablesCmd(a),
		newHTMLCmd(a),
		newPreviewCmd(a),
	)
	return rootCmd
}

func (a *app) loadConfig() error {
	var err error
	if a.configPath != "" {
		a.conf, err = config.Load(a.configPath)
	} else {
		a.conf, err = config.Locate()
	}
	if err != nil {
		return err
	}
	return a.conf.SetupTracing()
}

// inputText returns the command arguments joined by spaces, or the content
// of stdin if there are no arguments.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
