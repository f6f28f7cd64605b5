package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/opencivic/campaign-cli/internal/textclean"
)

var (
	cleanFilePath string
	cleanMode     string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize markup-bearing text to plain text",
	Long:  "Reads markup from --file or stdin and writes sanitized plain text. Mode selects the policy applied after normalization: raw, title, summary, or description.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var data []byte
		var err error
		if cleanFilePath != "" {
			data, err = os.ReadFile(cleanFilePath)
			if err != nil {
				return eris.Wrap(err, "clean: read input file")
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return eris.Wrap(err, "clean: read stdin")
			}
		}

		n := textclean.NewNormalizerWithPlaceholders(cfg.Clean.Placeholders())
		var out string
		switch cleanMode {
		case "raw":
			out = n.Normalize(string(data))
		case "title":
			out = n.CleanTitle(string(data))
		case "summary":
			out = n.CleanSummary(string(data))
		case "description":
			out = n.FormatDescription(string(data))
		default:
			return eris.Errorf("clean: unknown mode %q", cleanMode)
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanFilePath, "file", "", "path to markup file (default: stdin)")
	cleanCmd.Flags().StringVar(&cleanMode, "mode", "raw", "cleanup mode: raw, title, summary, or description")
	rootCmd.AddCommand(cleanCmd)
}
