package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opencivic/campaign-cli/internal/record"
)

var (
	lookupFilePath string
	lookupName     string
	lookupState    string
	lookupDistrict string
	lookupFormat   string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Filter a summary file by candidate name or location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if lookupName == "" && lookupState == "" {
			return eris.New("lookup: at least one of --name or --state is required")
		}
		if lookupDistrict != "" && lookupState == "" {
			return eris.New("lookup: --district requires --state")
		}

		data, err := os.ReadFile(lookupFilePath)
		if err != nil {
			return eris.Wrap(err, "lookup: read input file")
		}

		records := record.NewParser().ParseAll(string(data))

		if lookupName != "" {
			records = record.FindByCandidateName(records, lookupName)
		}
		if lookupState != "" {
			records = record.FindByLocation(records, lookupState, lookupDistrict)
		}

		zap.L().Info("lookup complete",
			zap.Int("matches", len(records)),
			zap.String("file", lookupFilePath),
		)

		return emit(cmd, records, lookupFormat)
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupFilePath, "file", "", "path to pipe-delimited summary file (required)")
	lookupCmd.Flags().StringVar(&lookupName, "name", "", "candidate name terms (all must match)")
	lookupCmd.Flags().StringVar(&lookupState, "state", "", "two-letter state code")
	lookupCmd.Flags().StringVar(&lookupDistrict, "district", "", "district number (zero-padded automatically)")
	lookupCmd.Flags().StringVar(&lookupFormat, "format", "json", "output format: json or yaml")
	_ = lookupCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(lookupCmd)
}
