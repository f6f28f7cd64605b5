package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/opencivic/campaign-cli/internal/analytics"
	"github.com/opencivic/campaign-cli/internal/exporter"
	"github.com/opencivic/campaign-cli/internal/record"
)

var (
	analyzeFilePath string
	analyzeFormat   string
	analyzeXLSXPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse a summary file and derive funding analytics per candidate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID))

		data, err := os.ReadFile(analyzeFilePath)
		if err != nil {
			return eris.Wrap(err, "analyze: read input file")
		}

		parser := record.NewParser()
		var records []record.FinancialRecord
		if cfg.Batch.MaxConcurrentLines > 1 {
			records = parseConcurrent(parser, string(data), cfg.Batch.MaxConcurrentLines)
		} else {
			records = parser.ParseAll(string(data))
		}

		engine := analytics.NewEngine()
		reports := make([]analytics.CandidateReport, 0, len(records))
		for _, rec := range records {
			reports = append(reports, analytics.BuildReport(engine, rec))
		}

		log.Info("analysis complete",
			zap.Int("records", len(records)),
			zap.String("file", analyzeFilePath),
		)

		if analyzeXLSXPath != "" {
			if err := exporter.WriteXLSX(analyzeXLSXPath, cfg.Export.SheetName, reports); err != nil {
				return err
			}
			log.Info("exported workbook", zap.String("path", analyzeXLSXPath))
			return nil
		}

		return emit(cmd, reports, analyzeFormat)
	},
}

// parseConcurrent parses lines in parallel. Lines are independent, so the
// only coordination needed is writing each result to its own slot; nil slots
// (blank or dropped lines) are filtered afterwards, preserving input order.
func parseConcurrent(parser *record.Parser, text string, limit int) []record.FinancialRecord {
	log := zap.L().With(zap.String("component", "record_parser"))

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	slots := make([]*record.FinancialRecord, len(lines))

	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		i, line := i, line
		g.Go(func() error {
			rec, err := parser.ParseLine(line)
			if err != nil {
				log.Warn("dropping unparseable record line",
					zap.Int("line", i+1),
					zap.Error(err),
				)
				return nil
			}
			slots[i] = &rec
			return nil
		})
	}
	_ = g.Wait()

	records := make([]record.FinancialRecord, 0, len(lines))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

// emit writes v to the command's stdout as JSON or YAML.
func emit(cmd *cobra.Command, v any, formatName string) error {
	switch formatName {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "encode json")
		}
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return eris.Wrap(err, "encode yaml")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	default:
		return eris.Errorf("unknown output format %q (want json or yaml)", formatName)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFilePath, "file", "", "path to pipe-delimited summary file (required)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "output format: json or yaml")
	analyzeCmd.Flags().StringVar(&analyzeXLSXPath, "xlsx", "", "write reports to an XLSX workbook instead of stdout")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}
