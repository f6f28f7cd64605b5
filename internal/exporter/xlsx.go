// Package exporter writes candidate reports to spreadsheet files for the
// researchers who live in Excel rather than on the command line.
package exporter

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/opencivic/campaign-cli/internal/analytics"
	"github.com/opencivic/campaign-cli/internal/format"
)

var header = []string{
	"Candidate ID",
	"Candidate Name",
	"Party",
	"State",
	"District",
	"Status",
	"Total Funding",
	"Individual %",
	"PAC %",
	"Party %",
	"Candidate %",
	"Other %",
	"Cash on Hand",
	"Debts",
	"Net Position",
	"Burn Rate",
	"Efficiency",
	"Primary Source",
	"Corporate Influence",
	"Grassroots Support",
	"Self-Funded",
	"Party-Supported",
	"Double-Counting Flag",
}

// WriteXLSX writes one row per candidate report to a single-sheet workbook.
func WriteXLSX(path, sheetName string, reports []analytics.CandidateReport) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "exporter: add sheet")
	}

	hdr := sheet.AddRow()
	for _, h := range header {
		hdr.AddCell().SetString(h)
	}

	for _, rep := range reports {
		writeRow(sheet.AddRow(), rep)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "exporter: save workbook")
	}
	return nil
}

func writeRow(row *xlsx.Row, rep analytics.CandidateReport) {
	rec, a, prof := rep.Record, rep.Analytics, rep.Profile

	for _, v := range []string{
		rec.CandidateID,
		rec.CandidateName,
		rec.Party,
		rec.State,
		rec.District,
		string(rec.CandidateStatus),
		format.Currency(a.TotalFunding),
		format.Percentage(a.Sources.Individual.Percent),
		format.Percentage(a.Sources.PAC.Percent),
		format.Percentage(a.Sources.Party.Percent),
		format.Percentage(a.Sources.Candidate.Percent),
		format.Percentage(a.Sources.Other.Percent),
		format.Currency(a.Health.CashOnHand),
		format.Currency(a.Health.Debt),
		format.Currency(a.Health.NetPosition),
		strconv.FormatFloat(a.Health.BurnRate, 'f', 2, 64),
		format.Percentage(a.Expenditures.Efficiency),
		prof.PrimaryFundingSource,
		string(prof.CorporateInfluence),
		string(prof.GrassrootsSupport),
		strconv.FormatBool(prof.SelfFunded),
		strconv.FormatBool(prof.PartySupported),
		strconv.FormatBool(a.Transfers.HasDoubleCountingIssue),
	} {
		row.AddCell().SetString(v)
	}
}
