package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencivic/campaign-cli/internal/record"
)

// scenarioRecord mirrors the parsed form of the canonical test line:
// C001|Jane Doe|I|2024|DEM|100000|20000|80000|10000|...
func scenarioRecord() record.FinancialRecord {
	return record.FinancialRecord{
		CandidateID:             "C001",
		CandidateName:           "Jane Doe",
		CandidateStatus:         record.StatusIncumbent,
		Party:                   "DEM",
		CycleNumber:             2024,
		TotalReceipts:           100000,
		TransfersFromAuthorized: 20000,
		TotalDisbursements:      80000,
		TransfersToAuthorized:   10000,
		BeginningCash:           5000,
		EndingCash:              25000,
		CandidateContributions:  1000,
		IndividualContributions: 60000,
		State:                   "CA",
		District:                "05",
		Debts:                   5000,
		RefundsToIndividuals:    5000,
		RefundsToCommittees:     2000,
	}
}

func TestAnalyzeDoubleCountingCorrection(t *testing.T) {
	a := NewEngine().Analyze(scenarioRecord())

	assert.Equal(t, 80000.0, a.AdjustedTotalReceipts)
	assert.Equal(t, 80000.0, a.TotalFunding)
	assert.Equal(t, 70000.0, a.AdjustedTotalDisbursements)
	assert.True(t, a.Transfers.HasDoubleCountingIssue)
	assert.Equal(t, 20000.0, a.Transfers.TransfersIn)
	assert.Equal(t, 10000.0, a.Transfers.TransfersOut)
	assert.Equal(t, 10000.0, a.Transfers.NetTransfers)
}

func TestAnalyzeFundingSources(t *testing.T) {
	a := NewEngine().Analyze(scenarioRecord())

	// Percentages are computed against adjusted receipts (80000), not the
	// raw 100000.
	assert.Equal(t, 60000.0, a.Sources.Individual.Amount)
	assert.InDelta(t, 75.0, a.Sources.Individual.Percent, 1e-9)
	assert.Equal(t, 1000.0, a.Sources.Candidate.Amount)
	assert.InDelta(t, 1.25, a.Sources.Candidate.Percent, 1e-9)

	// Residual bucket absorbs whatever the itemized sources don't cover.
	assert.Equal(t, 19000.0, a.Sources.Other.Amount)
	assert.InDelta(t, 23.75, a.Sources.Other.Percent, 1e-9)
}

func TestAnalyzeExpendituresAndHealth(t *testing.T) {
	a := NewEngine().Analyze(scenarioRecord())

	assert.Equal(t, 80000.0, a.Expenditures.Total)
	assert.Equal(t, 70000.0, a.Expenditures.AdjustedTotal)
	assert.InDelta(t, 31.25, a.Expenditures.Efficiency, 1e-9)

	assert.Equal(t, 25000.0, a.Health.CashOnHand)
	assert.Equal(t, 5000.0, a.Health.Debt)
	assert.Equal(t, 20000.0, a.Health.NetPosition)
	assert.InDelta(t, 0.875, a.Health.BurnRate, 1e-9)
}

func TestAnalyzeOtherNeverNegative(t *testing.T) {
	// Itemized sources exceed total funding; the residual clamps at zero
	// instead of going negative.
	rec := record.FinancialRecord{
		TotalReceipts:           50000,
		IndividualContributions: 40000,
		PACContributions:        30000,
	}

	a := NewEngine().Analyze(rec)
	assert.Equal(t, 0.0, a.Sources.Other.Amount)
	assert.Equal(t, 0.0, a.Sources.Other.Percent)
}

func TestAnalyzeZeroAndNegativeFunding(t *testing.T) {
	tests := []struct {
		name string
		rec  record.FinancialRecord
	}{
		{"zero funding", record.FinancialRecord{IndividualContributions: 5000}},
		{"negative funding", record.FinancialRecord{
			TotalReceipts:           10000,
			TransfersFromAuthorized: 30000,
			IndividualContributions: 5000,
			EndingCash:              1000,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewEngine().Analyze(tt.rec)

			assert.Equal(t, 0.0, a.Sources.Individual.Percent)
			assert.Equal(t, 0.0, a.Sources.PAC.Percent)
			assert.Equal(t, 0.0, a.Sources.Party.Percent)
			assert.Equal(t, 0.0, a.Sources.Candidate.Percent)
			assert.Equal(t, 0.0, a.Sources.Other.Percent)
			assert.Equal(t, 0.0, a.Expenditures.Efficiency)
		})
	}
}

func TestAnalyzeBurnRateGuard(t *testing.T) {
	// Zero funding divides by the max(1, funding) guard instead of zero.
	rec := record.FinancialRecord{TotalDisbursements: 500}

	a := NewEngine().Analyze(rec)
	assert.InDelta(t, 500.0, a.Health.BurnRate, 1e-9)
}

func TestAnalyzeDeterministic(t *testing.T) {
	e := NewEngine()
	rec := scenarioRecord()

	first := e.Analyze(rec)
	second := e.Analyze(rec)
	require.Equal(t, first, second)
}

func TestAnalyzeDoesNotMutateRecord(t *testing.T) {
	rec := scenarioRecord()
	before := rec

	_ = NewEngine().Analyze(rec)
	assert.Equal(t, before, rec)
}

func TestBuildReport(t *testing.T) {
	rep := BuildReport(NewEngine(), scenarioRecord())

	assert.Equal(t, "C001", rep.Record.CandidateID)
	assert.Equal(t, 80000.0, rep.Analytics.TotalFunding)
	assert.Equal(t, SourceIndividual, rep.Profile.PrimaryFundingSource)
}
