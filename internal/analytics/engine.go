package analytics

import (
	"github.com/opencivic/campaign-cli/internal/record"
)

// SourceBreakdown is one funding bucket: the raw dollar amount and its share
// of total funding.
type SourceBreakdown struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// FundingSources breaks total funding into the itemized buckets plus a
// residual Other bucket for everything the feed doesn't itemize.
type FundingSources struct {
	Individual SourceBreakdown `json:"individual"`
	PAC        SourceBreakdown `json:"pac"`
	Party      SourceBreakdown `json:"party"`
	Candidate  SourceBreakdown `json:"candidate"`
	Other      SourceBreakdown `json:"other"`
}

// Expenditures holds spending metrics. Total is reported as filed;
// AdjustedTotal nets out transfers to authorized committees.
type Expenditures struct {
	Total         float64 `json:"total"`
	AdjustedTotal float64 `json:"adjusted_total"`
	// Efficiency is the percentage of raised funds retained as cash on hand.
	Efficiency float64 `json:"efficiency"`
}

// FinancialHealth holds balance-sheet style metrics for a campaign.
type FinancialHealth struct {
	CashOnHand  float64 `json:"cash_on_hand"`
	Debt        float64 `json:"debt"`
	NetPosition float64 `json:"net_position"`
	BurnRate    float64 `json:"burn_rate"`
}

// TransferActivity summarizes movement between authorized committees of the
// same candidate.
type TransferActivity struct {
	TransfersIn  float64 `json:"transfers_in"`
	TransfersOut float64 `json:"transfers_out"`
	NetTransfers float64 `json:"net_transfers"`
	// HasDoubleCountingIssue flags records where money moved in both
	// directions between authorized committees, so the same dollars can
	// appear in receipts and disbursements. Diagnostic only: the adjusted
	// totals subtract transfers unconditionally either way.
	HasDoubleCountingIssue bool `json:"has_double_counting_issue"`
}

// FundingAnalytics is the full set of metrics derived from one record.
// Computed fresh on every call; never partially populated.
type FundingAnalytics struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`

	// TotalFunding is adjusted receipts: the denominator for every
	// percentage below.
	TotalFunding               float64 `json:"total_funding"`
	AdjustedTotalReceipts      float64 `json:"adjusted_total_receipts"`
	AdjustedTotalDisbursements float64 `json:"adjusted_total_disbursements"`

	Sources      FundingSources   `json:"funding_sources"`
	Expenditures Expenditures     `json:"expenditures"`
	Health       FinancialHealth  `json:"financial_health"`
	Transfers    TransferActivity `json:"transfer_activity"`
}

// Engine derives funding analytics from parsed records. Stateless; safe for
// concurrent use.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Analyze derives the full metric set from one record. Total function: every
// input produces a result, with zero-denominator cases defined to yield zero
// percentages rather than failing.
//
// Committee-to-committee transfers under the same candidate show up in both
// the sending committee's disbursements and the receiving committee's
// receipts. Subtracting authorized transfers from both sides yields totals
// that count each dollar once.
func (e *Engine) Analyze(rec record.FinancialRecord) FundingAnalytics {
	adjReceipts := rec.TotalReceipts - rec.TransfersFromAuthorized
	adjDisbursements := rec.TotalDisbursements - rec.TransfersToAuthorized
	totalFunding := adjReceipts

	individual := rec.IndividualContributions
	pac := rec.PACContributions
	party := rec.PartyContributions
	candidate := rec.CandidateContributions + rec.CandidateLoans

	other := totalFunding - (individual + pac + party + candidate)
	if other < 0 {
		other = 0
	}

	efficiency := 0.0
	if totalFunding > 0 {
		efficiency = rec.EndingCash / totalFunding * 100
	}

	burnDenom := totalFunding
	if burnDenom < 1 {
		burnDenom = 1
	}

	return FundingAnalytics{
		CandidateID:   rec.CandidateID,
		CandidateName: rec.CandidateName,

		TotalFunding:               totalFunding,
		AdjustedTotalReceipts:      adjReceipts,
		AdjustedTotalDisbursements: adjDisbursements,

		Sources: FundingSources{
			Individual: SourceBreakdown{Amount: individual, Percent: pct(individual, totalFunding)},
			PAC:        SourceBreakdown{Amount: pac, Percent: pct(pac, totalFunding)},
			Party:      SourceBreakdown{Amount: party, Percent: pct(party, totalFunding)},
			Candidate:  SourceBreakdown{Amount: candidate, Percent: pct(candidate, totalFunding)},
			Other:      SourceBreakdown{Amount: other, Percent: pct(other, totalFunding)},
		},
		Expenditures: Expenditures{
			Total:         rec.TotalDisbursements,
			AdjustedTotal: adjDisbursements,
			Efficiency:    efficiency,
		},
		Health: FinancialHealth{
			CashOnHand:  rec.EndingCash,
			Debt:        rec.Debts,
			NetPosition: rec.EndingCash - rec.Debts,
			BurnRate:    adjDisbursements / burnDenom,
		},
		Transfers: TransferActivity{
			TransfersIn:            rec.TransfersFromAuthorized,
			TransfersOut:           rec.TransfersToAuthorized,
			NetTransfers:           rec.TransfersFromAuthorized - rec.TransfersToAuthorized,
			HasDoubleCountingIssue: rec.TransfersFromAuthorized > 0 && rec.TransfersToAuthorized > 0,
		},
	}
}

// pct returns amount as a percentage of total, or 0 when total is not
// positive. Negative-or-zero funding makes every share meaningless, so all
// shares are defined as zero rather than dividing.
func pct(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return amount / total * 100
}
