package record

// StatusCode is the single-character candidate status from the FEC summary
// layout. Codes outside the known set are preserved verbatim rather than
// rejected; the upstream feed has grown new codes before.
type StatusCode string

const (
	StatusChallenger StatusCode = "C"
	StatusIncumbent  StatusCode = "I"
	StatusOpenSeat   StatusCode = "O"
)

// FinancialRecord is one candidate/cycle campaign-finance summary, parsed
// from a pipe-delimited line. Treated as immutable once built: analytics are
// always derived fresh from a record, never written back into it.
type FinancialRecord struct {
	CandidateID     string     `json:"candidate_id"`
	CandidateName   string     `json:"candidate_name"`
	CandidateStatus StatusCode `json:"candidate_status"`
	Party           string     `json:"party"`
	CycleNumber     int        `json:"cycle_number"`

	TotalReceipts           float64 `json:"total_receipts"`
	TransfersFromAuthorized float64 `json:"transfers_from_authorized"`
	TotalDisbursements      float64 `json:"total_disbursements"`
	TransfersToAuthorized   float64 `json:"transfers_to_authorized"`
	BeginningCash           float64 `json:"beginning_cash"`
	EndingCash              float64 `json:"ending_cash"`
	CandidateContributions  float64 `json:"candidate_contributions"`
	CandidateLoans          float64 `json:"candidate_loans"`
	OtherLoans              float64 `json:"other_loans"`
	CandidateLoanRepayments float64 `json:"candidate_loan_repayments"`
	OtherLoanRepayments     float64 `json:"other_loan_repayments"`
	Debts                   float64 `json:"debts"`
	IndividualContributions float64 `json:"individual_contributions"`
	PACContributions        float64 `json:"pac_contributions"`
	PartyContributions      float64 `json:"party_contributions"`
	RefundsToIndividuals    float64 `json:"refunds_to_individuals"`
	RefundsToCommittees     float64 `json:"refunds_to_committees"`

	State    string `json:"state"`
	District string `json:"district"`

	// CoverageEndDate is passed through as the feed formats it; nothing
	// downstream needs it as a time value.
	CoverageEndDate string `json:"coverage_end_date"`
}
