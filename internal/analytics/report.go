package analytics

import "github.com/opencivic/campaign-cli/internal/record"

// CandidateReport bundles a parsed record with everything derived from it.
// This is the unit the CLI emits and the exporter writes.
type CandidateReport struct {
	Record    record.FinancialRecord `json:"record" yaml:"record"`
	Analytics FundingAnalytics       `json:"analytics" yaml:"analytics"`
	Profile   ContributorProfile     `json:"profile" yaml:"profile"`
}

// BuildReport runs the full derivation chain for one record.
func BuildReport(e *Engine, rec record.FinancialRecord) CandidateReport {
	a := e.Analyze(rec)
	return CandidateReport{
		Record:    rec,
		Analytics: a,
		Profile:   Classify(a),
	}
}
