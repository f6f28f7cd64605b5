package record

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// MinFields is the contractual minimum column count of the summary layout.
// Lines shorter than this carry none of the money columns and are dropped.
const MinFields = 30

// InsufficientFieldsError reports a line that split into fewer than
// MinFields columns. One bad line never aborts a batch; callers skip it.
type InsufficientFieldsError struct {
	Fields int
}

func (e *InsufficientFieldsError) Error() string {
	return fmt.Sprintf("record line has %d fields, need at least %d", e.Fields, MinFields)
}

// Parser parses pipe-delimited FEC candidate summary lines. Stateless and
// safe for concurrent use; construct one per call site rather than sharing
// a package-level instance.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine parses one pipe-delimited summary line into a FinancialRecord.
//
// The column mapping is positional, matching the published layout. Two
// quirks of that layout are reproduced deliberately rather than corrected:
// index 16 is skipped entirely, and index 29 is read for both Debts and
// RefundsToIndividuals. The upstream mapping has always been this way and
// "fixing" it here would silently diverge from every consumer of the feed.
func (p *Parser) ParseLine(line string) (FinancialRecord, error) {
	fields := strings.Split(line, "|")
	if len(fields) < MinFields {
		return FinancialRecord{}, &InsufficientFieldsError{Fields: len(fields)}
	}

	return FinancialRecord{
		CandidateID:     field(fields, 0),
		CandidateName:   field(fields, 1),
		CandidateStatus: StatusCode(field(fields, 2)),
		CycleNumber:     intOr(field(fields, 3), 0),
		Party:           field(fields, 4),

		TotalReceipts:           floatOr(field(fields, 5), 0),
		TransfersFromAuthorized: floatOr(field(fields, 6), 0),
		TotalDisbursements:      floatOr(field(fields, 7), 0),
		TransfersToAuthorized:   floatOr(field(fields, 8), 0),
		BeginningCash:           floatOr(field(fields, 9), 0),
		EndingCash:              floatOr(field(fields, 10), 0),
		CandidateContributions:  floatOr(field(fields, 11), 0),
		CandidateLoans:          floatOr(field(fields, 12), 0),
		OtherLoans:              floatOr(field(fields, 13), 0),
		CandidateLoanRepayments: floatOr(field(fields, 14), 0),
		OtherLoanRepayments:     floatOr(field(fields, 15), 0),
		IndividualContributions: floatOr(field(fields, 17), 0),

		State:    strings.ToUpper(field(fields, 18)),
		District: padDistrict(field(fields, 19)),

		PACContributions:   floatOr(field(fields, 25), 0),
		PartyContributions: floatOr(field(fields, 26), 0),
		CoverageEndDate:    field(fields, 27),

		// Index 29 feeds both fields; see the function comment.
		Debts:                floatOr(field(fields, 29), 0),
		RefundsToIndividuals: floatOr(field(fields, 29), 0),
		RefundsToCommittees:  floatOr(field(fields, 30), 0),
	}, nil
}

// ParseAll splits text on newlines and parses each non-blank line. Lines
// that fail ParseLine are logged and dropped; the rest parse independently,
// so output order matches input order minus the drops.
func (p *Parser) ParseAll(text string) []FinancialRecord {
	log := zap.L().With(zap.String("component", "record_parser"))

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	records := make([]FinancialRecord, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := p.ParseLine(line)
		if err != nil {
			log.Warn("dropping unparseable record line",
				zap.Int("line", i+1),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}

	return records
}
