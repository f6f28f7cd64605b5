package record

import "strings"

// FindByCandidateName filters records by a case-insensitive token match:
// the query splits on whitespace and a record matches only when its
// candidate name contains every term. AND semantics, not a phrase match,
// so "doe jane" finds "Jane Doe".
func FindByCandidateName(records []FinancialRecord, query string) []FinancialRecord {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var out []FinancialRecord
	for _, rec := range records {
		name := strings.ToLower(rec.CandidateName)
		matched := true
		for _, term := range terms {
			if !strings.Contains(name, term) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, rec)
		}
	}
	return out
}

// FindByLocation filters records by state and, optionally, district. The
// state compare is case-insensitive; the district query is zero-padded to
// two digits first so "5" matches a stored "05". An empty district matches
// every district in the state.
func FindByLocation(records []FinancialRecord, state, district string) []FinancialRecord {
	state = strings.ToUpper(strings.TrimSpace(state))
	district = padDistrict(district)

	var out []FinancialRecord
	for _, rec := range records {
		if rec.State != state {
			continue
		}
		if district != "" && rec.District != district {
			continue
		}
		out = append(out, rec)
	}
	return out
}
