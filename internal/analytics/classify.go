package analytics

// InfluenceLevel is a coarse High/Medium/Low bucket for a funding share.
type InfluenceLevel string

const (
	InfluenceHigh   InfluenceLevel = "High"
	InfluenceMedium InfluenceLevel = "Medium"
	InfluenceLow    InfluenceLevel = "Low"
)

// Funding-source bucket names, in primary-source evaluation order.
const (
	SourceIndividual = "individual"
	SourcePAC        = "pac"
	SourceParty      = "party"
	SourceCandidate  = "candidate"
	SourceOther      = "other"
)

// Classification thresholds, all strict comparisons.
const (
	corporateHighPct   = 40
	corporateMediumPct = 15
	grassrootsHighPct  = 60
	grassrootsMedPct   = 30
	selfFundedPct      = 50
	partySupportPct    = 10
)

// ContributorProfile is a purely derived set of qualitative labels over a
// record's funding breakdown. No hidden state: the same analytics always
// classify the same way.
type ContributorProfile struct {
	PrimaryFundingSource string         `json:"primary_funding_source"`
	CorporateInfluence   InfluenceLevel `json:"corporate_influence"`
	GrassrootsSupport    InfluenceLevel `json:"grassroots_support"`
	SelfFunded           bool           `json:"self_funded"`
	PartySupported       bool           `json:"party_supported"`
}

// Classify labels a funding breakdown. The primary source is the bucket
// with the strictly largest dollar amount; ties keep the earlier bucket in
// the fixed order individual, pac, party, candidate, other, so individual
// wins any tie.
func Classify(a FundingAnalytics) ContributorProfile {
	src := a.Sources

	primary := SourceIndividual
	best := src.Individual.Amount
	for _, c := range []struct {
		name   string
		amount float64
	}{
		{SourcePAC, src.PAC.Amount},
		{SourceParty, src.Party.Amount},
		{SourceCandidate, src.Candidate.Amount},
		{SourceOther, src.Other.Amount},
	} {
		if c.amount > best {
			primary = c.name
			best = c.amount
		}
	}

	return ContributorProfile{
		PrimaryFundingSource: primary,
		CorporateInfluence:   level(src.PAC.Percent, corporateHighPct, corporateMediumPct),
		GrassrootsSupport:    level(src.Individual.Percent, grassrootsHighPct, grassrootsMedPct),
		SelfFunded:           src.Candidate.Percent > selfFundedPct,
		PartySupported:       src.Party.Percent > partySupportPct,
	}
}

func level(pct float64, high, medium float64) InfluenceLevel {
	switch {
	case pct > high:
		return InfluenceHigh
	case pct > medium:
		return InfluenceMedium
	default:
		return InfluenceLow
	}
}
