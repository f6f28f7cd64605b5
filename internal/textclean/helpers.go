package textclean

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default placeholders used when sanitization produces nothing worth showing.
const (
	PlaceholderTitle      = "Untitled Bill"
	PlaceholderNoSummary  = "No summary available"
	PlaceholderBadSummary = "Summary not available in readable format"
)

// Placeholders holds the fallback strings emitted for missing or unreadable
// titles and summaries. Deployments can override them via configuration.
type Placeholders struct {
	Title      string
	NoSummary  string
	BadSummary string
}

// DefaultPlaceholders returns the standard fallback strings.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Title:      PlaceholderTitle,
		NoSummary:  PlaceholderNoSummary,
		BadSummary: PlaceholderBadSummary,
	}
}

// minSummaryLen is the shortest normalized summary, in characters, treated
// as real content. Anything shorter is almost always markup residue, not an
// actual summary.
const minSummaryLen = 10

var trailingDashRe = regexp.MustCompile(`\s*-\s*$`)

// CleanTitle normalizes a bill title and strips a single trailing dash
// suffix left by upstream title formatting. Empty input yields the title
// placeholder.
func (n *Normalizer) CleanTitle(markup string) string {
	if markup == "" {
		return n.placeholders.Title
	}
	title := trailingDashRe.ReplaceAllString(n.Normalize(markup), "")
	if title == "" {
		return n.placeholders.Title
	}
	return title
}

// CleanSummary normalizes a bill summary. Empty input yields the no-summary
// placeholder; a normalized result shorter than minSummaryLen characters is
// treated as a sanitization failure rather than a valid short summary. The
// length check counts runes, not bytes, so multibyte text is measured the
// way a reader would.
func (n *Normalizer) CleanSummary(markup string) string {
	if markup == "" {
		return n.placeholders.NoSummary
	}
	summary := n.Normalize(markup)
	if utf8.RuneCountInString(summary) < minSummaryLen {
		return n.placeholders.BadSummary
	}
	return summary
}

// FormatDescription cleans a summary and reflows it for display: paragraphs
// separated by one blank line, bullet lines indented two spaces.
func (n *Normalizer) FormatDescription(markup string) string {
	summary := n.CleanSummary(markup)

	var paragraphs []string
	for _, para := range strings.Split(summary, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		for i, line := range lines {
			if strings.HasPrefix(line, "• ") {
				lines[i] = "  " + line
			}
		}
		paragraphs = append(paragraphs, strings.Join(lines, "\n"))
	}

	return strings.Join(paragraphs, "\n\n")
}
