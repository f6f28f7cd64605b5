package textclean

import (
	"regexp"
	"strconv"
	"strings"
)

// step is one rewrite in the normalization pipeline. Steps run in order and
// each operates on the previous step's output; the order is load-bearing
// (entity decoding before tag stripping, whitespace cleanup after).
type step struct {
	name  string
	apply func(string) string
}

// sub builds a step from a single regexp substitution.
func sub(name, pattern, repl string) step {
	re := regexp.MustCompile(pattern)
	return step{name: name, apply: func(s string) string {
		return re.ReplaceAllString(s, repl)
	}}
}

var namedEntities = []struct{ entity, text string }{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&apos;", "'"},
}

var (
	numericEntityRe = regexp.MustCompile(`&#([xX]?)([0-9a-fA-F]+);`)
	multiNewlineRe  = regexp.MustCompile(`\n{3,}`)
	spaceRunRe      = regexp.MustCompile(`[ \t]+`)
	leadingSpaceRe  = regexp.MustCompile(`(?m)^[ \t]+`)
)

// pipeline is the ordered rule list applied by Normalize.
var pipeline = []step{
	sub("strip_script_blocks", `(?is)<script\b[^>]*>.*?</script>`, ""),
	sub("strip_style_blocks", `(?is)<style\b[^>]*>.*?</style>`, ""),
	{name: "decode_named_entities", apply: decodeNamedEntities},
	sub("list_items", `(?i)<li\b[^>]*>`, "• "),
	sub("list_items_close", `(?i)</li>`, "\n"),
	sub("lists", `(?i)</?(ul|ol)\b[^>]*>`, "\n"),
	sub("blocks_open", `(?i)<(p|div|h[1-6])\b[^>]*>`, "\n"),
	sub("blocks_close", `(?i)</(p|div|h[1-6])>`, "\n"),
	sub("line_breaks", `(?i)<br\s*/?>`, "\n"),
	sub("strip_emphasis", `(?i)</?(strong|b|em|i|span)\b[^>]*>`, ""),
	sub("anchors", `(?is)<a\b[^>]*href=["']([^"']*)["'][^>]*>(.*?)</a>`, "$2 ($1)"),
	sub("strip_remaining_tags", `<[^>]+>`, ""),
	{name: "tidy_whitespace", apply: tidyWhitespace},
	{name: "decode_numeric_entities", apply: decodeNumericEntities},
}

// Normalizer converts embedded markup in free-text fields into plain text.
// Immutable after construction and safe for concurrent use.
type Normalizer struct {
	placeholders Placeholders
}

// NewNormalizer creates a Normalizer with the default placeholders.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithPlaceholders(DefaultPlaceholders())
}

// NewNormalizerWithPlaceholders creates a Normalizer whose title and summary
// fallbacks come from p. Empty fields fall back to the defaults.
func NewNormalizerWithPlaceholders(p Placeholders) *Normalizer {
	def := DefaultPlaceholders()
	if p.Title == "" {
		p.Title = def.Title
	}
	if p.NoSummary == "" {
		p.NoSummary = def.NoSummary
	}
	if p.BadSummary == "" {
		p.BadSummary = def.BadSummary
	}
	return &Normalizer{placeholders: p}
}

// Normalize runs the ordered rewrite pipeline over markup-bearing text.
// Never fails: empty input yields an empty string.
func (n *Normalizer) Normalize(markup string) string {
	if markup == "" {
		return ""
	}
	s := markup
	for _, st := range pipeline {
		s = st.apply(s)
	}
	return s
}

func decodeNamedEntities(s string) string {
	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.entity, e.text)
	}
	return s
}

// tidyWhitespace collapses the slack the tag rewrites leave behind: runs of
// spaces and tabs become one space, leading indent on each line is removed,
// three or more newlines become exactly two, and the ends are trimmed.
func tidyWhitespace(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = leadingSpaceRe.ReplaceAllString(s, "")
	s = multiNewlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// decodeNumericEntities rewrites &#NN; and &#xHH; references to their runes.
// References that don't parse are left as-is.
func decodeNumericEntities(s string) string {
	return numericEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		groups := numericEntityRe.FindStringSubmatch(m)
		base := 10
		if groups[1] != "" {
			base = 16
		}
		v, err := strconv.ParseInt(groups[2], base, 32)
		if err != nil {
			return m
		}
		return string(rune(v))
	})
}
