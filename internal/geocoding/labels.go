package geocoding

import (
	"regexp"
	"strings"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// LabelParser extracts address fields from labelled-line text such as
//
//	City: Tehran
//	Postcode: 1234567890
//
// Each field has one case-insensitive pattern; the value is the remainder of
// the line after the colon. Parsing never fails: unmatched labels leave the
// field empty.
type LabelParser struct {
	patterns map[models.Field]*regexp.Regexp
}

// NewLabelParser compiles one pattern per label.
func NewLabelParser(labels map[models.Field]string) *LabelParser {
	patterns := make(map[models.Field]*regexp.Regexp, len(labels))
	for field, label := range labels {
		patterns[field] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `:[ \t]*(.*)`)
	}

	return &LabelParser{patterns: patterns}
}

// Fields returns the labelled values found in text. Labels without a
// non-empty value are omitted.
func (lp *LabelParser) Fields(text string) map[models.Field]string {
	found := make(map[models.Field]string, len(lp.patterns))
	for field, pattern := range lp.patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if value := strings.TrimSpace(match[1]); value != "" {
			found[field] = value
		}
	}

	return found
}

// Parse builds an address from the labelled text. FullAddress falls back to
// the first non-blank line of text, verbatim, and FormattedDisplay keeps the
// raw text verbatim.
func (lp *LabelParser) Parse(text string) models.AddressDetails {
	addr := models.AddressDetails{FormattedDisplay: text}
	for field, value := range lp.Fields(text) {
		addr.Set(field, value)
	}

	if addr.Postcode != "" {
		addr.Postcode = NormalizeDigits(addr.Postcode)
	}

	if addr.FullAddress == "" {
		addr.FullAddress = firstLine(text)
	}

	return addr
}

func firstLine(text string) string {
	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")
		if strings.TrimSpace(line) != "" {
			return line
		}
	}

	return ""
}
