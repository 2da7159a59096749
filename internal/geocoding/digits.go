package geocoding

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeDigits rewrites Extended Arabic-Indic (Persian) and Arabic-Indic
// digits to ASCII so postcodes compare equal regardless of script.
func NormalizeDigits(s string) string {
	out, _, err := transform.String(
		transform.Chain(
			norm.NFC,
			runes.Map(asciiDigit),
		),
		s,
	)
	if err != nil {
		return s
	}

	return out
}

func asciiDigit(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	default:
		return r
	}
}
