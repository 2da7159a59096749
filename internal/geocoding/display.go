package geocoding

import (
	"regexp"
	"strings"
)

// displayJoiner joins address parts with a locale separator and removes the
// artifacts empty parts leave behind: doubled separators collapse to one and
// leading or trailing separators are stripped.
type displayJoiner struct {
	sep     string
	doubled *regexp.Regexp
	edges   *regexp.Regexp
	mark    string
}

func newDisplayJoiner(sep string) *displayJoiner {
	mark := strings.TrimSpace(sep)
	if mark == "" {
		mark = sep
	}
	quoted := regexp.QuoteMeta(mark)

	return &displayJoiner{
		sep:     sep,
		mark:    mark,
		doubled: regexp.MustCompile(quoted + `(?:\s*` + quoted + `)+`),
		edges:   regexp.MustCompile(`^\s*` + quoted + `\s*|\s*` + quoted + `\s*$`),
	}
}

func (dj *displayJoiner) join(parts ...string) string {
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	joined := strings.Join(parts, dj.sep)
	joined = dj.doubled.ReplaceAllString(joined, dj.mark)
	joined = dj.edges.ReplaceAllString(joined, "")

	return strings.TrimSpace(joined)
}
