// Package locale holds every user-visible string of the resolution pipeline:
// error messages, the labels the generative model is asked to emit, the
// display separator and the copy/share templates. Switching language is a
// configuration concern handled by Lookup.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Messages is a message table for one language.
type Messages struct {
	// Language is the response-language preference sent to upstream services.
	Language string
	// Labels maps each address field to the exact label token the model must emit.
	Labels map[models.Field]string
	// Hints describe the expected value of each label inside the prompt.
	Hints map[models.Field]string
	// Separator joins address parts in a short display line.
	Separator string

	promptIntro     string
	errors          map[models.ErrorKind]string
	copyTemplate    string
	unknownPostcode string
	shareTitle      string
	shareTemplate   string
}

var tables = map[string]Messages{
	"fa": persian,
	"en": english,
}

// Lookup returns the message table for the given language code.
func Lookup(lang string) (Messages, error) {
	msgs, ok := tables[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported locale %q (available: %s)", lang, strings.Join(Available(), ", "))
	}

	return msgs, nil
}

// Available lists the supported language codes.
func Available() []string {
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	return langs
}

// ErrorMessage returns the user-facing message for err.
func (m Messages) ErrorMessage(err error) string {
	kind := models.KindOf(err)
	if kind == models.KindNone {
		return ""
	}
	if msg, ok := m.errors[kind]; ok {
		return msg
	}

	return m.errors[models.KindUnknown]
}

// Prompt builds the grounding request for the given coordinates. The label
// section is generated from Labels so the parser and the prompt never diverge.
func (m Messages) Prompt(coords models.Coordinates) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, m.promptIntro, coords.Latitude, coords.Longitude)
	for _, field := range models.Fields() {
		fmt.Fprintf(&sb, "\n%s: [%s]", m.Labels[field], m.Hints[field])
	}

	return sb.String()
}

// CopyText renders the clipboard summary of a resolved location.
func (m Messages) CopyText(addr models.AddressDetails, coords models.Coordinates) string {
	return fmt.Sprintf(m.copyTemplate, addr.FullAddress, m.postcodeOrUnknown(addr), coords.Latitude, coords.Longitude)
}

// ShareTitle is the title attached to a shared location.
func (m Messages) ShareTitle() string {
	return m.shareTitle
}

// ShareText renders the body attached to a shared location. A missing
// postcode is left blank.
func (m Messages) ShareText(addr models.AddressDetails) string {
	return fmt.Sprintf(m.shareTemplate, addr.FullAddress, addr.Postcode)
}

func (m Messages) postcodeOrUnknown(addr models.AddressDetails) string {
	if addr.Postcode == "" {
		return m.unknownPostcode
	}

	return addr.Postcode
}
