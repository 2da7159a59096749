// Package share implements the two presentation actions of a resolved
// location: copying a summary to the clipboard and handing a map link to the
// platform share capability.
package share

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/atotto/clipboard"
)

// MapsBaseURL is the map-link prefix attached to shared locations.
const MapsBaseURL = "https://www.google.com/maps"

// Payload is what gets handed to a share target.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Sharer hands a payload to a platform share capability.
type Sharer interface {
	Share(ctx context.Context, payload Payload) error
}

// Common errors for share targets.
var (
	ErrUnsupported = errors.New("share is not supported on this platform")
	ErrNoClipboard = errors.New("no clipboard utility available")
)

// MapURL builds the map link for coords.
func MapURL(coords models.Coordinates) string {
	return fmt.Sprintf("%s?q=%s,%s", MapsBaseURL,
		strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
		strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	return nil
}
