package location

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hermes/internal/models"
	"googlemaps.github.io/maps"
)

// SourceType represents the type of coordinate source.
type SourceType string

const (
	// SourceTypeStatic represents a fixed, configured reading.
	SourceTypeStatic SourceType = "static"
	// SourceTypeGoogle represents the Google Maps Geolocation API.
	SourceTypeGoogle SourceType = "google"
)

// SourceConfig holds configuration for creating a coordinate source.
type SourceConfig struct {
	Type    SourceType          // Type of source to create
	APIKey  string              // API key (used by Google source)
	Timeout time.Duration       // HTTP timeout (used by Google source)
	Static  *models.Coordinates // Fixed reading (used by static source)
	Logger  *slog.Logger        // Logger for the source
}

// NewSource creates a coordinate source based on the provided configuration.
//
// Supported source types:
// - "static": a fixed reading; unavailable when no reading is configured,
// rejected when the reading is out of range
// - "google": Google Maps Geolocation API (requires API key)
func NewSource(config SourceConfig) (Source, error) {
	switch config.Type {
	case SourceTypeStatic:
		if config.Static == nil {
			return &StaticSource{}, nil
		}
		if err := Validate(config.Static.Latitude, config.Static.Longitude); err != nil {
			return nil, fmt.Errorf("invalid static reading: %w", err)
		}
		return NewStaticSource(*config.Static), nil
	case SourceTypeGoogle:
		return newGoogleSource(config)
	default:
		return nil, fmt.Errorf("unsupported location source type: %s", config.Type)
	}
}

// newGoogleSource creates a Google Geolocation source.
func newGoogleSource(config SourceConfig) (Source, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google location source")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}
	if config.Timeout > 0 {
		clientOpts = append(clientOpts, maps.WithHTTPClient(&http.Client{Timeout: config.Timeout}))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleSource(client, config.Logger), nil
}
