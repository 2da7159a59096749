package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hermes/internal/models"
	"googlemaps.github.io/maps"
)

// GeolocationAPIClient is the subset of the Google Maps client used for geolocation.
type GeolocationAPIClient interface {
	Geolocate(ctx context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error)
}

// ErrEmptyFix is returned when the Geolocation API responds without a usable location.
var ErrEmptyFix = errors.New("get empty location from Google Geolocation API")

// GoogleSource locates the device through the Google Maps Geolocation API,
// using the caller's network address. It serves headless devices without GPS.
type GoogleSource struct {
	client GeolocationAPIClient // client is the Google Maps API client
	log    *slog.Logger         // log is the logger for logging operations
}

// NewGoogleSource creates a source backed by the given Geolocation API client.
func NewGoogleSource(client GeolocationAPIClient, log *slog.Logger) *GoogleSource {
	return &GoogleSource{client: client, log: log}
}

// Acquire asks the Geolocation API for the device position. Any API failure
// or an empty fix is reported as models.ErrUnavailable.
func (gs *GoogleSource) Acquire(ctx context.Context) (*models.Coordinates, error) {
	gs.log.DebugContext(ctx, "Locating using Google Geolocation API")

	result, err := gs.client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to geolocate: %w", models.ErrUnavailable, err)
	}

	if result == nil || (result.Location.Lat == 0 && result.Location.Lng == 0) {
		return nil, fmt.Errorf("%w: %w", models.ErrUnavailable, ErrEmptyFix)
	}

	coords := models.NewCoordinates(result.Location.Lat, result.Location.Lng)
	if result.Accuracy > 0 {
		coords = coords.WithAccuracy(result.Accuracy)
	}

	gs.log.DebugContext(ctx, "Google Geolocation fix", "lat", coords.Latitude, "lon", coords.Longitude,
		"accuracy", result.Accuracy)

	return &coords, nil
}
