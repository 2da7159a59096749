package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleResolver implements the Resolver interface using the Google Maps
// reverse geocoding API.
type GoogleResolver struct {
	client   GoogleAPIClient // client is the Google Maps API client
	language string          // language of the returned address
	display  *displayJoiner  // display builds the short summary line
	log      *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// Component types per field: the first component carrying one of the types wins.
var (
	googleStateTypes         = []string{"administrative_area_level_1"}
	googleCityTypes          = []string{"locality", "administrative_area_level_2"}
	googleDistrictTypes      = []string{"sublocality_level_1", "sublocality"}
	googleNeighbourhoodTypes = []string{"neighborhood", "sublocality_level_2"}
	googleRoadTypes          = []string{"route"}
	googleBuildingTypes      = []string{"street_number", "premise"}
	googlePostcodeTypes      = []string{"postal_code"}
	googleCountryTypes       = []string{"country"}
)

// NewGoogleResolver initializes a new GoogleResolver answering in the language of msgs.
func NewGoogleResolver(client GoogleAPIClient, msgs locale.Messages, log *slog.Logger) *GoogleResolver {
	return &GoogleResolver{
		client:   client,
		language: msgs.Language,
		display:  newDisplayJoiner(msgs.Separator),
		log:      log,
	}
}

// Resolve returns the address of the first reverse geocoding result for coords.
// Every failure is wrapped with models.ErrUpstream.
func (gr *GoogleResolver) Resolve(ctx context.Context, coords models.Coordinates) (*models.AddressDetails, error) {
	gr.log.DebugContext(ctx, "Reverse geocoding using Google Maps", "lat", coords.Latitude, "lon", coords.Longitude)

	req := maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coords.Latitude, Lng: coords.Longitude},
		Language: gr.language,
	}
	results, err := gr.client.ReverseGeocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reverse geocode coordinates: %w", models.ErrUpstream, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstream, ErrEmptyResponse)
	}

	return gr.toAddress(results[0]), nil
}

func (gr *GoogleResolver) toAddress(result maps.GeocodingResult) *models.AddressDetails {
	components := result.AddressComponents
	addr := &models.AddressDetails{
		State:         componentName(components, googleStateTypes),
		City:          componentName(components, googleCityTypes),
		District:      componentName(components, googleDistrictTypes),
		Neighbourhood: componentName(components, googleNeighbourhoodTypes),
		Road:          componentName(components, googleRoadTypes),
		Building:      componentName(components, googleBuildingTypes),
		Postcode:      NormalizeDigits(componentName(components, googlePostcodeTypes)),
		Country:       componentName(components, googleCountryTypes),
	}

	addr.FormattedDisplay = gr.display.join(addr.City, addr.Neighbourhood, addr.Road)
	addr.FullAddress = result.FormattedAddress
	if addr.FullAddress == "" {
		addr.FullAddress = addr.FormattedDisplay
	}
	if addr.FormattedDisplay == "" {
		addr.FormattedDisplay = addr.FullAddress
	}

	return addr
}

func componentName(components []maps.AddressComponent, types []string) string {
	for _, want := range types {
		for _, component := range components {
			if slices.Contains(component.Types, want) {
				return component.LongName
			}
		}
	}

	return ""
}
