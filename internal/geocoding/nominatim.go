package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/models"
	"golang.org/x/time/rate"
)

const (
	// NominatimBaseURL is the public Nominatim reverse geocoding endpoint.
	NominatimBaseURL = "https://nominatim.openstreetmap.org/reverse"
	// DefaultUserAgent identifies the application to Nominatim.
	// User-Agent MUST include valid contact info per Nominatim usage policy:
	// https://operations.osmfoundation.org/policies/nominatim/
	DefaultUserAgent = "Hermes-Address-Locator/1.0 (https://github.com/UnknownOlympus/hermes)"
)

// NominatimResolver implements the Resolver interface using OpenStreetMap's Nominatim API.
// This is a free service with usage limits (1 request/second for fair use).
type NominatimResolver struct {
	client    HTTPClient     // HTTP client for making requests
	baseURL   string         // URL of the reverse endpoint
	language  string         // accept-language preference
	userAgent string         // userAgent is required by Nominatim usage policy
	display   *displayJoiner // display builds the short summary line
	limiter   *rate.Limiter  // Rate limiter
	log       *slog.Logger   // Logger for logging operations
}

// nominatimResponse represents the JSON response of the reverse endpoint.
type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
	Error       string            `json:"error"`
}

// Common errors for Nominatim resolver.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimNotFound      = errors.New("nominatim API could not resolve coordinates")
)

// Preference lists per field: the first key present in the address object wins.
var (
	cityKeys          = []string{"city", "town", "village", "county"}
	roadKeys          = []string{"road", "residential", "pedestrian", "path"}
	neighbourhoodKeys = []string{"neighbourhood", "suburb"}
	districtKeys      = []string{"city_district", "district", "borough"}
	buildingKeys      = []string{"house_number", "building"}
)

// NominatimOption customizes a NominatimResolver.
type NominatimOption func(*NominatimResolver)

// WithBaseURL points the resolver at another reverse endpoint, e.g. a self-hosted instance.
func WithBaseURL(baseURL string) NominatimOption {
	return func(nr *NominatimResolver) {
		if baseURL != "" {
			nr.baseURL = baseURL
		}
	}
}

// WithUserAgent overrides the User-Agent sent with every request.
func WithUserAgent(userAgent string) NominatimOption {
	return func(nr *NominatimResolver) {
		if userAgent != "" {
			nr.userAgent = userAgent
		}
	}
}

// WithLimiter replaces the default 1 request/second limiter.
func WithLimiter(limiter *rate.Limiter) NominatimOption {
	return func(nr *NominatimResolver) {
		if limiter != nil {
			nr.limiter = limiter
		}
	}
}

// NewNominatimResolver creates a new Nominatim resolver with a default HTTP client.
func NewNominatimResolver(msgs locale.Messages, timeout time.Duration, log *slog.Logger, opts ...NominatimOption) *NominatimResolver {
	return NewNominatimResolverWithClient(&http.Client{Timeout: timeout}, msgs, log, opts...)
}

// NewNominatimResolverWithClient creates a Nominatim resolver with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewNominatimResolverWithClient(
	client HTTPClient,
	msgs locale.Messages,
	log *slog.Logger,
	opts ...NominatimOption,
) *NominatimResolver {
	nr := &NominatimResolver{
		client:    client,
		baseURL:   NominatimBaseURL,
		language:  msgs.Language,
		userAgent: DefaultUserAgent,
		display:   newDisplayJoiner(msgs.Separator),
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		log:       log,
	}
	for _, opt := range opts {
		opt(nr)
	}

	return nr
}

// Resolve converts coordinates to an address using the Nominatim reverse API.
// Every failure, including a non-200 status or an undecodable payload, is
// wrapped around models.ErrUpstream.
func (nr *NominatimResolver) Resolve(ctx context.Context, coords models.Coordinates) (*models.AddressDetails, error) {
	if err := nr.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", models.ErrUpstream, err)
	}

	nr.log.DebugContext(ctx, "Resolving using Nominatim", "lat", coords.Latitude, "lon", coords.Longitude)

	result, err := nr.reverse(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}

	return nr.toAddress(result), nil
}

// reverse performs a single reverse geocoding request.
func (nr *NominatimResolver) reverse(ctx context.Context, coords models.Coordinates) (*nominatimResponse, error) {
	reqURL, err := url.Parse(nr.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("accept-language", nr.language)
	reqURL.RawQuery = query.Encode()

	nr.log.DebugContext(ctx, "Nominatim request URL", "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set required headers per Nominatim usage policy
	req.Header.Set("User-Agent", nr.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := nr.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute reverse geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		nr.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	nr.log.DebugContext(ctx, "Nominatim raw response", "body", string(body))

	var result nominatimResponse
	if err = json.Unmarshal(body, &result); err != nil {
		nr.log.ErrorContext(ctx, "Failed to parse Nominatim response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNominatimNotFound, result.Error)
	}

	if result.DisplayName == "" && len(result.Address) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	return &result, nil
}

func (nr *NominatimResolver) toAddress(result *nominatimResponse) *models.AddressDetails {
	fields := result.Address

	addr := &models.AddressDetails{
		Road:          firstPresent(fields, roadKeys...),
		Neighbourhood: firstPresent(fields, neighbourhoodKeys...),
		District:      firstPresent(fields, districtKeys...),
		City:          firstPresent(fields, cityKeys...),
		State:         firstPresent(fields, "state"),
		Country:       firstPresent(fields, "country"),
		Postcode:      NormalizeDigits(firstPresent(fields, "postcode")),
		Building:      firstPresent(fields, buildingKeys...),
	}
	addr.FormattedDisplay = nr.display.join(addr.City, addr.Neighbourhood, addr.Road)

	addr.FullAddress = result.DisplayName
	if addr.FullAddress == "" {
		addr.FullAddress = addr.FormattedDisplay
	}
	if addr.FormattedDisplay == "" {
		addr.FormattedDisplay = addr.FullAddress
	}

	return addr
}

// firstPresent returns the first non-blank value among keys.
func firstPresent(fields map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(fields[key]); value != "" {
			return value
		}
	}

	return ""
}
