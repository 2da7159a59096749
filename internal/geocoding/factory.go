package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/models"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
	"googlemaps.github.io/maps"
)

// ResolverType represents the type of address resolver.
type ResolverType string

const (
	// ResolverTypeGemini represents the Gemini grounding resolver.
	ResolverTypeGemini ResolverType = "gemini"
	// ResolverTypeNominatim represents OpenStreetMap Nominatim reverse geocoding.
	ResolverTypeNominatim ResolverType = "nominatim"
	// ResolverTypeGoogle represents Google Maps reverse geocoding.
	ResolverTypeGoogle ResolverType = "google"
)

// ResolverConfig holds configuration for creating an address resolver.
type ResolverConfig struct {
	Type      ResolverType    // Type of resolver to create
	APIKey    string          // API key (used by Gemini and Google resolvers)
	Model     string          // Model name (used by Gemini resolver)
	BaseURL   string          // Endpoint override (used by Nominatim resolver)
	UserAgent string          // User-Agent header (used by Nominatim resolver)
	RateLimit float64         // Requests per second (used by Nominatim resolver)
	Timeout   time.Duration   // HTTP timeout for upstream calls; 0 means none
	Messages  locale.Messages // Locale table for prompts, labels and separators
	Logger    *slog.Logger    // Logger for the resolver
}

// ErrResolverDisabled is returned by a resolver that has no credentials configured.
var ErrResolverDisabled = errors.New("resolver is not configured")

// NewResolver creates an address resolver based on the provided configuration.
//
// Supported resolver types:
// - "gemini": Gemini with Google Maps and Google Search grounding (requires API key)
// - "nominatim": OpenStreetMap Nominatim reverse API (free, no API key required)
// - "google": Google Maps reverse geocoding API (requires API key)
//
// Returns an error if the resolver type is unsupported or if resolver creation fails.
func NewResolver(ctx context.Context, config ResolverConfig) (Resolver, error) {
	switch config.Type {
	case ResolverTypeGemini:
		return newGeminiResolver(ctx, config)
	case ResolverTypeNominatim:
		return newNominatimResolver(config), nil
	case ResolverTypeGoogle:
		return newGoogleResolver(config)
	default:
		return nil, fmt.Errorf("unsupported resolver type: %s", config.Type)
	}
}

// newGeminiResolver creates a Gemini resolver backed by the Gemini API.
func newGeminiResolver(ctx context.Context, config ResolverConfig) (Resolver, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Gemini resolver")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: config.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return NewGeminiResolver(client.Models, config.Model, config.Messages, config.Logger), nil
}

// newNominatimResolver creates a Nominatim resolver.
func newNominatimResolver(config ResolverConfig) Resolver {
	opts := []NominatimOption{
		WithBaseURL(config.BaseURL),
		WithUserAgent(config.UserAgent),
	}

	if config.RateLimit > 0 {
		opts = append(opts, WithLimiter(rate.NewLimiter(rate.Limit(config.RateLimit), 1)))
	}

	return NewNominatimResolver(config.Messages, config.Timeout, config.Logger, opts...)
}

// newGoogleResolver creates a Google Maps reverse geocoding resolver.
func newGoogleResolver(config ResolverConfig) (Resolver, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google resolver")
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

	return NewGoogleResolver(client, config.Messages, config.Logger), nil
}

// Disabled returns a resolver that always fails with models.ErrUpstream.
// It stands in for a resolver whose credentials are missing so requests
// still flow through the fallback.
func Disabled(name string) Resolver {
	return disabledResolver{name: name}
}

type disabledResolver struct {
	name string
}

func (d disabledResolver) Resolve(_ context.Context, _ models.Coordinates) (*models.AddressDetails, error) {
	return nil, fmt.Errorf("%w: %s: %w", models.ErrUpstream, d.name, ErrResolverDisabled)
}
