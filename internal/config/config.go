package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the address locator.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API and monitoring endpoints.
// - Locale: The language of prompts, labels and user-facing messages.
// - HTTPTimeout: The timeout applied to every outbound HTTP client.
// - Gemini: Settings of the primary resolver.
// - Fallback: Settings of the fallback resolver.
// - Location: Settings of the default coordinate source.
type Config struct {
	Env         string         `yaml:"env"`          // Env is the current environment: local, development, production.
	Port        int            `yaml:"port"`         // Port is the HTTP server port.
	Locale      string         `yaml:"locale"`       // Locale selects the message table (fa, en).
	HTTPTimeout time.Duration  `yaml:"http_timeout"` // HTTPTimeout bounds every outbound request.
	Gemini      GeminiConfig   `yaml:"gemini"`       // Gemini holds the primary resolver configuration.
	Fallback    FallbackConfig `yaml:"fallback"`     // Fallback holds the fallback resolver configuration.
	Location    LocationConfig `yaml:"location"`     // Location holds the coordinate source configuration.
}

// GeminiConfig configures the primary resolver. An empty APIKey disables it.
type GeminiConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"` // Timeout bounds one grounded generation; 0 disables it.
}

// FallbackConfig configures the fallback resolver.
type FallbackConfig struct {
	Resolver  string  `yaml:"resolver"`   // Resolver is the fallback type: nominatim, google.
	BaseURL   string  `yaml:"base_url"`   // BaseURL overrides the Nominatim endpoint.
	UserAgent string  `yaml:"user_agent"` // UserAgent overrides the Nominatim User-Agent.
	Rate      float64 `yaml:"rate"`       // Rate is the Nominatim request budget per second.
}

// LocationConfig configures the default coordinate source.
type LocationConfig struct {
	Source    string   `yaml:"source"`       // Source is the source type: static, google.
	APIKey    string   `yaml:"maps_api_key"` // APIKey for the Google Maps Geolocation and Geocoding APIs.
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	Accuracy  *float64 `yaml:"accuracy"`
}

// MustLoad loads the configuration from the environment (and an optional .env file)
// and panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDeafultEnv("HERMES_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for http server from configuration")
	}

	timeout, err := time.ParseDuration(setDeafultEnv("HERMES_HTTP_TIMEOUT", "10s"))
	if err != nil {
		panic("failed to parse http timeout from configuration")
	}

	geminiTimeout, err := time.ParseDuration(setDeafultEnv("HERMES_GEMINI_TIMEOUT", "60s"))
	if err != nil || geminiTimeout < 0 {
		panic("failed to parse gemini timeout from configuration")
	}

	nominatimRate, err := strconv.ParseFloat(setDeafultEnv("HERMES_NOMINATIM_RATE", "1"), 64)
	if err != nil || nominatimRate <= 0 {
		panic("failed to parse nominatim rate from configuration, must be a positive number")
	}

	latitude := optionalFloat("HERMES_LATITUDE", "failed to parse latitude from configuration")
	longitude := optionalFloat("HERMES_LONGITUDE", "failed to parse longitude from configuration")
	if (latitude == nil) != (longitude == nil) {
		panic("latitude and longitude must be configured together")
	}

	return &Config{
		Env:         setDeafultEnv("HERMES_ENV", "production"),
		Port:        port,
		Locale:      setDeafultEnv("HERMES_LOCALE", "fa"),
		HTTPTimeout: timeout,
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("HERMES_GEMINI_API_KEY"),
			Model:   setDeafultEnv("HERMES_GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: geminiTimeout,
		},
		Fallback: FallbackConfig{
			Resolver:  setDeafultEnv("HERMES_FALLBACK_RESOLVER", "nominatim"),
			BaseURL:   os.Getenv("HERMES_NOMINATIM_URL"),
			UserAgent: os.Getenv("HERMES_USER_AGENT"),
			Rate:      nominatimRate,
		},
		Location: LocationConfig{
			Source:    setDeafultEnv("HERMES_LOCATION_SOURCE", "static"),
			APIKey:    os.Getenv("HERMES_MAPS_API_KEY"),
			Latitude:  latitude,
			Longitude: longitude,
			Accuracy:  optionalFloat("HERMES_ACCURACY", "failed to parse accuracy from configuration"),
		},
	}
}

func setDeafultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}

// optionalFloat returns nil when key is unset or empty and panics with msg on a malformed value.
func optionalFloat(key, msg string) *float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		panic(msg)
	}

	return &value
}
