package geocoding

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Resolver is an interface that defines a method for reverse geocoding.
// The Resolve method takes a context and a coordinate reading as input,
// and returns the corresponding address and an error if any occurs.
// Failures are wrapped around models.ErrUpstream.
type Resolver interface {
	Resolve(ctx context.Context, coords models.Coordinates) (*models.AddressDetails, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
