package location_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/location"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleSource_Acquire(t *testing.T) {
	mockClient := mocks.NewGeolocationAPIClient(t)
	source := location.NewGoogleSource(mockClient, slog.Default())
	ctx := t.Context()
	req := &maps.GeolocationRequest{ConsiderIP: true}

	t.Run("api returns error", func(t *testing.T) {
		mockClient.On("Geolocate", ctx, req).Return(nil, assert.AnError).Once()

		coords, err := source.Acquire(ctx)

		require.Nil(t, coords)
		require.ErrorIs(t, err, models.ErrUnavailable)
		require.ErrorIs(t, err, assert.AnError)
		mockClient.AssertExpectations(t)
	})

	t.Run("api returns empty fix", func(t *testing.T) {
		mockClient.On("Geolocate", ctx, req).Return(&maps.GeolocationResult{}, nil).Once()

		coords, err := source.Acquire(ctx)

		require.Nil(t, coords)
		require.ErrorIs(t, err, location.ErrEmptyFix)
		mockClient.AssertExpectations(t)
	})

	t.Run("successfull geolocation", func(t *testing.T) {
		mockResponse := &maps.GeolocationResult{
			Location: maps.LatLng{Lat: 35.6892, Lng: 51.389},
			Accuracy: 1500,
		}

		mockClient.On("Geolocate", ctx, req).Return(mockResponse, nil).Once()

		coords, err := source.Acquire(ctx)

		require.NoError(t, err)
		require.NotNil(t, coords)
		require.InEpsilon(t, 35.6892, coords.Latitude, 0.0001)
		require.InEpsilon(t, 51.389, coords.Longitude, 0.0001)
		require.NotNil(t, coords.Accuracy)
		require.InEpsilon(t, 1500, *coords.Accuracy, 0.0001)
		mockClient.AssertExpectations(t)
	})
}

func TestNewSource(t *testing.T) {
	logger := slog.Default()

	t.Run("static source with reading", func(t *testing.T) {
		coords := models.NewCoordinates(1, 2)
		source, err := location.NewSource(location.SourceConfig{Type: location.SourceTypeStatic, Static: &coords})

		require.NoError(t, err)
		got, err := source.Acquire(t.Context())
		require.NoError(t, err)
		assert.Equal(t, coords, *got)
	})

	t.Run("static source without reading is unavailable", func(t *testing.T) {
		source, err := location.NewSource(location.SourceConfig{Type: location.SourceTypeStatic})

		require.NoError(t, err)
		_, err = source.Acquire(t.Context())
		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("static source with out of range reading fails", func(t *testing.T) {
		coords := models.NewCoordinates(200, 51.389)
		source, err := location.NewSource(location.SourceConfig{Type: location.SourceTypeStatic, Static: &coords})

		require.Nil(t, source)
		require.ErrorIs(t, err, models.ErrUnavailable)
		assert.Contains(t, err.Error(), "invalid static reading")
	})

	t.Run("google source", func(t *testing.T) {
		source, err := location.NewSource(location.SourceConfig{
			Type:   location.SourceTypeGoogle,
			APIKey: "AIza-test-key",
			Logger: logger,
		})

		require.NoError(t, err)
		_, ok := source.(*location.GoogleSource)
		assert.True(t, ok, "expected source to be *GoogleSource")
	})

	t.Run("google source without API key fails", func(t *testing.T) {
		source, err := location.NewSource(location.SourceConfig{Type: location.SourceTypeGoogle, Logger: logger})

		require.Error(t, err)
		require.Nil(t, source)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("unsupported source type", func(t *testing.T) {
		source, err := location.NewSource(location.SourceConfig{Type: "gps"})

		require.Error(t, err)
		require.Nil(t, source)
		assert.Contains(t, err.Error(), "unsupported location source type: gps")
	})
}
