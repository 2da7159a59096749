package location_test

import (
	"context"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/location"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestReportedSource_Acquire(t *testing.T) {
	ctx := t.Context()
	accuracy := 12.5

	t.Run("successful reading", func(t *testing.T) {
		source := location.NewReportedSource(models.Position{
			Latitude:  ptr(35.6892),
			Longitude: ptr(51.389),
			Accuracy:  &accuracy,
		})

		coords, err := source.Acquire(ctx)

		require.NoError(t, err)
		assert.InEpsilon(t, 35.6892, coords.Latitude, 0.0001)
		assert.InEpsilon(t, 51.389, coords.Longitude, 0.0001)
		require.NotNil(t, coords.Accuracy)
		assert.InEpsilon(t, 12.5, *coords.Accuracy, 0.0001)
	})

	t.Run("permission denied code", func(t *testing.T) {
		source := location.NewReportedSource(models.Position{
			Error: &models.PositionError{Code: models.PositionPermissionDenied, Message: "User denied Geolocation"},
		})

		coords, err := source.Acquire(ctx)

		require.Nil(t, coords)
		require.ErrorIs(t, err, models.ErrPermissionDenied)
		assert.Contains(t, err.Error(), "User denied Geolocation")
	})

	t.Run("other codes are unavailable", func(t *testing.T) {
		for _, code := range []int{models.PositionUnavailable, models.PositionTimeout, 42} {
			source := location.NewReportedSource(models.Position{Error: &models.PositionError{Code: code}})

			coords, err := source.Acquire(ctx)

			require.Nil(t, coords)
			require.ErrorIs(t, err, models.ErrUnavailable)
			assert.NotErrorIs(t, err, models.ErrPermissionDenied)
			assert.Contains(t, err.Error(), "platform error code")
		}
	})

	t.Run("out of range reading", func(t *testing.T) {
		source := location.NewReportedSource(models.Position{Latitude: ptr(91), Longitude: ptr(10)})

		coords, err := source.Acquire(ctx)

		require.Nil(t, coords)
		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("missing coordinate is unavailable", func(t *testing.T) {
		for _, report := range []models.Position{
			{},
			{Latitude: ptr(35.6892)},
			{Longitude: ptr(51.389)},
		} {
			coords, err := location.NewReportedSource(report).Acquire(ctx)

			require.Nil(t, coords)
			require.ErrorIs(t, err, models.ErrUnavailable)
			assert.Contains(t, err.Error(), "position report without coordinates")
		}
	})

	t.Run("zero coordinates are a valid reading", func(t *testing.T) {
		coords, err := location.NewReportedSource(models.Position{Latitude: ptr(0), Longitude: ptr(0)}).Acquire(ctx)

		require.NoError(t, err)
		assert.Equal(t, models.NewCoordinates(0, 0), *coords)
	})
}

func TestStaticSource_Acquire(t *testing.T) {
	t.Run("configured reading", func(t *testing.T) {
		source := location.NewStaticSource(models.NewCoordinates(1.5, 2.5))

		first, err := source.Acquire(t.Context())
		require.NoError(t, err)
		first.Latitude = 100

		second, err := source.Acquire(t.Context())
		require.NoError(t, err)
		assert.InEpsilon(t, 1.5, second.Latitude, 0.0001)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := (&location.StaticSource{}).Acquire(t.Context())

		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := location.NewStaticSource(models.NewCoordinates(1, 2)).Acquire(ctx)

		require.ErrorIs(t, err, models.ErrUnavailable)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, location.Validate(90, 180))
	require.NoError(t, location.Validate(-90, -180))
	require.ErrorIs(t, location.Validate(-90.1, 0), models.ErrUnavailable)
	require.ErrorIs(t, location.Validate(0, 180.5), models.ErrUnavailable)
}
