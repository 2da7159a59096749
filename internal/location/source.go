// Package location acquires the device's coordinates. Every Source produces a
// single reading or fails with models.ErrPermissionDenied or
// models.ErrUnavailable.
package location

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Source is an interface that defines a method for acquiring one coordinate reading.
type Source interface {
	Acquire(ctx context.Context) (*models.Coordinates, error)
}

// StaticSource returns a fixed reading, e.g. one supplied on the command line.
type StaticSource struct {
	coords *models.Coordinates
}

// NewStaticSource creates a source that always returns coords.
func NewStaticSource(coords models.Coordinates) *StaticSource {
	return &StaticSource{coords: &coords}
}

// Acquire returns the configured reading, or models.ErrUnavailable when none is set.
func (s *StaticSource) Acquire(ctx context.Context) (*models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUnavailable, err)
	}

	if s == nil || s.coords == nil {
		return nil, fmt.Errorf("%w: no static coordinates configured", models.ErrUnavailable)
	}

	coords := *s.coords

	return &coords, nil
}

// ReportedSource wraps a reading that a client platform (e.g. a browser's
// geolocation API) already produced, including its error code.
type ReportedSource struct {
	report models.Position
}

// NewReportedSource creates a source from a platform position report.
func NewReportedSource(report models.Position) *ReportedSource {
	return &ReportedSource{report: report}
}

// Acquire classifies the report: code 1 is a permission denial, any other
// error code (position unavailable, timeout) is models.ErrUnavailable, and so
// is a report missing either coordinate.
func (r *ReportedSource) Acquire(_ context.Context) (*models.Coordinates, error) {
	if perr := r.report.Error; perr != nil {
		if perr.Code == models.PositionPermissionDenied {
			return nil, fmt.Errorf("%w: %s", models.ErrPermissionDenied, describe(perr))
		}

		return nil, fmt.Errorf("%w: %s", models.ErrUnavailable, describe(perr))
	}

	if r.report.Latitude == nil || r.report.Longitude == nil {
		return nil, fmt.Errorf("%w: position report without coordinates", models.ErrUnavailable)
	}

	lat, lon := *r.report.Latitude, *r.report.Longitude
	if err := Validate(lat, lon); err != nil {
		return nil, err
	}

	return &models.Coordinates{
		Latitude:  lat,
		Longitude: lon,
		Accuracy:  r.report.Accuracy,
	}, nil
}

// Validate rejects readings outside the WGS84 range.
func Validate(lat, lon float64) error {
	const (
		maxLatitude  = 90
		maxLongitude = 180
	)

	if lat < -maxLatitude || lat > maxLatitude || lon < -maxLongitude || lon > maxLongitude {
		return fmt.Errorf("%w: coordinates out of range (%v, %v)", models.ErrUnavailable, lat, lon)
	}

	return nil
}

func describe(perr *models.PositionError) string {
	if perr.Message == "" {
		return fmt.Sprintf("platform error code %d", perr.Code)
	}

	return fmt.Sprintf("platform error code %d: %s", perr.Code, perr.Message)
}
