package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.ErrorKind
	}{
		{"nil", nil, models.KindNone},
		{"permission", fmt.Errorf("%w: code 1", models.ErrPermissionDenied), models.KindPermissionDenied},
		{"unavailable", fmt.Errorf("geolocate: %w", models.ErrUnavailable), models.KindUnavailable},
		{"upstream", fmt.Errorf("%w: status 500", models.ErrUpstream), models.KindUpstream},
		{"unknown", errors.New("boom"), models.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.KindOf(tt.err))
		})
	}
}

func TestAddressDetails_Set(t *testing.T) {
	var addr models.AddressDetails
	for _, field := range models.Fields() {
		addr.Set(field, string(field))
	}
	addr.Set(models.Field("unknown"), "ignored")

	assert.Equal(t, "state", addr.State)
	assert.Equal(t, "city", addr.City)
	assert.Equal(t, "district", addr.District)
	assert.Equal(t, "neighbourhood", addr.Neighbourhood)
	assert.Equal(t, "road", addr.Road)
	assert.Equal(t, "building", addr.Building)
	assert.Equal(t, "postcode", addr.Postcode)
	assert.Equal(t, "full_address", addr.FullAddress)
	assert.Empty(t, addr.Country)
}

func TestAddressDetails_Get(t *testing.T) {
	var addr models.AddressDetails
	for _, field := range models.Fields() {
		addr.Set(field, "value of "+string(field))
	}

	for _, field := range models.Fields() {
		assert.Equal(t, "value of "+string(field), addr.Get(field))
	}
	assert.Empty(t, addr.Get(models.Field("unknown")))
}
