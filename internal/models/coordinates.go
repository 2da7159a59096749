package models

// Coordinates represents a single location reading of the device.
type Coordinates struct {
	Latitude  float64  `json:"latitude"`           // Latitude of the geographical point.
	Longitude float64  `json:"longitude"`          // Longitude of the geographical point.
	Accuracy  *float64 `json:"accuracy,omitempty"` // Accuracy radius in meters, if the source reports one.
}

// NewCoordinates builds a reading without accuracy information.
func NewCoordinates(lat, lon float64) Coordinates {
	return Coordinates{Latitude: lat, Longitude: lon}
}

// WithAccuracy returns a copy of the reading carrying the given accuracy.
func (c Coordinates) WithAccuracy(meters float64) Coordinates {
	c.Accuracy = &meters
	return c
}

// Position is a raw report from a platform geolocation capability.
// Either the coordinates or Error are meaningful, never both. Missing
// coordinates stay nil.
type Position struct {
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Accuracy  *float64       `json:"accuracy,omitempty"`
	Error     *PositionError `json:"error,omitempty"`
}

// PositionError mirrors the platform geolocation error: a numeric code and a message.
type PositionError struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// Platform geolocation error codes.
const (
	PositionPermissionDenied = 1
	PositionUnavailable      = 2
	PositionTimeout          = 3
)
