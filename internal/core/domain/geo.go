package domain

import "time"

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Position is a single reading from a location provider.
type Position struct {
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Accuracy         float64   `json:"accuracy"`
	Altitude         float64   `json:"altitude"`
	AltitudeAccuracy float64   `json:"altitude_accuracy"`
	Heading          float64   `json:"heading"`
	Speed            float64   `json:"speed"`
	Timestamp        time.Time `json:"timestamp"`
}

// Center projects a reading onto a map centre, dropping everything but
// latitude and longitude.
func (p Position) Center() Coordinates {
	return Coordinates{Lat: p.Latitude, Lng: p.Longitude}
}
