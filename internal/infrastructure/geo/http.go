package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

var ErrNoFix = errors.New("geolocation response has no coordinates")

// HTTPProvider reads the position from a JSON geolocation endpoint such as
// an IP lookup service.
type HTTPProvider struct {
	api  ports.APIClient
	path string
	log  zerolog.Logger
}

var _ ports.PositionProvider = (*HTTPProvider)(nil)

func NewHTTPProvider(api ports.APIClient, path string, log zerolog.Logger) *HTTPProvider {
	return &HTTPProvider{api: api, path: path, log: log}
}

type reading struct {
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Accuracy         float64  `json:"accuracy"`
	Altitude         float64  `json:"altitude"`
	AltitudeAccuracy float64  `json:"altitudeAccuracy"`
	Heading          float64  `json:"heading"`
	Speed            float64  `json:"speed"`
	Timestamp        int64    `json:"timestamp"`
}

func (p *HTTPProvider) CurrentPosition(ctx context.Context) (domain.Position, error) {
	var r reading
	if err := p.api.Get(ctx, p.path, nil, &r); err != nil {
		return domain.Position{}, fmt.Errorf("geolocation lookup: %w", err)
	}
	if r.Latitude == nil || r.Longitude == nil {
		return domain.Position{}, ErrNoFix
	}

	ts := time.Now()
	if r.Timestamp > 0 {
		ts = time.UnixMilli(r.Timestamp)
	}

	p.log.Debug().Float64("lat", *r.Latitude).Float64("lng", *r.Longitude).Msg("position read")
	return domain.Position{
		Latitude:         *r.Latitude,
		Longitude:        *r.Longitude,
		Accuracy:         r.Accuracy,
		Altitude:         r.Altitude,
		AltitudeAccuracy: r.AltitudeAccuracy,
		Heading:          r.Heading,
		Speed:            r.Speed,
		Timestamp:        ts,
	}, nil
}
