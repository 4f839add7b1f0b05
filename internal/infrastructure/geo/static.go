// Package geo provides position readings for the maps service.
package geo

import (
	"context"
	"time"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

// StaticProvider always reports the same coordinates.
type StaticProvider struct {
	lat, lng float64
	now      func() time.Time
}

var _ ports.PositionProvider = (*StaticProvider)(nil)

func NewStaticProvider(lat, lng float64) *StaticProvider {
	return &StaticProvider{lat: lat, lng: lng, now: time.Now}
}

func (p *StaticProvider) CurrentPosition(ctx context.Context) (domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return domain.Position{}, err
	}
	return domain.Position{
		Latitude:  p.lat,
		Longitude: p.lng,
		Timestamp: p.now(),
	}, nil
}
