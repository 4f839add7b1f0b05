package ports

import (
	"context"

	"github.com/mystore/store-client/internal/core/domain"
)

// PositionProvider yields the current location of the device or host.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (domain.Position, error)
}

// MapsService keeps the map centre in sync with the current position.
type MapsService interface {
	GetCurrentPosition(ctx context.Context) error
	Center() domain.Coordinates
}
