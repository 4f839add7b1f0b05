package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
	"github.com/mystore/store-client/internal/metrics"
)

// MapsService tracks the map centre.
type MapsService struct {
	provider ports.PositionProvider
	log      zerolog.Logger

	mu     sync.RWMutex
	center domain.Coordinates
}

var _ ports.MapsService = (*MapsService)(nil)

func NewMapsService(provider ports.PositionProvider, log zerolog.Logger) *MapsService {
	return &MapsService{provider: provider, log: log}
}

// GetCurrentPosition reads the current position and moves the centre to it.
// On failure the centre keeps its previous value.
func (s *MapsService) GetCurrentPosition(ctx context.Context) error {
	pos, err := s.provider.CurrentPosition(ctx)
	metrics.PositionReadsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Msg("current position unavailable")
		return fmt.Errorf("get current position: %w", err)
	}

	center := pos.Center()
	s.mu.Lock()
	s.center = center
	s.mu.Unlock()

	s.log.Debug().Float64("lat", center.Lat).Float64("lng", center.Lng).Msg("map centre updated")
	return nil
}

func (s *MapsService) Center() domain.Coordinates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.center
}
