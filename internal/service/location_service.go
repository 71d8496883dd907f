package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// ErrLocationUnavailable means the device position could not be determined;
// the caller falls back to manual address entry.
var ErrLocationUnavailable = errors.New("unable to determine current location")

// LocationResolver abstracts the device position lookup. The default resolver
// is a mock; a real deployment would wrap a geolocation provider.
type LocationResolver interface {
	CurrentPosition(ctx context.Context) (model.Coordinates, error)
}

// LocationService turns the fire-and-forget device lookup of the original into
// an explicit operation with a deadline. Callers may await the result, discard
// it, or run Locate from a goroutine.
type LocationService interface {
	Locate(ctx context.Context) (model.Location, error)
}

type locationService struct {
	resolver LocationResolver
	timeout  time.Duration
}

// NewLocationService creates a LocationService. A zero timeout disables the
// deadline.
func NewLocationService(resolver LocationResolver, timeout time.Duration) LocationService {
	return &locationService{resolver: resolver, timeout: timeout}
}

// Locate resolves the device position and formats a mock reverse-geocoded
// address from the coordinates, as the onboarding wizard does.
func (s *locationService) Locate(ctx context.Context) (model.Location, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	coords, err := s.resolver.CurrentPosition(ctx)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	return model.Location{
		Address:     fmt.Sprintf("%.4f, %.4f", coords.Lat, coords.Lng),
		Coordinates: &coords,
	}, nil
}

// FixedResolver returns a constant position, standing in for device GPS.
type FixedResolver struct {
	Coords model.Coordinates
}

func (r FixedResolver) CurrentPosition(ctx context.Context) (model.Coordinates, error) {
	select {
	case <-ctx.Done():
		return model.Coordinates{}, ctx.Err()
	default:
		return r.Coords, nil
	}
}
