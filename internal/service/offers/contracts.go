package offers

import (
	"context"
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// OfferRepository defines the offer storage contract
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	List(ctx context.Context, filter domain.OffersFilter) ([]*domain.Offer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error
	CountActive(ctx context.Context) (int, error)
}

// YachtRepository defines the yacht storage contract
type YachtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger defines the logging contract for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
