package reviews

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// ReviewRepository defines the review storage contract
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) error
	AverageRatingForYacht(ctx context.Context, yachtID int64) (float64, error)
}

// YachtRepository defines the yacht storage contract
type YachtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// Logger defines the logging contract for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
