package catalog

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// YachtRepository defines the yacht storage contract
type YachtRepository interface {
	Create(ctx context.Context, yacht *domain.Yacht) (*domain.Yacht, error)
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
	List(ctx context.Context, filter domain.YachtsFilter) ([]*domain.Yacht, error)
	Update(ctx context.Context, yacht *domain.Yacht) error
	IncrementViews(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Logger defines the logging contract for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
