package yacht_reviews

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/reviews"
)

type ReviewService interface {
	ListForYacht(ctx context.Context, yachtID int64) (*reviews.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
