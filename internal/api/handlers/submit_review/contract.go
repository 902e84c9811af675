package submit_review

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/reviews"
)

type ReviewService interface {
	Submit(ctx context.Context, req *reviews.SubmitReviewRequest) (*reviews.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
