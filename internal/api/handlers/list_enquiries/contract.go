package list_enquiries

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"
)

type EnquiryService interface {
	List(ctx context.Context, status *string) (*enquiries.EnquiryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
