package create_enquiry

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"
)

type EnquiryService interface {
	Create(ctx context.Context, req *enquiries.CreateEnquiryRequest) (*enquiries.EnquiryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
