package enquiries

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// EnquiryRepository defines the enquiry storage contract
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error)
	List(ctx context.Context, status *domain.EnquiryStatus) ([]*domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) error
	CountPending(ctx context.Context) (int, error)
}

// Logger defines the logging contract for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
