package create_offer

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/offers"
)

type OfferService interface {
	Create(ctx context.Context, req *offers.CreateOfferRequest) (*offers.OfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
