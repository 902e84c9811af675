package list_offers

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/offers"
)

type OfferService interface {
	List(ctx context.Context, req *offers.ListOffersRequest) (*offers.OfferListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
