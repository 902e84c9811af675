package list_yachts

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
)

type CatalogService interface {
	List(ctx context.Context, req *catalog.ListYachtsRequest) (*catalog.YachtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
