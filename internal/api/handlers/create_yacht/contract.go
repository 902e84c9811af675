package create_yacht

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
)

type CatalogService interface {
	Create(ctx context.Context, req *catalog.SaveYachtRequest) (*catalog.YachtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
