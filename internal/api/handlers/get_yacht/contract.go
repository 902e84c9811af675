package get_yacht

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
)

type CatalogService interface {
	Get(ctx context.Context, id int64, countView bool) (*catalog.YachtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
