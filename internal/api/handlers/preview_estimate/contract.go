package preview_estimate

import (
	"context"

	previewEstimate "github.com/m04kA/CMP-EstimateService/internal/usecase/preview_estimate"
)

type PreviewEstimateUseCase interface {
	Execute(ctx context.Context, req *previewEstimate.Request) (*previewEstimate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
