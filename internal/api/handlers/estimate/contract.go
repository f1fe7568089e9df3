package estimate

import (
	"context"

	estimateBooking "github.com/m04kA/CMP-EstimateService/internal/usecase/estimate_booking"
)

type EstimateUseCase interface {
	Execute(ctx context.Context, req *estimateBooking.Request) (*estimateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
