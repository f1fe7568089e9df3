package cancellation_quote

import (
	"context"

	cancellationQuote "github.com/m04kA/CMP-EstimateService/internal/usecase/cancellation_quote"
)

type CancellationQuoteUseCase interface {
	Execute(ctx context.Context, req *cancellationQuote.Request) (*cancellationQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
