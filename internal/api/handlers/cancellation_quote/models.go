package cancellation_quote

import (
	"time"

	cancellationQuote "github.com/m04kA/CMP-EstimateService/internal/usecase/cancellation_quote"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// CancellationQuoteRequest HTTP request model
type CancellationQuoteRequest struct {
	BookingStart time.Time   `json:"bookingStart"` // RFC3339, например "2026-09-01T10:00:00Z"
	TotalPrice   types.Money `json:"totalPrice"`   // Итоговая цена бронирования, например "159.00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancellationQuoteRequest) ToUseCaseRequest() *cancellationQuote.Request {
	return &cancellationQuote.Request{
		BookingStart: r.BookingStart,
		TotalPrice:   r.TotalPrice,
	}
}
