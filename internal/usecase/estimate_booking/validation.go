package estimate_booking

import "fmt"

// validateRequest валидирует структурные требования запроса
// Семантику выбора (каталоги, количества) проверяет сам estimator
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.BookingHistoryCount != nil && *req.BookingHistoryCount < 0 {
		return fmt.Errorf("%w: bookingHistoryCount must be non-negative", ErrInvalidInput)
	}

	return nil
}
