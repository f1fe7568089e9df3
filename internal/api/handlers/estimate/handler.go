package estimate

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMP-EstimateService/internal/api/handlers"
	estimateBooking "github.com/m04kA/CMP-EstimateService/internal/usecase/estimate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEstimate    = "некорректные данные заказа"
	msgPricingUnavailable = "расчёт стоимости временно недоступен"
)

type Handler struct {
	useCase EstimateUseCase
	logger  Logger
}

func NewHandler(useCase EstimateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/estimates
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /estimates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, estimateBooking.ErrInvalidInput):
			h.logger.Warn("POST /estimates - Invalid estimate data: service_type=%s, error=%v",
				req.ServiceType, err)
			handlers.RespondBadRequest(w, msgInvalidEstimate)

		case errors.Is(err, estimateBooking.ErrPricingUnavailable):
			h.logger.Error("POST /estimates - Pricing unavailable: service_type=%s, error=%v",
				req.ServiceType, err)
			handlers.RespondServiceUnavailable(w, msgPricingUnavailable)

		default:
			h.logger.Error("POST /estimates - Failed to build estimate: service_type=%s, error=%v",
				req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /estimates - Estimate built successfully: service_type=%s, total=%s, config_version=%d",
		req.ServiceType, result.TotalPrice, result.ConfigVersion)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
