package get_pricing_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMP-EstimateService/internal/api/handlers"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing-config
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetActive(r.Context())
	if err != nil {
		// Если ни одной версии ещё не сохранено - возвращаем seed значения
		if errors.Is(err, pricing.ErrConfigNotFound) {
			h.logger.Info("GET /pricing-config - Config not found, returning defaults")
			handlers.RespondJSON(w, http.StatusOK, GetDefaultConfigResponse())
			return
		}

		h.logger.Error("GET /pricing-config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing-config - Config retrieved successfully: config_id=%d, version=%d",
		result.ID, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
