package get_pricing_versions

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMP-EstimateService/internal/api/handlers"
	"github.com/m04kA/CMP-EstimateService/internal/api/middleware"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing"
)

const (
	msgMissingUserID = "отсутствует идентификатор пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/pricing-config/versions
// Требует X-User-ID, права admin или supervisor
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /pricing-config/versions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListVersions(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUserNotFound), errors.Is(err, pricing.ErrAccessDenied):
			h.logger.Warn("GET /pricing-config/versions - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /pricing-config/versions - Failed to list versions: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pricing-config/versions - Versions listed successfully: user_id=%d, count=%d",
		userID, len(result.Configs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
