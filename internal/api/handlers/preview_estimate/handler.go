package preview_estimate

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMP-EstimateService/internal/api/handlers"
	"github.com/m04kA/CMP-EstimateService/internal/api/middleware"
	previewEstimate "github.com/m04kA/CMP-EstimateService/internal/usecase/preview_estimate"
)

const (
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgInvalidConfig      = "некорректный rate card"
	msgInvalidEstimate    = "некорректные данные заказа"
)

type Handler struct {
	useCase PreviewEstimateUseCase
	logger  Logger
}

func NewHandler(useCase PreviewEstimateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing-config/preview
// Требует X-User-ID, права admin или supervisor
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /pricing-config/preview - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PreviewEstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing-config/preview - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, previewEstimate.ErrUserNotFound), errors.Is(err, previewEstimate.ErrAccessDenied):
			h.logger.Warn("POST /pricing-config/preview - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, previewEstimate.ErrInvalidConfig):
			h.logger.Warn("POST /pricing-config/preview - Invalid config: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, previewEstimate.ErrInvalidInput):
			h.logger.Warn("POST /pricing-config/preview - Invalid estimate data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidEstimate)

		default:
			h.logger.Error("POST /pricing-config/preview - Failed to build preview: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing-config/preview - Preview built successfully: user_id=%d, total=%s",
		userID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
