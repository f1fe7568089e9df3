package cancellation_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMP-EstimateService/internal/api/handlers"
	cancellationQuote "github.com/m04kA/CMP-EstimateService/internal/usecase/cancellation_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuoteData   = "некорректные данные для расчёта штрафа"
)

type Handler struct {
	useCase CancellationQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CancellationQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/estimates/cancellation-quote
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancellationQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /estimates/cancellation-quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, cancellationQuote.ErrInvalidInput):
			h.logger.Warn("POST /estimates/cancellation-quote - Invalid quote data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuoteData)

		default:
			h.logger.Error("POST /estimates/cancellation-quote - Failed to build quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /estimates/cancellation-quote - Quote built successfully: fee=%s, branch=%s",
		result.Fee, result.PolicyBranch)
	handlers.RespondJSON(w, http.StatusOK, result)
}
