package handlers

import (
	"net/http"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/errors"
	"savings-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AdviceHandler serves savings advice. A nil service means the model
// provider is not configured.
type AdviceHandler struct {
	adviceService services.AdviceServiceInterface
}

func NewAdviceHandler(adviceService services.AdviceServiceInterface) *AdviceHandler {
	return &AdviceHandler{
		adviceService: adviceService,
	}
}

// GetAdvice returns model-written savings advice for the user's expenses
//
// Method: GET /financial-advice
// Authentication: Required
// Error Responses: 500 SYSTEM_002 (store), 500 SYSTEM_004 (not configured),
// 503 SYSTEM_003 (index or model unavailable)
func (h *AdviceHandler) GetAdvice(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if h.adviceService == nil {
		return SendError(c, errors.SystemConfigurationError)
	}

	advice, err := h.adviceService.GenerateAdvice(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}
