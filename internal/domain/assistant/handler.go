package assistant

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handler provides HTTP handlers for the assistant domain.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the assistant routes. The path keeps the
// /api/gemini prefix the existing clients call, whichever model backs it.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/gemini/medication/ask", h.Ask)
}

type askRequest struct {
	Prompt string `json:"prompt"`
	PID    string `json:"pid"`
}

func (h *Handler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	patientID, err := uuid.Parse(req.PID)
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid patient id")
	}

	outcome, err := h.svc.Ask(c.Request().Context(), patientID, req.Prompt)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	switch {
	case outcome.NoData:
		return c.JSON(http.StatusOK, map[string]interface{}{
			"aiResponse": outcome.AIResponse,
		})
	case outcome.AIFailed:
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"aiResponse":      "Error fetching AI response.",
			"consumedSummary": "",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"aiResponse":      outcome.AIResponse,
		"consumedSummary": outcome.Summary,
	})
}
