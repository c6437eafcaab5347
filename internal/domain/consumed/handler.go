package consumed

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blister/blister/internal/domain/medication"
)

// Handler provides HTTP handlers for the consumed domain.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the consumed routes under /consumed.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/consumed")
	g.GET("/bypatient/:pid", h.ListByPatient)
	g.POST("/add/:mid", h.Add)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid patient id")
	}
	records, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

type addRequest struct {
	DateTime time.Time `json:"dateTime"`
}

func (h *Handler) Add(c echo.Context) error {
	medicationID, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid medication id")
	}
	var req addRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.Record(c.Request().Context(), medicationID, req.DateTime)
	if err != nil {
		if errors.Is(err, medication.ErrNotFound) {
			return c.String(http.StatusNotFound, "Medication not found with ID: "+medicationID.String())
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}
