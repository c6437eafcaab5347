package medication

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blister/blister/internal/domain/patient"
)

// Handler provides HTTP handlers for the medication domain.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the medication routes under /medications.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/medications")
	g.POST("/add/:patientId", h.Add)
	g.GET("/get/patient/:patientId", h.ListByPatient)
	g.PUT("/update/:mid", h.Update)
	g.DELETE("/delete/:mid", h.Delete)
}

func (h *Handler) Add(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid patient id")
	}
	var m Medication
	if err := c.Bind(&m); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Add(c.Request().Context(), patientID, &m)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return c.String(http.StatusOK, "Patient not found with ID: "+patientID.String())
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "Medication added successfully for patient: "+p.Name)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid patient id")
	}
	meds, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid medication id")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Update(c.Request().Context(), id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusOK, "Medication not found with ID: "+id.String())
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "Medication updated successfully (ID: "+id.String()+")")
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid medication id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusOK, "Medication not found with ID: "+id.String())
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "Medication deleted successfully (ID: "+id.String()+")")
}
