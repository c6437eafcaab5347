package patient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handler provides HTTP handlers for the patient domain.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the patient routes. The paths are flat (no
// resource prefix) for compatibility with the existing clients.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/getById/:id", h.GetByID)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.PUT("/update/:id", h.Update)
	e.PUT("/updateProfile/:id", h.UpdateProfile)
	e.PUT("/setAlert/:id", h.SetAlert)
	e.PUT("/clearAlert/:id", h.ClearAlert)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Patient not found!")
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Register(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	err := h.svc.Register(c.Request().Context(), &p)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// 200 with a plain-text body, matching the contract the
			// frontend keys its error handling on.
			return c.String(http.StatusOK, "Email already registered!")
		}
		return c.String(http.StatusBadRequest, err.Error())
	}
	return c.String(http.StatusOK, "Registration successful! Login details sent to patient and caretaker.")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPassword):
			return c.String(http.StatusUnauthorized, "Invalid password!")
		case errors.Is(err, ErrNotFound):
			return c.String(http.StatusNotFound, "User not found!")
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid id")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.UpdatePartial(c.Request().Context(), id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusOK, "Patient not found!")
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.String(http.StatusOK, "Patient updated successfully!")
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid id")
	}
	var upd ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.ReplaceProfile(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, fmt.Sprintf("Patient with ID %s not found", id))
		}
		return c.String(http.StatusInternalServerError, "Error updating patient: "+err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SetAlert(c echo.Context) error {
	return h.writeAlert(c, true)
}

func (h *Handler) ClearAlert(c echo.Context) error {
	return h.writeAlert(c, false)
}

func (h *Handler) writeAlert(c echo.Context, alert bool) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.SetAlert(c.Request().Context(), id, alert)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Patient not found!")
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	if alert {
		return c.String(http.StatusOK, "Alert set to TRUE for patient: "+p.Name)
	}
	return c.String(http.StatusOK, "Alert cleared (set to FALSE) for patient: "+p.Name)
}
