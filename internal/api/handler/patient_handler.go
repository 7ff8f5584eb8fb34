package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

// PatientHandler exposes the read-only patient directory for clinicians.
type PatientHandler struct {
	users ports.UserService
}

func NewPatientHandler(users ports.UserService) *PatientHandler {
	return &PatientHandler{users: users}
}

type patientListResponse struct {
	Data []*domain.User `json:"data"`
}

// List handles GET /api/patients (doctor only).
//
// @Summary      List all patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  patientListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	patients, err := h.users.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, patientListResponse{Data: patients})
}
