package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/breatheright/health-system/internal/api/metrics"
	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

// HealthLogHandler handles symptom log creation and reads.
type HealthLogHandler struct {
	service ports.HealthLogService
}

func NewHealthLogHandler(service ports.HealthLogService) *HealthLogHandler {
	return &HealthLogHandler{service: service}
}

// createHealthLogRequest uses pointer booleans so an explicit `false`
// satisfies the required check while a missing field does not.
type createHealthLogRequest struct {
	CoughSeverity   int   `json:"cough_severity"   validate:"required,min=1,max=5"`
	BreathingIssues *bool `json:"breathing_issues" validate:"required"`
	ChestPain       *bool `json:"chest_pain"       validate:"required"`
}

type healthLogResponse struct {
	Data *domain.HealthLog `json:"data"`
}

type healthLogListResponse struct {
	Data []*domain.HealthLog `json:"data"`
}

// Create handles POST /api/health/logs (patient only).
//
// @Summary      Record a symptom log
// @Tags         health-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHealthLogRequest  true  "Symptom report"
// @Success      201   {object}  healthLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/health/logs [post]
func (h *HealthLogHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createHealthLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	log, err := h.service.Create(c.Request().Context(), userID, ports.CreateHealthLogInput{
		CoughSeverity:   req.CoughSeverity,
		BreathingIssues: *req.BreathingIssues,
		ChestPain:       *req.ChestPain,
	})
	if err != nil {
		return err
	}

	metrics.HealthLogsCreatedTotal.WithLabelValues(strconv.Itoa(log.CoughSeverity)).Inc()

	return c.JSON(http.StatusCreated, healthLogResponse{Data: log})
}

// List handles GET /api/health/logs/:patient_id. Patients may read their own
// logs only; doctors may read any patient's.
//
// @Summary      List a patient's symptom logs (newest first)
// @Tags         health-logs
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id  path      int  true  "Patient id"
// @Success      200         {object}  healthLogListResponse
// @Failure      400         {object}  map[string]string
// @Failure      401         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Router       /api/health/logs/{patient_id} [get]
func (h *HealthLogHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	patientID, err := strconv.ParseInt(c.Param("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id must be an integer")
	}

	logs, err := h.service.ListForPatient(c.Request().Context(), ports.ListHealthLogsInput{
		CallerID:   userID,
		CallerRole: role,
		PatientID:  patientID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, healthLogListResponse{Data: logs})
}
