package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ReportHandler acknowledges report requests. Actual report generation is
// not implemented; the response carries only a descriptor.
type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type reportDescriptor struct {
	ReportID    string `json:"report_id"`
	GeneratedAt string `json:"generated_at"`
}

type reportResponse struct {
	Message string           `json:"message"`
	Data    reportDescriptor `json:"data"`
}

// Generate handles POST /api/reports/generate (patient only).
//
// @Summary      Request a health report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/reports/generate [post]
func (h *ReportHandler) Generate(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return c.JSON(http.StatusOK, reportResponse{
		Message: "Report generated successfully",
		Data: reportDescriptor{
			ReportID:    fmt.Sprintf("report_%d_%d", userID, now.Unix()),
			GeneratedAt: now.Format(time.RFC3339),
		},
	})
}
