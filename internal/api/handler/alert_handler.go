package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/breatheright/health-system/internal/core/domain"
)

// AlertDispatcher is the interface the handler uses to enqueue alerts.
type AlertDispatcher interface {
	Enqueue(alert domain.EmergencyAlert)
}

// AlertHandler handles emergency alert ingestion.
type AlertHandler struct {
	dispatcher AlertDispatcher
}

func NewAlertHandler(dispatcher AlertDispatcher) *AlertHandler {
	return &AlertHandler{dispatcher: dispatcher}
}

type emergencyAlertRequest struct {
	Message string `json:"message,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Raise handles POST /api/emergency/alert (patient only). The alert is
// acknowledged immediately and processed asynchronously.
//
// @Summary      Raise an emergency alert
// @Tags         emergency
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/emergency/alert [post]
func (h *AlertHandler) Raise(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req emergencyAlertRequest
	_ = c.Bind(&req) // body is optional

	h.dispatcher.Enqueue(domain.EmergencyAlert{
		PatientID: userID,
		RaisedAt:  time.Now().UTC(),
		Message:   req.Message,
	})

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Emergency alert sent successfully. Medical personnel have been notified.",
	})
}
