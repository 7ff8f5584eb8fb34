package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatbotHandler is the assistant endpoint. It echoes the user's message
// with a greeting; no language processing happens here.
type ChatbotHandler struct{}

func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{}
}

type chatbotRequest struct {
	Message string `json:"message"`
}

type chatbotReply struct {
	Response string `json:"response"`
}

type chatbotResponse struct {
	Data chatbotReply `json:"data"`
}

// Query handles POST /api/chatbot/query.
//
// @Summary      Query the assistant
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  chatbotResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/chatbot/query [post]
func (h *ChatbotHandler) Query(c echo.Context) error {
	var req chatbotRequest
	_ = c.Bind(&req)

	response := "Hello! I'm the Breathe Right assistant. How can I help you with your lung health today?"
	if req.Message != "" {
		response = "You said: " + req.Message + ". This is a stub response."
	}

	return c.JSON(http.StatusOK, chatbotResponse{Data: chatbotReply{Response: response}})
}
