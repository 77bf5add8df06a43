package controller

import (
	"net/http"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/pkg/logger"
	"thinkquest_backend/pkg/monitoring"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatController relays persona conversations to the model.
type ChatController struct {
	personaService *service.PersonaService
}

func NewChatController(personaService *service.PersonaService) *ChatController {
	return &ChatController{personaService: personaService}
}

// Chat godoc
// @Summary Interview a persona
// @Description Streams a persona's in-character answer over SSE
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param body body service.PersonaChatRequest true "Persona and question"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]string
// @Router /api/gemini-chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	start := time.Now()
	defer monitoring.ObserveRelay("gemini-chat", start)

	var req service.PersonaChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing persona details or question."})
		return
	}

	stream, errChan := c.personaService.ChatStream(ctx.Request.Context(), &req)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	wrote := false
	for chunk := range stream {
		ctx.Writer.WriteString(chunk)
		ctx.Writer.Flush()
		wrote = true
	}

	if err := <-errChan; err != nil {
		logger.Log.Error("Persona chat stream failed", zap.Error(err))
		if !wrote {
			// Nothing sent yet, so a JSON error is still possible.
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to get response from AI. Please try again later.",
				"details": err.Error(),
			})
		}
	}
}

// PersonaFeedback godoc
// @Summary Persona reacts to a prototype
// @Description Returns a short plain-language reaction from the persona's point of view
// @Tags chat
// @Accept json
// @Produce json
// @Param body body service.PersonaFeedbackRequest true "Persona and prototype"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/gemini-persona [post]
func (c *ChatController) PersonaFeedback(ctx *gin.Context) {
	start := time.Now()
	defer monitoring.ObserveRelay("gemini-persona", start)

	var req service.PersonaFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing persona, prototype data, or problem title."})
		return
	}

	feedback, err := c.personaService.PrototypeFeedback(ctx.Request.Context(), &req)
	if err != nil {
		logger.Log.Error("Persona feedback relay failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get persona feedback from AI. Please try again later.",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
