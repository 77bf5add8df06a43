package controller

import (
	"errors"
	"net/http"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/pkg/logger"
	"thinkquest_backend/pkg/monitoring"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScoreController relays stage submissions to the model for grading.
// Its endpoints keep the legacy wire contract: plain JSON bodies, no
// envelope, so existing clients parse responses unchanged.
type ScoreController struct {
	scoreService   *service.ScoreService
	personaService *service.PersonaService
	storageService *service.StorageService
}

func NewScoreController(scoreService *service.ScoreService, personaService *service.PersonaService, storageService *service.StorageService) *ScoreController {
	return &ScoreController{
		scoreService:   scoreService,
		personaService: personaService,
		storageService: storageService,
	}
}

// Score godoc
// @Summary Score a quest stage submission
// @Description Validates the stage submission, asks the model for a structured verdict, and returns score plus feedback
// @Tags scoring
// @Accept json
// @Produce json
// @Param body body service.ScoreRequest true "Stage submission"
// @Success 200 {object} service.ScoreFeedback
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /api/gemini-score [post]
func (c *ScoreController) Score(ctx *gin.Context) {
	start := time.Now()
	defer monitoring.ObserveRelay("gemini-score", start)

	var req service.ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing stage information."})
		return
	}

	feedback, err := c.scoreService.ScoreStage(ctx.Request.Context(), &req)
	if err == nil {
		ctx.JSON(http.StatusOK, feedback)
		return
	}

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}

	var pe *service.ParseError
	if errors.As(err, &pe) {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":       "AI response could not be parsed. Please try again.",
			"rawResponse": pe.Raw,
		})
		return
	}

	if errors.Is(err, service.ErrUnexpectedFormat) {
		fallback := service.FallbackFeedback()
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":          "AI response in unexpected format. Providing fallback score.",
			"score":          fallback.Score,
			"strengths":      fallback.Strengths,
			"improvements":   fallback.Improvements,
			"suggestions":    fallback.Suggestions,
			"overallComment": fallback.OverallComment,
		})
		return
	}

	logger.Log.Error("Scoring relay failed", zap.String("stage", req.Stage), zap.Error(err))
	fallback := service.UpstreamFallback()
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":          "Failed to get score from AI. Please try again later.",
		"details":        err.Error(),
		"score":          fallback.Score,
		"strengths":      fallback.Strengths,
		"improvements":   fallback.Improvements,
		"suggestions":    fallback.Suggestions,
		"overallComment": fallback.OverallComment,
	})
}

// ScorePrototype godoc
// @Summary Expert review of a prototype with visuals
// @Description Runs the strict multimodal prototype review and archives uploaded files
// @Tags scoring
// @Accept json
// @Produce json
// @Param body body service.PrototypeReviewRequest true "Prototype submission"
// @Success 200 {object} service.PrototypeFeedback
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /api/gemini-score-prototype [post]
func (c *ScoreController) ScorePrototype(ctx *gin.Context) {
	start := time.Now()
	defer monitoring.ObserveRelay("gemini-score-prototype", start)

	var req service.PrototypeReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing selected idea or poster content."})
		return
	}

	feedback, err := c.personaService.ReviewPrototype(ctx.Request.Context(), &req)
	if err == nil {
		if claims := userClaims(ctx); claims != nil && len(req.Uploads) > 0 {
			c.storageService.ArchiveUploads(ctx.Request.Context(), claims.UserID, req.Uploads)
		}
		ctx.JSON(http.StatusOK, feedback)
		return
	}

	var pe *service.ParseError
	if errors.As(err, &pe) {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":       "AI response could not be parsed. Please try again.",
			"rawResponse": pe.Raw,
		})
		return
	}

	if errors.Is(err, service.ErrUnexpectedFormat) {
		fallback := service.FallbackFeedback()
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":            "AI response in unexpected format. Providing fallback score.",
			"score":            fallback.Score,
			"strengths":        fallback.Strengths,
			"improvements":     fallback.Improvements,
			"suggestions":      fallback.Suggestions,
			"overallComment":   fallback.OverallComment,
			"addressesProblem": false,
		})
		return
	}

	logger.Log.Error("Prototype review relay failed", zap.Error(err))
	fallback := service.UpstreamFallback()
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":            "Failed to get score from AI. Please try again later.",
		"details":          err.Error(),
		"score":            fallback.Score,
		"strengths":        fallback.Strengths,
		"improvements":     fallback.Improvements,
		"suggestions":      fallback.Suggestions,
		"overallComment":   fallback.OverallComment,
		"addressesProblem": false,
	})
}
