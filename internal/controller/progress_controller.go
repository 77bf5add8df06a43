package controller

import (
	"errors"
	"net/http"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	progressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// Get godoc
// @Summary Current quest progress
// @Description Returns the active run, creating a fresh one on first access
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.QuestProgress}
// @Router /api/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.progressService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type selectProblemRequest struct {
	ProblemID uint `json:"problemId" binding:"required"`
}

// SelectProblem godoc
// @Summary Bind the run to a problem
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body selectProblemRequest true "Problem id"
// @Success 200 {object} util.Response{data=model.QuestProgress}
// @Failure 404 {object} util.Response
// @Router /api/progress/problem [post]
func (c *ProgressController) SelectProblem(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req selectProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.progressService.SelectProblem(claims.UserID, req.ProblemID)
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type submitStageRequest struct {
	Score      float64        `json:"score" binding:"min=0,max=100"`
	Reflection string         `json:"reflection"`
	Data       map[string]any `json:"data"`
}

type submitStageResponse struct {
	Progress     any  `json:"progress"`
	UnlockedNext bool `json:"unlockedNext"`
}

// SubmitStage godoc
// @Summary Record a scored stage
// @Description Stores the stage result; a score at or above the pass threshold unlocks the next stage
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param stage path string true "Stage name" Enums(empathy, define, ideate, prototype, test)
// @Param body body submitStageRequest true "Stage result"
// @Success 200 {object} util.Response{data=submitStageResponse}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/progress/stages/{stage} [post]
func (c *ProgressController) SubmitStage(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req submitStageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, unlocked, err := c.progressService.SubmitStage(claims.UserID, ctx.Param("stage"), req.Score, req.Reflection, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownStage):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrStageLocked):
			util.Error(ctx, http.StatusForbidden, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, submitStageResponse{Progress: progress, UnlockedNext: unlocked})
}

// Reset godoc
// @Summary Reset the run
// @Description Discards the active run; the next fetch starts over with only the first stage open
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/reset [post]
func (c *ProgressController) Reset(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.progressService.Reset(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reset": true})
}
