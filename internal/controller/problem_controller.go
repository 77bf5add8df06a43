package controller

import (
	"errors"
	"strconv"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	problemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{problemService: problemService}
}

// List godoc
// @Summary List design challenges
// @Tags problems
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Problem}
// @Router /api/problems [get]
func (c *ProblemController) List(ctx *gin.Context) {
	problems, err := c.problemService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, problems)
}

// Get godoc
// @Summary One challenge with its personas
// @Tags problems
// @Produce json
// @Param id path int true "Problem id"
// @Success 200 {object} util.Response{data=model.Problem}
// @Failure 404 {object} util.Response
// @Router /api/problems/{id} [get]
func (c *ProblemController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid problem id")
		return
	}

	problem, err := c.problemService.Get(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, problem)
}

// Personas godoc
// @Summary Personas for a challenge
// @Tags problems
// @Produce json
// @Param id path int true "Problem id"
// @Success 200 {object} util.Response{data=[]model.Persona}
// @Failure 404 {object} util.Response
// @Router /api/problems/{id}/personas [get]
func (c *ProblemController) Personas(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid problem id")
		return
	}

	personas, err := c.problemService.Personas(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, personas)
}
