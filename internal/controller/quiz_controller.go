package controller

import (
	"thinkquest_backend/internal/service"
	"thinkquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	quizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// Questions godoc
// @Summary List quiz questions
// @Description Returns the onboarding quiz without answers or rationales
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Router /api/quiz [get]
func (c *QuizController) Questions(ctx *gin.Context) {
	questions, err := c.quizService.Questions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Grades the attempt, marks the quiz completed, and grants the one-time token reward
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuizSubmission true "Selected option index per question position"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 400 {object} util.Response
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.quizService.Submit(claims.UserID, &submission)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

// Skip godoc
// @Summary Skip the quiz
// @Description Opens the quest gate without a reward
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/quiz/skip [post]
func (c *QuizController) Skip(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.quizService.Skip(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"skipped": true})
}
