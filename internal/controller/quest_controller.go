package controller

import (
	"net/http"
	"strconv"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuestController finishes runs and serves the leaderboard. Both
// endpoints keep the legacy wire contract.
type QuestController struct {
	leaderboard     *service.LeaderboardService
	progressService *service.ProgressService
}

func NewQuestController(leaderboard *service.LeaderboardService, progressService *service.ProgressService) *QuestController {
	return &QuestController{leaderboard: leaderboard, progressService: progressService}
}

type completeQuestRequest struct {
	ProblemID  uint    `json:"problemId" binding:"required"`
	TotalScore float64 `json:"totalScore"`
	Solution   string  `json:"solution" binding:"required"`
}

// CompleteQuest godoc
// @Summary Complete the quest and claim rewards
// @Description Verifies all stages are done, records the run on the leaderboard, and credits rewards
// @Tags quest
// @Accept json
// @Produce json
// @Param body body completeQuestRequest true "Run summary"
// @Success 200 {object} model.QuestReward
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/complete-quest [post]
func (c *QuestController) CompleteQuest(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req completeQuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing totalScore, problemId, userId, or solution."})
		return
	}

	// The client reports its total, but the server's stage records are
	// authoritative.
	progress, err := c.progressService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !progress.AllCompleted() {
		ctx.JSON(http.StatusConflict, gin.H{"error": util.ErrQuestIncomplete.Error()})
		return
	}

	reward, err := c.leaderboard.CompleteQuest(claims.UserID, req.ProblemID, progress.TotalScore(), req.Solution)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"rank":    reward.Rank,
		"reward":  reward.Reward,
		"badge":   reward.Badge,
		"tokens":  reward.Tokens,
		"stars":   reward.Stars,
		"message": "Quest completed successfully!",
	})
}

// Leaderboard godoc
// @Summary Leaderboard for a problem
// @Description Returns finished runs for one problem, best score first
// @Tags quest
// @Produce json
// @Param problemId query int true "Problem id"
// @Success 200 {array} model.LeaderboardEntry
// @Failure 400 {object} map[string]string
// @Router /api/leaderboard [get]
func (c *QuestController) Leaderboard(ctx *gin.Context) {
	raw := ctx.Query("problemId")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing problemId query parameter."})
		return
	}
	problemID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid problemId query parameter."})
		return
	}

	ctx.JSON(http.StatusOK, c.leaderboard.Entries(uint(problemID)))
}
