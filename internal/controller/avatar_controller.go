package controller

import (
	"net/http"
	"strconv"
	"thinkquest_backend/internal/service"
	"thinkquest_backend/internal/util"
	"thinkquest_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvatarController proxies Ready Player Me avatar binaries and stores
// a user's chosen avatar URL.
type AvatarController struct {
	avatarService *service.AvatarService
}

func NewAvatarController(avatarService *service.AvatarService) *AvatarController {
	return &AvatarController{avatarService: avatarService}
}

// Proxy godoc
// @Summary Proxy an avatar binary
// @Description Fetches a GLB avatar and returns it with permissive CORS so the browser can load it
// @Tags avatar
// @Produce octet-stream
// @Param url query string true "Avatar URL"
// @Success 200 {string} binary
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/rpm-avatar-proxy [get]
func (c *AvatarController) Proxy(ctx *gin.Context) {
	url := ctx.Query("url")
	if url == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing URL query parameter."})
		return
	}

	data, err := c.avatarService.Fetch(ctx.Request.Context(), url)
	if err != nil {
		logger.Log.Error("Avatar proxy fetch failed", zap.String("url", url), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to proxy avatar. Please try again later."})
		return
	}

	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Content-Length", strconv.Itoa(len(data)))
	ctx.Data(http.StatusOK, "model/gltf-binary", data)
}

type updateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl" binding:"required"`
}

// UpdateAvatar godoc
// @Summary Update the user's avatar
// @Tags avatar
// @Accept json
// @Produce json
// @Param body body updateAvatarRequest true "Avatar URL"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/update-avatar [post]
func (c *AvatarController) UpdateAvatar(ctx *gin.Context) {
	claims := userClaims(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateAvatarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId or avatarUrl in request body."})
		return
	}

	if err := c.avatarService.UpdateAvatar(claims.UserID, req.AvatarURL); err != nil {
		logger.Log.Error("Avatar update failed", zap.Uint("userID", claims.UserID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar.", "details": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Avatar updated successfully."})
}
