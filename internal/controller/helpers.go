package controller

import (
	"thinkquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func userClaims(ctx *gin.Context) *util.Claims {
	return util.GetUserFromContext(ctx)
}
