package middleware

import (
	"strings"
	"thinkquest_backend/internal/config"
	"thinkquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// QuizStatusRepo is the slice of the user repository the quiz gate needs.
type QuizStatusRepo interface {
	QuizReady(userID uint) (bool, error)
}

// QuizGateMiddleware blocks quest routes until the user has completed
// or explicitly skipped the onboarding quiz.
func QuizGateMiddleware(repo QuizStatusRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		ready, err := repo.QuizReady(claims.UserID)
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}
		if !ready {
			util.Forbidden(c, util.ErrQuizRequired.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
