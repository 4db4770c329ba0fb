package middleware

import (
	"strings"

	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 解析 Bearer 令牌并核对会话存储中的 token_id。
// 登录或重新登录会覆盖存储的 token_id，旧令牌在这里被拒绝。
func AuthMiddleware(cfg *config.Config, tokens repository.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
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

		active, err := tokens.Active(c.Request.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}
		if !active {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
