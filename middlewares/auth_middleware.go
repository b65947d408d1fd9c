package middlewares

import (
	"net/http"
	"strings"

	"travelbuddy/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer JWT，通过后把 username 写入上下文
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			ctx.Abort()
			return
		}

		username, err := utils.ParseJWT(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("username", username)
		ctx.Next()
	}
}
