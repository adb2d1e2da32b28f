package middleware

import (
	"net/http"
	"strings"

	"github.com/cgbookstore/go-backend-clean-architecture/api/controller"
	"github.com/cgbookstore/go-backend-clean-architecture/internal/tokenutil"
	"github.com/gin-gonic/gin"
)

// ContextUserIdKey 认证通过后用户ID写入gin上下文的键
const ContextUserIdKey = "x-user-id"

// JwtAuthMiddleware Bearer token校验，通过后将用户ID注入上下文
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "缺少认证信息")
			c.Abort()
			return
		}

		authToken := parts[1]
		authorized, err := tokenutil.IsAuthorized(authToken, secret)
		if !authorized {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			c.Abort()
			return
		}

		userId, err := tokenutil.ExtractIDFromToken(authToken, secret)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			c.Abort()
			return
		}

		c.Set(ContextUserIdKey, userId)
		c.Next()
	}
}
