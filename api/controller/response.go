package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应格式
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// SuccessResponse 统一成功响应格式，dataKey为业务数据的字段名
func SuccessResponse(ctx *gin.Context, dataKey string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		dataKey: data,
		"count": count,
	})
}
