package controllers

import (
	"net/http"

	"travelbuddy/config"
	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	UserID  string                 `json:"user_id" binding:"required"`
	Message string                 `json:"message" binding:"required"`
	Context map[string]interface{} `json:"context"`
	TopK    int                    `json:"top_k"`
}

// Chat 通用聊天入口
func Chat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TopK <= 0 {
		req.TopK = config.AppConfig.Gemini.TopK
	}

	answer, sources, err := services.AnswerChat(ctx.Request.Context(), req.UserID, req.Message, req.Context, req.TopK)
	if err != nil {
		// 对话接口始终给用户一个可读的回复
		ctx.JSON(http.StatusOK, gin.H{
			"response": "Sorry, I encountered an error: " + err.Error(),
			"user_id":  req.UserID,
		})
		return
	}

	if sources == nil {
		sources = []services.ChatSource{}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"response": answer,
		"user_id":  req.UserID,
		"sources":  sources,
	})
}
