package controllers

import (
	"net/http"

	"travelbuddy/config"
	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

type ActivityRequest struct {
	UserID       string   `json:"user_id" binding:"required"`
	Country      string   `json:"country" binding:"required"`
	Interests    []string `json:"interests"`
	DurationDays int      `json:"duration_days"`
}

func GetActivities(ctx *gin.Context) {
	var req ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.RecommendActivities(
		ctx.Request.Context(),
		req.UserID, req.Country, req.Interests, req.DurationDays,
		config.AppConfig.Gemini.TopK,
	)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"response":        "Error: " + err.Error(),
			"recommendations": []gin.H{},
			"sources":         []gin.H{},
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
