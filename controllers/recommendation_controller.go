package controllers

import (
	"net/http"

	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

type CountryRecommendationRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Budget      string `json:"budget"`
	TravelStyle string `json:"travel_style"`
}

func RecommendCountries(ctx *gin.Context) {
	var req CountryRecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.RecommendCountries(ctx.Request.Context(), req.UserID, req.Budget, req.TravelStyle)
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
