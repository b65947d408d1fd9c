package controllers

import (
	"net/http"

	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

type TranslationRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
	Context        string `json:"context"`
}

func Translate(ctx *gin.Context) {
	var req TranslationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.TranslateText(ctx.Request.Context(), req.Text, req.TargetLanguage, req.Context)
	if err != nil {
		ctx.JSON(http.StatusOK, services.Translation{
			Translation: "Error: " + err.Error(),
			Formality:   "neutral",
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
