package controllers

import (
	"net/http"

	"travelbuddy/config"
	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Travel Buddy API",
		"status":  "running",
		"version": config.AppConfig.App.Version,
		"features": []string{
			"Activity recommendations",
			"Country recommendations",
			"Translation service",
			"Chat interface",
			"Interactive travel map",
		},
	})
}

func HealthCheck(ctx *gin.Context) {
	apiKeySet := config.AppConfig.Gemini.APIKey != ""
	keyPreview := "NOT SET"
	if apiKeySet {
		key := config.AppConfig.Gemini.APIKey
		if len(key) > 10 {
			key = key[:10]
		}
		keyPreview = key + "..."
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"gemini_configured": services.GeminiReady(),
		"api_key_set":       apiKeySet,
		"users":             services.CountProfiles(),
		"documents_loaded":  services.Store.Count(),
		"debug": gin.H{
			"has_model":   services.GeminiReady(),
			"has_key":     apiKeySet,
			"key_preview": keyPreview,
		},
	})
}

// TestEndpoint 手工冒烟测试用的接口目录
func TestEndpoint(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":      "API is working!",
		"gemini_ready": services.GeminiReady(),
		"endpoints": gin.H{
			"health":       "/api/health (GET)",
			"activities":   "/api/activities (POST)",
			"countries":    "/api/recommend-countries (POST)",
			"translate":    "/api/translate (POST)",
			"chat":         "/api/chat (POST)",
			"map":          "/api/users/{user_id}/visited (POST/DELETE)",
			"documents":    "/api/documents (GET/POST)",
			"destinations": "/api/destinations/top (GET)",
		},
	})
}
