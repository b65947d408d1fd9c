package controllers

import (
	"net/http"
	"strconv"

	"travelbuddy/services"

	"github.com/gin-gonic/gin"
)

type ProfileUpdateRequest struct {
	VisitedCountries []string               `json:"visited_countries"`
	Preferences      map[string]interface{} `json:"preferences"`
}

type VisitedRequest struct {
	Country   string `json:"country" binding:"required"`
	VisitDate string `json:"visit_date"`
}

type VisitedBulkRequest struct {
	Countries []string `json:"countries" binding:"required"`
}

func GetUserProfile(ctx *gin.Context) {
	profile, err := services.GetOrCreateProfile(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func UpdateUserProfile(ctx *gin.Context) {
	var req ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfile(ctx.Param("user_id"), req.VisitedCountries, req.Preferences)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func AddVisitedCountry(ctx *gin.Context) {
	var req VisitedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, added, err := services.AddVisitedCountry(ctx.Param("user_id"), req.Country, req.VisitDate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Added " + services.TitleCaseCountry(req.Country) + " to visited countries"
	if !added {
		message = services.TitleCaseCountry(req.Country) + " already in visited countries"
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":           message,
		"visited_countries": profile.VisitedCountries,
	})
}

func AddVisitedBulk(ctx *gin.Context) {
	var req VisitedBulkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, added, err := services.AddVisitedCountries(ctx.Param("user_id"), req.Countries)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":           "Added " + strconv.Itoa(added) + " countries",
		"visited_countries": profile.VisitedCountries,
	})
}

func RemoveVisitedCountry(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	country := ctx.Param("country")

	profile, removed, err := services.RemoveVisitedCountry(userID, country)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		ctx.JSON(http.StatusNotFound, gin.H{"error": country + " not found in visited countries"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":           "Removed " + country + " from visited countries",
		"visited_countries": profile.VisitedCountries,
	})
}
