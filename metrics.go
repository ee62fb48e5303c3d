package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// validGoals and validFocuses are the allowed enum values for the profile.
// Reject unknown values with 400 rather than computing against garbage.
var validGoals = map[string]bool{
	"bulking":     true,
	"cutting":     true,
	"maintenance": true,
}

var validFocuses = map[string]bool{
	"strength":    true,
	"hypertrophy": true,
}

// validateProfile checks a bound profile against the input conventions the
// form enforces client-side. Returns an error message, or "" when valid.
// The calculator itself never fails — this guard exists so callers get a
// clear 400 instead of a clamped result computed from nonsense.
func validateProfile(p userProfile) string {
	if p.Sex != "male" && p.Sex != "female" {
		return "sex must be one of: male, female"
	}
	if p.Age < 16 || p.Age > 99 {
		return "age must be between 16 and 99"
	}
	if p.HeightCM <= 0 {
		return "height_cm must be positive"
	}
	if p.WeightKG <= 0 {
		return "weight_kg must be positive"
	}
	if p.TrainingDays < 0 || p.TrainingDays > 7 {
		return "training_days must be between 0 and 7"
	}
	if !validGoals[p.Goal] {
		return "goal must be one of: bulking, cutting, maintenance"
	}
	if !validFocuses[p.Focus] {
		return "focus must be one of: strength, hypertrophy"
	}
	if p.NeckCM != nil && *p.NeckCM <= 0 {
		return "neck_cm must be positive when provided"
	}
	if p.WaistCM != nil && *p.WaistCM <= 0 {
		return "waist_cm must be positive when provided"
	}
	if p.HipCM != nil && *p.HipCM <= 0 {
		return "hip_cm must be positive when provided"
	}
	return ""
}

// calculateMetrics handles POST /api/fitness/metrics.
// Validates the submitted profile and returns the computed fitnessResult.
func (h *Handler) calculateMetrics(c *gin.Context) {
	var profile userProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfile(profile); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	c.JSON(http.StatusOK, calculateFitnessMetrics(profile))
}

// listMethods handles GET /api/fitness/methods.
// Returns metadata for both body-fat methods in a stable order.
func (h *Handler) listMethods(c *gin.Context) {
	c.JSON(http.StatusOK, []methodMetadata{
		methodCatalog[methodNavy],
		methodCatalog[methodDeurenberg],
	})
}

// getMethod handles GET /api/fitness/methods/:key.
// The key may be any alias or free-form label — it is normalized first, so
// this endpoint never 404s (unknown labels resolve to the deurenberg default).
func (h *Handler) getMethod(c *gin.Context) {
	c.JSON(http.StatusOK, methodInfo(c.Param("key")))
}
