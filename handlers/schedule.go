// File: careconnect/handlers/schedule.go
package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"careconnect/middleware"
	"careconnect/models"
	"careconnect/services/scheduling"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// requireScheduleOwner authorizes availability edits: the owning provider or
// an administrator. Returns false after writing the error response.
func requireScheduleOwner(c *gin.Context, providerID string) bool {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return false
	}
	if ident.Role == models.RoleAdmin {
		return true
	}
	if ident.Role == models.RoleProvider && ident.ID == providerID {
		return true
	}
	utils.JSONError(c, http.StatusForbidden, "Forbidden", "")
	return false
}

// SetAvailabilityRequest is the full weekly rule set for a provider.
type SetAvailabilityRequest struct {
	Rules []models.AvailabilityRule `json:"rules" binding:"required"`
}

// SetAvailabilityHandler replaces a provider's weekly availability rules.
// PUT /api/providers/:id/availability
func (hb *HandlerBundle) SetAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("id")
	if !requireScheduleOwner(c, providerID) {
		return
	}

	var input SetAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	for i := range input.Rules {
		input.Rules[i].ProviderID = providerID
		if err := scheduling.ValidateRule(input.Rules[i]); err != nil {
			respondSchedulingError(c, err)
			return
		}
	}

	if err := hb.Availability.ReplaceRules(c.Request.Context(), providerID, input.Rules); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": input.Rules})
}

// GetAvailabilityHandler returns a provider's rules and exceptions.
// GET /api/providers/:id/availability
func (hb *HandlerBundle) GetAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("id")
	if !requireScheduleOwner(c, providerID) {
		return
	}

	ctx := c.Request.Context()
	rules, err := hb.Availability.GetRules(ctx, providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	exceptions, err := hb.Availability.GetExceptions(ctx, providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules, "exceptions": exceptions})
}

// UpsertExceptionHandler creates or replaces a single-date exception.
// PUT /api/providers/:id/availability/exceptions
func (hb *HandlerBundle) UpsertExceptionHandler(c *gin.Context) {
	providerID := c.Param("id")
	if !requireScheduleOwner(c, providerID) {
		return
	}

	var input models.AvailabilityException
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	input.ProviderID = providerID

	if err := scheduling.ValidateException(input); err != nil {
		respondSchedulingError(c, err)
		return
	}

	if err := hb.Availability.UpsertException(c.Request.Context(), input); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exception": input})
}

// DeleteExceptionHandler removes a single-date exception.
// DELETE /api/providers/:id/availability/exceptions/:date
func (hb *HandlerBundle) DeleteExceptionHandler(c *gin.Context) {
	providerID := c.Param("id")
	if !requireScheduleOwner(c, providerID) {
		return
	}

	date := c.Param("date")
	if _, err := scheduling.ParseDate(date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "date must be YYYY-MM-DD")
		return
	}

	if err := hb.Availability.DeleteException(c.Request.Context(), providerID, date); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "Not found", "no exception for "+date)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": date})
}
