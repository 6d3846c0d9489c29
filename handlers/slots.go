// File: careconnect/handlers/slots.go
package handlers

import (
	"net/http"

	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// ListSlotsHandler returns the bookable slots for one provider and date.
// GET /api/providers/:id/slots?date=YYYY-MM-DD
func (hb *HandlerBundle) ListSlotsHandler(c *gin.Context) {
	providerID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "query parameter 'date' is required")
		return
	}

	slots, err := hb.Engine.ListSlots(c.Request.Context(), providerID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providerId": providerID,
		"date":       date,
		"slots":      slots,
	})
}
