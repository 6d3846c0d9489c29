// File: careconnect/handlers/booking.go
package handlers

import (
	"net/http"
	"time"

	"careconnect/middleware"
	"careconnect/services/scheduling"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// BookAppointmentRequest is the booking payload. The patient comes from the
// authenticated identity, never from the body.
type BookAppointmentRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartAt    string `json:"startAt" binding:"required"` // RFC 3339
	VisitType  string `json:"visitType"`
}

// BookAppointmentHandler books exactly one slot.
// POST /api/appointments (patients only)
func (hb *HandlerBundle) BookAppointmentHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input BookAppointmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	startAt, err := time.Parse(time.RFC3339, input.StartAt)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "startAt must be RFC 3339")
		return
	}

	appt, err := hb.Engine.Book(c.Request.Context(), scheduling.BookingRequest{
		ProviderID: input.ProviderID,
		PatientID:  ident.ID,
		Date:       input.Date,
		StartAt:    startAt.UTC(),
		VisitType:  input.VisitType,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}
