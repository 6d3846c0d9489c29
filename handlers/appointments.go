// File: careconnect/handlers/appointments.go
package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"careconnect/middleware"
	"careconnect/models"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// TransitionRequest carries the requested lifecycle action.
type TransitionRequest struct {
	Action string `json:"action" binding:"required"`
}

// TransitionAppointmentHandler applies a status action to an appointment.
// PATCH /api/appointments/:id
func (hb *HandlerBundle) TransitionAppointmentHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input TransitionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	action := models.TransitionAction(input.Action)
	switch action {
	case models.ActionCancel, models.ActionConfirm, models.ActionComplete, models.ActionNoShow:
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "unknown action "+input.Action)
		return
	}

	appt, err := hb.Engine.Transition(c.Request.Context(), c.Param("id"), action, ident)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// GetAppointmentHandler reads one appointment, visible only to its patient,
// its provider, and administrators.
// GET /api/appointments/:id
func (hb *HandlerBundle) GetAppointmentHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	appt, err := hb.Appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "Not found", "appointment not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}

	owner := (ident.Role == models.RolePatient && ident.ID == appt.PatientID) ||
		(ident.Role == models.RoleProvider && ident.ID == appt.ProviderID)
	if !owner && ident.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// ListMyAppointmentsHandler lists the authenticated patient's appointments.
// GET /api/me/appointments (patients only)
func (hb *HandlerBundle) ListMyAppointmentsHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	appts, err := hb.Appointments.ListByPatient(c.Request.Context(), ident.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListProviderAppointmentsHandler lists a provider's appointments for the
// owning provider or an administrator.
// GET /api/providers/:id/appointments
func (hb *HandlerBundle) ListProviderAppointmentsHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	providerID := c.Param("id")
	if !(ident.Role == models.RoleAdmin || (ident.Role == models.RoleProvider && ident.ID == providerID)) {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "")
		return
	}

	appts, err := hb.Appointments.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
