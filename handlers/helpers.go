// File: careconnect/handlers/helpers.go
package handlers

import (
	"net/http"

	"careconnect/services/scheduling"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps the engine's stable error codes onto HTTP
// statuses. Unknown errors never leak details to the client.
func respondSchedulingError(c *gin.Context, err error) {
	switch scheduling.CodeOf(err) {
	case scheduling.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
	case scheduling.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case scheduling.CodeSlotUnavailable:
		utils.JSONError(c, http.StatusConflict, "Slot unavailable", err.Error())
	case scheduling.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case scheduling.CodeInvalidTransition:
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid transition", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
	}
}
