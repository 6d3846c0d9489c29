// File: careconnect/handlers/reminders.go
package handlers

import (
	"net/http"
	"time"

	"careconnect/services/reminder"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// RunReminderPassHandler runs a reminder classification pass on demand and
// returns the matched items. Admin only; the cron worker runs the same pass
// on a schedule.
// POST /api/admin/reminders/run
func (hb *HandlerBundle) RunReminderPassHandler(c *gin.Context) {
	now := time.Now().UTC()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid input", "now must be RFC3339")
			return
		}
		now = parsed.UTC()
	}

	matches, err := hb.Reminders.Run(c.Request.Context(), now)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"now":       now.Format(time.RFC3339),
		"reminders": reminder.Items(matches),
	})
}
