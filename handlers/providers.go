// File: careconnect/handlers/providers.go
package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// ListProvidersHandler lists all approved providers.
// GET /api/providers
func (hb *HandlerBundle) ListProvidersHandler(c *gin.Context) {
	providers, err := hb.Providers.ListApproved(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderHandler returns one provider. Providers that are not approved
// are indistinguishable from missing ones.
// GET /api/providers/:id
func (hb *HandlerBundle) GetProviderHandler(c *gin.Context) {
	prov, err := hb.Providers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "Not found", "provider not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
		return
	}
	if !prov.Bookable() {
		utils.JSONError(c, http.StatusNotFound, "Not found", "provider not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov})
}
