// api/handlers/itinerary_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flygoldfinch/api/data"
)

type ItineraryHandlers struct{}

func NewItineraryHandlers() *ItineraryHandlers {
	return &ItineraryHandlers{}
}

// ListItineraries returns the catalog, optionally filtered by destination
// (?destination=Japan) or to featured trips only (?featured=true).
func (h *ItineraryHandlers) ListItineraries(c *gin.Context) {
	if destination := c.Query("destination"); destination != "" {
		c.JSON(http.StatusOK, data.ItinerariesByDestination(destination))
		return
	}
	if c.Query("featured") == "true" {
		c.JSON(http.StatusOK, data.FeaturedItineraries())
		return
	}
	c.JSON(http.StatusOK, data.Itineraries())
}

// GetItinerary returns a single itinerary by slug.
func (h *ItineraryHandlers) GetItinerary(c *gin.Context) {
	itinerary, ok := data.ItineraryBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
		return
	}
	c.JSON(http.StatusOK, itinerary)
}
