// README: Attraction search endpoints backed by Google Places.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"andariego/internal/maps"
)

type MapsHandler struct {
	places *maps.PlacesService
}

func NewMapsHandler(svc *maps.PlacesService) *MapsHandler {
	return &MapsHandler{places: svc}
}

// Attractions handles GET /api/maps/attractions?destination=...&interests=a,b.
func (h *MapsHandler) Attractions(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))
	if destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	var interests []string
	if raw := c.Query("interests"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				interests = append(interests, p)
			}
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	attractions, err := h.places.SearchAttractions(ctx, destination, interests)
	if err != nil {
		writeError(c, http.StatusBadGateway, "attraction search failed")
		return
	}
	if attractions == nil {
		attractions = []maps.Attraction{}
	}
	writeJSON(c, http.StatusOK, gin.H{"attractions": attractions})
}
