// README: Itinerary generation endpoints (public, no auth).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"andariego/internal/itinerary"
	"andariego/internal/modules/trips"
)

// maxTripDays bounds what the API accepts; the pipeline itself tolerates any
// day count, this is purely a sanity limit for the mobile client.
const maxTripDays = 30

type ItineraryHandler struct {
	trips *trips.Service
}

func NewItineraryHandler(tripSvc *trips.Service) *ItineraryHandler {
	return &ItineraryHandler{trips: tripSvc}
}

type generateReq struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	Budget      string   `json:"budget"`
	Region      string   `json:"region"`
}

// Generate handles POST /api/itineraries/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if req.Days < 1 || req.Days > maxTripDays {
		writeError(c, http.StatusBadRequest, "days must be between 1 and 30")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	it := h.trips.Plan(ctx, itinerary.Request{
		Destination: req.Destination,
		Days:        req.Days,
		Interests:   req.Interests,
		Budget:      req.Budget,
		Region:      req.Region,
	})

	writeJSON(c, http.StatusOK, it)
}

// Status handles GET /api/itineraries/status. The mobile app probes this to
// decide whether to show the "AI-generated" badge.
func (h *ItineraryHandler) Status(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"configured": h.trips.GeneratorConfigured()})
}
