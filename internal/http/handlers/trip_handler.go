// README: Trip persistence endpoints (auth required).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"andariego/internal/http/middleware"
	"andariego/internal/itinerary"
	"andariego/internal/modules/trips"
)

type TripHandler struct {
	trips *trips.Service
}

func NewTripHandler(tripSvc *trips.Service) *TripHandler {
	return &TripHandler{trips: tripSvc}
}

type saveTripReq struct {
	Title     string              `json:"title"`
	Itinerary itinerary.Itinerary `json:"itinerary"`
}

type tripResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Destination   string              `json:"destination"`
	Days          int                 `json:"days"`
	GeneratedByAI bool                `json:"generatedByAi"`
	Itinerary     itinerary.Itinerary `json:"itinerary"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func toTripResponse(t trips.Trip) tripResponse {
	return tripResponse{
		ID:            t.ID,
		Title:         t.Title,
		Destination:   t.Destination,
		Days:          t.Days,
		GeneratedByAI: t.GeneratedByAI,
		Itinerary:     t.Itinerary,
		CreatedAt:     t.CreatedAt,
	}
}

// Save handles POST /api/trips.
func (h *TripHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	t, err := h.trips.Save(c.Request.Context(), middleware.CallerUID(c), req.Title, req.Itinerary)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toTripResponse(t))
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	t, err := h.trips.Get(c.Request.Context(), middleware.CallerUID(c), c.Param("id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(t))
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	list, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	out := make([]tripResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTripResponse(t))
	}
	writeJSON(c, http.StatusOK, out)
}
