// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"andariego/internal/http/handlers"
	"andariego/internal/http/middleware"
	"andariego/internal/infra"
	"andariego/internal/maps"
	"andariego/internal/modules/assistant"
	"andariego/internal/modules/expense"
	"andariego/internal/modules/trips"
	"andariego/internal/translate"
)

// ServerDeps carries the module services the router exposes. Verifier is
// required; Translator and Places may be nil when their API keys are absent,
// in which case their routes are not registered.
type ServerDeps struct {
	Trips      *trips.Service
	Expenses   *expense.Service
	Assistant  *assistant.Service
	Translator *translate.Service
	Places     *maps.PlacesService
	Verifier   infra.TokenVerifier
}

func NewRouter(deps ServerDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Itinerary generation is public: the app lets users plan before they
	// sign in, and the pipeline never exposes per-user data.
	itineraryHandler := handlers.NewItineraryHandler(deps.Trips)
	r.POST("/api/itineraries/generate", itineraryHandler.Generate)
	r.GET("/api/itineraries/status", itineraryHandler.Status)

	if deps.Translator != nil {
		translateHandler := handlers.NewTranslateHandler(deps.Translator)
		r.POST("/api/translate", translateHandler.Translate)
		r.GET("/api/translate/languages", translateHandler.Languages)
	}

	if deps.Places != nil {
		mapsHandler := handlers.NewMapsHandler(deps.Places)
		r.GET("/api/maps/attractions", mapsHandler.Attractions)
	}

	authed := r.Group("/api", middleware.Auth(deps.Verifier))

	tripHandler := handlers.NewTripHandler(deps.Trips)
	authed.POST("/trips", tripHandler.Save)
	authed.GET("/trips", tripHandler.List)
	authed.GET("/trips/:id", tripHandler.Get)

	expenseHandler := handlers.NewExpenseHandler(deps.Expenses)
	authed.POST("/trips/:id/expenses", expenseHandler.Record)
	authed.GET("/trips/:id/expenses", expenseHandler.List)

	assistantHandler := handlers.NewAssistantHandler(deps.Assistant)
	authed.POST("/assistant/ask", assistantHandler.Ask)
	authed.GET("/assistant/credits", assistantHandler.Credits)

	return r
}
