// README: Trip endpoint authorization tests.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"andariego/internal/http/handlers"
	httpmiddleware "andariego/internal/http/middleware"
	"andariego/internal/infra"
	"andariego/internal/modules/trips"
)

// stubTokenVerifier is a test double for infra.TokenVerifier.
type stubTokenVerifier struct {
	token *infra.FirebaseToken
	err   error
}

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return s.token, s.err
}

// buildTripRouter wires a minimal engine with the auth middleware and the trip
// handler. trips.NewService with a nil store is safe here because every test
// fails validation or auth before a store method is reached.
func buildTripRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := trips.NewService(&stubGenerator{}, nil, nil)
	r := gin.New()
	r.Use(httpmiddleware.Auth(verifier))
	h := handlers.NewTripHandler(svc)
	r.POST("/api/trips", h.Save)
	r.GET("/api/trips", h.List)
	r.GET("/api/trips/:id", h.Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveTrip_Unauthenticated(t *testing.T) {
	r := buildTripRouter(&stubTokenVerifier{err: errors.New("no token")})
	w := doRequest(r, http.MethodPost, "/api/trips", map[string]any{"title": "Norte"}, "Bearer badtoken")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSaveTrip_MissingItineraryDestination(t *testing.T) {
	verifier := &stubTokenVerifier{token: &infra.FirebaseToken{UID: "traveler1"}}
	r := buildTripRouter(verifier)
	w := doRequest(r, http.MethodPost, "/api/trips", map[string]any{
		"title":     "Empty trip",
		"itinerary": map[string]any{},
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetTrip_Unauthenticated(t *testing.T) {
	r := buildTripRouter(&stubTokenVerifier{err: errors.New("no token")})
	w := doRequest(r, http.MethodGet, "/api/trips/some-id", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
