// README: Trip service: plan (cache -> generator) and persistence operations.
package trips

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"andariego/internal/itinerary"
)

// Generator is the itinerary pipeline as the trip service sees it.
type Generator interface {
	Generate(ctx context.Context, req itinerary.Request) itinerary.Itinerary
	IsConfigured() bool
}

type Service struct {
	gen   Generator
	store *Store
	cache *Cache
}

// NewService wires the trip service. store and cache may be nil (demo CLI,
// tests); Plan degrades gracefully without them.
func NewService(gen Generator, store *Store, cache *Cache) *Service {
	return &Service{gen: gen, store: store, cache: cache}
}

// GeneratorConfigured reports whether the AI pipeline has a usable credential,
// for the UI's pre-flight probe.
func (s *Service) GeneratorConfigured() bool {
	return s.gen.IsConfigured()
}

// Plan returns an itinerary for the request, serving from the Redis cache
// when an identical request was generated recently. Like the generator
// itself, it always returns a usable itinerary.
func (s *Service) Plan(ctx context.Context, req itinerary.Request) itinerary.Itinerary {
	if s.cache != nil {
		if it, ok := s.cache.Get(ctx, req); ok {
			return it
		}
	}

	it := s.gen.Generate(ctx, req)

	if s.cache != nil {
		if err := s.cache.Set(ctx, req, it); err != nil {
			log.Printf("trips: caching itinerary failed: %v", err)
		}
	}
	return it
}

// Save persists an itinerary as a trip owned by userID and returns the stored
// record. An empty title is derived from the itinerary.
func (s *Service) Save(ctx context.Context, userID, title string, it itinerary.Itinerary) (Trip, error) {
	if userID == "" || it.Destination == "" {
		return Trip{}, ErrBadRequest
	}
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("%d days in %s", it.Days, it.Destination)
	}

	t := Trip{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         title,
		Destination:   it.Destination,
		Days:          it.Days,
		GeneratedByAI: s.gen.IsConfigured(),
		Itinerary:     it,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, t); err != nil {
		return Trip{}, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Trip, error) {
	if userID == "" || id == "" {
		return Trip{}, ErrBadRequest
	}
	return s.store.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Trip, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}
