// README: Trip service tests (cache-aside behaviour via miniredis).
package trips

import (
	"context"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"andariego/internal/itinerary"
)

// countingGenerator serves the deterministic fallback and counts calls.
type countingGenerator struct {
	calls      int
	configured bool
}

func (g *countingGenerator) Generate(_ context.Context, req itinerary.Request) itinerary.Itinerary {
	g.calls++
	return itinerary.Fallback(req)
}

func (g *countingGenerator) IsConfigured() bool { return g.configured }

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestPlanCachesResult(t *testing.T) {
	gen := &countingGenerator{}
	svc := NewService(gen, nil, newTestCache(t))
	ctx := context.Background()

	req := itinerary.Request{Destination: "Chiclayo", Days: 3, Budget: itinerary.BudgetMedium}

	first := svc.Plan(ctx, req)
	second := svc.Plan(ctx, req)

	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs from generated one")
	}
}

func TestPlanCacheKeyDistinguishesRequests(t *testing.T) {
	gen := &countingGenerator{}
	svc := NewService(gen, nil, newTestCache(t))
	ctx := context.Background()

	svc.Plan(ctx, itinerary.Request{Destination: "Chiclayo", Days: 3})
	svc.Plan(ctx, itinerary.Request{Destination: "Chiclayo", Days: 4})
	svc.Plan(ctx, itinerary.Request{Destination: "Chiclayo", Days: 3, Interests: []string{"Arqueología"}})
	svc.Plan(ctx, itinerary.Request{Destination: "Cusco", Days: 3})

	if gen.calls != 4 {
		t.Fatalf("expected 4 generator calls for 4 distinct requests, got %d", gen.calls)
	}
}

func TestPlanWorksWithoutCache(t *testing.T) {
	gen := &countingGenerator{}
	svc := NewService(gen, nil, nil)

	req := itinerary.Request{Destination: "Lima", Days: 2}
	got := svc.Plan(context.Background(), req)

	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}
	if !reflect.DeepEqual(got, itinerary.Fallback(req)) {
		t.Errorf("unexpected plan result: %+v", got)
	}
}

func TestSaveValidation(t *testing.T) {
	svc := NewService(&countingGenerator{}, nil, nil)
	ctx := context.Background()

	if _, err := svc.Save(ctx, "", "t", itinerary.Itinerary{Destination: "Lima"}); err != ErrBadRequest {
		t.Errorf("missing user: expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.Save(ctx, "uid", "t", itinerary.Itinerary{}); err != ErrBadRequest {
		t.Errorf("missing destination: expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.Get(ctx, "uid", ""); err != ErrBadRequest {
		t.Errorf("missing id: expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.List(ctx, ""); err != ErrBadRequest {
		t.Errorf("missing user: expected ErrBadRequest, got %v", err)
	}
}
