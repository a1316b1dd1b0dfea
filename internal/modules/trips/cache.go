// README: Redis cache for generation results, keyed by request fingerprint.
package trips

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"andariego/internal/itinerary"
)

// cacheTTL keeps repeat requests off the Gemini quota for a day. Itineraries
// for a fixed (destination, days, budget, interests, region) tuple do not go
// stale faster than that.
const cacheTTL = 24 * time.Hour

type Cache struct {
	redis *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{redis: rdb}
}

// cacheKey fingerprints a request. Interests are order-sensitive on purpose:
// the prompt enumerates them in order, so a reordering is a different request.
func cacheKey(req itinerary.Request) string {
	seed := fmt.Sprintf("%s|%d|%s|%s|%s",
		req.Destination, req.Days, req.Budget, req.Region, strings.Join(req.Interests, ","))
	sum := sha256.Sum256([]byte(seed))
	return "itinerary:" + hex.EncodeToString(sum[:])
}

// Get returns the cached itinerary for a request, if any.
func (c *Cache) Get(ctx context.Context, req itinerary.Request) (itinerary.Itinerary, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(req)).Bytes()
	if err != nil {
		return itinerary.Itinerary{}, false
	}
	var it itinerary.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return itinerary.Itinerary{}, false
	}
	return it, true
}

// Set stores a generation result. Failures are returned for logging but never
// block the caller; the cache is an optimization, not a dependency.
func (c *Cache) Set(ctx context.Context, req itinerary.Request, it itinerary.Itinerary) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("trips: marshal cached itinerary: %w", err)
	}
	if err := c.redis.Set(ctx, cacheKey(req), raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("trips: cache set: %w", err)
	}
	return nil
}
