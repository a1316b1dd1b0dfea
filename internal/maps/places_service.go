// README: Google Places search for attraction markers on the map screen.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Attraction is a simplified place result shipped to the map screen.
type Attraction struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Rating           float32 `json:"rating"`
	PlaceID          string  `json:"placeId"`
	UserRatingsTotal int     `json:"userRatingsTotal"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps: create client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// maxAttractions caps the marker payload for the map screen.
const maxAttractions = 10

// SearchAttractions text-searches tourist attractions near a destination,
// optionally biased toward the traveller's interests ("arqueología",
// "gastronomía", ...). Low-rated results are dropped.
func (s *PlacesService) SearchAttractions(ctx context.Context, destination string, interests []string) ([]Attraction, error) {
	query := "tourist attractions"
	if len(interests) > 0 {
		query = strings.Join(interests, " ") + " " + query
	}
	query = fmt.Sprintf("%s near %s", query, destination)

	r := &maps.TextSearchRequest{
		Query:    query,
		Language: "es",
		Region:   "PE",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps: places api error: %w", err)
	}

	var results []Attraction
	for _, result := range resp.Results {
		if result.Rating < 4.0 {
			continue
		}
		results = append(results, Attraction{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
			Latitude:         result.Geometry.Location.Lat,
			Longitude:        result.Geometry.Location.Lng,
		})
		if len(results) >= maxAttractions {
			break
		}
	}

	return results, nil
}
