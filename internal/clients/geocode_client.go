package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// GeocodeClient talks to a Nominatim-compatible geocoding API to turn
// free-text addresses into coordinate candidates for the "sellers
// near you" flow. Public Nominatim allows 1 request per second, so
// calls go through a rate limiter.
type GeocodeClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// GeocodeResult is one address candidate
type GeocodeResult struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NewGeocodeClient creates a geocoding client for the given endpoint
func NewGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Limit(1), 1), // Nominatim usage policy
	}
}

// Search resolves an address string to up to limit candidates,
// biased to Morocco.
func (c *GeocodeClient) Search(ctx context.Context, address string, limit int) ([]GeocodeResult, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("countrycodes", "ma")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "drinks-marketplace-service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	results := make([]GeocodeResult, 0, len(raw))
	for _, r := range raw {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		results = append(results, GeocodeResult{
			DisplayName: r.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return results, nil
}
