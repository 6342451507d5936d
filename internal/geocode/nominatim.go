package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dashboard/internal/cache"
)

const (
	// maxResponseSize bounds the geocoder response body read.
	maxResponseSize = 1 << 20
	// coordCacheTTL is how long resolved coordinates stay cached.
	coordCacheTTL = 24 * time.Hour

	coordCacheKeyPrefix = "geocode:"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Fallback is the fixed coordinate substituted when geocoding cannot
// resolve an address.
var Fallback = Coordinates{Lat: 1.3521, Lng: 103.8198}

// Resolver resolves a free-text location into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, location string) (Coordinates, error)
}

// NominatimClient resolves locations against an OpenStreetMap Nominatim
// endpoint. Resolved coordinates are cached best-effort in Redis.
type NominatimClient struct {
	baseURL string
	http    *http.Client
	cache   *cache.Client
}

// Ensure NominatimClient implements Resolver
var _ Resolver = (*NominatimClient)(nil)

// NewNominatimClient creates a geocoding client for the given base URL.
func NewNominatimClient(baseURL string, timeout time.Duration, cacheClient *cache.Client) *NominatimClient {
	return &NominatimClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cacheClient,
	}
}

// candidate is one match in the Nominatim response. Coordinates arrive as
// numeric strings.
type candidate struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve looks up the first candidate for the location text. Any failure
// (network, non-200 status, empty result set, malformed coordinates) is
// returned as an error; substituting the fallback is the caller's concern.
func (c *NominatimClient) Resolve(ctx context.Context, location string) (Coordinates, error) {
	cacheKey := coordCacheKeyPrefix + strings.ToLower(strings.TrimSpace(location))
	if data, _ := c.cache.Get(ctx, cacheKey); data != nil {
		var cached Coordinates
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	reqURL := c.baseURL + "/search?format=json&q=" + url.QueryEscape(location)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Coordinates{}, fmt.Errorf("read geocode response: %w", err)
	}

	var candidates []candidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return Coordinates{}, fmt.Errorf("parse geocode response: %w", err)
	}
	if len(candidates) == 0 {
		return Coordinates{}, fmt.Errorf("no geocode candidates for %q", location)
	}

	lat, err := strconv.ParseFloat(candidates[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse latitude %q: %w", candidates[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(candidates[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse longitude %q: %w", candidates[0].Lon, err)
	}

	coords := Coordinates{Lat: lat, Lng: lng}
	if payload, err := json.Marshal(coords); err == nil {
		_ = c.cache.Set(ctx, cacheKey, payload, coordCacheTTL)
	}
	return coords, nil
}
