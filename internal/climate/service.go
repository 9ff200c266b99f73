// Package climate provides the design outdoor temperature lookup: a free-form
// address is geocoded and mapped onto a regional design temperature. The
// calculation core never calls this package, it only consumes the number the
// wizard puts into the building metadata.
package climate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"heatload_backend/platform/apperr"
	"heatload_backend/platform/config"
	"heatload_backend/platform/logger"
)

const cacheKeyPrefix = "climate:design-temp:"

// Service resolves design outdoor temperatures for addresses.
type Service struct {
	client   *http.Client
	cfg      config.ClimateConfig
	cache    *redis.Client // nil when Redis is not configured
	cacheTTL time.Duration
	lookups  singleflight.Group
	log      *logger.Logger
}

// NewService creates a climate lookup service. cache may be nil; lookups then
// always hit the geocoder.
func NewService(cfg config.ClimateConfig, cache *redis.Client, log *logger.Logger) *Service {
	return &Service{
		client:   &http.Client{Timeout: 5 * time.Second},
		cfg:      cfg,
		cache:    cache,
		cacheTTL: cfg.GetClimateCacheTTL(),
		log:      log,
	}
}

// DesignTemperature resolves the design outdoor temperature for a free-form
// German address. Concurrent lookups for the same query are collapsed into a
// single geocoder call.
func (s *Service) DesignTemperature(ctx context.Context, query string) (DesignTemperature, error) {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return DesignTemperature{}, apperr.BadRequest("address query is required")
	}

	if cached, ok := s.fromCache(ctx, normalized); ok {
		return cached, nil
	}

	result, err, _ := s.lookups.Do(normalized, func() (interface{}, error) {
		return s.lookup(ctx, query, normalized)
	})
	if err != nil {
		return DesignTemperature{}, err
	}

	return result.(DesignTemperature), nil
}

func (s *Service) lookup(ctx context.Context, query, normalized string) (DesignTemperature, error) {
	place, err := s.geocode(ctx, query)
	if err != nil {
		return DesignTemperature{}, err
	}

	lat, latErr := strconv.ParseFloat(place.Lat, 64)
	lon, lonErr := strconv.ParseFloat(place.Lon, 64)
	if latErr != nil || lonErr != nil {
		return DesignTemperature{}, apperr.Internal("geocoder returned unusable coordinates")
	}

	result := DesignTemperature{
		Query:       query,
		Label:       place.DisplayName,
		Latitude:    lat,
		Longitude:   lon,
		DesignTempC: designTempForLocation(lat, lon),
	}

	s.toCache(ctx, normalized, result)

	return result, nil
}

// geocode resolves the query against Nominatim, restricted to Germany.
func (s *Service) geocode(ctx context.Context, query string) (nominatimResponse, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("limit", "1")
	params.Add("countrycodes", "de")

	reqURL := fmt.Sprintf("%s/search?%s", strings.TrimSuffix(s.cfg.GetGeocoderBaseURL(), "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nominatimResponse{}, err
	}
	req.Header.Set("User-Agent", s.cfg.GetGeocoderUserAgent())

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("nominatim", err)
		return nominatimResponse{}, fmt.Errorf("geocode address: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("nominatim upstream error", "status", resp.StatusCode)
		return nominatimResponse{}, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var results []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		s.log.Error("failed to decode nominatim payload", "error", err)
		return nominatimResponse{}, fmt.Errorf("decode geocoder payload: %w", err)
	}

	if len(results) == 0 {
		return nominatimResponse{}, apperr.NotFound("address not found")
	}

	return results[0], nil
}

func (s *Service) fromCache(ctx context.Context, normalized string) (DesignTemperature, bool) {
	if s.cache == nil {
		return DesignTemperature{}, false
	}

	payload, err := s.cache.Get(ctx, cacheKeyPrefix+normalized).Bytes()
	if err != nil {
		return DesignTemperature{}, false
	}

	var result DesignTemperature
	if err := json.Unmarshal(payload, &result); err != nil {
		return DesignTemperature{}, false
	}
	result.FromCache = true

	return result, true
}

func (s *Service) toCache(ctx context.Context, normalized string, result DesignTemperature) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKeyPrefix+normalized, payload, s.cacheTTL).Err(); err != nil {
		s.log.Warn("climate cache write failed", "error", err)
	}
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
