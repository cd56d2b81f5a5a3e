// Package places implements the places-search collaborator used by the
// facility search engine. It speaks the Geoapify Places API wire contract:
// one category per query, bounded by a circular filter and a result limit.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gramsetu/carefinder/internal/models"
	"golang.org/x/time/rate"
)

// GeoapifyBaseURL -- Geoapify Places API base URL.
const GeoapifyBaseURL = "https://api.geoapify.com/v2/places"

// requestTimeout bounds a single places query so one slow call never stalls
// the whole search pass.
const requestTimeout = 10 * time.Second

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RawPlace is one unprocessed result from a places query. Every field except
// the coordinates may be absent.
type RawPlace struct {
	Name         string             // Display name reported by the provider.
	Street       string             // Street name.
	AddressLine1 string             // First address line.
	Formatted    string             // Full formatted address.
	Phone        string             // Contact phone, when known.
	Coordinates  models.Coordinates // Location of the place.
}

// Common errors for the Geoapify client.
var (
	ErrUnauthorized = errors.New("geoapify API unauthorized (invalid API key)")
	ErrBadResponse  = errors.New("geoapify API returned malformed response")
)

// geoapify GeoJSON response, reduced to the fields the engine consumes.
type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			Name         string  `json:"name"`
			Street       string  `json:"street"`
			AddressLine1 string  `json:"address_line1"`
			Formatted    string  `json:"formatted"`
			Lat          float64 `json:"lat"`
			Lon          float64 `json:"lon"`
			Contact      struct {
				Phone string `json:"phone"`
			} `json:"contact"`
		} `json:"properties"`
	} `json:"features"`
}

// Client queries the Geoapify Places API with per-call timeouts and a shared
// rate limiter.
type Client struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the places API
	apiKey  string        // API key with places access
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter shared across all queries
}

// NewClient creates a new Geoapify places client. The rate limit is expressed
// in requests per second and is shared by all concurrent searches.
func NewClient(apiKey string, rateLimit int, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: GeoapifyBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewClientWithHTTP allows injecting a custom HTTP client and limiter.
// Useful for testing.
func NewClientWithHTTP(client HTTPClient, apiKey string, limiter *rate.Limiter, log *slog.Logger) *Client {
	return &Client{
		client:  client,
		baseURL: GeoapifyBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// Search issues one places query for the given category inside a circle of
// radiusMeters around center, returning at most limit raw results. An empty
// result list is not an error; callers decide how to treat it.
func (c *Client) Search(
	ctx context.Context,
	category string,
	center models.Coordinates,
	radiusMeters int,
	limit int,
) ([]RawPlace, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait interrupted: %w", err)
	}

	c.log.DebugContext(ctx, "Querying places API",
		"category", category, "radius_m", radiusMeters, "limit", limit)

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("categories", category)
	query.Set("filter", fmt.Sprintf("circle:%f,%f,%d", center.Longitude, center.Latitude, radiusMeters))
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("apiKey", c.apiKey)
	reqURL.RawQuery = query.Encode()

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute places request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Places API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("geoapify API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result geoapifyResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	raws := make([]RawPlace, 0, len(result.Features))
	for _, feature := range result.Features {
		props := feature.Properties
		raws = append(raws, RawPlace{
			Name:         props.Name,
			Street:       props.Street,
			AddressLine1: props.AddressLine1,
			Formatted:    props.Formatted,
			Phone:        props.Contact.Phone,
			Coordinates:  models.Coordinates{Latitude: props.Lat, Longitude: props.Lon},
		})
	}

	c.log.DebugContext(ctx, "Places query finished", "category", category, "results", len(raws))

	return raws, nil
}
