package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gramsetu/carefinder/internal/models"
)

// NominatimProvider implements the Provider interface using OpenStreetMap's
// Nominatim API. Free to use, limited to 1 request/second for fair use, which
// fits the finder's low per-request geocoding volume.
type NominatimProvider struct {
	client    HTTPClient   // HTTP client for making requests
	baseURL   string       // Base URL for the Nominatim API
	log       *slog.Logger // Logger for logging operations
	userAgent string       // userAgent is required by Nominatim usage policy
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// nominatimResponse represents the JSON response from Nominatim API.
type nominatimResponse struct {
	Lat string `json:"lat"` // Latitude as string
	Lon string `json:"lon"` // Longitude as string
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a new Nominatim geocoding provider.
// Uses the public Nominatim API endpoint by default.
func NewNominatimProvider(log *slog.Logger) *NominatimProvider {
	const timeout = 10
	return &NominatimProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: "https://nominatim.openstreetmap.org/search",
		log:     log,
		// User-Agent MUST include valid contact info per Nominatim usage policy:
		// https://operations.osmfoundation.org/policies/nominatim/
		userAgent: "CareFinder/1.0 (https://github.com/gramsetu/carefinder)",
	}
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom
// HTTP client. Useful for testing with mocked HTTP clients.
func NewNominatimProviderWithClient(client HTTPClient, log *slog.Logger) *NominatimProvider {
	return &NominatimProvider{
		client:    client,
		baseURL:   "https://nominatim.openstreetmap.org/search",
		log:       log,
		userAgent: "CareFinder/1.0 (https://github.com/gramsetu/carefinder)",
	}
}

// Geocode converts an address to geographic coordinates using the Nominatim API.
//
// Rural Indian addresses often carry fragments Nominatim cannot match as a
// whole (village name plus pincode plus state), so the lookup degrades
// progressively: the full query first, then the query with leading fragments
// dropped, finally the last fragment alone (usually the state). The first
// variation that yields a result wins.
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	addressVariations := np.generateAddressFallbacks(address)

	for idx, addrVariation := range addressVariations {
		coords, err := np.geocodeSingleAddress(ctx, addrVariation)
		if err == nil {
			if idx > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback address",
					"original", address,
					"fallback", addrVariation,
					"fallback_level", idx)
			}
			return coords, nil
		}

		// Anything other than an empty result is a real API failure.
		if !errors.Is(err, ErrNominatimEmptyResponse) {
			return nil, err
		}

		np.log.DebugContext(ctx, "Address variation returned no results, trying fallback",
			"variation", addrVariation,
			"fallback_level", idx)
	}

	np.log.WarnContext(ctx, "All address fallbacks exhausted",
		"address", address,
		"variations_tried", len(addressVariations))
	return nil, ErrNominatimEmptyResponse
}

// generateAddressFallbacks creates a list of progressively simpler address
// variations by dropping fragments from the front of the comma-separated
// query. The most specific fragment (district or village) goes first in our
// queries, so dropping from the front widens the search area.
func (np *NominatimProvider) generateAddressFallbacks(address string) []string {
	if address == "" {
		return []string{""}
	}

	seen := make(map[string]bool)
	variations := []string{}

	addVariation := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variations = append(variations, v)
		}
	}

	addVariation(address)

	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	for start := 1; start < len(parts); start++ {
		addVariation(strings.Join(parts[start:], ", "))
	}

	return variations
}

// geocodeSingleAddress performs a single geocoding request without fallback logic.
func (np *NominatimProvider) geocodeSingleAddress(ctx context.Context, address string) (*models.Coordinates, error) {
	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1") // Only need the top result
	query.Set("countrycodes", "in")
	reqURL.RawQuery = query.Encode()

	np.log.DebugContext(ctx, "Nominatim request URL", "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Required headers per Nominatim usage policy.
	req.Header.Set("User-Agent", np.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		np.log.ErrorContext(ctx, "Failed to parse Nominatim response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	var lat, lon float64
	if _, err = fmt.Sscanf(results[0].Lat, "%f", &lat); err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	if _, err = fmt.Sscanf(results[0].Lon, "%f", &lon); err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	return &models.Coordinates{
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
