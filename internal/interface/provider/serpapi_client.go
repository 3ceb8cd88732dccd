package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"
	"flyright-service/pkg/metrics"
)

// travelClass maps canonical cabin codes to SerpApi travel_class ordinals.
var travelClass = map[entity.Cabin]string{
	entity.CabinEconomy:        "1",
	entity.CabinPremiumEconomy: "2",
	entity.CabinBusiness:       "3",
	entity.CabinFirst:          "4",
}

// SerpAPIClient implements FlightSearchRepository against the SerpApi
// Google Flights engine.
type SerpAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewSerpAPIClient creates a new SerpApi search client
func NewSerpAPIClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics, log logger.Logger) repository.FlightSearchRepository {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://serpapi.com/search.json"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SerpAPIClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
		logger:     log,
	}
}

// SearchFlights issues one one-way search query and maps the response to the
// provider-neutral result model.
func (c *SerpAPIClient) SearchFlights(ctx context.Context, query entity.SearchQuery) (*entity.FlightSearchResult, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, fmt.Errorf("serpapi key is empty")
	}

	reqURL, err := c.buildURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countRequest("transport_error")
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.countRequest(strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("serpapi status: %s", resp.Status)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.countRequest("decode_error")
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}

	if payload.Error != "" {
		c.countRequest("api_error")
		return nil, fmt.Errorf("serpapi error: %s", payload.Error)
	}

	c.countRequest("ok")
	result := mapSearchResponse(payload)
	c.logger.Debug("SerpApi search completed",
		"origin", query.Origin,
		"destination", query.Destination,
		"date", query.Date,
		"groups", len(result.Groups))

	return result, nil
}

func (c *SerpAPIClient) buildURL(query entity.SearchQuery) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse serpapi base url: %w", err)
	}

	cabin, ok := travelClass[query.Cabin]
	if !ok {
		cabin = "1"
	}

	q := u.Query()
	q.Set("engine", "google_flights")
	q.Set("api_key", c.apiKey)
	q.Set("departure_id", strings.ToUpper(strings.TrimSpace(query.Origin)))
	q.Set("arrival_id", strings.ToUpper(strings.TrimSpace(query.Destination)))
	q.Set("outbound_date", query.Date)
	q.Set("type", "2") // one-way, legs are searched individually
	q.Set("travel_class", cabin)
	q.Set("adults", "1")
	q.Set("currency", "USD")
	q.Set("hl", "en")
	q.Set("gl", "us")
	if query.MaxStops > 0 {
		q.Set("stops", strconv.Itoa(query.MaxStops))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *SerpAPIClient) countRequest(status string) {
	if c.metrics != nil {
		c.metrics.ProviderRequests.WithLabelValues(status).Inc()
	}
}
