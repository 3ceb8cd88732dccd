package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "best_flights": [
    {
      "flights": [
        {
          "departure_airport": {"name": "Dulles", "id": "IAD", "time": "2026-09-15 21:40"},
          "arrival_airport": {"name": "Guarulhos", "id": "GRU", "time": "2026-09-16 09:50"},
          "duration": 590,
          "airplane": "Boeing 777",
          "airline": "LATAM",
          "flight_number": "LA 8181",
          "travel_class": "Business",
          "legroom": "60 in",
          "ticket_also_sold_by": ["Delta"],
          "overnight": true
        }
      ],
      "total_duration": 590,
      "carbon_emissions": {"this_flight": 1243000},
      "price": 2890
    }
  ],
  "other_flights": [
    {
      "flights": [
        {
          "departure_airport": {"id": "IAD", "time": "2026-09-15 10:05"},
          "arrival_airport": {"id": "MIA", "time": "2026-09-15 13:00"},
          "duration": 175,
          "airline": "American",
          "flight_number": "AA 1302",
          "travel_class": "Business"
        },
        {
          "departure_airport": {"id": "MIA", "time": "2026-09-15 22:45"},
          "arrival_airport": {"id": "GRU", "time": "2026-09-16 07:10"},
          "duration": 505,
          "airline": "American",
          "flight_number": "AA 991",
          "travel_class": "Business"
        }
      ],
      "layovers": [{"duration": 585, "id": "MIA"}],
      "total_duration": 1265,
      "price": 3120
    }
  ]
}`

func TestSearchFlightsMapsResponse(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewSerpAPIClient(server.URL, "test-key", 5*time.Second, nil, logger.NewNop())

	result, err := client.SearchFlights(context.Background(), entity.SearchQuery{
		Origin:      "iad",
		Destination: "GRU",
		Date:        "2026-09-15",
		Cabin:       entity.CabinBusiness,
	})
	require.NoError(t, err)

	assert.Equal(t, "google_flights", gotQuery.Get("engine"))
	assert.Equal(t, "IAD", gotQuery.Get("departure_id"), "airport codes are upcased")
	assert.Equal(t, "GRU", gotQuery.Get("arrival_id"))
	assert.Equal(t, "2026-09-15", gotQuery.Get("outbound_date"))
	assert.Equal(t, "3", gotQuery.Get("travel_class"))
	assert.Equal(t, "2", gotQuery.Get("type"), "one-way")
	assert.Equal(t, "USD", gotQuery.Get("currency"))

	require.Len(t, result.Groups, 2, "best and other flights are merged")

	direct := result.Groups[0]
	assert.Equal(t, 2890, direct.Price)
	assert.Equal(t, 1243000, direct.CarbonGrams)
	require.Len(t, direct.Legs, 1)
	leg := direct.Legs[0]
	assert.Equal(t, "LA 8181", leg.Designator)
	assert.Equal(t, "IAD", leg.DepAirport)
	assert.Equal(t, "GRU", leg.ArrAirport)
	assert.Equal(t, "2026-09-15 21:40", leg.DepTime)
	assert.Equal(t, 590, leg.DurationMin)
	assert.Equal(t, "Business", leg.CabinLabel)
	assert.Equal(t, []string{"Delta"}, leg.AlsoSoldBy)
	assert.True(t, leg.Overnight)

	connecting := result.Groups[1]
	require.Len(t, connecting.Legs, 2)
	assert.Equal(t, []int{585}, connecting.LayoverMinutes)
}

func TestSearchFlightsSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Your searches for the month are exhausted."}`))
	}))
	defer server.Close()

	client := NewSerpAPIClient(server.URL, "test-key", 5*time.Second, nil, logger.NewNop())

	_, err := client.SearchFlights(context.Background(), entity.SearchQuery{
		Origin: "IAD", Destination: "GRU", Date: "2026-09-15", Cabin: entity.CabinBusiness,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
}

func TestSearchFlightsRejectsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewSerpAPIClient(server.URL, "test-key", 5*time.Second, nil, logger.NewNop())

	_, err := client.SearchFlights(context.Background(), entity.SearchQuery{
		Origin: "IAD", Destination: "GRU", Date: "2026-09-15", Cabin: entity.CabinBusiness,
	})
	require.Error(t, err)
}

func TestSearchFlightsRequiresAPIKey(t *testing.T) {
	client := NewSerpAPIClient("https://serpapi.com/search.json", "", 5*time.Second, nil, logger.NewNop())

	_, err := client.SearchFlights(context.Background(), entity.SearchQuery{
		Origin: "IAD", Destination: "GRU", Date: "2026-09-15",
	})
	require.Error(t, err)
}
