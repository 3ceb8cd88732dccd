package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItinerary() *Itinerary {
	return &Itinerary{
		ID: "serp-2026-09-15-abc",
		Segments: []Segment{
			{DepAirport: "IAD", ArrAirport: "MIA", MarketingCarrier: "AA", AirlineName: "American", FlightNumber: "AA1302", DurationMin: 175, Price: 800},
			{DepAirport: "MIA", ArrAirport: "GRU", MarketingCarrier: "LA", AirlineName: "LATAM", FlightNumber: "LA991", DurationMin: 505, Price: 2320},
		},
		TotalPrice: 3120,
		Stops:      1,
		RouteDesc:  "IAD -> MIA -> GRU",
	}
}

func TestRoute(t *testing.T) {
	it := testItinerary()
	assert.Equal(t, []string{"IAD", "MIA", "GRU"}, it.Route())
	assert.Nil(t, (&Itinerary{}).Route())
}

func TestCarrierSummaries(t *testing.T) {
	it := testItinerary()
	assert.Equal(t, "AA/LA", it.CarrierSummary())
	assert.Equal(t, "AA (American) -> LA (LATAM)", it.CarrierDetail())
	assert.Equal(t, "AA1302,LA991", it.FlightNumbers())
}

func TestDedupKeyDistinguishesPrice(t *testing.T) {
	a := testItinerary()
	b := testItinerary()
	assert.Equal(t, a.DedupKey(), b.DedupKey())

	b.TotalPrice++
	assert.NotEqual(t, a.DedupKey(), b.DedupKey())
}

func TestItineraryValidate(t *testing.T) {
	require.NoError(t, testItinerary().Validate())

	empty := &Itinerary{}
	assert.Error(t, empty.Validate())

	broken := testItinerary()
	broken.Segments[1].DepAirport = "JFK"
	err := broken.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not contiguous")

	negative := testItinerary()
	negative.TotalPrice = -1
	assert.Error(t, negative.Validate())

	miscounted := testItinerary()
	miscounted.Stops = 2
	assert.Error(t, miscounted.Validate())
}

func TestSegmentValidate(t *testing.T) {
	good := Segment{DepAirport: "IAD", ArrAirport: "GRU", DurationMin: 590}
	require.NoError(t, good.Validate())

	loop := Segment{DepAirport: "IAD", ArrAirport: "IAD", DurationMin: 60}
	assert.Error(t, loop.Validate())

	instant := Segment{DepAirport: "IAD", ArrAirport: "GRU"}
	assert.Error(t, instant.Validate())

	negative := Segment{DepAirport: "IAD", ArrAirport: "GRU", DurationMin: 60, Price: -5}
	assert.Error(t, negative.Validate())
}

func TestParseCabinLabel(t *testing.T) {
	assert.Equal(t, CabinBusiness, ParseCabinLabel("Business", CabinEconomy))
	assert.Equal(t, CabinPremiumEconomy, ParseCabinLabel("Premium economy", ""))
	assert.Equal(t, CabinFirst, ParseCabinLabel("First Class", ""))
	assert.Equal(t, CabinBusiness, ParseCabinLabel("Polaris", CabinBusiness), "unknown label falls back to requested")
	assert.Equal(t, CabinEconomy, ParseCabinLabel("Polaris", ""), "economy is the last resort")
}

func TestCabinPremium(t *testing.T) {
	assert.True(t, CabinBusiness.Premium())
	assert.True(t, CabinFirst.Premium())
	assert.False(t, CabinEconomy.Premium())
	assert.False(t, CabinPremiumEconomy.Premium())
}

func TestTicketedCarrier(t *testing.T) {
	s := Segment{MarketingCarrier: "LA"}
	assert.Equal(t, "LA", s.TicketedCarrier())

	s.CodeshareCarrier = "AA"
	assert.Equal(t, "AA", s.TicketedCarrier())
}
