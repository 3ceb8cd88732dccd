package usecase

import (
	"testing"

	"flyright-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id, routeDesc, flights string, price int) *entity.Itinerary {
	return &entity.Itinerary{
		ID:         id,
		RouteDesc:  routeDesc,
		TotalPrice: price,
		Segments:   []entity.Segment{{FlightNumber: flights}},
	}
}

func TestDedupeCollapsesIdenticalCandidates(t *testing.T) {
	r := NewRanker()

	a := candidate("a", "JFK -> GRU", "AA100", 1200)
	b := candidate("b", "JFK -> GRU", "AA100", 1200)
	c := candidate("c", "JFK -> GRU", "AA100", 1201) // one unit apart, distinct

	out := r.Dedupe([]*entity.Itinerary{a, b, c})
	require.Len(t, out, 2)
	assert.Same(t, a, out[0], "first encountered wins")
	assert.Same(t, c, out[1])
}

func TestSortByPriceIsStable(t *testing.T) {
	r := NewRanker()

	a := candidate("a", "JFK -> GRU", "AA100", 900)
	b := candidate("b", "JFK -> GRU", "AA200", 900)
	c := candidate("c", "JFK -> GRU", "AA300", 700)

	list := []*entity.Itinerary{a, b, c}
	r.Sort(list, SortByPrice)

	assert.Same(t, c, list[0])
	assert.Same(t, a, list[1], "ties keep encounter order")
	assert.Same(t, b, list[2])
}

func TestSortByDurationAndStops(t *testing.T) {
	r := NewRanker()

	short := &entity.Itinerary{ID: "short", TotalDuration: 300, Stops: 2}
	long := &entity.Itinerary{ID: "long", TotalDuration: 700, Stops: 0}

	list := []*entity.Itinerary{long, short}
	r.Sort(list, SortByDuration)
	assert.Same(t, short, list[0])

	r.Sort(list, SortByStops)
	assert.Same(t, long, list[0])
}

func TestRankDedupesThenSorts(t *testing.T) {
	r := NewRanker()

	expensive := candidate("a", "JFK -> GRU", "AA100", 1500)
	cheap := candidate("b", "JFK -> GRU", "AA200", 800)
	dupe := candidate("c", "JFK -> GRU", "AA100", 1500)

	out := r.Rank([]*entity.Itinerary{expensive, cheap, dupe}, SortByPrice)
	require.Len(t, out, 2)
	assert.Same(t, cheap, out[0])
	assert.Same(t, expensive, out[1])
}
