package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(search *fakeSearchRepo, gateways []string) *LegSearcher {
	directory := newFakeDirectory()

	searcher := NewLegSearcher(
		search,
		NewAssembler(directory, NewDurationProportionalAllocator(), logger.NewNop()),
		NewComplianceClassifier(directory),
		NewRanker(),
		gateways,
		2,
		time.Millisecond,
		logger.NewNop(),
	)
	searcher.sleep = func(time.Duration) {}
	return searcher
}

func TestSearchLegPlainQuery(t *testing.T) {
	search := newFakeSearchRepo()
	search.put("IAD", "GRU", entity.CabinBusiness,
		group(2000, rawLeg("AA 963", "IAD", "GRU", "Business", 590)),
	)

	searcher := newTestSearcher(search, []string{"YYZ"})

	results, err := searcher.SearchLeg(context.Background(), LegQuery{
		Dep:   "IAD",
		Arr:   "GRU",
		Date:  "2026-09-15",
		Cabin: entity.CabinBusiness,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2000, results[0].TotalPrice)
	require.NotNil(t, results[0].Compliance, "every result carries a verdict")
	assert.True(t, results[0].Compliance.Compliant)
	assert.Len(t, search.queries, 1, "no gateway queries without creative mode")
}

func TestSearchLegSynthesizesGatewayItineraries(t *testing.T) {
	search := newFakeSearchRepo()
	search.put("IAD", "GRU", entity.CabinBusiness,
		group(2000, rawLeg("AA 963", "IAD", "GRU", "Business", 590)),
	)
	search.put("IAD", "YYZ", entity.CabinBusiness,
		group(300, rawLeg("AC 55", "IAD", "YYZ", "Business", 95)),
		group(340, rawLeg("UA 77", "IAD", "YYZ", "Business", 90)),
	)
	search.put("YYZ", "GRU", entity.CabinEconomy,
		group(100, rawLeg("AC 90", "YYZ", "GRU", "Economy", 600)),
		group(150, rawLeg("LA 12", "YYZ", "GRU", "Economy", 610)),
	)

	searcher := newTestSearcher(search, []string{"YYZ"})

	results, err := searcher.SearchLeg(context.Background(), LegQuery{
		Dep:              "IAD",
		Arr:              "GRU",
		Date:             "2026-09-15",
		Cabin:            entity.CabinBusiness,
		CreativeBusiness: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 5, "one direct plus a 2x2 cross product")

	prices := make([]int, len(results))
	for i, it := range results {
		prices[i] = it.TotalPrice
	}
	assert.Equal(t, []int{400, 440, 450, 490, 2000}, prices)

	for _, it := range results[:4] {
		assert.True(t, it.IsGateway)
		assert.True(t, it.IsMixedCabin)
		assert.Equal(t, "YYZ", it.GatewayCode)
		assert.Equal(t, entity.CabinBusiness, it.Cabin)
		assert.Equal(t, 1, it.Stops)
		assert.Equal(t, "IAD -> YYZ -> GRU", it.RouteDesc)
		require.NotNil(t, it.Compliance)
	}
}

func TestSearchLegSkipsDepartureAndArrivalGateways(t *testing.T) {
	search := newFakeSearchRepo()
	search.put("YYZ", "GRU", entity.CabinBusiness,
		group(1500, rawLeg("AC 90", "YYZ", "GRU", "Business", 600)),
	)

	searcher := newTestSearcher(search, []string{"YYZ"})

	results, err := searcher.SearchLeg(context.Background(), LegQuery{
		Dep:              "YYZ",
		Arr:              "GRU",
		Date:             "2026-09-15",
		Cabin:            entity.CabinBusiness,
		CreativeBusiness: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, search.queries, 1, "a leg already at the gateway is never split there")
}

func TestSearchLegSkipsFailedGateways(t *testing.T) {
	search := newFakeSearchRepo()
	search.put("IAD", "GRU", entity.CabinBusiness,
		group(2000, rawLeg("AA 963", "IAD", "GRU", "Business", 590)),
	)
	search.fail("IAD", "YYZ", entity.CabinBusiness, errors.New("provider 500"))
	search.put("IAD", "MEX", entity.CabinBusiness,
		group(400, rawLeg("UA 11", "IAD", "MEX", "Business", 200)),
	)
	search.put("MEX", "GRU", entity.CabinEconomy,
		group(250, rawLeg("LA 44", "MEX", "GRU", "Economy", 560)),
	)

	searcher := newTestSearcher(search, []string{"YYZ", "MEX"})

	results, err := searcher.SearchLeg(context.Background(), LegQuery{
		Dep:              "IAD",
		Arr:              "GRU",
		Date:             "2026-09-15",
		Cabin:            entity.CabinBusiness,
		CreativeBusiness: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 2, "failed gateway dropped, healthy one survives")
	assert.Equal(t, 650, results[0].TotalPrice)
	assert.Equal(t, "MEX", results[0].GatewayCode)
}

func TestSearchLegFlexExpandsDates(t *testing.T) {
	search := newFakeSearchRepo()
	search.put("IAD", "GRU", entity.CabinBusiness,
		group(2000, rawLeg("AA 963", "IAD", "GRU", "Business", 590)),
	)

	searcher := newTestSearcher(search, []string{"YYZ"})

	_, err := searcher.SearchLeg(context.Background(), LegQuery{
		Dep:   "IAD",
		Arr:   "GRU",
		Date:  "2026-09-15",
		Flex:  1,
		Cabin: entity.CabinBusiness,
	})
	require.NoError(t, err)

	require.Len(t, search.queries, 3)
	assert.Equal(t, "2026-09-14", search.queries[0].Date)
	assert.Equal(t, "2026-09-15", search.queries[1].Date)
	assert.Equal(t, "2026-09-16", search.queries[2].Date)
}

func TestSearchLegRejectsBadDate(t *testing.T) {
	searcher := newTestSearcher(newFakeSearchRepo(), []string{"YYZ"})

	_, err := searcher.SearchLeg(context.Background(), LegQuery{
		Dep:  "IAD",
		Arr:  "GRU",
		Date: "September 15",
	})
	require.Error(t, err)
}
