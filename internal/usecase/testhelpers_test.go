package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"flyright-service/internal/domain/entity"
)

// fakeDirectory is a small in-memory carrier directory for tests.
type fakeDirectory struct {
	eligible   map[string]bool
	codeshares map[string][]string
	covered    map[string]bool
	gateways   map[string]bool
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		eligible: map[string]bool{"AA": true, "UA": true, "DL": true, "AS": true},
		codeshares: map[string][]string{
			"LA": {"AA"},
			"AC": {"UA"},
		},
		covered:  map[string]bool{"JFK": true, "MIA": true, "IAD": true, "LAX": true, "DFW": true},
		gateways: map[string]bool{"YYZ": true, "MEX": true, "CUN": true},
	}
}

func (d *fakeDirectory) IsEligibleCarrier(code string) bool  { return d.eligible[code] }
func (d *fakeDirectory) CodesharePartners(c string) []string { return d.codeshares[c] }
func (d *fakeDirectory) IsCoveredAirport(code string) bool   { return d.covered[code] }
func (d *fakeDirectory) IsGatewayAirport(code string) bool   { return d.gateways[code] }

// fakeSearchRepo returns canned results per "DEP-ARR-CABIN" key and records
// the queries it receives.
type fakeSearchRepo struct {
	results map[string]*entity.FlightSearchResult
	errs    map[string]error
	queries []entity.SearchQuery
}

func newFakeSearchRepo() *fakeSearchRepo {
	return &fakeSearchRepo{
		results: make(map[string]*entity.FlightSearchResult),
		errs:    make(map[string]error),
	}
}

func searchKey(dep, arr string, cabin entity.Cabin) string {
	return fmt.Sprintf("%s-%s-%s", dep, arr, cabin)
}

func (r *fakeSearchRepo) put(dep, arr string, cabin entity.Cabin, groups ...entity.FlightGroup) {
	r.results[searchKey(dep, arr, cabin)] = &entity.FlightSearchResult{Groups: groups}
}

func (r *fakeSearchRepo) fail(dep, arr string, cabin entity.Cabin, err error) {
	r.errs[searchKey(dep, arr, cabin)] = err
}

func (r *fakeSearchRepo) SearchFlights(_ context.Context, q entity.SearchQuery) (*entity.FlightSearchResult, error) {
	r.queries = append(r.queries, q)

	key := searchKey(q.Origin, q.Destination, q.Cabin)
	if err := r.errs[key]; err != nil {
		return nil, err
	}
	if result, ok := r.results[key]; ok {
		return result, nil
	}
	return &entity.FlightSearchResult{}, nil
}

// memHistoryRepo is an in-memory price history store, safe for concurrent
// use like the real repository.
type memHistoryRepo struct {
	mu        sync.Mutex
	histories map[string]*entity.RoutePriceHistory
	getErr    error
	putErr    error
}

func newMemHistoryRepo() *memHistoryRepo {
	return &memHistoryRepo{histories: make(map[string]*entity.RoutePriceHistory)}
}

func (r *memHistoryRepo) Get(_ context.Context, routeKey string) (*entity.RoutePriceHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return nil, r.getErr
	}
	h, ok := r.histories[routeKey]
	if !ok {
		return nil, nil
	}
	cp := *h
	cp.Prices = append([]entity.PriceObservation(nil), h.Prices...)
	return &cp, nil
}

func (r *memHistoryRepo) Replace(_ context.Context, history *entity.RoutePriceHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.putErr != nil {
		return r.putErr
	}
	r.histories[history.RouteKey] = history
	return nil
}

// seed fills a route history with n observations at the given price.
func (r *memHistoryRepo) seed(routeKey string, n, price int) {
	h := &entity.RoutePriceHistory{RouteKey: routeKey}
	for i := 0; i < n; i++ {
		h.Append(entity.PriceObservation{
			Date:      "2026-09-15",
			ScannedAt: time.Now(),
			Price:     price,
			Carrier:   "AA",
			Compliant: true,
		}, 0)
	}
	r.histories[routeKey] = h
}

// rawLeg builds a well-formed provider leg for assembler input.
func rawLeg(designator, dep, arr, cabinLabel string, durationMin int) entity.RawLeg {
	return entity.RawLeg{
		Designator:  designator,
		DepAirport:  dep,
		ArrAirport:  arr,
		DepTime:     "2026-09-15 08:30",
		ArrTime:     "2026-09-15 14:45",
		DurationMin: durationMin,
		CabinLabel:  cabinLabel,
		Airline:     "Test Air",
	}
}

// group wraps legs into a flight group priced at the group level.
func group(price int, legs ...entity.RawLeg) entity.FlightGroup {
	total := 0
	for _, l := range legs {
		total += l.DurationMin
	}
	return entity.FlightGroup{Legs: legs, Price: price, TotalDuration: total}
}
