package usecase

import (
	"context"
	"strings"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"
)

// LegQuery describes one interactive leg search.
type LegQuery struct {
	Dep   string
	Arr   string
	Date  string // "2006-01-02"
	Flex  int    // +/- days around Date
	Cabin entity.Cabin

	// CreativeBusiness also searches two-part gateway routings: a premium
	// cabin into a gateway airport, economy onward. Splicing a cheap
	// foreign-carrier premium segment with a compliant final segment can
	// beat a single-carrier premium fare outright.
	CreativeBusiness bool
}

// LegSearcher runs provider queries for one leg, including gateway
// synthesis, and returns ranked, classified itineraries.
type LegSearcher struct {
	searchRepo repository.FlightSearchRepository
	assembler  *Assembler
	classifier *ComplianceClassifier
	ranker     *Ranker
	gateways   []string
	topN       int
	delay      time.Duration
	logger     logger.Logger

	sleep func(time.Duration)
}

// NewLegSearcher creates a new leg searcher. The gateway list bounds the
// synthesis fan-out; topN bounds the per-leg cross product.
func NewLegSearcher(
	searchRepo repository.FlightSearchRepository,
	assembler *Assembler,
	classifier *ComplianceClassifier,
	ranker *Ranker,
	gateways []string,
	topN int,
	delay time.Duration,
	log logger.Logger,
) *LegSearcher {
	if len(gateways) == 0 {
		gateways = []string{"YYZ", "YUL", "YVR", "MEX", "CUN"}
	}
	if topN <= 0 {
		topN = 2
	}

	return &LegSearcher{
		searchRepo: searchRepo,
		assembler:  assembler,
		classifier: classifier,
		ranker:     ranker,
		gateways:   gateways,
		topN:       topN,
		delay:      delay,
		logger:     log,
		sleep:      time.Sleep,
	}
}

// SearchLeg searches one leg across the flex date range, synthesizing
// gateway itineraries when requested. Failed dates and gateways are skipped,
// never fatal for the batch.
func (l *LegSearcher) SearchLeg(ctx context.Context, q LegQuery) ([]*entity.Itinerary, error) {
	dates, err := flexDates(q.Date, q.Flex)
	if err != nil {
		return nil, err
	}

	var all []*entity.Itinerary
	for i, searchDate := range dates {
		if i > 0 {
			l.sleep(l.delay)
		}

		results, err := l.searchOne(ctx, q.Dep, q.Arr, searchDate, q.Cabin)
		if err != nil {
			l.logger.Warn("Leg search failed, skipping date",
				"dep", q.Dep, "arr", q.Arr, "date", searchDate, "error", err)
			continue
		}
		all = append(all, results...)

		if q.CreativeBusiness {
			all = append(all, l.synthesizeGateways(ctx, q, searchDate)...)
		}
	}

	for _, it := range all {
		verdict := l.classifier.Classify(it)
		it.Compliance = &verdict
	}

	return l.ranker.Rank(all, SortByPrice), nil
}

// synthesizeGateways issues the two one-way sub-queries per candidate
// gateway and splices the best results into synthetic itineraries.
func (l *LegSearcher) synthesizeGateways(ctx context.Context, q LegQuery, searchDate string) []*entity.Itinerary {
	var synthetic []*entity.Itinerary

	for _, gw := range l.gateways {
		if gw == q.Dep || gw == q.Arr {
			continue
		}

		l.sleep(l.delay)
		inbound, err := l.searchOne(ctx, q.Dep, gw, searchDate, entity.CabinBusiness)
		if err != nil {
			l.logger.Warn("Gateway search failed, skipping gateway", "gateway", gw, "error", err)
			continue
		}

		l.sleep(l.delay)
		onward, err := l.searchOne(ctx, gw, q.Arr, searchDate, entity.CabinEconomy)
		if err != nil {
			l.logger.Warn("Gateway onward search failed, skipping gateway", "gateway", gw, "error", err)
			continue
		}

		if len(inbound) == 0 || len(onward) == 0 {
			continue
		}

		l.ranker.Sort(inbound, SortByPrice)
		l.ranker.Sort(onward, SortByPrice)

		for _, in := range topN(inbound, l.topN) {
			for _, on := range topN(onward, l.topN) {
				synthetic = append(synthetic, spliceItineraries(in, on, gw, searchDate))
			}
		}
	}

	return synthetic
}

func (l *LegSearcher) searchOne(ctx context.Context, dep, arr, date string, cabin entity.Cabin) ([]*entity.Itinerary, error) {
	result, err := l.searchRepo.SearchFlights(ctx, entity.SearchQuery{
		Origin:      dep,
		Destination: arr,
		Date:        date,
		Cabin:       cabin,
	})
	if err != nil {
		return nil, err
	}

	return l.assembler.Assemble(result, AssembleOptions{
		SearchDate:     date,
		RequestedCabin: cabin,
	}), nil
}

// spliceItineraries concatenates a gateway inbound and its onward leg into
// one synthetic itinerary. The gateway and mixed-cabin flags are forced:
// synthesis exists precisely to build mixed-cabin gateway routings.
func spliceItineraries(inbound, onward *entity.Itinerary, gateway, searchDate string) *entity.Itinerary {
	segments := make([]entity.Segment, 0, len(inbound.Segments)+len(onward.Segments))
	segments = append(segments, inbound.Segments...)
	segments = append(segments, onward.Segments...)

	it := &entity.Itinerary{
		Segments:      segments,
		TotalPrice:    inbound.TotalPrice + onward.TotalPrice,
		TotalDuration: inbound.TotalDuration + onward.TotalDuration,
		Date:          searchDate,
		Cabin:         entity.CabinBusiness, // primary cabin
		Stops:         len(segments) - 1,
		IsGateway:     true,
		GatewayCode:   gateway,
		IsMixedCabin:  true,
	}
	it.RouteDesc = strings.Join(it.Route(), " -> ")
	it.ID = itineraryID("gw", it)
	return it
}

func topN(itineraries []*entity.Itinerary, n int) []*entity.Itinerary {
	if len(itineraries) > n {
		return itineraries[:n]
	}
	return itineraries
}

// flexDates expands a base date into the +/- flex range, in calendar order.
func flexDates(date string, flex int) ([]string, error) {
	base, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	if flex < 0 {
		flex = 0
	}

	dates := make([]string, 0, 2*flex+1)
	for offset := -flex; offset <= flex; offset++ {
		dates = append(dates, base.AddDate(0, 0, offset).Format("2006-01-02"))
	}
	return dates, nil
}
