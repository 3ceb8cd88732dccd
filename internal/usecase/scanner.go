package usecase

import (
	"context"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"
	"flyright-service/pkg/metrics"
)

// ScanReport summarizes one completed scan cycle. Transport and malformed
// data problems never abort a cycle; they surface as skipped queries.
type ScanReport struct {
	Deals          []*entity.Deal
	RoutesScanned  int
	SkippedQueries int
}

// FareScanner runs one monitoring cycle over the monitored route table:
// search, assemble, classify, record the cheapest qualifying fare, detect
// deals. Queries are spaced by a fixed delay to respect provider rate
// limits; do not parallelize without re-deriving a safe request budget.
type FareScanner struct {
	searchRepo repository.FlightSearchRepository
	assembler  *Assembler
	classifier *ComplianceClassifier
	ranker     *Ranker
	tracker    *PriceTracker
	detector   *DealDetector
	routes     []entity.MonitoredRoute
	dayOffsets []int
	delay      time.Duration
	metrics    *metrics.Metrics
	logger     logger.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFareScanner creates a new fare scanner
func NewFareScanner(
	searchRepo repository.FlightSearchRepository,
	assembler *Assembler,
	classifier *ComplianceClassifier,
	ranker *Ranker,
	tracker *PriceTracker,
	detector *DealDetector,
	routes []entity.MonitoredRoute,
	dayOffsets []int,
	delay time.Duration,
	m *metrics.Metrics,
	log logger.Logger,
) *FareScanner {
	if len(routes) == 0 {
		routes = entity.DefaultMonitoredRoutes()
	}
	if len(dayOffsets) == 0 {
		dayOffsets = []int{14, 28, 56}
	}

	return &FareScanner{
		searchRepo: searchRepo,
		assembler:  assembler,
		classifier: classifier,
		ranker:     ranker,
		tracker:    tracker,
		detector:   detector,
		routes:     routes,
		dayOffsets: dayOffsets,
		delay:      delay,
		metrics:    m,
		logger:     log,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Scan runs one full cycle and returns the deals found plus the skipped
// query count. Only a price-history storage failure aborts the cycle.
func (s *FareScanner) Scan(ctx context.Context) (*ScanReport, error) {
	started := s.now()
	s.logger.Info("Starting fare scan", "routes", len(s.routes), "dates", len(s.dayOffsets))

	searchDates := make([]string, len(s.dayOffsets))
	for i, days := range s.dayOffsets {
		searchDates[i] = started.AddDate(0, 0, days).Format("2006-01-02")
	}

	report := &ScanReport{}
	first := true

	for _, route := range s.routes {
		routeKey := entity.RouteKey(route.Dep, route.Arr)

		for _, searchDate := range searchDates {
			if !first {
				s.sleep(s.delay)
			}
			first = false

			if err := s.scanQuery(ctx, route, routeKey, searchDate, report); err != nil {
				return report, err
			}
		}
	}

	if s.metrics != nil {
		s.metrics.ScanDuration.Observe(s.now().Sub(started).Seconds())
	}
	s.logger.Info("Scan complete",
		"deals", len(report.Deals),
		"scanned", report.RoutesScanned,
		"skipped", report.SkippedQueries)

	return report, nil
}

// scanQuery handles one (route, date) query. Its error return is reserved
// for storage failures; everything else is absorbed as a skip.
func (s *FareScanner) scanQuery(ctx context.Context, route entity.MonitoredRoute, routeKey, searchDate string, report *ScanReport) error {
	s.logger.Debug("Scanning route", "route", route.Name, "date", searchDate)

	result, err := s.searchRepo.SearchFlights(ctx, entity.SearchQuery{
		Origin:      route.Dep,
		Destination: route.Arr,
		Date:        searchDate,
		Cabin:       entity.CabinBusiness,
	})
	if err != nil {
		s.logger.Warn("Search failed, skipping query", "route", route.Name, "date", searchDate, "error", err)
		report.SkippedQueries++
		if s.metrics != nil {
			s.metrics.QueriesSkipped.Inc()
		}
		return nil
	}

	report.RoutesScanned++
	if s.metrics != nil {
		s.metrics.RoutesScanned.Inc()
	}

	itineraries := s.assembler.Assemble(result, AssembleOptions{
		SearchDate:     searchDate,
		RequestedCabin: entity.CabinBusiness,
	})
	if len(itineraries) == 0 {
		return nil
	}

	for _, it := range itineraries {
		verdict := s.classifier.Classify(it)
		it.Compliance = &verdict
	}

	cheapest := s.cheapestQualifying(itineraries)

	// The baseline average is taken before recording so a route's first
	// observation can never flag itself as a deal.
	average, err := s.tracker.Average(ctx, routeKey, 0)
	if err != nil {
		return err
	}

	obs := entity.PriceObservation{
		Date:      searchDate,
		ScannedAt: s.now(),
		Price:     cheapest.TotalPrice,
		Carrier:   cheapest.CarrierSummary(),
		Compliant: cheapest.Compliance != nil && cheapest.Compliance.Compliant,
	}
	if err := s.tracker.Record(ctx, routeKey, obs); err != nil {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("history_store").Inc()
		}
		return err
	}

	deal := s.detector.Detect(route, cheapest.TotalPrice, average, cheapest, searchDate)
	if deal != nil {
		report.Deals = append(report.Deals, deal)
		if s.metrics != nil {
			s.metrics.DealsFound.Inc()
		}
		s.logger.Info("Deal detected",
			"route", route.Name,
			"price", deal.Price,
			"average", deal.AvgPrice,
			"pctOff", deal.PctOff)
	}

	return nil
}

// cheapestQualifying returns the cheapest compliant itinerary, or the
// cheapest overall when nothing is compliant.
func (s *FareScanner) cheapestQualifying(itineraries []*entity.Itinerary) *entity.Itinerary {
	ranked := s.ranker.Rank(itineraries, SortByPrice)
	for _, it := range ranked {
		if it.Compliance != nil && it.Compliance.Compliant {
			return it
		}
	}
	return ranked[0]
}
