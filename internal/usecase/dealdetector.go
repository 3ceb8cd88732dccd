package usecase

import (
	"math"
	"sort"

	"flyright-service/internal/domain/entity"
)

// DealDetector flags fares strictly more than the configured fraction below
// a route's rolling average.
type DealDetector struct {
	threshold float64 // deal when price < average * threshold
}

// NewDealDetector creates a detector; threshold 0.75 flags fares more than
// 25% below trend.
func NewDealDetector(threshold float64) *DealDetector {
	if threshold <= 0 || threshold >= 1 {
		threshold = 0.75
	}
	return &DealDetector{threshold: threshold}
}

// Detect compares an observed price against the route's rolling average and
// returns a deal, or nil. A route with no history (average 0) never
// produces a deal; the boundary is strict.
func (d *DealDetector) Detect(route entity.MonitoredRoute, price, average int, cheapest *entity.Itinerary, travelDate string) *entity.Deal {
	if average <= 0 {
		return nil
	}
	if float64(price) >= float64(average)*d.threshold {
		return nil
	}

	deal := &entity.Deal{
		Route:     route.Name,
		Dep:       route.Dep,
		Arr:       route.Arr,
		Price:     price,
		AvgPrice:  average,
		Savings:   average - price,
		PctOff:    int(math.Round((1 - float64(price)/float64(average)) * 100)),
		Date:      travelDate,
		IsGateway: route.Gateway,
	}

	if cheapest != nil {
		deal.Carrier = cheapest.CarrierDetail()
		deal.Stops = cheapest.Stops
		if cheapest.Compliance != nil {
			deal.Compliant = cheapest.Compliance.Compliant
		}
	}

	return deal
}

// RankDeals orders deals by descending percent-off for presentation; ties
// keep discovery order.
func (d *DealDetector) RankDeals(deals []*entity.Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].PctOff > deals[j].PctOff
	})
}
