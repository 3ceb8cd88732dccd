package entity

import (
	"fmt"
	"time"
)

// PriceObservation is one recorded fare sample for a route.
type PriceObservation struct {
	Date      string    `bson:"date" json:"date"` // travel date searched, "2006-01-02"
	ScannedAt time.Time `bson:"scannedAt" json:"scanned"`
	Price     int       `bson:"price" json:"price"`
	Carrier   string    `bson:"carrier" json:"carrier"` // marketing carriers joined by "/"
	Compliant bool      `bson:"compliant" json:"compliant"`
}

// RoutePriceHistory is the bounded rolling fare history for one route,
// stored as a whole document keyed by route key.
type RoutePriceHistory struct {
	RouteKey string             `bson:"_id" json:"routeKey"` // "ORIGIN-DEST"
	Prices   []PriceObservation `bson:"prices" json:"prices"`
	LastScan time.Time          `bson:"lastScan" json:"lastScan"`
}

// RouteKey builds the canonical history key for an origin/destination pair.
func RouteKey(dep, arr string) string {
	return fmt.Sprintf("%s-%s", dep, arr)
}

// Append adds one observation, evicting the oldest entries once the history
// exceeds capacity.
func (h *RoutePriceHistory) Append(obs PriceObservation, capacity int) {
	h.Prices = append(h.Prices, obs)
	if capacity > 0 && len(h.Prices) > capacity {
		h.Prices = h.Prices[len(h.Prices)-capacity:]
	}
}

// RecentPrices returns the prices of the most recent window observations.
// A window of zero or less returns all recorded prices.
func (h *RoutePriceHistory) RecentPrices(window int) []int {
	prices := h.Prices
	if window > 0 && len(prices) > window {
		prices = prices[len(prices)-window:]
	}
	out := make([]int, len(prices))
	for i, p := range prices {
		out[i] = p.Price
	}
	return out
}
