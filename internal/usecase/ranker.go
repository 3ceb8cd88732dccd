package usecase

import (
	"sort"

	"flyright-service/internal/domain/entity"
)

// SortKey selects the ordering for ranked itineraries.
type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByDuration SortKey = "duration"
	SortByStops    SortKey = "stops"
)

// Ranker deduplicates and orders itinerary candidates.
type Ranker struct{}

// NewRanker creates a new ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// Dedupe removes duplicate candidates, keeping the first encountered. The
// key is route plus flight identifiers plus total price, so near-duplicates
// differing by a single currency unit survive as distinct entries.
func (r *Ranker) Dedupe(itineraries []*entity.Itinerary) []*entity.Itinerary {
	seen := make(map[string]bool, len(itineraries))
	out := make([]*entity.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		key := it.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

// Sort orders itineraries ascending by the selected key, in place. Ties keep
// encounter order.
func (r *Ranker) Sort(itineraries []*entity.Itinerary, key SortKey) {
	var less func(a, b *entity.Itinerary) bool
	switch key {
	case SortByDuration:
		less = func(a, b *entity.Itinerary) bool { return a.TotalDuration < b.TotalDuration }
	case SortByStops:
		less = func(a, b *entity.Itinerary) bool { return a.Stops < b.Stops }
	default:
		less = func(a, b *entity.Itinerary) bool { return a.TotalPrice < b.TotalPrice }
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return less(itineraries[i], itineraries[j])
	})
}

// Rank deduplicates then sorts, returning the surviving candidates.
func (r *Ranker) Rank(itineraries []*entity.Itinerary, key SortKey) []*entity.Itinerary {
	out := r.Dedupe(itineraries)
	r.Sort(out, key)
	return out
}
