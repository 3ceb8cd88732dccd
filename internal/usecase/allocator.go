package usecase

import "math"

// FareAllocator distributes a group-level total price across legs. The
// provider never supplies per-leg prices, so any allocation is a modeling
// choice; implementations are swappable.
type FareAllocator interface {
	Allocate(totalPrice int, legDurations []int, totalDuration int) []int
}

// DurationProportionalAllocator allocates each leg's fare proportionally to
// its share of total duration, falling back to an even split when the total
// duration is zero or unknown.
type DurationProportionalAllocator struct{}

// NewDurationProportionalAllocator creates the default allocator
func NewDurationProportionalAllocator() *DurationProportionalAllocator {
	return &DurationProportionalAllocator{}
}

// Allocate splits totalPrice across the legs
func (a *DurationProportionalAllocator) Allocate(totalPrice int, legDurations []int, totalDuration int) []int {
	prices := make([]int, len(legDurations))
	if len(legDurations) == 0 {
		return prices
	}

	if totalDuration <= 0 {
		even := int(math.Round(float64(totalPrice) / float64(len(legDurations))))
		for i := range prices {
			prices[i] = even
		}
		return prices
	}

	for i, dur := range legDurations {
		prices[i] = int(math.Round(float64(totalPrice) * float64(dur) / float64(totalDuration)))
	}
	return prices
}
