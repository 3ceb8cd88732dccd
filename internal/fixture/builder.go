// Package fixture builds deterministic sample flight data for tests and
// demos. All randomness flows from an explicit seed so a fixture never
// varies between runs.
package fixture

import (
	"fmt"
	"math/rand"

	"flyright-service/internal/domain/entity"
)

var sampleCarriers = []struct {
	code string
	name string
}{
	{"AA", "American"},
	{"UA", "United"},
	{"DL", "Delta"},
	{"LA", "LATAM"},
	{"AV", "Avianca"},
	{"AC", "Air Canada"},
	{"LH", "Lufthansa"},
}

// Builder produces sample provider responses and observations.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a fixture builder seeded for reproducibility.
func NewBuilder(seed int64) *Builder {
	return &Builder{rng: rand.New(rand.NewSource(seed))}
}

// Leg returns one raw provider leg between the given airports.
func (b *Builder) Leg(dep, arr, date string) entity.RawLeg {
	carrier := sampleCarriers[b.rng.Intn(len(sampleCarriers))]
	flight := 100 + b.rng.Intn(4800)
	hour := 6 + b.rng.Intn(14)
	duration := 90 + b.rng.Intn(600)

	return entity.RawLeg{
		Designator:  fmt.Sprintf("%s %d", carrier.code, flight),
		DepAirport:  dep,
		ArrAirport:  arr,
		DepTime:     fmt.Sprintf("%s %02d:%02d", date, hour, b.rng.Intn(60)),
		ArrTime:     fmt.Sprintf("%s %02d:%02d", date, (hour+duration/60)%24, b.rng.Intn(60)),
		DurationMin: duration,
		CabinLabel:  "Business",
		Airline:     carrier.name,
	}
}

// Group returns a single-leg flight group at the given price.
func (b *Builder) Group(dep, arr, date string, price int) entity.FlightGroup {
	leg := b.Leg(dep, arr, date)
	return entity.FlightGroup{
		Legs:          []entity.RawLeg{leg},
		Price:         price,
		TotalDuration: leg.DurationMin,
	}
}

// ConnectingGroup returns a two-leg group through the via airport with the
// given leg durations, priced at the group level only.
func (b *Builder) ConnectingGroup(dep, via, arr, date string, price, dur1, dur2 int) entity.FlightGroup {
	leg1 := b.Leg(dep, via, date)
	leg1.DurationMin = dur1
	leg2 := b.Leg(via, arr, date)
	leg2.DurationMin = dur2

	return entity.FlightGroup{
		Legs:          []entity.RawLeg{leg1, leg2},
		Price:         price,
		TotalDuration: dur1 + dur2,
	}
}

// Result wraps groups into a provider search result.
func (b *Builder) Result(groups ...entity.FlightGroup) *entity.FlightSearchResult {
	return &entity.FlightSearchResult{Groups: groups}
}

// Observations returns n price observations around the base price, oldest
// first, for seeding route histories.
func (b *Builder) Observations(date string, n, basePrice int) []entity.PriceObservation {
	obs := make([]entity.PriceObservation, n)
	for i := range obs {
		jitter := b.rng.Intn(basePrice/10+1) - basePrice/20
		obs[i] = entity.PriceObservation{
			Date:      date,
			Price:     basePrice + jitter,
			Carrier:   "AA",
			Compliant: true,
		}
	}
	return obs
}
