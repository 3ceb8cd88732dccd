package usecase

import (
	"fmt"
	"hash/fnv"
	"strings"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"
)

// AssembleOptions carries query context the provider response alone does not
// supply.
type AssembleOptions struct {
	SearchDate     string // travel date queried, used when legs omit dates
	RequestedCabin entity.Cabin
}

// Assembler reconstructs itineraries from raw provider flight groups.
type Assembler struct {
	directory repository.CarrierDirectory
	allocator FareAllocator
	logger    logger.Logger
}

// NewAssembler creates a new itinerary assembler
func NewAssembler(directory repository.CarrierDirectory, allocator FareAllocator, log logger.Logger) *Assembler {
	if allocator == nil {
		allocator = NewDurationProportionalAllocator()
	}

	return &Assembler{
		directory: directory,
		allocator: allocator,
		logger:    log,
	}
}

// Assemble converts one provider response into itineraries. Malformed
// groups are skipped, never fatal.
func (a *Assembler) Assemble(result *entity.FlightSearchResult, opts AssembleOptions) []*entity.Itinerary {
	if result == nil {
		return nil
	}

	itineraries := make([]*entity.Itinerary, 0, len(result.Groups))
	for _, group := range result.Groups {
		it, err := a.assembleGroup(group, opts)
		if err != nil {
			a.logger.Warn("Skipping malformed flight group", "error", err)
			continue
		}
		itineraries = append(itineraries, it)
	}

	return itineraries
}

func (a *Assembler) assembleGroup(group entity.FlightGroup, opts AssembleOptions) (*entity.Itinerary, error) {
	if len(group.Legs) == 0 {
		return nil, fmt.Errorf("flight group has no legs")
	}

	durations := make([]int, len(group.Legs))
	for i, leg := range group.Legs {
		durations[i] = leg.DurationMin
	}
	legPrices := a.allocator.Allocate(group.Price, durations, group.TotalDuration)

	segments := make([]entity.Segment, len(group.Legs))
	for i, leg := range group.Legs {
		segments[i] = a.buildSegment(leg, legPrices[i], opts)
	}

	it := &entity.Itinerary{
		Segments:       segments,
		TotalPrice:     group.Price,
		TotalDuration:  group.TotalDuration,
		Date:           firstNonEmpty(segments[0].Date, opts.SearchDate),
		Cabin:          segments[0].Cabin,
		Stops:          len(segments) - 1,
		CarbonGrams:    group.CarbonGrams,
		LayoverMinutes: group.LayoverMinutes,
	}
	it.RouteDesc = strings.Join(it.Route(), " -> ")

	// Gateway detection: an intermediate stop at a designated gateway
	route := it.Route()
	for _, code := range route[1 : len(route)-1] {
		if a.directory.IsGatewayAirport(code) {
			it.IsGateway = true
			it.GatewayCode = code
			break
		}
	}

	it.IsMixedCabin = mixedCabins(segments)
	it.ID = itineraryID("serp", it)

	if err := it.Validate(); err != nil {
		return nil, err
	}
	return it, nil
}

func (a *Assembler) buildSegment(leg entity.RawLeg, price int, opts AssembleOptions) entity.Segment {
	carrier, flightNumber := parseDesignator(leg.Designator)

	seg := entity.Segment{
		DepAirport:       airportOrUnknown(leg.DepAirport),
		ArrAirport:       airportOrUnknown(leg.ArrAirport),
		MarketingCarrier: carrier,
		OperatingCarrier: leg.OperatedBy,
		AirlineName:      firstNonEmpty(leg.Airline, carrier),
		FlightNumber:     flightNumber,
		Cabin:            entity.ParseCabinLabel(leg.CabinLabel, opts.RequestedCabin),
		DepTime:          parseClock(leg.DepTime),
		ArrTime:          parseClock(leg.ArrTime),
		Date:             parseDate(leg.DepTime),
		DurationMin:      leg.DurationMin,
		Price:            price,
		Aircraft:         leg.Aircraft,
		Legroom:          leg.Legroom,
		Overnight:        leg.Overnight,
		OftenDelayed:     leg.OftenDelayed,
	}

	seg.CodeshareCarrier = a.resolveCodeshare(carrier, leg.AlsoSoldBy)
	return seg
}

// resolveCodeshare finds an eligible partner selling a foreign carrier's
// flight. The provider's also-sold-by hint is tried first, resolved against
// the partner table; the table keyed by marketing carrier is the fallback.
func (a *Assembler) resolveCodeshare(marketingCarrier string, alsoSoldBy []string) string {
	if a.directory.IsEligibleCarrier(marketingCarrier) {
		return ""
	}

	partners := a.directory.CodesharePartners(marketingCarrier)
	if len(partners) == 0 {
		return ""
	}

	// Sellers arrive as airline names, not codes, so the hint only confirms
	// that a codeshare ticket exists; the partner table picks the carrier
	// either way.
	return partners[0]
}

// parseDesignator splits "UA 1234" into carrier code and flight identifier.
func parseDesignator(designator string) (string, string) {
	fields := strings.Fields(designator)
	if len(fields) == 0 {
		return "??", "??"
	}
	code := fields[0]
	num := strings.Join(fields[1:], "")
	return code, code + num
}

// parseClock extracts "15:04" from a local "2006-01-02 15:04" timestamp.
func parseClock(ts string) string {
	parts := strings.SplitN(ts, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "??:??"
	}
	return parts[1]
}

// parseDate extracts "2006-01-02" from a local "2006-01-02 15:04" timestamp.
func parseDate(ts string) string {
	parts := strings.SplitN(ts, " ", 2)
	if parts[0] == "" {
		return ""
	}
	return parts[0]
}

func airportOrUnknown(code string) string {
	if code == "" {
		return "???"
	}
	return code
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func mixedCabins(segments []entity.Segment) bool {
	for i := 1; i < len(segments); i++ {
		if segments[i].Cabin != segments[0].Cabin {
			return true
		}
	}
	return false
}

// itineraryID derives a stable identifier from the journey itself, so
// repeated queries produce identical IDs for identical candidates.
func itineraryID(prefix string, it *entity.Itinerary) string {
	h := fnv.New64a()
	h.Write([]byte(it.RouteDesc))
	h.Write([]byte(it.FlightNumbers()))
	h.Write([]byte(fmt.Sprintf("%d-%s", it.TotalPrice, it.Date)))
	return fmt.Sprintf("%s-%s-%012x", prefix, it.Date, h.Sum64()&0xffffffffffff)
}
