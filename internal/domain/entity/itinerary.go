package entity

import (
	"fmt"
	"strings"
)

// Itinerary is an ordered, non-empty sequence of segments forming one
// journey. Created by the assembler per search; annotated with a compliance
// verdict by the classifier; never mutated after creation.
type Itinerary struct {
	ID             string              `bson:"_id" json:"id"`
	Segments       []Segment           `bson:"segments" json:"segments"`
	TotalPrice     int                 `bson:"totalPrice" json:"totalPrice"`
	TotalDuration  int                 `bson:"totalDurationMin" json:"totalMin"`
	Date           string              `bson:"date" json:"date"` // first-segment departure date
	Cabin          Cabin               `bson:"cabin" json:"cabin"`
	Stops          int                 `bson:"stops" json:"stops"`
	RouteDesc      string              `bson:"routeDesc" json:"routeDesc"`
	IsGateway      bool                `bson:"isGateway" json:"isGateway"`
	GatewayCode    string              `bson:"gatewayCode,omitempty" json:"gatewayCode,omitempty"`
	IsMixedCabin   bool                `bson:"isMixedCabin" json:"isMixedCabin"`
	Compliance     *ComplianceVerdict  `bson:"compliance,omitempty" json:"compliance,omitempty"`
	CarbonGrams    int                 `bson:"carbonGrams,omitempty" json:"carbonGrams,omitempty"`
	LayoverMinutes []int               `bson:"layoverMinutes,omitempty" json:"layoverMinutes,omitempty"`
}

// Route returns the ordered airport codes of the journey, departure first.
func (it *Itinerary) Route() []string {
	if len(it.Segments) == 0 {
		return nil
	}
	route := make([]string, 0, len(it.Segments)+1)
	route = append(route, it.Segments[0].DepAirport)
	for _, s := range it.Segments {
		route = append(route, s.ArrAirport)
	}
	return route
}

// CarrierSummary returns the marketing carriers joined by "/", e.g. "LA/AA".
func (it *Itinerary) CarrierSummary() string {
	codes := make([]string, len(it.Segments))
	for i, s := range it.Segments {
		codes[i] = s.MarketingCarrier
	}
	return strings.Join(codes, "/")
}

// CarrierDetail returns carriers with airline names, e.g. "LA (LATAM) -> AA (American)".
func (it *Itinerary) CarrierDetail() string {
	parts := make([]string, len(it.Segments))
	for i, s := range it.Segments {
		parts[i] = fmt.Sprintf("%s (%s)", s.MarketingCarrier, s.AirlineName)
	}
	return strings.Join(parts, " -> ")
}

// FlightNumbers returns the flight identifiers joined by ",".
func (it *Itinerary) FlightNumbers() string {
	flts := make([]string, len(it.Segments))
	for i, s := range it.Segments {
		flts[i] = s.FlightNumber
	}
	return strings.Join(flts, ",")
}

// DedupKey identifies an itinerary for deduplication. Two itineraries with
// the same route, flight identifiers and total price are the same candidate.
func (it *Itinerary) DedupKey() string {
	return fmt.Sprintf("%s-%s-%d", it.RouteDesc, it.FlightNumbers(), it.TotalPrice)
}

// Validate checks the structural invariants of an itinerary: non-empty,
// contiguous segment path, non-negative total price and consistent stops.
func (it *Itinerary) Validate() error {
	if len(it.Segments) == 0 {
		return fmt.Errorf("itinerary %s has no segments", it.ID)
	}
	for i := 1; i < len(it.Segments); i++ {
		prev, cur := it.Segments[i-1], it.Segments[i]
		if prev.ArrAirport != cur.DepAirport {
			return fmt.Errorf("itinerary %s is not contiguous: segment %d arrives %s, segment %d departs %s",
				it.ID, i-1, prev.ArrAirport, i, cur.DepAirport)
		}
	}
	if it.TotalPrice < 0 {
		return fmt.Errorf("itinerary %s has negative total price %d", it.ID, it.TotalPrice)
	}
	if it.Stops != len(it.Segments)-1 {
		return fmt.Errorf("itinerary %s stop count %d does not match %d segments", it.ID, it.Stops, len(it.Segments))
	}
	return nil
}
