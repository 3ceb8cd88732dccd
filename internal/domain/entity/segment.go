package entity

import "fmt"

// Cabin is the canonical cabin class code.
type Cabin string

const (
	CabinEconomy        Cabin = "Y"
	CabinPremiumEconomy Cabin = "W"
	CabinBusiness       Cabin = "C"
	CabinFirst          Cabin = "F"
)

// cabinLabels maps provider free-text cabin labels to canonical codes.
var cabinLabels = map[string]Cabin{
	"Economy":         CabinEconomy,
	"Premium Economy": CabinPremiumEconomy,
	"Premium economy": CabinPremiumEconomy,
	"Business":        CabinBusiness,
	"First":           CabinFirst,
	"First Class":     CabinFirst,
}

// ParseCabinLabel maps a provider cabin label to a canonical cabin code,
// falling back to the cabin that was requested when the label is unknown.
func ParseCabinLabel(label string, requested Cabin) Cabin {
	if c, ok := cabinLabels[label]; ok {
		return c
	}
	if requested != "" {
		return requested
	}
	return CabinEconomy
}

// Premium reports whether the cabin is business or first.
func (c Cabin) Premium() bool {
	return c == CabinBusiness || c == CabinFirst
}

// Segment represents one flown leg of an itinerary. Segments are created by
// the assembler and immutable afterwards.
type Segment struct {
	DepAirport       string `bson:"depAirport" json:"dep"`
	ArrAirport       string `bson:"arrAirport" json:"arr"`
	MarketingCarrier string `bson:"marketingCarrier" json:"mktCx"`
	OperatingCarrier string `bson:"operatingCarrier,omitempty" json:"operatingCx,omitempty"`
	CodeshareCarrier string `bson:"codeshareCarrier,omitempty" json:"codeCx,omitempty"`
	AirlineName      string `bson:"airlineName" json:"airline"`
	FlightNumber     string `bson:"flightNumber" json:"flt"`
	Cabin            Cabin  `bson:"cabin" json:"cabin"`
	DepTime          string `bson:"depTime" json:"depTime"` // local "15:04"
	ArrTime          string `bson:"arrTime" json:"arrTime"`
	Date             string `bson:"date" json:"date"` // local departure date "2006-01-02"
	DurationMin      int    `bson:"durationMin" json:"durationMin"`
	Price            int    `bson:"price" json:"price"` // whole currency units allocated to this leg
	Aircraft         string `bson:"aircraft,omitempty" json:"aircraft,omitempty"`
	Legroom          string `bson:"legroom,omitempty" json:"legroom,omitempty"`
	Overnight        bool   `bson:"overnight,omitempty" json:"overnight,omitempty"`
	OftenDelayed     bool   `bson:"oftenDelayed,omitempty" json:"oftenDelayed,omitempty"`
}

// Validate checks the structural invariants of a segment.
func (s *Segment) Validate() error {
	if s.DepAirport == s.ArrAirport {
		return fmt.Errorf("segment departs and arrives at %s", s.DepAirport)
	}
	if s.DurationMin <= 0 {
		return fmt.Errorf("segment %s->%s has non-positive duration %d", s.DepAirport, s.ArrAirport, s.DurationMin)
	}
	if s.Price < 0 {
		return fmt.Errorf("segment %s->%s has negative price %d", s.DepAirport, s.ArrAirport, s.Price)
	}
	return nil
}

// TicketedCarrier returns the codeshare carrier when one is attached,
// otherwise the marketing carrier.
func (s *Segment) TicketedCarrier() string {
	if s.CodeshareCarrier != "" {
		return s.CodeshareCarrier
	}
	return s.MarketingCarrier
}
