package entity

// SearchQuery describes one upstream flight-search request for a single
// origin/destination/date/cabin combination.
type SearchQuery struct {
	Origin      string
	Destination string
	Date        string // ISO 8601 calendar date "2006-01-02"
	Cabin       Cabin
	MaxStops    int // 0 = any
}

// RawLeg is one flown leg exactly as the provider shapes it. Optional fields
// are absent when the provider omits them; the assembler substitutes
// defaults.
type RawLeg struct {
	Designator   string   // "UA 1234"
	DepAirport   string
	ArrAirport   string
	DepTime      string // local "2006-01-02 15:04"
	ArrTime      string
	DurationMin  int
	CabinLabel   string   // free text, e.g. "Premium Economy"
	Airline      string   // display name, e.g. "United"
	AlsoSoldBy   []string // provider "also sold by" airline names
	OperatedBy   string
	Aircraft     string
	Legroom      string
	Overnight    bool
	OftenDelayed bool
}

// FlightGroup is one provider result: ordered legs plus group-level totals.
// Per-leg prices are not supplied by the provider.
type FlightGroup struct {
	Legs           []RawLeg
	Price          int
	TotalDuration  int // minutes; may be zero when the provider omits it
	CarbonGrams    int
	LayoverMinutes []int
}

// FlightSearchResult is the provider response for one query.
type FlightSearchResult struct {
	Groups []FlightGroup
}
