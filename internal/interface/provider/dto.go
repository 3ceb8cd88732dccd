package provider

// SerpApi Google Flights response shapes. Only the fields the service
// consumes are declared; everything else is ignored on decode.

type searchResponse struct {
	BestFlights  []flightGroup `json:"best_flights"`
	OtherFlights []flightGroup `json:"other_flights"`
	Error        string        `json:"error"`
}

type flightGroup struct {
	Flights         []flightLeg     `json:"flights"`
	Layovers        []layover       `json:"layovers"`
	TotalDuration   int             `json:"total_duration"`
	CarbonEmissions carbonEmissions `json:"carbon_emissions"`
	Price           int             `json:"price"`
}

type flightLeg struct {
	DepartureAirport        airportTime `json:"departure_airport"`
	ArrivalAirport          airportTime `json:"arrival_airport"`
	Duration                int         `json:"duration"`
	Airplane                string      `json:"airplane"`
	Airline                 string      `json:"airline"`
	FlightNumber            string      `json:"flight_number"`
	TravelClass             string      `json:"travel_class"`
	Legroom                 string      `json:"legroom"`
	Extensions              []string    `json:"extensions"`
	TicketAlsoSoldBy        []string    `json:"ticket_also_sold_by"`
	PlaneAndCrewBy          string      `json:"plane_and_crew_by"`
	Overnight               bool        `json:"overnight"`
	OftenDelayedByOver30Min bool        `json:"often_delayed_by_over_30_min"`
}

type airportTime struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"` // local "2006-01-02 15:04"
}

type layover struct {
	Duration int    `json:"duration"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

type carbonEmissions struct {
	ThisFlight int `json:"this_flight"`
}
