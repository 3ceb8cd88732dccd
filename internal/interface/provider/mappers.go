package provider

import "flyright-service/internal/domain/entity"

// mapSearchResponse flattens best_flights and other_flights into the
// provider-neutral group model, preserving provider order.
func mapSearchResponse(payload searchResponse) *entity.FlightSearchResult {
	groups := make([]entity.FlightGroup, 0, len(payload.BestFlights)+len(payload.OtherFlights))
	for _, g := range payload.BestFlights {
		groups = append(groups, mapGroup(g))
	}
	for _, g := range payload.OtherFlights {
		groups = append(groups, mapGroup(g))
	}

	return &entity.FlightSearchResult{Groups: groups}
}

func mapGroup(g flightGroup) entity.FlightGroup {
	legs := make([]entity.RawLeg, len(g.Flights))
	for i, f := range g.Flights {
		legs[i] = entity.RawLeg{
			Designator:   f.FlightNumber,
			DepAirport:   f.DepartureAirport.ID,
			ArrAirport:   f.ArrivalAirport.ID,
			DepTime:      f.DepartureAirport.Time,
			ArrTime:      f.ArrivalAirport.Time,
			DurationMin:  f.Duration,
			CabinLabel:   f.TravelClass,
			Airline:      f.Airline,
			AlsoSoldBy:   f.TicketAlsoSoldBy,
			OperatedBy:   f.PlaneAndCrewBy,
			Aircraft:     f.Airplane,
			Legroom:      f.Legroom,
			Overnight:    f.Overnight,
			OftenDelayed: f.OftenDelayedByOver30Min,
		}
	}

	layovers := make([]int, len(g.Layovers))
	for i, l := range g.Layovers {
		layovers[i] = l.Duration
	}

	return entity.FlightGroup{
		Legs:           legs,
		Price:          g.Price,
		TotalDuration:  g.TotalDuration,
		CarbonGrams:    g.CarbonEmissions.ThisFlight,
		LayoverMinutes: layovers,
	}
}
