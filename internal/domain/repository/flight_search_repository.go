package repository

import (
	"context"

	"flyright-service/internal/domain/entity"
)

// FlightSearchRepository defines the interface to the upstream flight-search
// provider. One call issues one origin/destination/date/cabin query.
type FlightSearchRepository interface {
	SearchFlights(ctx context.Context, query entity.SearchQuery) (*entity.FlightSearchResult, error)
}
