package repository

import (
	"context"

	"flyright-service/internal/domain/entity"
)

// PriceHistoryRepository defines the interface for the durable per-route
// price history store. Histories are read and written as whole documents;
// Replace must be atomic so concurrent appends are never partially visible.
type PriceHistoryRepository interface {
	Get(ctx context.Context, routeKey string) (*entity.RoutePriceHistory, error)
	Replace(ctx context.Context, history *entity.RoutePriceHistory) error
}
