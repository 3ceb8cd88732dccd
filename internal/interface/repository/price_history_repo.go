package repository

import (
	"context"
	"errors"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPriceHistoryRepository implements PriceHistoryRepository. Each route
// is one document keyed by route key, replaced whole on every write so a
// reader always sees a consistent snapshot.
type MongoPriceHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoPriceHistoryRepository creates a new price history repository
func NewMongoPriceHistoryRepository(db *mongo.Database) repository.PriceHistoryRepository {
	collection := db.Collection("route_price_history")

	return &MongoPriceHistoryRepository{
		collection: collection,
	}
}

// Get loads the history document for a route key, or nil when the route has
// never been observed.
func (r *MongoPriceHistoryRepository) Get(ctx context.Context, routeKey string) (*entity.RoutePriceHistory, error) {
	var history entity.RoutePriceHistory
	err := r.collection.FindOne(ctx, bson.M{"_id": routeKey}).Decode(&history)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// Replace atomically overwrites the route's history document, creating it on
// first observation.
func (r *MongoPriceHistoryRepository) Replace(ctx context.Context, history *entity.RoutePriceHistory) error {
	opts := options.FindOneAndReplace().SetUpsert(true)

	err := r.collection.FindOneAndReplace(
		ctx,
		bson.M{"_id": history.RouteKey},
		history,
		opts,
	).Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		// Upserted a fresh document
		return nil
	}
	return err
}
