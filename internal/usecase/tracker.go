package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
)

// PriceTracker maintains the bounded per-route fare history. Writers for the
// same route are serialized so an append and a trim never interleave; routes
// are independent, no global lock.
type PriceTracker struct {
	repo     repository.PriceHistoryRepository
	capacity int
	window   int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPriceTracker creates a tracker with the given history capacity and
// default averaging window.
func NewPriceTracker(repo repository.PriceHistoryRepository, capacity, window int) *PriceTracker {
	if capacity <= 0 {
		capacity = 90
	}
	if window <= 0 {
		window = 30
	}

	return &PriceTracker{
		repo:     repo,
		capacity: capacity,
		window:   window,
		locks:    make(map[string]*sync.Mutex),
	}
}

// Record appends one observation to the route's history, evicting the
// oldest entry beyond capacity, and stamps the last scan time. A storage
// failure propagates: a silently dropped observation would corrupt the
// trend baseline.
func (t *PriceTracker) Record(ctx context.Context, routeKey string, obs entity.PriceObservation) error {
	lock := t.routeLock(routeKey)
	lock.Lock()
	defer lock.Unlock()

	history, err := t.repo.Get(ctx, routeKey)
	if err != nil {
		return fmt.Errorf("load history for %s: %w", routeKey, err)
	}
	if history == nil {
		history = &entity.RoutePriceHistory{RouteKey: routeKey}
	}

	history.Append(obs, t.capacity)
	history.LastScan = time.Now()

	if err := t.repo.Replace(ctx, history); err != nil {
		return fmt.Errorf("store history for %s: %w", routeKey, err)
	}
	return nil
}

// Average returns the arithmetic mean of the most recent window
// observations, rounded to the nearest whole currency unit, or 0 when the
// route has no history. A non-positive window uses the configured default.
func (t *PriceTracker) Average(ctx context.Context, routeKey string, window int) (int, error) {
	if window <= 0 {
		window = t.window
	}

	history, err := t.repo.Get(ctx, routeKey)
	if err != nil {
		return 0, fmt.Errorf("load history for %s: %w", routeKey, err)
	}
	if history == nil {
		return 0, nil
	}

	prices := history.RecentPrices(window)
	if len(prices) == 0 {
		return 0, nil
	}

	sum := 0
	for _, p := range prices {
		sum += p
	}
	return int(math.Round(float64(sum) / float64(len(prices)))), nil
}

// Window returns the configured default averaging window.
func (t *PriceTracker) Window() int {
	return t.window
}

func (t *PriceTracker) routeLock(routeKey string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	lock, ok := t.locks[routeKey]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[routeKey] = lock
	}
	return lock
}
