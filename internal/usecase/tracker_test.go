package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"flyright-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTrimsHistoryToCapacity(t *testing.T) {
	repo := newMemHistoryRepo()
	tracker := NewPriceTracker(repo, 90, 30)
	ctx := context.Background()

	for i := 0; i < 95; i++ {
		err := tracker.Record(ctx, "JFK-GRU", entity.PriceObservation{
			Date:  "2026-09-15",
			Price: 1000 + i,
		})
		require.NoError(t, err)
	}

	history := repo.histories["JFK-GRU"]
	require.NotNil(t, history)
	require.Len(t, history.Prices, 90)
	assert.Equal(t, 1005, history.Prices[0].Price, "oldest five evicted")
	assert.Equal(t, 1094, history.Prices[89].Price)
	assert.False(t, history.LastScan.IsZero())
}

func TestAverageUsesRecentWindow(t *testing.T) {
	repo := newMemHistoryRepo()
	tracker := NewPriceTracker(repo, 90, 30)
	ctx := context.Background()

	// 10 old observations at 2000, then 30 at 1000. The window must only
	// see the recent 30.
	for i := 0; i < 10; i++ {
		require.NoError(t, tracker.Record(ctx, "JFK-GRU", entity.PriceObservation{Price: 2000}))
	}
	for i := 0; i < 30; i++ {
		require.NoError(t, tracker.Record(ctx, "JFK-GRU", entity.PriceObservation{Price: 1000}))
	}

	avg, err := tracker.Average(ctx, "JFK-GRU", 0)
	require.NoError(t, err)
	assert.Equal(t, 1000, avg)
}

func TestAverageRoundsToWholeUnits(t *testing.T) {
	repo := newMemHistoryRepo()
	tracker := NewPriceTracker(repo, 90, 30)
	ctx := context.Background()

	for _, price := range []int{1000, 1001, 1001} {
		require.NoError(t, tracker.Record(ctx, "JFK-GRU", entity.PriceObservation{Price: price}))
	}

	avg, err := tracker.Average(ctx, "JFK-GRU", 0)
	require.NoError(t, err)
	assert.Equal(t, 1001, avg, "1000.67 rounds to 1001")
}

func TestAverageUnknownRouteIsZero(t *testing.T) {
	tracker := NewPriceTracker(newMemHistoryRepo(), 90, 30)

	avg, err := tracker.Average(context.Background(), "XXX-YYY", 0)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestRecordPropagatesStorageFailure(t *testing.T) {
	repo := newMemHistoryRepo()
	repo.putErr = errors.New("mongo down")
	tracker := NewPriceTracker(repo, 90, 30)

	err := tracker.Record(context.Background(), "JFK-GRU", entity.PriceObservation{Price: 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store history for JFK-GRU")
}

func TestRecordConcurrentRoutesStayIsolated(t *testing.T) {
	repo := newMemHistoryRepo()
	tracker := NewPriceTracker(repo, 90, 30)
	ctx := context.Background()

	done := make(chan error, 40)
	for i := 0; i < 20; i++ {
		for _, route := range []string{"JFK-GRU", "MIA-EZE"} {
			go func(route string, price int) {
				done <- tracker.Record(ctx, route, entity.PriceObservation{Price: price})
			}(route, 1000+i)
		}
	}
	for i := 0; i < 40; i++ {
		require.NoError(t, <-done)
	}

	for _, route := range []string{"JFK-GRU", "MIA-EZE"} {
		history := repo.histories[route]
		require.NotNil(t, history, fmt.Sprintf("history for %s", route))
		assert.Len(t, history.Prices, 20)
	}
}
