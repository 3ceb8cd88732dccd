package usecase

import (
	"testing"

	"flyright-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(dep, arr, carrier string) entity.Segment {
	return entity.Segment{
		DepAirport:       dep,
		ArrAirport:       arr,
		MarketingCarrier: carrier,
		AirlineName:      carrier,
		DurationMin:      120,
	}
}

func itin(segments ...entity.Segment) *entity.Itinerary {
	return &entity.Itinerary{
		Segments: segments,
		Stops:    len(segments) - 1,
	}
}

func TestClassifyEligibleCarrierIsCompliant(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	verdict := c.Classify(itin(seg("GRU", "JFK", "AA")))
	assert.True(t, verdict.Compliant)
	assert.Empty(t, verdict.Issues)
	assert.Empty(t, verdict.Warnings)
}

func TestClassifyForeignCarrierOnCriticalSegment(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	verdict := c.Classify(itin(seg("GRU", "JFK", "LA")))
	assert.False(t, verdict.Compliant)
	require.Len(t, verdict.Issues, 1)
	assert.Contains(t, verdict.Issues[0], "First US-arriving segment")
	assert.Contains(t, verdict.Issues[0], "LA")
}

func TestClassifyCodeshareRescuesForeignCarrier(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	s := seg("GRU", "JFK", "LA")
	s.CodeshareCarrier = "AA"

	verdict := c.Classify(itin(s))
	assert.True(t, verdict.Compliant)
	assert.Empty(t, verdict.Issues)
}

func TestClassifyNeverTouchingCoveredTerritory(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	verdict := c.Classify(itin(
		seg("GRU", "EZE", "LA"),
		seg("EZE", "SCL", "LA"),
	))
	assert.True(t, verdict.Compliant)
	assert.Empty(t, verdict.Issues)
	assert.Empty(t, verdict.Warnings)
}

func TestClassifyBothBoundarySegmentsChecked(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	// Inbound to JFK and outbound from MIA both on foreign metal.
	verdict := c.Classify(itin(
		seg("GRU", "JFK", "LA"),
		seg("JFK", "MIA", "AA"),
		seg("MIA", "GRU", "LA"),
	))
	assert.False(t, verdict.Compliant)
	require.Len(t, verdict.Issues, 2)
	assert.Contains(t, verdict.Issues[0], "First US-arriving segment")
	assert.Contains(t, verdict.Issues[1], "Last US-departing segment")
}

func TestClassifySameSegmentIsBothBoundaries(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	// A single domestic hop is both the first arrival and last departure;
	// it must produce one issue, not two.
	verdict := c.Classify(itin(seg("JFK", "MIA", "LA")))
	assert.False(t, verdict.Compliant)
	assert.Len(t, verdict.Issues, 1)
}

func TestClassifyInteriorForeignSegmentWarns(t *testing.T) {
	c := NewComplianceClassifier(newFakeDirectory())

	verdict := c.Classify(itin(
		seg("GRU", "JFK", "AA"),
		seg("JFK", "MIA", "LA"),
		seg("MIA", "GRU", "AA"),
	))
	assert.True(t, verdict.Compliant, "interior segments are advisory only")
	assert.Empty(t, verdict.Issues)
	require.Len(t, verdict.Warnings, 1)
	assert.Contains(t, verdict.Warnings[0], "LA")
}
