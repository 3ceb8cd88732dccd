package usecase

import (
	"fmt"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
)

// ComplianceClassifier evaluates itineraries against the Fly America rule.
// Only the boundary segments crossing into or out of covered territory are
// legally decisive; interior covered-territory segments on foreign carriers
// are flagged as warnings.
type ComplianceClassifier struct {
	directory repository.CarrierDirectory
}

// NewComplianceClassifier creates a new classifier
func NewComplianceClassifier(directory repository.CarrierDirectory) *ComplianceClassifier {
	return &ComplianceClassifier{directory: directory}
}

// Classify returns the compliance verdict for an itinerary. An itinerary
// that never touches covered territory is compliant with no issues.
func (c *ComplianceClassifier) Classify(it *entity.Itinerary) entity.ComplianceVerdict {
	verdict := entity.ComplianceVerdict{
		Compliant: true,
		Issues:    []string{},
		Warnings:  []string{},
	}

	firstArr := c.firstCoveredArrival(it.Segments)
	lastDep := c.lastCoveredDeparture(it.Segments)

	if firstArr >= 0 {
		c.checkCritical(&verdict, &it.Segments[firstArr], "First US-arriving segment")
	}
	if lastDep >= 0 && lastDep != firstArr {
		c.checkCritical(&verdict, &it.Segments[lastDep], "Last US-departing segment")
	}

	for i := range it.Segments {
		if i == firstArr || i == lastDep {
			continue
		}
		seg := &it.Segments[i]
		if !c.touchesCovered(seg) {
			continue
		}
		if !c.eligible(seg) {
			verdict.Warnings = append(verdict.Warnings,
				fmt.Sprintf("Seg %d (%s->%s) on foreign carrier %s touches US soil",
					i+1, seg.DepAirport, seg.ArrAirport, seg.MarketingCarrier))
		}
	}

	return verdict
}

// checkCritical appends an issue and flips the verdict when a boundary
// segment is not on an eligible carrier or eligible codeshare.
func (c *ComplianceClassifier) checkCritical(verdict *entity.ComplianceVerdict, seg *entity.Segment, desc string) {
	if c.eligible(seg) {
		return
	}
	verdict.Compliant = false
	verdict.Issues = append(verdict.Issues,
		fmt.Sprintf("%s: %s->%s on %s (%s), needs US flag carrier or US codeshare",
			desc, seg.DepAirport, seg.ArrAirport, seg.MarketingCarrier, seg.AirlineName))
}

// eligible reports whether the segment satisfies the carrier rule: the
// marketing carrier is eligible, or an eligible codeshare is attached.
func (c *ComplianceClassifier) eligible(seg *entity.Segment) bool {
	if c.directory.IsEligibleCarrier(seg.MarketingCarrier) {
		return true
	}
	return seg.CodeshareCarrier != "" && c.directory.IsEligibleCarrier(seg.CodeshareCarrier)
}

func (c *ComplianceClassifier) touchesCovered(seg *entity.Segment) bool {
	return c.directory.IsCoveredAirport(seg.DepAirport) || c.directory.IsCoveredAirport(seg.ArrAirport)
}

// firstCoveredArrival returns the index of the first segment arriving in
// covered territory, or -1.
func (c *ComplianceClassifier) firstCoveredArrival(segments []entity.Segment) int {
	for i := range segments {
		if c.directory.IsCoveredAirport(segments[i].ArrAirport) {
			return i
		}
	}
	return -1
}

// lastCoveredDeparture returns the index of the last segment departing from
// covered territory, or -1.
func (c *ComplianceClassifier) lastCoveredDeparture(segments []entity.Segment) int {
	for i := len(segments) - 1; i >= 0; i-- {
		if c.directory.IsCoveredAirport(segments[i].DepAirport) {
			return i
		}
	}
	return -1
}
