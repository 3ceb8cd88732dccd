package repository

// CarrierDirectory is the injected lookup service for carrier eligibility,
// codeshare partnerships and airport classification. Implementations load
// their tables up front so lookups stay cheap inside the classifier and
// assembler hot paths.
type CarrierDirectory interface {
	// IsEligibleCarrier reports whether the carrier satisfies the
	// Fly America rule for a covered-territory boundary segment.
	IsEligibleCarrier(code string) bool

	// CodesharePartners returns the eligible partners known to sell the
	// given marketing carrier's flights under their own code, best first.
	CodesharePartners(code string) []string

	// IsCoveredAirport reports whether the airport lies in covered
	// territory (US soil for the Fly America rule).
	IsCoveredAirport(code string) bool

	// IsGatewayAirport reports whether the airport is a designated
	// gateway (CA/MX) for creative business class routing.
	IsGatewayAirport(code string) bool
}
