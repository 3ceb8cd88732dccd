package repository

import "flyright-service/internal/domain/repository"

// Default lookup tables for the Fly America rule. These ship in code so the
// service runs without a carrier database; the GORM directory supersedes
// them when PostgreSQL is configured.

// usCarriers are the US flag carriers (IATA 2-letter codes).
var usCarriers = []string{"AA", "DL", "UA", "WN", "B6", "AS", "NK", "F9", "HA", "SY"}

// codeshareMap maps foreign carriers to US partners that sell their flights
// under a US code, best partner first.
var codeshareMap = map[string][]string{
	"LA": {"AA"}, // LATAM -> American
	"AV": {"UA"}, // Avianca -> United
	"AC": {"UA"}, // Air Canada -> United
	"AM": {"DL"}, // Aeromexico -> Delta
	"BA": {"AA"}, // British Airways -> American
	"IB": {"AA"}, // Iberia -> American
	"QF": {"AA"}, // Qantas -> American
	"LH": {"UA"}, // Lufthansa -> United
	"AF": {"DL"}, // Air France -> Delta
	"KL": {"DL"}, // KLM -> Delta
	"AR": {"AA"}, // Aerolineas Argentinas -> American
	"CM": {"UA"}, // Copa -> United
	"JL": {"AA"}, // Japan Airlines -> American
	"NH": {"UA"}, // ANA -> United
	"KE": {"DL"}, // Korean Air -> Delta
	"VS": {"DL"}, // Virgin Atlantic -> Delta
}

// usAirports are common US airports. Not exhaustive; extend as routes are
// added to the monitor.
var usAirports = []string{
	"ATL", "LAX", "ORD", "DFW", "DEN", "JFK", "SFO", "SEA", "LAS", "MCO",
	"EWR", "MIA", "CLT", "PHX", "IAH", "BOS", "MSP", "FLL", "DTW", "PHL",
	"LGA", "BWI", "SLC", "DCA", "IAD", "SAN", "TPA", "BNA", "AUS", "STL",
	"HNL", "PDX", "MCI", "RDU", "CLE", "SMF", "MKE", "OAK", "SNA", "IND",
	"PIT", "CMH", "SAT", "ABQ", "SJC", "RSW", "TUS", "OGG", "PBI", "RIC",
	"CVG", "BDL", "JAX", "OMA", "BUF", "BUR", "ONT", "PVD", "ORF", "GRR",
	"TUL", "OKC", "ALB", "LIT", "SDF", "MSY", "MEM", "RNO", "ELP", "BOI",
	"ANC", "GSO", "DSM", "ROC", "TYS", "CHS", "SYR", "SAV", "FNT",
}

// gatewayAirports are CA/MX gateways used for creative business class.
var gatewayAirports = []string{
	"YYZ", "YUL", "YVR", "YOW", "YYC", "YEG", "YWG", // Canada
	"MEX", "CUN", "GDL", "MTY", "SJD", "PVR", // Mexico
}

// StaticCarrierDirectory implements CarrierDirectory from in-code tables.
type StaticCarrierDirectory struct {
	eligible   map[string]bool
	codeshares map[string][]string
	covered    map[string]bool
	gateways   map[string]bool
}

// NewStaticCarrierDirectory creates the default directory
func NewStaticCarrierDirectory() repository.CarrierDirectory {
	d := &StaticCarrierDirectory{
		eligible:   make(map[string]bool, len(usCarriers)),
		codeshares: codeshareMap,
		covered:    make(map[string]bool, len(usAirports)),
		gateways:   make(map[string]bool, len(gatewayAirports)),
	}
	for _, c := range usCarriers {
		d.eligible[c] = true
	}
	for _, a := range usAirports {
		d.covered[a] = true
	}
	for _, a := range gatewayAirports {
		d.gateways[a] = true
	}
	return d
}

// IsEligibleCarrier reports whether the carrier is a US flag carrier
func (d *StaticCarrierDirectory) IsEligibleCarrier(code string) bool {
	return d.eligible[code]
}

// CodesharePartners returns known US codeshare partners for a carrier
func (d *StaticCarrierDirectory) CodesharePartners(code string) []string {
	return d.codeshares[code]
}

// IsCoveredAirport reports whether the airport is on US soil
func (d *StaticCarrierDirectory) IsCoveredAirport(code string) bool {
	return d.covered[code]
}

// IsGatewayAirport reports whether the airport is a CA/MX gateway
func (d *StaticCarrierDirectory) IsGatewayAirport(code string) bool {
	return d.gateways[code]
}
