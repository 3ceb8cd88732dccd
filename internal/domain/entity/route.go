package entity

// MonitoredRoute is one route the fare monitor scans each cycle.
type MonitoredRoute struct {
	Dep     string
	Arr     string
	Name    string
	Gateway bool // designated gateway route (creative business class)
}

// DefaultMonitoredRoutes returns the seeded scan list: key overseas posts to
// US gateway cities in business class, plus designated gateway routes.
func DefaultMonitoredRoutes() []MonitoredRoute {
	return []MonitoredRoute{
		// South America
		{Dep: "GRU", Arr: "MIA", Name: "Sao Paulo -> Miami"},
		{Dep: "GRU", Arr: "JFK", Name: "Sao Paulo -> New York"},
		{Dep: "GRU", Arr: "IAD", Name: "Sao Paulo -> Washington"},
		{Dep: "GIG", Arr: "MIA", Name: "Rio -> Miami"},
		{Dep: "BSB", Arr: "MIA", Name: "Brasilia -> Miami"},
		{Dep: "BOG", Arr: "MIA", Name: "Bogota -> Miami"},
		{Dep: "BOG", Arr: "IAD", Name: "Bogota -> Washington"},
		{Dep: "LIM", Arr: "MIA", Name: "Lima -> Miami"},
		{Dep: "SCL", Arr: "MIA", Name: "Santiago -> Miami"},
		{Dep: "EZE", Arr: "MIA", Name: "Buenos Aires -> Miami"},
		{Dep: "QUI", Arr: "MIA", Name: "Quito -> Miami"},

		// Central America / Caribbean
		{Dep: "PTY", Arr: "MIA", Name: "Panama City -> Miami"},
		{Dep: "SAL", Arr: "IAD", Name: "San Salvador -> Washington"},
		{Dep: "SJO", Arr: "MIA", Name: "San Jose -> Miami"},

		// Africa
		{Dep: "NBO", Arr: "JFK", Name: "Nairobi -> New York"},
		{Dep: "JNB", Arr: "JFK", Name: "Johannesburg -> New York"},
		{Dep: "ADD", Arr: "IAD", Name: "Addis Ababa -> Washington"},
		{Dep: "ACC", Arr: "JFK", Name: "Accra -> New York"},
		{Dep: "LOS", Arr: "JFK", Name: "Lagos -> New York"},
		{Dep: "DAR", Arr: "JFK", Name: "Dar es Salaam -> New York"},

		// Europe
		{Dep: "LHR", Arr: "IAD", Name: "London -> Washington"},
		{Dep: "CDG", Arr: "JFK", Name: "Paris -> New York"},
		{Dep: "FRA", Arr: "IAD", Name: "Frankfurt -> Washington"},
		{Dep: "FCO", Arr: "JFK", Name: "Rome -> New York"},

		// Asia
		{Dep: "BKK", Arr: "JFK", Name: "Bangkok -> New York"},
		{Dep: "MNL", Arr: "LAX", Name: "Manila -> Los Angeles"},
		{Dep: "DEL", Arr: "JFK", Name: "Delhi -> New York"},
		{Dep: "NRT", Arr: "LAX", Name: "Tokyo -> Los Angeles"},
		{Dep: "ICN", Arr: "LAX", Name: "Seoul -> Los Angeles"},
		{Dep: "PEK", Arr: "JFK", Name: "Beijing -> New York"},

		// Middle East
		{Dep: "TLV", Arr: "JFK", Name: "Tel Aviv -> New York"},
		{Dep: "AMM", Arr: "JFK", Name: "Amman -> New York"},
		{Dep: "RUH", Arr: "IAD", Name: "Riyadh -> Washington"},
		{Dep: "AUH", Arr: "JFK", Name: "Abu Dhabi -> New York"},

		// Gateway routes (creative business class)
		{Dep: "GRU", Arr: "YYZ", Name: "Sao Paulo -> Toronto (Gateway)", Gateway: true},
		{Dep: "GRU", Arr: "YUL", Name: "Sao Paulo -> Montreal (Gateway)", Gateway: true},
		{Dep: "BOG", Arr: "MEX", Name: "Bogota -> Mexico City (Gateway)", Gateway: true},
		{Dep: "LIM", Arr: "MEX", Name: "Lima -> Mexico City (Gateway)", Gateway: true},
	}
}
