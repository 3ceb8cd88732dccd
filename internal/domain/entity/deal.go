package entity

// Deal is a transient record of a fare observed well below a route's rolling
// average. Deals are derived per scan and never persisted; the price history
// is the durable record.
type Deal struct {
	Route     string `json:"route"` // display name, e.g. "Sao Paulo -> Miami"
	Dep       string `json:"dep"`
	Arr       string `json:"arr"`
	Price     int    `json:"price"`
	AvgPrice  int    `json:"avgPrice"`
	Savings   int    `json:"savings"`
	PctOff    int    `json:"pctOff"`
	Date      string `json:"date"` // travel date of the observed fare
	Carrier   string `json:"carrier"`
	Stops     int    `json:"stops"`
	Compliant bool   `json:"compliant"`
	IsGateway bool   `json:"isGateway"` // route is a designated gateway route
}
