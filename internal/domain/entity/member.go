package entity

// Member is a FlyRight member eligible to receive deal digests.
type Member struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Tier      string `json:"tier,omitempty"`
}

// Membership verification reason codes.
const (
	ReasonActive       = "active"
	ReasonDevMode      = "dev-mode"
	ReasonNotFound     = "not-found"
	ReasonTagMissing   = "tag-missing"
	ReasonUpstreamFail = "upstream-error"
)

// MembershipStatus is the result of verifying a member's access.
type MembershipStatus struct {
	Valid    bool    `json:"valid"`
	Reason   string  `json:"reason"`
	Tier     string  `json:"tier,omitempty"`
	Customer *Member `json:"customer,omitempty"`
}
