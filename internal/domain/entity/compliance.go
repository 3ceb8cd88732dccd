package entity

// ComplianceVerdict is the result of evaluating an itinerary against the
// Fly America carrier-eligibility rule. Issues make the itinerary
// non-compliant; warnings are advisory only.
type ComplianceVerdict struct {
	Compliant bool     `bson:"compliant" json:"compliant"`
	Issues    []string `bson:"issues" json:"issues"`
	Warnings  []string `bson:"warnings" json:"warnings"`
}
