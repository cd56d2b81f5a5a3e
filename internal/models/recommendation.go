package models

// Urgency levels a recommendation may carry.
const (
	UrgencyRoutine   = "routine"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

// Recommendation is the advisor's answer: a single recommended facility with
// a justification, plus up to two alternatives.
type Recommendation struct {
	RecommendedName  string   `json:"recommendedName"`
	Reason           string   `json:"reason"`
	UrgencyLevel     string   `json:"urgencyLevel"`
	SuggestedTests   []string `json:"suggestedTests"`
	AlternativeNames []string `json:"alternativeNames"`
}

// ValidUrgency reports whether level is one of the known urgency values.
func ValidUrgency(level string) bool {
	return level == UrgencyRoutine || level == UrgencyUrgent || level == UrgencyEmergency
}
