package domain

import "time"

// Status is the lifecycle state of a complaint.
type Status string

// Complaint lifecycle states.
const (
	StatusReceived     Status = "received"
	StatusAcknowledged Status = "acknowledged"
	StatusInProgress   Status = "in_progress"
	StatusResolved     Status = "resolved"
	StatusRejected     Status = "rejected"
)

// Complaint sources.
const (
	SourceWeb      = "web"
	SourceTwitter  = "twitter"
	SourceWhatsApp = "whatsapp"
	SourceEmail    = "email"
)

// statusTransitions maps each status to the states it may move to.
var statusTransitions = map[Status][]Status{
	StatusReceived:     {StatusAcknowledged, StatusInProgress, StatusRejected},
	StatusAcknowledged: {StatusInProgress, StatusResolved, StatusRejected},
	StatusInProgress:   {StatusResolved, StatusRejected},
	StatusResolved:     {},
	StatusRejected:     {},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Complaint is a citizen-reported civic issue together with the triage
// verdicts recorded at submission time.
type Complaint struct {
	ID             int64  `db:"id"              json:"id"`
	Title          string `db:"title"           json:"title"`
	Description    string `db:"description"     json:"description"`
	Location       string `db:"location"        json:"location"`
	Source         string `db:"source"          json:"source"`
	ReporterHandle string `db:"reporter_handle" json:"reporter_handle,omitempty"`

	// Classifier verdict. Department/Urgency hold the effective values
	// (submitter overrides applied); Suggested* preserve the engine output
	// so the scorecard can report rule accuracy.
	Department          string  `db:"department"           json:"department,omitempty"`
	Urgency             Urgency `db:"urgency"              json:"urgency"`
	Confidence          int     `db:"confidence"           json:"confidence"`
	Detected            bool    `db:"detected"             json:"detected"`
	SuggestedDepartment string  `db:"suggested_department" json:"suggested_department,omitempty"`
	SuggestedUrgency    Urgency `db:"suggested_urgency"    json:"suggested_urgency"`

	// Authenticity verdict at submission time.
	AuthenticityScore int    `db:"authenticity_score" json:"authenticity_score"`
	AuthenticityLabel string `db:"authenticity_label" json:"authenticity_label"`
	AuthenticityFlags string `db:"authenticity_flags" json:"authenticity_flags,omitempty"`

	Status     Status     `db:"status"      json:"status"`
	CreatedAt  time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"  json:"updated_at"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}

// ScorecardStats summarizes the complaint backlog for the public scorecard.
type ScorecardStats struct {
	Total          int            `json:"total"`
	Resolved       int            `json:"resolved"`
	ResolutionRate float64        `json:"resolution_rate"`
	ByDepartment   map[string]int `json:"by_department"`
	ByUrgency      map[string]int `json:"by_urgency"`
	AvgConfidence  float64        `json:"avg_confidence"`
}
