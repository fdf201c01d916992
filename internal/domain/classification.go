// Package domain defines the core data types shared across the triage service.
package domain

// Urgency is the inferred urgency level of a complaint.
type Urgency string

// Urgency levels, lowest to highest.
const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Confidence tiers emitted by the classifier. These are discrete rule-strength
// tiers, not probabilities; downstream consumers key off the literal values.
const (
	ConfidenceNone   = 0
	ConfidenceWeak   = 60
	ConfidenceMedium = 80
	ConfidenceStrong = 95
)

// ClassificationResult is the classifier's verdict for a single complaint.
type ClassificationResult struct {
	Department string  `json:"department,omitempty"`
	Urgency    Urgency `json:"urgency"`
	Confidence int     `json:"confidence"`
	Detected   bool    `json:"detected"`
}

// Authenticity labels derived from the authenticity score.
const (
	LabelLikelyGenuine = "Likely Genuine"
	LabelSuspicious    = "Suspicious"
	LabelLikelyFake    = "Likely Fake"
)

// AuthenticityResult is the authenticity scorer's verdict for a submission.
// Reasons and Flags are parallel slices in fixed signal-evaluation order.
type AuthenticityResult struct {
	IsFake  bool     `json:"is_fake"`
	Reasons []string `json:"reasons"`
	Flags   []string `json:"flags"`
	Score   int      `json:"score"`
	Label   string   `json:"label"`
}
