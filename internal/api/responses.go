package api

import (
	"strings"

	"github.com/civicwatch/triage/internal/domain"
)

// ClassifyRequest represents a classification request.
type ClassifyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ClassifyResponse represents a classification response.
type ClassifyResponse struct {
	Result domain.ClassificationResult `json:"result"`
}

// AuthenticityRequest represents an authenticity screening request.
type AuthenticityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// AuthenticityResponse represents an authenticity screening response.
type AuthenticityResponse struct {
	Result domain.AuthenticityResult `json:"result"`
}

// SubmitComplaintRequest represents a citizen complaint submission.
// Department and Urgency are optional submitter overrides; when present they
// replace the suggested values on the stored complaint.
type SubmitComplaintRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Location       string `json:"location"`
	Source         string `json:"source"`
	ReporterHandle string `json:"reporter_handle"`
	Department     string `json:"department"`
	Urgency        string `json:"urgency"`
}

// RejectedResponse is returned when a submission fails the authenticity
// screen. The reasons are surfaced so the reporter can rephrase and retry.
type RejectedResponse struct {
	Error  string                    `json:"error"`
	Result domain.AuthenticityResult `json:"result"`
}

// ComplaintResponse wraps a single stored complaint.
type ComplaintResponse struct {
	Complaint *domain.Complaint `json:"complaint"`
}

// ComplaintsListResponse represents a list of complaints with metadata.
type ComplaintsListResponse struct {
	Complaints []domain.Complaint `json:"complaints"`
	Total      int                `json:"total"`
}

// UpdateStatusRequest represents a request to move a complaint through its
// lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// joinFlags flattens authenticity flags into the stored comma-separated form.
func joinFlags(flags []string) string {
	return strings.Join(flags, ",")
}
