package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicwatch/triage/internal/authenticity"
	"github.com/civicwatch/triage/internal/classifier"
	"github.com/civicwatch/triage/internal/data"
	"github.com/civicwatch/triage/internal/database"
	"github.com/civicwatch/triage/internal/domain"
	"github.com/civicwatch/triage/internal/logger"
	"github.com/civicwatch/triage/internal/telemetry"
)

// Handler handles HTTP requests for the triage API.
type Handler struct {
	engine     *classifier.Engine
	detector   *authenticity.Detector
	complaints *database.ComplaintsRepository
	telemetry  *telemetry.Provider
	logger     logger.Logger
	ready      func(c *gin.Context) error
}

// NewHandler creates a new API handler. The ready function is polled by the
// readiness endpoint; nil means always ready.
func NewHandler(
	engine *classifier.Engine,
	detector *authenticity.Detector,
	complaints *database.ComplaintsRepository,
	tp *telemetry.Provider,
	log logger.Logger,
	ready func(c *gin.Context) error,
) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		engine:     engine,
		detector:   detector,
		complaints: complaints,
		telemetry:  tp,
		logger:     log,
		ready:      ready,
	}
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.engine.Classify(c.Request.Context(), req.Title, req.Description)
	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// Authenticity handles POST /api/v1/authenticity.
func (h *Handler) Authenticity(c *gin.Context) {
	var req AuthenticityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.detector.Detect(c.Request.Context(), req.Title, req.Description, req.Location)
	c.JSON(http.StatusOK, AuthenticityResponse{Result: result})
}

// SubmitComplaint handles POST /api/v1/complaints. Submissions pass through
// the authenticity screen first; flagged ones are rejected with the reasons
// and never stored. Accepted submissions are classified and persisted.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Urgency != "" && !validUrgency(domain.Urgency(req.Urgency)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid urgency: " + req.Urgency})
		return
	}

	ctx := c.Request.Context()

	verdict := h.detector.Detect(ctx, req.Title, req.Description, req.Location)
	if verdict.IsFake && verdict.Label == domain.LabelLikelyFake {
		h.telemetry.RecordRejection()
		h.logger.Info("complaint rejected by authenticity screen",
			logger.Int("score", verdict.Score),
			logger.Any("flags", verdict.Flags))
		c.JSON(http.StatusUnprocessableEntity, RejectedResponse{
			Error:  "submission failed authenticity screening",
			Result: verdict,
		})
		return
	}

	classification := h.engine.Classify(ctx, req.Title, req.Description)

	source := req.Source
	if source == "" {
		source = domain.SourceWeb
	}

	complaint := &domain.Complaint{
		Title:               req.Title,
		Description:         req.Description,
		Location:            data.Canonicalize(req.Location),
		Source:              source,
		ReporterHandle:      req.ReporterHandle,
		Department:          classification.Department,
		Urgency:             classification.Urgency,
		Confidence:          classification.Confidence,
		Detected:            classification.Detected,
		SuggestedDepartment: classification.Department,
		SuggestedUrgency:    classification.Urgency,
		AuthenticityScore:   verdict.Score,
		AuthenticityLabel:   verdict.Label,
		AuthenticityFlags:   joinFlags(verdict.Flags),
		Status:              domain.StatusReceived,
	}
	if req.Department != "" {
		complaint.Department = req.Department
	}
	if req.Urgency != "" {
		complaint.Urgency = domain.Urgency(req.Urgency)
	}

	if err := h.complaints.Create(ctx, complaint); err != nil {
		h.logger.Error("failed to store complaint", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store complaint"})
		return
	}

	h.telemetry.RecordSubmission(complaint.Source)
	h.logger.Info("complaint submitted",
		logger.Int64("id", complaint.ID),
		logger.String("department", complaint.Department),
		logger.String("urgency", string(complaint.Urgency)),
		logger.String("authenticity_label", complaint.AuthenticityLabel))

	c.JSON(http.StatusCreated, ComplaintResponse{Complaint: complaint})
}

// ListComplaints handles GET /api/v1/complaints.
func (h *Handler) ListComplaints(c *gin.Context) {
	filter := database.ComplaintFilter{
		Department: c.Query("department"),
		Urgency:    domain.Urgency(c.Query("urgency")),
		Status:     domain.Status(c.Query("status")),
		Source:     c.Query("source"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: " + raw})
			return
		}
		filter.Limit = limit
	}

	complaints, err := h.complaints.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list complaints", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list complaints"})
		return
	}

	c.JSON(http.StatusOK, ComplaintsListResponse{
		Complaints: complaints,
		Total:      len(complaints),
	})
}

// GetComplaint handles GET /api/v1/complaints/:id.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	complaint, err := h.complaints.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		h.logger.Error("failed to get complaint", logger.Int64("id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get complaint"})
		return
	}

	c.JSON(http.StatusOK, ComplaintResponse{Complaint: complaint})
}

// UpdateStatus handles PATCH /api/v1/complaints/:id/status. Transitions are
// validated against the lifecycle; illegal moves return 409.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next := domain.Status(req.Status)
	if !next.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	ctx := c.Request.Context()

	current, err := h.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		h.logger.Error("failed to load complaint", logger.Int64("id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load complaint"})
		return
	}

	if !current.Status.CanTransitionTo(next) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "cannot move complaint from " + string(current.Status) + " to " + string(next),
		})
		return
	}

	updated, err := h.complaints.UpdateStatus(ctx, id, next)
	if err != nil {
		h.logger.Error("failed to update status", logger.Int64("id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	h.logger.Info("complaint status updated",
		logger.Int64("id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(next)))

	c.JSON(http.StatusOK, ComplaintResponse{Complaint: updated})
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.complaints.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// validUrgency reports whether u is a known urgency level.
func validUrgency(u domain.Urgency) bool {
	switch u {
	case domain.UrgencyLow, domain.UrgencyMedium, domain.UrgencyHigh:
		return true
	}
	return false
}
