package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/civicwatch/triage/internal/domain"
)

// ErrNotFound is returned when no complaint matches the requested id.
var ErrNotFound = errors.New("complaint not found")

const defaultListLimit = 100

// ComplaintsRepository handles database operations for complaints.
type ComplaintsRepository struct {
	db *sqlx.DB
}

// NewComplaintsRepository creates a new complaints repository.
func NewComplaintsRepository(db *sqlx.DB) *ComplaintsRepository {
	return &ComplaintsRepository{db: db}
}

// ComplaintFilter narrows List results. Zero values mean no filter.
type ComplaintFilter struct {
	Department string
	Urgency    domain.Urgency
	Status     domain.Status
	Source     string
	Limit      int
}

// Create inserts a new complaint and fills in its assigned ID.
func (r *ComplaintsRepository) Create(ctx context.Context, c *domain.Complaint) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = domain.StatusReceived
	}

	const insert = `
		INSERT INTO complaints (
			title, description, location, source, reporter_handle,
			department, urgency, confidence, detected,
			suggested_department, suggested_urgency,
			authenticity_score, authenticity_label, authenticity_flags,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []any{
		c.Title, c.Description, c.Location, c.Source, c.ReporterHandle,
		c.Department, c.Urgency, c.Confidence, c.Detected,
		c.SuggestedDepartment, c.SuggestedUrgency,
		c.AuthenticityScore, c.AuthenticityLabel, c.AuthenticityFlags,
		c.Status, c.CreatedAt, c.UpdatedAt,
	}

	if r.db.DriverName() == DriverPostgres {
		query := r.db.Rebind(insert + " RETURNING id")
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID); err != nil {
			return fmt.Errorf("failed to create complaint: %w", err)
		}
		return nil
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(insert), args...)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	c.ID = id
	return nil
}

// GetByID retrieves a single complaint.
func (r *ComplaintsRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	var c domain.Complaint
	query := r.db.Rebind(`SELECT * FROM complaints WHERE id = ?`)
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get complaint %d: %w", id, err)
	}
	return &c, nil
}

// List returns complaints matching the filter, newest first.
func (r *ComplaintsRepository) List(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	var conditions []string
	var args []any

	if filter.Department != "" {
		conditions = append(conditions, "department = ?")
		args = append(args, filter.Department)
	}
	if filter.Urgency != "" {
		conditions = append(conditions, "urgency = ?")
		args = append(args, filter.Urgency)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, filter.Source)
	}

	query := "SELECT * FROM complaints"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)

	complaints := []domain.Complaint{}
	if err := r.db.SelectContext(ctx, &complaints, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus moves a complaint to the given status. Lifecycle validation is
// the caller's concern; the repository records the change and stamps
// resolved_at when the complaint is resolved.
func (r *ComplaintsRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Complaint, error) {
	now := time.Now().UTC()

	var resolvedAt *time.Time
	if status == domain.StatusResolved {
		resolvedAt = &now
	}

	query := r.db.Rebind(`
		UPDATE complaints
		SET status = ?, updated_at = ?, resolved_at = COALESCE(?, resolved_at)
		WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, status, now, resolvedAt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update complaint %d status: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Stats aggregates the backlog for the public scorecard.
func (r *ComplaintsRepository) Stats(ctx context.Context) (*domain.ScorecardStats, error) {
	stats := &domain.ScorecardStats{
		ByDepartment: make(map[string]int),
		ByUrgency:    make(map[string]int),
	}

	var totals struct {
		Total         int             `db:"total"`
		Resolved      int             `db:"resolved"`
		AvgConfidence sql.NullFloat64 `db:"avg_confidence"`
	}
	totalsQuery := `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved,
		       AVG(CASE WHEN detected THEN confidence END) AS avg_confidence
		FROM complaints`
	if err := r.db.GetContext(ctx, &totals, totalsQuery); err != nil {
		return nil, fmt.Errorf("failed to load complaint totals: %w", err)
	}
	stats.Total = totals.Total
	stats.Resolved = totals.Resolved
	if totals.Total > 0 {
		stats.ResolutionRate = float64(totals.Resolved) / float64(totals.Total)
	}
	if totals.AvgConfidence.Valid {
		stats.AvgConfidence = totals.AvgConfidence.Float64
	}

	type bucket struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}

	var byDept []bucket
	deptQuery := `
		SELECT department AS key, COUNT(*) AS count
		FROM complaints
		WHERE department <> ''
		GROUP BY department`
	if err := r.db.SelectContext(ctx, &byDept, deptQuery); err != nil {
		return nil, fmt.Errorf("failed to load department stats: %w", err)
	}
	for _, b := range byDept {
		stats.ByDepartment[b.Key] = b.Count
	}

	var byUrgency []bucket
	urgencyQuery := `
		SELECT urgency AS key, COUNT(*) AS count
		FROM complaints
		GROUP BY urgency`
	if err := r.db.SelectContext(ctx, &byUrgency, urgencyQuery); err != nil {
		return nil, fmt.Errorf("failed to load urgency stats: %w", err)
	}
	for _, b := range byUrgency {
		stats.ByUrgency[b.Key] = b.Count
	}

	return stats, nil
}
