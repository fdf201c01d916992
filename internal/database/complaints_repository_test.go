package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicwatch/triage/internal/domain"
)

func setupTestRepo(t *testing.T) *ComplaintsRepository {
	t.Helper()

	db, err := Open(Config{
		Driver: DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "triage_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return NewComplaintsRepository(db)
}

func testComplaint() *domain.Complaint {
	return &domain.Complaint{
		Title:               "Streetlight broken",
		Description:         "The streetlight has been broken for weeks",
		Location:            "connaught-place",
		Source:              domain.SourceWeb,
		Department:          "Infrastructure",
		Urgency:             domain.UrgencyHigh,
		Confidence:          80,
		Detected:            true,
		SuggestedDepartment: "Infrastructure",
		SuggestedUrgency:    domain.UrgencyHigh,
		AuthenticityScore:   100,
		AuthenticityLabel:   domain.LabelLikelyGenuine,
	}
}

func TestComplaintsRepository_CreateAndGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	c := testComplaint()
	require.NoError(t, repo.Create(ctx, c))

	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, domain.StatusReceived, c.Status)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Title, got.Title)
	assert.Equal(t, c.Department, got.Department)
	assert.Equal(t, c.Urgency, got.Urgency)
	assert.Equal(t, c.AuthenticityScore, got.AuthenticityScore)
	assert.True(t, got.Detected)
	assert.Nil(t, got.ResolvedAt)
}

func TestComplaintsRepository_GetByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplaintsRepository_List_Filters(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	infra := testComplaint()
	require.NoError(t, repo.Create(ctx, infra))

	roads := testComplaint()
	roads.Title = "Pothole on MG Road"
	roads.Department = "Roads"
	roads.Urgency = domain.UrgencyMedium
	roads.Source = domain.SourceTwitter
	require.NoError(t, repo.Create(ctx, roads))

	all, err := repo.List(ctx, ComplaintFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byDept, err := repo.List(ctx, ComplaintFilter{Department: "Roads"})
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	assert.Equal(t, roads.ID, byDept[0].ID)

	byUrgency, err := repo.List(ctx, ComplaintFilter{Urgency: domain.UrgencyHigh})
	require.NoError(t, err)
	require.Len(t, byUrgency, 1)
	assert.Equal(t, infra.ID, byUrgency[0].ID)

	bySource, err := repo.List(ctx, ComplaintFilter{Source: domain.SourceTwitter})
	require.NoError(t, err)
	require.Len(t, bySource, 1)
	assert.Equal(t, roads.ID, bySource[0].ID)

	none, err := repo.List(ctx, ComplaintFilter{Department: "Water"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestComplaintsRepository_List_NewestFirstAndLimit(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var ids []int64
	for range 3 {
		c := testComplaint()
		require.NoError(t, repo.Create(ctx, c))
		ids = append(ids, c.ID)
	}

	got, err := repo.List(ctx, ComplaintFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[1], got[1].ID)
}

func TestComplaintsRepository_UpdateStatus(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	c := testComplaint()
	require.NoError(t, repo.Create(ctx, c))

	updated, err := repo.UpdateStatus(ctx, c.ID, domain.StatusAcknowledged)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAcknowledged, updated.Status)
	assert.Nil(t, updated.ResolvedAt)

	resolved, err := repo.UpdateStatus(ctx, c.ID, domain.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.False(t, resolved.ResolvedAt.IsZero())
}

func TestComplaintsRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.UpdateStatus(context.Background(), 42, domain.StatusResolved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplaintsRepository_Stats(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	infra := testComplaint() // detected, confidence 80, urgency high
	require.NoError(t, repo.Create(ctx, infra))

	roads := testComplaint()
	roads.Department = "Roads"
	roads.Confidence = 60
	roads.Urgency = domain.UrgencyLow
	require.NoError(t, repo.Create(ctx, roads))

	undetected := testComplaint()
	undetected.Department = ""
	undetected.Detected = false
	undetected.Confidence = 0
	undetected.Urgency = domain.UrgencyLow
	require.NoError(t, repo.Create(ctx, undetected))

	_, err := repo.UpdateStatus(ctx, infra.ID, domain.StatusResolved)
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Resolved)
	assert.InDelta(t, 1.0/3.0, stats.ResolutionRate, 0.001)
	assert.Equal(t, map[string]int{"Infrastructure": 1, "Roads": 1}, stats.ByDepartment)
	assert.Equal(t, map[string]int{"high": 1, "low": 2}, stats.ByUrgency)
	// Average confidence only counts detected complaints.
	assert.InDelta(t, 70.0, stats.AvgConfidence, 0.001)
}
