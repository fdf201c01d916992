package scraper

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicwatch/triage/internal/authenticity"
	"github.com/civicwatch/triage/internal/classifier"
	"github.com/civicwatch/triage/internal/domain"
)

// memStore collects created complaints in memory.
type memStore struct {
	mu         sync.Mutex
	complaints []domain.Complaint
}

func (s *memStore) Create(_ context.Context, c *domain.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = int64(len(s.complaints) + 1)
	s.complaints = append(s.complaints, *c)
	return nil
}

func (s *memStore) all() []domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Complaint(nil), s.complaints...)
}

func newTestPoller(feed Feed, store ComplaintStore, batchSize int) *Poller {
	return NewPoller(
		feed,
		classifier.NewEngine(nil, nil),
		authenticity.NewDetector(nil, nil),
		store,
		nil,
		nil,
		nil,
		Config{BatchSize: batchSize},
	)
}

func TestPoller_ProcessBatch(t *testing.T) {
	posts := []domain.SocialPost{
		{
			ID:       "p1",
			Platform: domain.SourceTwitter,
			Handle:   "@resident",
			Title:    "Streetlight broken near the park",
			Body:     "The streetlight near the park entrance has been broken for two weeks",
			Location: "Lajpat Nagar",
		},
		{
			ID:       "p2",
			Platform: domain.SourceWhatsApp,
			Handle:   "Colony Group",
			Title:    "test",
			Body:     "lol test",
			Location: "",
		},
	}

	store := &memStore{}
	poller := newTestPoller(NewDemoFeedWithPosts(posts), store, len(posts))

	imported, rejected, err := poller.ProcessBatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, rejected)

	stored := store.all()
	require.Len(t, stored, 1)
	assert.Equal(t, "Streetlight broken near the park", stored[0].Title)
	assert.Equal(t, domain.SourceTwitter, stored[0].Source)
	assert.Equal(t, "@resident", stored[0].ReporterHandle)
	assert.Equal(t, "Infrastructure", stored[0].Department)
	assert.Equal(t, "lajpat-nagar", stored[0].Location)
	assert.Equal(t, domain.StatusReceived, stored[0].Status)
}

func TestPoller_ProcessBatch_EmptyFeed(t *testing.T) {
	store := &memStore{}
	poller := newTestPoller(NewDemoFeedWithPosts(nil), store, 3)

	imported, rejected, err := poller.ProcessBatch(context.Background())
	require.NoError(t, err)

	assert.Zero(t, imported)
	assert.Zero(t, rejected)
	assert.Empty(t, store.all())
}

func TestPoller_ProcessBatch_DrainsFeed(t *testing.T) {
	store := &memStore{}
	feed := NewDemoFeed()
	poller := newTestPoller(feed, store, len(demoPosts))

	_, _, err := poller.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, feed.Remaining())

	// A drained feed yields nothing on later passes.
	imported, rejected, err := poller.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, imported)
	assert.Zero(t, rejected)
}

func TestDemoFeed_Batches(t *testing.T) {
	feed := NewDemoFeed()
	assert.Equal(t, len(demoPosts), feed.Remaining())

	first, err := feed.Next(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Equal(t, demoPosts[0].ID, first[0].ID)

	second, err := feed.Next(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, second, 3)
	assert.Equal(t, demoPosts[3].ID, second[0].ID)

	assert.Equal(t, len(demoPosts)-6, feed.Remaining())
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(1, 1, nil)

	assert.True(t, limiter.Allow())
	// Burst of one is spent, the next call must be throttled.
	assert.False(t, limiter.Allow())
}
