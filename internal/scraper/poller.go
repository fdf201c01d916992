package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/civicwatch/triage/internal/authenticity"
	"github.com/civicwatch/triage/internal/classifier"
	"github.com/civicwatch/triage/internal/data"
	"github.com/civicwatch/triage/internal/domain"
	"github.com/civicwatch/triage/internal/logger"
	"github.com/civicwatch/triage/internal/telemetry"
)

const (
	defaultBatchSize    = 3
	defaultPollInterval = 15 * time.Second
)

// ComplaintStore persists triaged complaints.
type ComplaintStore interface {
	Create(ctx context.Context, c *domain.Complaint) error
}

// Poller pulls posts from the social feed on an interval, screens and
// classifies them, and stores the ones that pass.
type Poller struct {
	feed      Feed
	engine    *classifier.Engine
	detector  *authenticity.Detector
	store     ComplaintStore
	limiter   *RateLimiter
	telemetry *telemetry.Provider
	logger    logger.Logger

	batchSize    int
	pollInterval time.Duration
	running      bool
	stopChan     chan struct{}
}

// Config holds poller configuration.
type Config struct {
	BatchSize    int
	PollInterval time.Duration
}

// NewPoller creates a new scraper poller.
func NewPoller(
	feed Feed,
	engine *classifier.Engine,
	detector *authenticity.Detector,
	store ComplaintStore,
	limiter *RateLimiter,
	tp *telemetry.Provider,
	log logger.Logger,
	cfg Config,
) *Poller {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Poller{
		feed:         feed,
		engine:       engine,
		detector:     detector,
		store:        store,
		limiter:      limiter,
		telemetry:    tp,
		logger:       log,
		batchSize:    cfg.BatchSize,
		pollInterval: cfg.PollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins polling in a background goroutine.
func (p *Poller) Start(ctx context.Context) error {
	if p.running {
		return errors.New("poller is already running")
	}
	p.running = true

	p.logger.Info("scraper poller starting",
		logger.Int("batch_size", p.batchSize),
		logger.Duration("poll_interval", p.pollInterval))

	go p.run(ctx)
	return nil
}

// Stop stops the poller.
func (p *Poller) Stop() {
	if !p.running {
		return
	}
	p.logger.Info("scraper poller stopping")
	close(p.stopChan)
	p.running = false
}

// run is the main polling loop.
func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	// Process immediately on start
	if _, _, err := p.ProcessBatch(ctx); err != nil {
		p.logger.Error("failed to process feed batch on startup", logger.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scraper poller stopped, context cancelled")
			return
		case <-p.stopChan:
			p.logger.Info("scraper poller stopped")
			return
		case <-ticker.C:
			if _, _, err := p.ProcessBatch(ctx); err != nil {
				p.logger.Error("failed to process feed batch", logger.Error(err))
			}
		}
	}
}

// ProcessBatch pulls one batch from the feed and triages each post. It
// returns the number of posts imported and rejected.
func (p *Poller) ProcessBatch(ctx context.Context) (imported, rejected int, err error) {
	if p.limiter != nil {
		if waitErr := p.limiter.Wait(ctx); waitErr != nil {
			return 0, 0, fmt.Errorf("rate limit wait: %w", waitErr)
		}
	}

	posts, err := p.feed.Next(ctx, p.batchSize)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch feed batch: %w", err)
	}
	if len(posts) == 0 {
		p.logger.Debug("feed empty, nothing to process")
		return 0, 0, nil
	}

	for _, post := range posts {
		if importErr := p.processPost(ctx, post); importErr != nil {
			if errors.Is(importErr, errPostRejected) {
				rejected++
				continue
			}
			return imported, rejected, importErr
		}
		imported++
	}

	p.telemetry.RecordScrape(imported, rejected)
	p.logger.Info("feed batch processed",
		logger.Int("imported", imported),
		logger.Int("rejected", rejected))

	return imported, rejected, nil
}

// errPostRejected marks posts dropped by the authenticity screen.
var errPostRejected = errors.New("post rejected by authenticity screen")

// processPost screens, classifies and stores a single post.
func (p *Poller) processPost(ctx context.Context, post domain.SocialPost) error {
	verdict := p.detector.Detect(ctx, post.Title, post.Body, post.Location)
	if verdict.IsFake && verdict.Label == domain.LabelLikelyFake {
		p.logger.Info("feed post rejected",
			logger.String("post_id", post.ID),
			logger.String("platform", post.Platform),
			logger.Any("flags", verdict.Flags))
		return errPostRejected
	}

	classification := p.engine.Classify(ctx, post.Title, post.Body)

	complaint := &domain.Complaint{
		Title:               post.Title,
		Description:         post.Body,
		Location:            data.Canonicalize(post.Location),
		Source:              post.Platform,
		ReporterHandle:      post.Handle,
		Department:          classification.Department,
		Urgency:             classification.Urgency,
		Confidence:          classification.Confidence,
		Detected:            classification.Detected,
		SuggestedDepartment: classification.Department,
		SuggestedUrgency:    classification.Urgency,
		AuthenticityScore:   verdict.Score,
		AuthenticityLabel:   verdict.Label,
		AuthenticityFlags:   strings.Join(verdict.Flags, ","),
		Status:              domain.StatusReceived,
	}

	if err := p.store.Create(ctx, complaint); err != nil {
		return fmt.Errorf("store complaint from post %s: %w", post.ID, err)
	}

	p.logger.Debug("feed post imported",
		logger.String("post_id", post.ID),
		logger.Int64("complaint_id", complaint.ID),
		logger.String("department", complaint.Department))

	return nil
}
