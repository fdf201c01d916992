// Package classifier infers the responsible department and urgency level for
// civic complaints using weighted whole-word keyword matching.
package classifier

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/civicwatch/triage/internal/domain"
	"github.com/civicwatch/triage/internal/logger"
	"github.com/civicwatch/triage/internal/telemetry"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Urgency thresholds: two high hits escalate straight to high, a single high
// hit or two medium hits land on medium.
const (
	highUrgencyMinHits   = 2
	mediumUrgencyMinHits = 2
)

// Confidence tier boundaries off the winning department score.
const (
	strongScoreMin = 3
	mediumScore    = 2
)

// departmentMatcher binds a department name to its compiled keyword set.
type departmentMatcher struct {
	name string
	set  *keywordSet
}

// Engine is the rule-based complaint classifier. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	departments []departmentMatcher
	high        *keywordSet
	medium      *keywordSet

	// prefilter is an Aho-Corasick automaton over every department keyword.
	// Substring hits are a superset of whole-word matches, so a prefilter
	// miss proves all department scores are zero without running the
	// per-keyword patterns.
	prefilter *ahocorasick.Matcher

	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewEngine compiles the static rule tables into a classification engine.
func NewEngine(log logger.Logger, tp *telemetry.Provider) *Engine {
	if log == nil {
		log = logger.NewNop()
	}

	e := &Engine{
		high:      newKeywordSet(highUrgencyKeywords),
		medium:    newKeywordSet(mediumUrgencyKeywords),
		logger:    log,
		telemetry: tp,
	}

	seen := make(map[string]bool)
	var allKeywords []string
	for _, rule := range departmentRules {
		set := newKeywordSet(rule.Keywords)
		e.departments = append(e.departments, departmentMatcher{name: rule.Name, set: set})
		for _, kw := range set.keywords {
			if !seen[kw] {
				seen[kw] = true
				allKeywords = append(allKeywords, kw)
			}
		}
	}
	e.prefilter = ahocorasick.NewStringMatcher(allKeywords)

	log.Info("classification engine initialized",
		logger.Int("departments", len(e.departments)),
		logger.Int("keywords", len(allKeywords)))

	return e
}

// Classify infers the responsible department, an urgency level, and a
// discrete confidence tier from free-text complaint fields. It is total over
// all string inputs: empty text yields an undetected result with low urgency.
func (e *Engine) Classify(ctx context.Context, title, description string) domain.ClassificationResult {
	start := time.Now()
	if e.telemetry != nil {
		var span trace.Span
		_, span = e.telemetry.Tracer.Start(ctx, "classifier.Classify")
		defer span.End()
		defer func() {
			span.SetAttributes(attribute.Int64("duration_us", time.Since(start).Microseconds()))
		}()
	}

	text := strings.ToLower(title + " " + description)

	department, score := e.detectDepartment(text)

	result := domain.ClassificationResult{
		Department: department,
		Urgency:    e.detectUrgency(text),
		Confidence: confidenceFor(score),
		Detected:   score > 0,
	}

	e.telemetry.RecordClassification(result.Department, string(result.Urgency), time.Since(start))
	e.logger.Debug("complaint classified",
		logger.String("department", result.Department),
		logger.String("urgency", string(result.Urgency)),
		logger.Int("confidence", result.Confidence),
		logger.Int("department_score", score))

	return result
}

// detectDepartment scores every department's keyword set against the text
// and returns the strictly-highest scorer. Ties keep the earlier department
// in table order. A zero score means no department.
func (e *Engine) detectDepartment(text string) (string, int) {
	if e.prefilter != nil && len(e.prefilter.Match([]byte(text))) == 0 {
		return "", 0
	}

	bestName := ""
	bestScore := 0
	for _, d := range e.departments {
		if score := d.set.score(text); score > bestScore {
			bestScore = score
			bestName = d.name
		}
	}
	return bestName, bestScore
}

// detectUrgency scores the text against the high and medium urgency lists.
// It is independent of department detection.
func (e *Engine) detectUrgency(text string) domain.Urgency {
	highScore := e.high.score(text)
	medScore := e.medium.score(text)

	switch {
	case highScore >= highUrgencyMinHits:
		return domain.UrgencyHigh
	case highScore >= 1 || medScore >= mediumUrgencyMinHits:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

// confidenceFor maps the winning department score onto the discrete tiers.
func confidenceFor(score int) int {
	switch {
	case score == 0:
		return domain.ConfidenceNone
	case score >= strongScoreMin:
		return domain.ConfidenceStrong
	case score == mediumScore:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceWeak
	}
}
