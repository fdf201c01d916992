// Package authenticity screens complaint submissions for spam, joke and
// low-effort content using a fixed set of heuristic signals.
package authenticity

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/civicwatch/triage/internal/domain"
	"github.com/civicwatch/triage/internal/logger"
	"github.com/civicwatch/triage/internal/telemetry"
)

// Signal thresholds.
const (
	minDescriptionLen    = 20
	minTitleLen          = 8
	repeatedRunLen       = 5
	gibberishAvgWordLen  = 12
	minCountableWordLen  = 2 // words this short are ignored by word stats
	repetitiveMinWords   = 10
	repetitiveUniqueMax  = 0.4
	scorePenaltyPerFlag  = 25
	maxScore             = 100
	likelyGenuineMin     = 75
	suspiciousMin        = 50
)

// Detector is the rule-based fake-complaint screen. Stateless and safe for
// concurrent use.
type Detector struct {
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewDetector creates an authenticity detector.
func NewDetector(log logger.Logger, tp *telemetry.Provider) *Detector {
	if log == nil {
		log = logger.NewNop()
	}
	return &Detector{logger: log, telemetry: tp}
}

// Detect evaluates the fixed signal set against a submission and returns the
// verdict. Signals are evaluated in a fixed order; each one that fires
// appends a human-readable reason and a machine flag, and the score drops 25
// points per fired signal. Total over all string inputs.
func (d *Detector) Detect(ctx context.Context, title, description, location string) domain.AuthenticityResult {
	if d.telemetry != nil {
		_, span := d.telemetry.Tracer.Start(ctx, "authenticity.Detect")
		defer span.End()
	}

	fullText := strings.ToLower(title + " " + description + " " + location)

	reasons := []string{}
	flags := []string{}
	add := func(reason, flag string) {
		reasons = append(reasons, reason)
		flags = append(flags, flag)
	}

	if spamPattern.MatchString(fullText) {
		add(reasonSpamLink, FlagSpamLink)
	}
	if hasRepeatedRun(fullText, repeatedRunLen) {
		add(reasonRepeatedChars, FlagRepeatedChars)
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) < minDescriptionLen {
		add(reasonTooShort, FlagTooShort)
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleLen {
		add(reasonVagueTitle, FlagVagueTitle)
	}

	words := countableWords(fullText)
	if averageWordLength(words) > gibberishAvgWordLen {
		add(reasonGibberish, FlagGibberish)
	}
	if jokePattern.MatchString(fullText) {
		add(reasonJokeTest, FlagJokeTest)
	}

	// The vocabulary check fires only when no earlier signal has: text
	// already flagged for another signal is not additionally penalized for
	// missing civic terms. The evaluation order above is load-bearing.
	if len(reasons) == 0 && !containsCivicTerm(fullText) {
		add(reasonNoCivicKeywords, FlagNoCivicKeywords)
	}

	if isRepetitive(words) {
		add(reasonRepetitive, FlagRepetitive)
	}

	score := scoreFor(len(reasons))
	result := domain.AuthenticityResult{
		IsFake:  len(reasons) > 0,
		Reasons: reasons,
		Flags:   flags,
		Score:   score,
		Label:   LabelForScore(score),
	}

	d.telemetry.RecordAuthenticity(result.Label, result.Flags)
	if result.IsFake {
		d.logger.Debug("submission flagged",
			logger.Int("score", result.Score),
			logger.String("label", result.Label),
			logger.Any("flags", result.Flags))
	}

	return result
}

// LabelForScore maps a score onto its human-readable verdict label.
func LabelForScore(score int) string {
	switch {
	case score >= likelyGenuineMin:
		return domain.LabelLikelyGenuine
	case score >= suspiciousMin:
		return domain.LabelSuspicious
	default:
		return domain.LabelLikelyFake
	}
}

// scoreFor computes max(0, 100 - 25*reasons).
func scoreFor(reasonCount int) int {
	score := maxScore - scorePenaltyPerFlag*reasonCount
	if score < 0 {
		score = 0
	}
	return score
}

// hasRepeatedRun reports whether any rune occurs n or more times in a row.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// countableWords splits on whitespace and keeps words longer than
// minCountableWordLen runes.
func countableWords(text string) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, w := range fields {
		if utf8.RuneCountInString(w) > minCountableWordLen {
			words = append(words, w)
		}
	}
	return words
}

// averageWordLength returns the mean rune length of words; 0 for no words.
func averageWordLength(words []string) float64 {
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	divisor := len(words)
	if divisor == 0 {
		divisor = 1
	}
	return float64(total) / float64(divisor)
}

// containsCivicTerm reports whether any civic vocabulary term is a substring
// of the text.
func containsCivicTerm(text string) bool {
	for _, kw := range civicKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// isRepetitive reports whether the text leans on few distinct words: more
// than repetitiveMinWords countable words with a unique ratio under
// repetitiveUniqueMax.
func isRepetitive(words []string) bool {
	if len(words) <= repetitiveMinWords {
		return false
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	ratio := float64(len(unique)) / float64(len(words))
	return ratio < repetitiveUniqueMax
}
