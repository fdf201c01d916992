package authenticity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicwatch/triage/internal/domain"
)

func newTestDetector() *Detector {
	return NewDetector(nil, nil)
}

func TestDetector_Detect_CleanSubmission(t *testing.T) {
	d := newTestDetector()

	result := d.Detect(context.Background(),
		"Streetlight broken on Main Road",
		"The streetlight outside house number 12 has been broken for two weeks and the street is dark at night.",
		"Main Road")

	assert.False(t, result.IsFake)
	assert.Empty(t, result.Reasons)
	assert.Empty(t, result.Flags)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.LabelLikelyGenuine, result.Label)
	assert.NotNil(t, result.Reasons)
	assert.NotNil(t, result.Flags)
}

func TestDetector_Detect_Signals(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name        string
		title       string
		description string
		location    string
		wantFlags   []string
		wantScore   int
		wantLabel   string
	}{
		{
			name:        "spam link",
			title:       "Broken streetlight near the park",
			description: "Visit bit.ly/deals for repairs, the streetlight is broken for weeks and unsafe",
			wantFlags:   []string{FlagSpamLink},
			wantScore:   75,
			wantLabel:   domain.LabelLikelyGenuine,
		},
		{
			name:        "repeated characters",
			title:       "Drain blocked on our street",
			description: "The drain is blocked aaaaah the smell is terrible please send someone",
			wantFlags:   []string{FlagRepeatedChars},
			wantScore:   75,
			wantLabel:   domain.LabelLikelyGenuine,
		},
		{
			name:        "gibberish words",
			title:       "Incomprehensible",
			description: "floccinaucinihilipilification antidisestablishmentarianism pseudohypoparathyroidism",
			wantFlags:   []string{FlagGibberish},
			wantScore:   75,
			wantLabel:   domain.LabelLikelyGenuine,
		},
		{
			name:        "missing civic vocabulary",
			title:       "Annoying neighbours playing music",
			description: "My neighbours keep playing loud music at midnight and nobody does anything about it",
			wantFlags:   []string{FlagNoCivicKeywords},
			wantScore:   75,
			wantLabel:   domain.LabelLikelyGenuine,
		},
		{
			name:        "repetitive text without civic vocabulary",
			title:       "Some random title here",
			description: "blah blah blah blah blah blah blah blah blah blah blah blah",
			wantFlags:   []string{FlagNoCivicKeywords, FlagRepetitive},
			wantScore:   50,
			wantLabel:   domain.LabelSuspicious,
		},
		{
			name:        "short joke post",
			title:       "test",
			description: "lol test",
			wantFlags:   []string{FlagTooShort, FlagVagueTitle, FlagJokeTest},
			wantScore:   25,
			wantLabel:   domain.LabelLikelyFake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(context.Background(), tt.title, tt.description, tt.location)

			assert.True(t, result.IsFake)
			assert.Equal(t, tt.wantFlags, result.Flags)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantLabel, result.Label)
			assert.Len(t, result.Reasons, len(result.Flags))
		})
	}
}

func TestDetector_Detect_GenuinePotholeReport(t *testing.T) {
	d := newTestDetector()

	result := d.Detect(context.Background(),
		"Pothole causing accidents on Main Street",
		"There is a large pothole on Main Street that caused a bike accident yesterday near the school",
		"Main Street")

	assert.False(t, result.IsFake)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.LabelLikelyGenuine, result.Label)
}

func TestDetector_Detect_CivicCheckSkippedWhenFlagged(t *testing.T) {
	d := newTestDetector()

	// The text has no civic vocabulary but fires the spam signal first, so
	// the vocabulary signal must not stack on top of it.
	result := d.Detect(context.Background(),
		"Amazing offer inside",
		"Buy now with promo code SAVE50 and get the best offer of the year today",
		"")

	assert.Equal(t, []string{FlagSpamLink}, result.Flags)
	assert.Equal(t, 75, result.Score)
}

func TestDetector_Detect_LocationCountsTowardVocabulary(t *testing.T) {
	d := newTestDetector()

	// "road" only appears in the location field; that is enough to satisfy
	// the civic vocabulary check.
	result := d.Detect(context.Background(),
		"Nothing works in our colony",
		"Everything has been pending for a long time and nobody listens to us at all",
		"Ring Road")

	assert.NotContains(t, result.Flags, FlagNoCivicKeywords)
}

func TestDetector_Detect_Idempotent(t *testing.T) {
	d := newTestDetector()

	first := d.Detect(context.Background(), "test", "lol test", "")
	second := d.Detect(context.Background(), "test", "lol test", "")

	assert.Equal(t, first, second)
}

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, domain.LabelLikelyGenuine},
		{75, domain.LabelLikelyGenuine},
		{74, domain.LabelSuspicious},
		{50, domain.LabelSuspicious},
		{49, domain.LabelLikelyFake},
		{0, domain.LabelLikelyFake},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelForScore(tt.score), "score %d", tt.score)
	}
}

func TestScoreFor_FloorsAtZero(t *testing.T) {
	assert.Equal(t, 100, scoreFor(0))
	assert.Equal(t, 75, scoreFor(1))
	assert.Equal(t, 50, scoreFor(2))
	assert.Equal(t, 25, scoreFor(3))
	assert.Equal(t, 0, scoreFor(4))
	assert.Equal(t, 0, scoreFor(5))
}

func TestHasRepeatedRun(t *testing.T) {
	assert.True(t, hasRepeatedRun("aaaaa", 5))
	assert.True(t, hasRepeatedRun("xxaaaaax", 5))
	assert.False(t, hasRepeatedRun("aaaa", 5))
	assert.False(t, hasRepeatedRun("abababab", 5))
	assert.False(t, hasRepeatedRun("", 5))
}

func TestIsRepetitive(t *testing.T) {
	repetitive := countableWords("blah blah blah blah blah blah blah blah blah blah blah blah")
	assert.True(t, isRepetitive(repetitive))

	varied := countableWords("the streetlight near the park has been broken since last monday evening")
	assert.False(t, isRepetitive(varied))

	// At or under the word threshold nothing is repetitive.
	few := countableWords("blah blah blah blah blah")
	assert.False(t, isRepetitive(few))
}

func TestCountableWords_DropsShortWords(t *testing.T) {
	words := countableWords("a to the pothole is it")
	assert.Equal(t, []string{"the", "pothole"}, words)
}

func TestAverageWordLength(t *testing.T) {
	assert.InDelta(t, 5.0, averageWordLength([]string{"water", "pipes"}), 0.001)
	assert.Zero(t, averageWordLength(nil))
}
