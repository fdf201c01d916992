package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSet_Score(t *testing.T) {
	set := newKeywordSet([]string{"pothole", "traffic light", "Bike Lane"})

	tests := []struct {
		name string
		text string
		want int
	}{
		{"single hit", "a pothole opened up", 1},
		{"repeated hits count each occurrence", "pothole after pothole", 2},
		{"phrase keyword", "the traffic light is stuck on red", 1},
		{"keywords are lowercased at compile time", "the bike lane is blocked", 1},
		{"no partial word match", "potholes everywhere", 0},
		{"keyword inside larger word", "the lighthouse shone", 0},
		{"empty text", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.score(tt.text))
		})
	}
}

func TestKeywordSet_Score_PunctuationBoundaries(t *testing.T) {
	set := newKeywordSet([]string{"garbage"})

	// Punctuation and string edges count as word boundaries.
	assert.Equal(t, 1, set.score("garbage!"))
	assert.Equal(t, 1, set.score("(garbage)"))
	assert.Equal(t, 1, set.score("garbage"))
}
