package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicwatch/triage/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(nil, nil)
}

func TestEngine_Classify_Departments(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name           string
		title          string
		description    string
		wantDepartment string
		wantConfidence int
	}{
		{
			name:           "streetlight complaint",
			title:          "Streetlight not working",
			description:    "The streetlight on my street has been broken for two weeks and it's very dark at night",
			wantDepartment: "Infrastructure",
			wantConfidence: domain.ConfidenceMedium,
		},
		{
			name:           "pothole complaint",
			title:          "Huge pothole",
			description:    "There is a huge pothole on the road near the street corner",
			wantDepartment: "Roads",
			wantConfidence: domain.ConfidenceStrong,
		},
		{
			name:           "garbage complaint",
			title:          "Garbage not collected",
			description:    "The bin is dirty and overflowing",
			wantDepartment: "Sanitation",
			wantConfidence: domain.ConfidenceStrong,
		},
		{
			name:           "water supply complaint",
			title:          "No water supply",
			description:    "The water pipe has a leak",
			wantDepartment: "Water",
			wantConfidence: domain.ConfidenceStrong,
		},
		{
			name:           "park complaint",
			title:          "Playground equipment rusted",
			description:    "The swing and slide in the park are rusted",
			wantDepartment: "Parks",
			wantConfidence: domain.ConfidenceStrong,
		},
		{
			name:           "transit complaint",
			title:          "Bus never on schedule",
			description:    "The bus on this route never follows the schedule",
			wantDepartment: "Transit",
			wantConfidence: domain.ConfidenceStrong,
		},
		{
			name:           "parking complaint",
			title:          "Illegal parking",
			description:    "A vehicle is blocking my driveway",
			wantDepartment: "Parking",
			wantConfidence: domain.ConfidenceStrong,
		},
		{
			name:           "streetlight beats park on score",
			title:          "Broken streetlight on Park Avenue",
			description:    "The streetlight has been broken for two weeks and it's a safety hazard",
			wantDepartment: "Infrastructure",
			wantConfidence: domain.ConfidenceMedium,
		},
		{
			name:           "single keyword is weak confidence",
			title:          "",
			description:    "there is a pothole here",
			wantDepartment: "Roads",
			wantConfidence: domain.ConfidenceWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Classify(context.Background(), tt.title, tt.description)

			assert.True(t, result.Detected)
			assert.Equal(t, tt.wantDepartment, result.Department)
			assert.Equal(t, tt.wantConfidence, result.Confidence)
		})
	}
}

func TestEngine_Classify_NoMatch(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"empty input", "", ""},
		{"unrelated text", "Birthday party", "We are planning a birthday celebration next month at our house"},
		{"keyword inside larger word", "", "the lighthouse was beautiful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Classify(context.Background(), tt.title, tt.description)

			assert.False(t, result.Detected)
			assert.Empty(t, result.Department)
			assert.Equal(t, domain.ConfidenceNone, result.Confidence)
		})
	}
}

func TestEngine_Classify_TieKeepsTableOrder(t *testing.T) {
	engine := newTestEngine()

	// "sewage" appears in both the Sanitation and Water keyword lists; the
	// earlier table entry must win the tie.
	result := engine.Classify(context.Background(), "", "sewage everywhere")

	assert.Equal(t, "Sanitation", result.Department)
	assert.Equal(t, domain.ConfidenceWeak, result.Confidence)
}

func TestEngine_Classify_Urgency(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name        string
		description string
		want        domain.Urgency
	}{
		{
			name:        "two high signals escalate to high",
			description: "The streetlight has been broken for weeks",
			want:        domain.UrgencyHigh,
		},
		{
			name:        "single high signal is medium",
			description: "dangerous pothole on the corner",
			want:        domain.UrgencyMedium,
		},
		{
			name:        "two medium signals are medium",
			description: "the bin is dirty and the smell is affecting everyone",
			want:        domain.UrgencyMedium,
		},
		{
			name:        "one medium signal stays low",
			description: "small problem with the park fountain",
			want:        domain.UrgencyLow,
		},
		{
			name:        "no signals stay low",
			description: "pothole on the road",
			want:        domain.UrgencyLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Classify(context.Background(), "", tt.description)
			assert.Equal(t, tt.want, result.Urgency)
		})
	}
}

func TestEngine_Classify_CaseInsensitive(t *testing.T) {
	engine := newTestEngine()

	lower := engine.Classify(context.Background(), "garbage overflowing", "the trash bin smell is terrible")
	upper := engine.Classify(context.Background(), "GARBAGE OVERFLOWING", "THE TRASH BIN SMELL IS TERRIBLE")

	assert.Equal(t, lower, upper)
}

func TestEngine_Classify_RepeatedKeywordCounts(t *testing.T) {
	engine := newTestEngine()

	// A single keyword repeated three times scores three hits.
	result := engine.Classify(context.Background(), "", "pothole after pothole after pothole")

	assert.Equal(t, "Roads", result.Department)
	assert.Equal(t, domain.ConfidenceStrong, result.Confidence)
}

func TestDepartments_Order(t *testing.T) {
	want := []string{"Infrastructure", "Roads", "Sanitation", "Water", "Parks", "Transit", "Parking"}
	assert.Equal(t, want, Departments())
}
