package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusReceived, StatusAcknowledged, StatusInProgress, StatusResolved, StatusRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("escalated").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusReceived, StatusAcknowledged, true},
		{StatusReceived, StatusInProgress, true},
		{StatusReceived, StatusRejected, true},
		{StatusReceived, StatusResolved, false},
		{StatusAcknowledged, StatusResolved, true},
		{StatusAcknowledged, StatusReceived, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusAcknowledged, false},
		{StatusResolved, StatusInProgress, false},
		{StatusRejected, StatusReceived, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
