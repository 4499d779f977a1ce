package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  Level
	}{
		{name: "zero hours is level 1", hours: 0, want: 1},
		{name: "just below first threshold", hours: 49.9, want: 1},
		{name: "threshold is inclusive", hours: 50, want: 2},
		{name: "mid range", hours: 200, want: 3},
		{name: "exactly 600", hours: 600, want: 5},
		{name: "ceiling threshold", hours: 1500, want: 7},
		{name: "beyond ceiling stays at max", hours: 9000, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForHours(tt.hours))
		})
	}
}

func TestLevelNext(t *testing.T) {
	next, ok := Level(1).Next()
	assert.True(t, ok)
	assert.Equal(t, Level(2), next)
	assert.Equal(t, 50.0, next.ThresholdHours())

	_, ok = MaxLevel.Next()
	assert.False(t, ok)
}

func TestProjectedDaysToNextLevel(t *testing.T) {
	tests := []struct {
		name          string
		currentHours  float64
		nextHours     float64
		targetMinutes int
		wantDays      int
		wantKnown     bool
	}{
		{
			name:          "one hour per day",
			currentHours:  0,
			nextHours:     50,
			targetMinutes: 60,
			wantDays:      50,
			wantKnown:     true,
		},
		{
			name:          "half hour per day rounds up",
			currentHours:  40,
			nextHours:     50,
			targetMinutes: 45,
			wantDays:      14, // 10h / 0.75h = 13.3
			wantKnown:     true,
		},
		{
			name:          "no target set",
			currentHours:  0,
			nextHours:     50,
			targetMinutes: 0,
			wantKnown:     false,
		},
		{
			name:          "already past threshold",
			currentHours:  55,
			nextHours:     50,
			targetMinutes: 30,
			wantDays:      0,
			wantKnown:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, known := ProjectedDaysToNextLevel(tt.currentHours, tt.nextHours, tt.targetMinutes)
			assert.Equal(t, tt.wantKnown, known)
			if tt.wantKnown {
				assert.Equal(t, tt.wantDays, days)
			}
		})
	}
}
