package progress

import "math"

// Level is a tier in the fixed 7-step progression keyed by cumulative
// watched hours.
type Level int

// MaxLevel is the progression ceiling; there is no level beyond it.
const MaxLevel Level = 7

// levelThresholdHours holds the cumulative hours required to reach each
// level. Index i is the threshold for level i+1; thresholds are strictly
// increasing.
var levelThresholdHours = [MaxLevel]float64{0, 50, 150, 300, 600, 1000, 1500}

// LevelForHours returns the highest level whose threshold is less than or
// equal to the given total hours. The boundary is inclusive: exactly 50
// hours is already level 2. Level 1 is the floor for any input.
func LevelForHours(totalHours float64) Level {
	level := Level(1)
	for i, threshold := range levelThresholdHours {
		if totalHours >= threshold {
			level = Level(i + 1)
		}
	}
	return level
}

// ThresholdHours returns the cumulative hours required to reach the level.
func (l Level) ThresholdHours() float64 {
	if l < 1 || l > MaxLevel {
		return 0
	}
	return levelThresholdHours[l-1]
}

// Next returns the level after l, or false at the ceiling.
func (l Level) Next() (Level, bool) {
	if l >= MaxLevel {
		return l, false
	}
	return l + 1, true
}

// ProjectedDaysToNextLevel estimates how many days of hitting the daily
// target it takes to reach nextLevelHours from currentHours. It reports
// false when no positive target is set, so callers can render the value as
// not computable.
func ProjectedDaysToNextLevel(currentHours, nextLevelHours float64, dailyTargetMinutes int) (int, bool) {
	if dailyTargetMinutes <= 0 {
		return 0, false
	}
	remaining := nextLevelHours - currentHours
	if remaining <= 0 {
		return 0, true
	}
	days := remaining / (float64(dailyTargetMinutes) / 60)
	return int(math.Ceil(days)), true
}
