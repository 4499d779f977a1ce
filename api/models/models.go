package models

import "time"

// User represents the authenticated user attached to a request context.
type User struct {
	ID       uint
	Username string
	IsAdmin  bool
}

// VideoItem represents a catalogue entry for display.
type VideoItem struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	YoutubeID       string   `json:"youtubeId"`
	WatchURL        string   `json:"watchUrl"`
	Level           string   `json:"level"`
	Tags            []string `json:"tags"`
	DurationMinutes int      `json:"durationMinutes"`
	Added           string   `json:"added"` // human readable, e.g. "3 days ago"
}

// UserItem represents a user row on the admin panel.
type UserItem struct {
	ID                 uint   `json:"id"`
	Username           string `json:"username"`
	IsAdmin            bool   `json:"isAdmin"`
	DailyTargetMinutes int    `json:"dailyTargetMinutes"`
}

// ProgressSummary is the progress page payload.
type ProgressSummary struct {
	TotalMinutes       int     `json:"totalMinutes"`
	TotalHours         float64 `json:"totalHours"`
	TotalInputTime     string  `json:"totalInputTime"` // human readable
	Level              int     `json:"level"`
	NextLevelHours     float64 `json:"nextLevelHours,omitempty"`
	HoursToNextLevel   float64 `json:"hoursToNextLevel,omitempty"`
	NextLevelIn        string  `json:"nextLevelIn,omitempty"` // e.g. "51 hrs to level 3"
	ProjectedDays      *int    `json:"projectedDays"`         // nil when not computable
	DailyTargetMinutes int     `json:"dailyTargetMinutes"`
	TodayMinutes       int     `json:"todayMinutes"`
	TodayPercent       int     `json:"todayPercent"`
	StreakDays         int     `json:"streakDays"`
}

// CalendarDay is one cell of the monthly activity calendar payload.
type CalendarDay struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	Minutes int    `json:"minutes"`
	InMonth bool   `json:"inMonth"`
}

// Calendar is the monthly activity payload.
type Calendar struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Weeks [][]CalendarDay `json:"weeks"`
}
