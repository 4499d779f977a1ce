// Package progress tracks watched time against daily targets and computes
// the level progression derived from cumulative input hours.
package progress

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lingolog/lingolog/database"
	"gorm.io/gorm"
)

// ErrInvalidDuration is returned when a manual time entry is not positive.
var ErrInvalidDuration = errors.New("duration must be positive")

// streakWindow bounds how far back the streak computation looks.
const streakWindow = 366

// Service provides watch logging and progress reporting.
type Service struct {
	db                   database.DB
	defaultTargetMinutes int
}

func New(db database.DB, defaultTargetMinutes int) *Service {
	return &Service{
		db:                   db,
		defaultTargetMinutes: defaultTargetMinutes,
	}
}

// LogWatch appends a watch record dated today, taking the duration from the
// video. Unknown video IDs surface as gorm.ErrRecordNotFound.
func (s *Service) LogWatch(ctx context.Context, userID, videoID uint) (*database.WatchRecord, error) {
	video, err := s.db.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	record := database.WatchRecord{
		UserID:          userID,
		VideoID:         &video.ID,
		WatchedDate:     database.Date(time.Now()),
		DurationMinutes: video.DurationMinutes,
	}
	if err := s.db.CreateWatchRecord(ctx, &record); err != nil {
		return nil, err
	}

	log.Debug("watch logged", "user_id", userID, "video_id", videoID, "minutes", record.DurationMinutes)
	return &record, nil
}

// LogManualTime appends a video-less watch record for time spent outside the
// platform, dated today.
func (s *Service) LogManualTime(ctx context.Context, userID uint, minutes int) (*database.WatchRecord, error) {
	if minutes <= 0 {
		return nil, ErrInvalidDuration
	}

	record := database.WatchRecord{
		UserID:          userID,
		WatchedDate:     database.Date(time.Now()),
		DurationMinutes: minutes,
	}
	if err := s.db.CreateWatchRecord(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DailyProgress returns the minutes logged by a user on a given day.
func (s *Service) DailyProgress(ctx context.Context, userID uint, date time.Time) (int, error) {
	return s.db.DailyMinutes(ctx, userID, date)
}

// DailyTarget returns the user's current daily target in minutes, falling
// back to the configured default when no target has ever been set.
func (s *Service) DailyTarget(ctx context.Context, userID uint) (int, error) {
	record, err := s.db.GetCurrentTarget(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.defaultTargetMinutes, nil
		}
		return 0, err
	}
	return record.TargetMinutes, nil
}

// SetDailyTarget appends a new entry to the user's target history.
func (s *Service) SetDailyTarget(ctx context.Context, userID uint, minutes int) error {
	if minutes <= 0 {
		return ErrInvalidDuration
	}
	return s.db.CreateTargetRecord(ctx, &database.TargetRecord{
		UserID:        userID,
		TargetMinutes: minutes,
		SetDate:       time.Now().UTC(),
	})
}

// Summary is the aggregate progress view for a user.
type Summary struct {
	TotalMinutes       int
	TotalHours         float64
	Level              Level
	NextLevelHours     float64 // 0 at max level
	HoursToNextLevel   float64 // 0 at max level
	ProjectedDays      int
	ProjectedDaysKnown bool
	DailyTargetMinutes int
	TodayMinutes       int
	TodayPercent       int // capped at 100
	StreakDays         int
}

// Summarize computes the full progress summary for a user as of now.
func (s *Service) Summarize(ctx context.Context, userID uint, now time.Time) (*Summary, error) {
	totalMinutes, err := s.db.TotalMinutes(ctx, userID)
	if err != nil {
		return nil, err
	}

	todayMinutes, err := s.db.DailyMinutes(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	target, err := s.DailyTarget(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.Streak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	totalHours := float64(totalMinutes) / 60
	summary := &Summary{
		TotalMinutes:       totalMinutes,
		TotalHours:         totalHours,
		Level:              LevelForHours(totalHours),
		DailyTargetMinutes: target,
		TodayMinutes:       todayMinutes,
		TodayPercent:       percentOfTarget(todayMinutes, target),
		StreakDays:         streak,
	}

	if next, ok := summary.Level.Next(); ok {
		summary.NextLevelHours = next.ThresholdHours()
		summary.HoursToNextLevel = summary.NextLevelHours - totalHours
		summary.ProjectedDays, summary.ProjectedDaysKnown = ProjectedDaysToNextLevel(totalHours, summary.NextLevelHours, target)
	}

	return summary, nil
}

// MonthlyActivity returns the per-day minutes of a month together with the
// calendar layout used by the heatmap.
func (s *Service) MonthlyActivity(ctx context.Context, userID uint, year int, month time.Month) ([][]CalendarDay, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	minutes, err := s.db.MinutesByDate(ctx, userID, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return BuildCalendar(year, month, minutes), nil
}

// Streak counts the consecutive days with logged activity ending today. A
// streak survives until the end of the current day, so a run ending
// yesterday still counts.
func (s *Service) Streak(ctx context.Context, userID uint, today time.Time) (int, error) {
	day := database.Date(today)
	dates, err := s.db.ActivityDatesSince(ctx, userID, day.AddDate(0, 0, -streakWindow))
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	// dates are distinct and newest first
	if !dates[0].Equal(day) && !dates[0].Equal(day.AddDate(0, 0, -1)) {
		return 0, nil
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak, nil
}

func percentOfTarget(minutes, target int) int {
	if target <= 0 {
		return 0
	}
	percent := minutes * 100 / target
	if percent > 100 {
		percent = 100
	}
	return percent
}
