package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lingolog/lingolog/database"
	"github.com/lingolog/lingolog/progress"
	"github.com/samber/lo"
)

// ToVideoItem converts a database.Video for display.
func ToVideoItem(v database.Video) VideoItem {
	var tags []string
	if v.Tags != "" {
		tags = strings.Split(v.Tags, ",")
	}
	return VideoItem{
		ID:              v.ID,
		Title:           v.Title,
		YoutubeID:       v.YoutubeID,
		WatchURL:        fmt.Sprintf("https://youtube.com/watch?v=%s", v.YoutubeID),
		Level:           string(v.Level),
		Tags:            tags,
		DurationMinutes: v.DurationMinutes,
		Added:           humanize.Time(v.CreatedAt),
	}
}

// ToVideoItems converts a slice of database.Video for display.
func ToVideoItems(videos []database.Video) []VideoItem {
	return lo.Map(videos, func(v database.Video, _ int) VideoItem {
		return ToVideoItem(v)
	})
}

// ToProgressSummary converts a progress.Summary for the progress page.
func ToProgressSummary(s *progress.Summary) ProgressSummary {
	summary := ProgressSummary{
		TotalMinutes:       s.TotalMinutes,
		TotalHours:         s.TotalHours,
		TotalInputTime:     formatInputTime(s.TotalMinutes),
		Level:              int(s.Level),
		NextLevelHours:     s.NextLevelHours,
		HoursToNextLevel:   s.HoursToNextLevel,
		DailyTargetMinutes: s.DailyTargetMinutes,
		TodayMinutes:       s.TodayMinutes,
		TodayPercent:       s.TodayPercent,
		StreakDays:         s.StreakDays,
	}
	if s.Level < progress.MaxLevel {
		summary.NextLevelIn = fmt.Sprintf("%s hrs to level %d",
			humanize.CommafWithDigits(s.HoursToNextLevel, 1), int(s.Level)+1)
	}
	if s.ProjectedDaysKnown {
		days := s.ProjectedDays
		summary.ProjectedDays = &days
	}
	return summary
}

// ToCalendar converts the calendar layout for rendering.
func ToCalendar(year int, month time.Month, weeks [][]progress.CalendarDay) Calendar {
	return Calendar{
		Year:  year,
		Month: month,
		Weeks: lo.Map(weeks, func(week []progress.CalendarDay, _ int) []CalendarDay {
			return lo.Map(week, func(day progress.CalendarDay, _ int) CalendarDay {
				return CalendarDay{
					Date:    day.Date.Format("2006-01-02"),
					Day:     day.Day,
					Minutes: day.Minutes,
					InMonth: day.InMonth,
				}
			})
		}),
	}
}

func formatInputTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
