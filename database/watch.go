package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// WatchRecord is one logged unit of watched time. VideoID is nil for manual
// entries (time spent outside the platform). The log is append-only and
// aggregated by (user, date) for daily totals.
type WatchRecord struct {
	gorm.Model
	UserID          uint `gorm:"not null;index"`
	VideoID         *uint
	WatchedDate     time.Time `gorm:"not null;index"`
	DurationMinutes int       `gorm:"not null"`
}

// Date truncates a timestamp to its calendar day in UTC. All WatchedDate
// values are stored in this form so equality and grouping work in SQL.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c *Client) CreateWatchRecord(ctx context.Context, record *WatchRecord) error {
	record.WatchedDate = Date(record.WatchedDate)
	if err := c.db.WithContext(ctx).Create(record).Error; err != nil {
		log.Error("failed to create watch record", "error", err)
		return err
	}
	return nil
}

// DailyMinutes returns the summed minutes for a single (user, date) pair.
func (c *Client) DailyMinutes(ctx context.Context, userID uint, date time.Time) (int, error) {
	var total int
	err := c.db.WithContext(ctx).Model(&WatchRecord{}).
		Where("user_id = ? AND watched_date = ?", userID, Date(date)).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	if err != nil {
		log.Error("failed to sum daily minutes", "error", err)
		return 0, err
	}
	return total, nil
}

// TotalMinutes returns the lifetime summed minutes for a user.
func (c *Client) TotalMinutes(ctx context.Context, userID uint) (int, error) {
	var total int
	err := c.db.WithContext(ctx).Model(&WatchRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	if err != nil {
		log.Error("failed to sum total minutes", "error", err)
		return 0, err
	}
	return total, nil
}

// MinutesByDate returns summed minutes per day in the half-open range
// [from, to). Days without activity are absent from the map.
func (c *Client) MinutesByDate(ctx context.Context, userID uint, from, to time.Time) (map[time.Time]int, error) {
	var rows []struct {
		WatchedDate time.Time
		Minutes     int
	}
	err := c.db.WithContext(ctx).Model(&WatchRecord{}).
		Where("user_id = ? AND watched_date >= ? AND watched_date < ?", userID, Date(from), Date(to)).
		Select("watched_date, SUM(duration_minutes) AS minutes").
		Group("watched_date").
		Scan(&rows).Error
	if err != nil {
		log.Error("failed to group minutes by date", "error", err)
		return nil, err
	}

	minutes := make(map[time.Time]int, len(rows))
	for _, row := range rows {
		minutes[Date(row.WatchedDate)] = row.Minutes
	}
	return minutes, nil
}

// ActivityDatesSince returns the distinct days with logged activity since the
// given date, newest first.
func (c *Client) ActivityDatesSince(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := c.db.WithContext(ctx).Model(&WatchRecord{}).
		Where("user_id = ? AND watched_date >= ?", userID, Date(since)).
		Distinct("watched_date").
		Order("watched_date DESC").
		Pluck("watched_date", &dates).Error
	if err != nil {
		log.Error("failed to get activity dates", "error", err)
		return nil, err
	}
	for i := range dates {
		dates[i] = Date(dates[i])
	}
	return dates, nil
}

// DeleteWatchRecords removes all watch history for a user.
func (c *Client) DeleteWatchRecords(ctx context.Context, userID uint) error {
	result := c.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&WatchRecord{})
	if result.Error != nil {
		log.Error("failed to delete watch records", "error", result.Error)
		return result.Error
	}
	return nil
}
