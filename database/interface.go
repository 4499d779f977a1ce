package database

import (
	"context"
	"time"
)

// DB defines the interface for database operations.
type DB interface {
	// User management
	CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)

	// Video catalog
	CreateVideo(ctx context.Context, video *Video) error
	GetVideoByID(ctx context.Context, id uint) (*Video, error)
	ListVideos(ctx context.Context, level VideoLevel, tag string) ([]Video, error)

	// Watch history
	CreateWatchRecord(ctx context.Context, record *WatchRecord) error
	DailyMinutes(ctx context.Context, userID uint, date time.Time) (int, error)
	TotalMinutes(ctx context.Context, userID uint) (int, error)
	MinutesByDate(ctx context.Context, userID uint, from, to time.Time) (map[time.Time]int, error)
	ActivityDatesSince(ctx context.Context, userID uint, since time.Time) ([]time.Time, error)
	DeleteWatchRecords(ctx context.Context, userID uint) error

	// Daily targets
	CreateTargetRecord(ctx context.Context, record *TargetRecord) error
	GetCurrentTarget(ctx context.Context, userID uint) (*TargetRecord, error)

	// Utility
	Close() error
}
