package database

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// VideoLevel represents the difficulty level of a video.
type VideoLevel string

const (
	LevelSuperbeginner VideoLevel = "Superbeginner"
	LevelBeginner      VideoLevel = "Beginner"
	LevelIntermediate  VideoLevel = "Intermediate"
	LevelAdvanced      VideoLevel = "Advanced"
)

// ParseVideoLevel validates a level string from user input.
func ParseVideoLevel(s string) (VideoLevel, error) {
	switch VideoLevel(s) {
	case LevelSuperbeginner, LevelBeginner, LevelIntermediate, LevelAdvanced:
		return VideoLevel(s), nil
	}
	return "", fmt.Errorf("unknown video level %q", s)
}

// Video represents a catalogue entry. YoutubeID is the canonical 11-character
// identifier extracted from the URL the admin pasted; videos are immutable
// once added.
type Video struct {
	gorm.Model
	Title           string     `gorm:"not null"`
	YoutubeID       string     `gorm:"not null;index"`
	Level           VideoLevel `gorm:"not null;index"`
	Tags            string     // comma-separated
	DurationMinutes int        `gorm:"not null"`
}

func (c *Client) CreateVideo(ctx context.Context, video *Video) error {
	if err := c.db.WithContext(ctx).Create(video).Error; err != nil {
		log.Error("failed to create video", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetVideoByID(ctx context.Context, id uint) (*Video, error) {
	var video Video
	if err := c.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get video by ID", "error", err)
		}
		return nil, err
	}
	return &video, nil
}

// ListVideos returns videos matching the optional filters: exact match on
// level, substring match on tag.
func (c *Client) ListVideos(ctx context.Context, level VideoLevel, tag string) ([]Video, error) {
	tx := c.db.WithContext(ctx)
	if level != "" {
		tx = tx.Where("level = ?", level)
	}
	if tag != "" {
		tx = tx.Where("tags LIKE ?", "%"+tag+"%")
	}

	var videos []Video
	if err := tx.Order("created_at DESC").Find(&videos).Error; err != nil {
		log.Error("failed to list videos", "error", err)
		return nil, err
	}
	return videos, nil
}
