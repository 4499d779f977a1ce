package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// TargetRecord is one entry in the append-only daily target history. The
// current target of a user is the most recently set record.
type TargetRecord struct {
	gorm.Model
	UserID        uint      `gorm:"not null;index"`
	TargetMinutes int       `gorm:"not null"`
	SetDate       time.Time `gorm:"not null"`
}

func (c *Client) CreateTargetRecord(ctx context.Context, record *TargetRecord) error {
	if record.SetDate.IsZero() {
		record.SetDate = time.Now().UTC()
	}
	if err := c.db.WithContext(ctx).Create(record).Error; err != nil {
		log.Error("failed to create target record", "error", err)
		return err
	}
	return nil
}

// GetCurrentTarget returns the latest target record for a user, or
// gorm.ErrRecordNotFound when no target has ever been set.
func (c *Client) GetCurrentTarget(ctx context.Context, userID uint) (*TargetRecord, error) {
	var record TargetRecord
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("set_date DESC, id DESC").
		First(&record).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get current target", "error", err)
		}
		return nil, err
	}
	return &record, nil
}
