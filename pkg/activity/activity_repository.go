package activity

import (
	"SevChefs-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		CreateEntry(ctx context.Context, entry *entities.ActivityEntry) error
		GetFeedForViewer(ctx context.Context, viewerID string) ([]*entities.ActivityEntry, error)
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateEntry(ctx context.Context, entry *entities.ActivityEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetFeedForViewer returns entries by people the viewer follows, plus the
// viewer's own actions and actions directed at them, newest first.
func (r *activityRepository) GetFeedForViewer(ctx context.Context, viewerID string) ([]*entities.ActivityEntry, error) {
	var entries []*entities.ActivityEntry

	followees := r.db.WithContext(ctx).Model(&entities.UserFollow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	if err := r.db.WithContext(ctx).
		Where("actor_id IN (?)", followees).
		Or("actor_id = ?", viewerID).
		Or("target_user_id = ?", viewerID).
		Order("created_at desc").
		Preload("Actor").
		Preload("TargetUser").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
