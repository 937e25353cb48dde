package video

import (
	"context"

	"gorm.io/gorm"
)

type VideoRepository interface {
	CountByPlayerID(ctx context.Context, playerID uint) (int64, error)
	Create(ctx context.Context, v *Video) error
	// FindByID returns (nil, nil) for an unknown id.
	FindByID(ctx context.Context, id uint) (*VideoWithOwner, error)
	FindByPlayerID(ctx context.Context, playerID uint) ([]Video, error)
	Update(ctx context.Context, v *Video) error
	Delete(ctx context.Context, id uint) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CountByPlayerID(ctx context.Context, playerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Video{}).Where("player_id = ?", playerID).Count(&count).Error
	return count, err
}

func (r *videoRepository) Create(ctx context.Context, v *Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *videoRepository) FindByID(ctx context.Context, id uint) (*VideoWithOwner, error) {
	var v VideoWithOwner
	res := r.db.WithContext(ctx).
		Table("videos AS v").
		Select("v.*, p.user_id AS owner_user_id").
		Joins("JOIN players p ON p.id = v.player_id").
		Where("v.id = ?", id).
		Limit(1).
		Scan(&v)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &v, nil
}

func (r *videoRepository) FindByPlayerID(ctx context.Context, playerID uint) ([]Video, error) {
	videos := []Video{}
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at DESC, id DESC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) Update(ctx context.Context, v *Video) error {
	return r.db.WithContext(ctx).Model(&Video{ID: v.ID}).Updates(map[string]interface{}{
		"title":       v.Title,
		"description": v.Description,
		"updated_at":  v.UpdatedAt,
	}).Error
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Video{}, id).Error
}
