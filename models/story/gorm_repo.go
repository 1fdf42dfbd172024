package story

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListPublic(ctx context.Context) ([]Story, error) {
	var stories []Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", StatusPublic).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}

func (r *GormRepository) ListPublicByUser(ctx context.Context, userID uint) ([]Story, error) {
	var stories []Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND status = ?", userID, StatusPublic).
		Find(&stories).Error
	return stories, err
}

func (r *GormRepository) ListByOwner(ctx context.Context, userID uint) ([]Story, error) {
	var stories []Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Find(&stories).Error
	return stories, err
}

func (r *GormRepository) FindByID(ctx context.Context, id uint) (*Story, error) {
	var s Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			// later insert = higher id; newest-first
			return db.Order("comments.id DESC")
		}).
		Preload("Comments.User").
		First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*Story, error) {
	var s Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormRepository) Create(ctx context.Context, story *Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *GormRepository) Update(ctx context.Context, story *Story) error {
	return r.db.WithContext(ctx).
		Model(&Story{ID: story.ID}).
		Select("Title", "Body", "Status", "AllowComments").
		Updates(story).Error
}

func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Story{}, id).Error
}

func (r *GormRepository) AddComment(ctx context.Context, storyID uint, comment *Comment) error {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&Story{}).Where("id = ?", storyID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	comment.StoryID = storyID
	return r.db.WithContext(ctx).Create(comment).Error
}
