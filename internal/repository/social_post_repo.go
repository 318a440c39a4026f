package repository

import (
	"Joblink/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SocialPostRepo interface {
	CreatePost(ctx context.Context, post *model.SocialPost) error
	GetPost(ctx context.Context, id uint64) (*model.SocialPost, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*model.SocialPost, error)
	CountPosts(ctx context.Context) (int64, error)
	UpdatePost(ctx context.Context, post *model.SocialPost) error
	DeletePost(ctx context.Context, id uint64) error
}

type SocialPostRepoImpl struct {
	db *gorm.DB
}

func NewSocialPostRepo(db *gorm.DB) SocialPostRepo {
	return &SocialPostRepoImpl{db: db}
}

func (s *SocialPostRepoImpl) CreatePost(ctx context.Context, post *model.SocialPost) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *SocialPostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.SocialPost, error) {
	post := &model.SocialPost{}
	result := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *SocialPostRepoImpl) ListPosts(ctx context.Context, limit, offset int) ([]*model.SocialPost, error) {
	posts := make([]*model.SocialPost, 0)
	result := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *SocialPostRepoImpl) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.SocialPost{}).
		Where("is_deleted = ?", false).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *SocialPostRepoImpl) UpdatePost(ctx context.Context, post *model.SocialPost) error {
	return s.db.WithContext(ctx).
		Model(&model.SocialPost{}).
		Where("id = ?", post.ID).
		Updates(post).Error
}

func (s *SocialPostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.SocialPost{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
