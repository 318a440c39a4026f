package repository

import (
	"Joblink/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByExternalId(ctx context.Context, externalID string) (*model.User, error)
	UpsertByExternalId(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByExternalId(ctx context.Context, externalID string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

// UpsertByExternalId 首次见到身份提供方的主体时落库，已存在则原样返回
func (s *UserRepoImpl) UpsertByExternalId(ctx context.Context, user *model.User) (*model.User, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(user)
	if result.Error != nil {
		return nil, result.Error
	}

	// OnConflict DoNothing 不回填已存在行的主键，需再查一次
	if result.RowsAffected == 0 {
		return s.GetUserByExternalId(ctx, user.ExternalID)
	}
	return user, nil
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteUser 匿名化软删除，同时清理关注关系与推送令牌
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	externalPlaceholder := fmt.Sprintf("deleted_%d_%d", id, time.Now().Unix())

	userUpdate := map[string]interface{}{
		"is_delete":   true,
		"is_active":   false,
		"external_id": externalPlaceholder,
		"email":       nil,
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Model(&model.User{}).Where("id = ?", id).Updates(userUpdate); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ?", id).Delete(&model.CompanyFollow{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ?", id).Delete(&model.DeviceToken{}); result.Error != nil {
			return result.Error
		}

		return nil
	})
}
