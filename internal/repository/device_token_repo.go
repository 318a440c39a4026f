package repository

import (
	"Joblink/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeviceTokenRepo interface {
	UpsertToken(ctx context.Context, token *model.DeviceToken) error
	DeleteToken(ctx context.Context, token string) error
	GetTokensByUserIds(ctx context.Context, userIDs []uint64) ([]*model.DeviceToken, error)
}

type DeviceTokenRepoImpl struct {
	db *gorm.DB
}

func NewDeviceTokenRepo(db *gorm.DB) DeviceTokenRepo {
	return &DeviceTokenRepoImpl{db: db}
}

// UpsertToken 令牌换绑用户时覆盖归属
func (s *DeviceTokenRepoImpl) UpsertToken(ctx context.Context, token *model.DeviceToken) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "updated_at"}),
		}).
		Create(token).Error
}

func (s *DeviceTokenRepoImpl) DeleteToken(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceToken{}).Error
}

func (s *DeviceTokenRepoImpl) GetTokensByUserIds(ctx context.Context, userIDs []uint64) ([]*model.DeviceToken, error) {
	tokens := make([]*model.DeviceToken, 0)
	result := s.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&tokens)
	if result.Error != nil {
		return nil, result.Error
	}
	return tokens, nil
}
