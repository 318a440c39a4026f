package repository

import (
	"Joblink/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyFollowRepo interface {
	GetFollowedCompanyIds(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowerIds(ctx context.Context, companyID uint64) ([]uint64, error)
	GetFollowerCount(ctx context.Context, companyID uint64) (int64, error)
	GetCompanyFollow(ctx context.Context, userID, companyID uint64) (*model.CompanyFollow, error)
	CreateCompanyFollow(ctx context.Context, follow *model.CompanyFollow) error
	DeleteCompanyFollow(ctx context.Context, follow *model.CompanyFollow) error
}

type CompanyFollowRepoImpl struct {
	db *gorm.DB
}

func NewCompanyFollowRepo(db *gorm.DB) CompanyFollowRepo {
	return &CompanyFollowRepoImpl{db: db}
}

// GetFollowedCompanyIds 获取用户关注的公司 ID 集合，只取关联表列，避免整行加载
func (s *CompanyFollowRepoImpl) GetFollowedCompanyIds(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.CompanyFollow{}).
		Where("user_id = ?", userID).
		Pluck("company_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// GetFollowerIds 获取关注某公司的用户 ID 集合，供职位告警扇出使用
func (s *CompanyFollowRepoImpl) GetFollowerIds(ctx context.Context, companyID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.CompanyFollow{}).
		Where("company_id = ?", companyID).
		Pluck("user_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// GetFollowerCount 获取公司的关注者数量
func (s *CompanyFollowRepoImpl) GetFollowerCount(ctx context.Context, companyID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.CompanyFollow{}).
		Where("company_id = ?", companyID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetCompanyFollow 获取单条关注关系
func (s *CompanyFollowRepoImpl) GetCompanyFollow(ctx context.Context, userID, companyID uint64) (*model.CompanyFollow, error) {
	var follow model.CompanyFollow
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// CreateCompanyFollow 创建关注关系，重复关注静默忽略
func (s *CompanyFollowRepoImpl) CreateCompanyFollow(ctx context.Context, follow *model.CompanyFollow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

// DeleteCompanyFollow 删除关注关系
func (s *CompanyFollowRepoImpl) DeleteCompanyFollow(ctx context.Context, follow *model.CompanyFollow) error {
	return s.db.WithContext(ctx).Delete(follow).Error
}
