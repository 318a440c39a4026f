package repository

import (
	"Joblink/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepo interface {
	GetCompanyById(ctx context.Context, id uint64) (*model.Company, error)
	GetCompanyByIds(ctx context.Context, ids []uint64) ([]*model.Company, error)
	ListCompanies(ctx context.Context) ([]*model.Company, error)
	BulkUpsertCompanies(ctx context.Context, companies []*model.Company) error
}

type CompanyRepoImpl struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepo {
	return &CompanyRepoImpl{db: db}
}

func (s *CompanyRepoImpl) GetCompanyById(ctx context.Context, id uint64) (*model.Company, error) {
	company := &model.Company{}
	result := s.db.WithContext(ctx).First(company, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return company, nil
}

func (s *CompanyRepoImpl) GetCompanyByIds(ctx context.Context, ids []uint64) ([]*model.Company, error) {
	companies := make([]*model.Company, 0)
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&companies)
	if result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

func (s *CompanyRepoImpl) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	companies := make([]*model.Company, 0)
	result := s.db.WithContext(ctx).
		Order("name asc").
		Find(&companies)
	if result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

// BulkUpsertCompanies 管理端批量写入，name 冲突时更新分类与 Logo
func (s *CompanyRepoImpl) BulkUpsertCompanies(ctx context.Context, companies []*model.Company) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "logo_url", "updated_at"}),
		}).
		Create(companies).Error
}
