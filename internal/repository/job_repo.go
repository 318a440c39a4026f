package repository

import (
	"Joblink/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepo interface {
	GetJobById(ctx context.Context, id uint64) (*model.Job, error)
	GetFeedJobs(ctx context.Context, companyIDs []uint64, segment model.Segment, limit, offset int) ([]*model.Job, error)
	CountFeedJobs(ctx context.Context, companyIDs []uint64, segment model.Segment) (int64, error)
	ListJobs(ctx context.Context, segment model.Segment, companyID *uint64, limit, offset int) ([]*model.Job, error)
	CountJobs(ctx context.Context, segment model.Segment, companyID *uint64) (int64, error)
	BulkUpsertJobs(ctx context.Context, jobs []*model.Job) error
}

type JobRepoImpl struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepo {
	return &JobRepoImpl{db: db}
}

func (s *JobRepoImpl) GetJobById(ctx context.Context, id uint64) (*model.Job, error) {
	job := &model.Job{}
	result := s.db.WithContext(ctx).
		Preload("Company").
		First(job, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return job, nil
}

// GetFeedJobs 关注公司 + 经验分层的职位流，最新优先
func (s *JobRepoImpl) GetFeedJobs(ctx context.Context, companyIDs []uint64, segment model.Segment, limit, offset int) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)
	result := s.db.WithContext(ctx).
		Preload("Company").
		Where("company_id IN ? AND segment = ?", companyIDs, segment).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}
	return jobs, nil
}

// CountFeedJobs 与 GetFeedJobs 使用同一过滤条件的独立计数
func (s *JobRepoImpl) CountFeedJobs(ctx context.Context, companyIDs []uint64, segment model.Segment) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("company_id IN ? AND segment = ?", companyIDs, segment).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ListJobs 全量职位列表，segment 必填，companyID 可选
func (s *JobRepoImpl) ListJobs(ctx context.Context, segment model.Segment, companyID *uint64, limit, offset int) ([]*model.Job, error) {
	jobs := make([]*model.Job, 0)
	query := s.db.WithContext(ctx).
		Preload("Company").
		Where("segment = ?", segment)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	result := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}
	return jobs, nil
}

func (s *JobRepoImpl) CountJobs(ctx context.Context, segment model.Segment, companyID *uint64) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("segment = ?", segment)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// BulkUpsertJobs 管理端批量写入职位，主键冲突时覆盖可变字段
func (s *JobRepoImpl) BulkUpsertJobs(ctx context.Context, jobs []*model.Job) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "segment", "apply_link"}),
		}).
		Create(jobs).Error
}
