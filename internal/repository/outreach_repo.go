package repository

import (
	"Joblink/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrQuotaReached 由 CreateIfUnderQuota 返回，表示当月配额已满，未产生写入
var ErrQuotaReached = errors.New("outreach quota reached")

type OutreachRepo interface {
	CreateIfUnderQuota(ctx context.Context, req *model.OutreachRequest, startOfMonth time.Time, quota int) error
	CountSince(ctx context.Context, userID uint64, since time.Time) (int64, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.OutreachRequest, error)
	GetByIdForUser(ctx context.Context, userID, id uint64) (*model.OutreachRequest, error)
	GetById(ctx context.Context, id uint64) (*model.OutreachRequest, error)
	ListByStatus(ctx context.Context, status model.OutreachStatus) ([]*model.OutreachRequest, error)
	TransitionStatus(ctx context.Context, id uint64, from, to model.OutreachStatus, reviewedAt time.Time, sentAt *time.Time) (int64, error)
}

type OutreachRepoImpl struct {
	db *gorm.DB
}

func NewOutreachRepo(db *gorm.DB) OutreachRepo {
	return &OutreachRepoImpl{db: db}
}

// CreateIfUnderQuota 在单个事务内完成计数与插入。
// 配额已满时返回 ErrQuotaReached 并回滚，不留下部分写入。
func (s *OutreachRepoImpl) CreateIfUnderQuota(ctx context.Context, req *model.OutreachRequest, startOfMonth time.Time, quota int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if result := tx.Model(&model.OutreachRequest{}).
			Where("user_id = ? AND created_at >= ?", req.UserID, startOfMonth).
			Count(&count); result.Error != nil {
			return result.Error
		}

		if count >= int64(quota) {
			return ErrQuotaReached
		}

		return tx.Create(req).Error
	})
}

func (s *OutreachRepoImpl) CountSince(ctx context.Context, userID uint64, since time.Time) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.OutreachRequest{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ListByUser 返回用户全部内推请求，最新优先。月配额天然限制了增长速度，不分页
func (s *OutreachRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.OutreachRequest, error) {
	reqs := make([]*model.OutreachRequest, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reqs)
	if result.Error != nil {
		return nil, result.Error
	}
	return reqs, nil
}

// GetByIdForUser 按归属查询，他人的行与不存在的行同样返回 nil
func (s *OutreachRepoImpl) GetByIdForUser(ctx context.Context, userID, id uint64) (*model.OutreachRequest, error) {
	req := &model.OutreachRequest{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(req)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return req, nil
}

func (s *OutreachRepoImpl) GetById(ctx context.Context, id uint64) (*model.OutreachRequest, error) {
	req := &model.OutreachRequest{}
	result := s.db.WithContext(ctx).First(req, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return req, nil
}

func (s *OutreachRepoImpl) ListByStatus(ctx context.Context, status model.OutreachStatus) ([]*model.OutreachRequest, error) {
	reqs := make([]*model.OutreachRequest, 0)
	result := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at asc").
		Find(&reqs)
	if result.Error != nil {
		return nil, result.Error
	}
	return reqs, nil
}

// TransitionStatus 带前置状态的条件更新，返回受影响行数。
// 并发的两次流转只有一次能命中 WHERE status = from。
func (s *OutreachRepoImpl) TransitionStatus(ctx context.Context, id uint64, from, to model.OutreachStatus, reviewedAt time.Time, sentAt *time.Time) (int64, error) {
	updates := map[string]interface{}{
		"status":      to,
		"reviewed_at": reviewedAt,
	}
	if sentAt != nil {
		updates["sent_at"] = *sentAt
	}

	result := s.db.WithContext(ctx).
		Model(&model.OutreachRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}
