package service

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/model"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/minio"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/pkg/util"
	"Joblink/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OutreachService interface {
	SubmitRequest(ctx context.Context, userID uint64, d *dto.CreateOutreachDTO) (*model.OutreachRequest, error)
	GetMyRequests(ctx context.Context, userID uint64) ([]*model.OutreachRequest, error)
	GetMyRequestById(ctx context.Context, userID, id uint64) (*model.OutreachRequest, error)
	GetRemainingQuota(ctx context.Context, userID uint64) (int, error)
	GetPendingRequests(ctx context.Context) ([]*model.OutreachRequest, error)
	TransitionRequest(ctx context.Context, id uint64, statusStr string) (*model.OutreachRequest, error)
}

type OutreachServiceImpl struct {
	outreachRepo repository.OutreachRepo

	// 可注入的时钟，月界判定依赖它
	now func() time.Time
}

func NewOutreachService(outreachRepo repository.OutreachRepo) OutreachService {
	return &OutreachServiceImpl{
		outreachRepo: outreachRepo,
		now:          time.Now,
	}
}

// SubmitRequest 提交内推请求。配额判定与写入在同一事务里，
// 外层再加用户级分布式锁，挡掉同一用户的并发提交。
func (s *OutreachServiceImpl) SubmitRequest(ctx context.Context, userID uint64, d *dto.CreateOutreachDTO) (*model.OutreachRequest, error) {
	newUUID, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	lockKey := consts.OutreachSubmitLock + strconv.FormatUint(userID, 10)
	lock, err := redis.TryLock(ctx, lockKey, newUUID.String(), time.Second*5, 3)
	if err != nil {
		return nil, err
	}
	if !lock {
		return nil, UnExpectedError
	}
	defer redis.UnLock(ctx, lockKey, newUUID.String())

	req := &model.OutreachRequest{}
	if err = copier.Copy(req, d); err != nil {
		return nil, err
	}

	submittedAt := s.now()
	req.UserID = userID
	req.Status = model.OutreachPending
	req.CreatedAt = submittedAt

	err = s.outreachRepo.CreateIfUnderQuota(ctx, req, util.StartOfMonth(submittedAt), consts.MonthlyOutreachQuota)
	if err != nil {
		if errors.Is(err, repository.ErrQuotaReached) {
			return nil, ErrQuotaExceeded
		}
		return nil, err
	}

	_ = redis.DeleteKey(ctx, consts.OutreachQuotaCountKey+strconv.FormatUint(userID, 10))

	// 简历被引用后从临时哈希摘除，免遭定时清理
	if d.ResumeLink != nil {
		if fileKey := minio.ObjectKeyFromURL(*d.ResumeLink); fileKey != "" {
			_ = redis.HDel(ctx, consts.ResumeTempKey, fileKey)
		}
	}
	return req, nil
}

func (s *OutreachServiceImpl) GetMyRequests(ctx context.Context, userID uint64) ([]*model.OutreachRequest, error) {
	return s.outreachRepo.ListByUser(ctx, userID)
}

// GetMyRequestById 按归属取单条，他人的请求与不存在同样报不存在
func (s *OutreachServiceImpl) GetMyRequestById(ctx context.Context, userID, id uint64) (*model.OutreachRequest, error) {
	req, err := s.outreachRepo.GetByIdForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrOutreachNotFound
	}
	return req, nil
}

// GetRemainingQuota 当月剩余配额，短 TTL 缓存，提交成功时失效
func (s *OutreachServiceImpl) GetRemainingQuota(ctx context.Context, userID uint64) (int, error) {
	key := consts.OutreachQuotaCountKey + strconv.FormatUint(userID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		if used, parseErr := strconv.Atoi(valStr); parseErr == nil {
			return remainingOf(used), nil
		}
	}

	count, err := s.outreachRepo.CountSince(ctx, userID, util.StartOfMonth(s.now()))
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Minute*5)
	return remainingOf(int(count)), nil
}

func (s *OutreachServiceImpl) GetPendingRequests(ctx context.Context) ([]*model.OutreachRequest, error) {
	return s.outreachRepo.ListByStatus(ctx, model.OutreachPending)
}

// TransitionRequest 管理端状态流转。
// 条件更新带上前置状态，并发的两次流转只有一次生效。
func (s *OutreachServiceImpl) TransitionRequest(ctx context.Context, id uint64, statusStr string) (*model.OutreachRequest, error) {
	to, err := model.ParseOutreachStatus(statusStr)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	req, err := s.outreachRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrOutreachNotFound
	}

	from := req.Status
	if !model.IsOutreachTransitionAllowed(from, to) {
		return nil, ErrInvalidTransition
	}

	// 每次成功的流转都重盖 reviewed_at，SENT 额外盖 sent_at
	transitionedAt := s.now()
	var sentAt *time.Time
	if to == model.OutreachSent {
		sentAt = &transitionedAt
	}

	rows, err := s.outreachRepo.TransitionStatus(ctx, id, from, to, transitionedAt, sentAt)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidTransition
	}

	req.Status = to
	req.ReviewedAt = &transitionedAt
	req.SentAt = sentAt
	return req, nil
}

func remainingOf(used int) int {
	remaining := consts.MonthlyOutreachQuota - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
