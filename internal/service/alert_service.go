package service

import (
	"Joblink/internal/model"
	"Joblink/internal/pkg/consts"
	mongodb "Joblink/internal/pkg/mongo"
	"Joblink/internal/pkg/push"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type AlertService interface {
	GetAlerts(ctx context.Context, userID uint64, limit, offset int) ([]*mongodb.JobAlertModel, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkAsRead(ctx context.Context, userID uint64, alertID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	FanoutJobAlert(ctx context.Context, job *model.Job) error
}

type AlertServiceImpl struct {
	alertRepo         mongodb.AlertRepo
	companyRepo       repository.CompanyRepo
	companyFollowRepo repository.CompanyFollowRepo
	deviceTokenRepo   repository.DeviceTokenRepo
	pushClient        push.Client
}

func NewAlertService(
	alertRepo mongodb.AlertRepo,
	companyRepo repository.CompanyRepo,
	companyFollowRepo repository.CompanyFollowRepo,
	deviceTokenRepo repository.DeviceTokenRepo,
	pushClient push.Client,
) AlertService {
	return &AlertServiceImpl{
		alertRepo:         alertRepo,
		companyRepo:       companyRepo,
		companyFollowRepo: companyFollowRepo,
		deviceTokenRepo:   deviceTokenRepo,
		pushClient:        pushClient,
	}
}

func (s *AlertServiceImpl) GetAlerts(ctx context.Context, userID uint64, limit, offset int) ([]*mongodb.JobAlertModel, error) {
	return s.alertRepo.GetAlertList(ctx, userID, int64(limit), int64(offset))
}

// GetUnreadCount 未读数，短 TTL 缓存
func (s *AlertServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	key := consts.AlertUnreadCountKey + strconv.FormatUint(userID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := s.alertRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Minute*5)
	return count, nil
}

func (s *AlertServiceImpl) MarkAsRead(ctx context.Context, userID uint64, alertID string) error {
	err := s.alertRepo.MarkAsRead(ctx, userID, alertID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, mongo.ErrInvalidIndexValue) {
			return ErrAlertNotFound
		}
		return err
	}
	_ = redis.DeleteKey(ctx, consts.AlertUnreadCountKey+strconv.FormatUint(userID, 10))
	return nil
}

func (s *AlertServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	if err := s.alertRepo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.AlertUnreadCountKey+strconv.FormatUint(userID, 10))
	return nil
}

// FanoutJobAlert 新职位发布后给关注者建收件箱提醒并触发推送。
// 由 CDC 消费者调用，失败返回错误以便重试。
func (s *AlertServiceImpl) FanoutJobAlert(ctx context.Context, job *model.Job) error {
	company, err := s.companyRepo.GetCompanyById(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		log.WarnContext(ctx, "job references unknown company, skip alert fanout", "jobId", job.ID, "companyId", job.CompanyID)
		return nil
	}

	followerIDs, err := s.companyFollowRepo.GetFollowerIds(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	if len(followerIDs) == 0 {
		return nil
	}

	createdAt := time.Now()
	alerts := make([]*mongodb.JobAlertModel, 0, len(followerIDs))
	for _, userID := range followerIDs {
		alerts = append(alerts, &mongodb.JobAlertModel{
			UserID:      userID,
			JobID:       job.ID,
			CompanyID:   company.ID,
			JobTitle:    job.Title,
			CompanyName: company.Name,
			Segment:     string(job.Segment),
			ApplyLink:   job.ApplyLink,
			IsRead:      false,
			CreatedAt:   createdAt,
		})
	}
	if err = s.alertRepo.BulkCreateAlerts(ctx, alerts); err != nil {
		return err
	}

	for _, userID := range followerIDs {
		_ = redis.DeleteKey(ctx, consts.AlertUnreadCountKey+strconv.FormatUint(userID, 10))
	}

	// 推送是尽力而为，失败只记日志不重试
	tokens, err := s.deviceTokenRepo.GetTokensByUserIds(ctx, followerIDs)
	if err != nil {
		log.ErrorContext(ctx, "load device tokens failed", "err", err, "jobId", job.ID)
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}

	tokenStrs := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrs = append(tokenStrs, t.Token)
	}

	notification := &push.Notification{
		Tokens: tokenStrs,
		Title:  company.Name + " 发布了新职位",
		Body:   job.Title,
		Data: map[string]any{
			"jobId":     job.ID,
			"companyId": company.ID,
		},
	}
	if err = s.pushClient.Send(ctx, notification); err != nil {
		log.ErrorContext(ctx, "push notification failed", "err", err, "jobId", job.ID)
	}
	return nil
}
