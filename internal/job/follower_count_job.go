package job

import (
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/logger"
	"Joblink/internal/pkg/redis"
	"Joblink/internal/pkg/util"
	"Joblink/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FollowerCountJob 对账任务：CDC 流里被标脏的公司，
// 以数据库为准重算关注者数并回写缓存。
type FollowerCountJob struct {
	companyFollowRepo repository.CompanyFollowRepo
}

func NewFollowerCountJob(companyFollowRepo repository.CompanyFollowRepo) *FollowerCountJob {
	return &FollowerCountJob{
		companyFollowRepo: companyFollowRepo,
	}
}

func (s *FollowerCountJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 先整体改名，期间新产生的脏数据落在原键，留给下一轮
	processingKey := consts.CompanyFollowDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.CompanyFollowDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	companyIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert dirty set error", "err", err)
		return
	}

	for _, companyID := range companyIDs {
		count, err := s.companyFollowRepo.GetFollowerCount(ctx, companyID)
		if err != nil {
			log.ErrorContext(ctx, "recount followers error", "company_id", companyID, "err", err)
			continue
		}
		countKey := consts.CompanyFollowerCount + strconv.FormatUint(companyID, 10)
		if err = redis.SetWithExpiration(ctx, countKey, count, time.Hour); err != nil {
			log.ErrorContext(ctx, "write follower count error", "company_id", companyID, "err", err)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}
	log.InfoContext(ctx, "follower count reconciled", "companies", len(companyIDs))
}
