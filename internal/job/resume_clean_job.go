package job

import (
	"Joblink/internal/api/dto"
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/minio"
	"Joblink/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// ResumeCleanupJob 清理上传后 24 小时内未被内推请求引用的简历文件
type ResumeCleanupJob struct{}

func NewResumeCleanupJob() *ResumeCleanupJob {
	return &ResumeCleanupJob{}
}

func (s *ResumeCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start resume cleanup job")

	allResumes, err := redis.HGetAll(ctx, consts.ResumeTempKey)
	if err != nil {
		log.Error("failed to get resume temp hash", "err", err)
		return
	}

	now := time.Now().Unix()
	expiration := int64(24 * 60 * 60)
	count := 0

	for fileKey, val := range allResumes {
		var meta dto.ResumeTempMetadata
		if err := json.Unmarshal([]byte(val), &meta); err != nil {
			log.Warn("invalid resume meta format", "fileKey", fileKey)
			continue
		}

		if now-meta.CreatedAt > expiration {
			if err = minio.DeleteFile(ctx, fileKey); err != nil {
				log.Error("failed to delete expired resume from minio", "fileKey", fileKey, "err", err)
				continue
			}

			if err = redis.HDel(ctx, consts.ResumeTempKey, fileKey); err != nil {
				log.Error("failed to remove resume meta from redis", "fileKey", fileKey, "err", err)
			}
			count++
		}
	}

	log.Info("resume cleanup job finished", "deleted", count)
}
