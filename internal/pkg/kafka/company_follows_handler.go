package kafka

import (
	"Joblink/internal/pkg/consts"
	"Joblink/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
)

// CompanyFollowsHandler 消费 company_follows 表的 CDC 流，
// 维护公司侧关注者缓存与脏集合，用户侧集合直接失效。
type CompanyFollowsHandler struct {
}

func NewCompanyFollowsHandler() *CompanyFollowsHandler {
	return &CompanyFollowsHandler{}
}

func (s *CompanyFollowsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("company follows consumer setup")
	return nil
}

func (s *CompanyFollowsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("company follows consumer cleanup")
	return nil
}

func (s *CompanyFollowsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-company-follows consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-company-follows process batch error", "err", err)
		return err
	}
	log.Info("topic-company-follows consume claim end")
	return nil
}

func (s *CompanyFollowsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "company_follows")
	if err != nil {
		return err
	}
	if canalMsg == nil {
		return nil
	}

	rdb := redis.GetRdbClient()

	pipe := rdb.Pipeline()
	var dirtyCompanyIDs []interface{}

	for _, row := range canalMsg.Data {
		userID := StrToUint64(row["user_id"])
		companyID := StrToUint64(row["company_id"])
		dirtyCompanyIDs = append(dirtyCompanyIDs, companyID)

		followerKey := consts.CompanyFollowerKey + strconv.FormatUint(companyID, 10)
		followerCountKey := consts.CompanyFollowerCount + strconv.FormatUint(companyID, 10)
		followedKey := consts.UserFollowedSetKey + strconv.FormatUint(userID, 10)

		if canalMsg.Type == INSERT {
			pipe.SAdd(ctx, followerKey, userID)
			pipe.Incr(ctx, followerCountKey)
		} else if canalMsg.Type == DELETE {
			pipe.SRem(ctx, followerKey, userID)
			pipe.Decr(ctx, followerCountKey)
		}

		// 用户侧集合失效，下次读取时回源重建
		pipe.Del(ctx, followedKey)
	}

	if len(dirtyCompanyIDs) > 0 {
		pipe.SAdd(ctx, consts.CompanyFollowDirtyKey, dirtyCompanyIDs...)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}

	return nil
}
