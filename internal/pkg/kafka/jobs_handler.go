package kafka

import (
	"Joblink/internal/model"
	"Joblink/internal/pkg/es"
	"Joblink/internal/repository"
	"Joblink/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// JobsHandler 消费 jobs 表的 CDC 流：
// 新职位写入搜索索引并向关注者扇出提醒，更新重建索引，删除清理索引。
type JobsHandler struct {
	companyRepo repository.CompanyRepo
	jobESRepo   es.JobRepo
	alertSvc    service.AlertService
}

func NewJobsHandler(companyRepo repository.CompanyRepo, jobESRepo es.JobRepo, alertSvc service.AlertService) *JobsHandler {
	return &JobsHandler{
		companyRepo: companyRepo,
		jobESRepo:   jobESRepo,
		alertSvc:    alertSvc,
	}
}

func (s *JobsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("jobs consumer setup")
	return nil
}

func (s *JobsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("jobs consumer cleanup")
	return nil
}

func (s *JobsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-jobs consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-jobs process batch error", "err", err)
		return err
	}
	log.Info("topic-jobs consume claim end")
	return nil
}

func (s *JobsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "jobs")
	if err != nil {
		return err
	}
	if canalMsg == nil {
		return nil
	}

	row := canalMsg.Data[0]
	jobID := StrToUint64(row["id"])

	if canalMsg.Type == DELETE {
		return s.jobESRepo.DeleteJob(ctx, jobID)
	}

	job := &model.Job{
		ID:        jobID,
		Title:     StrToString(row["title"]),
		CompanyID: StrToUint64(row["company_id"]),
		Segment:   model.Segment(StrToString(row["segment"])),
		ApplyLink: StrToString(row["apply_link"]),
		CreatedAt: StrToDateTime(row["created_at"]),
	}

	company, err := s.companyRepo.GetCompanyById(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		// 公司行可能尚未到达，交给批处理重试
		return errors.New("company not found for job")
	}

	doc := &es.JobES{
		ID:          job.ID,
		Title:       job.Title,
		CompanyID:   job.CompanyID,
		CompanyName: company.Name,
		Segment:     string(job.Segment),
		ApplyLink:   job.ApplyLink,
		CreatedAt:   job.CreatedAt,
	}
	if err = s.jobESRepo.IndexJob(ctx, doc, canalMsg.TS); err != nil {
		return err
	}

	// 只有新发布的职位才扇出提醒，更新不打扰用户
	if canalMsg.Type == INSERT {
		return s.alertSvc.FanoutJobAlert(ctx, job)
	}
	return nil
}
